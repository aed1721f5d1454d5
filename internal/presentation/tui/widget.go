package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/paramlink/pkg/domain"
	"github.com/aretw0/paramlink/pkg/ports"
	"github.com/charmbracelet/lipgloss"
)

const barWidth = 30

// Canvas is a terminal WidgetFactory. It keeps every slider it created so the
// interactive model can render and drive the live one.
// Canvas and its widgets are only touched from Bubble Tea's update loop and
// are not safe for concurrent use.
type Canvas struct {
	widgets []*Widget
}

// NewCanvas creates an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{}
}

// InstantiateSlider implements ports.WidgetFactory.
func (c *Canvas) InstantiateSlider(surface ports.Surface) ports.Widget {
	w := &Widget{surface: surface.Name(), slider: &Slider{}}
	c.widgets = append(c.widgets, w)
	return w
}

// Active returns the most recent widget that has not been destroyed.
func (c *Canvas) Active() (*Widget, bool) {
	for i := len(c.widgets) - 1; i >= 0; i-- {
		if !c.widgets[i].destroyed {
			return c.widgets[i], true
		}
	}
	return nil, false
}

// Widget is a slider drawn with lipgloss.
type Widget struct {
	surface   string
	config    domain.WidgetConfig
	offset    domain.Offset
	destroyed bool
	slider    *Slider
}

func (w *Widget) Configure(cfg domain.WidgetConfig) { w.config = cfg }
func (w *Widget) SetLabel(label string)             { w.config.Label = label }
func (w *Widget) Translate(o domain.Offset) {
	w.offset.Down += o.Down
	w.offset.Right += o.Right
}
func (w *Widget) Destroy() { w.destroyed = true }

func (w *Widget) Control() (ports.SliderControl, bool) {
	return w.slider, true
}

// Config returns the last configuration pushed to the widget.
func (w *Widget) Config() domain.WidgetConfig { return w.config }

// Value returns the displayed value.
func (w *Widget) Value() float64 { return w.slider.value }

// Nudge moves the slider by steps twentieths of its range, as a user drag would.
func (w *Widget) Nudge(steps int) {
	span := w.config.Max - w.config.Min
	if span <= 0 {
		span = 1
	}
	v := w.slider.value + float64(steps)*span/20
	v = min(max(v, w.config.Min), w.config.Max)
	w.slider.Drag(v)
}

// Render draws the widget as a labelled bar.
func (w *Widget) Render() string {
	cfg := w.config
	ratio := 0.0
	if cfg.Max > cfg.Min {
		ratio = (w.slider.value - cfg.Min) / (cfg.Max - cfg.Min)
	}
	ratio = min(max(ratio, 0), 1)
	filled := int(ratio * barWidth)

	bar := barFilledStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", barWidth-filled))

	format := cfg.Precision
	if format == "" {
		format = domain.DefaultFormat
	}
	value := valueStyle.Render(fmt.Sprintf(format, w.slider.value))
	bounds := mutedStyle.Render(fmt.Sprintf("["+format+" .. "+format+"]", cfg.Min, cfg.Max))

	body := lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render(cfg.Label),
		bar+" "+value,
		bounds,
	)
	return sliderBoxStyle.Render(body)
}

// Slider implements ports.SliderControl.
type Slider struct {
	value    float64
	onChange func(float64)
}

func (s *Slider) SetValue(v float64)             { s.value = v }
func (s *Slider) Connect(onChange func(float64)) { s.onChange = onChange }
func (s *Slider) Disconnect()                    { s.onChange = nil }

// Drag sets the value and notifies the connected handler.
func (s *Slider) Drag(v float64) {
	s.value = v
	if s.onChange != nil {
		s.onChange(v)
	}
}
