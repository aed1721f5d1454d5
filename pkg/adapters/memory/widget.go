package memory

import (
	"github.com/aretw0/paramlink/pkg/domain"
	"github.com/aretw0/paramlink/pkg/ports"
)

// WidgetFactory implements ports.WidgetFactory and records every instance.
type WidgetFactory struct {
	// Fail makes InstantiateSlider return nil.
	Fail bool
	// NoControl produces widgets without the slider capability.
	NoControl bool

	Instances []*Widget
}

// NewWidgetFactory creates a working factory.
func NewWidgetFactory() *WidgetFactory {
	return &WidgetFactory{}
}

func (f *WidgetFactory) InstantiateSlider(surface ports.Surface) ports.Widget {
	if f.Fail {
		return nil
	}
	w := &Widget{Surface: surface.Name()}
	if !f.NoControl {
		w.slider = &Slider{}
	}
	f.Instances = append(f.Instances, w)
	return w
}

// Live returns the instances that have not been destroyed.
func (f *WidgetFactory) Live() []*Widget {
	var live []*Widget
	for _, w := range f.Instances {
		if !w.Destroyed {
			live = append(live, w)
		}
	}
	return live
}

// Widget implements ports.Widget and records what was pushed to it.
type Widget struct {
	Surface   string
	Config    domain.WidgetConfig
	Configs   int
	Offset    domain.Offset
	Destroyed bool
	slider    *Slider
}

func (w *Widget) Configure(cfg domain.WidgetConfig) {
	w.Config = cfg
	w.Configs++
}

func (w *Widget) SetLabel(label string) {
	w.Config.Label = label
}

func (w *Widget) Control() (ports.SliderControl, bool) {
	if w.slider == nil {
		return nil, false
	}
	return w.slider, true
}

// Slider returns the concrete slider for tests.
func (w *Widget) Slider() *Slider {
	return w.slider
}

func (w *Widget) Translate(offset domain.Offset) {
	w.Offset.Down += offset.Down
	w.Offset.Right += offset.Right
}

func (w *Widget) Destroy() {
	w.Destroyed = true
}

// Slider implements ports.SliderControl.
type Slider struct {
	Value    float64
	onChange func(float64)
}

func (s *Slider) SetValue(v float64) {
	s.Value = v
}

func (s *Slider) Connect(onChange func(float64)) {
	s.onChange = onChange
}

func (s *Slider) Disconnect() {
	s.onChange = nil
}

// Connected reports whether a handler is attached.
func (s *Slider) Connected() bool {
	return s.onChange != nil
}

// Drag simulates a user edit.
func (s *Slider) Drag(v float64) {
	s.Value = v
	if s.onChange != nil {
		s.onChange(v)
	}
}
