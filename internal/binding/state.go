// Package binding holds the local editable value of a control and, while bound,
// writes every edit through to a remote parameter.
package binding

import (
	"github.com/aretw0/paramlink/pkg/domain"
	"github.com/aretw0/paramlink/pkg/ports"
)

// View is the part of a widget the binding pushes its configuration to.
// The binding never creates or destroys a view; the lifecycle lends it one.
type View interface {
	Configure(cfg domain.WidgetConfig)
	SetLabel(label string)
	SetValue(v float64)
}

// State is the local value with its bounds, in unbound or bound mode.
// It is bound if and only if it holds a parameter handle.
type State struct {
	label       string
	value       float64
	min         float64
	max         float64
	def         float64
	constrained bool

	handle ports.Parameter
	view   View
}

// New creates an unbound state over the free range.
func New(label string) *State {
	return &State{
		label: label,
		value: domain.DefaultValue,
		min:   domain.FreeRangeMin,
		max:   domain.FreeRangeMax,
		def:   domain.DefaultValue,
	}
}

// Mode returns ModeBound while a parameter handle is held.
func (s *State) Mode() domain.Mode {
	if s.handle != nil {
		return domain.ModeBound
	}
	return domain.ModeUnbound
}

// Handle returns the bound parameter, or nil.
func (s *State) Handle() ports.Parameter { return s.handle }

// Label returns the current label.
func (s *State) Label() string { return s.label }

// Value returns the local value.
func (s *State) Value() float64 { return s.value }

// Config returns the local value and its metadata.
func (s *State) Config() domain.ValueConfig {
	return domain.ValueConfig{
		Label:       s.label,
		Value:       s.value,
		Min:         s.min,
		Max:         s.max,
		Default:     s.def,
		Constrained: s.constrained,
	}
}

// WidgetConfig derives what a slider should display.
func (s *State) WidgetConfig() domain.WidgetConfig {
	return domain.WidgetConfig{
		Label:       s.label,
		Min:         s.min,
		Max:         s.max,
		Default:     s.def,
		Constrained: s.constrained,
		Precision:   domain.DefaultFormat,
		Visible:     true,
		Editable:    !s.constrained,
	}
}

// SetLabel updates the label and the attached view.
func (s *State) SetLabel(label string) {
	s.label = label
	if s.view != nil {
		s.view.SetLabel(label)
	}
}

// SetValue updates the local value and, while bound, writes it to the parameter.
func (s *State) SetValue(v float64) {
	s.setValue(v)
	if s.handle != nil {
		s.handle.SetValue(s.value)
	}
	if s.view != nil {
		s.view.SetValue(s.value)
	}
}

// BindTo mirrors handle's metadata and starts writing edits through to it.
//
// Fields are copied unconstrained first and the constraint re-applied last, so
// no intermediate step clamps the value against a stale range.
func (s *State) BindTo(handle ports.Parameter) {
	s.handle = nil

	s.constrained = false
	s.def = handle.Default()
	s.setValue(handle.Value())
	s.setMin(handle.Min())
	s.setMax(handle.Max())
	s.setConstrained(handle.Constrained())

	s.handle = handle
	s.push()
}

// Unbind drops the parameter reference. The remote side is not touched and the
// local value and bounds stay as last observed.
func (s *State) Unbind() {
	s.handle = nil
}

// ResetRange returns the bounds to the free range.
func (s *State) ResetRange() {
	s.constrained = false
	s.def = domain.DefaultValue
	s.min = domain.FreeRangeMin
	s.max = domain.FreeRangeMax
	s.push()
}

// Attach lends the binding a view and pushes the full configuration to it.
func (s *State) Attach(view View) {
	s.view = view
	s.push()
}

// Detach forgets the view.
func (s *State) Detach() {
	s.view = nil
}

func (s *State) push() {
	if s.view == nil {
		return
	}
	s.view.Configure(s.WidgetConfig())
	s.view.SetValue(s.value)
}

func (s *State) setValue(v float64) {
	if s.constrained {
		v = min(max(v, s.min), s.max)
	}
	s.value = v
}

func (s *State) setMin(v float64) {
	s.min = v
	if s.constrained && s.value < v {
		s.value = v
	}
}

func (s *State) setMax(v float64) {
	s.max = v
	if s.constrained && s.value > v {
		s.value = v
	}
}

func (s *State) setConstrained(c bool) {
	s.constrained = c
	if c {
		s.setValue(s.value)
	}
}
