// Package lifecycle owns the on-screen slider of a control and acquires or
// releases it on enable, disable and destroy.
package lifecycle

import (
	"fmt"

	"github.com/aretw0/paramlink/internal/binding"
	"github.com/aretw0/paramlink/pkg/domain"
	"github.com/aretw0/paramlink/pkg/ports"
)

// Lifecycle is the Inert/Active state machine around a single widget instance.
type Lifecycle struct {
	container ports.Container
	factory   ports.WidgetFactory
	binding   *binding.State
	onEdit    func(float64)

	state   domain.LifecycleState
	surface ports.Surface
	widget  ports.Widget
	control ports.SliderControl
}

// New creates an inert lifecycle. A nil container keeps it inert forever.
func New(container ports.Container, factory ports.WidgetFactory, b *binding.State) *Lifecycle {
	return &Lifecycle{
		container: container,
		factory:   factory,
		binding:   b,
		state:     domain.StateInert,
	}
}

// OnEdit routes user edits from the slider to fn instead of straight into the binding.
// It takes effect on the next Enable.
func (l *Lifecycle) OnEdit(fn func(float64)) {
	l.onEdit = fn
}

// State returns the current lifecycle state.
func (l *Lifecycle) State() domain.LifecycleState { return l.state }

// Surface returns the surface the widget lives on while active.
func (l *Lifecycle) Surface() ports.Surface { return l.surface }

// Enable acquires a widget and connects it to the binding.
// It does nothing when already active or when no container was resolved.
func (l *Lifecycle) Enable() error {
	if l.state == domain.StateActive || l.container == nil {
		return nil
	}

	surface, ok := l.container.Surface()
	if !ok || surface == nil {
		return fmt.Errorf("could not find a surface to attach to: %w", domain.ErrNotFound)
	}

	w := l.factory.InstantiateSlider(surface)
	if w == nil {
		return fmt.Errorf("could not instantiate a slider on %q: %w", surface.Name(), domain.ErrAllocationFailed)
	}

	// An Enable that does not commit releases the widget, host panics included.
	var ctrl ports.SliderControl
	committed := false
	defer func() {
		if committed {
			return
		}
		if ctrl != nil {
			ctrl.Disconnect()
		}
		l.binding.Detach()
		w.Destroy()
	}()

	ctrl, ok = w.Control()
	if !ok || ctrl == nil {
		ctrl = nil
		return fmt.Errorf("widget has no slider control: %w", domain.ErrAllocationFailed)
	}

	l.binding.Attach(view{widget: w, control: ctrl})
	edit := l.binding.SetValue
	if l.onEdit != nil {
		edit = l.onEdit
	}
	ctrl.Connect(edit)
	w.Translate(domain.WidgetOffset)

	l.surface = surface
	l.widget = w
	l.control = ctrl
	l.state = domain.StateActive
	committed = true
	return nil
}

// Disable disconnects and destroys the widget. Safe to call at any time.
func (l *Lifecycle) Disable() error {
	if l.state == domain.StateInert {
		return nil
	}

	w := l.widget
	l.control.Disconnect()
	l.binding.Detach()

	l.widget = nil
	l.control = nil
	l.surface = nil
	l.state = domain.StateInert

	w.Destroy()
	return nil
}

// Destroy releases the widget for good; equivalent to Disable.
func (l *Lifecycle) Destroy() error {
	return l.Disable()
}

// view joins a widget and its slider control into a binding.View.
type view struct {
	widget  ports.Widget
	control ports.SliderControl
}

func (v view) Configure(cfg domain.WidgetConfig) { v.widget.Configure(cfg) }
func (v view) SetLabel(label string)             { v.widget.SetLabel(label) }
func (v view) SetValue(x float64)                { v.control.SetValue(x) }
