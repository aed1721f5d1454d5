package paramlink

import (
	"io"
	"log/slog"

	"github.com/aretw0/paramlink/internal/binding"
	"github.com/aretw0/paramlink/internal/container"
	"github.com/aretw0/paramlink/internal/lifecycle"
	"github.com/aretw0/paramlink/internal/logging"
	"github.com/aretw0/paramlink/internal/selector"
	"github.com/aretw0/paramlink/pkg/domain"
	"github.com/aretw0/paramlink/pkg/ports"
	"github.com/google/uuid"
)

// Component names reported to the error sink.
const (
	ComponentContainer = "ContainerResolver"
	ComponentSelector  = "CascadingSelector"
	ComponentBinding   = "ValueBindingState"
	ComponentLifecycle = "ControlLifecycle"
)

// Host bundles the collaborators a control needs from its environment.
// Registry and Widgets are required. A nil Errors falls back to the logger.
type Host struct {
	Registry ports.Registry
	Widgets  ports.WidgetFactory
	Errors   ports.ErrorSink
}

// Control is a slider bound, through a cascading selection, to a remote parameter.
// It is not safe for concurrent use: the host calls it from its UI thread.
type Control struct {
	ID string

	host          Host
	logger        *slog.Logger
	hooks         domain.LifecycleHooks
	store         ports.SnapshotStore
	label         string
	containerType string
	pruneMissing  bool

	container   ports.Container
	binding     *binding.State
	cascade     *selector.Cascade
	lifecycle   *lifecycle.Lifecycle
	unsubscribe func()
	destroyed   bool
}

// New attaches a control beneath the container domain.AttachmentDepth levels above
// attachment. Initialization never fails: problems are reported to the error sink and
// leave the control without a widget.
func New(attachment ports.Node, host Host, opts ...Option) *Control {
	c := &Control{
		host:          host,
		label:         domain.DefaultLabel,
		containerType: domain.ContainerType,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	c.logger = c.logger.With("control", c.ID)
	if c.host.Errors == nil {
		c.host.Errors = logging.NewErrorSink(c.logger)
	}

	c.binding = binding.New(c.label)
	c.cascade = selector.New(host.Registry,
		selector.WithListener(selector.Listener{
			Selected: c.onSelected,
			Bound:    c.onBound,
			Unbound:  c.onUnbound,
		}),
		selector.WithPruneMissingTarget(c.pruneMissing),
	)

	c.guard(ComponentContainer, "Init", func() error {
		resolved, err := container.Resolve(attachment, c.containerType)
		if err != nil {
			return err
		}
		c.container = resolved
		return nil
	})

	c.lifecycle = lifecycle.New(c.container, host.Widgets, c.binding)
	c.lifecycle.OnEdit(c.SetValue)
	c.Enable()

	c.unsubscribe = host.Registry.Subscribe(c.onRegistryChanged)
	c.onRegistryChanged(host.Registry.ListObjectIDs())

	return c
}

// SetLabel changes the label shown on the widget.
func (c *Control) SetLabel(label string) {
	c.guard(ComponentBinding, "SetLabel", func() error {
		c.binding.SetLabel(label)
		return nil
	})
}

// SetValue edits the local value, writing it through to the bound parameter.
func (c *Control) SetValue(v float64) {
	c.guard(ComponentBinding, "SetValue", func() error {
		c.binding.SetValue(v)
		return nil
	})
}

// ResetRange returns the local bounds to the free range.
func (c *Control) ResetRange() {
	c.guard(ComponentBinding, "ResetRange", func() error {
		c.binding.ResetRange()
		return nil
	})
}

// SelectTarget selects the Target object. "" clears the whole chain.
func (c *Control) SelectTarget(id string) {
	c.guard(ComponentSelector, "SelectTarget", func() error {
		return c.cascade.SelectTarget(id)
	})
}

// SelectSubTarget selects a sub-component of the current Target.
func (c *Control) SelectSubTarget(id string) {
	c.guard(ComponentSelector, "SelectSubTarget", func() error {
		return c.cascade.SelectSubTarget(id)
	})
}

// SelectParameter selects a numeric parameter of the current SubTarget and binds to it.
func (c *Control) SelectParameter(name string) {
	c.guard(ComponentSelector, "SelectParameter", func() error {
		return c.cascade.SelectParameter(name)
	})
}

// Select dispatches to the selector of level.
func (c *Control) Select(level domain.Level, value string) {
	switch level {
	case domain.LevelTarget:
		c.SelectTarget(value)
	case domain.LevelSubTarget:
		c.SelectSubTarget(value)
	case domain.LevelParameter:
		c.SelectParameter(value)
	}
}

// Refresh re-resolves the current chain and re-reads the bound parameter.
func (c *Control) Refresh() {
	c.guard(ComponentSelector, "Refresh", func() error {
		return c.cascade.Refresh()
	})
}

// Enable shows the widget. It does nothing when already shown or when the
// control is not attached to a valid container.
func (c *Control) Enable() {
	if c.destroyed {
		return
	}
	c.guard(ComponentLifecycle, "Enable", func() error {
		before := c.lifecycle.State()
		if err := c.lifecycle.Enable(); err != nil {
			return err
		}
		if before != c.lifecycle.State() {
			c.logger.Debug("widget acquired", "surface", c.lifecycle.Surface().Name())
			if c.hooks.OnAcquire != nil {
				c.hooks.OnAcquire(&domain.WidgetEvent{ControlID: c.ID, Surface: c.lifecycle.Surface().Name()})
			}
		}
		return nil
	})
}

// Disable hides the widget. Safe to call at any time.
func (c *Control) Disable() {
	c.guard(ComponentLifecycle, "Disable", func() error {
		surface := c.lifecycle.Surface()
		if err := c.lifecycle.Disable(); err != nil {
			return err
		}
		if surface != nil {
			c.logger.Debug("widget released", "surface", surface.Name())
			if c.hooks.OnRelease != nil {
				c.hooks.OnRelease(&domain.WidgetEvent{ControlID: c.ID, Surface: surface.Name()})
			}
		}
		return nil
	})
}

// Destroy releases the widget and stops listening to the registry.
func (c *Control) Destroy() {
	c.Disable()
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	c.destroyed = true
}

// State returns a read-only view of the control.
func (c *Control) State() domain.ControlState {
	return domain.ControlState{
		ID:        c.ID,
		Target:    c.cascade.Chooser(domain.LevelTarget).Selection(),
		SubTarget: c.cascade.Chooser(domain.LevelSubTarget).Selection(),
		Parameter: c.cascade.Chooser(domain.LevelParameter).Selection(),
		Value:     c.binding.Config(),
		Mode:      c.binding.Mode(),
		Lifecycle: c.lifecycle.State(),
		Attached:  c.container != nil,
	}
}

func (c *Control) onRegistryChanged(ids []string) {
	c.guard(ComponentSelector, "RegistryChanged", func() error {
		c.cascade.RegistryChanged(ids)
		return nil
	})
}

func (c *Control) onSelected(level domain.Level, value string) {
	c.logger.Debug("selection changed", "level", level.String(), "value", value)
	if c.hooks.OnSelect != nil {
		c.hooks.OnSelect(&domain.SelectionEvent{ControlID: c.ID, Level: level, Value: value})
	}
}

func (c *Control) onBound(handle ports.Parameter) {
	c.binding.BindTo(handle)
	ev := c.bindingEvent()
	c.logger.Debug("bound", "target", ev.Target, "subtarget", ev.SubTarget, "parameter", ev.Parameter)
	if c.hooks.OnBind != nil {
		c.hooks.OnBind(ev)
	}
}

func (c *Control) onUnbound() {
	c.binding.Unbind()
	c.logger.Debug("unbound")
	if c.hooks.OnUnbind != nil {
		c.hooks.OnUnbind(c.bindingEvent())
	}
}

func (c *Control) bindingEvent() *domain.BindingEvent {
	return &domain.BindingEvent{
		ControlID: c.ID,
		Target:    c.cascade.Chooser(domain.LevelTarget).Value(),
		SubTarget: c.cascade.Chooser(domain.LevelSubTarget).Value(),
		Parameter: c.cascade.Chooser(domain.LevelParameter).Value(),
		Config:    c.binding.Config(),
	}
}
