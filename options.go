package paramlink

import (
	"log/slog"

	"github.com/aretw0/paramlink/pkg/domain"
	"github.com/aretw0/paramlink/pkg/ports"
)

// Option defines a functional option for configuring the Control.
type Option func(*Control)

// WithLogger sets a custom structured logger for the control.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Control) {
		c.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *Control) {
		c.hooks = hooks
	}
}

// WithLabel sets the initial label (default: domain.DefaultLabel).
func WithLabel(label string) Option {
	return func(c *Control) {
		c.label = label
	}
}

// WithContainerType overrides the accepted container type (default: domain.ContainerType).
func WithContainerType(kind string) Option {
	return func(c *Control) {
		c.containerType = kind
	}
}

// WithPruneMissingTarget clears the Target selection when its object leaves the registry.
func WithPruneMissingTarget(prune bool) Option {
	return func(c *Control) {
		c.pruneMissing = prune
	}
}

// WithStore configures the SnapshotStore used by Save and Load.
func WithStore(store ports.SnapshotStore) Option {
	return func(c *Control) {
		c.store = store
	}
}

// WithID sets the control ID used as the persistence key (default: a random UUID).
func WithID(id string) Option {
	return func(c *Control) {
		c.ID = id
	}
}
