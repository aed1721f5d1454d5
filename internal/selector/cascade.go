package selector

import (
	"fmt"

	"github.com/aretw0/paramlink/pkg/domain"
	"github.com/aretw0/paramlink/pkg/ports"
)

// Listener receives the outcome of committed cascade steps.
// Selected runs once per level whose value changed, top-down.
// Bound or Unbound runs last, after every level is consistent.
type Listener struct {
	Selected func(level domain.Level, value string)
	Bound    func(handle ports.Parameter)
	Unbound  func()
}

// Option configures a Cascade.
type Option func(*Cascade)

// WithListener sets the cascade listener.
func WithListener(l Listener) Option {
	return func(c *Cascade) {
		c.listener = l
	}
}

// WithPruneMissingTarget makes RegistryChanged clear a target that left the registry.
// By default the stale target is kept until the user interacts with it.
func WithPruneMissingTarget(prune bool) Option {
	return func(c *Cascade) {
		c.pruneMissing = prune
	}
}

// Cascade keeps the Target, SubTarget and Parameter levels consistent.
//
// Every selection resolves the whole chain below it before committing anything,
// so a failed step leaves all three levels untouched.
type Cascade struct {
	registry     ports.Registry
	target       *Chooser
	sub          *Chooser
	param        *Chooser
	bound        bool
	listener     Listener
	pruneMissing bool
}

// New creates a cascade over registry with empty selections.
// Target choices stay {None} until RegistryChanged is called.
func New(registry ports.Registry, opts ...Option) *Cascade {
	c := &Cascade{
		registry: registry,
		target:   newChooser(domain.LevelTarget),
		sub:      newChooser(domain.LevelSubTarget),
		param:    newChooser(domain.LevelParameter),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Chooser returns the chooser for level.
func (c *Cascade) Chooser(level domain.Level) *Chooser {
	switch level {
	case domain.LevelSubTarget:
		return c.sub
	case domain.LevelParameter:
		return c.param
	default:
		return c.target
	}
}

// Bound reports whether the current chain resolved to a parameter.
func (c *Cascade) Bound() bool { return c.bound }

// SelectTarget changes the Target level.
func (c *Cascade) SelectTarget(id string) error {
	if id == c.target.value {
		return nil
	}
	if !c.target.Contains(id) {
		return fmt.Errorf("object %q is not a choice: %w", id, domain.ErrNotFound)
	}

	p, err := c.resolve(id, c.sub.value, c.param.value)
	if err != nil {
		return err
	}
	c.commit(p, false)
	return nil
}

// SelectSubTarget changes the SubTarget level. It is ignored while Target is empty.
func (c *Cascade) SelectSubTarget(id string) error {
	if c.target.value == None || id == c.sub.value {
		return nil
	}
	if !c.sub.Contains(id) {
		return fmt.Errorf("sub-component %q of object %q is not a choice: %w", id, c.target.value, domain.ErrNotFound)
	}

	p, err := c.resolve(c.target.value, id, c.param.value)
	if err != nil {
		return err
	}
	c.commit(p, false)
	return nil
}

// SelectParameter changes the Parameter level. It is ignored while Target or
// SubTarget is empty. Selecting None unbinds without resolving anything.
func (c *Cascade) SelectParameter(name string) error {
	if c.target.value == None || c.sub.value == None || name == c.param.value {
		return nil
	}
	if !c.param.Contains(name) {
		return fmt.Errorf("parameter %q of sub-component %q is not a choice: %w", name, c.sub.value, domain.ErrNotFound)
	}

	p, err := c.resolve(c.target.value, c.sub.value, name)
	if err != nil {
		return err
	}
	c.commit(p, false)
	return nil
}

// Refresh re-resolves the current chain and rebinds to a fresh handle.
func (c *Cascade) Refresh() error {
	p, err := c.resolve(c.target.value, c.sub.value, c.param.value)
	if err != nil {
		return err
	}
	c.commit(p, true)
	return nil
}

// RegistryChanged replaces the Target choices with the registry membership.
// The current Target is not re-validated unless pruning is enabled.
func (c *Cascade) RegistryChanged(ids []string) {
	c.target.choices = withNone(ids)

	if !c.pruneMissing || c.target.value == None || c.target.Contains(c.target.value) {
		return
	}

	p, _ := c.resolve(None, None, None)
	c.commit(p, false)
}

// plan is a fully resolved chain, ready to commit.
type plan struct {
	target       string
	subChoices   []string
	sub          string
	paramChoices []string
	param        string
	handle       ports.Parameter
}

func (c *Cascade) resolve(target, sub, param string) (plan, error) {
	p := plan{
		target:       target,
		subChoices:   []string{None},
		paramChoices: []string{None},
	}
	if target == None {
		return p, nil
	}

	obj, ok := c.registry.GetObject(target)
	if !ok || obj == nil {
		return plan{}, fmt.Errorf("object %q does not exist: %w", target, domain.ErrNotFound)
	}
	p.subChoices = withNone(obj.ListSubComponentIDs())
	p.sub = keep(sub, p.subChoices)
	if p.sub == None {
		return p, nil
	}

	sc, ok := obj.GetSubComponent(p.sub)
	if !ok || sc == nil {
		return plan{}, fmt.Errorf("sub-component %q of object %q does not exist: %w", p.sub, target, domain.ErrNotFound)
	}
	p.paramChoices = withNone(sc.ListNumericParameterNames())
	p.param = keep(param, p.paramChoices)
	if p.param == None {
		return p, nil
	}

	h, ok := sc.GetNumericParameter(p.param)
	if !ok || h == nil {
		return plan{}, fmt.Errorf("parameter %q of sub-component %q of object %q does not exist: %w", p.param, p.sub, target, domain.ErrNotFound)
	}
	p.handle = h
	return p, nil
}

func (c *Cascade) commit(p plan, rebind bool) {
	var changed []*Chooser
	set := func(ch *Chooser, v string) {
		if ch.value != v {
			ch.value = v
			changed = append(changed, ch)
		}
	}

	set(c.target, p.target)
	c.sub.choices = p.subChoices
	set(c.sub, p.sub)
	c.param.choices = p.paramChoices
	set(c.param, p.param)

	if c.listener.Selected != nil {
		for _, ch := range changed {
			c.listener.Selected(ch.level, ch.value)
		}
	}

	switch {
	case p.handle != nil && (rebind || len(changed) > 0 || !c.bound):
		// Bound only once the listener has taken the handle.
		c.bound = false
		if c.listener.Bound != nil {
			c.listener.Bound(p.handle)
		}
		c.bound = true
	case p.handle == nil && c.bound:
		c.bound = false
		if c.listener.Unbound != nil {
			c.listener.Unbound()
		}
	}
}
