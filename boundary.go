package paramlink

import (
	"github.com/aretw0/paramlink/pkg/domain"
)

// guard runs fn as a failure boundary. Errors and panics are reported to the
// error sink, the logger and the OnError hook, and never reach the caller.
func (c *Control) guard(component, op string, fn func() error) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			c.report(component, op, &domain.PanicError{Value: r})
			ok = false
		}
	}()

	if err := fn(); err != nil {
		c.report(component, op, err)
		return false
	}
	return true
}

func (c *Control) report(component, op string, err error) {
	opErr := &domain.OpError{Component: component, Op: op, Err: err}
	c.logger.Error("operation failed", "component", component, "op", op, "error", err)
	c.host.Errors.LogError(component, op, err.Error())
	if c.hooks.OnError != nil {
		c.hooks.OnError(&domain.ErrorEvent{ControlID: c.ID, Component: component, Op: op, Err: opErr})
	}
}
