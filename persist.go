package paramlink

import (
	"context"
	"errors"
	"fmt"

	"github.com/aretw0/paramlink/pkg/domain"
)

// ErrNoStore is returned by Save and Load when no SnapshotStore was configured.
var ErrNoStore = errors.New("no snapshot store configured")

// Snapshot returns the fields a host persists for this control.
func (c *Control) Snapshot() domain.Snapshot {
	return domain.Snapshot{
		Label:     c.binding.Label(),
		Value:     c.binding.Value(),
		Target:    c.cascade.Chooser(domain.LevelTarget).Value(),
		SubTarget: c.cascade.Chooser(domain.LevelSubTarget).Value(),
		Parameter: c.cascade.Chooser(domain.LevelParameter).Value(),
	}
}

// Restore applies a snapshot field by field: label, value, then the selection
// chain top-down. The current chain is cleared first so the value lands in the
// local state only; a restored binding then shows the remote parameter's
// current value instead of overwriting it.
func (c *Control) Restore(s domain.Snapshot) {
	c.SetLabel(s.Label)
	c.SelectTarget("")
	c.SetValue(s.Value)
	c.SelectTarget(s.Target)
	c.SelectSubTarget(s.SubTarget)
	c.SelectParameter(s.Parameter)
}

// Save persists the current snapshot under the control ID.
func (c *Control) Save(ctx context.Context) error {
	return c.Persist(ctx, c.Snapshot())
}

// Persist writes snap under the control ID. It touches neither the selection
// nor the binding, so a host may call it off its UI thread with a snapshot
// taken on it.
func (c *Control) Persist(ctx context.Context, snap domain.Snapshot) error {
	if c.store == nil {
		return ErrNoStore
	}
	if err := c.store.Save(ctx, c.ID, &snap); err != nil {
		return fmt.Errorf("save control %s: %w", c.ID, err)
	}
	return nil
}

// Load restores the snapshot stored under the control ID.
// A missing snapshot returns domain.ErrSnapshotNotFound and leaves the control as is.
func (c *Control) Load(ctx context.Context) error {
	if c.store == nil {
		return ErrNoStore
	}
	snap, err := c.store.Load(ctx, c.ID)
	if err != nil {
		return fmt.Errorf("load control %s: %w", c.ID, err)
	}
	c.Restore(*snap)
	return nil
}
