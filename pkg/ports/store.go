package ports

import (
	"context"

	"github.com/aretw0/paramlink/pkg/domain"
)

// SnapshotStore persists the primitive fields of controls.
type SnapshotStore interface {
	// Save persists the snapshot for a given control ID.
	Save(ctx context.Context, controlID string, snapshot *domain.Snapshot) error

	// Load retrieves the snapshot for a given control ID.
	// Returns domain.ErrSnapshotNotFound if the control has none.
	Load(ctx context.Context, controlID string) (*domain.Snapshot, error)

	// Delete removes the snapshot for a given control ID.
	Delete(ctx context.Context, controlID string) error

	// List returns the IDs of all stored controls.
	List(ctx context.Context) ([]string, error)
}
