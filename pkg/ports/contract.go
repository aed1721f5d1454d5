package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/paramlink/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunSnapshotStoreContract runs a suite of tests to verify that a SnapshotStore
// implementation adheres to the defined interface contract.
func RunSnapshotStoreContract(t *testing.T, store SnapshotStore) {
	ctx := context.Background()
	controlID := "contract-test-control-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		snap := &domain.Snapshot{
			Label:     "Volume",
			Value:     2.5,
			Target:    "A",
			SubTarget: "s1",
			Parameter: "p1",
		}

		require.NoError(t, store.Save(ctx, controlID, snap))

		loaded, err := store.Load(ctx, controlID)
		require.NoError(t, err)
		assert.Equal(t, *snap, *loaded)
	})

	t.Run("Save Overwrites", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, controlID, &domain.Snapshot{Label: "first"}))
		require.NoError(t, store.Save(ctx, controlID, &domain.Snapshot{Label: "second", Value: 7}))

		loaded, err := store.Load(ctx, controlID)
		require.NoError(t, err)
		assert.Equal(t, "second", loaded.Label)
		assert.Equal(t, 7.0, loaded.Value)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+controlID)
		assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, controlID, &domain.Snapshot{Label: "gone"}))
		require.NoError(t, store.Delete(ctx, controlID))

		_, err := store.Load(ctx, controlID)
		assert.ErrorIs(t, err, domain.ErrSnapshotNotFound, "Load after Delete should return ErrSnapshotNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := controlID + "-1"
		id2 := controlID + "-2"
		_ = store.Save(ctx, id1, &domain.Snapshot{})
		_ = store.Save(ctx, id2, &domain.Snapshot{})

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, id1)
		assert.Contains(t, ids, id2)
	})
}
