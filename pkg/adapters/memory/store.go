package memory

import (
	"context"
	"sync"

	"github.com/aretw0/paramlink/pkg/domain"
)

// Store implements ports.SnapshotStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]domain.Snapshot
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]domain.Snapshot),
	}
}

// Save persists the snapshot in memory. The snapshot is copied by value.
func (s *Store) Save(ctx context.Context, controlID string, snapshot *domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[controlID] = *snapshot
	return nil
}

// Load retrieves a copy of the snapshot.
func (s *Store) Load(ctx context.Context, controlID string) (*domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.data[controlID]
	if !ok {
		return nil, domain.ErrSnapshotNotFound
	}
	return &snap, nil
}

// Delete removes the snapshot.
func (s *Store) Delete(ctx context.Context, controlID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, controlID)
	return nil
}

// List returns stored control IDs.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	return ids, nil
}
