// Package sqlite stores control snapshots in a SQLite database.
//
// The schema ships with the package as embedded migrations and is applied by Open.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aretw0/paramlink/pkg/domain"
	_ "github.com/mattn/go-sqlite3"
)

// Store implements ports.SnapshotStore on SQLite.
type Store struct {
	db *sql.DB
}

// Open migrates the database at path and returns a store on it.
func Open(path string) (*Store, error) {
	if err := Migrate(path); err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1) // sqlite
	db.SetConnMaxLifetime(0)
	return &Store{db: db}, nil
}

// Save upserts the snapshot.
func (s *Store) Save(ctx context.Context, controlID string, snapshot *domain.Snapshot) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO snapshots (control_id, label, value, target, subtarget, parameter, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(control_id) DO UPDATE SET
			label = excluded.label,
			value = excluded.value,
			target = excluded.target,
			subtarget = excluded.subtarget,
			parameter = excluded.parameter,
			updated_at = excluded.updated_at`,
		controlID, snapshot.Label, snapshot.Value, snapshot.Target, snapshot.SubTarget, snapshot.Parameter)
	if err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", controlID, err)
	}
	return nil
}

// Load reads one snapshot.
func (s *Store) Load(ctx context.Context, controlID string) (*domain.Snapshot, error) {
	var snap domain.Snapshot
	err := s.db.QueryRowContext(ctx, `
		SELECT label, value, target, subtarget, parameter
		FROM snapshots WHERE control_id = ?`, controlID).
		Scan(&snap.Label, &snap.Value, &snap.Target, &snap.SubTarget, &snap.Parameter)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot %s: %w", controlID, err)
	}
	return &snap, nil
}

// Delete removes one snapshot. Deleting a missing snapshot is not an error.
func (s *Store) Delete(ctx context.Context, controlID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE control_id = ?`, controlID); err != nil {
		return fmt.Errorf("failed to delete snapshot %s: %w", controlID, err)
	}
	return nil
}

// List returns every stored control ID, oldest first.
func (s *Store) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT control_id FROM snapshots ORDER BY updated_at, control_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
