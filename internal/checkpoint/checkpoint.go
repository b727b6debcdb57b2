// Package checkpoint persists the scanner cursor: the last block whose events
// are fully committed.
package checkpoint

import (
	"context"
	"errors"
	"fmt"
	"time"

	"openfund/internal/db"
)

// ErrConflict means the stored cursor no longer matches the value the caller
// started from, i.e. another scanner moved it.
var ErrConflict = errors.New("checkpoint moved concurrently")

type Checkpoint struct {
	Name      string `gorm:"primaryKey;size:64"`
	LastBlock uint64 `gorm:"not null"`
	UpdatedAt time.Time
}

func (Checkpoint) TableName() string { return "checkpoint" }

type Store struct {
	db   Storage
	name string
}

func NewStore(db Storage, name string) *Store {
	return &Store{
		db:   db,
		name: name,
	}
}

// Load returns the last committed block, or 0 when no cursor was saved yet.
func (s *Store) Load(ctx context.Context) (uint64, error) {
	var cp Checkpoint

	err := s.db.GetOneBy(ctx, "name", s.name, &cp)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("load checkpoint %q: %w", s.name, err)
	}

	return cp.LastBlock, nil
}

// Advance moves the cursor from one block to another with a compare-and-swap
// on the stored value.
func (s *Store) Advance(ctx context.Context, from, to uint64) error {
	rows, err := s.db.UpdateWhere(ctx, &Checkpoint{},
		map[string]any{"last_block": to},
		"name = ? AND last_block = ?", s.name, from)
	if err != nil {
		return fmt.Errorf("advance checkpoint %q to %d: %w", s.name, to, err)
	}
	if rows > 0 {
		return nil
	}

	if from != 0 {
		return fmt.Errorf("advance checkpoint %q from %d: %w", s.name, from, ErrConflict)
	}

	// first advance: the row does not exist yet
	inserted, err := s.db.InsertIgnore(ctx, &Checkpoint{Name: s.name, LastBlock: to})
	if err != nil {
		return fmt.Errorf("create checkpoint %q: %w", s.name, err)
	}
	if !inserted {
		return fmt.Errorf("create checkpoint %q: %w", s.name, ErrConflict)
	}

	return nil
}
