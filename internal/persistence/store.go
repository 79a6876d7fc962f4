// Package persistence holds the snapshot contract between the in-memory
// economy and durable storage, plus the file and redis strategies.
// SQL strategies live under internal/database.
package persistence

import (
	"context"
	"maps"
)

// Snapshot is the full persisted state: every balance and every last daily
// claim date (UTC, YYYY-MM-DD).
type Snapshot struct {
	Balances    map[string]int64  `json:"balances"`
	DailyClaims map[string]string `json:"dailyClaims"`
}

// NewSnapshot returns a snapshot with non-nil maps.
func NewSnapshot() Snapshot {
	return Snapshot{
		Balances:    make(map[string]int64),
		DailyClaims: make(map[string]string),
	}
}

// Normalize replaces nil maps with empty ones.
func (s Snapshot) Normalize() Snapshot {
	if s.Balances == nil {
		s.Balances = make(map[string]int64)
	}
	if s.DailyClaims == nil {
		s.DailyClaims = make(map[string]string)
	}
	return s
}

// Clone deep-copies the snapshot.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Balances:    maps.Clone(s.Balances),
		DailyClaims: maps.Clone(s.DailyClaims),
	}.Normalize()
}

// Store reads and writes whole snapshots. Load on a store that has never been
// written returns an empty snapshot and no error. Save overwrites the
// previous snapshot entirely.
type Store interface {
	Load(ctx context.Context) (Snapshot, error)
	Save(ctx context.Context, snap Snapshot) error
	Close() error
}

// Nop keeps nothing. Every restart begins with empty state.
type Nop struct{}

func (Nop) Load(context.Context) (Snapshot, error) { return NewSnapshot(), nil }
func (Nop) Save(context.Context, Snapshot) error { return nil }
func (Nop) Close() error { return nil }

var _ Store = Nop{}
