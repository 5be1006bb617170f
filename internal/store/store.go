// internal/store/store.go
//
// Persistence for play sessions.
//
// A session is saved as a Snapshot: plain data only (remaining word pool,
// statistics, round counter). Nothing in here knows about the game engine's
// in-memory objects, so any backend only has to store one value.

package store

import (
	"context"
	"errors"
	"time"

	"github.com/robalobadob/wordle/apps/termle/internal/stats"
)

// SnapshotVersion is written with every snapshot.
const SnapshotVersion = 1

// ErrNoSnapshot is returned by Load when nothing has been saved.
var ErrNoSnapshot = errors.New("no saved session")

// Snapshot is everything needed to resume a session.
type Snapshot struct {
	Version         int              `json:"version"`
	Unused          []string         `json:"unused"`
	Stats           stats.Statistics `json:"stats"`
	CompletedRounds int              `json:"completedRounds"`
	SavedAt         time.Time        `json:"savedAt"`
}

// Store defines the persistence interface for session snapshots.
// Implementations may be backed by memory (memory.go) or SQLite (sqlite.go).
type Store interface {
	// Load returns the saved snapshot or ErrNoSnapshot.
	Load(ctx context.Context) (*Snapshot, error)

	// Save replaces the saved snapshot.
	Save(ctx context.Context, s *Snapshot) error

	// Clear removes the saved snapshot, if any.
	Clear(ctx context.Context) error
}
