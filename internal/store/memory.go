// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// Used when no database is configured and in tests.
//
// Characteristics:
//   - Holds a deep copy of the last saved snapshot.
//   - Concurrency-safe via RWMutex (the HTTP view may read while nothing writes).
//   - State is lost when the process restarts.

package store

import (
	"context"
	"sync"
)

// memory is a Store that keeps the snapshot in process memory.
type memory struct {
	mu   sync.RWMutex // guards snap
	snap *Snapshot
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{}
}

// Load returns a copy of the saved snapshot.
func (m *memory) Load(ctx context.Context) (*Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.snap == nil {
		return nil, ErrNoSnapshot
	}
	return clone(m.snap), nil
}

// Save stores a copy so later mutation by the caller is not visible.
func (m *memory) Save(ctx context.Context, s *Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = clone(s)
	return nil
}

func (m *memory) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = nil
	return nil
}

func clone(s *Snapshot) *Snapshot {
	c := *s
	c.Unused = append([]string(nil), s.Unused...)
	if s.Stats.Histogram != nil {
		c.Stats.Histogram = make(map[int]int, len(s.Stats.Histogram))
		for k, v := range s.Stats.Histogram {
			c.Stats.Histogram[k] = v
		}
	}
	return &c
}
