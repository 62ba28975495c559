// In-memory implementation of the Store interface, used in tests and when
// durability is not required.
//
// Characteristics:
//   - Records are kept by value, so callers never share state with the map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.

package store

import (
	"context"
	"sync"
)

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu      sync.RWMutex      // guards records
	records map[string]Record // keyed by date key
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{records: make(map[string]Record)}
}

// Save adds or replaces the record for dateKey.
func (m *memory) Save(ctx context.Context, dateKey string, r Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[dateKey] = r
	return nil
}

// Load looks up the record for dateKey.
func (m *memory) Load(ctx context.Context, dateKey string) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.records[dateKey]; ok {
		return r, nil
	}
	return Record{}, ErrNotFound
}
