package ratelimit

import (
	"context"
	"sync"
	"time"
)

// CounterStore tracks request counts per window key. Increment must be atomic
// with respect to concurrent calls for the same key.
type CounterStore interface {
	// Increment adds one to the counter under key, creating it with the given
	// lifetime if absent, and returns the new count.
	Increment(ctx context.Context, key string, lifetime time.Duration) (int64, error)

	// Reset drops all counters.
	Reset(ctx context.Context) error
}

// MemoryStore is a process-local CounterStore. State is not shared between
// instances, so multi-node deployments should use the Redis store instead.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
}

type memoryEntry struct {
	count     int64
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]*memoryEntry)}
}

func (s *MemoryStore) Increment(_ context.Context, key string, lifetime time.Duration) (int64, error) {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		// Window keys embed their window start, so stale entries are never
		// read again; purge them here to bound the map.
		for k, e := range s.entries {
			if now.After(e.expiresAt) {
				delete(s.entries, k)
			}
		}

		entry = &memoryEntry{expiresAt: now.Add(lifetime)}
		s.entries[key] = entry
	}

	entry.count++
	return entry.count, nil
}

func (s *MemoryStore) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]*memoryEntry)
	return nil
}
