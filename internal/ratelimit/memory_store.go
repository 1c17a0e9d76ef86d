package ratelimit

import (
	"context"
	"sync"
	"time"
)

// memoryEntry is one fixed-window counter.
type memoryEntry struct {
	count     int64
	expiresAt time.Time
}

// MemoryStore is an in-process CounterStore. Expired entries are swept lazily
// on each increment, so the map stays bounded by active keys. Counters reset
// on restart; use the Redis store when running more than one instance.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	now     func() time.Time
}

// NewMemoryStore creates an empty in-memory counter store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*memoryEntry),
		now:     time.Now,
	}
}

// Incr implements CounterStore.
func (s *MemoryStore) Incr(ctx context.Context, key string, window time.Duration) (int64, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	// Lazy expiry sweep.
	for k, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, k)
		}
	}

	entry, ok := s.entries[key]
	if !ok {
		entry = &memoryEntry{expiresAt: now.Add(window)}
		s.entries[key] = entry
	}

	entry.count++
	return entry.count, entry.expiresAt, nil
}

// Ensure MemoryStore implements CounterStore
var _ CounterStore = (*MemoryStore)(nil)
