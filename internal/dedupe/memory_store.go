package dedupe

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is a process-local Store. Entries are purged opportunistically
// on every Add and best-effort via a per-entry expiry timer, so the map does
// not grow unbounded. State is lost on restart and not shared across
// instances; the Redis store is the upgrade path.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]time.Time // key -> expiry

	// now is swappable for tests
	now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (s *MemoryStore) Add(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.purgeLocked(now)

	if expiry, ok := s.entries[key]; ok && now.Before(expiry) {
		return false, nil
	}

	s.entries[key] = now.Add(ttl)
	time.AfterFunc(ttl, func() { s.expire(key) })
	return true, nil
}

// Len reports the number of live entries.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// expire removes key if its entry has lapsed. Called from the expiry timer;
// a key re-added with a fresh TTL in the meantime is left alone.
func (s *MemoryStore) expire(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if expiry, ok := s.entries[key]; ok && !s.now().Before(expiry) {
		delete(s.entries, key)
	}
}

func (s *MemoryStore) purgeLocked(now time.Time) {
	for key, expiry := range s.entries {
		if !now.Before(expiry) {
			delete(s.entries, key)
		}
	}
}
