package cache

import (
	"context"
	"time"

	"dashboard/internal/domain/service"
	"dashboard/internal/errors"

	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultMemoryMaxEntries = 100_000

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// memoryStore is a process-local CacheStore. The LRU bound keeps memory flat
// when many identities browse at once; expiry is checked on every read.
type memoryStore struct {
	entries *lru.Cache[string, memoryEntry]
	now     func() time.Time
}

// NewMemoryStore creates an in-process CacheStore holding at most maxEntries keys.
func NewMemoryStore(maxEntries int) (service.CacheStore, error) {
	return newMemoryStore(maxEntries, time.Now)
}

func newMemoryStore(maxEntries int, now func() time.Time) (*memoryStore, error) {
	if maxEntries <= 0 {
		maxEntries = defaultMemoryMaxEntries
	}

	entries, err := lru.New[string, memoryEntry](maxEntries)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create LRU cache")
	}

	return &memoryStore{entries: entries, now: now}, nil
}

func (s *memoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	entry, ok := s.entries.Get(key)
	if !ok {
		return nil, false, nil
	}

	// Reads never remove; expired entries stay until Set or eviction replaces them.
	if !s.now().Before(entry.expiresAt) {
		return nil, false, nil
	}

	return entry.value, true, nil
}

func (s *memoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return errors.Wrapf(ErrInvalidTTL, "key %s", key)
	}

	s.entries.Add(key, memoryEntry{value: value, expiresAt: s.now().Add(ttl)})

	return nil
}

func (s *memoryStore) MGet(ctx context.Context, keys []string) (map[string][]byte, error) {
	found := make(map[string][]byte, len(keys))
	for _, key := range keys {
		value, ok, _ := s.Get(ctx, key)
		if ok {
			found[key] = value
		}
	}

	return found, nil
}

func (s *memoryStore) MSet(ctx context.Context, entries []service.CacheEntry) error {
	for _, entry := range entries {
		if err := s.Set(ctx, entry.Key, entry.Value, entry.TTL); err != nil {
			return err
		}
	}

	return nil
}
