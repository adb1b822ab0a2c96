package service

import (
	"context"
	"time"
)

// CacheEntry is one value to store with its own time-to-live.
type CacheEntry struct {
	Key   string
	Value []byte
	TTL   time.Duration
}

// CacheStore is a key/value store with per-entry expiry.
//
// A read after an entry's expiry is a miss. Writes overwrite. The batched
// variants behave like looping Get/Set and give no cross-key atomicity.
type CacheStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	MGet(ctx context.Context, keys []string) (map[string][]byte, error)
	MSet(ctx context.Context, entries []CacheEntry) error
}
