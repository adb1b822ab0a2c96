package cache

import (
	"context"
	"time"

	"dashboard/internal/domain/service"
	"dashboard/internal/errors"

	"github.com/redis/go-redis/v9"
)

// redisStore is a CacheStore shared by every dashboard replica.
// Expiry is delegated to Redis via SET EX.
type redisStore struct {
	client redis.UniversalClient
}

// NewRedisStore wraps an existing Redis client.
func NewRedisStore(client redis.UniversalClient) service.CacheStore {
	return &redisStore{client: client}
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "redis GET %s", key)
	}

	return value, true, nil
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return errors.Wrapf(ErrInvalidTTL, "key %s", key)
	}

	return errors.Wrapf(s.client.Set(ctx, key, value, ttl).Err(), "redis SET %s", key)
}

func (s *redisStore) MGet(ctx context.Context, keys []string) (map[string][]byte, error) {
	found := make(map[string][]byte, len(keys))
	if len(keys) == 0 {
		return found, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "redis MGET")
	}

	for i, value := range values {
		// Missing keys come back as nil.
		if str, ok := value.(string); ok {
			found[keys[i]] = []byte(str)
		}
	}

	return found, nil
}

func (s *redisStore) MSet(ctx context.Context, entries []service.CacheEntry) error {
	if len(entries) == 0 {
		return nil
	}

	for _, entry := range entries {
		if entry.TTL <= 0 {
			return errors.Wrapf(ErrInvalidTTL, "key %s", entry.Key)
		}
	}

	// MSET has no per-key expiry, so pipeline individual SET EX calls.
	_, err := s.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, entry := range entries {
			pipe.Set(ctx, entry.Key, entry.Value, entry.TTL)
		}

		return nil
	})

	return errors.Wrap(err, "redis pipelined SET")
}
