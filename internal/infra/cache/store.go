// Package cache provides the CacheStore backends: in-process LRU, Redis and Postgres.
package cache

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"dashboard/config"
	"dashboard/internal/domain/lifecycle"
	"dashboard/internal/domain/service"
	"dashboard/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// ErrInvalidTTL is returned when an entry is written without a positive TTL.
var ErrInvalidTTL = errors.New("cache ttl must be positive")

// StoreParams holds dependencies for the CacheStore, injected by Fx.
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
}

// NewStore creates the CacheStore selected by cache.driver.
func NewStore(params StoreParams) (service.CacheStore, error) {
	cfg := params.Config.Cache
	logger := params.Logger

	var store service.CacheStore

	switch cfg.Driver {
	case config.CacheDriverMemory:
		memory, err := NewMemoryStore(cfg.Memory.MaxEntries)
		if err != nil {
			return nil, err
		}
		logger.Info("Using in-process cache", slog.Int("max_entries", cfg.Memory.MaxEntries))
		store = memory

	case config.CacheDriverRedis:
		if cfg.Redis.Addr == "" {
			return nil, errors.New("redis address is required for redis cache driver")
		}
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		logger.Info("Using Redis cache", slog.String("addr", cfg.Redis.Addr))

		params.Lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				return errors.Wrap(client.Ping(ctx).Err(), "failed to ping Redis")
			},
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
		store = NewRedisStore(client)

	case config.CacheDriverPostgres:
		pgStore := newPostgresStore(params.DB, time.Now)
		logger.Info("Using Postgres cache")

		sweepCtx, cancelSweep := context.WithCancel(context.Background())
		params.Lc.Append(fx.Hook{
			OnStart: func(_ context.Context) error {
				go pgStore.sweep(sweepCtx, logger, expiredSweepInterval)

				return nil
			},
			OnStop: func(_ context.Context) error {
				cancelSweep()

				return nil
			},
		})
		store = pgStore

	default:
		return nil, errors.Errorf("unknown cache driver: %s", cfg.Driver)
	}

	return WithKeyPrefix(store, cfg.KeyPrefix), nil
}

// prefixedStore namespaces every key so several deployments can share one backend.
type prefixedStore struct {
	next   service.CacheStore
	prefix string
}

// WithKeyPrefix returns store unchanged when prefix is empty.
func WithKeyPrefix(store service.CacheStore, prefix string) service.CacheStore {
	if prefix == "" {
		return store
	}

	return &prefixedStore{next: store, prefix: prefix + ":"}
}

func (s *prefixedStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.next.Get(ctx, s.prefix+key)
}

func (s *prefixedStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.next.Set(ctx, s.prefix+key, value, ttl)
}

func (s *prefixedStore) MGet(ctx context.Context, keys []string) (map[string][]byte, error) {
	prefixed := make([]string, len(keys))
	for i, key := range keys {
		prefixed[i] = s.prefix + key
	}

	found, err := s.next.MGet(ctx, prefixed)
	if err != nil {
		return nil, err
	}

	result := make(map[string][]byte, len(found))
	for key, value := range found {
		result[strings.TrimPrefix(key, s.prefix)] = value
	}

	return result, nil
}

func (s *prefixedStore) MSet(ctx context.Context, entries []service.CacheEntry) error {
	prefixed := make([]service.CacheEntry, len(entries))
	for i, entry := range entries {
		prefixed[i] = service.CacheEntry{Key: s.prefix + entry.Key, Value: entry.Value, TTL: entry.TTL}
	}

	return s.next.MSet(ctx, prefixed)
}

// Module provides the cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewStore),
)
