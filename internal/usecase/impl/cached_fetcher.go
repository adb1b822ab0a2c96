package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	deliverycontext "dashboard/internal/delivery/context"
	domainerrors "dashboard/internal/domain/errors"
	"dashboard/internal/domain/service"

	"golang.org/x/sync/singleflight"
)

// cachedFetcher is the cache-aside shape shared by every data source: read the
// key, load on miss, store the result. Failed loads are never cached and
// cache backend errors degrade to a miss.
type cachedFetcher[T any] struct {
	dataClass string
	ttl       time.Duration
	cache     service.CacheStore
	metrics   service.Metrics
	logger    *slog.Logger

	// nil disables in-flight deduplication.
	flight      *singleflight.Group
	loadTimeout time.Duration
}

func newCachedFetcher[T any](dataClass string, ttl time.Duration, deps fetcherDeps) *cachedFetcher[T] {
	f := &cachedFetcher[T]{
		dataClass: dataClass,
		ttl:       ttl,
		cache:     deps.cache,
		metrics:   deps.metrics,
		logger:    deps.logger,

		loadTimeout: deps.loadTimeout,
	}
	if deps.singleFlight {
		f.flight = &singleflight.Group{}
	}

	return f
}

type fetcherDeps struct {
	cache        service.CacheStore
	metrics      service.Metrics
	logger       *slog.Logger
	singleFlight bool
	loadTimeout  time.Duration
}

func (f *cachedFetcher[T]) fetch(ctx context.Context, key string, load func(context.Context) (T, error)) (T, error) {
	if value, ok := f.lookup(ctx, key); ok {
		return value, nil
	}

	if f.flight == nil {
		return f.loadAndStore(ctx, key, load)
	}

	// Joiners share the result, so the load must not die with the caller that
	// started it. It keeps the caller's values (request id, logger) and gets
	// its own deadline instead.
	ch := f.flight.DoChan(key, func() (any, error) {
		loadCtx := context.WithoutCancel(ctx)
		if f.loadTimeout > 0 {
			var cancel context.CancelFunc
			loadCtx, cancel = context.WithTimeout(loadCtx, f.loadTimeout)
			defer cancel()
		}

		return f.loadAndStore(loadCtx, key, load)
	})

	select {
	case <-ctx.Done():
		var zero T

		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			var zero T

			return zero, res.Err
		}

		return res.Val.(T), nil
	}
}

func (f *cachedFetcher[T]) lookup(ctx context.Context, key string) (T, bool) {
	var value T

	raw, ok, err := f.cache.Get(ctx, key)
	if err != nil {
		f.log(ctx).Warn("Cache read failed, treating as miss",
			slog.String("key", key),
			slog.Any("error", err),
		)
		ok = false
	}
	if ok {
		if err := json.Unmarshal(raw, &value); err != nil {
			f.log(ctx).Warn("Cached value is corrupt, treating as miss",
				slog.String("key", key),
				slog.Any("error", err),
			)
			ok = false
		}
	}

	f.metrics.CacheLookup(f.dataClass, ok)

	return value, ok
}

func (f *cachedFetcher[T]) loadAndStore(ctx context.Context, key string, load func(context.Context) (T, error)) (T, error) {
	value, err := load(ctx)
	if err != nil {
		var zero T
		f.metrics.UpstreamFailure(f.dataClass)

		if domainerrors.RequiresReauth(err) {
			return zero, err
		}

		return zero, domainerrors.NewUpstreamUnavailableError(f.dataClass, err)
	}

	raw, err := json.Marshal(value)
	if err != nil {
		f.log(ctx).Warn("Failed to encode value for cache", slog.String("key", key), slog.Any("error", err))

		return value, nil
	}

	if err := f.cache.Set(ctx, key, raw, f.ttl); err != nil {
		f.log(ctx).Warn("Cache write failed", slog.String("key", key), slog.Any("error", err))
	}

	return value, nil
}

func (f *cachedFetcher[T]) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, f.logger)
}
