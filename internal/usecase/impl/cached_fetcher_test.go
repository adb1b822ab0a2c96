package impl

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	domainerrors "dashboard/internal/domain/errors"
	"dashboard/internal/errors"
	mockSvc "dashboard/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFetcher(t *testing.T, singleFlight bool) *cachedFetcher[[]string] {
	return newCachedFetcher[[]string](dataClassUserAccess, time.Minute, fetcherDeps{
		cache:        newMemoryCache(t),
		metrics:      newLenientMetrics(t),
		logger:       newDiscardLogger(),
		singleFlight: singleFlight,
	})
}

func TestCachedFetcher_LoadsOnceWithinTTL(t *testing.T) {
	f := newTestFetcher(t, false)
	ctx := context.Background()

	var loads atomic.Int32
	load := func(context.Context) ([]string, error) {
		loads.Add(1)

		return []string{"g1", "g2"}, nil
	}

	first, err := f.fetch(ctx, "k", load)
	require.NoError(t, err)
	second, err := f.fetch(ctx, "k", load)
	require.NoError(t, err)

	assert.Equal(t, []string{"g1", "g2"}, first)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), loads.Load())
}

func TestCachedFetcher_FailuresAreNotCached(t *testing.T) {
	f := newTestFetcher(t, false)
	ctx := context.Background()

	_, err := f.fetch(ctx, "k", func(context.Context) ([]string, error) {
		return nil, errors.New("connection refused")
	})
	var upstreamErr *domainerrors.UpstreamUnavailableError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, dataClassUserAccess, upstreamErr.Source)

	value, err := f.fetch(ctx, "k", func(context.Context) ([]string, error) {
		return []string{"g1"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"g1"}, value)
}

func TestCachedFetcher_CredentialExpiredPassesThrough(t *testing.T) {
	f := newTestFetcher(t, false)

	_, err := f.fetch(context.Background(), "k", func(context.Context) ([]string, error) {
		return nil, domainerrors.ErrCredentialExpired.WrapMessage("401")
	})

	assert.ErrorIs(t, err, domainerrors.ErrCredentialExpired)
	var upstreamErr *domainerrors.UpstreamUnavailableError
	assert.False(t, errors.As(err, &upstreamErr))
}

func TestCachedFetcher_CacheErrorsDegradeToMiss(t *testing.T) {
	store := mockSvc.NewMockCacheStore(t)
	f := newCachedFetcher[[]string](dataClassUserAccess, time.Minute, fetcherDeps{
		cache:   store,
		metrics: newLenientMetrics(t),
		logger:  newDiscardLogger(),
	})
	ctx := context.Background()

	store.EXPECT().Get(ctx, "k").Return(nil, false, errors.New("redis down"))
	store.EXPECT().Set(ctx, "k", []byte(`["g1"]`), time.Minute).Return(errors.New("redis down"))

	value, err := f.fetch(ctx, "k", func(context.Context) ([]string, error) {
		return []string{"g1"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"g1"}, value)
}

func TestCachedFetcher_CorruptEntryIsMiss(t *testing.T) {
	f := newTestFetcher(t, false)
	ctx := context.Background()
	require.NoError(t, f.cache.Set(ctx, "k", []byte("{not json"), time.Minute))

	value, err := f.fetch(ctx, "k", func(context.Context) ([]string, error) {
		return []string{"fresh"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"fresh"}, value)
}

func TestCachedFetcher_SingleFlightCollapsesConcurrentLoads(t *testing.T) {
	f := newTestFetcher(t, true)
	ctx := context.Background()

	release := make(chan struct{})
	var loads atomic.Int32
	load := func(context.Context) ([]string, error) {
		loads.Add(1)
		<-release

		return []string{"g1"}, nil
	}

	const callers = 8
	var (
		wg      sync.WaitGroup
		started sync.WaitGroup
	)
	results := make([][]string, callers)
	started.Add(callers)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			started.Done()
			results[i], _ = f.fetch(ctx, "k", load)
		}()
	}

	started.Wait()
	// Give every caller time to join the flight before the load returns.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), loads.Load())
	for _, r := range results {
		assert.Equal(t, []string{"g1"}, r)
	}
}

func TestCachedFetcher_SharedLoadSurvivesFirstCallerCancel(t *testing.T) {
	f := newTestFetcher(t, true)

	loadStarted := make(chan struct{})
	release := make(chan struct{})
	var loadCtxErr atomic.Value
	var loads atomic.Int32
	load := func(ctx context.Context) ([]string, error) {
		if loads.Add(1) == 1 {
			close(loadStarted)
		}
		<-release
		if err := ctx.Err(); err != nil {
			loadCtxErr.Store(err)

			return nil, err
		}

		return []string{"g1"}, nil
	}

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstDone := make(chan error, 1)
	go func() {
		_, err := f.fetch(firstCtx, "k", load)
		firstDone <- err
	}()
	<-loadStarted

	type result struct {
		value []string
		err   error
	}
	secondDone := make(chan result, 1)
	go func() {
		value, err := f.fetch(context.Background(), "k", load)
		secondDone <- result{value: value, err: err}
	}()
	// Let the second caller join the flight.
	time.Sleep(50 * time.Millisecond)

	cancelFirst()
	assert.ErrorIs(t, <-firstDone, context.Canceled)

	close(release)
	second := <-secondDone
	require.NoError(t, second.err)
	assert.Equal(t, []string{"g1"}, second.value)
	assert.Nil(t, loadCtxErr.Load(), "the shared load must not see the first caller's cancellation")

	// The result was stored even though the caller that started it left.
	value, ok := f.lookup(context.Background(), "k")
	assert.True(t, ok)
	assert.Equal(t, []string{"g1"}, value)
}

func TestCachedFetcher_RecordsMetrics(t *testing.T) {
	metrics := mockSvc.NewMockMetrics(t)
	f := newCachedFetcher[[]string](dataClassBotGuilds, time.Minute, fetcherDeps{
		cache:   newMemoryCache(t),
		metrics: metrics,
		logger:  newDiscardLogger(),
	})
	ctx := context.Background()

	metrics.EXPECT().CacheLookup(dataClassBotGuilds, false).Once()
	metrics.EXPECT().UpstreamFailure(dataClassBotGuilds).Once()
	_, _ = f.fetch(ctx, "k", func(context.Context) ([]string, error) { return nil, errors.New("down") })

	metrics.EXPECT().CacheLookup(dataClassBotGuilds, false).Once()
	_, _ = f.fetch(ctx, "k", func(context.Context) ([]string, error) { return []string{}, nil })

	metrics.EXPECT().CacheLookup(dataClassBotGuilds, true).Once()
	_, err := f.fetch(ctx, "k", func(context.Context) ([]string, error) {
		t.Fatal("load must not run on a hit")

		return nil, nil
	})
	assert.NoError(t, err)
}
