package cache_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-awards/internal/cache"
	"github.com/feral-file/ff-awards/internal/domain"
	"github.com/feral-file/ff-awards/internal/mocks"
)

const recipient = domain.UserID(42)

// testCacheMocks contains the mocks and cache under test
type testCacheMocks struct {
	ctrl    *gomock.Controller
	ledger  *mocks.MockActiveGrantCounter
	backend *cache.MemoryBackend
	unseen  cache.UnseenCounts
}

func setupTestCache(t *testing.T) *testCacheMocks {
	ctrl := gomock.NewController(t)

	tm := &testCacheMocks{
		ctrl:    ctrl,
		ledger:  mocks.NewMockActiveGrantCounter(ctrl),
		backend: cache.NewMemoryBackend(100, time.Hour),
	}
	tm.unseen = cache.NewUnseenCounts(tm.backend, tm.ledger, time.Hour)

	return tm
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "award:unseen:42", cache.UnseenKey(recipient))
	assert.Equal(t, "user:profile:system_gifts:42", cache.ProfileKey(recipient))
}

func TestUnseenCounts_GetOrCompute_MissThenHit(t *testing.T) {
	tm := setupTestCache(t)
	ctx := context.Background()

	tm.ledger.EXPECT().CountActiveGrants(gomock.Any(), recipient).Return(3, nil).Times(1)

	count, err := tm.unseen.GetOrCompute(ctx, recipient)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	// Served from cache, no second ledger call
	count, err = tm.unseen.GetOrCompute(ctx, recipient)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	cached, ok, err := tm.unseen.Get(ctx, recipient)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3, cached)
}

func TestUnseenCounts_Get_Miss(t *testing.T) {
	tm := setupTestCache(t)

	count, ok, err := tm.unseen.Get(context.Background(), recipient)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, count)
}

func TestUnseenCounts_IncrementMissingKeyStaysMissing(t *testing.T) {
	tm := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, tm.unseen.Increment(ctx, recipient))
	require.NoError(t, tm.unseen.Decrement(ctx, recipient))

	_, ok, err := tm.unseen.Get(ctx, recipient)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUnseenCounts_IncrementDecrement(t *testing.T) {
	tm := setupTestCache(t)
	ctx := context.Background()

	tm.ledger.EXPECT().CountActiveGrants(gomock.Any(), recipient).Return(1, nil)

	_, err := tm.unseen.GetOrCompute(ctx, recipient)
	require.NoError(t, err)

	require.NoError(t, tm.unseen.Increment(ctx, recipient))
	count, _, err := tm.unseen.Get(ctx, recipient)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	for range 5 {
		require.NoError(t, tm.unseen.Decrement(ctx, recipient))
	}
	count, ok, err := tm.unseen.Get(ctx, recipient)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0, count, "decrement never goes below zero")
}

func TestUnseenCounts_InvalidateThenRecompute(t *testing.T) {
	tm := setupTestCache(t)
	ctx := context.Background()

	gomock.InOrder(
		tm.ledger.EXPECT().CountActiveGrants(gomock.Any(), recipient).Return(2, nil),
		tm.ledger.EXPECT().CountActiveGrants(gomock.Any(), recipient).Return(1, nil),
	)

	count, err := tm.unseen.GetOrCompute(ctx, recipient)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, tm.unseen.Invalidate(ctx, recipient))

	count, err = tm.unseen.GetOrCompute(ctx, recipient)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "recomputed value equals the ledger count")
}

func TestUnseenCounts_LedgerError(t *testing.T) {
	tm := setupTestCache(t)
	ledgerErr := errors.New("connection refused")

	tm.ledger.EXPECT().CountActiveGrants(gomock.Any(), recipient).Return(0, ledgerErr)

	_, err := tm.unseen.GetOrCompute(context.Background(), recipient)
	require.Error(t, err)
	assert.ErrorIs(t, err, ledgerErr)

	_, ok, err := tm.unseen.Get(context.Background(), recipient)
	require.NoError(t, err)
	assert.False(t, ok, "failed computation is not cached")
}

func TestUnseenCounts_ConcurrentMisses(t *testing.T) {
	tm := setupTestCache(t)
	ctx := context.Background()

	tm.ledger.EXPECT().
		CountActiveGrants(gomock.Any(), recipient).
		DoAndReturn(func(ctx context.Context, id domain.UserID) (int, error) {
			time.Sleep(20 * time.Millisecond)
			return 4, nil
		}).
		MinTimes(1).
		MaxTimes(10)

	var wg sync.WaitGroup
	results := make([]int, 10)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			count, err := tm.unseen.GetOrCompute(ctx, recipient)
			assert.NoError(t, err)
			results[i] = count
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, 4, r)
	}
}

func TestUnseenCounts_CancelledCallerDoesNotFailWaiters(t *testing.T) {
	tm := setupTestCache(t)

	started := make(chan struct{})
	release := make(chan struct{})
	tm.ledger.EXPECT().
		CountActiveGrants(gomock.Any(), recipient).
		DoAndReturn(func(ctx context.Context, id domain.UserID) (int, error) {
			close(started)
			<-release
			return 5, ctx.Err()
		}).
		Times(1)

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := tm.unseen.GetOrCompute(firstCtx, recipient)
		firstErr <- err
	}()
	<-started

	type result struct {
		count int
		err   error
	}
	second := make(chan result, 1)
	go func() {
		count, err := tm.unseen.GetOrCompute(context.Background(), recipient)
		second <- result{count, err}
	}()

	cancelFirst()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	// Give the second caller time to join the shared computation
	time.Sleep(20 * time.Millisecond)
	close(release)

	res := <-second
	require.NoError(t, res.err)
	assert.Equal(t, 5, res.count)

	cached, ok, err := tm.unseen.Get(context.Background(), recipient)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 5, cached)
}

func TestUnseenCounts_BackendFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockCacheBackend(ctrl)
	ledger := mocks.NewMockActiveGrantCounter(ctrl)
	unseen := cache.NewUnseenCounts(backend, ledger, time.Minute)
	ctx := context.Background()
	backendErr := errors.New("redis down")

	t.Run("read failure falls back to ledger", func(t *testing.T) {
		backend.EXPECT().Get(gomock.Any(), "award:unseen:42").Return(int64(0), false, backendErr)
		ledger.EXPECT().CountActiveGrants(gomock.Any(), recipient).Return(6, nil)
		backend.EXPECT().Set(gomock.Any(), "award:unseen:42", int64(6), time.Minute).Return(backendErr)

		count, err := unseen.GetOrCompute(ctx, recipient)
		require.NoError(t, err)
		assert.Equal(t, 6, count)
	})

	t.Run("increment failure is unavailable", func(t *testing.T) {
		backend.EXPECT().AddIfExists(gomock.Any(), "award:unseen:42", int64(1)).Return(int64(0), false, backendErr)

		err := unseen.Increment(ctx, recipient)
		assert.ErrorIs(t, err, domain.ErrUnavailable)
		assert.True(t, cache.IsUnavailable(err))
	})

	t.Run("decrement sends negative delta", func(t *testing.T) {
		backend.EXPECT().AddIfExists(gomock.Any(), "award:unseen:42", int64(-1)).Return(int64(0), true, nil)

		assert.NoError(t, unseen.Decrement(ctx, recipient))
	})

	t.Run("invalidate failure is unavailable", func(t *testing.T) {
		backend.EXPECT().Delete(gomock.Any(), "award:unseen:42").Return(backendErr)

		assert.ErrorIs(t, unseen.Invalidate(ctx, recipient), domain.ErrUnavailable)
	})

	t.Run("purge profile deletes the profile key", func(t *testing.T) {
		backend.EXPECT().Delete(gomock.Any(), "user:profile:system_gifts:42").Return(nil)

		assert.NoError(t, unseen.PurgeProfile(ctx, recipient))
	})
}

func TestMemoryBackend_Expiry(t *testing.T) {
	backend := cache.NewMemoryBackend(10, 30*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, backend.Set(ctx, "k", 5, 0))
	value, ok, err := backend.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(5), value)

	time.Sleep(100 * time.Millisecond)

	_, ok, err = backend.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	_, existed, err := backend.AddIfExists(ctx, "k", 1)
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestMemoryBackend_Eviction(t *testing.T) {
	backend := cache.NewMemoryBackend(2, time.Hour)
	ctx := context.Background()

	require.NoError(t, backend.Set(ctx, "a", 1, 0))
	require.NoError(t, backend.Set(ctx, "b", 2, 0))
	require.NoError(t, backend.Set(ctx, "c", 3, 0))

	_, ok, _ := backend.Get(ctx, "a")
	assert.False(t, ok, "least recently used entry is evicted")
	_, ok, _ = backend.Get(ctx, "c")
	assert.True(t, ok)
}
