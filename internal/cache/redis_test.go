package cache_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/feral-file/ff-awards/internal/adapter"
	"github.com/feral-file/ff-awards/internal/cache"
	"github.com/feral-file/ff-awards/internal/mocks"
)

func TestRedisBackend_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockRedisClient(ctrl)
	backend := cache.NewRedisBackend(client, time.Hour)
	ctx := context.Background()

	t.Run("hit", func(t *testing.T) {
		client.EXPECT().Get(gomock.Any(), "k").Return("7", true, nil)

		value, ok, err := backend.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, int64(7), value)
	})

	t.Run("miss", func(t *testing.T) {
		client.EXPECT().Get(gomock.Any(), "k").Return("", false, nil)

		_, ok, err := backend.Get(ctx, "k")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("garbage value", func(t *testing.T) {
		client.EXPECT().Get(gomock.Any(), "k").Return("seven", true, nil)

		_, _, err := backend.Get(ctx, "k")
		assert.Error(t, err)
	})

	t.Run("client error", func(t *testing.T) {
		client.EXPECT().Get(gomock.Any(), "k").Return("", false, errors.New("i/o timeout"))

		_, _, err := backend.Get(ctx, "k")
		assert.Error(t, err)
	})
}

func TestRedisBackend_SetUsesDefaultTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockRedisClient(ctrl)
	backend := cache.NewRedisBackend(client, time.Hour)

	client.EXPECT().Set(gomock.Any(), "k", "3", time.Hour).Return(nil)
	client.EXPECT().Set(gomock.Any(), "k", "4", time.Minute).Return(nil)

	require.NoError(t, backend.Set(context.Background(), "k", 3, 0))
	require.NoError(t, backend.Set(context.Background(), "k", 4, time.Minute))
}

func TestRedisBackend_AddIfExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockRedisClient(ctrl)
	backend := cache.NewRedisBackend(client, time.Hour)
	ctx := context.Background()

	client.EXPECT().RunScript(gomock.Any(), gomock.Any(), []string{"k"}, int64(1)).Return(int64(2), nil)
	value, ok, err := backend.AddIfExists(ctx, "k", 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(2), value)

	client.EXPECT().RunScript(gomock.Any(), gomock.Any(), []string{"k"}, int64(-1)).Return(nil, nil)
	_, ok, err = backend.AddIfExists(ctx, "k", -1)
	require.NoError(t, err)
	assert.False(t, ok)

	client.EXPECT().RunScript(gomock.Any(), gomock.Any(), []string{"k"}, int64(1)).Return("2", nil)
	_, _, err = backend.AddIfExists(ctx, "k", 1)
	assert.Error(t, err)
}

// redisAddr starts a Redis container unless TEST_REDIS_ADDR points at one
func redisAddr(t *testing.T) string {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping Redis integration test in short mode")
	}
	if addr := os.Getenv("TEST_REDIS_ADDR"); addr != "" {
		return addr
	}

	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		t.Skipf("redis container unavailable: %v", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	addr, err := container.Endpoint(ctx, "")
	require.NoError(t, err)
	return addr
}

func TestRedisBackend_Integration(t *testing.T) {
	addr := redisAddr(t)
	client := adapter.NewRedisClient(addr, "", 0)
	defer func() { _ = client.Close() }()

	ctx := context.Background()
	require.NoError(t, client.Ping(ctx))

	backend := cache.NewRedisBackend(client, time.Minute)
	key := "award:unseen:integration"
	require.NoError(t, backend.Delete(ctx, key))

	// Absent keys are never created by an adjustment
	_, ok, err := backend.AddIfExists(ctx, key, 1)
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = backend.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, backend.Set(ctx, key, 1, 0))

	value, ok, err := backend.AddIfExists(ctx, key, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(2), value)

	for range 4 {
		_, _, err = backend.AddIfExists(ctx, key, -1)
		require.NoError(t, err)
	}
	value, ok, err = backend.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(0), value)

	require.NoError(t, backend.Delete(ctx, key))
	_, ok, err = backend.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)
}
