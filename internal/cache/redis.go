package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/feral-file/ff-awards/internal/adapter"
)

// addIfExists adds ARGV[1] to KEYS[1] only when the key is present, clamping at zero.
// The remaining TTL is preserved.
var addIfExists = redis.NewScript(`
local current = redis.call('GET', KEYS[1])
if not current then
	return nil
end
local updated = tonumber(current) + tonumber(ARGV[1])
if updated < 0 then
	updated = 0
end
redis.call('SET', KEYS[1], updated, 'KEEPTTL')
return updated
`)

// RedisBackend stores counters in Redis
type RedisBackend struct {
	client     adapter.RedisClient
	defaultTTL time.Duration
}

// NewRedisBackend creates a Redis-backed cache backend
func NewRedisBackend(client adapter.RedisClient, defaultTTL time.Duration) *RedisBackend {
	return &RedisBackend{
		client:     client,
		defaultTTL: defaultTTL,
	}
}

// Get returns the counter stored at key
func (b *RedisBackend) Get(ctx context.Context, key string) (int64, bool, error) {
	raw, ok, err := b.client.Get(ctx, key)
	if err != nil || !ok {
		return 0, false, err
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid counter at %s: %w", key, err)
	}

	return value, true, nil
}

// Set stores a counter
func (b *RedisBackend) Set(ctx context.Context, key string, value int64, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = b.defaultTTL
	}
	return b.client.Set(ctx, key, strconv.FormatInt(value, 10), ttl)
}

// Delete removes a key
func (b *RedisBackend) Delete(ctx context.Context, key string) error {
	return b.client.Del(ctx, key)
}

// AddIfExists atomically adjusts an existing counter on the server
func (b *RedisBackend) AddIfExists(ctx context.Context, key string, delta int64) (int64, bool, error) {
	result, err := b.client.RunScript(ctx, addIfExists, []string{key}, delta)
	if err != nil {
		return 0, false, err
	}
	if result == nil {
		return 0, false, nil
	}

	value, ok := result.(int64)
	if !ok {
		return 0, false, fmt.Errorf("unexpected script reply %T", result)
	}

	return value, true, nil
}
