package cache_test

import (
	"context"
	"kasaglow/infras/otel/mocks"
	"kasaglow/shared/cache"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, cache.RedisCache) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return mr, cache.NewRedisCache(client, mocks.NewOtel())
}

func TestNewRedisCache_NilClient(t *testing.T) {
	assert.Nil(t, cache.NewRedisCache(nil, mocks.NewOtel()))
}

func TestRedisCache_Increment(t *testing.T) {
	mr, c := setupTestRedis(t)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := c.Increment(ctx, "limiter:1.2.3.4", 60)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	assert.Equal(t, 60*time.Second, mr.TTL("limiter:1.2.3.4"))

	mr.FastForward(61 * time.Second)

	got, err := c.Increment(ctx, "limiter:1.2.3.4", 60)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}

func TestRedisCache_IncrementKeepsWindow(t *testing.T) {
	mr, c := setupTestRedis(t)
	ctx := context.Background()

	_, err := c.Increment(ctx, "limiter:key", 60)
	require.NoError(t, err)

	mr.FastForward(20 * time.Second)

	got, err := c.Increment(ctx, "limiter:key", 60)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got)
	assert.Equal(t, 40*time.Second, mr.TTL("limiter:key"))
}

func TestRedisCache_IncrementRepairsMissingExpiry(t *testing.T) {
	mr, c := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("limiter:key", "7"))
	assert.Zero(t, mr.TTL("limiter:key"))

	got, err := c.Increment(ctx, "limiter:key", 60)
	require.NoError(t, err)
	assert.Equal(t, int64(8), got)
	assert.Equal(t, 60*time.Second, mr.TTL("limiter:key"))

	mr.FastForward(61 * time.Second)
	assert.False(t, mr.Exists("limiter:key"))
}

func TestRedisCache_ServerDown(t *testing.T) {
	mr, c := setupTestRedis(t)
	mr.Close()

	_, err := c.Increment(context.Background(), "limiter:key", 60)
	assert.Error(t, err)
}
