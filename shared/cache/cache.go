package cache

import (
	"context"
	"fmt"
	"kasaglow/infras/otel"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
	Nil                   = redis.Nil
)

type RedisCache interface {
	Increment(ctx context.Context, key string, windowSeconds int) (count int64, err error)
}

type redisCache struct {
	client *redis.Client
	otel   otel.Otel
}

// NewRedisCache returns nil when Redis is not configured; callers treat a nil
// cache as "feature off".
func NewRedisCache(client *redis.Client, ot otel.Otel) RedisCache {
	if client == nil {
		return nil
	}

	return &redisCache{
		client: client,
		otel:   ot,
	}
}

// Increment bumps a fixed-window counter. The window starts with the first
// hit; INCR and EXPIRE NX run in one transaction so a counter never outlives
// its window.
func (cache *redisCache) Increment(ctx context.Context, key string, windowSeconds int) (count int64, err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Increment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	var incr *redis.IntCmd

	_, err = cache.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, time.Second*time.Duration(windowSeconds))

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Str("RedisCache", "Increment").Msg("failed to incr cache")

		return 0, fmt.Errorf("failed to increment cache value: %w", err)
	}

	return incr.Val(), nil
}
