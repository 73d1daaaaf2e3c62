package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var _ Backend = (*RedisBackend)(nil)

const rateLimitKeyPrefix = "ratelimit:"

// RedisBackend rate-limits with a sliding window held in Redis, so the limit
// holds across replicas.
type RedisBackend struct {
	client     *redis.Client
	rateLimit  int
	rateWindow time.Duration
}

func NewRedisBackend(client *redis.Client, rateLimit int) *RedisBackend {
	return &RedisBackend{
		client:     client,
		rateLimit:  rateLimit,
		rateWindow: time.Second,
	}
}

func (r *RedisBackend) Allow(ctx context.Context, key string) (RateLimitResult, error) {
	allowed, err := r.runRateLimit(ctx, rateLimitKeyPrefix+key)
	if err != nil {
		return RateLimitResult{}, fmt.Errorf("failed to run rate limit script: %w", err)
	}

	return RateLimitResult{
		Allowed:    allowed,
		RetryAfter: r.rateWindow,
	}, nil
}

func (r *RedisBackend) Close() error {
	return r.client.Close()
}

func (r *RedisBackend) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
