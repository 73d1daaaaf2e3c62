package storage

import (
	"context"
	_ "embed"
	"time"

	"github.com/redis/go-redis/v9"
)

//go:embed ratelimit.lua
var rateLimitLua string

var rateLimitScript = redis.NewScript(rateLimitLua)

// runRateLimit executes the sliding-window script for one key.
// ARGV: window size in milliseconds, max requests per window, key TTL in
// seconds. The script returns 1 when the request is allowed.
func (r *RedisBackend) runRateLimit(ctx context.Context, key string) (bool, error) {
	ttl := r.rateWindow + time.Second
	result, err := rateLimitScript.Run(ctx, r.client,
		[]string{key},
		r.rateWindow.Milliseconds(),
		r.rateLimit,
		int(ttl.Seconds()),
	).Int()
	if err != nil {
		return false, err
	}
	return result == 1, nil
}
