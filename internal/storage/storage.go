package storage

import (
	"context"
	"time"
)

// RateLimitResult is the outcome of a single rate limit check.
type RateLimitResult struct {
	Allowed    bool
	RetryAfter time.Duration
}

type RateLimiter interface {
	Allow(ctx context.Context, key string) (RateLimitResult, error)
}

// Backend is the pluggable infrastructure behind the HTTP layer. The Redis
// backend is used when a Redis URL is configured; the in-memory backend
// otherwise.
type Backend interface {
	RateLimiter

	Close() error

	Ping(ctx context.Context) error
}
