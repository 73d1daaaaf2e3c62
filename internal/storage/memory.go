package storage

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

var _ Backend = (*MemoryBackend)(nil)

const limiterIdleEviction = 10 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type MemoryBackend struct {
	limiters  map[string]*limiterEntry
	limiterMu sync.Mutex
	rateLimit rate.Limit
	rateBurst int

	done chan struct{}
}

func NewMemoryBackend(ratePerSec float64, burst int) *MemoryBackend {
	m := &MemoryBackend{
		limiters:  make(map[string]*limiterEntry),
		rateLimit: rate.Limit(ratePerSec),
		rateBurst: burst,
		done:      make(chan struct{}),
	}

	go m.cleanupLoop()

	return m
}

func (m *MemoryBackend) Allow(_ context.Context, key string) (RateLimitResult, error) {
	m.limiterMu.Lock()
	entry, ok := m.limiters[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(m.rateLimit, m.rateBurst)}
		m.limiters[key] = entry
	}
	entry.lastSeen = time.Now()
	m.limiterMu.Unlock()

	if entry.limiter.Allow() {
		return RateLimitResult{Allowed: true}, nil
	}

	return RateLimitResult{
		Allowed:    false,
		RetryAfter: time.Second,
	}, nil
}

func (m *MemoryBackend) Close() error {
	close(m.done)
	return nil
}

func (m *MemoryBackend) Ping(_ context.Context) error {
	return nil
}

// cleanupLoop evicts limiters for clients that have gone quiet so the map
// does not grow unbounded.
func (m *MemoryBackend) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.limiterMu.Lock()
			now := time.Now()
			for key, entry := range m.limiters {
				if now.Sub(entry.lastSeen) > limiterIdleEviction {
					delete(m.limiters, key)
				}
			}
			m.limiterMu.Unlock()
		case <-m.done:
			return
		}
	}
}
