// Package engine implements the adaptive training engine: rolling-load and
// recovery analysis over completed workouts, rule-based plan modification,
// and phased return-to-training protocols. Every operation is a pure
// function of its inputs plus the immutable Config; callers may invoke one
// Engine concurrently as long as they do not share mutable plans across
// calls.
package engine

import "time"

type Engine struct {
	cfg Config
	now func() time.Time
}

type Option func(*Engine)

// WithClock overrides the engine's notion of "now". Tests use a fixed clock
// so window math is deterministic.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func New(cfg Config, opts ...Option) *Engine {
	e := &Engine{
		cfg: cfg,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Config() Config { return e.cfg }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
