package engine

import (
	"time"

	"github.com/taperlab/taper/internal/plan"
)

// fixed clock for every test: a Wednesday at noon UTC
var testNow = time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)

func newTestEngine() *Engine {
	return New(DefaultConfig(), WithClock(func() time.Time { return testNow }))
}

// daysAgo returns a morning timestamp n calendar days before the test clock.
func daysAgo(n int) time.Time {
	return time.Date(2026, 4, 15, 8, 0, 0, 0, time.UTC).AddDate(0, 0, -n)
}

func daysAhead(n int) time.Time {
	return time.Date(2026, 4, 15, 8, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func f(v float64) *float64 { return &v }

// effortRun builds a completed workout whose session stress is exactly
// durationMin: no distance (so no pace is derived) and max perceived effort.
func effortRun(n int, durationMin float64) plan.CompletedWorkout {
	return plan.CompletedWorkout{
		Date:            daysAgo(n),
		DurationMin:     durationMin,
		PerceivedEffort: f(10),
	}
}

// steadyHistory returns four evenly spaced weeks of identical load, giving
// an acute:chronic ratio of exactly 1.0.
func steadyHistory() []plan.CompletedWorkout {
	return []plan.CompletedWorkout{
		effortRun(2, 100),
		effortRun(9, 100),
		effortRun(16, 100),
		effortRun(23, 100),
	}
}

// historyWithRatio returns a completed history whose training load is
// acute=140, chronic=100, ratio=1.4 under the default config.
func historyWithRatio14() []plan.CompletedWorkout {
	return []plan.CompletedWorkout{
		effortRun(2, 70),
		effortRun(5, 70),  // acute total: 140
		effortRun(10, 100),
		effortRun(15, 100),
		effortRun(20, 60), // 28-day total: 400 -> chronic 100
	}
}
