package engine

import (
	"sort"
	"time"

	"github.com/taperlab/taper/internal/plan"
)

// NormalizedRun is the uniform time-series record every analysis works on.
// Derived from one completed workout and discarded after the call.
type NormalizedRun struct {
	Date               time.Time
	Type               plan.WorkoutType
	DistanceKm         float64
	DurationMin        float64
	PlannedDurationMin float64
	PaceMinPerKm       *float64
	AvgHeartRate       *float64
	PerceivedEffort    *float64
	CompletionRate     float64
	Notes              string
}

// NormalizeRuns converts heterogeneous completed-workout records into a
// date-ascending series. Missing completion rates default to fully
// completed; out-of-range values are clamped rather than rejected. Records
// without a date are dropped since no window can place them.
func NormalizeRuns(completed []plan.CompletedWorkout) []NormalizedRun {
	runs := make([]NormalizedRun, 0, len(completed))
	for _, c := range completed {
		if c.Date.IsZero() {
			continue
		}

		run := NormalizedRun{
			Date:               c.Date,
			Type:               c.Type,
			DistanceKm:         c.DistanceKm,
			DurationMin:        c.DurationMin,
			PlannedDurationMin: c.PlannedDurationMin,
			CompletionRate:     1,
			Notes:              c.Notes,
		}

		if c.CompletionRate != nil {
			run.CompletionRate = clamp(*c.CompletionRate, 0, 1)
		}
		if c.AvgPaceMinPerKm != nil && *c.AvgPaceMinPerKm > 0 {
			pace := *c.AvgPaceMinPerKm
			run.PaceMinPerKm = &pace
		} else if c.DistanceKm > 0 && c.DurationMin > 0 {
			pace := c.DurationMin / c.DistanceKm
			run.PaceMinPerKm = &pace
		}
		if c.AvgHeartRate != nil && *c.AvgHeartRate > 0 {
			hr := *c.AvgHeartRate
			run.AvgHeartRate = &hr
		}
		if c.PerceivedEffort != nil {
			effort := clamp(*c.PerceivedEffort, 0, 10)
			run.PerceivedEffort = &effort
		}

		runs = append(runs, run)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Date.Before(runs[j].Date)
	})
	return runs
}
