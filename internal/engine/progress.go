package engine

import (
	"time"

	"github.com/taperlab/taper/internal/dateutil"
	"github.com/taperlab/taper/internal/plan"
)

type VolumeProgress struct {
	WeeklyAverageKm float64    `json:"weekly_average_km"`
	Trend           plan.Trend `json:"trend"`
}

// IntensityDistribution holds integer percentages that always sum to 100;
// rounding leftovers go to the buckets with the largest remainders.
type IntensityDistribution struct {
	Easy     int `json:"easy"`
	Moderate int `json:"moderate"`
	Hard     int `json:"hard"`
	VeryHard int `json:"very_hard"`
}

type FitnessSnapshot struct {
	WeeklyVolumeKm float64  `json:"weekly_volume_km"`
	LongestRunKm   float64  `json:"longest_run_km"`
	EstimatedVDOT  *float64 `json:"estimated_vdot,omitempty"`
}

type ProgressData struct {
	AdherenceRate         float64               `json:"adherence_rate"`
	PerformanceTrend      plan.Trend            `json:"performance_trend"`
	VolumeProgress        VolumeProgress        `json:"volume_progress"`
	IntensityDistribution IntensityDistribution `json:"intensity_distribution"`
	CurrentFitness        FitnessSnapshot       `json:"current_fitness"`
	Load                  TrainingLoad          `json:"load"`
	CompletedWorkouts     int                   `json:"completed_workouts"`
	TotalWorkouts         int                   `json:"total_workouts"`
	Date                  time.Time             `json:"date"`
}

// adherenceCutoff is the completion rate below which a recorded session
// counts as missed.
const adherenceCutoff = 0.5

// AnalyzeProgress runs the full analysis pipeline over a completed-workout
// history and the planned calendar, producing a fresh immutable snapshot.
// Identical inputs always produce identical output.
func (e *Engine) AnalyzeProgress(completed []plan.CompletedWorkout, planned []plan.PlannedWorkout) ProgressData {
	now := e.now()
	runs := NormalizeRuns(completed)
	load := e.CalculateTrainingLoad(runs, now)

	completedCount := 0
	for _, run := range runs {
		if run.CompletionRate >= adherenceCutoff {
			completedCount++
		}
	}

	// prescribed past sessions; falls back to the recorded history when the
	// caller supplies no calendar
	total := 0
	for _, w := range planned {
		if !w.Date.After(now) && w.Type != plan.WorkoutRest {
			total++
		}
	}
	if total == 0 {
		total = len(runs)
	}

	adherence := 0.0
	if total > 0 {
		adherence = clamp(float64(completedCount)/float64(total), 0, 1)
	}

	return ProgressData{
		AdherenceRate:         adherence,
		PerformanceTrend:      performanceTrend(runs),
		VolumeProgress:        e.volumeProgress(runs, now),
		IntensityDistribution: e.intensityDistribution(runs),
		CurrentFitness:        e.fitnessSnapshot(runs, now),
		Load:                  load,
		CompletedWorkouts:     completedCount,
		TotalWorkouts:         total,
		Date:                  now,
	}
}

// performanceTrend splits the paced runs into halves and compares average
// pace; a >2% swing in either direction leaves "stable".
func performanceTrend(runs []NormalizedRun) plan.Trend {
	paced := make([]float64, 0, len(runs))
	for _, run := range runs {
		if run.PaceMinPerKm != nil {
			paced = append(paced, *run.PaceMinPerKm)
		}
	}
	if len(paced) < 4 {
		return plan.TrendStable
	}

	half := len(paced) / 2
	first := mean(paced[:half])
	second := mean(paced[half:])
	if first == 0 {
		return plan.TrendStable
	}

	change := (second - first) / first
	switch {
	case change < -0.02: // pace dropped: faster
		return plan.TrendImproving
	case change > 0.02:
		return plan.TrendDeclining
	default:
		return plan.TrendStable
	}
}

// volumeProgress groups distance by week (Monday start) and compares the
// most recent complete week against the average of the earlier ones.
func (e *Engine) volumeProgress(runs []NormalizedRun, now time.Time) VolumeProgress {
	if len(runs) == 0 {
		return VolumeProgress{Trend: plan.TrendStable}
	}

	weekly := make(map[time.Time]float64)
	for _, run := range runs {
		weekly[dateutil.StartOfWeek(run.Date)] += run.DistanceKm
	}

	var totalKm float64
	for _, km := range weekly {
		totalKm += km
	}
	avg := totalKm / float64(len(weekly))

	out := VolumeProgress{WeeklyAverageKm: avg, Trend: plan.TrendStable}
	if len(weekly) < 2 {
		return out
	}

	lastWeek := dateutil.StartOfWeek(now)
	lastKm, ok := weekly[lastWeek]
	if !ok {
		lastWeek = dateutil.AddDays(lastWeek, -7)
		lastKm = weekly[lastWeek]
	}

	var priorTotal float64
	priorWeeks := 0
	for week, km := range weekly {
		if week.Before(lastWeek) {
			priorTotal += km
			priorWeeks++
		}
	}
	if priorWeeks == 0 || priorTotal == 0 {
		return out
	}

	priorAvg := priorTotal / float64(priorWeeks)
	switch {
	case lastKm > priorAvg*1.1:
		out.Trend = plan.TrendImproving
	case lastKm < priorAvg*0.9:
		out.Trend = plan.TrendDeclining
	}
	return out
}

// intensityDistribution buckets sessions by session intensity factor (or
// perceived effort when pace is unavailable) into easy/moderate/hard/very
// hard percentages summing to exactly 100.
func (e *Engine) intensityDistribution(runs []NormalizedRun) IntensityDistribution {
	if len(runs) == 0 {
		return IntensityDistribution{Easy: 100}
	}

	var counts [4]int
	for _, run := range runs {
		counts[e.intensityBucket(run)]++
	}

	pct := roundedShares(counts, len(runs))
	return IntensityDistribution{Easy: pct[0], Moderate: pct[1], Hard: pct[2], VeryHard: pct[3]}
}

// roundedShares converts bucket counts into integer percentages summing to
// exactly 100 via largest-remainder allocation; ties favor the hardest
// bucket.
func roundedShares(counts [4]int, total int) [4]int {
	var pct [4]int
	var rem [4]float64
	allocated := 0
	for i, c := range counts {
		share := float64(c) / float64(total) * 100
		pct[i] = int(share)
		rem[i] = share - float64(pct[i])
		allocated += pct[i]
	}
	for leftover := 100 - allocated; leftover > 0; leftover-- {
		best := 0
		for i := 1; i < len(rem); i++ {
			if rem[i] >= rem[best] {
				best = i
			}
		}
		pct[best]++
		rem[best] = -1
	}
	return pct
}

func (e *Engine) intensityBucket(run NormalizedRun) int {
	if run.PaceMinPerKm != nil && e.cfg.ThresholdPaceMinPerKm > 0 {
		factor := e.cfg.ThresholdPaceMinPerKm / *run.PaceMinPerKm
		switch {
		case factor < 0.80:
			return 0
		case factor < 0.95:
			return 1
		case factor < 1.05:
			return 2
		default:
			return 3
		}
	}
	if run.PerceivedEffort != nil {
		switch effort := *run.PerceivedEffort; {
		case effort <= 4:
			return 0
		case effort <= 6:
			return 1
		case effort <= 8:
			return 2
		default:
			return 3
		}
	}
	return 0
}

// fitnessSnapshot summarizes current aerobic fitness from the trailing four
// weeks: average weekly volume, longest run, and a VDOT-style index from
// the best sustained pace when pace data exists.
func (e *Engine) fitnessSnapshot(runs []NormalizedRun, now time.Time) FitnessSnapshot {
	const snapshotWindowDays = 28

	var snap FitnessSnapshot
	var recentKm float64
	for _, run := range runs {
		if !dateutil.WithinLastDays(now, run.Date, snapshotWindowDays) {
			continue
		}
		recentKm += run.DistanceKm
		if run.DistanceKm > snap.LongestRunKm {
			snap.LongestRunKm = run.DistanceKm
		}
		if run.PaceMinPerKm != nil && run.DistanceKm >= 3 {
			if vdot := estimateVDOT(*run.PaceMinPerKm); vdot > 0 {
				if snap.EstimatedVDOT == nil || vdot > *snap.EstimatedVDOT {
					v := vdot
					snap.EstimatedVDOT = &v
				}
			}
		}
	}
	snap.WeeklyVolumeKm = recentKm / (snapshotWindowDays / 7)
	return snap
}

// estimateVDOT applies the Daniels-Gilbert VO2/velocity regression at an
// assumed ~89% of vVO2max for a sustained training effort.
func estimateVDOT(paceMinPerKm float64) float64 {
	if paceMinPerKm <= 0 {
		return 0
	}
	v := 1000 / paceMinPerKm // m/min
	vo2 := -4.60 + 0.182258*v + 0.000104*v*v
	vdot := vo2 / 0.89
	if vdot < 0 || vdot > 90 {
		return 0
	}
	return vdot
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
