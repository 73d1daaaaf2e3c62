package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/taperlab/taper/internal/dateutil"
	"github.com/taperlab/taper/internal/plan"
)

// fatigueKeywords are scanned in session notes; any hit adds a fixed
// penalty to the acute fatigue score.
var fatigueKeywords = []string{"tired", "exhausted", "fatigue", "heavy legs", "drained", "no energy"}

const (
	acuteEffortPoints    = 20
	acuteShortfallPoints = 15
	acuteKeywordPoints   = 10

	// streak thresholds over consecutive sessions
	emergingFatigueStreak   = 3
	persistentFatigueStreak = 5

	overloadStreakMin    = 2
	overloadStreakSevere = 3
)

type FatigueReport struct {
	Level            plan.FatigueLevel     `json:"fatigue_level"`
	AcuteScore       float64               `json:"acute_score"`
	ChronicStreak    int                   `json:"chronic_streak"`
	OverloadStreak   int                   `json:"overload_streak"`
	AdjustedWorkouts []plan.PlannedWorkout `json:"adjusted_workouts"`
	Warnings         []string              `json:"warnings"`
}

// AcuteFatigueScore accumulates points for very recent hard or
// under-delivered sessions: sessions in the last 3 days with perceived
// effort >= 8, sessions completing under 90% of their planned duration, and
// sessions whose notes mention fatigue. Capped at 100.
func (e *Engine) AcuteFatigueScore(runs []NormalizedRun, now time.Time) float64 {
	const recentDays = 3

	var score float64
	for _, run := range runs {
		if !dateutil.WithinLastDays(now, run.Date, recentDays) {
			continue
		}
		if run.PerceivedEffort != nil && *run.PerceivedEffort >= 8 {
			score += acuteEffortPoints
		}
		if run.PlannedDurationMin > 0 && run.DurationMin/run.PlannedDurationMin < 0.9 {
			score += acuteShortfallPoints
		}
		if containsFatigueKeyword(run.Notes) {
			score += acuteKeywordPoints
		}
	}
	return clamp(score, 0, 100)
}

func containsFatigueKeyword(notes string) bool {
	if notes == "" {
		return false
	}
	lower := strings.ToLower(notes)
	for _, kw := range fatigueKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// ChronicFatigueStreak returns the longest run of consecutive sessions with
// high effort and low completion (effort >= 7 and completion < 0.85).
func ChronicFatigueStreak(runs []NormalizedRun) int {
	var longest, current int
	for _, run := range runs {
		if run.PerceivedEffort != nil && *run.PerceivedEffort >= 7 && run.CompletionRate < 0.85 {
			current++
			if current > longest {
				longest = current
			}
		} else {
			current = 0
		}
	}
	return longest
}

// OverloadStreak returns the longest run of consecutive calendar days whose
// summed session stress exceeds the daily TSS threshold.
func (e *Engine) OverloadStreak(runs []NormalizedRun) int {
	if len(runs) == 0 {
		return 0
	}

	daily := make(map[time.Time]float64)
	for _, run := range runs {
		day := dateutil.StartOfDay(run.Date)
		daily[day] += e.SessionStress(run)
	}

	var longest, current int
	var prev time.Time
	for _, run := range runs { // runs are date-ascending
		day := dateutil.StartOfDay(run.Date)
		if day.Equal(prev) {
			continue
		}
		if daily[day] > e.cfg.DailyTSSThreshold {
			if !prev.IsZero() && dateutil.DaysBetween(prev, day) == 1 && current > 0 {
				current++
			} else {
				current = 1
			}
			if current > longest {
				longest = current
			}
		} else {
			current = 0
		}
		prev = day
	}
	return longest
}

// ClassifyFatigue takes the max severity across the three detectors plus the
// load ratio.
func (e *Engine) ClassifyFatigue(acuteScore float64, chronicStreak, overloadStreak int, ratio float64) plan.FatigueLevel {
	switch {
	case chronicStreak >= persistentFatigueStreak || overloadStreak >= overloadStreakSevere:
		return plan.FatigueSevere
	case acuteScore > 70 || ratio > e.cfg.ACWRHighRisk:
		return plan.FatigueHigh
	case acuteScore > 50 || ratio > e.cfg.ACWRSafeMax:
		return plan.FatigueModerate
	default:
		return plan.FatigueLow
	}
}

// DeratingFactors returns the uniform volume and intensity multipliers
// applied to future non-recovery workouts for a fatigue level.
func DeratingFactors(level plan.FatigueLevel) (volume, intensity float64) {
	switch level {
	case plan.FatigueSevere:
		return 0.5, 0.7
	case plan.FatigueHigh:
		return 0.7, 0.85
	case plan.FatigueModerate:
		return 0.9, 0.95
	default:
		return 1, 1
	}
}

// DetectFatigueAndAdjust scans the completed history for fatigue signals,
// classifies overall fatigue, and returns upcoming workouts with the
// derating factors applied to everything that is not already recovery work.
// An overreached recovery score escalates the classification one step.
func (e *Engine) DetectFatigueAndAdjust(completed []plan.CompletedWorkout, upcoming []plan.PlannedWorkout, recovery *plan.RecoveryMetrics) FatigueReport {
	now := e.now()
	runs := NormalizeRuns(completed)
	load := e.CalculateTrainingLoad(runs, now)

	acuteScore := e.AcuteFatigueScore(runs, now)
	chronicStreak := ChronicFatigueStreak(runs)
	overloadStreak := e.OverloadStreak(runs)

	level := e.ClassifyFatigue(acuteScore, chronicStreak, overloadStreak, load.Ratio)
	if recovery != nil && ClassifyRecovery(e.ScoreRecovery(*recovery)) == RecoveryOverreached {
		level = escalate(level)
	}

	warnings := []string{}
	if chronicStreak >= persistentFatigueStreak {
		warnings = append(warnings, fmt.Sprintf("persistent underperformance: %d consecutive hard sessions completed below 85%%", chronicStreak))
	} else if chronicStreak >= emergingFatigueStreak {
		warnings = append(warnings, fmt.Sprintf("emerging fatigue: %d consecutive hard sessions completed below 85%%", chronicStreak))
	}
	if overloadStreak >= overloadStreakMin {
		warnings = append(warnings, fmt.Sprintf("training stress exceeded %.0f on %d consecutive days", e.cfg.DailyTSSThreshold, overloadStreak))
	}
	if acuteScore > 50 {
		warnings = append(warnings, fmt.Sprintf("acute fatigue score %.0f from the last 3 days of training", acuteScore))
	}
	if load.Ratio > e.cfg.ACWRHighRisk {
		warnings = append(warnings, fmt.Sprintf("acute:chronic workload ratio %.2f exceeds the high-risk bound", load.Ratio))
	}

	volFactor, intFactor := DeratingFactors(level)
	adjusted := make([]plan.PlannedWorkout, 0, len(upcoming))
	for _, w := range upcoming {
		out := w.Clone()
		if w.Date.After(now) && w.Type != plan.WorkoutRecovery && w.Type != plan.WorkoutRest {
			out.DurationMin *= volFactor
			out.DistanceKm *= volFactor
			out.Intensity = clamp(out.Intensity*intFactor, 0, 100)
		}
		adjusted = append(adjusted, out)
	}

	return FatigueReport{
		Level:            level,
		AcuteScore:       acuteScore,
		ChronicStreak:    chronicStreak,
		OverloadStreak:   overloadStreak,
		AdjustedWorkouts: adjusted,
		Warnings:         warnings,
	}
}

func escalate(level plan.FatigueLevel) plan.FatigueLevel {
	switch level {
	case plan.FatigueLow:
		return plan.FatigueModerate
	case plan.FatigueModerate:
		return plan.FatigueHigh
	default:
		return plan.FatigueSevere
	}
}
