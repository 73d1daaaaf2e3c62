package engine

import (
	"fmt"
	"sort"

	"github.com/taperlab/taper/internal/dateutil"
	"github.com/taperlab/taper/internal/plan"
)

type SuggestedChanges struct {
	VolumeReduction       *float64          `json:"volume_reduction,omitempty"`    // percent
	IntensityReduction    *float64          `json:"intensity_reduction,omitempty"` // percent
	SubstituteWorkoutType *plan.WorkoutType `json:"substitute_workout_type,omitempty"`
	AdditionalRecoveryDays *int             `json:"additional_recovery_days,omitempty"`
	DelayDays             *int              `json:"delay_days,omitempty"`
}

// PlanModification is immutable once created; the applicator consumes it
// and constructs new workouts rather than editing in place.
type PlanModification struct {
	Type       plan.ModificationType `json:"type"`
	Reason     string                `json:"reason"`
	Priority   plan.Priority         `json:"priority"`
	WorkoutIDs []string              `json:"workout_ids,omitempty"`
	Changes    SuggestedChanges      `json:"suggested_changes"`
}

// fixed rule magnitudes
const (
	highACWRVolumeCut       = 30.0
	elevatedACWRIntensityCut = 20.0
	lowRecoveryIntensityCut = 30.0
	lowRecoveryExtraDays    = 2
	lowAdherenceVolumeCut   = 20.0
	lowAdherenceDelayDays   = 7
	decliningDelayDays      = 7
	decliningIntensityCut   = 15.0
	illnessVolumeCut        = 50.0
	injuryVolumeCut         = 100.0
)

// SuggestModifications evaluates each adaptation rule independently against
// the progress snapshot and optional recovery metrics, returning candidate
// modifications stably ordered by priority. An active injury or illness is
// evaluated first and always leads the list (safety precedence).
func (e *Engine) SuggestModifications(p plan.TrainingPlan, progress ProgressData, recovery *plan.RecoveryMetrics) []PlanModification {
	mods := []PlanModification{}

	// safety precedence: health status overrides everything else
	if mod, ok := e.healthProtocolModification(p, recovery); ok {
		mods = append(mods, mod)
	}

	ratio := progress.Load.Ratio
	switch {
	case ratio > e.cfg.ACWRHighRisk:
		mods = append(mods, PlanModification{
			Type:     plan.ModReduceVolume,
			Reason:   fmt.Sprintf("acute:chronic workload ratio %.2f is above the high-risk bound %.1f", ratio, e.cfg.ACWRHighRisk),
			Priority: plan.PriorityHigh,
			Changes:  SuggestedChanges{VolumeReduction: ptrFloat(highACWRVolumeCut)},
		})
	case ratio > e.cfg.ACWRSafeMax:
		mods = append(mods, PlanModification{
			Type:     plan.ModReduceIntensity,
			Reason:   fmt.Sprintf("acute:chronic workload ratio %.2f is elevated above %.1f", ratio, e.cfg.ACWRSafeMax),
			Priority: plan.PriorityMedium,
			Changes:  SuggestedChanges{IntensityReduction: ptrFloat(elevatedACWRIntensityCut)},
		})
	}

	if score, ok := e.recoveryScoreFor(progress, recovery); ok && score < 60 {
		mods = append(mods, PlanModification{
			Type:     plan.ModAddRecovery,
			Reason:   fmt.Sprintf("recovery score %.0f is below 60", score),
			Priority: plan.PriorityHigh,
			Changes: SuggestedChanges{
				AdditionalRecoveryDays: ptrInt(lowRecoveryExtraDays),
				IntensityReduction:     ptrFloat(lowRecoveryIntensityCut),
			},
		})
	}

	if progress.AdherenceRate < 0.7 {
		mods = append(mods, PlanModification{
			Type:     plan.ModReduceVolume,
			Reason:   fmt.Sprintf("adherence rate %.0f%% is below 70%%; the plan is outrunning the athlete", progress.AdherenceRate*100),
			Priority: plan.PriorityMedium,
			Changes: SuggestedChanges{
				VolumeReduction: ptrFloat(lowAdherenceVolumeCut),
				DelayDays:       ptrInt(lowAdherenceDelayDays),
			},
		})
	}

	if progress.PerformanceTrend == plan.TrendDeclining {
		mods = append(mods, PlanModification{
			Type:     plan.ModDelayProgression,
			Reason:   "performance trend is declining; hold the current training level before progressing",
			Priority: plan.PriorityMedium,
			Changes: SuggestedChanges{
				DelayDays:          ptrInt(decliningDelayDays),
				IntensityReduction: ptrFloat(decliningIntensityCut),
			},
		})
	}

	sort.SliceStable(mods, func(i, j int) bool {
		return mods[i].Priority.Rank() < mods[j].Priority.Rank()
	})
	return mods
}

// healthProtocolModification fires the injury/illness safety rule. Injury
// takes precedence over illness; at most one protocol modification is ever
// produced. The affected workout IDs are the plan's next seven days.
func (e *Engine) healthProtocolModification(p plan.TrainingPlan, recovery *plan.RecoveryMetrics) (PlanModification, bool) {
	if recovery == nil {
		return PlanModification{}, false
	}

	var cut float64
	var reason string
	switch {
	case recovery.InjuryStatus == plan.InjuryInjured:
		cut = injuryVolumeCut
		reason = "active injury reported; suspend training pending evaluation"
	case recovery.IllnessStatus == plan.IllnessSick:
		cut = illnessVolumeCut
		reason = "active illness reported; cut load in half until symptoms resolve"
	default:
		return PlanModification{}, false
	}

	now := e.now()
	ids := []string{}
	for _, w := range p.Workouts {
		if dateutil.WithinNextDays(now, w.Date, e.cfg.AcuteWindowDays) {
			ids = append(ids, w.ID)
		}
	}

	return PlanModification{
		Type:       plan.ModInjuryProtocol,
		Reason:     reason,
		Priority:   plan.PriorityHigh,
		WorkoutIDs: ids,
		Changes:    SuggestedChanges{VolumeReduction: ptrFloat(cut)},
	}, true
}

// recoveryScoreFor returns the recovery score used by the generator rules:
// the metric-based score when metrics were supplied, otherwise the
// load-history fallback.
func (e *Engine) recoveryScoreFor(progress ProgressData, recovery *plan.RecoveryMetrics) (float64, bool) {
	if recovery != nil {
		return e.ScoreRecovery(*recovery), true
	}
	if progress.Load.Ratio == 0 {
		return 0, false
	}
	return e.scoreRecoveryFromLoad(progress.Load), true
}

// NeedsAdaptation reports whether any adaptation rule would fire for the
// given progress snapshot and recovery state.
func (e *Engine) NeedsAdaptation(progress ProgressData, recovery *plan.RecoveryMetrics) bool {
	if recovery != nil &&
		(recovery.InjuryStatus == plan.InjuryInjured || recovery.IllnessStatus == plan.IllnessSick) {
		return true
	}
	if progress.Load.Ratio > e.cfg.ACWRSafeMax {
		return true
	}
	if score, ok := e.recoveryScoreFor(progress, recovery); ok && score < 60 {
		return true
	}
	if progress.AdherenceRate < 0.7 {
		return true
	}
	return progress.PerformanceTrend == plan.TrendDeclining
}

func ptrFloat(f float64) *float64 { return &f }
func ptrInt(i int) *int           { return &i }
