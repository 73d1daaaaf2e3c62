package engine

import (
	"fmt"
	"time"

	"github.com/taperlab/taper/internal/dateutil"
	"github.com/taperlab/taper/internal/plan"
)

type RiskAssessment struct {
	Level                plan.RiskLevel `json:"risk_level"`
	AcuteChronicRatio    float64        `json:"acute_chronic_ratio"`
	WeeklyLoadIncrease   float64        `json:"weekly_load_increase"` // percent
	CurrentRisk          float64        `json:"current_risk"`         // 0-100
	ProjectedRisk        float64        `json:"projected_risk"`       // 0-100
	MitigationStrategies []string       `json:"mitigation_strategies"`
}

// risk component caps; current risk is their clamped sum.
const (
	riskACWRCap     = 40.0
	riskUnderCap    = 15.0
	riskRecoveryCap = 30.0
	riskRampCap     = 30.0

	riskPlannedCap     = 25.0
	riskHardSessionPts = 5.0
)

// AssessOverreachingRisk combines the current load state with the planned
// stress for the next week into current and projected 0-100 risk values.
// Recovery is inferred from load history alone here; hosts that have
// subjective metrics get recovery folded in through suggestModifications.
func (e *Engine) AssessOverreachingRisk(completed []plan.CompletedWorkout, planned []plan.PlannedWorkout) RiskAssessment {
	now := e.now()
	runs := NormalizeRuns(completed)
	load := e.CalculateTrainingLoad(runs, now)
	weeklyChange := e.weeklyLoadChange(runs, now)
	recoveryScore := e.scoreRecoveryFromLoad(load)

	current := e.currentRisk(load, weeklyChange, recoveryScore)
	projected := e.projectedRisk(current, load, runs, planned, now)

	level := maxRisk(classifyCurrentRisk(current), classifyProjectedRisk(projected))

	return RiskAssessment{
		Level:                level,
		AcuteChronicRatio:    load.Ratio,
		WeeklyLoadIncrease:   weeklyChange,
		CurrentRisk:          current,
		ProjectedRisk:        projected,
		MitigationStrategies: e.mitigations(load, weeklyChange, recoveryScore, projected),
	}
}

// currentRisk weighs ACWR deviation from the safe band, recovery score, and
// the most recent week-over-week load ramp.
func (e *Engine) currentRisk(load TrainingLoad, weeklyChange, recoveryScore float64) float64 {
	var risk float64

	switch {
	case load.Ratio > e.cfg.ACWRSafeMax:
		risk += clamp((load.Ratio-e.cfg.ACWRSafeMax)*100, 0, riskACWRCap)
	case load.Ratio > 0 && load.Ratio < e.cfg.ACWRSafeMin:
		risk += clamp((e.cfg.ACWRSafeMin-load.Ratio)*50, 0, riskUnderCap)
	}

	if recoveryScore < e.cfg.RecoveryBaseScore {
		risk += clamp((e.cfg.RecoveryBaseScore-recoveryScore)*0.5, 0, riskRecoveryCap)
	}

	if weeklyChange > 10 {
		risk += clamp(weeklyChange-10, 0, riskRampCap)
	}

	return clamp(risk, 0, 100)
}

// projectedRisk folds in the stress already on the calendar for the next
// acute window plus a premium for each very hard session in the trailing
// week.
func (e *Engine) projectedRisk(current float64, load TrainingLoad, runs []NormalizedRun, planned []plan.PlannedWorkout, now time.Time) float64 {
	plannedStress := 0.0
	for _, w := range planned {
		if dateutil.WithinNextDays(now, w.Date, e.cfg.AcuteWindowDays) {
			plannedStress += e.PlannedStress(w)
		}
	}

	projected := current
	if load.Chronic > 0 {
		projectedRatio := plannedStress / load.Chronic
		if projectedRatio > e.cfg.ACWRSafeMax {
			projected += clamp((projectedRatio-e.cfg.ACWRSafeMax)*50, 0, riskPlannedCap)
		}
	} else if plannedStress > 0 {
		// no chronic base at all: any planned stress is a ramp from zero
		projected += riskPlannedCap / 2
	}

	hardSessions := 0
	for _, run := range runs {
		if dateutil.WithinLastDays(now, run.Date, e.cfg.AcuteWindowDays) &&
			run.PerceivedEffort != nil && *run.PerceivedEffort >= 8 {
			hardSessions++
		}
	}
	projected += float64(hardSessions) * riskHardSessionPts

	return clamp(projected, 0, 100)
}

// PlannedStress estimates the stress of a not-yet-completed workout: the
// explicit estimate when present, otherwise derived from duration and
// intensity, otherwise the configured default. Deriving before defaulting
// is a deliberate choice; the fixed default alone undercounts long sessions.
func (e *Engine) PlannedStress(w plan.PlannedWorkout) float64 {
	if w.Targets.EstimatedTSS != nil && *w.Targets.EstimatedTSS >= 0 {
		return *w.Targets.EstimatedTSS
	}
	if w.DurationMin > 0 && w.Intensity > 0 {
		factor := w.Intensity / 100
		return w.DurationMin * factor * factor
	}
	return e.cfg.DefaultPlannedTSS
}

func classifyCurrentRisk(risk float64) plan.RiskLevel {
	switch {
	case risk >= 80:
		return plan.RiskCritical
	case risk >= 60:
		return plan.RiskHigh
	case risk >= 40:
		return plan.RiskModerate
	default:
		return plan.RiskLow
	}
}

func classifyProjectedRisk(risk float64) plan.RiskLevel {
	switch {
	case risk >= 90:
		return plan.RiskCritical
	case risk >= 70:
		return plan.RiskHigh
	case risk >= 50:
		return plan.RiskModerate
	default:
		return plan.RiskLow
	}
}

func maxRisk(a, b plan.RiskLevel) plan.RiskLevel {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}

func (e *Engine) mitigations(load TrainingLoad, weeklyChange, recoveryScore, projected float64) []string {
	strategies := []string{}

	if load.Ratio > e.cfg.ACWRSafeMax {
		strategies = append(strategies, fmt.Sprintf("acute load is %.0f%% of chronic; cut this week's volume until the ratio is back under %.1f", load.Ratio*100, e.cfg.ACWRSafeMax))
	}
	if weeklyChange > 10 {
		strategies = append(strategies, fmt.Sprintf("weekly load jumped %.0f%%; cap week-over-week increases at 10%%", weeklyChange))
	}
	if recoveryScore < 60 {
		strategies = append(strategies, "recovery is lagging the current load; prioritize sleep and insert an extra easy day")
	}
	if projected >= 70 {
		strategies = append(strategies, "the coming week is loaded on top of existing fatigue; convert one planned hard session to an easy run")
	}

	return strategies
}
