package engine

import (
	"fmt"

	"github.com/taperlab/taper/internal/plan"
)

type RecoveryStatus string

const (
	RecoveryRecovered   RecoveryStatus = "recovered"
	RecoveryAdequate    RecoveryStatus = "adequate"
	RecoveryFatigued    RecoveryStatus = "fatigued"
	RecoveryOverreached RecoveryStatus = "overreached"
)

type RecoveryAssessment struct {
	Score           float64        `json:"score"`
	Status          RecoveryStatus `json:"status"`
	Recommendations []string       `json:"recommendations"`
}

// ScoreRecovery combines subjective and objective recovery signals into a
// 0-100 score. Subjective inputs move the base score by the configured
// weight per unit of deviation from the scale midpoint; HRV and resting HR
// each add or remove a fixed 10 points past their thresholds. Missing
// optional fields are simply excluded.
func (e *Engine) ScoreRecovery(m plan.RecoveryMetrics) float64 {
	const midpoint = 5

	score := e.cfg.RecoveryBaseScore
	score += (clamp(m.SleepQuality, 0, 10) - midpoint) * e.cfg.RecoveryUnitWeight
	score -= (clamp(m.MuscleSoreness, 0, 10) - midpoint) * e.cfg.RecoveryUnitWeight
	score += (clamp(m.EnergyLevel, 0, 10) - midpoint) * e.cfg.RecoveryUnitWeight

	if m.HRV != nil {
		switch {
		case *m.HRV > e.cfg.HRVBonusThreshold:
			score += 10
		case *m.HRV < e.cfg.HRVPenaltyThreshold:
			score -= 10
		}
	}
	if m.RestingHR != nil {
		switch {
		case *m.RestingHR < e.cfg.RestingHRBonusBelow:
			score += 10
		case *m.RestingHR > e.cfg.RestingHRPenaltyAbove:
			score -= 10
		}
	}

	return clamp(score, 0, 100)
}

// scoreRecoveryFromLoad is the fallback heuristic when no recovery metrics
// were supplied: infer recovery purely from how far the load ratio sits
// outside the safe band.
func (e *Engine) scoreRecoveryFromLoad(load TrainingLoad) float64 {
	score := e.cfg.RecoveryBaseScore
	switch {
	case load.Ratio > e.cfg.ACWRHighRisk:
		score -= 25
	case load.Ratio > e.cfg.ACWRSafeMax:
		score -= 10
	case load.Ratio > 0 && load.Ratio < e.cfg.ACWRSafeMin:
		score += 5
	}
	return clamp(score, 0, 100)
}

// ClassifyRecovery maps a score onto the fixed status bands.
func ClassifyRecovery(score float64) RecoveryStatus {
	switch {
	case score >= 80:
		return RecoveryRecovered
	case score >= 60:
		return RecoveryAdequate
	case score >= 40:
		return RecoveryFatigued
	default:
		return RecoveryOverreached
	}
}

// AssessRecoveryStatus scores recovery from the supplied metrics, or from
// load history alone when metrics are absent, and returns actionable
// recommendations.
func (e *Engine) AssessRecoveryStatus(completed []plan.CompletedWorkout, recovery *plan.RecoveryMetrics) RecoveryAssessment {
	runs := NormalizeRuns(completed)
	load := e.CalculateTrainingLoad(runs, e.now())

	var score float64
	if recovery != nil {
		score = e.ScoreRecovery(*recovery)
	} else {
		score = e.scoreRecoveryFromLoad(load)
	}

	status := ClassifyRecovery(score)

	return RecoveryAssessment{
		Score:           score,
		Status:          status,
		Recommendations: e.recoveryRecommendations(status, recovery, load),
	}
}

func (e *Engine) recoveryRecommendations(status RecoveryStatus, m *plan.RecoveryMetrics, load TrainingLoad) []string {
	recs := []string{}

	switch status {
	case RecoveryOverreached:
		recs = append(recs, "take at least two full rest days before the next quality session")
	case RecoveryFatigued:
		recs = append(recs, "keep the next 2-3 sessions easy and reassess")
	case RecoveryAdequate:
		recs = append(recs, "train as planned but avoid adding extra intensity this week")
	case RecoveryRecovered:
		recs = append(recs, "recovery is good; proceed with the planned week")
	}

	if load.Ratio > e.cfg.ACWRSafeMax {
		recs = append(recs, fmt.Sprintf("training load ratio is %.2f; hold weekly volume steady until it drops below %.1f", load.Ratio, e.cfg.ACWRSafeMax))
	}

	if m != nil {
		if m.SleepQuality < 5 {
			recs = append(recs, "sleep quality is low; target 8+ hours and a consistent bedtime")
		}
		if m.MuscleSoreness > 7 {
			recs = append(recs, "marked muscle soreness; favor soft surfaces and light cross-training")
		}
		if m.StressLevel > 7 {
			recs = append(recs, "life stress is high; reduce session intensity rather than skipping sleep")
		}
		if m.HRV != nil && *m.HRV < e.cfg.HRVPenaltyThreshold {
			recs = append(recs, "HRV is suppressed; delay high-intensity work until it rebounds")
		}
	}

	return recs
}
