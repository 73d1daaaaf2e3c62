package engine

import (
	"time"

	"github.com/taperlab/taper/internal/dateutil"
)

// TrainingLoad is the acute/chronic workload summary. Acute is the summed
// session stress over the trailing acute window; chronic is the trailing
// chronic-window total expressed as a per-acute-window average, so the two
// are directly comparable. Ratio is 0 when chronic is 0 (insufficient data,
// not an error).
type TrainingLoad struct {
	Acute   float64 `json:"acute"`
	Chronic float64 `json:"chronic"`
	Ratio   float64 `json:"ratio"`
}

type ACWRBand string

const (
	ACWRInsufficient  ACWRBand = "insufficient_data"
	ACWRUndertraining ACWRBand = "undertraining"
	ACWRSafe          ACWRBand = "safe"
	ACWRElevated      ACWRBand = "elevated"
	ACWRHighRisk      ACWRBand = "high_risk"
)

// SessionStress estimates single-session training stress as
// duration x intensity-factor squared. The intensity factor comes from pace
// against the reference threshold pace when pace is known, otherwise from
// perceived effort. A session with neither is scored as an easy effort.
func (e *Engine) SessionStress(run NormalizedRun) float64 {
	const defaultIntensityFactor = 0.7

	factor := defaultIntensityFactor
	switch {
	case run.PaceMinPerKm != nil && e.cfg.ThresholdPaceMinPerKm > 0 && *run.PaceMinPerKm > 0:
		// faster than threshold -> factor above 1
		factor = clamp(e.cfg.ThresholdPaceMinPerKm / *run.PaceMinPerKm, 0.4, 1.4)
	case run.PerceivedEffort != nil:
		factor = clamp(*run.PerceivedEffort/10, 0, 1)
	}

	return run.DurationMin * factor * factor
}

// CalculateTrainingLoad computes acute load, chronic load, and their ratio
// from a normalized series. An empty series yields the zero value.
func (e *Engine) CalculateTrainingLoad(runs []NormalizedRun, now time.Time) TrainingLoad {
	var acute, chronicTotal float64
	for _, run := range runs {
		stress := e.SessionStress(run)
		if dateutil.WithinLastDays(now, run.Date, e.cfg.AcuteWindowDays) {
			acute += stress
		}
		if dateutil.WithinLastDays(now, run.Date, e.cfg.ChronicWindowDays) {
			chronicTotal += stress
		}
	}

	load := TrainingLoad{Acute: acute}

	windows := float64(e.cfg.ChronicWindowDays) / float64(e.cfg.AcuteWindowDays)
	if windows > 0 {
		load.Chronic = chronicTotal / windows
	}
	if load.Chronic > 0 {
		load.Ratio = load.Acute / load.Chronic
	}
	return load
}

// ClassifyACWR maps a ratio onto the fixed risk bands. Boundaries are
// exclusive above: exactly ACWRSafeMax is safe, exactly ACWRHighRisk is
// elevated.
func (e *Engine) ClassifyACWR(ratio float64) ACWRBand {
	switch {
	case ratio == 0:
		return ACWRInsufficient
	case ratio > e.cfg.ACWRHighRisk:
		return ACWRHighRisk
	case ratio > e.cfg.ACWRSafeMax:
		return ACWRElevated
	case ratio < e.cfg.ACWRSafeMin:
		return ACWRUndertraining
	default:
		return ACWRSafe
	}
}

// weeklyLoadChange returns the percentage change of the trailing 7-day load
// against the 7 days before it. Zero when the prior week had no load.
func (e *Engine) weeklyLoadChange(runs []NormalizedRun, now time.Time) float64 {
	var current, previous float64
	weekAgo := dateutil.AddDays(now, -e.cfg.AcuteWindowDays)
	for _, run := range runs {
		stress := e.SessionStress(run)
		switch {
		case dateutil.WithinLastDays(now, run.Date, e.cfg.AcuteWindowDays):
			current += stress
		case dateutil.WithinLastDays(weekAgo, run.Date, e.cfg.AcuteWindowDays):
			previous += stress
		}
	}
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}
