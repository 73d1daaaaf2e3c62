package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/taperlab/taper/internal/dateutil"
	"github.com/taperlab/taper/internal/plan"
)

// ApplyModifications rewrites a plan's future workouts according to the
// accepted modifications, processing them in priority order. The input plan
// is never mutated; past-dated workouts pass through untouched. An empty
// modification list returns a deep-equal copy of the input.
func (e *Engine) ApplyModifications(p plan.TrainingPlan, mods []PlanModification) plan.TrainingPlan {
	out := p.Clone()
	if len(mods) == 0 {
		return out
	}

	ordered := make([]PlanModification, len(mods))
	copy(ordered, mods)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority.Rank() < ordered[j].Priority.Rank()
	})

	now := e.now()
	for _, mod := range ordered {
		switch mod.Type {
		case plan.ModReduceVolume:
			out.Workouts = reduceVolume(out.Workouts, now, changeOr(mod.Changes.VolumeReduction, 0))
		case plan.ModReduceIntensity:
			out.Workouts = reduceIntensity(out.Workouts, now, changeOr(mod.Changes.IntensityReduction, 0))
		case plan.ModAddRecovery:
			days := 0
			if mod.Changes.AdditionalRecoveryDays != nil {
				days = *mod.Changes.AdditionalRecoveryDays
			}
			out.Workouts = addRecovery(out.Workouts, now, days, 0)
		case plan.ModSubstituteWorkout:
			out.Workouts = substituteWorkouts(out.Workouts, now, mod)
		case plan.ModDelayProgression:
			days := 0
			if mod.Changes.DelayDays != nil {
				days = *mod.Changes.DelayDays
			}
			out.Workouts = delayProgression(out.Workouts, now, days)
		case plan.ModInjuryProtocol:
			out.Workouts = e.applyInjuryProtocol(out.Workouts, now, mod)
		}
	}

	sort.SliceStable(out.Workouts, func(i, j int) bool {
		return out.Workouts[i].Date.Before(out.Workouts[j].Date)
	})
	return out
}

// reduceVolume scales duration and distance of every future workout by the
// given percentage.
func reduceVolume(workouts []plan.PlannedWorkout, now time.Time, pct float64) []plan.PlannedWorkout {
	factor := 1 - clamp(pct, 0, 100)/100
	for i, w := range workouts {
		if !w.Date.After(now) {
			continue
		}
		workouts[i].DurationMin = w.DurationMin * factor
		workouts[i].DistanceKm = w.DistanceKm * factor
	}
	return workouts
}

// reduceIntensity scales only future workouts already above intensity 80;
// easier sessions stay untouched.
func reduceIntensity(workouts []plan.PlannedWorkout, now time.Time, pct float64) []plan.PlannedWorkout {
	const hardIntensityFloor = 80

	factor := 1 - clamp(pct, 0, 100)/100
	for i, w := range workouts {
		if !w.Date.After(now) || w.Intensity <= hardIntensityFloor {
			continue
		}
		workouts[i].Intensity = clamp(w.Intensity*factor, 0, 100)
	}
	return workouts
}

// addRecovery converts the next n future workouts above intensity 75 into a
// fixed recovery template, stopping after n conversions. A windowDays of 0
// means no date cutoff.
func addRecovery(workouts []plan.PlannedWorkout, now time.Time, n, windowDays int) []plan.PlannedWorkout {
	if n <= 0 {
		return workouts
	}

	const conversionIntensityFloor = 75

	converted := 0
	for i, w := range workouts {
		if converted >= n {
			break
		}
		if !w.Date.After(now) || w.Intensity <= conversionIntensityFloor {
			continue
		}
		if windowDays > 0 && !dateutil.WithinNextDays(now, w.Date, windowDays) {
			continue
		}
		workouts[i] = recoveryTemplate(w)
		converted++
	}
	return workouts
}

// recoveryTemplate retypes a workout into the fixed 30 minute / intensity 50
// recovery session, keeping its slot on the calendar.
func recoveryTemplate(w plan.PlannedWorkout) plan.PlannedWorkout {
	out := w.Clone()
	out.Type = plan.WorkoutRecovery
	out.Name = "Recovery Run"
	out.Description = "Very easy effort, walk breaks welcome"
	out.DurationMin = 30
	out.DistanceKm = 0
	out.Intensity = 50
	out.Targets = plan.TargetMetrics{}
	if out.ID == "" {
		out.ID = uuid.New().String()
	}
	return out
}

// substituteWorkouts retypes the named future workouts (or all future
// workouts when no IDs are given) to the requested type.
func substituteWorkouts(workouts []plan.PlannedWorkout, now time.Time, mod PlanModification) []plan.PlannedWorkout {
	if mod.Changes.SubstituteWorkoutType == nil {
		return workouts
	}
	target := *mod.Changes.SubstituteWorkoutType

	named := make(map[string]bool, len(mod.WorkoutIDs))
	for _, id := range mod.WorkoutIDs {
		named[id] = true
	}

	for i, w := range workouts {
		if !w.Date.After(now) {
			continue
		}
		if len(named) > 0 && !named[w.ID] {
			continue
		}
		workouts[i].Type = target
		workouts[i].Name = substituteName(target)
		workouts[i].Description = fmt.Sprintf("Substituted for %s", w.Name)
	}
	return workouts
}

func substituteName(t plan.WorkoutType) string {
	switch t {
	case plan.WorkoutEasy:
		return "Easy Run"
	case plan.WorkoutTempo:
		return "Tempo Run"
	case plan.WorkoutInterval:
		return "Interval Session"
	case plan.WorkoutLongRun:
		return "Long Run"
	case plan.WorkoutRecovery:
		return "Recovery Run"
	case plan.WorkoutCrossTrain:
		return "Cross-Training"
	case plan.WorkoutRest:
		return "Rest Day"
	case plan.WorkoutRace:
		return "Race"
	default:
		return string(t)
	}
}

// delayProgression shifts every future workout forward by a fixed number of
// days; relative spacing is preserved.
func delayProgression(workouts []plan.PlannedWorkout, now time.Time, days int) []plan.PlannedWorkout {
	if days <= 0 {
		return workouts
	}
	for i, w := range workouts {
		if !w.Date.After(now) {
			continue
		}
		workouts[i].Date = dateutil.AddDays(w.Date, days)
	}
	return workouts
}

// applyInjuryProtocol removes everything inside the next seven days for a
// full volume cut, otherwise delegates to the recovery conversion over the
// same window.
func (e *Engine) applyInjuryProtocol(workouts []plan.PlannedWorkout, now time.Time, mod PlanModification) []plan.PlannedWorkout {
	window := e.cfg.AcuteWindowDays

	cut := changeOr(mod.Changes.VolumeReduction, 0)
	if cut >= 100 {
		kept := workouts[:0]
		for _, w := range workouts {
			if dateutil.WithinNextDays(now, w.Date, window) {
				continue
			}
			kept = append(kept, w)
		}
		return kept
	}

	return addRecovery(workouts, now, len(workouts), window)
}

func changeOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}
