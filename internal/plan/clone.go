package plan

// Clone returns a deep copy of the plan. Transforms operate on clones so the
// caller's plan is never mutated in place.
func (p TrainingPlan) Clone() TrainingPlan {
	out := p
	out.Workouts = make([]PlannedWorkout, len(p.Workouts))
	for i, w := range p.Workouts {
		out.Workouts[i] = w.Clone()
	}
	return out
}

// Clone returns a deep copy of the workout, including pointer-valued targets.
func (w PlannedWorkout) Clone() PlannedWorkout {
	out := w
	out.Targets.EstimatedTSS = copyFloat(w.Targets.EstimatedTSS)
	out.Targets.TargetPaceMinPerKm = copyFloat(w.Targets.TargetPaceMinPerKm)
	return out
}

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
