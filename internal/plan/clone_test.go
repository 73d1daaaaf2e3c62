package plan

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestTrainingPlanClone(t *testing.T) {
	t.Parallel()

	tss := 72.0
	pace := 4.45
	original := TrainingPlan{
		ID:        "plan-1",
		Name:      "Half Marathon Build",
		StartDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 5, 24, 0, 0, 0, 0, time.UTC),
		Workouts: []PlannedWorkout{
			{
				ID:          "w-1",
				Date:        time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
				Type:        WorkoutTempo,
				Name:        "Tempo Run",
				DurationMin: 45,
				DistanceKm:  10,
				Intensity:   85,
				Targets:     TargetMetrics{EstimatedTSS: &tss, TargetPaceMinPerKm: &pace},
			},
		},
	}

	clone := original.Clone()

	if diff := cmp.Diff(original, clone); diff != "" {
		t.Fatalf("clone differs from original (-want +got):\n%s", diff)
	}

	// mutating the clone must not leak into the original
	clone.Workouts[0].DistanceKm = 5
	*clone.Workouts[0].Targets.EstimatedTSS = 10

	if original.Workouts[0].DistanceKm != 10 {
		t.Errorf("original distance mutated: %v", original.Workouts[0].DistanceKm)
	}
	if *original.Workouts[0].Targets.EstimatedTSS != 72.0 {
		t.Errorf("original estimated TSS mutated: %v", *original.Workouts[0].Targets.EstimatedTSS)
	}
}
