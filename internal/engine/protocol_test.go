package engine

import (
	"strings"
	"testing"

	"github.com/taperlab/taper/internal/plan"
)

func TestCreateRecoveryProtocol(t *testing.T) {
	t.Parallel()

	e := newTestEngine()

	t.Run("severe injury runs the full three-phase return", func(t *testing.T) {
		t.Parallel()
		got := e.CreateRecoveryProtocol(ConditionInjury, SeveritySevere, "knee")

		if len(got.Phases) != 3 {
			t.Fatalf("got %d phases, want 3", len(got.Phases))
		}
		totalDays := 0
		for _, phase := range got.Phases {
			totalDays += phase.DurationDays
		}
		if totalDays != 63 {
			t.Errorf("total duration = %d days, want 63", totalDays)
		}
		first := got.Phases[0]
		if first.Name != "Medical" || first.VolumePercent != 0 || first.IntensityCeiling != 0 {
			t.Errorf("first phase = %+v, want a full-rest medical phase", first)
		}
		if len(first.AllowedWorkoutTypes) != 1 || first.AllowedWorkoutTypes[0] != plan.WorkoutRest {
			t.Errorf("medical phase allows %v, want rest only", first.AllowedWorkoutTypes)
		}
	})

	t.Run("volume never decreases across phases", func(t *testing.T) {
		t.Parallel()
		for _, condition := range []Condition{ConditionInjury, ConditionIllness} {
			for _, severity := range []Severity{SeverityMild, SeverityModerate, SeveritySevere} {
				got := e.CreateRecoveryProtocol(condition, severity, "")
				if len(got.Phases) == 0 {
					t.Errorf("%s/%s: no phases", condition, severity)
					continue
				}
				for i := 1; i < len(got.Phases); i++ {
					if got.Phases[i].VolumePercent < got.Phases[i-1].VolumePercent {
						t.Errorf("%s/%s: volume drops from %v to %v at phase %d",
							condition, severity, got.Phases[i-1].VolumePercent, got.Phases[i].VolumePercent, i)
					}
					if got.Phases[i].IntensityCeiling < got.Phases[i-1].IntensityCeiling {
						t.Errorf("%s/%s: intensity ceiling drops at phase %d", condition, severity, i)
					}
				}
			}
		}
	})

	t.Run("mild conditions skip the medical phase", func(t *testing.T) {
		t.Parallel()
		injury := e.CreateRecoveryProtocol(ConditionInjury, SeverityMild, "calf")
		if len(injury.Phases) != 2 {
			t.Errorf("mild injury has %d phases, want 2", len(injury.Phases))
		}
		illness := e.CreateRecoveryProtocol(ConditionIllness, SeverityMild, "")
		if len(illness.Phases) != 2 {
			t.Errorf("mild illness has %d phases, want 2", len(illness.Phases))
		}
	})

	t.Run("joint injuries get non-impact guidance", func(t *testing.T) {
		t.Parallel()
		got := e.CreateRecoveryProtocol(ConditionInjury, SeverityModerate, "Knee")

		if !containsSubstring(got.Guidelines, "pool running") {
			t.Errorf("expected non-impact guidance for a knee injury, got %v", got.Guidelines)
		}
	})

	t.Run("shin injuries get surface guidance", func(t *testing.T) {
		t.Parallel()
		got := e.CreateRecoveryProtocol(ConditionInjury, SeverityMild, "shin")

		if !containsSubstring(got.Guidelines, "soft, flat surfaces") {
			t.Errorf("expected surface guidance for a shin injury, got %v", got.Guidelines)
		}
	})

	t.Run("illness guidance watches heart rate", func(t *testing.T) {
		t.Parallel()
		got := e.CreateRecoveryProtocol(ConditionIllness, SeveritySevere, "")

		if !containsSubstring(got.Guidelines, "below the neck") {
			t.Errorf("expected the symptom rule, got %v", got.Guidelines)
		}
		if !containsSubstring(got.Guidelines, "resting heart rate") {
			t.Errorf("expected the morning heart-rate rule, got %v", got.Guidelines)
		}
	})

	t.Run("return criteria scale with severity", func(t *testing.T) {
		t.Parallel()
		mild := e.CreateRecoveryProtocol(ConditionInjury, SeverityMild, "foot")
		if containsSubstring(mild.ReturnCriteria, "medical clearance") {
			t.Errorf("mild protocol should not require clearance: %v", mild.ReturnCriteria)
		}
		if !containsSubstring(mild.ReturnCriteria, "pain-free") || !containsSubstring(mild.ReturnCriteria, "range of motion") {
			t.Errorf("mild injury criteria = %v", mild.ReturnCriteria)
		}

		severe := e.CreateRecoveryProtocol(ConditionIllness, SeveritySevere, "")
		if !containsSubstring(severe.ReturnCriteria, "medical clearance") {
			t.Errorf("severe protocol missing the clearance requirement: %v", severe.ReturnCriteria)
		}
		if !containsSubstring(severe.ReturnCriteria, "baseline for 3 consecutive mornings") {
			t.Errorf("illness criteria = %v", severe.ReturnCriteria)
		}
	})

	t.Run("metadata carries through", func(t *testing.T) {
		t.Parallel()
		got := e.CreateRecoveryProtocol(ConditionInjury, SeverityModerate, "hamstring")

		if got.Condition != ConditionInjury || got.Severity != SeverityModerate || got.AffectedArea != "hamstring" {
			t.Errorf("metadata = %s/%s/%s", got.Condition, got.Severity, got.AffectedArea)
		}
		found := false
		for _, g := range got.Guidelines {
			if strings.Contains(g, "strength work") {
				found = true
			}
		}
		if !found {
			t.Errorf("expected strength guidance for a hamstring injury, got %v", got.Guidelines)
		}
	})
}
