package engine

import (
	"math"
	"testing"

	"github.com/taperlab/taper/internal/plan"
)

func TestPlannedStress(t *testing.T) {
	t.Parallel()

	e := newTestEngine()

	tests := []struct {
		name    string
		workout plan.PlannedWorkout
		want    float64
	}{
		{
			name:    "explicit estimate wins",
			workout: plan.PlannedWorkout{DurationMin: 60, Intensity: 90, Targets: plan.TargetMetrics{EstimatedTSS: f(42)}},
			want:    42,
		},
		{
			name:    "derived from duration and intensity",
			workout: plan.PlannedWorkout{DurationMin: 60, Intensity: 90},
			want:    60 * 0.9 * 0.9,
		},
		{
			name:    "default when nothing to derive from",
			workout: plan.PlannedWorkout{},
			want:    50,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := e.PlannedStress(tt.workout); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("PlannedStress() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAssessOverreachingRisk(t *testing.T) {
	t.Parallel()

	e := newTestEngine()

	t.Run("steady training is low risk", func(t *testing.T) {
		t.Parallel()
		got := e.AssessOverreachingRisk(steadyHistory(), nil)

		if got.Level != plan.RiskLow {
			t.Errorf("level = %v, want %v", got.Level, plan.RiskLow)
		}
		if math.Abs(got.AcuteChronicRatio-1.0) > 1e-9 {
			t.Errorf("ratio = %v, want 1.0", got.AcuteChronicRatio)
		}
		if len(got.MitigationStrategies) != 0 {
			t.Errorf("unexpected mitigations: %v", got.MitigationStrategies)
		}
	})

	t.Run("sharp ramp with a loaded week ahead", func(t *testing.T) {
		t.Parallel()
		// chronic base ~57.5/week, acute 160: ratio well above high risk
		history := []plan.CompletedWorkout{
			effortRun(1, 80),
			effortRun(3, 80),
			effortRun(9, 40),
			effortRun(16, 30),
		}
		planned := []plan.PlannedWorkout{
			{Date: daysAhead(2), DurationMin: 60, Intensity: 95},
			{Date: daysAhead(4), DurationMin: 90, Intensity: 90},
			{Date: daysAhead(20), DurationMin: 120, Intensity: 90}, // outside the window
		}

		got := e.AssessOverreachingRisk(history, planned)

		if got.AcuteChronicRatio <= e.cfg.ACWRHighRisk {
			t.Fatalf("scenario should exceed the high-risk ratio, got %v", got.AcuteChronicRatio)
		}
		if got.Level != plan.RiskHigh && got.Level != plan.RiskCritical {
			t.Errorf("level = %v, want high or critical", got.Level)
		}
		if got.ProjectedRisk < got.CurrentRisk {
			t.Errorf("projected risk %v should not be below current %v with a loaded week planned", got.ProjectedRisk, got.CurrentRisk)
		}
		if got.WeeklyLoadIncrease <= 10 {
			t.Errorf("weekly load increase = %v, want a steep ramp", got.WeeklyLoadIncrease)
		}
		if !containsSubstring(got.MitigationStrategies, "cut this week's volume") {
			t.Errorf("expected an ACWR mitigation, got %v", got.MitigationStrategies)
		}
		if !containsSubstring(got.MitigationStrategies, "cap week-over-week increases") {
			t.Errorf("expected a ramp mitigation, got %v", got.MitigationStrategies)
		}
	})

	t.Run("empty inputs produce the zero assessment", func(t *testing.T) {
		t.Parallel()
		got := e.AssessOverreachingRisk(nil, nil)

		if got.Level != plan.RiskLow || got.CurrentRisk != 0 || got.AcuteChronicRatio != 0 {
			t.Errorf("empty assessment = %+v, want zeroed low risk", got)
		}
	})
}

func TestRiskLevelBands(t *testing.T) {
	t.Parallel()

	currentTests := []struct {
		risk float64
		want plan.RiskLevel
	}{
		{0, plan.RiskLow},
		{39.9, plan.RiskLow},
		{40, plan.RiskModerate},
		{60, plan.RiskHigh},
		{80, plan.RiskCritical},
	}
	for _, tt := range currentTests {
		tt := tt
		if got := classifyCurrentRisk(tt.risk); got != tt.want {
			t.Errorf("classifyCurrentRisk(%v) = %v, want %v", tt.risk, got, tt.want)
		}
	}

	projectedTests := []struct {
		risk float64
		want plan.RiskLevel
	}{
		{49.9, plan.RiskLow},
		{50, plan.RiskModerate},
		{70, plan.RiskHigh},
		{90, plan.RiskCritical},
	}
	for _, tt := range projectedTests {
		tt := tt
		if got := classifyProjectedRisk(tt.risk); got != tt.want {
			t.Errorf("classifyProjectedRisk(%v) = %v, want %v", tt.risk, got, tt.want)
		}
	}
}
