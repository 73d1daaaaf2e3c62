package engine

import (
	"strings"

	"github.com/taperlab/taper/internal/plan"
)

type Condition string

const (
	ConditionInjury  Condition = "injury"
	ConditionIllness Condition = "illness"
)

type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// RecoveryPhase is one stage of a return-to-training protocol. Volume is a
// percentage of pre-injury weekly volume; IntensityCeiling caps session
// intensity for the phase (0 means no training at all).
type RecoveryPhase struct {
	Name                string             `json:"name"`
	DurationDays        int                `json:"duration_days"`
	AllowedWorkoutTypes []plan.WorkoutType `json:"allowed_workout_types"`
	VolumePercent       float64            `json:"volume_percent"`
	IntensityCeiling    float64            `json:"intensity_ceiling"`
	Focus               string             `json:"focus"`
}

type RecoveryProtocol struct {
	Condition      Condition       `json:"condition"`
	Severity       Severity        `json:"severity"`
	AffectedArea   string          `json:"affected_area,omitempty"`
	Phases         []RecoveryPhase `json:"phases"`
	Guidelines     []string        `json:"guidelines"`
	ReturnCriteria []string        `json:"return_criteria"`
}

// CreateRecoveryProtocol emits the phased return-to-training protocol for a
// condition and severity. Phase tables are fixed per combination; volume
// ceilings never decrease across phases.
func (e *Engine) CreateRecoveryProtocol(condition Condition, severity Severity, affectedArea string) RecoveryProtocol {
	return RecoveryProtocol{
		Condition:      condition,
		Severity:       severity,
		AffectedArea:   affectedArea,
		Phases:         protocolPhases(condition, severity),
		Guidelines:     protocolGuidelines(condition, severity, affectedArea),
		ReturnCriteria: returnCriteria(condition, severity),
	}
}

func protocolPhases(condition Condition, severity Severity) []RecoveryPhase {
	restOnly := []plan.WorkoutType{plan.WorkoutRest}
	gentle := []plan.WorkoutType{plan.WorkoutRest, plan.WorkoutRecovery, plan.WorkoutCrossTrain}
	rebuild := []plan.WorkoutType{plan.WorkoutRecovery, plan.WorkoutEasy, plan.WorkoutCrossTrain}

	if condition == ConditionInjury {
		switch severity {
		case SeveritySevere:
			return []RecoveryPhase{
				{Name: "Medical", DurationDays: 14, AllowedWorkoutTypes: restOnly, VolumePercent: 0, IntensityCeiling: 0, Focus: "diagnosis, treatment, and protected rest"},
				{Name: "Rehabilitation", DurationDays: 21, AllowedWorkoutTypes: gentle, VolumePercent: 10, IntensityCeiling: 50, Focus: "restore range of motion and pain-free movement"},
				{Name: "Reconditioning", DurationDays: 28, AllowedWorkoutTypes: rebuild, VolumePercent: 40, IntensityCeiling: 65, Focus: "rebuild aerobic base before any quality work"},
			}
		case SeverityModerate:
			return []RecoveryPhase{
				{Name: "Active Recovery", DurationDays: 7, AllowedWorkoutTypes: restOnly, VolumePercent: 0, IntensityCeiling: 0, Focus: "offload the affected tissue completely"},
				{Name: "Rehabilitation", DurationDays: 14, AllowedWorkoutTypes: gentle, VolumePercent: 25, IntensityCeiling: 55, Focus: "graded loading without pain"},
				{Name: "Reconditioning", DurationDays: 21, AllowedWorkoutTypes: rebuild, VolumePercent: 50, IntensityCeiling: 70, Focus: "return to continuous easy running"},
			}
		default: // mild
			return []RecoveryPhase{
				{Name: "Relative Rest", DurationDays: 3, AllowedWorkoutTypes: gentle, VolumePercent: 20, IntensityCeiling: 50, Focus: "let symptoms settle while staying loosely active"},
				{Name: "Reconditioning", DurationDays: 10, AllowedWorkoutTypes: rebuild, VolumePercent: 60, IntensityCeiling: 70, Focus: "ramp back to normal easy volume"},
			}
		}
	}

	switch severity {
	case SeveritySevere:
		return []RecoveryPhase{
			{Name: "Medical", DurationDays: 10, AllowedWorkoutTypes: restOnly, VolumePercent: 0, IntensityCeiling: 0, Focus: "full rest until cleared"},
			{Name: "Gradual Return", DurationDays: 14, AllowedWorkoutTypes: gentle, VolumePercent: 30, IntensityCeiling: 55, Focus: "short easy sessions, watching heart-rate response"},
			{Name: "Rebuild", DurationDays: 21, AllowedWorkoutTypes: rebuild, VolumePercent: 60, IntensityCeiling: 70, Focus: "restore normal volume before intensity"},
		}
	case SeverityModerate:
		return []RecoveryPhase{
			{Name: "Rest", DurationDays: 5, AllowedWorkoutTypes: restOnly, VolumePercent: 0, IntensityCeiling: 0, Focus: "symptom resolution"},
			{Name: "Gradual Return", DurationDays: 10, AllowedWorkoutTypes: gentle, VolumePercent: 40, IntensityCeiling: 60, Focus: "easy aerobic work only"},
			{Name: "Rebuild", DurationDays: 10, AllowedWorkoutTypes: rebuild, VolumePercent: 70, IntensityCeiling: 75, Focus: "progress back to the full schedule"},
		}
	default: // mild
		return []RecoveryPhase{
			{Name: "Rest", DurationDays: 3, AllowedWorkoutTypes: restOnly, VolumePercent: 0, IntensityCeiling: 0, Focus: "rest until 24h symptom-free"},
			{Name: "Easy Return", DurationDays: 7, AllowedWorkoutTypes: rebuild, VolumePercent: 50, IntensityCeiling: 60, Focus: "conversational-pace running only"},
		}
	}
}

func protocolGuidelines(condition Condition, severity Severity, affectedArea string) []string {
	guidelines := []string{}

	if condition == ConditionInjury {
		guidelines = append(guidelines,
			"any return of sharp pain means dropping back one phase",
			"advance phases only after completing the prior one symptom-free",
		)
		switch strings.ToLower(affectedArea) {
		case "knee", "ankle", "foot":
			guidelines = append(guidelines, "prefer non-impact volume first: pool running or cycling keep aerobic fitness without loading the joint")
		case "shin", "calf":
			guidelines = append(guidelines, "run on soft, flat surfaces and avoid hills until the reconditioning phase ends")
		case "hip", "hamstring", "glute":
			guidelines = append(guidelines, "add strength work for the affected area twice a week before reintroducing speed")
		}
	} else {
		guidelines = append(guidelines,
			"no training with fever or symptoms below the neck",
			"hydrate aggressively and expect elevated heart rate at easy paces for the first week back",
		)
		if severity != SeverityMild {
			guidelines = append(guidelines, "watch morning resting heart rate; a value 5+ bpm above baseline means another rest day")
		}
	}

	return guidelines
}

func returnCriteria(condition Condition, severity Severity) []string {
	criteria := []string{"pain-free daily activity for at least 48 hours"}

	if condition == ConditionInjury {
		criteria = append(criteria, "full range of motion in the affected area")
	} else {
		criteria = append(criteria, "resting heart rate back to baseline for 3 consecutive mornings")
	}

	if severity == SeverityModerate || severity == SeveritySevere {
		criteria = append(criteria, "medical clearance to resume structured training")
	}

	return criteria
}
