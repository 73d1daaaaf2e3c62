package plan

import "time"

// TargetMetrics carries the planned stress/pace targets for a workout.
// EstimatedTSS is optional; the engine derives a value from duration and
// intensity when it is absent.
type TargetMetrics struct {
	EstimatedTSS       *float64 `json:"estimated_tss,omitempty"`
	TargetPaceMinPerKm *float64 `json:"target_pace_min_per_km,omitempty"`
}

type PlannedWorkout struct {
	ID          string        `json:"id"`
	Date        time.Time     `json:"date"`
	Type        WorkoutType   `json:"type"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	DurationMin float64       `json:"duration_min"`
	DistanceKm  float64       `json:"distance_km"`
	Intensity   float64       `json:"intensity"` // 0-100
	Targets     TargetMetrics `json:"targets"`
}

type TrainingPlan struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Methodology string           `json:"methodology,omitempty"`
	StartDate   time.Time        `json:"start_date"`
	EndDate     time.Time        `json:"end_date"`
	Workouts    []PlannedWorkout `json:"workouts"`
}

type CompletedWorkout struct {
	ID                 string      `json:"id"`
	PlannedWorkoutID   string      `json:"planned_workout_id,omitempty"`
	Date               time.Time   `json:"date"`
	Type               WorkoutType `json:"type,omitempty"`
	DistanceKm         float64     `json:"distance_km"`
	DurationMin        float64     `json:"duration_min"`
	PlannedDurationMin float64     `json:"planned_duration_min,omitempty"`
	AvgPaceMinPerKm    *float64    `json:"avg_pace_min_per_km,omitempty"`
	AvgHeartRate       *float64    `json:"avg_heart_rate,omitempty"`
	PerceivedEffort    *float64    `json:"perceived_effort,omitempty"` // 0-10
	CompletionRate     *float64    `json:"completion_rate,omitempty"`  // 0-1
	Notes              string      `json:"notes,omitempty"`
}

// RecoveryMetrics are supplied per analysis call by the host application.
// Subjective fields are 0-10 scales; HRV and RestingHR are optional
// objective signals. The engine never mutates them.
type RecoveryMetrics struct {
	SleepQuality       float64       `json:"sleep_quality"`
	SleepDurationHours float64       `json:"sleep_duration_hours"`
	StressLevel        float64       `json:"stress_level"`
	MuscleSoreness     float64       `json:"muscle_soreness"`
	EnergyLevel        float64       `json:"energy_level"`
	Motivation         float64       `json:"motivation"`
	HRV                *float64      `json:"hrv,omitempty"`
	RestingHR          *float64      `json:"resting_hr,omitempty"`
	InjuryStatus       InjuryStatus  `json:"injury_status,omitempty"`
	IllnessStatus      IllnessStatus `json:"illness_status,omitempty"`
}
