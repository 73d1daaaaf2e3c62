package plan

type WorkoutType string

const (
	WorkoutEasy      WorkoutType = "easy"
	WorkoutTempo     WorkoutType = "tempo"
	WorkoutInterval  WorkoutType = "interval"
	WorkoutLongRun   WorkoutType = "long_run"
	WorkoutRecovery  WorkoutType = "recovery"
	WorkoutCrossTrain WorkoutType = "cross_train"
	WorkoutRest      WorkoutType = "rest"
	WorkoutRace      WorkoutType = "race"
)

type ModificationType string

const (
	ModReduceVolume      ModificationType = "reduce_volume"
	ModReduceIntensity   ModificationType = "reduce_intensity"
	ModAddRecovery       ModificationType = "add_recovery"
	ModSubstituteWorkout ModificationType = "substitute_workout"
	ModDelayProgression  ModificationType = "delay_progression"
	ModInjuryProtocol    ModificationType = "injury_protocol"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank orders priorities for stable sorting, lowest value first.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

type FatigueLevel string

const (
	FatigueLow      FatigueLevel = "low"
	FatigueModerate FatigueLevel = "moderate"
	FatigueHigh     FatigueLevel = "high"
	FatigueSevere   FatigueLevel = "severe"
)

type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Rank orders risk levels from least to most severe.
func (r RiskLevel) Rank() int {
	switch r {
	case RiskLow:
		return 0
	case RiskModerate:
		return 1
	case RiskHigh:
		return 2
	case RiskCritical:
		return 3
	default:
		return 0
	}
}

type InjuryStatus string

const (
	InjuryHealthy    InjuryStatus = "healthy"
	InjuryInjured    InjuryStatus = "injured"
	InjuryRecovering InjuryStatus = "recovering"
)

type IllnessStatus string

const (
	IllnessHealthy    IllnessStatus = "healthy"
	IllnessSick       IllnessStatus = "sick"
	IllnessRecovering IllnessStatus = "recovering"
)
