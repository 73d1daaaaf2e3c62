package engine

// Config holds every tunable constant the engine uses. It is immutable for
// the lifetime of an Engine; tests construct variants field-by-field instead
// of reaching into package state. The env tags let a host override thresholds
// from the environment without the engine knowing about env parsing.
//
// ACWR boundary convention: every tier uses an exclusive lower comparison,
// i.e. a tier fires for ratio strictly greater than its bound. A ratio of
// exactly 1.5 is "elevated", not "high risk"; exactly 1.3 is safe.
type Config struct {
	// Rolling load windows, in calendar days.
	AcuteWindowDays   int `env:"ACUTE_WINDOW_DAYS" envDefault:"7"`
	ChronicWindowDays int `env:"CHRONIC_WINDOW_DAYS" envDefault:"28"`

	// ACWR bands.
	ACWRSafeMin  float64 `env:"ACWR_SAFE_MIN" envDefault:"0.8"`
	ACWRSafeMax  float64 `env:"ACWR_SAFE_MAX" envDefault:"1.3"`
	ACWRHighRisk float64 `env:"ACWR_HIGH_RISK" envDefault:"1.5"`

	// Reference threshold pace used to weight session stress, in min/km.
	// Zero means unknown; stress then falls back to perceived effort.
	ThresholdPaceMinPerKm float64 `env:"THRESHOLD_PACE_MIN_PER_KM" envDefault:"5.0"`

	// Daily summed session stress above which a day counts toward an
	// overload streak.
	DailyTSSThreshold float64 `env:"DAILY_TSS_THRESHOLD" envDefault:"150"`

	// Stress assumed for a planned workout that carries no estimate and
	// not enough data to derive one.
	DefaultPlannedTSS float64 `env:"DEFAULT_PLANNED_TSS" envDefault:"50"`

	// Recovery scoring.
	RecoveryBaseScore    float64 `env:"RECOVERY_BASE_SCORE" envDefault:"70"`
	RecoveryUnitWeight   float64 `env:"RECOVERY_UNIT_WEIGHT" envDefault:"4"`
	HRVBonusThreshold    float64 `env:"HRV_BONUS_THRESHOLD" envDefault:"60"`
	HRVPenaltyThreshold  float64 `env:"HRV_PENALTY_THRESHOLD" envDefault:"40"`
	RestingHRBonusBelow  float64 `env:"RESTING_HR_BONUS_BELOW" envDefault:"50"`
	RestingHRPenaltyAbove float64 `env:"RESTING_HR_PENALTY_ABOVE" envDefault:"70"`
}

// DefaultConfig returns the fixed constants from sports-science convention:
// 7/28-day ACWR windows, a 0.8-1.3 safe band, and a 150 TSS overload day.
func DefaultConfig() Config {
	return Config{
		AcuteWindowDays:       7,
		ChronicWindowDays:     28,
		ACWRSafeMin:           0.8,
		ACWRSafeMax:           1.3,
		ACWRHighRisk:          1.5,
		ThresholdPaceMinPerKm: 5.0,
		DailyTSSThreshold:     150,
		DefaultPlannedTSS:     50,
		RecoveryBaseScore:     70,
		RecoveryUnitWeight:    4,
		HRVBonusThreshold:     60,
		HRVPenaltyThreshold:   40,
		RestingHRBonusBelow:   50,
		RestingHRPenaltyAbove: 70,
	}
}
