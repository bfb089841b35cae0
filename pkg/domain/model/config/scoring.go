package config

import "github.com/m-mizutani/goerr/v2"

// ScoringConfig holds the weights and thresholds of the win-probability
// model, the ranking composite, and the alert rules. The defaults reproduce
// the production scoring policy; a deployment can override them with a TOML
// policy file.
type ScoringConfig struct {
	// Win-probability model
	BaseScore          float64 `toml:"base_score"`
	IndustryMatchBonus float64 `toml:"industry_match_bonus"`
	SkillMatchWeight   float64 `toml:"skill_match_weight"`
	SkillMatchFloor    float64 `toml:"skill_match_floor"`
	WinRateWeight      float64 `toml:"win_rate_weight"`
	WinRatePivot       float64 `toml:"win_rate_pivot"`
	HighCapacityBonus  float64 `toml:"high_capacity_bonus"`
	HighCapacityFloor  float64 `toml:"high_capacity_floor"`
	LowCapacityBonus   float64 `toml:"low_capacity_bonus"`
	LowCapacityCeil    float64 `toml:"low_capacity_ceil"`
	HighValueThreshold float64 `toml:"high_value_threshold"`

	// Ranking composite
	ProbabilityWeight float64 `toml:"probability_weight"`
	RecencyWeight     float64 `toml:"recency_weight"`
	RecencyHorizon    float64 `toml:"recency_horizon_days"`

	// Alert rules
	DeadlineWindowDays   float64 `toml:"deadline_window_days"`
	DeadlineCriticalDays float64 `toml:"deadline_critical_days"`
}

// DefaultScoringConfig returns the production scoring policy
func DefaultScoringConfig() *ScoringConfig {
	return &ScoringConfig{
		BaseScore:          0.5,
		IndustryMatchBonus: 0.15,
		SkillMatchWeight:   0.2,
		SkillMatchFloor:    0.5,
		WinRateWeight:      0.3,
		WinRatePivot:       0.5,
		HighCapacityBonus:  0.1,
		HighCapacityFloor:  0.7,
		LowCapacityBonus:   0.05,
		LowCapacityCeil:    0.5,
		HighValueThreshold: 100000,

		ProbabilityWeight: 0.8,
		RecencyWeight:     0.2,
		RecencyHorizon:    60,

		DeadlineWindowDays:   7,
		DeadlineCriticalDays: 3,
	}
}

// Validate checks if the ScoringConfig is usable
func (x *ScoringConfig) Validate() error {
	if x.BaseScore < 0 || x.BaseScore > 1 {
		return goerr.New("base score must be between 0 and 1", goerr.V("baseScore", x.BaseScore))
	}
	if x.SkillMatchFloor < 0 || x.SkillMatchFloor > 1 {
		return goerr.New("skill match floor must be between 0 and 1", goerr.V("skillMatchFloor", x.SkillMatchFloor))
	}
	if x.ProbabilityWeight < 0 || x.RecencyWeight < 0 {
		return goerr.New("composite weights must not be negative",
			goerr.V("probabilityWeight", x.ProbabilityWeight),
			goerr.V("recencyWeight", x.RecencyWeight),
		)
	}
	if x.RecencyHorizon <= 0 {
		return goerr.New("recency horizon must be positive", goerr.V("recencyHorizon", x.RecencyHorizon))
	}
	if x.DeadlineWindowDays < 0 {
		return goerr.New("deadline window must not be negative", goerr.V("deadlineWindowDays", x.DeadlineWindowDays))
	}
	if x.DeadlineCriticalDays > x.DeadlineWindowDays {
		return goerr.New("deadline critical threshold must not exceed the window",
			goerr.V("deadlineCriticalDays", x.DeadlineCriticalDays),
			goerr.V("deadlineWindowDays", x.DeadlineWindowDays),
		)
	}
	return nil
}
