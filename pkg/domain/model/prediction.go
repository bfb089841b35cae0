package model

import (
	"fmt"
	"math"
	"strings"

	"github.com/bidscope/bidscope/pkg/domain/model/config"
	"github.com/bidscope/bidscope/pkg/domain/types"
)

// PredictionResult holds a win-probability estimate and the human-readable
// factors that contributed to it. It is derived per request and never
// persisted.
type PredictionResult struct {
	Probability float64  `json:"probability"`
	Factors     []string `json:"factors"`
}

// PredictWinProbability estimates how likely the company is to win the
// opportunity. It is a total function: absent optional fields contribute
// nothing, and the returned probability is always within [0, 1].
//
// The adjustments are additive over the configured base score, applied in a
// fixed order so that identical inputs always produce identical output.
func PredictWinProbability(opp *Opportunity, profile *CompanyProfile, cfg *config.ScoringConfig) PredictionResult {
	if cfg == nil {
		cfg = config.DefaultScoringConfig()
	}

	score := cfg.BaseScore
	var factors []string

	if opp.CustomerIndustry != "" && opp.CustomerIndustry == profile.Industry {
		score += cfg.IndustryMatchBonus
		factors = append(factors, fmt.Sprintf("Industry alignment with %s sector", opp.CustomerIndustry))
	}

	if len(opp.RequiredSkills) > 0 {
		rate := skillMatchRate(opp.RequiredSkills, profile.Expertise)
		if rate > cfg.SkillMatchFloor {
			score += cfg.SkillMatchWeight * rate
			factors = append(factors, fmt.Sprintf("Strong skill match (%.0f%% of required skills covered)", rate*100))
		}
	}

	performance := (profile.PastWinRate - cfg.WinRatePivot) * cfg.WinRateWeight
	score += performance
	if performance > 0 {
		factors = append(factors, fmt.Sprintf("Historical win rate of %.0f%%", profile.PastWinRate*100))
	}

	switch {
	case opp.Complexity == types.ComplexityHigh && profile.Capacity > cfg.HighCapacityFloor:
		score += cfg.HighCapacityBonus
		factors = append(factors, "Capacity available for a high-complexity effort")
	case opp.Complexity == types.ComplexityLow && profile.Capacity < cfg.LowCapacityCeil:
		score += cfg.LowCapacityBonus
		factors = append(factors, "Efficient fit for a low-complexity effort")
	}

	if opp.Value > cfg.HighValueThreshold {
		factors = append(factors, fmt.Sprintf("High contract value ($%.0f)", opp.Value))
	}

	return PredictionResult{
		Probability: clamp01(score),
		Factors:     factors,
	}
}

// skillMatchRate returns the fraction of required skills that appear,
// case-insensitively, as a substring of at least one expertise entry.
func skillMatchRate(required, expertise []string) float64 {
	if len(required) == 0 {
		return 0
	}

	matched := 0
	for _, skill := range required {
		needle := strings.ToLower(skill)
		for _, e := range expertise {
			if strings.Contains(strings.ToLower(e), needle) {
				matched++
				break
			}
		}
	}

	return float64(matched) / float64(len(required))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
