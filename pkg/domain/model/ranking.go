package model

import (
	"math"
	"sort"
	"time"

	"github.com/bidscope/bidscope/pkg/domain/model/config"
)

// RankedOpportunity is an Opportunity annotated with its composite score.
// The composite is a weighted sum of two clamped terms and is nominally
// within [0, 1], though a past-due opportunity can push it slightly above
// (see RecencyBoost).
type RankedOpportunity struct {
	Opportunity
	Score          float64  `json:"score"`
	WinProbability float64  `json:"winProbability"`
	Factors        []string `json:"factors"`
}

// RankOpportunities scores every opportunity against the profile and returns
// them sorted by composite score, highest first. The sort is stable: ties
// keep their input order.
func RankOpportunities(opps []*Opportunity, profile *CompanyProfile, cfg *config.ScoringConfig, now time.Time) []RankedOpportunity {
	if cfg == nil {
		cfg = config.DefaultScoringConfig()
	}

	ranked := make([]RankedOpportunity, 0, len(opps))
	for _, opp := range opps {
		prediction := PredictWinProbability(opp, profile, cfg)
		boost := RecencyBoost(opp.DueDate, cfg, now)

		ranked = append(ranked, RankedOpportunity{
			Opportunity:    *opp,
			Score:          prediction.Probability*cfg.ProbabilityWeight + boost*cfg.RecencyWeight,
			WinProbability: prediction.Probability,
			Factors:        prediction.Factors,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}

// RecencyBoost returns the deadline decay term: 0 with no due date, rising
// from 0 toward 1 as the due date approaches within the configured horizon.
//
// Days are measured as real values, not whole days. For a past-due date the
// inner min picks the negative remaining-days value, which pushes the boost
// above 1. That quirk is inherited from the original scoring policy and is
// kept as-is.
func RecencyBoost(dueDate *time.Time, cfg *config.ScoringConfig, now time.Time) float64 {
	if dueDate == nil {
		return 0
	}

	days := dueDate.Sub(now).Hours() / 24
	return math.Max(0, 1-math.Min(cfg.RecencyHorizon, days)/cfg.RecencyHorizon)
}
