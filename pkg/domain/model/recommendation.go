package model

import "github.com/bidscope/bidscope/pkg/domain/types"

// Recommendation source and explanation labels. The explanation is static:
// no per-pair natural language is generated.
const (
	RecommendationSource = "Historical Proposal"
	RecommendationWhy    = "Semantic similarity between the opportunity description and this proposal."
)

// Recommendation is a historical proposal matched against a new opportunity
// description, scored by cosine similarity.
type Recommendation struct {
	ProposalID types.ProposalID `json:"proposalId"`
	Title      string           `json:"title"`
	FitScore   float64          `json:"fitScore"`
	Source     string           `json:"source"`
	Why        string           `json:"why"`
}
