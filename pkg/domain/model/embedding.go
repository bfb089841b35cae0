package model

import (
	"math"
	"time"

	"github.com/bidscope/bidscope/pkg/domain/types"
)

// EmbeddingDimension is the dimension of the embedding vector
// Gemini text-embedding-004 uses 768 dimensions
const EmbeddingDimension = 768

// EmbeddingRecord maps a proposal to its embedding vector. A record is
// created lazily, at most once per proposal ID, and never mutated: proposal
// text is treated as immutable for embedding purposes.
type EmbeddingRecord struct {
	ProposalID types.ProposalID `json:"proposalId"`
	Vector     []float32        `json:"vector"`
	CreatedAt  time.Time        `json:"createdAt"`
}

// CosineSimilarity computes the normalized dot product of two vectors.
// It returns 0 when the vectors differ in length or either norm is zero.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0
	}

	return dot / denom
}
