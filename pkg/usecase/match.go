package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/bidscope/bidscope/pkg/domain/model"
	"github.com/bidscope/bidscope/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultTopK is the number of recommendations returned when the caller
// does not specify one
const DefaultTopK = 10

// MatchResult holds the ranked recommendations plus the proposals that were
// excluded because their embedding could not be computed.
type MatchResult struct {
	Recommendations []model.Recommendation `json:"recommendations"`
	Skipped         []types.ProposalID     `json:"skipped,omitempty"`
}

// Recommend matches the free-text description of a new opportunity against
// all stored historical proposals and returns the topK most similar ones.
//
// The target text is embedded on every call: it is request-scoped and not
// identity-bound, so it never enters the embedding cache. Candidate
// proposals go through EnsureEmbedded; candidates whose embedding cannot be
// computed are skipped and reported, not fatal.
func (uc *UseCases) Recommend(ctx context.Context, targetText string, topK int) (*MatchResult, error) {
	if strings.TrimSpace(targetText) == "" {
		return nil, goerr.Wrap(ErrEmptyTargetText, "cannot match proposals")
	}
	if uc.embedder == nil {
		return nil, goerr.Wrap(ErrNoEmbedder, "cannot match proposals")
	}
	if topK <= 0 {
		topK = DefaultTopK
	}

	target, err := uc.embedder.Embed(ctx, targetText)
	if err != nil {
		return nil, goerr.Wrap(ErrEmbeddingFailed, err.Error())
	}

	proposals, err := uc.repo.Proposal().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list proposals")
	}

	report, err := uc.EnsureEmbedded(ctx, proposals)
	if err != nil {
		return nil, err
	}

	ids := make([]types.ProposalID, len(proposals))
	for i, p := range proposals {
		ids[i] = p.ID
	}
	records, err := uc.repo.Embedding().GetBatch(ctx, ids)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to look up stored embeddings")
	}

	recs := make([]model.Recommendation, 0, len(proposals))
	for _, p := range proposals {
		record, ok := records[p.ID]
		if !ok {
			continue
		}

		recs = append(recs, model.Recommendation{
			ProposalID: p.ID,
			Title:      p.Title,
			FitScore:   model.CosineSimilarity(target, record.Vector),
			Source:     model.RecommendationSource,
			Why:        model.RecommendationWhy,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].FitScore > recs[j].FitScore
	})

	if len(recs) > topK {
		recs = recs[:topK]
	}

	skipped := report.Skipped()
	sort.Slice(skipped, func(i, j int) bool { return skipped[i] < skipped[j] })

	return &MatchResult{
		Recommendations: recs,
		Skipped:         skipped,
	}, nil
}
