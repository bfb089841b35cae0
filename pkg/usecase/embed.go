package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/bidscope/bidscope/pkg/domain/interfaces"
	"github.com/bidscope/bidscope/pkg/domain/model"
	"github.com/bidscope/bidscope/pkg/domain/types"
	"github.com/bidscope/bidscope/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
)

// embedConcurrency bounds parallel provider calls in a single EnsureEmbedded
// batch
const embedConcurrency = 4

// EmbedReport describes the outcome of an EnsureEmbedded call. Proposals in
// Failed were left unembedded because the provider call failed; they must be
// excluded from similarity scoring for the request.
type EmbedReport struct {
	Computed []types.ProposalID
	Cached   []types.ProposalID
	Failed   map[types.ProposalID]error
}

// Skipped returns the IDs of proposals that could not be embedded
func (r *EmbedReport) Skipped() []types.ProposalID {
	ids := make([]types.ProposalID, 0, len(r.Failed))
	for id := range r.Failed {
		ids = append(ids, id)
	}
	return ids
}

// EnsureEmbedded computes and stores embedding vectors for every proposal
// that does not have one yet. An embedding is computed at most once per
// proposal ID, even under concurrent invocations: computation per key is
// deduplicated through singleflight, and the repository Create is atomic
// fail-if-exists, so a lost race degrades to a no-op rather than a duplicate
// write.
//
// Provider failures are reported per proposal in the returned EmbedReport
// and never abort the rest of the batch.
func (uc *UseCases) EnsureEmbedded(ctx context.Context, proposals []*model.Proposal) (*EmbedReport, error) {
	if uc.embedder == nil {
		return nil, goerr.Wrap(ErrNoEmbedder, "cannot ensure embeddings")
	}

	report := &EmbedReport{
		Failed: make(map[types.ProposalID]error),
	}
	if len(proposals) == 0 {
		return report, nil
	}

	ids := make([]types.ProposalID, len(proposals))
	for i, p := range proposals {
		ids[i] = p.ID
	}

	existing, err := uc.repo.Embedding().GetBatch(ctx, ids)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to look up stored embeddings")
	}

	var mu sync.Mutex
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(embedConcurrency)

	for _, p := range proposals {
		if _, ok := existing[p.ID]; ok {
			report.Cached = append(report.Cached, p.ID)
			continue
		}

		eg.Go(func() error {
			err := uc.embedOne(ctx, p)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				logging.From(ctx).Warn("failed to embed proposal",
					"proposalID", p.ID,
					"error", err.Error(),
				)
				report.Failed[p.ID] = err
			} else {
				report.Computed = append(report.Computed, p.ID)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, goerr.Wrap(err, "embedding batch failed")
	}

	return report, nil
}

// embedOne computes and stores the embedding for a single proposal. The
// whole check-compute-store sequence runs inside singleflight keyed by the
// proposal ID, so concurrent callers for the same proposal share one
// provider call.
func (uc *UseCases) embedOne(ctx context.Context, proposal *model.Proposal) error {
	_, err, _ := uc.embedGroup.Do(string(proposal.ID), func() (any, error) {
		if _, err := uc.repo.Embedding().Get(ctx, proposal.ID); err == nil {
			return nil, nil
		} else if !errors.Is(err, interfaces.ErrNotFound) {
			return nil, err
		}

		vector, err := uc.embedder.Embed(ctx, proposal.EmbeddingText())
		if err != nil {
			return nil, goerr.Wrap(ErrEmbeddingFailed, err.Error(),
				goerr.V("proposalID", proposal.ID),
			)
		}

		_, err = uc.repo.Embedding().Create(ctx, &model.EmbeddingRecord{
			ProposalID: proposal.ID,
			Vector:     vector,
		})
		if err != nil && !errors.Is(err, interfaces.ErrAlreadyExists) {
			return nil, goerr.Wrap(err, "failed to store embedding",
				goerr.V("proposalID", proposal.ID),
			)
		}

		return nil, nil
	})

	return err
}

// GetEmbedding returns the stored embedding vector for a proposal
func (uc *UseCases) GetEmbedding(ctx context.Context, proposalID types.ProposalID) ([]float32, error) {
	record, err := uc.repo.Embedding().Get(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	return record.Vector, nil
}
