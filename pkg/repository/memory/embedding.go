package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/bidscope/bidscope/pkg/domain/interfaces"
	"github.com/bidscope/bidscope/pkg/domain/model"
	"github.com/bidscope/bidscope/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type embeddingRepository struct {
	mu      sync.RWMutex
	entries map[types.ProposalID]*model.EmbeddingRecord
}

func newEmbeddingRepository() *embeddingRepository {
	return &embeddingRepository{
		entries: make(map[types.ProposalID]*model.EmbeddingRecord),
	}
}

func copyEmbedding(e *model.EmbeddingRecord) *model.EmbeddingRecord {
	copied := &model.EmbeddingRecord{
		ProposalID: e.ProposalID,
		CreatedAt:  e.CreatedAt,
	}
	if e.Vector != nil {
		copied.Vector = make([]float32, len(e.Vector))
		copy(copied.Vector, e.Vector)
	}
	return copied
}

// Create is atomic: the existence check and the write happen under one lock,
// so concurrent callers cannot both succeed for the same proposal ID.
func (r *embeddingRepository) Create(ctx context.Context, record *model.EmbeddingRecord) (*model.EmbeddingRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[record.ProposalID]; exists {
		return nil, goerr.Wrap(interfaces.ErrAlreadyExists, "embedding already exists",
			goerr.V("proposalID", record.ProposalID),
		)
	}

	created := copyEmbedding(record)
	created.CreatedAt = time.Now().UTC()

	r.entries[created.ProposalID] = created
	return copyEmbedding(created), nil
}

func (r *embeddingRepository) Get(ctx context.Context, proposalID types.ProposalID) (*model.EmbeddingRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.entries[proposalID]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "embedding not found",
			goerr.V("proposalID", proposalID),
		)
	}

	return copyEmbedding(record), nil
}

func (r *embeddingRepository) GetBatch(ctx context.Context, proposalIDs []types.ProposalID) (map[types.ProposalID]*model.EmbeddingRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[types.ProposalID]*model.EmbeddingRecord, len(proposalIDs))
	for _, id := range proposalIDs {
		if record, exists := r.entries[id]; exists {
			result[id] = copyEmbedding(record)
		}
	}

	return result, nil
}

func (r *embeddingRepository) FindNearest(ctx context.Context, vector []float32, limit int) ([]*model.EmbeddingRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	type scored struct {
		record *model.EmbeddingRecord
		score  float64
	}

	var candidates []scored
	for _, e := range r.entries {
		if len(e.Vector) == 0 {
			continue
		}
		candidates = append(candidates, scored{
			record: copyEmbedding(e),
			score:  model.CosineSimilarity(vector, e.Vector),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if limit > len(candidates) {
		limit = len(candidates)
	}

	result := make([]*model.EmbeddingRecord, limit)
	for i := 0; i < limit; i++ {
		result[i] = candidates[i].record
	}

	return result, nil
}
