package interfaces

import (
	"context"

	"github.com/bidscope/bidscope/pkg/domain/model"
	"github.com/bidscope/bidscope/pkg/domain/types"
)

// EmbeddingRepository defines the interface for EmbeddingRecord persistence.
// Records are write-once: Create must be atomic so that concurrent callers
// cannot both succeed for the same proposal ID.
type EmbeddingRepository interface {
	// Create stores a new embedding record. It fails with ErrAlreadyExists
	// when a record for the proposal ID is already present.
	Create(ctx context.Context, record *model.EmbeddingRecord) (*model.EmbeddingRecord, error)

	// Get retrieves the embedding record for a proposal ID. It fails with
	// ErrNotFound when the proposal has not been embedded.
	Get(ctx context.Context, proposalID types.ProposalID) (*model.EmbeddingRecord, error)

	// GetBatch retrieves the embedding records for the given proposal IDs.
	// Missing records are omitted from the result, not reported as errors.
	GetBatch(ctx context.Context, proposalIDs []types.ProposalID) (map[types.ProposalID]*model.EmbeddingRecord, error)

	// FindNearest returns up to limit records most similar to the given
	// vector by cosine distance.
	FindNearest(ctx context.Context, vector []float32, limit int) ([]*model.EmbeddingRecord, error)
}
