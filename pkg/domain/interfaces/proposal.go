package interfaces

import (
	"context"

	"github.com/bidscope/bidscope/pkg/domain/model"
	"github.com/bidscope/bidscope/pkg/domain/types"
)

// ProposalRepository defines the interface for Proposal data persistence
type ProposalRepository interface {
	// Put stores a proposal, overwriting any existing record with the same ID
	Put(ctx context.Context, proposal *model.Proposal) error

	// Get retrieves a proposal by ID
	Get(ctx context.Context, id types.ProposalID) (*model.Proposal, error)

	// List retrieves all proposals, newest first
	List(ctx context.Context) ([]*model.Proposal, error)
}
