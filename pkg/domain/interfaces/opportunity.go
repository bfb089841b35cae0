package interfaces

import (
	"context"

	"github.com/bidscope/bidscope/pkg/domain/model"
	"github.com/bidscope/bidscope/pkg/domain/types"
)

// OpportunityRepository defines the interface for Opportunity data persistence
type OpportunityRepository interface {
	// Put stores an opportunity, overwriting any existing record with the
	// same ID
	Put(ctx context.Context, opp *model.Opportunity) error

	// Get retrieves an opportunity by ID
	Get(ctx context.Context, id types.OpportunityID) (*model.Opportunity, error)

	// List retrieves all opportunities, newest first
	List(ctx context.Context) ([]*model.Opportunity, error)

	// Delete deletes an opportunity by ID
	Delete(ctx context.Context, id types.OpportunityID) error
}
