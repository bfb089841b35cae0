package usecase

import (
	"context"

	"github.com/bidscope/bidscope/pkg/domain/model"
	"github.com/bidscope/bidscope/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// PutOpportunity validates and stores an opportunity record
func (uc *UseCases) PutOpportunity(ctx context.Context, opp *model.Opportunity) error {
	if opp.ID == "" {
		opp.ID = types.NewOpportunityID()
	}
	if err := opp.Validate(); err != nil {
		return goerr.Wrap(err, "invalid opportunity")
	}

	return uc.repo.Opportunity().Put(ctx, opp)
}

// ListOpportunities returns all stored opportunities, newest first
func (uc *UseCases) ListOpportunities(ctx context.Context) ([]*model.Opportunity, error) {
	return uc.repo.Opportunity().List(ctx)
}

// DeleteOpportunity removes a stored opportunity
func (uc *UseCases) DeleteOpportunity(ctx context.Context, id types.OpportunityID) error {
	return uc.repo.Opportunity().Delete(ctx, id)
}

// PutProposal validates and stores a historical proposal record
func (uc *UseCases) PutProposal(ctx context.Context, proposal *model.Proposal) error {
	if proposal.ID == "" {
		proposal.ID = types.NewProposalID()
	}
	if err := proposal.Validate(); err != nil {
		return goerr.Wrap(err, "invalid proposal")
	}

	return uc.repo.Proposal().Put(ctx, proposal)
}

// ListProposals returns all stored proposals, newest first
func (uc *UseCases) ListProposals(ctx context.Context) ([]*model.Proposal, error) {
	return uc.repo.Proposal().List(ctx)
}
