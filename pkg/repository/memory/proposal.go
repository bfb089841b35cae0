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

type proposalRepository struct {
	mu      sync.RWMutex
	entries map[types.ProposalID]*model.Proposal
}

func newProposalRepository() *proposalRepository {
	return &proposalRepository{
		entries: make(map[types.ProposalID]*model.Proposal),
	}
}

func copyProposal(p *model.Proposal) *model.Proposal {
	copied := *p
	return &copied
}

func (r *proposalRepository) Put(ctx context.Context, proposal *model.Proposal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copyProposal(proposal)
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}

	r.entries[stored.ID] = stored
	return nil
}

func (r *proposalRepository) Get(ctx context.Context, id types.ProposalID) (*model.Proposal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	proposal, exists := r.entries[id]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "proposal not found", goerr.V("id", id))
	}

	return copyProposal(proposal), nil
}

func (r *proposalRepository) List(ctx context.Context) ([]*model.Proposal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Proposal, 0, len(r.entries))
	for _, p := range r.entries {
		result = append(result, copyProposal(p))
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}
