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

type opportunityRepository struct {
	mu      sync.RWMutex
	entries map[types.OpportunityID]*model.Opportunity
}

func newOpportunityRepository() *opportunityRepository {
	return &opportunityRepository{
		entries: make(map[types.OpportunityID]*model.Opportunity),
	}
}

func copyOpportunity(o *model.Opportunity) *model.Opportunity {
	copied := *o
	if o.DueDate != nil {
		due := *o.DueDate
		copied.DueDate = &due
	}
	if o.RequiredSkills != nil {
		copied.RequiredSkills = append([]string(nil), o.RequiredSkills...)
	}
	return &copied
}

func (r *opportunityRepository) Put(ctx context.Context, opp *model.Opportunity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copyOpportunity(opp)
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}

	r.entries[stored.ID] = stored
	return nil
}

func (r *opportunityRepository) Get(ctx context.Context, id types.OpportunityID) (*model.Opportunity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	opp, exists := r.entries[id]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "opportunity not found", goerr.V("id", id))
	}

	return copyOpportunity(opp), nil
}

func (r *opportunityRepository) List(ctx context.Context) ([]*model.Opportunity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Opportunity, 0, len(r.entries))
	for _, o := range r.entries {
		result = append(result, copyOpportunity(o))
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

func (r *opportunityRepository) Delete(ctx context.Context, id types.OpportunityID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[id]; !exists {
		return goerr.Wrap(interfaces.ErrNotFound, "opportunity not found", goerr.V("id", id))
	}

	delete(r.entries, id)
	return nil
}
