package memory

import (
	"github.com/bidscope/bidscope/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

// Memory is an in-memory repository for development and testing
type Memory struct {
	opportunity *opportunityRepository
	proposal    *proposalRepository
	embedding   *embeddingRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		opportunity: newOpportunityRepository(),
		proposal:    newProposalRepository(),
		embedding:   newEmbeddingRepository(),
	}
}

func (m *Memory) Opportunity() interfaces.OpportunityRepository {
	return m.opportunity
}

func (m *Memory) Proposal() interfaces.ProposalRepository {
	return m.proposal
}

func (m *Memory) Embedding() interfaces.EmbeddingRepository {
	return m.embedding
}

func (m *Memory) Close() error {
	return nil
}
