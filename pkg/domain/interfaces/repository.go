package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Opportunity() OpportunityRepository
	Proposal() ProposalRepository
	Embedding() EmbeddingRepository

	Close() error
}
