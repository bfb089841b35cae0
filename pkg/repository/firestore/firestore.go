package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/bidscope/bidscope/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
)

// Collection names
const (
	collectionOpportunities = "opportunities"
	collectionProposals     = "proposals"
	collectionEmbeddings    = "embeddings"
)

type Firestore struct {
	client      *firestore.Client
	opportunity *opportunityRepository
	proposal    *proposalRepository
	embedding   *embeddingRepository
}

var _ interfaces.Repository = &Firestore{}

func New(ctx context.Context, projectID, databaseID string) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID == "" {
		client, err = firestore.NewClient(ctx, projectID)
	} else {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	return &Firestore{
		client:      client,
		opportunity: newOpportunityRepository(client),
		proposal:    newProposalRepository(client),
		embedding:   newEmbeddingRepository(client),
	}, nil
}

func (f *Firestore) Opportunity() interfaces.OpportunityRepository {
	return f.opportunity
}

func (f *Firestore) Proposal() interfaces.ProposalRepository {
	return f.proposal
}

func (f *Firestore) Embedding() interfaces.EmbeddingRepository {
	return f.embedding
}

func (f *Firestore) Close() error {
	if err := f.client.Close(); err != nil {
		return goerr.Wrap(err, "failed to close firestore client")
	}
	return nil
}
