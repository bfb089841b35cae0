package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/bidscope/bidscope/pkg/domain/interfaces"
	"github.com/bidscope/bidscope/pkg/domain/model"
	"github.com/bidscope/bidscope/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// proposalDoc is the Firestore document representation of model.Proposal
type proposalDoc struct {
	ID        types.ProposalID `firestore:"ID"`
	Title     string           `firestore:"Title"`
	Text      string           `firestore:"Text"`
	CreatedAt time.Time        `firestore:"CreatedAt"`
}

func docToProposal(doc *firestore.DocumentSnapshot) (*model.Proposal, error) {
	var d proposalDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, err
	}
	return &model.Proposal{
		ID:        d.ID,
		Title:     d.Title,
		Text:      d.Text,
		CreatedAt: d.CreatedAt,
	}, nil
}

type proposalRepository struct {
	client *firestore.Client
}

func newProposalRepository(client *firestore.Client) *proposalRepository {
	return &proposalRepository{
		client: client,
	}
}

func (r *proposalRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(collectionProposals)
}

func (r *proposalRepository) Put(ctx context.Context, proposal *model.Proposal) error {
	stored := *proposal
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}

	doc := &proposalDoc{
		ID:        stored.ID,
		Title:     stored.Title,
		Text:      stored.Text,
		CreatedAt: stored.CreatedAt,
	}

	if _, err := r.collection().Doc(string(stored.ID)).Set(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to put proposal", goerr.V("id", stored.ID))
	}

	return nil
}

func (r *proposalRepository) Get(ctx context.Context, id types.ProposalID) (*model.Proposal, error) {
	doc, err := r.collection().Doc(string(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "proposal not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get proposal", goerr.V("id", id))
	}

	return docToProposal(doc)
}

func (r *proposalRepository) List(ctx context.Context) ([]*model.Proposal, error) {
	iter := r.collection().OrderBy("CreatedAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var proposals []*model.Proposal
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate proposals")
		}

		p, err := docToProposal(doc)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal proposal")
		}

		proposals = append(proposals, p)
	}

	return proposals, nil
}
