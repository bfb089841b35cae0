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

// opportunityDoc is the Firestore document representation of model.Opportunity
type opportunityDoc struct {
	ID               types.OpportunityID `firestore:"ID"`
	Title            string              `firestore:"Title"`
	Description      string              `firestore:"Description"`
	Value            float64             `firestore:"Value"`
	DueDate          *time.Time          `firestore:"DueDate,omitempty"`
	CustomerIndustry string              `firestore:"CustomerIndustry"`
	Complexity       types.Complexity    `firestore:"Complexity"`
	RequiredSkills   []string            `firestore:"RequiredSkills,omitempty"`
	NAICS            string              `firestore:"NAICS"`
	Agency           string              `firestore:"Agency"`
	CreatedAt        time.Time           `firestore:"CreatedAt"`
}

func toOpportunityDoc(o *model.Opportunity) *opportunityDoc {
	return &opportunityDoc{
		ID:               o.ID,
		Title:            o.Title,
		Description:      o.Description,
		Value:            o.Value,
		DueDate:          o.DueDate,
		CustomerIndustry: o.CustomerIndustry,
		Complexity:       o.Complexity,
		RequiredSkills:   o.RequiredSkills,
		NAICS:            o.NAICS,
		Agency:           o.Agency,
		CreatedAt:        o.CreatedAt,
	}
}

func docToOpportunity(doc *firestore.DocumentSnapshot) (*model.Opportunity, error) {
	var d opportunityDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, err
	}
	return &model.Opportunity{
		ID:               d.ID,
		Title:            d.Title,
		Description:      d.Description,
		Value:            d.Value,
		DueDate:          d.DueDate,
		CustomerIndustry: d.CustomerIndustry,
		Complexity:       d.Complexity,
		RequiredSkills:   d.RequiredSkills,
		NAICS:            d.NAICS,
		Agency:           d.Agency,
		CreatedAt:        d.CreatedAt,
	}, nil
}

type opportunityRepository struct {
	client *firestore.Client
}

func newOpportunityRepository(client *firestore.Client) *opportunityRepository {
	return &opportunityRepository{
		client: client,
	}
}

func (r *opportunityRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(collectionOpportunities)
}

func (r *opportunityRepository) Put(ctx context.Context, opp *model.Opportunity) error {
	stored := *opp
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}

	docRef := r.collection().Doc(string(stored.ID))
	if _, err := docRef.Set(ctx, toOpportunityDoc(&stored)); err != nil {
		return goerr.Wrap(err, "failed to put opportunity", goerr.V("id", stored.ID))
	}

	return nil
}

func (r *opportunityRepository) Get(ctx context.Context, id types.OpportunityID) (*model.Opportunity, error) {
	doc, err := r.collection().Doc(string(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "opportunity not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get opportunity", goerr.V("id", id))
	}

	return docToOpportunity(doc)
}

func (r *opportunityRepository) List(ctx context.Context) ([]*model.Opportunity, error) {
	iter := r.collection().OrderBy("CreatedAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var opps []*model.Opportunity
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate opportunities")
		}

		opp, err := docToOpportunity(doc)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal opportunity")
		}

		opps = append(opps, opp)
	}

	return opps, nil
}

func (r *opportunityRepository) Delete(ctx context.Context, id types.OpportunityID) error {
	docRef := r.collection().Doc(string(id))

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(interfaces.ErrNotFound, "opportunity not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get opportunity", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete opportunity", goerr.V("id", id))
	}

	return nil
}
