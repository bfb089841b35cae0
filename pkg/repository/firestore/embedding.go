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

// embeddingDoc is the Firestore document representation of
// model.EmbeddingRecord. The vector is stored as firestore.Vector32 so that
// FindNearest vector search works.
type embeddingDoc struct {
	ProposalID types.ProposalID   `firestore:"ProposalID"`
	Vector     firestore.Vector32 `firestore:"Vector"`
	CreatedAt  time.Time          `firestore:"CreatedAt"`
}

func docToEmbedding(doc *firestore.DocumentSnapshot) (*model.EmbeddingRecord, error) {
	var d embeddingDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, err
	}
	return &model.EmbeddingRecord{
		ProposalID: d.ProposalID,
		Vector:     []float32(d.Vector),
		CreatedAt:  d.CreatedAt,
	}, nil
}

type embeddingRepository struct {
	client *firestore.Client
}

func newEmbeddingRepository(client *firestore.Client) *embeddingRepository {
	return &embeddingRepository{
		client: client,
	}
}

func (r *embeddingRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(collectionEmbeddings)
}

// Create relies on the Firestore precondition that Doc.Create fails when the
// document already exists, which gives the at-most-once write per proposal ID.
func (r *embeddingRepository) Create(ctx context.Context, record *model.EmbeddingRecord) (*model.EmbeddingRecord, error) {
	created := &model.EmbeddingRecord{
		ProposalID: record.ProposalID,
		Vector:     record.Vector,
		CreatedAt:  time.Now().UTC(),
	}

	doc := &embeddingDoc{
		ProposalID: created.ProposalID,
		Vector:     firestore.Vector32(created.Vector),
		CreatedAt:  created.CreatedAt,
	}

	if _, err := r.collection().Doc(string(created.ProposalID)).Create(ctx, doc); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil, goerr.Wrap(interfaces.ErrAlreadyExists, "embedding already exists",
				goerr.V("proposalID", created.ProposalID),
			)
		}
		return nil, goerr.Wrap(err, "failed to create embedding", goerr.V("proposalID", created.ProposalID))
	}

	return created, nil
}

func (r *embeddingRepository) Get(ctx context.Context, proposalID types.ProposalID) (*model.EmbeddingRecord, error) {
	doc, err := r.collection().Doc(string(proposalID)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "embedding not found",
				goerr.V("proposalID", proposalID),
			)
		}
		return nil, goerr.Wrap(err, "failed to get embedding", goerr.V("proposalID", proposalID))
	}

	return docToEmbedding(doc)
}

func (r *embeddingRepository) GetBatch(ctx context.Context, proposalIDs []types.ProposalID) (map[types.ProposalID]*model.EmbeddingRecord, error) {
	refs := make([]*firestore.DocumentRef, len(proposalIDs))
	for i, id := range proposalIDs {
		refs[i] = r.collection().Doc(string(id))
	}

	docs, err := r.client.GetAll(ctx, refs)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to batch get embeddings")
	}

	result := make(map[types.ProposalID]*model.EmbeddingRecord, len(docs))
	for _, doc := range docs {
		if !doc.Exists() {
			continue
		}
		record, err := docToEmbedding(doc)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal embedding")
		}
		result[record.ProposalID] = record
	}

	return result, nil
}

func (r *embeddingRepository) FindNearest(ctx context.Context, vector []float32, limit int) ([]*model.EmbeddingRecord, error) {
	vq := r.collection().
		FindNearest("Vector", firestore.Vector32(vector), limit, firestore.DistanceMeasureCosine, nil)

	iter := vq.Documents(ctx)
	defer iter.Stop()

	records := make([]*model.EmbeddingRecord, 0, limit)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate vector search results")
		}

		record, err := docToEmbedding(doc)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal embedding from vector search")
		}

		records = append(records, record)
	}

	return records, nil
}
