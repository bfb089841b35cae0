package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/bidscope/bidscope/pkg/domain/interfaces"
	"github.com/bidscope/bidscope/pkg/domain/model"
	"github.com/bidscope/bidscope/pkg/repository/memory"
	"github.com/bidscope/bidscope/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestPutOpportunity(t *testing.T) {
	t.Run("assigns an ID when missing", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)
		ctx := context.Background()

		opp := &model.Opportunity{Title: "Cloud migration"}
		gt.NoError(t, uc.PutOpportunity(ctx, opp)).Required()
		gt.NoError(t, opp.ID.Validate())

		listed, err := uc.ListOpportunities(ctx)
		gt.NoError(t, err).Required()
		gt.Number(t, len(listed)).Equal(1)
	})

	t.Run("rejects an invalid record", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)

		err := uc.PutOpportunity(context.Background(), &model.Opportunity{})
		gt.Error(t, err)
	})
}

func TestDeleteOpportunity(t *testing.T) {
	repo := memory.New()
	uc := usecase.New(repo)
	ctx := context.Background()

	opp := &model.Opportunity{ID: "o1", Title: "Cloud migration"}
	gt.NoError(t, uc.PutOpportunity(ctx, opp)).Required()

	gt.NoError(t, uc.DeleteOpportunity(ctx, "o1"))

	err := uc.DeleteOpportunity(ctx, "o1")
	gt.B(t, errors.Is(err, interfaces.ErrNotFound)).True()
}

func TestPutProposal(t *testing.T) {
	t.Run("assigns an ID when missing", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)
		ctx := context.Background()

		proposal := &model.Proposal{Title: "Cloud migration proposal"}
		gt.NoError(t, uc.PutProposal(ctx, proposal)).Required()
		gt.NoError(t, proposal.ID.Validate())

		listed, err := uc.ListProposals(ctx)
		gt.NoError(t, err).Required()
		gt.Number(t, len(listed)).Equal(1)
	})

	t.Run("rejects a record without title or text", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)

		err := uc.PutProposal(context.Background(), &model.Proposal{ID: "p1"})
		gt.Error(t, err)
	})
}
