package model_test

import (
	"testing"

	"github.com/bidscope/bidscope/pkg/domain/model"
	"github.com/bidscope/bidscope/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestOpportunity_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opp     model.Opportunity
		wantErr bool
	}{
		{
			name:    "valid minimal",
			opp:     model.Opportunity{ID: "o1", Title: "Cloud migration"},
			wantErr: false,
		},
		{
			name:    "missing ID",
			opp:     model.Opportunity{Title: "Cloud migration"},
			wantErr: true,
		},
		{
			name:    "missing title",
			opp:     model.Opportunity{ID: "o1"},
			wantErr: true,
		},
		{
			name:    "invalid complexity",
			opp:     model.Opportunity{ID: "o1", Title: "Cloud migration", Complexity: types.Complexity("extreme")},
			wantErr: true,
		},
		{
			name:    "unset complexity is fine",
			opp:     model.Opportunity{ID: "o1", Title: "Cloud migration", Complexity: types.ComplexityUnset},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opp.Validate()
			if tt.wantErr {
				gt.Error(t, err)
			} else {
				gt.NoError(t, err)
			}
		})
	}
}

func TestCompanyProfile_Validate(t *testing.T) {
	tests := []struct {
		name    string
		profile model.CompanyProfile
		wantErr bool
	}{
		{
			name:    "valid",
			profile: model.CompanyProfile{Name: "Acme", PastWinRate: 0.5, Capacity: 0.6},
			wantErr: false,
		},
		{
			name:    "missing name",
			profile: model.CompanyProfile{PastWinRate: 0.5, Capacity: 0.6},
			wantErr: true,
		},
		{
			name:    "win rate above one",
			profile: model.CompanyProfile{Name: "Acme", PastWinRate: 1.2, Capacity: 0.6},
			wantErr: true,
		},
		{
			name:    "negative capacity",
			profile: model.CompanyProfile{Name: "Acme", PastWinRate: 0.5, Capacity: -0.1},
			wantErr: true,
		},
		{
			name:    "boundary values are valid",
			profile: model.CompanyProfile{Name: "Acme", PastWinRate: 0, Capacity: 1},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate()
			if tt.wantErr {
				gt.Error(t, err)
			} else {
				gt.NoError(t, err)
			}
		})
	}
}

func TestProposal_EmbeddingText(t *testing.T) {
	t.Run("body is preferred", func(t *testing.T) {
		p := model.Proposal{ID: "p1", Title: "Title", Text: "Body text"}
		gt.Value(t, p.EmbeddingText()).Equal("Body text")
	})

	t.Run("title is the fallback", func(t *testing.T) {
		p := model.Proposal{ID: "p1", Title: "Title"}
		gt.Value(t, p.EmbeddingText()).Equal("Title")
	})
}

func TestProposal_Validate(t *testing.T) {
	gt.NoError(t, (&model.Proposal{ID: "p1", Title: "Title"}).Validate())
	gt.NoError(t, (&model.Proposal{ID: "p1", Text: "Body"}).Validate())
	gt.Error(t, (&model.Proposal{ID: "p1"}).Validate())
	gt.Error(t, (&model.Proposal{Title: "Title"}).Validate())
}
