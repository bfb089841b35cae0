package model

import (
	"time"

	"github.com/bidscope/bidscope/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Proposal represents a historical proposal owned by the proposal
// management collaborator. The engine treats it as read-only.
type Proposal struct {
	ID    types.ProposalID `json:"id"`
	Title string           `json:"title"`
	Text  string           `json:"text,omitempty"`

	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// EmbeddingText returns the text to embed for this proposal. The raw body is
// preferred; the title is used when the body is empty.
func (x *Proposal) EmbeddingText() string {
	if x.Text != "" {
		return x.Text
	}
	return x.Title
}

// Validate checks if the Proposal is well-formed for ingestion
func (x *Proposal) Validate() error {
	if err := x.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid proposal ID")
	}
	if x.Title == "" && x.Text == "" {
		return goerr.New("proposal needs a title or text body", goerr.V("id", x.ID))
	}
	return nil
}
