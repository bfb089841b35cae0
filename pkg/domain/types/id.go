package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// OpportunityID identifies a contract opportunity record
type OpportunityID string

// NewOpportunityID generates a new UUID v4 OpportunityID
func NewOpportunityID() OpportunityID {
	return OpportunityID(uuid.New().String())
}

// Validate checks if the OpportunityID is valid
func (x OpportunityID) Validate() error {
	if x == "" {
		return goerr.New("opportunity ID cannot be empty")
	}
	return nil
}

// String returns the string representation of OpportunityID
func (x OpportunityID) String() string {
	return string(x)
}

// ProposalID identifies a historical proposal record
type ProposalID string

// NewProposalID generates a new UUID v4 ProposalID
func NewProposalID() ProposalID {
	return ProposalID(uuid.New().String())
}

// Validate checks if the ProposalID is valid
func (x ProposalID) Validate() error {
	if x == "" {
		return goerr.New("proposal ID cannot be empty")
	}
	return nil
}

// String returns the string representation of ProposalID
func (x ProposalID) String() string {
	return string(x)
}
