package model

import (
	"time"

	"github.com/bidscope/bidscope/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Opportunity represents a contract opportunity supplied by an opportunity
// storage collaborator. Records are immutable once ingested; the engine
// never mutates them.
type Opportunity struct {
	ID          types.OpportunityID `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Value       float64             `json:"value,omitempty"`

	// Optional attributes. Zero values mean the attribute is unknown and
	// contributes nothing to scoring.
	DueDate          *time.Time       `json:"dueDate,omitempty"`
	CustomerIndustry string           `json:"customerIndustry,omitempty"`
	Complexity       types.Complexity `json:"complexity,omitempty"`
	RequiredSkills   []string         `json:"requiredSkills,omitempty"`
	NAICS            string           `json:"naics,omitempty"`
	Agency           string           `json:"agency,omitempty"`

	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// Validate checks if the Opportunity is well-formed for ingestion
func (x *Opportunity) Validate() error {
	if err := x.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid opportunity ID")
	}
	if x.Title == "" {
		return goerr.New("opportunity title is required", goerr.V("id", x.ID))
	}
	if !x.Complexity.IsValid() {
		return goerr.New("invalid complexity tier",
			goerr.V("id", x.ID),
			goerr.V("complexity", x.Complexity),
		)
	}
	return nil
}
