package model

import "github.com/m-mizutani/goerr/v2"

// CompanyProfile describes the company whose fit is being evaluated.
// Profiles are supplied per request by a profile storage collaborator and
// are never persisted by the engine.
type CompanyProfile struct {
	Name        string   `json:"name"`
	Industry    string   `json:"industry,omitempty"`
	Expertise   []string `json:"expertise,omitempty"`
	PastWinRate float64  `json:"pastWinRate"`
	Capacity    float64  `json:"capacity"`

	PrimaryNAICS   []string `json:"primaryNaics,omitempty"`
	TargetAgencies []string `json:"targetAgencies,omitempty"`
}

// Validate checks if the CompanyProfile is well-formed
func (x *CompanyProfile) Validate() error {
	if x.Name == "" {
		return goerr.New("company name is required")
	}
	if x.PastWinRate < 0 || x.PastWinRate > 1 {
		return goerr.New("past win rate must be between 0 and 1",
			goerr.V("pastWinRate", x.PastWinRate),
		)
	}
	if x.Capacity < 0 || x.Capacity > 1 {
		return goerr.New("capacity must be between 0 and 1",
			goerr.V("capacity", x.Capacity),
		)
	}
	return nil
}
