package model

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/bidscope/bidscope/pkg/domain/model/config"
	"github.com/bidscope/bidscope/pkg/domain/types"
)

// Alert notifies the company about an opportunity that needs attention.
// The ID is derived from the alert kind and opportunity ID so that repeated
// generation collapses duplicates.
type Alert struct {
	ID            string              `json:"id"`
	Kind          types.AlertKind     `json:"kind"`
	OpportunityID types.OpportunityID `json:"opportunityId"`
	Message       string              `json:"message"`
	Severity      types.Severity      `json:"severity"`
	DueDate       *time.Time          `json:"dueDate,omitempty"`
}

// GenerateAlerts produces deadline and high-fit alerts for the given
// opportunities. It is pure and deterministic given now: a single
// opportunity may produce zero, one, or both alert kinds. Watchlist alerts
// are reserved for manual flagging and are never generated here.
func GenerateAlerts(opps []*Opportunity, profile *CompanyProfile, cfg *config.ScoringConfig, now time.Time) []Alert {
	if cfg == nil {
		cfg = config.DefaultScoringConfig()
	}

	var alerts []Alert
	for _, opp := range opps {
		if opp.DueDate != nil {
			diffDays := opp.DueDate.Sub(now).Hours() / 24

			if diffDays >= 0 && diffDays <= cfg.DeadlineWindowDays {
				severity := types.SeverityWarning
				if diffDays <= cfg.DeadlineCriticalDays {
					severity = types.SeverityCritical
				}

				alerts = append(alerts, Alert{
					ID:            fmt.Sprintf("deadline-%s", opp.ID),
					Kind:          types.AlertKindDeadline,
					OpportunityID: opp.ID,
					Message:       fmt.Sprintf("Proposal due in %d day(s) for %q.", int(math.Ceil(diffDays)), opp.Title),
					Severity:      severity,
					DueDate:       opp.DueDate,
				})
			}
		}

		naicsFit := opp.NAICS != "" && slices.Contains(profile.PrimaryNAICS, opp.NAICS)
		agencyFit := opp.Agency != "" && slices.Contains(profile.TargetAgencies, opp.Agency)

		if naicsFit && agencyFit {
			alerts = append(alerts, Alert{
				ID:            fmt.Sprintf("fit-%s", opp.ID),
				Kind:          types.AlertKindHighFit,
				OpportunityID: opp.ID,
				Message:       fmt.Sprintf("High-fit opportunity detected at %s: %q.", opp.Agency, opp.Title),
				Severity:      types.SeverityInfo,
			})
		}
	}

	return alerts
}
