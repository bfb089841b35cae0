package usecase

import (
	"context"
	"time"

	"github.com/bidscope/bidscope/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// RankOpportunities scores all stored opportunities against the profile and
// returns them ordered by composite score, highest first.
func (uc *UseCases) RankOpportunities(ctx context.Context, profile *model.CompanyProfile) ([]model.RankedOpportunity, error) {
	if err := profile.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid company profile")
	}

	opps, err := uc.repo.Opportunity().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list opportunities")
	}

	return model.RankOpportunities(opps, profile, uc.scoringCfg, time.Now()), nil
}

// GenerateAlerts produces deadline and high-fit alerts for all stored
// opportunities, evaluated at now.
func (uc *UseCases) GenerateAlerts(ctx context.Context, profile *model.CompanyProfile, now time.Time) ([]model.Alert, error) {
	if err := profile.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid company profile")
	}

	opps, err := uc.repo.Opportunity().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list opportunities")
	}

	return model.GenerateAlerts(opps, profile, uc.scoringCfg, now), nil
}
