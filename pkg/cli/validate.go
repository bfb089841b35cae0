package cli

import (
	"context"
	"encoding/json"
	"os"

	"github.com/m-mizutani/goerr/v2"

	"github.com/bidscope/bidscope/pkg/cli/config"
	"github.com/bidscope/bidscope/pkg/domain/model"
	"github.com/bidscope/bidscope/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var profilePath string
	var scoringCfg config.Scoring

	var flags []cli.Flag
	flags = append(flags, scoringCfg.Flags()...)
	flags = append(flags, &cli.StringFlag{
		Name:        "profile",
		Usage:       "Path to a company profile JSON file to validate",
		Destination: &profilePath,
	})

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate scoring policy and profile files",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			policy, err := scoringCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "scoring policy validation failed")
			}

			logger.Info("Scoring policy validation passed",
				"base_score", policy.BaseScore,
				"probability_weight", policy.ProbabilityWeight,
				"recency_weight", policy.RecencyWeight,
			)

			if profilePath == "" {
				logger.Info("No profile specified, skipping profile validation")
				return nil
			}

			raw, err := os.ReadFile(profilePath)
			if err != nil {
				return goerr.Wrap(err, "failed to read profile", goerr.V("path", profilePath))
			}

			var profile model.CompanyProfile
			if err := json.Unmarshal(raw, &profile); err != nil {
				return goerr.Wrap(err, "failed to parse profile", goerr.V("path", profilePath))
			}
			if err := profile.Validate(); err != nil {
				return goerr.Wrap(err, "profile validation failed", goerr.V("path", profilePath))
			}

			logger.Info("Profile validation passed",
				"name", profile.Name,
				"industry", profile.Industry,
				"expertise_count", len(profile.Expertise),
			)

			return nil
		},
	}
}
