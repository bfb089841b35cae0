package config

import (
	"log/slog"
	"os"

	"github.com/bidscope/bidscope/pkg/domain/model/config"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// Scoring holds configuration for the scoring policy
type Scoring struct {
	policyPath string
}

// Flags returns CLI flags for scoring policy configuration
func (x *Scoring) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "scoring-policy",
			Usage:       "Path to scoring policy TOML file (defaults are used when omitted)",
			Sources:     cli.EnvVars("BIDSCOPE_SCORING_POLICY"),
			Destination: &x.policyPath,
		},
	}
}

// LogValue returns log attributes for the scoring configuration
func (x *Scoring) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("policy_path", x.policyPath),
	)
}

// Configure loads the scoring policy. File values override defaults
// field by field, so a partial policy file is valid.
func (x *Scoring) Configure() (*config.ScoringConfig, error) {
	cfg := config.DefaultScoringConfig()

	if x.policyPath != "" {
		raw, err := os.ReadFile(x.policyPath)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read scoring policy", goerr.V("path", x.policyPath))
		}
		if err := toml.Unmarshal(raw, cfg); err != nil {
			return nil, goerr.Wrap(err, "failed to parse scoring policy", goerr.V("path", x.policyPath))
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid scoring policy", goerr.V("path", x.policyPath))
	}

	return cfg, nil
}
