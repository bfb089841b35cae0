package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bidscope/bidscope/pkg/cli/config"
	"github.com/m-mizutani/gt"
)

func writePolicy(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "policy.toml")
	gt.NoError(t, os.WriteFile(path, []byte(body), 0600)).Required()
	return path
}

func TestScoringConfigure(t *testing.T) {
	t.Run("no file yields the defaults", func(t *testing.T) {
		cfg, err := config.NewScoringWithPath("").Configure()
		gt.NoError(t, err).Required()
		gt.Number(t, cfg.BaseScore).Equal(0.5)
		gt.Number(t, cfg.ProbabilityWeight).Equal(0.8)
	})

	t.Run("partial file overrides only named fields", func(t *testing.T) {
		path := writePolicy(t, "base_score = 0.4\nindustry_match_bonus = 0.2\n")

		cfg, err := config.NewScoringWithPath(path).Configure()
		gt.NoError(t, err).Required()
		gt.Number(t, cfg.BaseScore).Equal(0.4)
		gt.Number(t, cfg.IndustryMatchBonus).Equal(0.2)

		// Untouched fields keep their defaults
		gt.Number(t, cfg.WinRateWeight).Equal(0.3)
		gt.Number(t, cfg.RecencyHorizon).Equal(60.0)
	})

	t.Run("invalid policy fails validation", func(t *testing.T) {
		path := writePolicy(t, "base_score = 1.5\n")

		_, err := config.NewScoringWithPath(path).Configure()
		gt.Error(t, err)
	})

	t.Run("malformed TOML fails", func(t *testing.T) {
		path := writePolicy(t, "base_score = = 0.5\n")

		_, err := config.NewScoringWithPath(path).Configure()
		gt.Error(t, err)
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := config.NewScoringWithPath("/no/such/policy.toml").Configure()
		gt.Error(t, err)
	})
}
