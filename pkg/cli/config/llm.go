package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gollem/llm/gemini"
	"github.com/m-mizutani/gollem/llm/openai"
	"github.com/urfave/cli/v3"
)

// LLM holds configuration for the embedding provider client
type LLM struct {
	backend        string
	geminiProject  string
	geminiLocation string
	openaiAPIKey   string
}

// Flags returns CLI flags for LLM provider configuration
func (x *LLM) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "llm-backend",
			Usage:       "Embedding provider backend (gemini or openai)",
			Value:       "gemini",
			Sources:     cli.EnvVars("BIDSCOPE_LLM_BACKEND"),
			Destination: &x.backend,
		},
		&cli.StringFlag{
			Name:        "gemini-project",
			Usage:       "Google Cloud project ID for Gemini API",
			Sources:     cli.EnvVars("BIDSCOPE_GEMINI_PROJECT"),
			Destination: &x.geminiProject,
		},
		&cli.StringFlag{
			Name:        "gemini-location",
			Usage:       "Google Cloud location for Gemini API",
			Value:       "us-central1",
			Sources:     cli.EnvVars("BIDSCOPE_GEMINI_LOCATION"),
			Destination: &x.geminiLocation,
		},
		&cli.StringFlag{
			Name:        "openai-api-key",
			Usage:       "OpenAI API key",
			Sources:     cli.EnvVars("BIDSCOPE_OPENAI_API_KEY"),
			Destination: &x.openaiAPIKey,
		},
	}
}

// LogValue returns log attributes for the LLM configuration. The API key
// is reported only as a presence flag.
func (x *LLM) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("backend", x.backend),
		slog.String("gemini_project", x.geminiProject),
		slog.String("gemini_location", x.geminiLocation),
		slog.Bool("openai_key_set", x.openaiAPIKey != ""),
	)
}

// Configure creates a new LLM client from the configured flags.
// Returns nil when the selected backend is not configured (embedding
// features will be disabled).
func (x *LLM) Configure(ctx context.Context) (gollem.LLMClient, error) {
	switch x.backend {
	case "gemini":
		if x.geminiProject == "" {
			return nil, nil
		}
		client, err := gemini.New(ctx, x.geminiProject, x.geminiLocation)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create Gemini client")
		}
		return client, nil

	case "openai":
		if x.openaiAPIKey == "" {
			return nil, nil
		}
		client, err := openai.New(ctx, x.openaiAPIKey)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create OpenAI client")
		}
		return client, nil

	default:
		return nil, goerr.New("invalid LLM backend", goerr.V("backend", x.backend))
	}
}
