package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/bidscope/bidscope/pkg/cli/config"
	httpctrl "github.com/bidscope/bidscope/pkg/controller/http"
	"github.com/bidscope/bidscope/pkg/service/embedding"
	"github.com/bidscope/bidscope/pkg/usecase"
	"github.com/bidscope/bidscope/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var addr string
	var embedTimeout time.Duration
	var repoCfg config.Repository
	var llmCfg config.LLM
	var scoringCfg config.Scoring

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("BIDSCOPE_ADDR"),
			Destination: &addr,
		},
		&cli.DurationFlag{
			Name:        "embedding-timeout",
			Usage:       "Timeout for a single embedding provider call",
			Value:       30 * time.Second,
			Sources:     cli.EnvVars("BIDSCOPE_EMBEDDING_TIMEOUT"),
			Destination: &embedTimeout,
		},
	}

	// Add shared config flags
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, llmCfg.Flags()...)
	flags = append(flags, scoringCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			// Load scoring policy
			policy, err := scoringCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load scoring policy")
			}

			// Initialize repository based on backend type
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logger.Error("failed to close repository", "error", err.Error())
				}
			}()

			ucOpts := []usecase.Option{
				usecase.WithScoringConfig(policy),
			}

			// Initialize embedding service if the LLM backend is configured
			llmClient, err := llmCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure LLM client")
			}
			if llmClient != nil {
				embedSvc, err := embedding.New(llmClient, embedding.WithTimeout(embedTimeout))
				if err != nil {
					return goerr.Wrap(err, "failed to initialize embedding service")
				}
				ucOpts = append(ucOpts, usecase.WithEmbedder(embedSvc))
				logger.Info("Embedding service enabled", "llm", &llmCfg)
			} else {
				logger.Info("LLM backend not configured, similarity matching will be unavailable")
			}

			uc := usecase.New(repo, ucOpts...)

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc),
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			// Start server in goroutine
			errCh := make(chan error, 1)
			go func() {
				logger.Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			// Wait for shutdown signal or server error
			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logger.Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logger.Info("Server shutdown completed")
				return nil
			}
		},
	}
}
