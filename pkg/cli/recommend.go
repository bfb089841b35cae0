package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"

	"github.com/bidscope/bidscope/pkg/cli/config"
	"github.com/bidscope/bidscope/pkg/service/embedding"
	"github.com/bidscope/bidscope/pkg/usecase"
	"github.com/bidscope/bidscope/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdRecommend() *cli.Command {
	var text string
	var textFile string
	var topK int
	var repoCfg config.Repository
	var llmCfg config.LLM

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "text",
			Usage:       "Opportunity description to match against stored proposals",
			Destination: &text,
		},
		&cli.StringFlag{
			Name:        "text-file",
			Usage:       "Read the opportunity description from a file instead",
			Destination: &textFile,
		},
		&cli.IntFlag{
			Name:        "top-k",
			Usage:       "Maximum number of recommendations to print",
			Value:       usecase.DefaultTopK,
			Destination: &topK,
		},
	}
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, llmCfg.Flags()...)

	return &cli.Command{
		Name:    "recommend",
		Aliases: []string{"r"},
		Usage:   "Match an opportunity description against stored proposals",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			if textFile != "" {
				raw, err := os.ReadFile(textFile)
				if err != nil {
					return goerr.Wrap(err, "failed to read text file", goerr.V("path", textFile))
				}
				text = string(raw)
			}
			if text == "" {
				return goerr.New("either --text or --text-file is required")
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logger.Error("failed to close repository", "error", err.Error())
				}
			}()

			llmClient, err := llmCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure LLM client")
			}
			if llmClient == nil {
				return goerr.New("LLM backend is not configured, recommend requires an embedding provider")
			}

			embedSvc, err := embedding.New(llmClient)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize embedding service")
			}

			uc := usecase.New(repo, usecase.WithEmbedder(embedSvc))

			result, err := uc.Recommend(ctx, text, topK)
			if err != nil {
				return goerr.Wrap(err, "failed to match proposals")
			}

			if len(result.Recommendations) == 0 {
				fmt.Println("No matching proposals found")
				return nil
			}

			title := color.New(color.FgCyan, color.Bold)
			score := color.New(color.FgGreen)
			for i, rec := range result.Recommendations {
				fmt.Printf("%d. ", i+1)
				title.Printf("%s", rec.Title)
				fmt.Print("  ")
				score.Printf("%.3f\n", rec.FitScore)
				fmt.Printf("   %s (%s)\n", rec.Why, rec.Source)
			}

			if len(result.Skipped) > 0 {
				logger.Warn("Some proposals could not be embedded and were skipped",
					"count", len(result.Skipped),
					"proposal_ids", result.Skipped)
			}

			return nil
		},
	}
}
