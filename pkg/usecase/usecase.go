package usecase

import (
	"golang.org/x/sync/singleflight"

	"github.com/bidscope/bidscope/pkg/domain/interfaces"
	"github.com/bidscope/bidscope/pkg/domain/model/config"
	"github.com/bidscope/bidscope/pkg/service/embedding"
)

// UseCases bundles the engine operations over an injected repository and
// embedding service
type UseCases struct {
	repo       interfaces.Repository
	embedder   embedding.Service
	scoringCfg *config.ScoringConfig

	// embedGroup deduplicates concurrent embedding computation per
	// proposal ID (see EnsureEmbedded)
	embedGroup singleflight.Group
}

type Option func(*UseCases)

// WithScoringConfig overrides the default scoring policy
func WithScoringConfig(cfg *config.ScoringConfig) Option {
	return func(uc *UseCases) {
		if cfg != nil {
			uc.scoringCfg = cfg
		}
	}
}

// WithEmbedder sets the embedding provider service. Operations that do not
// touch embeddings work without one.
func WithEmbedder(svc embedding.Service) Option {
	return func(uc *UseCases) {
		uc.embedder = svc
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:       repo,
		scoringCfg: config.DefaultScoringConfig(),
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}
