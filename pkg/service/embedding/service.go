package embedding

import (
	"context"
	"strings"
	"time"

	"github.com/bidscope/bidscope/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
)

// Service generates embedding vectors for free text
type Service interface {
	// Embed generates an embedding vector for the given text
	Embed(ctx context.Context, text string) ([]float32, error)
}

// client implements Service interface backed by a gollem LLM client
type client struct {
	llmClient gollem.LLMClient
	dimension int
	timeout   time.Duration
}

// Option is a functional option for client configuration
type Option func(*client)

// WithDimension overrides the embedding vector dimension
func WithDimension(dim int) Option {
	return func(c *client) {
		if dim > 0 {
			c.dimension = dim
		}
	}
}

// WithTimeout bounds each provider call. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *client) {
		c.timeout = d
	}
}

// New creates a new embedding service with the provided LLM client
func New(llmClient gollem.LLMClient, opts ...Option) (Service, error) {
	if llmClient == nil {
		return nil, goerr.New("LLM client is required")
	}

	c := &client{
		llmClient: llmClient,
		dimension: model.EmbeddingDimension,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Embed generates an embedding vector for the given text. The provider call
// is bounded by the configured timeout; a timed-out call fails like any
// other provider error and never yields a partial vector.
func (c *client) Embed(ctx context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return nil, goerr.New("embedding text is empty")
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	embeddings, err := c.llmClient.GenerateEmbedding(ctx, c.dimension, []string{text})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate embedding")
	}

	if len(embeddings) == 0 || len(embeddings[0]) == 0 {
		return nil, goerr.New("embedding provider returned an empty result")
	}

	// Convert float64 to float32
	result := make([]float32, len(embeddings[0]))
	for i, v := range embeddings[0] {
		result[i] = float32(v)
	}

	return result, nil
}
