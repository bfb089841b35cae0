package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/bidscope/bidscope/pkg/domain/model"
	"github.com/bidscope/bidscope/pkg/domain/types"
	"github.com/bidscope/bidscope/pkg/repository/memory"
	"github.com/bidscope/bidscope/pkg/usecase"
	"github.com/m-mizutani/gt"
)

// mockEmbedder is a function-field mock of the embedding service. It counts
// calls per input text so tests can assert the at-most-once guarantee.
type mockEmbedder struct {
	mu      sync.Mutex
	calls   map[string]int
	embedFn func(ctx context.Context, text string) ([]float32, error)
}

func newMockEmbedder(embedFn func(ctx context.Context, text string) ([]float32, error)) *mockEmbedder {
	return &mockEmbedder{
		calls:   make(map[string]int),
		embedFn: embedFn,
	}
}

func (m *mockEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	m.mu.Lock()
	m.calls[text]++
	m.mu.Unlock()

	if m.embedFn != nil {
		return m.embedFn(ctx, text)
	}
	return []float32{0.1, 0.2, 0.3}, nil
}

func (m *mockEmbedder) callCount(text string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[text]
}

func TestEnsureEmbedded(t *testing.T) {
	t.Run("computes and stores missing embeddings", func(t *testing.T) {
		repo := memory.New()
		embedder := newMockEmbedder(nil)
		uc := usecase.New(repo, usecase.WithEmbedder(embedder))
		ctx := context.Background()

		proposals := []*model.Proposal{
			{ID: "p1", Title: "First", Text: "first proposal"},
			{ID: "p2", Title: "Second", Text: "second proposal"},
		}

		report, err := uc.EnsureEmbedded(ctx, proposals)
		gt.NoError(t, err).Required()

		gt.Number(t, len(report.Computed)).Equal(2)
		gt.Number(t, len(report.Cached)).Equal(0)
		gt.Number(t, len(report.Failed)).Equal(0)

		vector, err := uc.GetEmbedding(ctx, "p1")
		gt.NoError(t, err).Required()
		gt.Number(t, len(vector)).Equal(3)
	})

	t.Run("second call hits the cache instead of the provider", func(t *testing.T) {
		repo := memory.New()
		embedder := newMockEmbedder(nil)
		uc := usecase.New(repo, usecase.WithEmbedder(embedder))
		ctx := context.Background()

		proposals := []*model.Proposal{
			{ID: "p1", Title: "First", Text: "first proposal"},
		}

		first, err := uc.EnsureEmbedded(ctx, proposals)
		gt.NoError(t, err).Required()
		gt.Number(t, len(first.Computed)).Equal(1)

		second, err := uc.EnsureEmbedded(ctx, proposals)
		gt.NoError(t, err).Required()
		gt.Number(t, len(second.Computed)).Equal(0)
		gt.Number(t, len(second.Cached)).Equal(1)

		gt.Number(t, embedder.callCount("first proposal")).Equal(1)
	})

	t.Run("concurrent calls embed each proposal at most once", func(t *testing.T) {
		repo := memory.New()
		embedder := newMockEmbedder(nil)
		uc := usecase.New(repo, usecase.WithEmbedder(embedder))
		ctx := context.Background()

		proposals := []*model.Proposal{
			{ID: "p1", Title: "First", Text: "first proposal"},
			{ID: "p2", Title: "Second", Text: "second proposal"},
		}

		const callers = 8
		var wg sync.WaitGroup
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := uc.EnsureEmbedded(ctx, proposals)
				gt.NoError(t, err)
			}()
		}
		wg.Wait()

		gt.Number(t, embedder.callCount("first proposal")).Equal(1)
		gt.Number(t, embedder.callCount("second proposal")).Equal(1)
	})

	t.Run("provider failure is reported per proposal", func(t *testing.T) {
		repo := memory.New()
		providerErr := errors.New("provider unavailable")
		embedder := newMockEmbedder(func(ctx context.Context, text string) ([]float32, error) {
			if text == "broken proposal" {
				return nil, providerErr
			}
			return []float32{0.1, 0.2}, nil
		})
		uc := usecase.New(repo, usecase.WithEmbedder(embedder))
		ctx := context.Background()

		proposals := []*model.Proposal{
			{ID: "good", Title: "Good", Text: "good proposal"},
			{ID: "bad", Title: "Bad", Text: "broken proposal"},
		}

		report, err := uc.EnsureEmbedded(ctx, proposals)
		gt.NoError(t, err).Required()

		gt.Number(t, len(report.Computed)).Equal(1)
		gt.Number(t, len(report.Failed)).Equal(1)

		failedErr, ok := report.Failed["bad"]
		gt.B(t, ok).True()
		gt.B(t, errors.Is(failedErr, usecase.ErrEmbeddingFailed)).True()

		skipped := report.Skipped()
		gt.Number(t, len(skipped)).Equal(1)
		gt.Value(t, skipped[0]).Equal(types.ProposalID("bad"))

		// The failed proposal stays unembedded and can be retried later
		_, err = uc.GetEmbedding(ctx, "bad")
		gt.Error(t, err)
	})

	t.Run("failed proposal is retried on the next call", func(t *testing.T) {
		repo := memory.New()
		failOnce := true
		embedder := newMockEmbedder(func(ctx context.Context, text string) ([]float32, error) {
			if failOnce {
				failOnce = false
				return nil, errors.New("transient provider error")
			}
			return []float32{0.4, 0.5}, nil
		})
		uc := usecase.New(repo, usecase.WithEmbedder(embedder))
		ctx := context.Background()

		proposals := []*model.Proposal{
			{ID: "p1", Title: "First", Text: "first proposal"},
		}

		first, err := uc.EnsureEmbedded(ctx, proposals)
		gt.NoError(t, err).Required()
		gt.Number(t, len(first.Failed)).Equal(1)

		second, err := uc.EnsureEmbedded(ctx, proposals)
		gt.NoError(t, err).Required()
		gt.Number(t, len(second.Computed)).Equal(1)
		gt.Number(t, len(second.Failed)).Equal(0)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		repo := memory.New()
		embedder := newMockEmbedder(nil)
		uc := usecase.New(repo, usecase.WithEmbedder(embedder))

		report, err := uc.EnsureEmbedded(context.Background(), nil)
		gt.NoError(t, err).Required()
		gt.Number(t, len(report.Computed)).Equal(0)
	})

	t.Run("missing embedder fails", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)

		_, err := uc.EnsureEmbedded(context.Background(), []*model.Proposal{
			{ID: "p1", Title: "First"},
		})
		gt.B(t, errors.Is(err, usecase.ErrNoEmbedder)).True()
	})
}
