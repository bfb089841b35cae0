package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpctrl "github.com/bidscope/bidscope/pkg/controller/http"
	"github.com/bidscope/bidscope/pkg/domain/model"
	"github.com/bidscope/bidscope/pkg/repository/memory"
	"github.com/bidscope/bidscope/pkg/usecase"
	"github.com/m-mizutani/gt"
)

type fixedEmbedder struct {
	vectors map[string][]float32
}

func (e *fixedEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if v, ok := e.vectors[text]; ok {
		return v, nil
	}
	return []float32{0.5, 0.5}, nil
}

func newTestServer(opts ...usecase.Option) (*httpctrl.Server, *usecase.UseCases) {
	repo := memory.New()
	uc := usecase.New(repo, opts...)
	return httpctrl.New(uc), uc
}

func postJSON(t *testing.T, srv http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	gt.NoError(t, err).Required()

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	srv, _ := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	gt.Number(t, rec.Code).Equal(http.StatusOK)
}

func TestOpportunityEndpoints(t *testing.T) {
	t.Run("create, list, delete", func(t *testing.T) {
		srv, _ := newTestServer()

		rec := postJSON(t, srv, "/api/opportunities", map[string]any{
			"title": "Cloud migration",
			"value": 150000,
		})
		gt.Number(t, rec.Code).Equal(http.StatusCreated)

		var created model.Opportunity
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created)).Required()
		gt.NoError(t, created.ID.Validate())

		listReq := httptest.NewRequest(http.MethodGet, "/api/opportunities", nil)
		listRec := httptest.NewRecorder()
		srv.ServeHTTP(listRec, listReq)
		gt.Number(t, listRec.Code).Equal(http.StatusOK)

		var listed struct {
			Opportunities []model.Opportunity `json:"opportunities"`
		}
		gt.NoError(t, json.Unmarshal(listRec.Body.Bytes(), &listed)).Required()
		gt.Number(t, len(listed.Opportunities)).Equal(1)

		delReq := httptest.NewRequest(http.MethodDelete, "/api/opportunities/"+created.ID.String(), nil)
		delRec := httptest.NewRecorder()
		srv.ServeHTTP(delRec, delReq)
		gt.Number(t, delRec.Code).Equal(http.StatusNoContent)
	})

	t.Run("create without title fails", func(t *testing.T) {
		srv, _ := newTestServer()

		rec := postJSON(t, srv, "/api/opportunities", map[string]any{
			"value": 150000,
		})
		gt.Number(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("delete missing record returns 404", func(t *testing.T) {
		srv, _ := newTestServer()

		req := httptest.NewRequest(http.MethodDelete, "/api/opportunities/no-such-id", nil)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		gt.Number(t, rec.Code).Equal(http.StatusNotFound)
	})
}

func TestRankEndpoint(t *testing.T) {
	srv, uc := newTestServer()
	ctx := context.Background()

	due := time.Now().Add(5 * 24 * time.Hour)
	gt.NoError(t, uc.PutOpportunity(ctx, &model.Opportunity{
		ID: "urgent", Title: "Urgent", DueDate: &due,
	}))
	gt.NoError(t, uc.PutOpportunity(ctx, &model.Opportunity{
		ID: "plain", Title: "Plain",
	}))

	rec := postJSON(t, srv, "/api/recommendations/rank", map[string]any{
		"name":        "Acme",
		"pastWinRate": 0.5,
		"capacity":    0.6,
	})
	gt.Number(t, rec.Code).Equal(http.StatusOK)

	var resp struct {
		Opportunities []model.RankedOpportunity `json:"opportunities"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
	gt.Number(t, len(resp.Opportunities)).Equal(2)
	gt.Value(t, resp.Opportunities[0].ID).Equal("urgent")
}

func TestAlertsEndpoint(t *testing.T) {
	srv, uc := newTestServer()
	ctx := context.Background()

	due := time.Now().Add(2 * 24 * time.Hour)
	gt.NoError(t, uc.PutOpportunity(ctx, &model.Opportunity{
		ID: "o1", Title: "Urgent", DueDate: &due,
	}))

	rec := postJSON(t, srv, "/api/alerts", map[string]any{
		"name":        "Acme",
		"pastWinRate": 0.5,
		"capacity":    0.6,
	})
	gt.Number(t, rec.Code).Equal(http.StatusOK)

	var resp struct {
		Alerts []model.Alert `json:"alerts"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
	gt.Number(t, len(resp.Alerts)).Equal(1)
	gt.Value(t, resp.Alerts[0].ID).Equal("deadline-o1")
}

func TestMatchEndpoint(t *testing.T) {
	t.Run("returns ordered recommendations", func(t *testing.T) {
		embedder := &fixedEmbedder{vectors: map[string][]float32{
			"cloud migration": {1, 0},
			"cloud work":      {0.9, 0.1},
			"landscaping":     {0, 1},
		}}
		srv, uc := newTestServer(usecase.WithEmbedder(embedder))
		ctx := context.Background()

		gt.NoError(t, uc.PutProposal(ctx, &model.Proposal{
			ID: "cloud", Title: "Cloud work", Text: "cloud work",
		}))
		gt.NoError(t, uc.PutProposal(ctx, &model.Proposal{
			ID: "landscaping", Title: "Landscaping", Text: "landscaping",
		}))

		rec := postJSON(t, srv, "/api/contractmatch/recommendations", map[string]any{
			"text": "cloud migration",
			"topK": 10,
		})
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		var result usecase.MatchResult
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result)).Required()
		gt.Number(t, len(result.Recommendations)).Equal(2)
		gt.Value(t, result.Recommendations[0].ProposalID).Equal("cloud")
	})

	t.Run("empty text returns 400", func(t *testing.T) {
		embedder := &fixedEmbedder{vectors: map[string][]float32{}}
		srv, _ := newTestServer(usecase.WithEmbedder(embedder))

		rec := postJSON(t, srv, "/api/contractmatch/recommendations", map[string]any{
			"text": "",
		})
		gt.Number(t, rec.Code).Equal(http.StatusBadRequest)
	})
}
