package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/bidscope/bidscope/pkg/domain/model"
	"github.com/bidscope/bidscope/pkg/domain/types"
	"github.com/bidscope/bidscope/pkg/usecase"
	"github.com/bidscope/bidscope/pkg/utils/errutil"
)

func (s *Server) putOpportunity(w http.ResponseWriter, r *http.Request) {
	var opp model.Opportunity
	if err := json.NewDecoder(r.Body).Decode(&opp); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid opportunity payload"), http.StatusBadRequest)
		return
	}

	if err := s.uc.PutOpportunity(r.Context(), &opp); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	respondJSON(w, r, http.StatusCreated, &opp)
}

func (s *Server) listOpportunities(w http.ResponseWriter, r *http.Request) {
	opps, err := s.uc.ListOpportunities(r.Context())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{"opportunities": opps})
}

func (s *Server) deleteOpportunity(w http.ResponseWriter, r *http.Request) {
	id := types.OpportunityID(chi.URLParam(r, "id"))

	if err := s.uc.DeleteOpportunity(r.Context(), id); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, errutil.StatusCode(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) putProposal(w http.ResponseWriter, r *http.Request) {
	var proposal model.Proposal
	if err := json.NewDecoder(r.Body).Decode(&proposal); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid proposal payload"), http.StatusBadRequest)
		return
	}

	if err := s.uc.PutProposal(r.Context(), &proposal); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	respondJSON(w, r, http.StatusCreated, &proposal)
}

func (s *Server) listProposals(w http.ResponseWriter, r *http.Request) {
	proposals, err := s.uc.ListProposals(r.Context())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{"proposals": proposals})
}

func (s *Server) rankOpportunities(w http.ResponseWriter, r *http.Request) {
	var profile model.CompanyProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid profile payload"), http.StatusBadRequest)
		return
	}

	ranked, err := s.uc.RankOpportunities(r.Context(), &profile)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{"opportunities": ranked})
}

func (s *Server) generateAlerts(w http.ResponseWriter, r *http.Request) {
	var profile model.CompanyProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid profile payload"), http.StatusBadRequest)
		return
	}

	alerts, err := s.uc.GenerateAlerts(r.Context(), &profile, time.Now())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{"alerts": alerts})
}

func (s *Server) matchProposals(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
		TopK int    `json:"topK"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid match payload"), http.StatusBadRequest)
		return
	}

	result, err := s.uc.Recommend(r.Context(), req.Text, req.TopK)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, usecase.ErrEmptyTargetText) {
			status = http.StatusBadRequest
		}
		errutil.HandleHTTP(r.Context(), w, err, status)
		return
	}

	respondJSON(w, r, http.StatusOK, result)
}
