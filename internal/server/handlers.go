package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/posting-optimizer/internal/types"
)

// decodePosting reads and validates an inline posting payload.
func (s *Server) decodePosting(w http.ResponseWriter, r *http.Request) (*types.JobPosting, bool) {
	var posting types.JobPosting
	if err := json.NewDecoder(r.Body).Decode(&posting); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON payload")
		return nil, false
	}
	if err := s.validate.Struct(&posting); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "title and description are required")
		return nil, false
	}
	return &posting, true
}

// handleAnalyze analyzes an inline posting payload.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	posting, ok := s.decodePosting(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, s.engine.Analyze(posting))
}

// handleOptimize optimizes an inline posting payload.
func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	posting, ok := s.decodePosting(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, s.engine.Optimize(posting))
}

// handleOptimizePosting optimizes a stored posting, records the audit row,
// and pushes the result to the content system on a best-effort basis: a
// failed push is logged but does not fail the request.
func (s *Server) handleOptimizePosting(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "no database configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid posting ID")
		return
	}

	stored, err := s.store.GetPosting(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if stored == nil {
		s.errorResponse(w, http.StatusNotFound, "posting not found")
		return
	}

	result := s.engine.Optimize(stored.ToPosting())

	if _, err := s.store.SaveOptimization(r.Context(), stored.ID, &result); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	if s.content != nil && stored.RemoteID != 0 {
		if err := s.content.PushOptimization(r.Context(), stored.RemoteID, &result); err != nil {
			s.log.Warn("failed to push optimization to content system",
				"posting_id", stored.ID, "remote_id", stored.RemoteID, "error", err)
		}
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleListOptimizations returns the audit trail for a stored posting.
func (s *Server) handleListOptimizations(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "no database configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid posting ID")
		return
	}

	records, err := s.store.ListOptimizations(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, records)
}
