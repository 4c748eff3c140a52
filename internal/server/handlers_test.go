package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/posting-optimizer/internal/types"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	// No database or content system: only the inline endpoints are active.
	s, err := New(Config{Port: 0})
	require.NoError(t, err)
	return s
}

func TestHandleAnalyze(t *testing.T) {
	s := newTestServer(t)

	body := `{"title": "Junior Nurse Needed", "description": "Care for patients in our ward."}`
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.handleAnalyze(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var result types.AnalysisResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.GreaterOrEqual(t, result.Score, 0)
	assert.LessOrEqual(t, result.Score, 100)
	assert.NotEmpty(t, result.OptimizedTitle)
	assert.NotEmpty(t, result.Recommendations)
}

func TestHandleAnalyzeValidation(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"Invalid JSON", `{"title": `},
		{"Missing title", `{"description": "Care for patients."}`},
		{"Missing description", `{"title": "Junior Nurse"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			s.handleAnalyze(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandleOptimize(t *testing.T) {
	s := newTestServer(t)

	body := `{"title": "Registered Nurse", "description": "We are looking for a nurse. Responsibilities: - Provide patient care daily - Maintain accurate records"}`
	req := httptest.NewRequest(http.MethodPost, "/optimize", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.handleOptimize(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var result types.OptimizationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Contains(t, result.OptimizedContent, "<h3>Key Responsibilities</h3>")
	assert.NotEmpty(t, result.MetaDescription)
}

func TestHandleOptimizePostingWithoutStore(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/postings/abc/optimize", nil)
	req.SetPathValue("id", "abc")
	rec := httptest.NewRecorder()
	s.handleOptimizePosting(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}
