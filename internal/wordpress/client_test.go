package wordpress

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/posting-optimizer/internal/types"
)

func TestFetchPosting(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/wp-json/wp/v2/job-listings/42", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "api-user", user)
		assert.Equal(t, "secret", pass)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      42,
			"title":   map[string]string{"rendered": "Registered Nurse &#8211; Durban"},
			"content": map[string]string{"rendered": "<p>Care for patients.</p><p>Keep records.</p>"},
			"meta": map[string]string{
				"_yoast_wpseo_focuskw":  "nurse durban",
				"_yoast_wpseo_metadesc": "Join us as a nurse.",
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "job-listings", "api-user", "secret")
	posting, err := c.FetchPosting(t.Context(), 42)
	require.NoError(t, err)

	assert.Equal(t, int64(42), posting.RemoteID)
	assert.Equal(t, "Registered Nurse - Durban", posting.Title)
	assert.Contains(t, posting.Description, "Care for patients.")
	assert.NotContains(t, posting.Description, "<p>", "body HTML is stripped")
	assert.Equal(t, "nurse durban", posting.FocusKeyphrase)
	assert.Equal(t, "Join us as a nurse.", posting.MetaDescription)
}

func TestFetchPostingErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL, "job-listings", "", "")
	_, err := c.FetchPosting(t.Context(), 7)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestPushOptimization(t *testing.T) {
	var received postPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/wp-json/wp/v2/job-listings/42", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.URL, "job-listings", "api-user", "secret")
	result := &types.OptimizationResult{
		OptimizedTitle:   "Registered Nurse - South Africa",
		OptimizedContent: "<h3>Overview</h3>\n<p>Care for patients.</p>",
		MetaDescription:  "Join us as a nurse in Durban.",
		FocusKeyphrase:   "nurse durban",
	}
	require.NoError(t, c.PushOptimization(t.Context(), 42, result))

	assert.Equal(t, "Registered Nurse - South Africa", received.Title.Raw)
	assert.Equal(t, "<h3>Overview</h3>\n<p>Care for patients.</p>", received.Content.Raw)
	assert.Equal(t, "Registered Nurse - South Africa", received.Meta[metaKeySEOTitle])
	assert.Equal(t, "Join us as a nurse in Durban.", received.Meta[metaKeySEODescription])
	assert.Equal(t, "nurse durban", received.Meta[metaKeySEOFocus])
}

func TestPushOptimizationErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	c := New(srv.URL, "job-listings", "", "")
	err := c.PushOptimization(t.Context(), 42, &types.OptimizationResult{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}
