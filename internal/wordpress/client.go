// Package wordpress implements the client for the external content system
// (a WordPress site exposing the standard REST API). It can fetch a posting
// by its numeric ID and push back an updated title, body, and the three SEO
// meta fields.
package wordpress

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jonathan/posting-optimizer/internal/sanitize"
	"github.com/jonathan/posting-optimizer/internal/types"
)

// SEO meta field keys understood by the site's SEO plugin.
const (
	metaKeySEOTitle       = "_yoast_wpseo_title"
	metaKeySEODescription = "_yoast_wpseo_metadesc"
	metaKeySEOFocus       = "_yoast_wpseo_focuskw"
)

// Client talks to the WordPress REST API.
type Client struct {
	baseURL    string
	postType   string
	username   string
	password   string
	httpClient *http.Client
}

// New creates a client for the given site. postType is the REST route of
// the posting post type (for example "job-listings").
func New(baseURL, postType, username, password string) *Client {
	return &Client{
		baseURL:  baseURL,
		postType: postType,
		username: username,
		password: password,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// postPayload is the REST representation of a posting we read and write.
type postPayload struct {
	ID      int64             `json:"id,omitempty"`
	Title   renderedField     `json:"title"`
	Content renderedField     `json:"content"`
	Meta    map[string]string `json:"meta,omitempty"`
}

type renderedField struct {
	Rendered string `json:"rendered,omitempty"`
	Raw      string `json:"raw,omitempty"`
}

// FetchPosting retrieves a posting by its content-system ID. The rendered
// HTML body is reduced to visible text before it reaches the engine.
func (c *Client) FetchPosting(ctx context.Context, remoteID int64) (*types.JobPosting, error) {
	url := fmt.Sprintf("%s/wp-json/wp/v2/%s/%d", c.baseURL, c.postType, remoteID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build fetch request: %w", err)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch posting %d: %w", remoteID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("failed to fetch posting %d: status %d: %s",
			remoteID, resp.StatusCode, string(body))
	}

	var payload postPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode posting %d: %w", remoteID, err)
	}

	return &types.JobPosting{
		RemoteID:        payload.ID,
		Title:           sanitize.NormalizeBody(payload.Title.Rendered),
		Description:     sanitize.StripHTML(payload.Content.Rendered),
		FocusKeyphrase:  payload.Meta[metaKeySEOFocus],
		MetaDescription: payload.Meta[metaKeySEODescription],
	}, nil
}

// PushOptimization writes the optimized title, body, and SEO meta fields
// back to the content system.
func (c *Client) PushOptimization(ctx context.Context, remoteID int64, result *types.OptimizationResult) error {
	payload := postPayload{
		Title:   renderedField{Raw: result.OptimizedTitle},
		Content: renderedField{Raw: result.OptimizedContent},
		Meta: map[string]string{
			metaKeySEOTitle:       result.OptimizedTitle,
			metaKeySEODescription: result.MetaDescription,
			metaKeySEOFocus:       result.FocusKeyphrase,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal update: %w", err)
	}

	url := fmt.Sprintf("%s/wp-json/wp/v2/%s/%d", c.baseURL, c.postType, remoteID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build update request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to update posting %d: %w", remoteID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("failed to update posting %d: status %d: %s",
			remoteID, resp.StatusCode, string(respBody))
	}
	return nil
}

func (c *Client) authorize(req *http.Request) {
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}
}
