// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package portal is the HTTP client for the HR document portal API. The API
// is an external collaborator; this package owns request construction,
// response mapping, and per-call observability, nothing else.
package portal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/techvista/hrdocs/internal/httputil"
	"github.com/techvista/hrdocs/pkg/types"
)

// Client talks to the portal API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	token      string
	maxRetries int
	obs        *observer
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithToken sets a bearer token forwarded on every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithObserver enables per-call logging and metrics (see NewObserver).
func WithObserver(obs *observer) Option {
	return func(c *Client) { c.obs = obs }
}

// New creates a portal client from config. A zero cfg.Timeout leaves the
// transport default in place.
func New(cfg types.PortalConfig, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		userAgent:  cfg.UserAgent,
		maxRetries: cfg.MaxRetries,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Suggested fetches the suggested search terms for the home view.
func (c *Client) Suggested(ctx context.Context) (types.Suggested, error) {
	var out types.Suggested
	err := c.getJSON(ctx, "suggested", "/api/suggested", nil, &out)
	return out, err
}

// Recents fetches the recently updated documents for the home view.
func (c *Client) Recents(ctx context.Context) ([]types.Document, error) {
	var out []types.Document
	err := c.getJSON(ctx, "recents", "/api/recents", nil, &out)
	return out, err
}

// Documents runs a search with the given query parameters.
func (c *Client) Documents(ctx context.Context, params url.Values) ([]types.Document, error) {
	var out []types.Document
	err := c.getJSON(ctx, "documents", "/api/documents", params, &out)
	return out, err
}

// Latest resolves a canonical ID to the current version of its lineage.
func (c *Client) Latest(ctx context.Context, canonicalID string) (types.Document, error) {
	var out types.Document
	path := "/api/canonical/" + url.PathEscape(canonicalID) + "/latest"
	err := c.getJSON(ctx, "latest", path, nil, &out)
	return out, err
}

// Favorites fetches the favorites of the given user.
func (c *Client) Favorites(ctx context.Context, userID string) ([]types.Document, error) {
	params := url.Values{"user_id": {userID}}
	var out []types.Document
	err := c.getJSON(ctx, "favorites", "/api/favorites", params, &out)
	return out, err
}

// SharedBookmarks fetches the team's shared bookmarks.
func (c *Client) SharedBookmarks(ctx context.Context) ([]types.Document, error) {
	params := url.Values{"shared": {"true"}}
	var out []types.Document
	err := c.getJSON(ctx, "bookmarks", "/api/bookmarks", params, &out)
	return out, err
}

// favoriteBody is the favorite-write request payload.
type favoriteBody struct {
	UserID     string `json:"user_id"`
	DocumentID string `json:"document_id"`
}

// AddFavorite records a favorite for the given user. The response body is
// not interpreted; only the status code matters.
func (c *Client) AddFavorite(ctx context.Context, userID, documentID string) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("add_favorite", start, err) }()

	payload, err := json.Marshal(favoriteBody{UserID: userID, DocumentID: documentID})
	if err != nil {
		return fmt.Errorf("encoding favorite: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/favorites", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setHeaders(req)

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, req, c.maxRetries)
	if err != nil {
		return fmt.Errorf("portal request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("portal returned HTTP %d", resp.StatusCode)
	}
	return nil
}

// getJSON performs a GET against path with optional query parameters and
// decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, op, path string, params url.Values, out any) (err error) {
	start := time.Now()
	defer func() { c.obs.observe(op, start, err) }()

	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	c.setHeaders(req)

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, req, c.maxRetries)
	if err != nil {
		return fmt.Errorf("portal request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("portal returned HTTP %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing portal response: %w", err)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}
