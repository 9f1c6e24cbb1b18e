// Package api wraps the Payment Transactions REST service. Every backend
// operation has one method; all of them attach the bearer token when one is
// held and clear it on any authentication failure, regardless of which call
// was rejected.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TokenStore supplies and invalidates the persisted credential. Presence of a
// token is the only bootstrap signal for session resolution, so Clear must
// remove it durably, not just in memory.
type TokenStore interface {
	Token() string
	Save(token string) error
	Clear() error
}

// Config configures a Client.
type Config struct {
	// BaseURL is the service root, e.g. "http://localhost:8000".
	BaseURL string
	// Timeout bounds each request. Zero means DefaultTimeout.
	Timeout time.Duration
	// Tokens holds the bearer credential. Required.
	Tokens TokenStore
}

// DefaultTimeout bounds requests when the config does not set one.
const DefaultTimeout = 30 * time.Second

// Client is the HTTP client for the backend. Safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenStore
}

// NewClient creates a Client for the given service.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("api: base URL is required")
	}
	if cfg.Tokens == nil {
		return nil, fmt.Errorf("api: token store is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     cfg.Tokens,
	}, nil
}

// do issues one request. Query values are cleaned so that empty filters are
// never transmitted. A 401/403 clears the stored token before the error is
// returned, so no later call can carry the stale credential.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("failed to build URL for %s: %w", path, err)
	}
	if q := cleanQuery(query); len(q) > 0 {
		u.RawQuery = q.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w", path, err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		if err := c.tokens.Clear(); err != nil {
			slog.Warn("Failed to clear token after auth failure", "error", err)
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseError(resp.StatusCode, respBody)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode response from %s: %w", path, err)
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// cleanQuery drops parameters whose value is empty. The backend distinguishes
// "no filter" from "filter = empty string", so an omitted constraint must
// never reach the wire as "".
func cleanQuery(q url.Values) url.Values {
	if q == nil {
		return nil
	}
	cleaned := url.Values{}
	for key, values := range q {
		for _, v := range values {
			if v != "" {
				cleaned.Add(key, v)
			}
		}
	}
	return cleaned
}
