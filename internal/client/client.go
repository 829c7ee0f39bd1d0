// Package client is the data access layer consumed by UI code: collection
// and detail reads, plus admin-gated saves. Its failure policy is
// deliberately forgiving — every operation logs errors and returns an empty
// or false result instead of propagating them, so rendering code treats
// "nothing there" and "load failed" identically.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/thanhmai/journal/internal/session"
)

const defaultTimeout = 30 * time.Second

// Client talks to the journal API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *session.Session
}

// New creates a client for the API at baseURL. The session provides the
// admin token for write operations; it may be a logged-out session for
// read-only use.
func New(baseURL string, sess *session.Session) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		session: sess,
	}
}

// getJSON fetches a URL and decodes the response into out. Non-2xx statuses
// are errors.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// postJSON posts payload with the session token attached and returns the
// decoded {success, error} envelope.
func (c *Client) postJSON(ctx context.Context, path string, payload any) (bool, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return false, fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.session != nil {
		req.Header.Set("X-Admin-Token", c.session.Current().Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var result struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, fmt.Errorf("failed to decode response: %w", err)
	}
	if !result.Success && result.Error != "" {
		return false, fmt.Errorf("server rejected request: %s", result.Error)
	}
	return result.Success, nil
}
