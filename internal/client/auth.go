package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

type authResponse struct {
	Success bool `json:"success"`
	User    struct {
		Username string `json:"username"`
		Role     string `json:"role"`
	} `json:"user"`
	Token string `json:"token"`
	Error string `json:"error"`
}

// Login authenticates and, on success, stores the returned identity in the
// session (notifying subscribers). Returns false on any failure.
func (c *Client) Login(ctx context.Context, username, password string) bool {
	return c.authenticate(ctx, "/api/login", username, password)
}

// Register creates an account and signs the session in as the new user.
func (c *Client) Register(ctx context.Context, username, password string) bool {
	return c.authenticate(ctx, "/api/register", username, password)
}

// Logout clears the session. Client-side only: there is no server call and
// no token revocation.
func (c *Client) Logout() {
	if c.session != nil {
		c.session.Clear()
	}
}

func (c *Client) authenticate(ctx context.Context, path, username, password string) bool {
	payload, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		log.Printf("client: failed to marshal credentials: %v", err)
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		log.Printf("client: failed to create auth request: %v", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("client: auth request failed: %v", err)
		return false
	}
	defer resp.Body.Close()

	var result authResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Printf("client: failed to decode auth response: %v", err)
		return false
	}
	if !result.Success {
		if result.Error == "" {
			result.Error = fmt.Sprintf("status %d", resp.StatusCode)
		}
		log.Printf("client: authentication rejected: %s", result.Error)
		return false
	}

	if c.session != nil {
		c.session.Set(result.Token, result.User.Username, result.User.Role)
	}
	return true
}
