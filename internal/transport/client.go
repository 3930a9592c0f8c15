// Package transport is the HTTP collaborator the sync layer sends every
// request through. It attaches the bearer token when one is present and
// classifies failures; it never touches the entity cache or the session.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TokenSource exposes the current session token to outgoing requests.
type TokenSource interface {
	Get() (token string, ok bool)
}

// Requester is what the sync layer depends on; Client is the default
// implementation.
type Requester interface {
	Request(ctx context.Context, method, path string, body, out interface{}) error
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: timeout,
		},
		tokens: tokens,
	}
}

// Request sends a JSON request and decodes the response into out (when out is
// non-nil). Non-2xx responses come back as *APIError with the server's
// message; anything without a response at all is returned as-is.
func (c *Client) Request(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader

	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("json.Marshal -> %w", err)
		}

		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token, ok := c.tokens.Get(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("c.http.Do -> %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	zap.L().Debug("request completed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
	)

	if resp.StatusCode >= 400 {
		return c.errorFromResponse(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("json.Decode -> %w", err)
		}
	}

	return nil
}

func (c *Client) errorFromResponse(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}

	// A malformed error body still classifies by status code.
	_ = json.NewDecoder(resp.Body).Decode(&body)

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    body.Error,
	}
}
