// Package apiclient talks to the HaruLog backend REST API. All storage,
// authentication, AI analysis, and speech-to-text happen server-side;
// this client only moves JSON and multipart bodies back and forth.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// TokenSource supplies the bearer token attached to every request.
// A nil TokenSource sends unauthenticated requests.
type TokenSource interface {
	Token() (string, error)
}

// APIError is a non-OK response from the backend, carrying the
// backend-provided message when one was present.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

// Client for the HaruLog backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	tokens     TokenSource
}

// NewClient creates a backend API client rooted at baseURL.
func NewClient(baseURL string, tokens TokenSource, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
		tokens: tokens,
	}
}

// newRequest builds a request with the bearer token attached.
func (c *Client) newRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if c.tokens != nil {
		token, err := c.tokens.Token()
		if err != nil {
			return nil, err
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

// doJSON performs the request and decodes the response into out when it
// is non-nil. Non-2xx statuses become *APIError.
func (c *Client) doJSON(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Request to backend failed", zap.String("url", req.URL.Path), zap.Error(err))
		return fmt.Errorf("request to backend failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: decodeErrorMessage(resp.Body)}
		c.logger.Error("Backend returned non-OK status",
			zap.String("url", req.URL.Path),
			zap.Int("status", resp.StatusCode))
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("Failed to decode backend response", zap.String("url", req.URL.Path), zap.Error(err))
		return fmt.Errorf("failed to decode backend response: %w", err)
	}
	return nil
}

// sendJSON marshals body and sends it as application/json.
func (c *Client) sendJSON(ctx context.Context, method, url string, body, out any) error {
	var buf io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		buf = bytes.NewReader(encoded)
	}
	req, err := c.newRequest(ctx, method, url, buf)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.doJSON(req, out)
}

// decodeErrorMessage pulls the message out of a FastAPI-style error body.
// Failure messages never include diary content.
func decodeErrorMessage(r io.Reader) string {
	var payload struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(r, 4096)).Decode(&payload); err != nil {
		return ""
	}
	if payload.Detail != "" {
		return payload.Detail
	}
	return payload.Error
}
