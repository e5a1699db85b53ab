// Package api is the HTTP JSON client for the code refinement service.
//
// Every call is a single request with no retry. A failure is classified by
// kind so callers can show the server's message when it sent one:
//   - KindRemote: a non-2xx status or success:false. The error text is the
//     server's "error" field, or a per-operation fallback.
//   - KindNetwork: the request could not be made or the body was not JSON.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	perrors "github.com/coderefine/coderefine/internal/errors"
	"github.com/coderefine/coderefine/internal/logger"
)

const (
	pathSignIn        = "/auth/signin"
	pathSignUp        = "/auth/signup"
	pathResetPassword = "/auth/reset-password"
	pathAnalyze       = "/analyze"
	pathRefine        = "/refine"
	pathHealth        = "/health"

	// maxResponseBytes bounds how much of a response body is decoded.
	maxResponseBytes = 8 << 20
)

// Client talks to one service base URL.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient creates a client for baseURL. A zero timeout means no timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return NewClientWithHTTP(&http.Client{Timeout: timeout}, baseURL)
}

// NewClientWithHTTP creates a client with a custom HTTP client (for testing).
func NewClientWithHTTP(client *http.Client, baseURL string) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{
		httpClient: client,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// BaseURL returns the base URL requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// WithToken returns a copy of the client that sends token as a bearer
// credential on analyze and refine calls. An empty token sends none.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

// envelope holds the fields every response may carry.
type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// post sends body as JSON to path and decodes the response into out.
// fallback is the message used when the server reports failure without an
// error text.
func (c *Client) post(ctx context.Context, op perrors.Op, path string, body any, out any, fallback string, auth bool) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return perrors.TransportFailed(op, fmt.Errorf("failed to encode request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return perrors.TransportFailed(op, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if auth && c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	return c.do(req, op, out, fallback)
}

// do executes req. An empty fallback skips the success field check, for
// endpoints that do not send one.
func (c *Client) do(req *http.Request, op perrors.Op, out any, fallback string) error {
	log := logger.ComponentLogger("API")
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("request failed", "method", req.Method, "path", req.URL.Path, "error", err)
		return perrors.TransportFailed(op, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return perrors.TransportFailed(op, fmt.Errorf("failed to read response: %w", err))
	}
	log.Debug("response", "method", req.Method, "path", req.URL.Path, "status", resp.StatusCode, "elapsed", time.Since(start))

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return perrors.TransportFailed(op, fmt.Errorf("failed to parse response (status %d): %w", resp.StatusCode, err))
	}

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	if !ok || (fallback != "" && !env.Success) {
		msg := env.Error
		if msg == "" {
			msg = fallback
		}
		if msg == "" {
			msg = fmt.Sprintf("service returned status %d", resp.StatusCode)
		}
		return perrors.RemoteFailed(op, msg)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return perrors.TransportFailed(op, fmt.Errorf("failed to parse response: %w", err))
	}
	return nil
}
