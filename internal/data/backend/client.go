package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"foodgram-admin/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TokenSource provides the current bearer token, or empty when logged out
type TokenSource interface {
	Token() string
}

// Client wraps every outbound call to the Foodgram backend: attaches the
// bearer token, applies the configured deadline, decodes the {data, message}
// envelope and fires the unauthorized hook on any 401 before the error
// reaches the caller.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	adminPath      string
	timeout        time.Duration
	tokens         TokenSource
	onUnauthorized func()
	log            *zap.Logger
}

func NewClient(cfg utils.BackendConfig, tokens TokenSource, log *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		adminPath:  cfg.AdminPath,
		timeout:    timeout,
		tokens:     tokens,
		log:        log,
	}
}

// SetUnauthorizedHook registers the global 401 side-effect. It is invoked
// for every unauthorized response, unconditionally, so one expired session
// deauthenticates the whole console at once.
func (c *Client) SetUnauthorizedHook(fn func()) {
	c.onUnauthorized = fn
}

// envelope is the backend's uniform response wrapper
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// AdminURL composes a path under the admin API root
func (c *Client) AdminURL(path string) string {
	return c.baseURL + c.adminPath + path
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Put(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.do(ctx, http.MethodPut, path, query, body, out)
}

// Patch sends a body-less PATCH; the backend takes the new value as a query
// parameter on a dedicated sub-path
func (c *Client) Patch(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodPatch, path, query, nil, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	// Every call gets an explicit deadline
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	fullURL := c.AdminURL(path)
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Attach bearer token when logged in
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Backend request failed",
			zap.String("method", method),
			zap.String("url", fullURL),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return fmt.Errorf("backend unreachable: %w", err)
	}
	defer resp.Body.Close()

	c.log.Debug("Backend request",
		zap.String("method", method),
		zap.String("url", fullURL),
		zap.Int("status", resp.StatusCode),
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
	)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.handleErrorResponse(resp.StatusCode, raw, method, fullURL)
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decode response envelope: %w", err)
	}
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}

	return nil
}

func (c *Client) handleErrorResponse(status int, raw []byte, method, fullURL string) error {
	// Error envelope carries {message}; fall back to the HTTP status text
	var env envelope
	message := http.StatusText(status)
	if err := json.Unmarshal(raw, &env); err == nil && env.Message != "" {
		message = env.Message
	}

	if status == http.StatusUnauthorized {
		c.log.Warn("Session rejected by backend, forcing logout",
			zap.String("method", method),
			zap.String("url", fullURL),
		)
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
	}

	return &Error{StatusCode: status, Message: message}
}
