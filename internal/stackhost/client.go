package stackhost

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"stackmcp/pkg/logging"

	"golang.org/x/sync/singleflight"
)

const (
	// DefaultBaseURL is the fixed base URL of the StackHost REST API.
	DefaultBaseURL = "https://api.stackhost.io/v1"

	// requestTimeout bounds every outbound call. There is no caller-level
	// cancellation beyond this; dispatched operations run to completion.
	requestTimeout = 30 * time.Second
)

// Client is the single transport client for the StackHost backend. It is
// stateless aside from its fixed configuration and the memoized account
// identifier, and is safe for concurrent use.
type Client struct {
	baseURL    string
	authHeader string
	httpClient *http.Client

	// Memoized account context. resolveGroup collapses concurrent first
	// resolutions into one network call; failures are never stored.
	resolveGroup singleflight.Group
	mu           sync.RWMutex
	accountID    string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the backend base URL. Used by tests and staging
// environments.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a transport client authenticated with the given
// credentials. The bearer token is the base64 encoding of the general API
// key, which is the scheme the backend expects.
func NewClient(creds Credentials, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		authHeader: "Bearer " + base64.StdEncoding.EncodeToString([]byte(creds.APIKey)),
		httpClient: &http.Client{Timeout: requestTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Request performs an HTTP call against the backend and returns the
// normalized response body. Every response passes through the
// normalization pipeline before it is handed to a caller; no raw string or
// byte buffer ever leaves this method.
func (c *Client) Request(ctx context.Context, method, path string, body interface{}) (interface{}, error) {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, &TransportError{Method: method, Path: path, Err: fmt.Errorf("encoding request body: %w", err)}
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: err}
	}
	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: fmt.Errorf("reading response body: %w", err)}
	}

	logging.Debug("Transport", "%s %s -> %d (%d bytes)", method, path, resp.StatusCode, len(raw))

	// HTML is classified before any parse attempt, for 2xx and non-2xx
	// alike. It typically means wrong auth or a mistyped endpoint path.
	if isHTMLContentType(resp.Header.Get("Content-Type")) {
		return nil, &HTMLResponseError{
			StatusCode: resp.StatusCode,
			Preview:    htmlPreview(raw),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamAPIError{
			StatusCode: resp.StatusCode,
			Message:    upstreamMessage(raw, resp.Status),
			Method:     method,
			Path:       path,
		}
	}

	return normalizeBody(raw)
}

// Get performs a GET request against the backend.
func (c *Client) Get(ctx context.Context, path string) (interface{}, error) {
	return c.Request(ctx, http.MethodGet, path, nil)
}

// Post performs a POST request against the backend.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (interface{}, error) {
	return c.Request(ctx, http.MethodPost, path, body)
}

// Delete performs a DELETE request against the backend.
func (c *Client) Delete(ctx context.Context, path string) (interface{}, error) {
	return c.Request(ctx, http.MethodDelete, path, nil)
}

// upstreamMessage extracts the human-readable message from a structured
// error body, falling back to the raw body or HTTP status text.
func upstreamMessage(raw []byte, statusText string) string {
	var parsed map[string]interface{}
	if err := json.Unmarshal(raw, &parsed); err == nil {
		for _, key := range []string{"error", "message"} {
			switch v := parsed[key].(type) {
			case string:
				if v != "" {
					return v
				}
			case map[string]interface{}:
				if msg, ok := v["message"].(string); ok && msg != "" {
					return msg
				}
			}
		}
	}

	if trimmed := snippet(string(bytes.TrimSpace(raw))); trimmed != "" {
		return trimmed
	}
	return statusText
}
