// Package remote implements the HTTP client for the authoritative
// persistence API. All calls are fallible by design; callers decide
// whether a failure degrades to the local cache.
package remote

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

	"golang.org/x/time/rate"

	"github.com/vocab-forge/vocabforge/internal/config"
	"github.com/vocab-forge/vocabforge/internal/log"
)

// debugLog wraps log.DebugLog with the "remote" component.
func debugLog(format string, args ...interface{}) {
	log.DebugLog("remote", format, args...)
}

// Client talks to the remote persistence API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a client for the persistence API at cfg.BaseURL.
func NewClient(cfg config.RemoteConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	perMinute := cfg.RateLimit
	if perMinute <= 0 {
		perMinute = 60
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), 5),
	}
}

// Configured reports whether a remote base URL is set. An unconfigured
// client fails every call with ErrUnavailable, which leaves the catalog
// in permanent offline mode.
func (c *Client) Configured() bool {
	return c.baseURL != ""
}

// apiErrorBody is the error envelope the server uses for failures.
type apiErrorBody struct {
	Error string `json:"error"`
}

// do performs one rate-limited JSON round trip. A nil out skips
// response decoding. Network failures and 5xx responses are wrapped in
// ErrUnavailable; 4xx responses become *APIError.
func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	if !c.Configured() {
		return fmt.Errorf("%w: no remote URL configured", ErrUnavailable)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	debugLog("%s %s", method, path)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 500 {
		return fmt.Errorf("%w: server returned %d", ErrUnavailable, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var envelope apiErrorBody
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
			apiErr.Message = envelope.Error
		}
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// query builds a path with URL-encoded query parameters.
func query(path string, params map[string]string) string {
	if len(params) == 0 {
		return path
	}
	values := url.Values{}
	for k, v := range params {
		if v != "" {
			values.Set(k, v)
		}
	}
	encoded := values.Encode()
	if encoded == "" {
		return path
	}
	return path + "?" + encoded
}
