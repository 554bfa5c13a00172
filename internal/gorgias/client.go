// Package gorgias is the sole component permitted to speak to the Gorgias
// REST API. A Client is bound to one tenant's credentials for the lifetime of
// one inbound request and holds no cross-request state.
package gorgias

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gorgias-oss/gorgias-mcp-server/internal/domain"
)

const (
	apiHost = "gorgias.com"

	// defaultRetryAfter is the conservative pause suggested when a 429
	// response carries no Retry-After header.
	defaultRetryAfter = 60 * time.Second
	// maxRetryAfter caps upstream-suggested pauses so a misbehaving header
	// cannot park the caller for hours.
	maxRetryAfter = 5 * time.Minute
)

// Config carries the environment-derived knobs the client needs.
type Config struct {
	// DefaultPageSize is used when a list call does not specify a limit.
	DefaultPageSize int
	// MaxPageSize clamps caller-requested limits.
	MaxPageSize int
	// HTTPClient overrides the transport, primarily for tests. The Basic
	// auth wrapper is applied on top of it.
	HTTPClient *http.Client
	// BaseURL overrides the derived https://{domain}.gorgias.com/api base,
	// primarily for tests.
	BaseURL string
}

// Client issues authenticated requests against one tenant's Gorgias account.
type Client struct {
	baseURL         string
	httpClient      *http.Client
	defaultPageSize int
	maxPageSize     int
}

// NewClient builds a client bound to the given credential triple. All calls
// reuse the same base URL and the same Basic auth identity.
func NewClient(creds domain.Credentials, cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = fmt.Sprintf("https://%s.%s/api", creds.Domain, apiHost)
	}

	inner := cfg.HTTPClient
	if inner == nil {
		inner = http.DefaultClient
	}
	authed := &http.Client{
		Transport: &basicAuthTransport{
			base:     transportOf(inner),
			username: creds.Email,
			password: creds.APIKey,
		},
		Timeout: inner.Timeout,
	}

	def := cfg.DefaultPageSize
	if def <= 0 {
		def = domain.DefaultPageSize
	}
	max := cfg.MaxPageSize
	if max <= 0 {
		max = domain.MaxPageSize
	}

	return &Client{
		baseURL:         base,
		httpClient:      authed,
		defaultPageSize: def,
		maxPageSize:     max,
	}
}

func transportOf(c *http.Client) http.RoundTripper {
	if c.Transport != nil {
		return c.Transport
	}
	return http.DefaultTransport
}

// basicAuthTransport adds the tenant's Basic auth header to every request.
type basicAuthTransport struct {
	base     http.RoundTripper
	username string
	password string
}

func (t *basicAuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	cloned := req.Clone(req.Context())
	cloned.SetBasicAuth(t.username, t.password)
	return t.base.RoundTrip(cloned)
}

// do is the single request path shared by every operation: build the URL,
// issue the call, classify the status before touching the body, then decode
// into out. A 204 response is an explicit no-body success.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if err := classifyStatus(resp); err != nil {
		return err
	}

	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// classifyStatus maps an upstream response to the failure taxonomy. Checked
// in order: 429, 401/403, any other non-2xx, success.
func classifyStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return &domain.APIError{
			Kind:       domain.ErrKindRateLimit,
			StatusCode: resp.StatusCode,
			Message:    "upstream throttled the request",
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &domain.APIError{
			Kind:       domain.ErrKindAuth,
			StatusCode: resp.StatusCode,
			Message:    "credentials were rejected by the Gorgias API",
		}
	case resp.StatusCode == http.StatusNotFound:
		return &domain.APIError{
			Kind:       domain.ErrKindNotFound,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp),
		}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &domain.APIError{
			Kind:       domain.ErrKindAPI,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp),
		}
	}
	return nil
}

// parseRetryAfter interprets the Retry-After header as seconds. Absent or
// unparseable headers fall back to the conservative default; oversized
// values are capped.
func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return defaultRetryAfter
	}
	seconds, err := strconv.Atoi(header)
	if err != nil || seconds <= 0 {
		return defaultRetryAfter
	}
	d := time.Duration(seconds) * time.Second
	if d > maxRetryAfter {
		return maxRetryAfter
	}
	return d
}

// errorMessage extracts a best-effort human message from an error body,
// falling back to a generic string when the body is not parseable JSON or
// lacks a message/error field.
func errorMessage(resp *http.Response) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return fmt.Sprintf("API error: %d", resp.StatusCode)
}

// pageEnvelope is the wire shape of every Gorgias list response.
type pageEnvelope[W any] struct {
	Data []W `json:"data"`
	Meta struct {
		NextCursor string `json:"next_cursor"`
	} `json:"meta"`
}

// listQuery translates list options into snake_case query parameters,
// clamping the limit into [1, max page size].
func (c *Client) listQuery(opts domain.ListOptions) url.Values {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(domain.ClampLimit(opts.Limit, c.defaultPageSize, c.maxPageSize)))
	if opts.Cursor != "" {
		q.Set("cursor", opts.Cursor)
	}
	if opts.OrderBy != "" {
		q.Set("order_by", opts.OrderBy)
	}
	return q
}

// listPage fetches one page and re-maps every wire record into the internal
// shape. An empty upstream page yields empty items, never an error.
func listPage[W, T any](ctx context.Context, c *Client, path string, query url.Values, mapFn func(W) T) (domain.Page[T], error) {
	var env pageEnvelope[W]
	if err := c.do(ctx, http.MethodGet, path, query, nil, &env); err != nil {
		return domain.Page[T]{}, err
	}
	items := make([]T, 0, len(env.Data))
	for _, w := range env.Data {
		items = append(items, mapFn(w))
	}
	return domain.Page[T]{Items: items, NextCursor: env.Meta.NextCursor}, nil
}
