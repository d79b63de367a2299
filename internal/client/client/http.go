package client

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

	"github.com/dmitrijs2005/jobpilot/internal/common"
	"github.com/dmitrijs2005/jobpilot/internal/logging"
	"github.com/google/uuid"
)

// maxDetailBytes caps how much of an error body is read to extract "detail".
const maxDetailBytes = 64 << 10

var defaultHeaders = map[string]string{
	"Content-Type": "application/json",
}

// HTTPClient talks REST/JSON to the jobpilot backend.
type HTTPClient struct {
	baseURL    string
	healthURL  string
	httpClient *http.Client
	log        logging.Logger
}

type Option func(*HTTPClient)

// WithHTTPClient replaces http.DefaultClient, e.g. to set a timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) {
		if l != nil {
			c.log = l
		}
	}
}

// New returns a client for the API rooted at baseURL
// (e.g. http://localhost:8000/api). The health probe is resolved against the
// origin of baseURL.
func New(baseURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q is not absolute", baseURL)
	}

	c := &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		healthURL:  (&url.URL{Scheme: u.Scheme, Host: u.Host, Path: "/health"}).String(),
		httpClient: http.DefaultClient,
		log:        logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the API root the client was built with.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

type requestOptions struct {
	method  string
	headers map[string]string
	body    io.Reader
}

func mergeHeaders(base, extra map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(extra))
	for k, v := range base {
		merged[http.CanonicalHeaderKey(k)] = v
	}
	for k, v := range extra {
		merged[http.CanonicalHeaderKey(k)] = v
	}
	return merged
}

// do performs one request against baseURL+path and decodes a 2xx body into
// out. out is left untouched by callers on error; they return zero values.
func (c *HTTPClient) do(ctx context.Context, path string, opts requestOptions, out any) error {
	method := opts.method
	if method == "" {
		method = http.MethodGet
	}

	reqID := uuid.NewString()
	log := c.log.With("method", method, "path", path, "request_id", reqID)

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, opts.body)
	if err != nil {
		log.Error(ctx, "build request failed", "error", err)
		return fmt.Errorf("%s %s: build request: %w", method, path, err)
	}
	for k, v := range mergeHeaders(defaultHeaders, opts.headers) {
		req.Header.Set(k, v)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, reqID)

	start := time.Now()
	log.Debug(ctx, "request started")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error(ctx, "request failed", "error", err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &StatusError{
			StatusCode: resp.StatusCode,
			Method:     method,
			Path:       path,
			Detail:     readDetail(resp.Body),
		}
		log.Error(ctx, "unexpected status", "status", resp.StatusCode, "detail", se.Detail)
		return se
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
	} else if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Error(ctx, "decode response failed", "status", resp.StatusCode, "error", err)
		return &DecodeError{Method: method, Path: path, Err: err}
	}

	log.Debug(ctx, "request finished", "status", resp.StatusCode, "duration", time.Since(start))
	return nil
}

// doJSON encodes in (when non-nil) as the request body.
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, in, out any) error {
	opts := requestOptions{method: method}
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s %s: encode request: %w", method, path, err)
		}
		opts.body = bytes.NewReader(b)
	}
	return c.do(ctx, path, opts, out)
}

// readDetail extracts FastAPI's {"detail": ...}. String details are returned
// as is, structured ones (validation errors) as compact JSON, anything else
// as the trimmed body text.
func readDetail(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, maxDetailBytes))
	if err != nil || len(body) == 0 {
		return ""
	}

	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Detail) > 0 {
		var s string
		if err := json.Unmarshal(envelope.Detail, &s); err == nil {
			return s
		}
		var buf bytes.Buffer
		if err := json.Compact(&buf, envelope.Detail); err == nil {
			return buf.String()
		}
	}
	return strings.TrimSpace(string(body))
}

// Ping probes GET /health on the server origin. Any failure maps to
// ErrUnavailable.
func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.healthURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug(ctx, "health probe failed", "url", c.healthURL, "error", err)
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Debug(ctx, "health probe failed", "url", c.healthURL, "status", resp.StatusCode)
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var health struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil || health.Status != "healthy" {
		return ErrUnavailable
	}
	return nil
}
