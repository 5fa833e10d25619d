package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"github.com/ericstephens/scheduler/internal/errors"
	"github.com/ericstephens/scheduler/internal/metrics"
	"github.com/ericstephens/scheduler/internal/platform/version"
)

const defaultTimeout = 10 * time.Second

// Client is the shared HTTP transport for all resource clients: base
// URL handling, JSON codec, typed error mapping, request IDs, metrics,
// and a circuit breaker that fails fast while the API is down.
type Client struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the overall request timeout (default 10s).
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = timeout
	}
}

// WithHTTPClient swaps the underlying HTTP client. Test use.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.http = httpClient
	}
}

// New creates a Client rooted at baseURL (e.g. "http://host:8000/api/v1").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}

	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "scheduler-api",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.Requests >= 5 && counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("API circuit breaker state changed", "from", from.String(), "to", to.String())
			metrics.BreakerStateChanges.WithLabelValues(to.String()).Inc()
		},
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			// Only connectivity-level failures count against the breaker.
			// A 4xx means the API is up and answering.
			structured := errors.AsStructuredError(err)
			return structured.StatusCode >= 400 && structured.StatusCode < 500
		},
	})

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) get(ctx context.Context, resource, path string, query url.Values, out any) error {
	return c.do(ctx, resource, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, resource, path string, body, out any) error {
	return c.do(ctx, resource, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, resource, path string, body, out any) error {
	return c.do(ctx, resource, http.MethodPut, path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, resource, path string, body, out any) error {
	return c.do(ctx, resource, http.MethodPatch, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, resource, path string, out any) error {
	return c.do(ctx, resource, http.MethodDelete, path, nil, nil, out)
}

func (c *Client) do(ctx context.Context, resource, method, path string, query url.Values, body, out any) error {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.TransportError("failed to encode request body", err).
				WithContext("resource", resource)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reqBody)
	if err != nil {
		return errors.TransportError("failed to build request", err).
			WithContext("resource", resource)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	_, err = c.breaker.Execute(func() (any, error) {
		return nil, c.roundTrip(req, resource, requestID, out)
	})
	metrics.RequestDuration.WithLabelValues(resource, method).Observe(time.Since(start).Seconds())

	if err != nil {
		structured := errors.AsStructuredError(err)
		metrics.RequestErrors.WithLabelValues(resource, string(structured.Type)).Inc()
		return structured
	}
	return nil
}

// roundTrip performs the request and maps the response onto out or a
// structured error. Runs inside the circuit breaker.
func (c *Client) roundTrip(req *http.Request, resource, requestID string, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return errors.TransportError("request failed", err).
			WithContext("resource", resource).
			WithContext("request_id", requestID)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.TransportError("failed to decode response body", err).
				WithContext("resource", resource).
				WithContext("request_id", requestID)
		}
		return nil
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// No auth integration yet. Logged for diagnostics, handled like
		// any other transport error.
		slog.Warn("Unauthorized API response", "resource", resource, "request_id", requestID)
	}

	return errors.FromStatusCode(resp.StatusCode, decodeDetail(resp.Body)).
		WithContext("resource", resource).
		WithContext("request_id", requestID)
}

// decodeDetail extracts the server's optional {"detail": "..."} message.
func decodeDetail(body io.Reader) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return ""
	}
	return payload.Detail
}

// setIntParam adds value to query under name, omitting zero. A zero
// filter value means "unset", never an explicit zero filter.
func setIntParam(query url.Values, name string, value int) {
	if value != 0 {
		query.Set(name, fmt.Sprintf("%d", value))
	}
}

// setStringParam adds value to query under name, omitting empty strings.
func setStringParam(query url.Values, name, value string) {
	if value != "" {
		query.Set(name, value)
	}
}
