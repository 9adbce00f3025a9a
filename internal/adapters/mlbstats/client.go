// Package mlbstats resolves batters and their display data from the MLB
// StatsAPI: name lookup, biography and official season totals.
package mlbstats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/okian/batterlab/internal/adapters/upstream"
	"github.com/okian/batterlab/pkg/metrics"
)

// Name identifies the provider in metrics and logs.
const Name = "mlbstats"

const (
	defaultBaseURL = "https://statsapi.mlb.com"
	defaultTimeout = 15 * time.Second
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a StatsAPI client. Every call is optionally retried and guarded
// by a circuit breaker.
type Client struct {
	baseURL string
	http    httpDoer
	retrier *upstream.Retrier
	breaker *upstream.Breaker
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another host.
func WithBaseURL(raw string) Option {
	return func(c *Client) {
		if raw != "" {
			c.baseURL = strings.TrimSuffix(raw, "/")
		}
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithRetrier retries failed calls.
func WithRetrier(r *upstream.Retrier) Option {
	return func(c *Client) { c.retrier = r }
}

// WithBreaker guards calls with b.
func WithBreaker(b *upstream.Breaker) Option {
	return func(c *Client) { c.breaker = b }
}

// NewClient returns a Client with defaults overridden by opts.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// getJSON issues GET path?query and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	call := func(ctx context.Context) (struct{}, error) {
		return struct{}{}, c.do(ctx, path, query, out)
	}
	guarded := call
	if c.breaker != nil {
		guarded = func(ctx context.Context) (struct{}, error) {
			return upstream.Run(c.breaker, func() (struct{}, error) { return call(ctx) })
		}
	}
	var err error
	if c.retrier != nil {
		_, err = upstream.Do(ctx, c.retrier, guarded)
	} else {
		_, err = guarded(ctx)
	}
	return err
}

func (c *Client) do(ctx context.Context, path string, query url.Values, out any) error {
	began := time.Now()
	err := c.request(ctx, path, query, out)
	result := "success"
	if err != nil {
		result = "error"
	}
	metrics.RecordProviderFetch(Name, result, float64(time.Since(began).Milliseconds()))
	return err
}

func (c *Client) request(ctx context.Context, path string, query url.Values, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("mlbstats: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("mlbstats: request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &upstream.StatusError{Provider: Name, StatusCode: resp.StatusCode, Body: upstream.Snippet(body)}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("mlbstats: decode %s: %w", path, err)
	}
	return nil
}
