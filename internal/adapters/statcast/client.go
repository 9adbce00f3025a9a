package statcast

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/okian/batterlab/internal/adapters/upstream"
	"github.com/okian/batterlab/internal/domain/pitch"
	"github.com/okian/batterlab/pkg/metrics"
)

const (
	defaultBaseURL = "https://baseballsavant.mlb.com"
	defaultTimeout = 30 * time.Second
	searchPath     = "/statcast_search/csv"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client queries the Baseball Savant CSV search endpoint.
type Client struct {
	baseURL string
	http    httpDoer
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another host, e.g. a test server.
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

// SearchURL builds the export URL for a batter and date range. The upstream
// treats game_date_gt/lt as inclusive bounds.
func (c *Client) SearchURL(batterID int64, start, end time.Time) string {
	q := url.Values{}
	q.Set("all", "true")
	q.Set("type", "details")
	q.Set("player_type", "batter")
	q.Set("batters_lookup[]", strconv.FormatInt(batterID, 10))
	q.Set("game_date_gt", start.Format(dateLayout))
	q.Set("game_date_lt", end.Format(dateLayout))
	return c.baseURL + searchPath + "?" + q.Encode()
}

// Fetch downloads and decodes the pitch table.
func (c *Client) Fetch(ctx context.Context, batterID int64, start, end time.Time) (*pitch.Table, error) {
	began := time.Now()
	t, err := c.fetch(ctx, batterID, start, end)
	result := "success"
	if err != nil {
		result = "error"
	}
	metrics.RecordProviderFetch(Name, result, float64(time.Since(began).Milliseconds()))
	return t, err
}

func (c *Client) fetch(ctx context.Context, batterID int64, start, end time.Time) (*pitch.Table, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.SearchURL(batterID, start, end), nil)
	if err != nil {
		return nil, fmt.Errorf("statcast: build request: %w", err)
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("statcast: request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &upstream.StatusError{Provider: Name, StatusCode: resp.StatusCode, Body: upstream.Snippet(body)}
	}
	return Decode(resp.Body)
}
