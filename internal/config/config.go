// Package config defines service configuration and its loading hooks.
//
// Conventions:
//   - New returns a Config populated with defaults.
//   - Load layers a YAML file and environment variables over the defaults.
//   - Validate reports every invalid value wrapped in ErrInvalidConfig.
package config

import (
	"context"
	"time"
)

// DateLayout is the ISO date format used for coverage bounds and requests.
const DateLayout = "2006-01-02"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// StatcastBaseURL is the pitch-tracking CSV endpoint host.
	StatcastBaseURL string `koanf:"statcast_base_url"`

	// StatsAPIBaseURL is the player lookup and season totals host.
	StatsAPIBaseURL string `koanf:"statsapi_base_url"`

	// HTTPTimeoutMS bounds one upstream request.
	HTTPTimeoutMS int `koanf:"http_timeout_ms"`

	// RetryAttempts is the total number of tries per upstream call.
	RetryAttempts int `koanf:"retry_attempts"`

	// RetryBackoffMS is multiplied by the attempt number between tries.
	RetryBackoffMS int `koanf:"retry_backoff_ms"`

	// Breaker* tune the upstream circuit breakers.
	BreakerMaxRequests  int     `koanf:"breaker_max_requests"`
	BreakerTimeoutMS    int     `koanf:"breaker_timeout_ms"`
	BreakerMinRequests  int     `koanf:"breaker_min_requests"`
	BreakerFailureRatio float64 `koanf:"breaker_failure_ratio"`

	// MaxSessions caps the in-memory session store.
	MaxSessions int `koanf:"max_sessions"`

	// CoverageStart and CoverageEnd bound the dates the tracking provider serves.
	CoverageStart string `koanf:"coverage_start"`
	CoverageEnd   string `koanf:"coverage_end"`

	// TrendWindow and TrendMinPeriods shape the rolling xwOBA series.
	TrendWindow     int `koanf:"trend_window"`
	TrendMinPeriods int `koanf:"trend_min_periods"`

	// MCPEnabled mounts the Model Context Protocol handler at MCPPath.
	MCPEnabled bool   `koanf:"mcp_enabled"`
	MCPPath    string `koanf:"mcp_path"`
}

// New creates a Config with defaults. The context is reserved for loaders
// that need it.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:            "info",
		LogFormat:           "text",
		Addr:                ":9080",
		StatcastBaseURL:     "https://baseballsavant.mlb.com",
		StatsAPIBaseURL:     "https://statsapi.mlb.com",
		HTTPTimeoutMS:       30_000,
		RetryAttempts:       3,
		RetryBackoffMS:      250,
		BreakerMaxRequests:  1,
		BreakerTimeoutMS:    30_000,
		BreakerMinRequests:  3,
		BreakerFailureRatio: 0.6,
		MaxSessions:         256,
		CoverageStart:       "2015-04-01",
		CoverageEnd:         "2025-11-15",
		TrendWindow:         100,
		TrendMinPeriods:     20,
		MCPEnabled:          true,
		MCPPath:             "/mcp",
	}
}

// HTTPTimeout returns the upstream request timeout.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutMS) * time.Millisecond
}

// RetryBackoff returns the base backoff between retries.
func (c *Config) RetryBackoff() time.Duration {
	return time.Duration(c.RetryBackoffMS) * time.Millisecond
}

// BreakerTimeout returns how long an open breaker waits before probing.
func (c *Config) BreakerTimeout() time.Duration {
	return time.Duration(c.BreakerTimeoutMS) * time.Millisecond
}

// Coverage parses the coverage bounds.
func (c *Config) Coverage() (start, end time.Time, err error) {
	start, err = time.Parse(DateLayout, c.CoverageStart)
	if err != nil {
		return time.Time{}, time.Time{}, Wrap("coverage_start", err)
	}
	end, err = time.Parse(DateLayout, c.CoverageEnd)
	if err != nil {
		return time.Time{}, time.Time{}, Wrap("coverage_end", err)
	}
	return start, end, nil
}
