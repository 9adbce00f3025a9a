package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Environment names.
const (
	EnvPrefix = "BATTERLAB_"
	EnvFile   = EnvPrefix + "CONFIG"
)

// Load builds a Config by layering defaults, an optional file and env vars.
// Order of precedence (low -> high):
//  1. defaults (New)
//  2. YAML file named by BATTERLAB_CONFIG
//  3. env (prefix BATTERLAB_, flat lower-cased keys)
func Load(ctx context.Context) (*Config, error) {
	base := New(ctx)
	k := koanf.New(".")

	if path := os.Getenv(EnvFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	// BATTERLAB_MAX_SESSIONS -> max_sessions
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every value and joins all violations.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Addr) == "" {
		errs = append(errs, invalid("addr", "must not be empty"))
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		errs = append(errs, invalid("log_format", "must be text or json"))
	}
	for key, v := range map[string]int{
		"http_timeout_ms":      c.HTTPTimeoutMS,
		"retry_attempts":       c.RetryAttempts,
		"breaker_max_requests": c.BreakerMaxRequests,
		"breaker_timeout_ms":   c.BreakerTimeoutMS,
		"breaker_min_requests": c.BreakerMinRequests,
		"max_sessions":         c.MaxSessions,
		"trend_window":         c.TrendWindow,
		"trend_min_periods":    c.TrendMinPeriods,
	} {
		if v <= 0 {
			errs = append(errs, invalid(key, "must be positive"))
		}
	}
	if c.RetryBackoffMS < 0 {
		errs = append(errs, invalid("retry_backoff_ms", "must not be negative"))
	}
	if c.BreakerFailureRatio <= 0 || c.BreakerFailureRatio > 1 {
		errs = append(errs, invalid("breaker_failure_ratio", "must be in (0,1]"))
	}
	if c.TrendMinPeriods > c.TrendWindow {
		errs = append(errs, invalid("trend_min_periods", "must not exceed trend_window"))
	}
	if c.MCPEnabled && !strings.HasPrefix(c.MCPPath, "/") {
		errs = append(errs, invalid("mcp_path", "must start with /"))
	}
	if start, end, err := c.Coverage(); err != nil {
		errs = append(errs, err)
	} else if end.Before(start) {
		errs = append(errs, invalid("coverage_end", "must not precede coverage_start"))
	}
	return errors.Join(errs...)
}
