// Package upstream holds the resilience helpers shared by the remote data
// providers: attempt-linear retries and a gobreaker-backed circuit breaker.
package upstream

import (
	"context"
	"time"

	"github.com/okian/batterlab/pkg/logger"
	"github.com/okian/batterlab/pkg/metrics"
)

const (
	defaultAttempts = 3
	defaultBackoff  = 200 * time.Millisecond
)

// Retrier repeats a failing call with a delay of attempt*backoff.
type Retrier struct {
	name     string
	attempts int
	backoff  func(attempt int) time.Duration
	log      logger.Logger
}

// NewRetrier returns a Retrier for the named provider. Non-positive values
// fall back to defaults.
func NewRetrier(name string, attempts int, backoff time.Duration) *Retrier {
	if attempts <= 0 {
		attempts = defaultAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &Retrier{
		name:     name,
		attempts: attempts,
		backoff: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
		log: logger.Named(name),
	}
}

// Attempts returns the total number of tries.
func (r *Retrier) Attempts() int { return r.attempts }

// Do runs fn until it succeeds, returns a permanent error, the attempts are
// exhausted or ctx is done.
func Do[T any](ctx context.Context, r *Retrier, fn func(ctx context.Context) (T, error)) (T, error) {
	var (
		zero    T
		lastErr error
	)
	for attempt := 1; attempt <= r.attempts; attempt++ {
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err
		if attempt == r.attempts || !retryable(err) {
			break
		}

		metrics.RecordProviderRetry(r.name)
		r.log.Warn(ctx, "provider fetch retry",
			logger.Int("attempt", attempt),
			logger.Int("max_attempts", r.attempts),
			logger.Error(err))

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(r.backoff(attempt)):
		}
	}
	r.log.Warn(ctx, "provider fetch failed", logger.Int("attempts", r.attempts), logger.Error(lastErr))
	return zero, lastErr
}
