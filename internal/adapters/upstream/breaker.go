package upstream

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"

	"github.com/okian/batterlab/pkg/logger"
	"github.com/okian/batterlab/pkg/metrics"
)

// BreakerSettings tunes a Breaker.
type BreakerSettings struct {
	// MaxRequests is the number of probes allowed while half-open.
	MaxRequests int
	// Timeout is how long the breaker stays open before probing.
	Timeout time.Duration
	// MinRequests is the sample size needed before the breaker may trip.
	MinRequests int
	// FailureRatio trips the breaker once reached.
	FailureRatio float64
}

// Breaker guards calls to one provider.
type Breaker struct {
	name string
	cb   *gobreaker.CircuitBreaker
}

// NewBreaker returns a closed breaker for the named provider.
func NewBreaker(name string, s BreakerSettings) *Breaker {
	log := logger.Named(name)
	minRequests := uint32(max(s.MinRequests, 1))
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: uint32(max(s.MaxRequests, 1)),
		Timeout:     s.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < minRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= s.FailureRatio
		},
		IsSuccessful: func(err error) bool {
			var se *StatusError
			return err == nil || (errors.As(err, &se) && !se.Temporary())
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.UpdateBreakerState(name, stateValue(to))
			log.Warn(context.Background(), "circuit breaker state changed",
				logger.String("from", from.String()),
				logger.String("to", to.String()))
		},
	})
	metrics.UpdateBreakerState(name, metrics.BreakerClosed)
	return &Breaker{name: name, cb: cb}
}

// State returns the current breaker state name.
func (b *Breaker) State() string { return b.cb.State().String() }

// Run executes fn through b. Rejections are reported as ErrUnavailable.
func Run[T any](b *Breaker, fn func() (T, error)) (T, error) {
	var zero T
	out, err := b.cb.Execute(func() (interface{}, error) {
		return fn()
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		metrics.RecordBreakerRejected(b.name)
		return zero, fmt.Errorf("%w: %s: %w", ErrUnavailable, b.name, err)
	}
	if err != nil {
		return zero, err
	}
	v, _ := out.(T)
	return v, nil
}

func stateValue(s gobreaker.State) int {
	switch s {
	case gobreaker.StateHalfOpen:
		return metrics.BreakerHalfOpen
	case gobreaker.StateOpen:
		return metrics.BreakerOpen
	default:
		return metrics.BreakerClosed
	}
}
