package statcast

import (
	"context"
	"time"

	"github.com/okian/batterlab/internal/adapters/upstream"
	"github.com/okian/batterlab/internal/domain/pitch"
)

// NewRetrying wraps inner with attempt-linear retries.
func NewRetrying(inner Provider, r *upstream.Retrier) Provider {
	return ProviderFunc(func(ctx context.Context, batterID int64, start, end time.Time) (*pitch.Table, error) {
		return upstream.Do(ctx, r, func(ctx context.Context) (*pitch.Table, error) {
			return inner.Fetch(ctx, batterID, start, end)
		})
	})
}

// NewBreaking guards inner with b. Rejected calls wrap upstream.ErrUnavailable.
func NewBreaking(inner Provider, b *upstream.Breaker) Provider {
	return ProviderFunc(func(ctx context.Context, batterID int64, start, end time.Time) (*pitch.Table, error) {
		return upstream.Run(b, func() (*pitch.Table, error) {
			return inner.Fetch(ctx, batterID, start, end)
		})
	})
}
