// Package statcast loads pitch-by-pitch tracking data for one batter.
//
// Client talks to the Baseball Savant CSV export; NewRetrying and NewBreaker
// decorate any Provider; FileProvider serves a local CSV export for offline
// use and tests.
package statcast

import (
	"context"
	"time"

	"github.com/okian/batterlab/internal/domain/pitch"
)

// Name identifies the provider in metrics and logs.
const Name = "statcast"

// Provider fetches the pitch table of one batter over an inclusive date range.
type Provider interface {
	Fetch(ctx context.Context, batterID int64, start, end time.Time) (*pitch.Table, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context, batterID int64, start, end time.Time) (*pitch.Table, error)

// Fetch calls f.
func (f ProviderFunc) Fetch(ctx context.Context, batterID int64, start, end time.Time) (*pitch.Table, error) {
	return f(ctx, batterID, start, end)
}
