package service

import (
	"time"

	"github.com/okian/batterlab/internal/adapters/repository"
	"github.com/okian/batterlab/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the session store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithDirectory sets the player directory used for name lookup, search,
// bio and season totals. Without one, sessions load by player id only.
func WithDirectory(d Directory) Option {
	return func(s *Service) {
		s.directory = d
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCoverage bounds the dates sessions may request.
func WithCoverage(start, end time.Time) Option {
	return func(s *Service) {
		if !start.IsZero() && !end.Before(start) {
			s.coverageStart, s.coverageEnd = start, end
		}
	}
}

// WithTrendWindow sets the rolling xwOBA window and minimum periods.
func WithTrendWindow(window, minPeriods int) Option {
	return func(s *Service) {
		if window > 0 {
			s.trendWindow = window
		}
		if minPeriods > 0 {
			s.trendMinPeriods = minPeriods
		}
	}
}

// WithClock overrides the time source stamped on loaded sessions.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}
