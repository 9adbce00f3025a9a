package trend

// Option configures Compute.
type Option func(*settings)

type settings struct {
	window     int
	minPeriods int
	recent     int
}

func defaults() settings {
	return settings{window: DefaultWindow, minPeriods: DefaultMinPeriods, recent: DefaultWindow}
}

// WithWindow sets the rolling window length in plate appearances.
func WithWindow(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.window = n
		}
	}
}

// WithMinPeriods sets how many valid values a window needs before it yields a mean.
func WithMinPeriods(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.minPeriods = n
		}
	}
}

// WithRecent sets how many of the latest points are returned.
func WithRecent(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.recent = n
		}
	}
}
