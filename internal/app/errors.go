package service

import "errors"

// Sentinel errors surfaced to the API layers.
var (
	ErrInvalidDateRange  = errors.New("invalid date range")
	ErrDateOutOfCoverage = errors.New("date outside tracking coverage")
	ErrInvalidPlayer     = errors.New("player name or id required")
	ErrPlayerNotFound    = errors.New("player not found")
	ErrSessionNotFound   = errors.New("session not found")
	ErrUnknownSplit      = errors.New("unknown split")
	ErrPitcherNotFound   = errors.New("pitcher not faced in session")
	ErrNoPitchData       = errors.New("no pitch data for player and range")
	ErrNoDirectory       = errors.New("player directory not configured")
)
