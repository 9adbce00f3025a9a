package report

import "errors"

var (
	// ErrMissingCSV is returned when no input file is configured.
	ErrMissingCSV = errors.New("missing csv path")
	// ErrUnknownFormat is returned for an output format other than text or json.
	ErrUnknownFormat = errors.New("unknown format")
	// ErrPitcherNotFound is returned when the batter never faced the pitcher.
	ErrPitcherNotFound = errors.New("pitcher not found")
	// ErrNoPitches is returned when the file holds no rows.
	ErrNoPitches = errors.New("no pitches")
)
