package splits

import "errors"

// Sentinel kinds for split errors.
var (
	ErrUnknownKind = errors.New("unknown split kind")
	ErrUnknownStat = errors.New("unknown stat column")
)
