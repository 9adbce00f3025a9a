package statcast

import "errors"

// ErrDecode marks a CSV payload that could not be decoded.
var ErrDecode = errors.New("statcast decode error")
