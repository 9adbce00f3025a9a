package mcp

import "errors"

// ErrMissingArgument is returned when a required tool argument is absent.
var ErrMissingArgument = errors.New("missing argument")
