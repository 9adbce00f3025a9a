package player

import "errors"

// ErrNotFound is returned by resolvers when a name or id matches no player.
var ErrNotFound = errors.New("player not found")
