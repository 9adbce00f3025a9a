// Package repository keeps loaded sessions in memory.
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/okian/batterlab/internal/domain/session"
)

// Store provides read/write access to the session working sets.
type Store interface {
	// Put inserts s or replaces the session with the same id. When the store
	// is full the least recently stored session is evicted.
	Put(ctx context.Context, s *session.Session) error

	// Get returns the session with id.
	// Returns ErrNotFound if the session is unknown or was evicted.
	Get(ctx context.Context, id uuid.UUID) (*session.Session, error)

	// Delete drops the session with id. Unknown ids are ignored.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the number of retained sessions.
	Count(ctx context.Context) int
}
