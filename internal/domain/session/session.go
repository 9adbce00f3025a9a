// Package session models one user's working set: a batter, a date range and
// the pitch table loaded for them.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/okian/batterlab/internal/domain/pitch"
	"github.com/okian/batterlab/internal/domain/player"
)

// Session is replaced wholesale on reload; its table is never mutated.
type Session struct {
	ID       uuid.UUID
	Player   player.Identity
	Start    time.Time
	End      time.Time
	Table    *pitch.Table
	LoadedAt time.Time

	// Display-only data from the player directory. Zero when unavailable.
	Totals player.SeasonTotals
	Bio    player.Bio
}

// New returns a session with a fresh id.
func New(p player.Identity, start, end time.Time, t *pitch.Table, now time.Time) *Session {
	return &Session{
		ID:       uuid.New(),
		Player:   p,
		Start:    start,
		End:      end,
		Table:    t,
		LoadedAt: now,
	}
}

// Pitches returns the number of loaded pitches.
func (s *Session) Pitches() int {
	return s.Table.Len()
}
