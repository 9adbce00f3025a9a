// Package pitch models the pitch-by-pitch event log and the typed table the
// aggregation engine reads from.
//
// A plate appearance is never stored: it is the group of rows sharing a Key,
// recomputed from the table whenever it is needed.
package pitch

import (
	"time"

	"github.com/okian/batterlab/internal/domain/outcome"
)

// Int is a nullable integer cell.
type Int struct {
	V     int64
	Valid bool
}

// Float is a nullable floating-point cell.
type Float struct {
	V     float64
	Valid bool
}

// SomeInt returns a valid Int.
func SomeInt(v int64) Int { return Int{V: v, Valid: true} }

// SomeFloat returns a valid Float.
func SomeFloat(v float64) Float { return Float{V: v, Valid: true} }

// Handedness values of p_throws.
const (
	Left  = "L"
	Right = "R"
)

// Half-inning values of inning_topbot.
const (
	Top    = "Top"
	Bottom = "Bot"
)

// Pitch is one row of the event log.
type Pitch struct {
	// identity
	GamePK      int64
	AtBatNumber int
	PitchNumber int

	// participants
	Batter      int64
	Pitcher     int64
	PitcherName string
	PThrows     string

	// situation
	Inning       int
	InningTopBot string
	OutsWhenUp   int
	On1B         Int
	On2B         Int
	On3B         Int
	Balls        int
	Strikes      int
	BatScoreDiff Int

	// scoring
	BatScore     Int
	PostBatScore Int

	// outcome; Event is empty unless the pitch ended the plate appearance
	Event       outcome.Event
	Description outcome.Description

	// quality
	Zone          Int
	PlateX        Float
	PlateZ        Float
	EstimatedWOBA Float
	WOBAValue     Float
	WOBADenom     Float
	DeltaRunExp   Float

	// park and time
	HomeTeam string
	GameDate time.Time

	// pitch detail used by matchup and spray views
	PitchType    string
	PitchName    string
	ReleaseSpeed Float
	HitCoordX    Float
	HitCoordY    Float
}

// Key identifies a plate appearance.
type Key struct {
	GamePK      int64
	AtBatNumber int
}

// Key returns the plate-appearance key of p.
func (p *Pitch) Key() Key {
	return Key{GamePK: p.GamePK, AtBatNumber: p.AtBatNumber}
}

// Ends reports whether p is the terminal pitch of its plate appearance.
func (p *Pitch) Ends() bool {
	return p.Event != ""
}

// BasesLoaded reports whether all three runner markers are present.
func (p *Pitch) BasesLoaded() bool {
	return p.On1B.Valid && p.On2B.Valid && p.On3B.Valid
}

// RunnerInScoringPosition reports whether second or third is occupied.
func (p *Pitch) RunnerInScoringPosition() bool {
	return p.On2B.Valid || p.On3B.Valid
}

// InZone reports whether the zone cell lies inside the strike zone (1-9).
// Pitches without a zone are treated as out of the zone.
func (p *Pitch) InZone() bool {
	return p.Zone.Valid && p.Zone.V <= 9
}

// Count returns the ball-strike count before p was thrown.
func (p *Pitch) Count() Count {
	return Count{Balls: p.Balls, Strikes: p.Strikes}
}
