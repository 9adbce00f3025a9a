// Package outcome enumerates plate-appearance results and pitch descriptions
// and defines the category sets every aggregation shares.
package outcome

import "strings"

// Event is a plate-appearance-ending outcome as reported in the events column.
type Event string

// Plate-appearance outcomes.
const (
	Single                 Event = "single"
	Double                 Event = "double"
	Triple                 Event = "triple"
	HomeRun                Event = "home_run"
	Walk                   Event = "walk"
	IntentWalk             Event = "intent_walk"
	HitByPitch             Event = "hit_by_pitch"
	Strikeout              Event = "strikeout"
	StrikeoutDoublePlay    Event = "strikeout_double_play"
	FieldOut               Event = "field_out"
	ForceOut               Event = "force_out"
	GroundedIntoDoublePlay Event = "grounded_into_double_play"
	SacFly                 Event = "sac_fly"
	SacFlyDoublePlay       Event = "sac_fly_double_play"
	SacBunt                Event = "sac_bunt"
	SacBuntDoublePlay      Event = "sac_bunt_double_play"
	FieldError             Event = "field_error"
	FieldersChoice         Event = "fielders_choice"
	FieldersChoiceOut      Event = "fielders_choice_out"
	DoublePlay             Event = "double_play"
	TriplePlay             Event = "triple_play"
)

// Set is an immutable membership set of events.
type Set map[Event]struct{}

// NewSet builds a Set from the given events.
func NewSet(events ...Event) Set {
	s := make(Set, len(events))
	for _, e := range events {
		s[e] = struct{}{}
	}
	return s
}

// Has reports whether e belongs to the set.
func (s Set) Has(e Event) bool {
	_, ok := s[e]
	return ok
}

// Category sets shared by the aggregator and every classifier.
var (
	Hits       = NewSet(Single, Double, Triple, HomeRun)
	Walks      = NewSet(Walk)
	SacHits    = NewSet(SacBunt, SacBuntDoublePlay)
	SacFlies   = NewSet(SacFly, SacFlyDoublePlay)
	SacDPs     = NewSet(SacBuntDoublePlay, SacFlyDoublePlay)
	FreePasses = NewSet(Walk, IntentWalk, HitByPitch)

	// RBIEligible lists events the official scorer reliably credits with RBI.
	// Errors, fielder's choices, force outs and non-ground double plays are left out.
	RBIEligible = NewSet(Single, Double, Triple, HomeRun, SacFly, SacFlyDoublePlay, FieldOut, GroundedIntoDoublePlay)

	// AtBats lists outcomes counted as official at-bats for the zone grid.
	AtBats = NewSet(
		Single, Double, Triple, HomeRun,
		FieldOut, ForceOut, GroundedIntoDoublePlay,
		Strikeout, StrikeoutDoublePlay, FieldersChoiceOut,
		DoublePlay, TriplePlay, FieldError, FieldersChoice,
	)

	// Outs lists outcomes plotted as recorded outs in matchup views.
	Outs = NewSet(Strikeout, StrikeoutDoublePlay, FieldOut, ForceOut, GroundedIntoDoublePlay)
)

// IsHit reports whether e is a base hit.
func (e Event) IsHit() bool { return Hits.Has(e) }

// IsStrikeout reports whether e contains "strikeout".
func (e Event) IsStrikeout() bool { return strings.Contains(string(e), "strikeout") }

// IsWalkLike reports whether e contains "walk", intentional walks included.
func (e Event) IsWalkLike() bool { return strings.Contains(string(e), "walk") }

// IsGroundDoublePlay reports whether e is a double play that is not a sacrifice.
func (e Event) IsGroundDoublePlay() bool {
	return strings.Contains(string(e), "double_play") && !SacDPs.Has(e)
}

// Bases returns total bases credited for a hit, zero otherwise.
func (e Event) Bases() int {
	switch e {
	case Single:
		return 1
	case Double:
		return 2
	case Triple:
		return 3
	case HomeRun:
		return 4
	default:
		return 0
	}
}
