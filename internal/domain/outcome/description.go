package outcome

// Description is the pitch-result value of the description column.
type Description string

// Pitch results.
const (
	Ball                  Description = "ball"
	BlockedBall           Description = "blocked_ball"
	CalledStrike          Description = "called_strike"
	SwingingStrike        Description = "swinging_strike"
	SwingingStrikeBlocked Description = "swinging_strike_blocked"
	Foul                  Description = "foul"
	FoulTip               Description = "foul_tip"
	FoulBunt              Description = "foul_bunt"
	MissedBunt            Description = "missed_bunt"
	BuntFoulTip           Description = "bunt_foul_tip"
	FoulPitchout          Description = "foul_pitchout"
	SwingingPitchout      Description = "swinging_pitchout"
	Pitchout              Description = "pitchout"
	HitIntoPlay           Description = "hit_into_play"
	HitIntoPlayScore      Description = "hit_into_play_score"
	HitIntoPlayNoOut      Description = "hit_into_play_no_out"
	HitByPitchPitch       Description = "hit_by_pitch"
	IntentBall            Description = "intent_ball"
)

// DescriptionSet is an immutable membership set of pitch descriptions.
type DescriptionSet map[Description]struct{}

// NewDescriptionSet builds a DescriptionSet from the given descriptions.
func NewDescriptionSet(ds ...Description) DescriptionSet {
	s := make(DescriptionSet, len(ds))
	for _, d := range ds {
		s[d] = struct{}{}
	}
	return s
}

// Has reports whether d belongs to the set.
func (s DescriptionSet) Has(d Description) bool {
	_, ok := s[d]
	return ok
}

// The first-pitch split and the discipline analyzer use different swing
// lists; both are kept as observed.
var (
	FirstPitchSwings = NewDescriptionSet(
		SwingingStrike, Foul, FoulTip, HitIntoPlay,
		SwingingStrikeBlocked, FoulBunt, MissedBunt,
		BuntFoulTip, FoulPitchout,
	)
	FirstPitchTakes = NewDescriptionSet(
		Ball, CalledStrike, BlockedBall, Pitchout,
		HitByPitchPitch, IntentBall,
	)
	Swings = NewDescriptionSet(
		SwingingStrike, SwingingStrikeBlocked, Foul, FoulTip,
		HitIntoPlay, HitIntoPlayScore, HitIntoPlayNoOut,
		FoulBunt, MissedBunt, SwingingPitchout,
	)
)
