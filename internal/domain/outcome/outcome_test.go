package outcome_test

import (
	"testing"

	"github.com/okian/batterlab/internal/domain/outcome"
	. "github.com/smartystreets/goconvey/convey"
)

func TestEventCategories(t *testing.T) {
	Convey("Given the plate-appearance outcomes", t, func() {
		Convey("Hits are the four base-hit kinds", func() {
			So(outcome.Single.IsHit(), ShouldBeTrue)
			So(outcome.HomeRun.IsHit(), ShouldBeTrue)
			So(outcome.FieldError.IsHit(), ShouldBeFalse)
			So(outcome.Walk.IsHit(), ShouldBeFalse)
		})

		Convey("Strikeouts match on the strikeout substring", func() {
			So(outcome.Strikeout.IsStrikeout(), ShouldBeTrue)
			So(outcome.StrikeoutDoublePlay.IsStrikeout(), ShouldBeTrue)
			So(outcome.FieldOut.IsStrikeout(), ShouldBeFalse)
		})

		Convey("Ground double plays exclude sacrifice double plays", func() {
			So(outcome.GroundedIntoDoublePlay.IsGroundDoublePlay(), ShouldBeTrue)
			So(outcome.DoublePlay.IsGroundDoublePlay(), ShouldBeTrue)
			So(outcome.StrikeoutDoublePlay.IsGroundDoublePlay(), ShouldBeTrue)
			So(outcome.SacBuntDoublePlay.IsGroundDoublePlay(), ShouldBeFalse)
			So(outcome.SacFlyDoublePlay.IsGroundDoublePlay(), ShouldBeFalse)
		})

		Convey("Walk-like events include intentional walks", func() {
			So(outcome.Walk.IsWalkLike(), ShouldBeTrue)
			So(outcome.IntentWalk.IsWalkLike(), ShouldBeTrue)
			So(outcome.HitByPitch.IsWalkLike(), ShouldBeFalse)
		})

		Convey("BB only counts unintentional walks", func() {
			So(outcome.Walks.Has(outcome.Walk), ShouldBeTrue)
			So(outcome.Walks.Has(outcome.IntentWalk), ShouldBeFalse)
		})

		Convey("The zone at-bat set leaves out walks and sacrifices", func() {
			So(outcome.AtBats.Has(outcome.Single), ShouldBeTrue)
			So(outcome.AtBats.Has(outcome.FieldersChoice), ShouldBeTrue)
			So(outcome.AtBats.Has(outcome.Walk), ShouldBeFalse)
			So(outcome.AtBats.Has(outcome.HitByPitch), ShouldBeFalse)
			So(outcome.AtBats.Has(outcome.SacFly), ShouldBeFalse)
		})

		Convey("Bases reflects the hit value", func() {
			So(outcome.Single.Bases(), ShouldEqual, 1)
			So(outcome.Double.Bases(), ShouldEqual, 2)
			So(outcome.Triple.Bases(), ShouldEqual, 3)
			So(outcome.HomeRun.Bases(), ShouldEqual, 4)
			So(outcome.Walk.Bases(), ShouldEqual, 0)
		})
	})
}

func TestDescriptionSets(t *testing.T) {
	Convey("Given the pitch descriptions", t, func() {
		Convey("First-pitch swing and take sets do not overlap", func() {
			for d := range outcome.FirstPitchSwings {
				So(outcome.FirstPitchTakes.Has(d), ShouldBeFalse)
			}
		})

		Convey("The discipline swing set counts balls in play", func() {
			So(outcome.Swings.Has(outcome.HitIntoPlay), ShouldBeTrue)
			So(outcome.Swings.Has(outcome.SwingingPitchout), ShouldBeTrue)
			So(outcome.Swings.Has(outcome.Ball), ShouldBeFalse)
			So(outcome.Swings.Has(outcome.CalledStrike), ShouldBeFalse)
		})
	})
}
