package splits_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/okian/batterlab/internal/domain/outcome"
	"github.com/okian/batterlab/internal/domain/pitch"
	"github.com/okian/batterlab/internal/domain/splits"
	. "github.com/smartystreets/goconvey/convey"
)

// pa builds a plate appearance from a count sequence; the last count carries
// the terminal event.
func pa(game int64, ab int, e outcome.Event, counts ...pitch.Count) []pitch.Pitch {
	rows := make([]pitch.Pitch, 0, len(counts))
	for i, c := range counts {
		p := pitch.Pitch{
			GamePK:      game,
			AtBatNumber: ab,
			PitchNumber: i + 1,
			Balls:       c.Balls,
			Strikes:     c.Strikes,
			Description: outcome.Ball,
		}
		if i == len(counts)-1 {
			p.Event = e
			p.Description = outcome.HitIntoPlay
		}
		rows = append(rows, p)
	}
	return rows
}

func count(b, s int) pitch.Count { return pitch.Count{Balls: b, Strikes: s} }

// with applies fn to every row.
func with(rows []pitch.Pitch, fn func(p *pitch.Pitch)) []pitch.Pitch {
	for i := range rows {
		fn(&rows[i])
	}
	return rows
}

func concat(groups ...[]pitch.Pitch) []pitch.Pitch {
	var out []pitch.Pitch
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func TestFinalCounts(t *testing.T) {
	Convey("Given PAs ending evenly at 0-0 and 3-2", t, func() {
		rows := concat(
			pa(1, 1, outcome.Single, count(0, 0)),
			pa(1, 2, outcome.FieldOut, count(0, 0)),
			pa(1, 3, outcome.Walk, count(0, 0), count(1, 0), count(2, 0), count(2, 1), count(3, 1), count(3, 2)),
			pa(1, 4, outcome.Strikeout, count(0, 0), count(1, 1), count(2, 2), count(3, 2)),
		)
		tbl := splits.FinalCounts(pitch.NewTable(rows, nil))

		Convey("Then exactly the populated buckets are emitted", func() {
			So(tbl.Labels(), ShouldResemble, []string{"0-0 Count", "3-2 Count", splits.FullCount})
		})

		Convey("Then Full Count duplicates the 3-2 bucket", func() {
			full, _ := tbl.Get(splits.FullCount)
			threeTwo, _ := tbl.Get("3-2 Count")
			So(full.BattingLine, ShouldResemble, threeTwo.BattingLine)
			So(full.PA, ShouldEqual, 2)
		})

		Convey("Then the grid fills every cell", func() {
			grid := splits.CountGrid(tbl)
			So(len(grid), ShouldEqual, 12)

			filled := 0
			for _, c := range grid {
				if c.HasData {
					filled++
				}
			}
			So(filled, ShouldEqual, 2)
			So(grid[0].Split, ShouldEqual, "0-0 Count")
			So(grid[0].HasData, ShouldBeTrue)
			So(grid[1].Display("OPS"), ShouldEqual, "N/A")
			So(grid[11].Split, ShouldEqual, "3-2 Count")
			So(grid[11].HasData, ShouldBeTrue)
		})
	})
}

func TestReachedCounts(t *testing.T) {
	Convey("Given a PA that passes through 2-0 and ends at 2-1", t, func() {
		rows := concat(
			pa(1, 1, outcome.Double, count(0, 0), count(1, 0), count(2, 0), count(2, 1)),
			pa(1, 2, outcome.Strikeout, count(0, 0), count(0, 1), count(0, 2)),
		)
		tbl := splits.ReachedCounts(pitch.NewTable(rows, nil))

		Convey("Then it belongs to every state it passed through", func() {
			for _, label := range []string{"After 1-0", "After 2-0", "After 1-1", "After 2-1", "Batter Ahead"} {
				row, ok := tbl.Get(label)
				So(ok, ShouldBeTrue)
				So(row.PA, ShouldEqual, 1)
				So(row.B2, ShouldEqual, 1)
			}
		})

		Convey("Then states neither PA reached are omitted", func() {
			for _, label := range []string{"After 3-0", "After 3-1", "Three Balls", "After 2-2"} {
				_, ok := tbl.Get(label)
				So(ok, ShouldBeFalse)
			}
		})

		Convey("Then shared states hold both PAs", func() {
			for _, label := range []string{"Zero Balls", "Zero Strikes", "Even Count"} {
				row, ok := tbl.Get(label)
				So(ok, ShouldBeTrue)
				So(row.PA, ShouldEqual, 2)
			}
			row, _ := tbl.Get("Two Strikes")
			So(row.SO, ShouldEqual, 1)
			So(row.PA, ShouldEqual, 1)
		})

		Convey("Then the full count table holds both families", func() {
			all := splits.Count(pitch.NewTable(rows, nil))
			So(all.Kind, ShouldEqual, splits.KindCount)
			_, final := all.Get("2-1 Count")
			_, reached := all.Get("After 2-1")
			So(final, ShouldBeTrue)
			So(reached, ShouldBeTrue)
		})
	})
}

func TestClutch(t *testing.T) {
	Convey("Given PAs across score margins", t, func() {
		diffs := []int64{0, 1, -1, 2, -3, 4, 6, -7}
		var rows []pitch.Pitch
		for i, d := range diffs {
			d := d
			rows = append(rows, with(pa(1, i, outcome.Single, count(0, 0)), func(p *pitch.Pitch) {
				p.BatScoreDiff = pitch.SomeInt(d)
				p.Inning = 8
			})...)
		}
		rows = append(rows, with(pa(2, 1, outcome.FieldOut, count(0, 0)), func(p *pitch.Pitch) {
			p.OutsWhenUp = 2
			p.On3B = pitch.SomeInt(7)
			p.BatScoreDiff = pitch.SomeInt(-3)
			p.Inning = 2
		})...)
		tbl := splits.Clutch(pitch.NewTable(rows, nil))

		Convey("Then the Within buckets nest", func() {
			prev := 0
			for _, label := range []string{"Within 1R", "Within 2R", "Within 3R", "Within 4R"} {
				row, ok := tbl.Get(label)
				So(ok, ShouldBeTrue)
				So(row.PA, ShouldBeGreaterThanOrEqualTo, prev)
				prev = row.PA
			}
			w1, _ := tbl.Get("Within 1R")
			w4, _ := tbl.Get("Within 4R")
			So(w1.PA, ShouldEqual, 3)
			So(w4.PA, ShouldEqual, 7)
		})

		Convey("Then the situational buckets match", func() {
			risp, _ := tbl.Get("2 Outs+RISP")
			So(risp.PA, ShouldEqual, 1)
			tie, _ := tbl.Get("Tie Game")
			So(tie.PA, ShouldEqual, 1)
			late, _ := tbl.Get("Late & Close")
			So(late.PA, ShouldEqual, 3)
			margin, _ := tbl.Get("Margin >4R")
			So(margin.PA, ShouldEqual, 2)
			ahead, _ := tbl.Get("Ahead")
			So(ahead.PA, ShouldEqual, 4)
			behind, _ := tbl.Get("Behind")
			So(behind.PA, ShouldEqual, 4)
		})

		Convey("Then labels come out in definition order", func() {
			So(tbl.Labels(), ShouldResemble, []string{
				"2 Outs+RISP", "Late & Close", "Tie Game",
				"Within 1R", "Within 2R", "Within 3R", "Within 4R",
				"Margin >4R", "Ahead", "Behind",
			})
		})

		Convey("When the score margin column is missing", func() {
			cols := pitch.NewColumnSet(pitch.AllColumns...).Without(pitch.ColBatScoreDiff)
			tbl := splits.Clutch(pitch.NewTable(rows, cols))

			Convey("Then only the runner bucket remains", func() {
				So(tbl.Labels(), ShouldResemble, []string{"2 Outs+RISP"})
			})
		})
	})
}

func TestFirstPitch(t *testing.T) {
	Convey("Given a swung, a taken and an unclassified first pitch", t, func() {
		swung := with(pa(1, 1, outcome.Single, count(0, 0), count(0, 1)), func(p *pitch.Pitch) {
			if p.PitchNumber == 1 {
				p.Description = outcome.Foul
			}
		})
		took := pa(1, 2, outcome.Strikeout, count(0, 0), count(1, 0))
		odd := with(pa(1, 3, outcome.Walk, count(0, 0), count(1, 0)), func(p *pitch.Pitch) {
			if p.PitchNumber == 1 {
				p.Description = outcome.Description("automatic_ball")
			}
		})
		all := pitch.NewTable(concat(swung, took, odd), nil)
		tbl := splits.FirstPitch(all)

		Convey("Then the two buckets are disjoint and drop the odd PA", func() {
			s, _ := tbl.Get(splits.SwungFirstPitch)
			k, _ := tbl.Get(splits.TookFirstPitch)
			So(s.PA, ShouldEqual, 1)
			So(s.H, ShouldEqual, 1)
			So(k.PA, ShouldEqual, 1)
			So(k.SO, ShouldEqual, 1)
		})

		Convey("Then bucket ABs do not exceed the unfiltered AB", func() {
			s, _ := tbl.Get(splits.SwungFirstPitch)
			k, _ := tbl.Get(splits.TookFirstPitch)
			whole, _ := splits.ByKind(splits.KindFirstPitch, all)
			So(whole.Len(), ShouldEqual, 2)
			So(s.AB+k.AB, ShouldBeLessThanOrEqualTo, 3)
		})
	})
}

func TestSituationalSplits(t *testing.T) {
	Convey("Given PAs across parks, innings, hands, halves and months", t, func() {
		apr := time.Date(2024, time.April, 3, 0, 0, 0, 0, time.UTC)
		sep := time.Date(2024, time.September, 20, 0, 0, 0, 0, time.UTC)
		nov := time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC)

		mk := func(ab int, park string, inning int, hand, half string, date time.Time) []pitch.Pitch {
			return with(pa(int64(ab), ab, outcome.Single, count(0, 0)), func(p *pitch.Pitch) {
				p.HomeTeam, p.Inning, p.PThrows, p.InningTopBot, p.GameDate = park, inning, hand, half, date
				p.BatScoreDiff = pitch.SomeInt(0)
			})
		}
		rows := concat(
			mk(1, "SEA", 10, pitch.Left, pitch.Bottom, sep),
			mk(2, "BOS", 1, pitch.Right, pitch.Top, apr),
			mk(3, "SEA", 9, pitch.Right, pitch.Top, nov),
		)
		tbl := pitch.NewTable(rows, nil)

		Convey("Then ballparks sort by code", func() {
			So(splits.Ballpark(tbl).Labels(), ShouldResemble, []string{"BOS", "SEA"})
		})

		Convey("Then innings sort numerically", func() {
			So(splits.Inning(tbl).Labels(), ShouldResemble, []string{"Inning 1", "Inning 9", "Inning 10"})
		})

		Convey("When a PA has no inning recorded", func() {
			missing := mk(4, "BOS", 0, pitch.Right, pitch.Top, apr)
			innings := splits.Inning(pitch.NewTable(concat(rows, missing), nil))

			Convey("Then it gets no Inning 0 bucket", func() {
				So(innings.Labels(), ShouldResemble, []string{"Inning 1", "Inning 9", "Inning 10"})
				_, ok := innings.Get("Inning 0")
				So(ok, ShouldBeFalse)
			})
		})

		Convey("Then platoon and home/away split in fixed order", func() {
			So(splits.Platoon(tbl).Labels(), ShouldResemble, []string{splits.VsLeft, splits.VsRight})
			home := splits.HomeAway(tbl)
			So(home.Labels(), ShouldResemble, []string{splits.Home, splits.Away})
			away, _ := home.Get(splits.Away)
			So(away.PA, ShouldEqual, 2)
		})

		Convey("Then months are named with a fallback", func() {
			So(splits.Month(tbl).Labels(), ShouldResemble, []string{"April", "September", "Month 11"})
		})

		Convey("Then All reports every non-empty table in order", func() {
			all := splits.All(tbl)
			kinds := make([]splits.Kind, 0, len(all))
			for _, st := range all {
				kinds = append(kinds, st.Kind)
			}
			So(kinds, ShouldResemble, []splits.Kind{
				splits.KindClutch, splits.KindCount, splits.KindFirstPitch, splits.KindBallpark,
				splits.KindInning, splits.KindPlatoon, splits.KindHomeAway, splits.KindMonth,
			})
		})

		Convey("When the home_team column is missing", func() {
			cols := pitch.NewColumnSet(pitch.AllColumns...).Without(pitch.ColHomeTeam)
			partial := pitch.NewTable(rows, cols)

			Convey("Then the ballpark table is empty and siblings still run", func() {
				So(splits.Ballpark(partial).Empty(), ShouldBeTrue)
				for _, st := range splits.All(partial) {
					So(st.Kind, ShouldNotEqual, splits.KindBallpark)
				}
				So(splits.Platoon(partial).Len(), ShouldEqual, 2)
			})
		})
	})
}

func TestKindsAndBest(t *testing.T) {
	Convey("Given classifier names", t, func() {
		k, err := splits.ParseKind("platoon")
		So(err, ShouldBeNil)
		So(k, ShouldEqual, splits.KindPlatoon)

		_, err = splits.ParseKind("weather")
		So(err, ShouldEqual, splits.ErrUnknownKind)

		_, err = splits.ByKind("weather", nil)
		So(err, ShouldEqual, splits.ErrUnknownKind)
	})

	Convey("Given a ballpark table", t, func() {
		rows := concat(
			with(pa(1, 1, outcome.Single, count(0, 0)), func(p *pitch.Pitch) { p.HomeTeam = "BOS" }),
			with(pa(2, 1, outcome.HomeRun, count(0, 0)), func(p *pitch.Pitch) { p.HomeTeam = "COL" }),
			with(pa(3, 1, outcome.HomeRun, count(0, 0)), func(p *pitch.Pitch) { p.HomeTeam = "SEA" }),
		)
		parks := splits.Ballpark(pitch.NewTable(rows, nil))

		Convey("Then Best picks the highest value and the first on ties", func() {
			row, ok, err := splits.Best(parks, "OPS")
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
			So(row.Split, ShouldEqual, "COL")
		})

		Convey("Then unknown stats are rejected", func() {
			_, _, err := splits.Best(parks, "WAR")
			So(err, ShouldEqual, splits.ErrUnknownStat)
		})

		Convey("Then the top park is named", func() {
			top, ok := splits.BestPark(parks)
			So(ok, ShouldBeTrue)
			So(top.Park.Name, ShouldEqual, "Coors Field")
			So(top.Park.City, ShouldEqual, "Denver")
			So(splits.ParkFor("XYZ").Name, ShouldEqual, "XYZ")
		})

		Convey("Then rows serialise with the label first", func() {
			raw, err := json.Marshal(parks.Rows[0])
			So(err, ShouldBeNil)
			So(strings.HasPrefix(string(raw), `{"Split":"BOS","G":1,"PA":1`), ShouldBeTrue)
		})
	})
}
