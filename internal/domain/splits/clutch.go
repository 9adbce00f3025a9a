package splits

import (
	"fmt"

	"github.com/okian/batterlab/internal/domain/pitch"
)

// Clutch buckets are not mutually exclusive. Score-dependent buckets are
// skipped when the table has no bat_score_diff column.
func Clutch(t *pitch.Table) Table {
	b := newBuilder(KindClutch)
	all := t.All()

	if t.Columns().HasAll(pitch.ColOutsWhenUp, pitch.ColOn2B, pitch.ColOn3B) {
		b.add("2 Outs+RISP", all.Filter(func(p *pitch.Pitch) bool {
			return p.OutsWhenUp == 2 && p.RunnerInScoringPosition()
		}))
	}

	if !t.Has(pitch.ColBatScoreDiff) {
		return b.build()
	}

	if t.Has(pitch.ColInning) {
		b.add("Late & Close", all.Filter(func(p *pitch.Pitch) bool {
			return p.Inning >= 7 && withinRuns(p, 1)
		}))
	}
	b.add("Tie Game", all.Filter(func(p *pitch.Pitch) bool {
		return p.BatScoreDiff.Valid && p.BatScoreDiff.V == 0
	}))
	for n := int64(1); n <= 4; n++ {
		n := n
		b.add(fmt.Sprintf("Within %dR", n), all.Filter(func(p *pitch.Pitch) bool {
			return withinRuns(p, n)
		}))
	}
	b.add("Margin >4R", all.Filter(func(p *pitch.Pitch) bool {
		return p.BatScoreDiff.Valid && abs(p.BatScoreDiff.V) > 4
	}))
	b.add("Ahead", all.Filter(func(p *pitch.Pitch) bool {
		return p.BatScoreDiff.Valid && p.BatScoreDiff.V > 0
	}))
	b.add("Behind", all.Filter(func(p *pitch.Pitch) bool {
		return p.BatScoreDiff.Valid && p.BatScoreDiff.V < 0
	}))

	return b.build()
}

func withinRuns(p *pitch.Pitch, n int64) bool {
	return p.BatScoreDiff.Valid && abs(p.BatScoreDiff.V) <= n
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
