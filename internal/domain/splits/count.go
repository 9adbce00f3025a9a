package splits

import (
	"fmt"

	"github.com/okian/batterlab/internal/domain/pitch"
)

// FullCount is the extra label carried for PAs that ended at 3-2.
const FullCount = "Full Count"

// countPredicate is a named test on the count before a pitch.
type countPredicate struct {
	label string
	match func(c pitch.Count) bool
}

// reachedCounts are matched with inequalities so a PA that passed through a
// state counts even when the source reports more balls than is legal.
var reachedCounts = []countPredicate{
	{"After 1-0", func(c pitch.Count) bool { return c.Balls >= 1 && c.Strikes == 0 }},
	{"After 2-0", func(c pitch.Count) bool { return c.Balls >= 2 && c.Strikes == 0 }},
	{"After 3-0", func(c pitch.Count) bool { return c.Balls >= 3 && c.Strikes == 0 }},
	{"After 0-1", func(c pitch.Count) bool { return c.Balls == 0 && c.Strikes >= 1 }},
	{"After 1-1", func(c pitch.Count) bool { return c.Balls >= 1 && c.Strikes >= 1 }},
	{"After 2-1", func(c pitch.Count) bool { return c.Balls >= 2 && c.Strikes >= 1 }},
	{"After 3-1", func(c pitch.Count) bool { return c.Balls >= 3 && c.Strikes >= 1 }},
	{"After 0-2", func(c pitch.Count) bool { return c.Balls == 0 && c.Strikes >= 2 }},
	{"After 1-2", func(c pitch.Count) bool { return c.Balls >= 1 && c.Strikes >= 2 }},
	{"After 2-2", func(c pitch.Count) bool { return c.Balls >= 2 && c.Strikes >= 2 }},
	{"Zero Balls", func(c pitch.Count) bool { return c.Balls == 0 }},
	{"Zero Strikes", func(c pitch.Count) bool { return c.Strikes == 0 }},
	{"Three Balls", func(c pitch.Count) bool { return c.Balls == 3 }},
	{"Two Strikes", func(c pitch.Count) bool { return c.Strikes == 2 }},
	{"Batter Ahead", func(c pitch.Count) bool { return c.Balls > c.Strikes }},
	{"Even Count", func(c pitch.Count) bool { return c.Balls == c.Strikes }},
	{"Pitcher Ahead", func(c pitch.Count) bool { return c.Strikes > c.Balls }},
}

// CountLabel renders the final-count label for c.
func CountLabel(c pitch.Count) string {
	return fmt.Sprintf("%s Count", c)
}

// Count returns the final-count buckets followed by the reached-state buckets.
func Count(t *pitch.Table) Table {
	b := newBuilder(KindCount)
	if !t.Columns().HasAll(pitch.ColBalls, pitch.ColStrikes) {
		return b.build()
	}
	addFinalCounts(b, t)
	addReachedCounts(b, t)
	return b.build()
}

// FinalCounts buckets PAs by the count on their terminal pitch.
func FinalCounts(t *pitch.Table) Table {
	b := newBuilder(KindCount)
	if !t.Columns().HasAll(pitch.ColBalls, pitch.ColStrikes) {
		return b.build()
	}
	addFinalCounts(b, t)
	return b.build()
}

// ReachedCounts buckets PAs by any count state they passed through.
func ReachedCounts(t *pitch.Table) Table {
	b := newBuilder(KindCount)
	if !t.Columns().HasAll(pitch.ColBalls, pitch.ColStrikes) {
		return b.build()
	}
	addReachedCounts(b, t)
	return b.build()
}

func addFinalCounts(b *builder, t *pitch.Table) {
	outcomes := t.All().Outcomes()
	if outcomes.Len() == 0 {
		return
	}
	for balls := 0; balls <= 3; balls++ {
		for strikes := 0; strikes <= 2; strikes++ {
			c := pitch.Count{Balls: balls, Strikes: strikes}
			b.add(CountLabel(c), outcomes.Filter(func(p *pitch.Pitch) bool {
				return p.Count() == c
			}))
		}
	}
	full := pitch.Count{Balls: 3, Strikes: 2}
	b.add(FullCount, outcomes.Filter(func(p *pitch.Pitch) bool {
		return p.Count() == full
	}))
}

// addReachedCounts scans every pitch for the predicate, then aggregates only
// the terminal pitches of the PAs that ever satisfied it.
func addReachedCounts(b *builder, t *pitch.Table) {
	all := t.All()
	outcomes := all.Outcomes()
	if outcomes.Len() == 0 {
		return
	}
	for _, pred := range reachedCounts {
		match := pred.match
		keys := all.Filter(func(p *pitch.Pitch) bool { return match(p.Count()) }).Keys()
		if len(keys) == 0 {
			continue
		}
		b.add(pred.label, outcomes.InKeys(keys))
	}
}
