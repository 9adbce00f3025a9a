package splits

import (
	"github.com/okian/batterlab/internal/domain/outcome"
	"github.com/okian/batterlab/internal/domain/pitch"
)

// Labels of the first-pitch buckets.
const (
	SwungFirstPitch = "Swung 1st Pitch"
	TookFirstPitch  = "Took 1st Pitch"
)

// FirstPitch partitions PAs by what the batter did with pitch number one.
// A PA whose first pitch is neither a swing nor a take lands in no bucket.
func FirstPitch(t *pitch.Table) Table {
	b := newBuilder(KindFirstPitch)
	if !t.Columns().HasAll(pitch.ColPitchNumber, pitch.ColDescription) {
		return b.build()
	}
	all := t.All()
	first := all.Filter(func(p *pitch.Pitch) bool { return p.PitchNumber == 1 })

	b.add(SwungFirstPitch, all.InKeys(firstPitchKeys(first, outcome.FirstPitchSwings)))
	b.add(TookFirstPitch, all.InKeys(firstPitchKeys(first, outcome.FirstPitchTakes)))
	return b.build()
}

func firstPitchKeys(first pitch.View, set outcome.DescriptionSet) map[pitch.Key]struct{} {
	return first.Filter(func(p *pitch.Pitch) bool { return set.Has(p.Description) }).Keys()
}
