package zone

import (
	"github.com/okian/batterlab/internal/domain/outcome"
	"github.com/okian/batterlab/internal/domain/pitch"
)

// Situation is the count bucket a pitch was thrown in.
type Situation string

// Count situations.
const (
	TwoStrike      Situation = "2-strike (pressure)"
	HitterAheadBig Situation = "Hitter ahead (2-0,3-0)"
	FullCount      Situation = "Full count situations"
	PitcherAhead   Situation = "Pitcher ahead"
	HitterAhead    Situation = "Hitter ahead"
)

// Situations lists every bucket Classify can name.
var Situations = []Situation{TwoStrike, HitterAheadBig, FullCount, PitcherAhead, HitterAhead}

// chaseSituations are the buckets reported with their own chase rate.
var chaseSituations = []Situation{HitterAhead, PitcherAhead, TwoStrike}

// Classify assigns a count to exactly one situation. Two strikes is checked
// first, so FullCount is never returned.
func Classify(c pitch.Count) Situation {
	switch {
	case c.Strikes == 2:
		return TwoStrike
	case c.Balls >= 2 && c.Strikes == 0:
		return HitterAheadBig
	case c.Balls == 3 && c.Strikes == 2:
		return FullCount
	case c.Strikes >= c.Balls:
		return PitcherAhead
	default:
		return HitterAhead
	}
}

// SituationRate is the chase rate within one count situation.
type SituationRate struct {
	Situation Situation `json:"situation"`
	OutOfZone int       `json:"out_of_zone"`
	Chases    int       `json:"chases"`
	ChaseRate float64   `json:"chase_rate"`
}

// SituationShare is how many pitches fell into a situation.
type SituationShare struct {
	Situation Situation `json:"situation"`
	Pitches   int       `json:"pitches"`
}

// Discipline summarises swing decisions. Rates are percentages.
type Discipline struct {
	Pitches       int              `json:"pitches"`
	InZone        int              `json:"in_zone"`
	OutOfZone     int              `json:"out_of_zone"`
	ZoneSwings    int              `json:"zone_swings"`
	Chases        int              `json:"chases"`
	ChaseRate     float64          `json:"chase_rate"`
	ZoneSwingRate float64          `json:"zone_swing_rate"`
	BySituation   []SituationRate  `json:"by_situation"`
	Distribution  []SituationShare `json:"distribution"`
}

type tally struct {
	pitches, outside, chases int
}

// Analyze classifies every pitch as in or out of the zone and as swung or
// taken. Pitches without a zone count as out of the zone.
func Analyze(t *pitch.Table) Discipline {
	d := Discipline{BySituation: []SituationRate{}, Distribution: []SituationShare{}}
	if !t.Columns().HasAll(pitch.ColZone, pitch.ColDescription) {
		return d
	}
	withCounts := t.Columns().HasAll(pitch.ColBalls, pitch.ColStrikes)

	bySituation := make(map[Situation]*tally, len(Situations))
	for _, s := range Situations {
		bySituation[s] = &tally{}
	}

	t.All().Each(func(p *pitch.Pitch) {
		d.Pitches++
		swung := outcome.Swings.Has(p.Description)
		var st *tally
		if withCounts {
			st = bySituation[Classify(p.Count())]
			st.pitches++
		}
		if p.InZone() {
			d.InZone++
			if swung {
				d.ZoneSwings++
			}
			return
		}
		d.OutOfZone++
		if st != nil {
			st.outside++
		}
		if swung {
			d.Chases++
			if st != nil {
				st.chases++
			}
		}
	})

	d.ChaseRate = percent(d.Chases, d.OutOfZone)
	d.ZoneSwingRate = percent(d.ZoneSwings, d.InZone)
	if !withCounts {
		return d
	}
	for _, s := range chaseSituations {
		st := bySituation[s]
		d.BySituation = append(d.BySituation, SituationRate{
			Situation: s,
			OutOfZone: st.outside,
			Chases:    st.chases,
			ChaseRate: percent(st.chases, st.outside),
		})
	}
	for _, s := range Situations {
		if n := bySituation[s].pitches; n > 0 {
			d.Distribution = append(d.Distribution, SituationShare{Situation: s, Pitches: n})
		}
	}
	return d
}

// percent returns 100*num/den unrounded, zero when den is zero.
func percent(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(100*num) / float64(den)
}
