// Package matchup restricts a batter's event log to one opposing pitcher and
// reshapes it into summary metrics and per-at-bat pitch sequences.
package matchup

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/okian/batterlab/internal/domain/outcome"
	"github.com/okian/batterlab/internal/domain/pitch"
	"github.com/okian/batterlab/internal/domain/stats"
)

// DateLayout renders at-bat dates, e.g. "April 03, 2024".
const DateLayout = "January 02, 2006"

// Pitcher is one opposing pitcher and how many pitches the batter saw.
type Pitcher struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Pitches int    `json:"pitches"`
}

// Metrics are the headline counts of a matchup.
type Metrics struct {
	TotalPitches     int `json:"total_pitches"`
	PlateAppearances int `json:"plate_appearances"`
	Strikeouts       int `json:"strikeouts"`
	Walks            int `json:"walks"`
	Hits             int `json:"hits"`
}

// OutcomeShare is how often one terminal event occurred.
type OutcomeShare struct {
	Event   outcome.Event `json:"event"`
	Count   int           `json:"count"`
	Percent float64       `json:"percent"`
}

// Location is a nullable plate location.
type Location struct {
	X *float64 `json:"plate_x"`
	Z *float64 `json:"plate_z"`
}

// Out is a pitch that ended a plate appearance with a recorded out.
type Out struct {
	Event     outcome.Event `json:"event"`
	PitchType string        `json:"pitch_type"`
	Location
}

// SequencePitch is one pitch of an at-bat, with the count before it.
type SequencePitch struct {
	Number       int                 `json:"number"`
	PitchType    string              `json:"pitch_type"`
	PitchName    string              `json:"pitch_name"`
	Count        string              `json:"count"`
	Description  outcome.Description `json:"description"`
	ReleaseSpeed *float64            `json:"release_speed"`
	Event        outcome.Event       `json:"event,omitempty"`
	Location
}

// AtBat is one plate appearance against the pitcher.
type AtBat struct {
	GamePK      int64           `json:"game_pk"`
	AtBatNumber int             `json:"at_bat_number"`
	Date        string          `json:"date"`
	Pitches     int             `json:"pitches"`
	Outcome     outcome.Event   `json:"outcome"`
	Sequence    []SequencePitch `json:"sequence"`
}

// Matchup is the full view of a batter against one pitcher.
type Matchup struct {
	Pitcher  Pitcher           `json:"pitcher"`
	Line     stats.BattingLine `json:"line"`
	Metrics  Metrics           `json:"metrics"`
	Outcomes []OutcomeShare    `json:"outcomes"`
	Outs     []Out             `json:"outs"`
	AtBats   []AtBat           `json:"at_bats"`
}

type faced struct {
	id   int64
	name string
}

// PitchersFaced lists every (pitcher, name) pair in the log by pitch count,
// most first and ties by id.
func PitchersFaced(t *pitch.Table) []Pitcher {
	if !t.Has(pitch.ColPitcher) {
		return []Pitcher{}
	}
	counts := make(map[faced]int)
	t.All().Each(func(p *pitch.Pitch) {
		counts[faced{p.Pitcher, p.PitcherName}]++
	})
	out := make([]Pitcher, 0, len(counts))
	for k, n := range counts {
		out = append(out, Pitcher{ID: k.id, Name: k.name, Pitches: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Pitches != out[j].Pitches {
			return out[i].Pitches > out[j].Pitches
		}
		if out[i].ID != out[j].ID {
			return out[i].ID < out[j].ID
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Resolve builds the matchup against pitcherID. It reports false when the
// batter never saw a pitch from that pitcher.
func Resolve(t *pitch.Table, pitcherID int64) (Matchup, bool) {
	if !t.Has(pitch.ColPitcher) {
		return Matchup{}, false
	}
	v := t.All().Filter(func(p *pitch.Pitch) bool { return p.Pitcher == pitcherID })
	if v.Len() == 0 {
		return Matchup{}, false
	}

	groups := v.GroupByPA()
	m := Matchup{
		Pitcher: Pitcher{ID: pitcherID, Name: v.At(0).PitcherName, Pitches: v.Len()},
		Line:    stats.Aggregate(v),
		Metrics: metrics(v, len(groups)),
		Outs:    []Out{},
		AtBats:  make([]AtBat, 0, len(groups)),
	}
	m.Outcomes = distribution(v.Outcomes())

	v.Each(func(p *pitch.Pitch) {
		if outcome.Outs.Has(p.Event) {
			m.Outs = append(m.Outs, Out{Event: p.Event, PitchType: p.PitchType, Location: locate(p)})
		}
	})

	for _, g := range groups {
		m.AtBats = append(m.AtBats, atBat(g))
	}
	return m, true
}

func metrics(v pitch.View, plateAppearances int) Metrics {
	m := Metrics{TotalPitches: v.Len(), PlateAppearances: plateAppearances}
	v.Outcomes().Each(func(p *pitch.Pitch) {
		if p.Event.IsStrikeout() {
			m.Strikeouts++
		}
		if strings.Contains(string(p.Event), "walk") {
			m.Walks++
		}
		if p.Event.IsHit() {
			m.Hits++
		}
	})
	return m
}

// distribution counts terminal events, most frequent first, ties by name.
func distribution(outcomes pitch.View) []OutcomeShare {
	counts := make(map[outcome.Event]int)
	outcomes.Each(func(p *pitch.Pitch) { counts[p.Event]++ })

	out := make([]OutcomeShare, 0, len(counts))
	total := decimal.NewFromInt(int64(outcomes.Len()))
	for e, n := range counts {
		pct := decimal.NewFromInt(int64(n)).Mul(decimal.NewFromInt(100)).DivRound(total, 1)
		out = append(out, OutcomeShare{Event: e, Count: n, Percent: pct.InexactFloat64()})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Event < out[j].Event
	})
	return out
}

func atBat(g pitch.Group) AtBat {
	first := g.Pitches.At(0)
	ab := AtBat{
		GamePK:      g.Key.GamePK,
		AtBatNumber: g.Key.AtBatNumber,
		Pitches:     g.Pitches.Len(),
		Outcome:     g.Last().Event,
		Sequence:    make([]SequencePitch, 0, g.Pitches.Len()),
	}
	if !first.GameDate.IsZero() {
		ab.Date = first.GameDate.Format(DateLayout)
	}
	n := 0
	g.Pitches.Each(func(p *pitch.Pitch) {
		n++
		ab.Sequence = append(ab.Sequence, SequencePitch{
			Number:       n,
			PitchType:    p.PitchType,
			PitchName:    p.PitchName,
			Count:        p.Count().String(),
			Description:  p.Description,
			ReleaseSpeed: floatPtr(p.ReleaseSpeed),
			Event:        p.Event,
			Location:     locate(p),
		})
	})
	return ab
}

func locate(p *pitch.Pitch) Location {
	return Location{X: floatPtr(p.PlateX), Z: floatPtr(p.PlateZ)}
}

func floatPtr(f pitch.Float) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.V
	return &v
}
