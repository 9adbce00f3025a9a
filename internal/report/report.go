// Package report builds and renders split reports from a Statcast export.
package report

import (
	"fmt"

	"github.com/okian/batterlab/internal/domain/matchup"
	"github.com/okian/batterlab/internal/domain/pitch"
	"github.com/okian/batterlab/internal/domain/splits"
	"github.com/okian/batterlab/internal/domain/stats"
	"github.com/okian/batterlab/internal/domain/zone"
)

// Report is everything the CLI prints for one file.
type Report struct {
	Pitches    int               `json:"pitches"`
	Line       stats.BattingLine `json:"line"`
	Splits     []splits.Table    `json:"splits"`
	TopPark    *splits.TopPark   `json:"top_park,omitempty"`
	Zones      []zone.Cell       `json:"zones"`
	Discipline zone.Discipline   `json:"discipline"`
	Pitchers   []matchup.Pitcher `json:"pitchers"`
	Matchup    *matchup.Matchup  `json:"matchup,omitempty"`
}

// Build computes the report. A non-empty kind limits the splits to that
// classifier; a non-zero pitcherID adds the matchup against that pitcher.
func Build(t *pitch.Table, kind string, pitcherID int64) (Report, error) {
	if t.Len() == 0 {
		return Report{}, ErrNoPitches
	}
	r := Report{
		Pitches:    t.Len(),
		Line:       stats.Aggregate(t.All()),
		Zones:      zone.FillGrid(zone.BattingAverage(t)),
		Discipline: zone.Analyze(t),
		Pitchers:   matchup.PitchersFaced(t),
	}

	if kind == "" {
		r.Splits = splits.All(t)
	} else {
		k, err := splits.ParseKind(kind)
		if err != nil {
			return Report{}, fmt.Errorf("split %q: %w", kind, err)
		}
		st, err := splits.ByKind(k, t)
		if err != nil {
			return Report{}, err
		}
		r.Splits = []splits.Table{st}
	}
	for _, st := range r.Splits {
		if st.Kind != splits.KindBallpark {
			continue
		}
		if top, ok := splits.BestPark(st); ok {
			r.TopPark = &top
		}
	}

	if pitcherID != 0 {
		m, ok := matchup.Resolve(t, pitcherID)
		if !ok {
			return Report{}, fmt.Errorf("%w: %d", ErrPitcherNotFound, pitcherID)
		}
		r.Matchup = &m
	}
	return r, nil
}
