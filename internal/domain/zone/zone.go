// Package zone buckets pitch locations into a 3x3 strike-zone grid and
// measures swing decisions inside and outside the zone.
package zone

import (
	"github.com/okian/batterlab/internal/domain/outcome"
	"github.com/okian/batterlab/internal/domain/pitch"
)

// Horizontal is a plate_x bucket.
type Horizontal string

// Vertical is a plate_z bucket.
type Vertical string

// Grid buckets, in display order.
const (
	Left   Horizontal = "Left"
	Middle Horizontal = "Middle"
	Right  Horizontal = "Right"

	Low  Vertical = "Low"
	Mid  Vertical = "Mid"
	High Vertical = "High"
)

var (
	horizontals = []Horizontal{Left, Middle, Right}
	verticals   = []Vertical{Low, Mid, High}
)

// bin is a left-closed interval; the last bin of an axis is closed on both ends.
type bin struct {
	lo, hi float64
	last   bool
}

func (b bin) contains(v float64) bool {
	if b.last {
		return v >= b.lo && v <= b.hi
	}
	return v >= b.lo && v < b.hi
}

var (
	xBins = []bin{{-1.0, -0.33, false}, {-0.33, 0.33, false}, {0.33, 1.0, true}}
	zBins = []bin{{1.5, 2.3, false}, {2.3, 3.1, false}, {3.1, 3.9, true}}
)

// BinX places a horizontal location, false when it lies off the grid.
func BinX(x float64) (Horizontal, bool) {
	for i, b := range xBins {
		if b.contains(x) {
			return horizontals[i], true
		}
	}
	return "", false
}

// BinZ places a vertical location, false when it lies off the grid.
func BinZ(z float64) (Vertical, bool) {
	for i, b := range zBins {
		if b.contains(z) {
			return verticals[i], true
		}
	}
	return "", false
}

// Cell is the batting average of at-bats ending in one grid cell.
type Cell struct {
	X       Horizontal `json:"plate_x"`
	Z       Vertical   `json:"plate_z"`
	Hits    int        `json:"hits"`
	AtBats  int        `json:"abs"`
	Avg     float64    `json:"batting_avg"`
	HasData bool       `json:"has_data"`
}

type cellKey struct {
	x Horizontal
	z Vertical
}

// BattingAverage computes hits per at-bat for every populated cell. Only
// terminal pitches with a location and an at-bat event count, so walks,
// hit-by-pitches and sacrifices are ignored. Cells come back in grid order.
func BattingAverage(t *pitch.Table) []Cell {
	if !t.Columns().HasAll(pitch.ColPlateX, pitch.ColPlateZ, pitch.ColEvents) {
		return []Cell{}
	}

	tally := make(map[cellKey]*Cell)
	t.All().Each(func(p *pitch.Pitch) {
		if !p.PlateX.Valid || !p.PlateZ.Valid || !outcome.AtBats.Has(p.Event) {
			return
		}
		x, okX := BinX(p.PlateX.V)
		z, okZ := BinZ(p.PlateZ.V)
		if !okX || !okZ {
			return
		}
		k := cellKey{x, z}
		c, ok := tally[k]
		if !ok {
			c = &Cell{X: x, Z: z, HasData: true}
			tally[k] = c
		}
		c.AtBats++
		if p.Event.IsHit() {
			c.Hits++
		}
	})

	cells := make([]Cell, 0, len(tally))
	for _, x := range horizontals {
		for _, z := range verticals {
			c, ok := tally[cellKey{x, z}]
			if !ok {
				continue
			}
			c.Avg = average(c.Hits, c.AtBats)
			cells = append(cells, *c)
		}
	}
	return cells
}

// FillGrid returns all nine cells in grid order, adding the missing ones with
// HasData=false.
func FillGrid(cells []Cell) []Cell {
	byKey := make(map[cellKey]Cell, len(cells))
	for _, c := range cells {
		byKey[cellKey{c.X, c.Z}] = c
	}
	out := make([]Cell, 0, len(horizontals)*len(verticals))
	for _, x := range horizontals {
		for _, z := range verticals {
			if c, ok := byKey[cellKey{x, z}]; ok {
				out = append(out, c)
				continue
			}
			out = append(out, Cell{X: x, Z: z})
		}
	}
	return out
}

func average(hits, abs int) float64 {
	if abs == 0 {
		return 0
	}
	return float64(hits) / float64(abs)
}
