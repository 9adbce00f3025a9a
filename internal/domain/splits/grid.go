package splits

import (
	"fmt"

	"github.com/okian/batterlab/internal/domain/pitch"
	"github.com/okian/batterlab/internal/domain/stats"
)

// GridCell is one final-count cell of the heat-map grid.
type GridCell struct {
	Balls   int               `json:"balls"`
	Strikes int               `json:"strikes"`
	Split   string            `json:"split"`
	HasData bool              `json:"has_data"`
	Line    stats.BattingLine `json:"line"`
}

// Value returns the named stat of the cell, false when the cell is empty or
// the stat is unknown.
func (c GridCell) Value(stat string) (float64, bool) {
	if !c.HasData {
		return 0, false
	}
	return c.Line.Stat(stat)
}

// Display renders the named stat with three decimals, or "N/A".
func (c GridCell) Display(stat string) string {
	v, ok := c.Value(stat)
	if !ok {
		return "N/A"
	}
	return fmt.Sprintf("%.3f", v)
}

// CountGrid fills the complete 4x3 ball-strike grid from the final-count rows
// of a count table. Cells without a row are kept and marked HasData=false.
// Cells are ordered by balls, then strikes.
func CountGrid(t Table) []GridCell {
	cells := make([]GridCell, 0, 12)
	for balls := 0; balls <= 3; balls++ {
		for strikes := 0; strikes <= 2; strikes++ {
			label := CountLabel(pitch.Count{Balls: balls, Strikes: strikes})
			cell := GridCell{Balls: balls, Strikes: strikes, Split: label}
			if row, ok := t.Get(label); ok {
				cell.HasData = true
				cell.Line = row.BattingLine
			}
			cells = append(cells, cell)
		}
	}
	return cells
}
