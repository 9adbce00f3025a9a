package splits

import "github.com/okian/batterlab/internal/domain/stats"

// Best returns the row with the highest value of stat. Earlier rows win ties.
// It reports false when the table is empty.
func Best(t Table, stat string) (Row, bool, error) {
	if _, ok := stats.Empty.Stat(stat); !ok {
		return Row{}, false, ErrUnknownStat
	}
	var (
		best  Row
		top   float64
		found bool
	)
	for _, r := range t.Rows {
		v, _ := r.Stat(stat)
		if !found || v > top {
			best, top, found = r, v, true
		}
	}
	return best, found, nil
}
