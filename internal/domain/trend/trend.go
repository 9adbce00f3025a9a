// Package trend derives the rolling xwOBA series and the spray-chart input
// from a batter's event log.
package trend

import (
	"fmt"
	"sort"
	"time"

	"github.com/okian/batterlab/internal/domain/pitch"
)

// Defaults for the rolling series.
const (
	DefaultWindow     = 100
	DefaultMinPeriods = 20

	// LeagueAverage is the reference xwOBA drawn alongside the series.
	LeagueAverage = 0.324
)

// Point is one plate appearance of the recent series.
type Point struct {
	PA        int       `json:"pa_number"`
	Date      time.Time `json:"game_date"`
	DateLabel string    `json:"formatted_date"`
	Value     *float64  `json:"xwoba_value"`
	Rolling   *float64  `json:"rolling_xwoba"`
	Display   string    `json:"xwoba_display"`
}

// Trend is the rolling xwOBA view of a batter.
type Trend struct {
	Overall       *float64 `json:"overall_xwoba"`
	LeagueAverage float64  `json:"league_average"`
	LastPA        string   `json:"last_pa,omitempty"`
	Points        []Point  `json:"points"`
}

type entry struct {
	date  time.Time
	value pitch.Float
}

// Compute orders the wOBA-counting plate appearances by date, takes xwOBA
// where it exists and falls back to the actual wOBA value, and averages over
// a trailing window. Windows with too few values carry no rolling mean.
func Compute(t *pitch.Table, opts ...Option) Trend {
	s := defaults()
	for _, o := range opts {
		o(&s)
	}

	tr := Trend{LeagueAverage: LeagueAverage, Points: []Point{}}
	if !t.Has(pitch.ColWOBADenom) {
		return tr
	}

	var entries []entry
	t.All().Each(func(p *pitch.Pitch) {
		if !p.WOBADenom.Valid || p.WOBADenom.V != 1 {
			return
		}
		v := p.EstimatedWOBA
		if !v.Valid {
			v = p.WOBAValue
		}
		entries = append(entries, entry{date: p.GameDate, value: v})
	})
	if len(entries) == 0 {
		return tr
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].date.Before(entries[j].date) })

	rolling := rollingMean(entries, s.window, s.minPeriods)
	tr.Overall = mean(entries)

	start := len(entries) - s.recent
	if start < 0 {
		start = 0
	}
	for i := start; i < len(entries); i++ {
		e := entries[i]
		pt := Point{
			PA:      i - start,
			Date:    e.date,
			Rolling: rolling[i],
		}
		if e.value.Valid {
			v := e.value.V
			pt.Value = &v
		}
		if !e.date.IsZero() {
			pt.DateLabel = OrdinalDate(e.date)
		}
		if pt.Rolling != nil {
			pt.Display = Display(*pt.Rolling)
		}
		tr.Points = append(tr.Points, pt)
	}
	tr.LastPA = tr.Points[len(tr.Points)-1].DateLabel
	return tr
}

// rollingMean averages the valid values of each trailing window of size
// window, yielding nil when fewer than minPeriods are valid.
func rollingMean(entries []entry, window, minPeriods int) []*float64 {
	out := make([]*float64, len(entries))
	var sum float64
	var n int
	for i, e := range entries {
		if e.value.Valid {
			sum += e.value.V
			n++
		}
		if j := i - window; j >= 0 && entries[j].value.Valid {
			sum -= entries[j].value.V
			n--
		}
		if n >= minPeriods {
			m := sum / float64(n)
			out[i] = &m
		}
	}
	return out
}

func mean(entries []entry) *float64 {
	var sum float64
	var n int
	for _, e := range entries {
		if e.value.Valid {
			sum += e.value.V
			n++
		}
	}
	if n == 0 {
		return nil
	}
	m := sum / float64(n)
	return &m
}

// Display renders an xwOBA the way it is read aloud, e.g. ".489". Thousandths
// are truncated, not rounded.
func Display(v float64) string {
	return fmt.Sprintf(".%03d", int(v*1000))
}

// OrdinalDate renders d as "Apr 1st".
func OrdinalDate(d time.Time) string {
	day := d.Day()
	suffix := "th"
	if day%100 < 10 || day%100 > 20 {
		switch day % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%s %d%s", d.Format("Jan"), day, suffix)
}
