package splits

import (
	"fmt"
	"sort"
	"time"

	"github.com/okian/batterlab/internal/domain/pitch"
)

// Labels of the two-way situational splits.
const (
	VsLeft  = "vs LHP"
	VsRight = "vs RHP"
	Home    = "Home"
	Away    = "Away"
)

var monthNames = map[time.Month]string{
	time.March:     "March",
	time.April:     "April",
	time.May:       "May",
	time.June:      "June",
	time.July:      "July",
	time.August:    "August",
	time.September: "September",
	time.October:   "October",
}

// MonthLabel names m, falling back to "Month N" outside the season.
func MonthLabel(m time.Month) string {
	if name, ok := monthNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Month %d", int(m))
}

// Ballpark buckets by home_team, sorted by park code.
func Ballpark(t *pitch.Table) Table {
	b := newBuilder(KindBallpark)
	if !t.Has(pitch.ColHomeTeam) {
		return b.build()
	}
	all := t.All()
	seen := make(map[string]struct{})
	all.Each(func(p *pitch.Pitch) {
		if p.HomeTeam != "" {
			seen[p.HomeTeam] = struct{}{}
		}
	})
	parks := make([]string, 0, len(seen))
	for code := range seen {
		parks = append(parks, code)
	}
	sort.Strings(parks)
	for _, code := range parks {
		code := code
		b.add(code, all.Filter(func(p *pitch.Pitch) bool { return p.HomeTeam == code }))
	}
	return b.build()
}

// Inning buckets by inning number, ascending. Rows without an inning decode
// to zero and are left out.
func Inning(t *pitch.Table) Table {
	b := newBuilder(KindInning)
	if !t.Has(pitch.ColInning) {
		return b.build()
	}
	all := t.All().Filter(func(p *pitch.Pitch) bool { return p.Inning > 0 })
	seen := make(map[int]struct{})
	all.Each(func(p *pitch.Pitch) { seen[p.Inning] = struct{}{} })
	innings := make([]int, 0, len(seen))
	for n := range seen {
		innings = append(innings, n)
	}
	sort.Ints(innings)
	for _, n := range innings {
		n := n
		b.add(fmt.Sprintf("Inning %d", n), all.Filter(func(p *pitch.Pitch) bool { return p.Inning == n }))
	}
	return b.build()
}

// Platoon buckets by pitcher handedness.
func Platoon(t *pitch.Table) Table {
	b := newBuilder(KindPlatoon)
	if !t.Has(pitch.ColPThrows) {
		return b.build()
	}
	all := t.All()
	b.add(VsLeft, all.Filter(func(p *pitch.Pitch) bool { return p.PThrows == pitch.Left }))
	b.add(VsRight, all.Filter(func(p *pitch.Pitch) bool { return p.PThrows == pitch.Right }))
	return b.build()
}

// HomeAway treats the batter as home when batting in the bottom half.
func HomeAway(t *pitch.Table) Table {
	b := newBuilder(KindHomeAway)
	if !t.Has(pitch.ColInningTopBot) {
		return b.build()
	}
	all := t.All()
	b.add(Home, all.Filter(func(p *pitch.Pitch) bool { return p.InningTopBot == pitch.Bottom }))
	b.add(Away, all.Filter(func(p *pitch.Pitch) bool { return p.InningTopBot == pitch.Top }))
	return b.build()
}

// Month buckets by calendar month of game_date, ascending.
func Month(t *pitch.Table) Table {
	b := newBuilder(KindMonth)
	if !t.Has(pitch.ColGameDate) {
		return b.build()
	}
	all := t.All()
	seen := make(map[time.Month]struct{})
	all.Each(func(p *pitch.Pitch) {
		if !p.GameDate.IsZero() {
			seen[p.GameDate.Month()] = struct{}{}
		}
	})
	months := make([]int, 0, len(seen))
	for m := range seen {
		months = append(months, int(m))
	}
	sort.Ints(months)
	for _, m := range months {
		month := time.Month(m)
		b.add(MonthLabel(month), all.Filter(func(p *pitch.Pitch) bool {
			return !p.GameDate.IsZero() && p.GameDate.Month() == month
		}))
	}
	return b.build()
}
