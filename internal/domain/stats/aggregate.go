package stats

import (
	"time"

	"github.com/okian/batterlab/internal/domain/outcome"
	"github.com/okian/batterlab/internal/domain/pitch"
)

// Aggregate computes the BattingLine for the rows of v. Input order does not
// matter and the underlying table is never modified.
//
// PA counts every plate appearance the rows touch, completed or not, while the
// counting stats only see terminal pitches inside v. AB is derived from the two
// and is not adjusted for sacrifices that fell outside the filter.
func Aggregate(v pitch.View) BattingLine {
	pa := len(v.Keys())

	outcomes := v.Outcomes()
	if outcomes.Len() == 0 {
		return Empty
	}

	var l BattingLine
	var singles int
	games := make(map[int64]struct{})
	dates := make(map[time.Time]struct{})

	outcomes.Each(func(p *pitch.Pitch) {
		games[p.GamePK] = struct{}{}
		if !p.GameDate.IsZero() {
			dates[p.GameDate] = struct{}{}
		}

		e := p.Event
		switch e {
		case outcome.Single:
			singles++
		case outcome.Double:
			l.B2++
		case outcome.Triple:
			l.B3++
		case outcome.HomeRun:
			l.HR++
		}
		if e.IsHit() {
			l.H++
		}
		if outcome.Walks.Has(e) {
			l.BB++
		}
		if e == outcome.IntentWalk {
			l.IBB++
		}
		if e == outcome.HitByPitch {
			l.HBP++
		}
		if e.IsStrikeout() {
			l.SO++
		}
		if outcome.SacHits.Has(e) {
			l.SH++
		}
		if outcome.SacFlies.Has(e) {
			l.SF++
		}
		if e.IsGroundDoublePlay() {
			l.GDP++
		}
	})

	l.PA = pa
	l.AB = pa - l.BB - l.HBP - l.SH - l.SF
	l.RBI = runsBattedIn(outcomes)
	l.TB = singles + 2*l.B2 + 3*l.B3 + 4*l.HR

	l.G = len(games)
	if l.G == 0 && v.Has(pitch.ColGameDate) {
		l.G = len(dates)
	}

	ba := ratio(l.H, l.AB)
	obp := ratio(l.H+l.BB+l.HBP, l.AB+l.BB+l.HBP+l.SF)
	slg := ratio(l.TB, l.AB)
	l.BA = Round(ba)
	l.OBP = Round(obp)
	l.SLG = Round(slg)
	l.OPS = Round(obp + slg)
	l.BAbip = Round(ratio(l.H-l.HR, l.AB-l.SO-l.HR))

	return l
}

// runsBattedIn credits RBI from the batting team's score change on each
// terminal pitch. Walks and hit-by-pitches only count with all three runner
// markers set; whether those runners were actually forced home is not checked.
//
// Without score columns it falls back to summing positive run expectancy over
// the same events, which only approximates RBI.
func runsBattedIn(outcomes pitch.View) int {
	if outcomes.Has(pitch.ColBatScore) && outcomes.Has(pitch.ColPostBatScore) {
		rbi := 0
		outcomes.Each(func(p *pitch.Pitch) {
			switch {
			case outcome.RBIEligible.Has(p.Event):
			case outcome.FreePasses.Has(p.Event) && p.BasesLoaded():
			default:
				return
			}
			if !p.BatScore.Valid || !p.PostBatScore.Valid {
				return
			}
			if change := p.PostBatScore.V - p.BatScore.V; change > 0 {
				rbi += int(change)
			}
		})
		return rbi
	}

	if outcomes.Has(pitch.ColDeltaRunExp) {
		var total float64
		outcomes.Each(func(p *pitch.Pitch) {
			if outcome.RBIEligible.Has(p.Event) && p.DeltaRunExp.Valid && p.DeltaRunExp.V > 0 {
				total += p.DeltaRunExp.V
			}
		})
		return int(total)
	}

	return 0
}
