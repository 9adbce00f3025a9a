package trend

import (
	"time"

	"github.com/okian/batterlab/internal/domain/outcome"
	"github.com/okian/batterlab/internal/domain/pitch"
)

// Hit is one batted-ball hit for the spray chart.
type Hit struct {
	Event outcome.Event `json:"event"`
	Date  time.Time     `json:"game_date"`
	X     *float64      `json:"hc_x"`
	Y     *float64      `json:"hc_y"`
}

// Spray returns every base hit in log order with its hit coordinates.
func Spray(t *pitch.Table) []Hit {
	out := []Hit{}
	if !t.Has(pitch.ColEvents) {
		return out
	}
	t.All().Each(func(p *pitch.Pitch) {
		if !p.Event.IsHit() {
			return
		}
		h := Hit{Event: p.Event, Date: p.GameDate}
		if p.HitCoordX.Valid {
			x := p.HitCoordX.V
			h.X = &x
		}
		if p.HitCoordY.Valid {
			y := p.HitCoordY.V
			h.Y = &y
		}
		out = append(out, h)
	})
	return out
}
