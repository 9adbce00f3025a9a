package statcast

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/okian/batterlab/internal/domain/outcome"
	"github.com/okian/batterlab/internal/domain/pitch"
)

const dateLayout = "2006-01-02"

// setter stores one raw cell into a row. raw is never a null token.
type setter func(p *pitch.Pitch, raw string) error

var setters = map[pitch.Column]setter{
	pitch.ColGamePK:        int64Field(func(p *pitch.Pitch, v int64) { p.GamePK = v }),
	pitch.ColAtBatNumber:   intField(func(p *pitch.Pitch, v int) { p.AtBatNumber = v }),
	pitch.ColPitchNumber:   intField(func(p *pitch.Pitch, v int) { p.PitchNumber = v }),
	pitch.ColBatter:        int64Field(func(p *pitch.Pitch, v int64) { p.Batter = v }),
	pitch.ColPitcher:       int64Field(func(p *pitch.Pitch, v int64) { p.Pitcher = v }),
	pitch.ColPlayerName:    stringField(func(p *pitch.Pitch, v string) { p.PitcherName = v }),
	pitch.ColPThrows:       stringField(func(p *pitch.Pitch, v string) { p.PThrows = v }),
	pitch.ColInning:        intField(func(p *pitch.Pitch, v int) { p.Inning = v }),
	pitch.ColInningTopBot:  stringField(func(p *pitch.Pitch, v string) { p.InningTopBot = v }),
	pitch.ColOutsWhenUp:    intField(func(p *pitch.Pitch, v int) { p.OutsWhenUp = v }),
	pitch.ColOn1B:          nullInt(func(p *pitch.Pitch) *pitch.Int { return &p.On1B }),
	pitch.ColOn2B:          nullInt(func(p *pitch.Pitch) *pitch.Int { return &p.On2B }),
	pitch.ColOn3B:          nullInt(func(p *pitch.Pitch) *pitch.Int { return &p.On3B }),
	pitch.ColBalls:         intField(func(p *pitch.Pitch, v int) { p.Balls = v }),
	pitch.ColStrikes:       intField(func(p *pitch.Pitch, v int) { p.Strikes = v }),
	pitch.ColBatScoreDiff:  nullInt(func(p *pitch.Pitch) *pitch.Int { return &p.BatScoreDiff }),
	pitch.ColBatScore:      nullInt(func(p *pitch.Pitch) *pitch.Int { return &p.BatScore }),
	pitch.ColPostBatScore:  nullInt(func(p *pitch.Pitch) *pitch.Int { return &p.PostBatScore }),
	pitch.ColEvents:        stringField(func(p *pitch.Pitch, v string) { p.Event = outcome.Event(v) }),
	pitch.ColDescription:   stringField(func(p *pitch.Pitch, v string) { p.Description = outcome.Description(v) }),
	pitch.ColZone:          nullInt(func(p *pitch.Pitch) *pitch.Int { return &p.Zone }),
	pitch.ColPlateX:        nullFloat(func(p *pitch.Pitch) *pitch.Float { return &p.PlateX }),
	pitch.ColPlateZ:        nullFloat(func(p *pitch.Pitch) *pitch.Float { return &p.PlateZ }),
	pitch.ColEstimatedWOBA: nullFloat(func(p *pitch.Pitch) *pitch.Float { return &p.EstimatedWOBA }),
	pitch.ColWOBAValue:     nullFloat(func(p *pitch.Pitch) *pitch.Float { return &p.WOBAValue }),
	pitch.ColWOBADenom:     nullFloat(func(p *pitch.Pitch) *pitch.Float { return &p.WOBADenom }),
	pitch.ColDeltaRunExp:   nullFloat(func(p *pitch.Pitch) *pitch.Float { return &p.DeltaRunExp }),
	pitch.ColHomeTeam:      stringField(func(p *pitch.Pitch, v string) { p.HomeTeam = v }),
	pitch.ColGameDate:      dateField,
	pitch.ColPitchType:     stringField(func(p *pitch.Pitch, v string) { p.PitchType = v }),
	pitch.ColPitchName:     stringField(func(p *pitch.Pitch, v string) { p.PitchName = v }),
	pitch.ColReleaseSpeed:  nullFloat(func(p *pitch.Pitch) *pitch.Float { return &p.ReleaseSpeed }),
	pitch.ColHitCoordX:     nullFloat(func(p *pitch.Pitch) *pitch.Float { return &p.HitCoordX }),
	pitch.ColHitCoordY:     nullFloat(func(p *pitch.Pitch) *pitch.Float { return &p.HitCoordY }),
}

// Decode reads a Statcast CSV export. Cells are matched to columns by header
// name; unknown headers are ignored and known headers that are absent stay
// missing in the resulting table's column set.
func Decode(r io.Reader) (*pitch.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return pitch.NewTable(nil, pitch.NewColumnSet()), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrDecode, err)
	}

	type binding struct {
		index int
		col   pitch.Column
		set   setter
	}
	var (
		bindings []binding
		cols     = pitch.NewColumnSet()
	)
	for i, name := range header {
		col := pitch.Column(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		set, ok := setters[col]
		if !ok || cols.Has(col) {
			continue
		}
		cols[col] = struct{}{}
		bindings = append(bindings, binding{index: i, col: col, set: set})
	}

	var rows []pitch.Pitch
	for line := 2; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrDecode, line, err)
		}
		var p pitch.Pitch
		for _, b := range bindings {
			if b.index >= len(record) {
				continue
			}
			raw := strings.TrimSpace(record[b.index])
			if isNull(raw) {
				continue
			}
			if err := b.set(&p, raw); err != nil {
				return nil, fmt.Errorf("%w: line %d: %s: %w", ErrDecode, line, b.col, err)
			}
		}
		rows = append(rows, p)
	}
	return pitch.NewTable(rows, cols), nil
}

func isNull(raw string) bool {
	switch strings.ToLower(raw) {
	case "", "na", "nan", "null", "none":
		return true
	}
	return false
}

// parseInt accepts integral floats ("3.0") as pandas exports write them.
func parseInt(raw string) (int64, error) {
	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	return int64(f), nil
}

func int64Field(assign func(p *pitch.Pitch, v int64)) setter {
	return func(p *pitch.Pitch, raw string) error {
		v, err := parseInt(raw)
		if err != nil {
			return err
		}
		assign(p, v)
		return nil
	}
}

func intField(assign func(p *pitch.Pitch, v int)) setter {
	return func(p *pitch.Pitch, raw string) error {
		v, err := parseInt(raw)
		if err != nil {
			return err
		}
		assign(p, int(v))
		return nil
	}
}

func nullInt(field func(p *pitch.Pitch) *pitch.Int) setter {
	return func(p *pitch.Pitch, raw string) error {
		v, err := parseInt(raw)
		if err != nil {
			return err
		}
		*field(p) = pitch.SomeInt(v)
		return nil
	}
}

func nullFloat(field func(p *pitch.Pitch) *pitch.Float) setter {
	return func(p *pitch.Pitch, raw string) error {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return err
		}
		*field(p) = pitch.SomeFloat(v)
		return nil
	}
}

func stringField(assign func(p *pitch.Pitch, v string)) setter {
	return func(p *pitch.Pitch, raw string) error {
		assign(p, raw)
		return nil
	}
}

func dateField(p *pitch.Pitch, raw string) error {
	// Some exports carry a time component.
	if len(raw) > len(dateLayout) {
		raw = raw[:len(dateLayout)]
	}
	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		return err
	}
	p.GameDate = d
	return nil
}
