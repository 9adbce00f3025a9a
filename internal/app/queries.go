package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/okian/batterlab/internal/domain/matchup"
	"github.com/okian/batterlab/internal/domain/pitch"
	"github.com/okian/batterlab/internal/domain/splits"
	"github.com/okian/batterlab/internal/domain/stats"
	"github.com/okian/batterlab/internal/domain/trend"
	"github.com/okian/batterlab/internal/domain/zone"
	"github.com/okian/batterlab/pkg/metrics"
)

// Line returns the overall batting line of the session.
func (s *Service) Line(ctx context.Context, id uuid.UUID) (stats.BattingLine, error) {
	t, err := s.table(ctx, id)
	if err != nil {
		return stats.Empty, err
	}
	return stats.Aggregate(t.All()), nil
}

// Splits runs every classifier and returns the non-empty tables in
// classifier order.
func (s *Service) Splits(ctx context.Context, id uuid.UUID) ([]splits.Table, error) {
	t, err := s.table(ctx, id)
	if err != nil {
		return nil, err
	}
	out := make([]splits.Table, 0, len(splits.Kinds))
	for _, k := range splits.Kinds {
		st := classify(k, t)
		if !st.Empty() {
			out = append(out, st)
		}
	}
	return out, nil
}

// Split runs the classifier named kind. The table may be empty when the
// session lacks the columns it needs.
func (s *Service) Split(ctx context.Context, id uuid.UUID, kind string) (splits.Table, error) {
	k, err := splits.ParseKind(kind)
	if err != nil {
		return splits.Table{}, fmt.Errorf("%w: %q", ErrUnknownSplit, kind)
	}
	t, err := s.table(ctx, id)
	if err != nil {
		return splits.Table{}, err
	}
	return classify(k, t), nil
}

// CountGrid returns the 4x3 ball-strike grid of final-count lines.
func (s *Service) CountGrid(ctx context.Context, id uuid.UUID) ([]splits.GridCell, error) {
	t, err := s.table(ctx, id)
	if err != nil {
		return nil, err
	}
	return splits.CountGrid(classify(splits.KindCount, t)), nil
}

// BestSplit returns the row of kind with the highest stat.
func (s *Service) BestSplit(ctx context.Context, id uuid.UUID, kind, stat string) (splits.Row, bool, error) {
	st, err := s.Split(ctx, id, kind)
	if err != nil {
		return splits.Row{}, false, err
	}
	return splits.Best(st, stat)
}

// Zones returns the zone batting averages; fill completes the 3x3 grid.
func (s *Service) Zones(ctx context.Context, id uuid.UUID, fill bool) ([]zone.Cell, error) {
	t, err := s.table(ctx, id)
	if err != nil {
		return nil, err
	}
	cells := zone.BattingAverage(t)
	if fill {
		cells = zone.FillGrid(cells)
	}
	return cells, nil
}

// Discipline returns chase and zone-swing rates.
func (s *Service) Discipline(ctx context.Context, id uuid.UUID) (zone.Discipline, error) {
	t, err := s.table(ctx, id)
	if err != nil {
		return zone.Discipline{}, err
	}
	return zone.Analyze(t), nil
}

// Pitchers lists the pitchers faced, most pitches first.
func (s *Service) Pitchers(ctx context.Context, id uuid.UUID) ([]matchup.Pitcher, error) {
	t, err := s.table(ctx, id)
	if err != nil {
		return nil, err
	}
	return matchup.PitchersFaced(t), nil
}

// Matchup resolves the batter's history against pitcherID.
func (s *Service) Matchup(ctx context.Context, id uuid.UUID, pitcherID int64) (matchup.Matchup, error) {
	t, err := s.table(ctx, id)
	if err != nil {
		return matchup.Matchup{}, err
	}
	m, ok := matchup.Resolve(t, pitcherID)
	if !ok {
		return matchup.Matchup{}, fmt.Errorf("%w: %d", ErrPitcherNotFound, pitcherID)
	}
	return m, nil
}

// Trend returns the rolling xwOBA series.
func (s *Service) Trend(ctx context.Context, id uuid.UUID) (trend.Trend, error) {
	t, err := s.table(ctx, id)
	if err != nil {
		return trend.Trend{}, err
	}
	return trend.Compute(t, trend.WithWindow(s.trendWindow), trend.WithMinPeriods(s.trendMinPeriods)), nil
}

// Spray returns the batted-ball coordinates of every hit.
func (s *Service) Spray(ctx context.Context, id uuid.UUID) ([]trend.Hit, error) {
	t, err := s.table(ctx, id)
	if err != nil {
		return nil, err
	}
	return trend.Spray(t), nil
}

func (s *Service) table(ctx context.Context, id uuid.UUID) (*pitch.Table, error) {
	sess, err := s.Session(ctx, id)
	if err != nil {
		return nil, err
	}
	return sess.Table, nil
}

// classify runs one classifier and records its latency.
func classify(k splits.Kind, t *pitch.Table) splits.Table {
	began := time.Now()
	st, err := splits.ByKind(k, t)
	if errors.Is(err, splits.ErrUnknownKind) {
		return splits.Table{Kind: k}
	}
	metrics.RecordSplitLatency(string(k), float64(time.Since(began).Microseconds())/1000)
	return st
}
