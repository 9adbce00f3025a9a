package statcast

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/okian/batterlab/internal/domain/pitch"
)

// FileProvider serves a local CSV export, filtered to the requested batter
// and date range when those columns are present.
type FileProvider struct {
	path string
}

// NewFileProvider returns a provider reading path on every Fetch.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

// Fetch decodes the file and keeps the matching rows. A zero batterID or
// zero bound disables that filter.
func (f *FileProvider) Fetch(ctx context.Context, batterID int64, start, end time.Time) (*pitch.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("statcast: open fixture: %w", err)
	}
	defer func() { _ = file.Close() }()

	t, err := Decode(file)
	if err != nil {
		return nil, err
	}

	cols := t.Columns()
	byBatter := batterID != 0 && cols.Has(pitch.ColBatter)
	byDate := cols.Has(pitch.ColGameDate)
	rows := make([]pitch.Pitch, 0, t.Len())
	t.All().Each(func(p *pitch.Pitch) {
		if byBatter && p.Batter != batterID {
			return
		}
		if byDate && !start.IsZero() && p.GameDate.Before(start) {
			return
		}
		if byDate && !end.IsZero() && p.GameDate.After(end) {
			return
		}
		rows = append(rows, *p)
	})
	return pitch.NewTable(rows, cols), nil
}
