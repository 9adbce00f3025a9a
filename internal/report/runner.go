package report

import (
	"context"
	"fmt"
	"time"

	"github.com/okian/batterlab/internal/adapters/statcast"
	"github.com/okian/batterlab/pkg/logger"
)

// Run reads the configured file and writes the report.
func Run(ctx context.Context, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	log := logger.Named("report")
	start := time.Now()

	// Zero batter and bounds keep every row of the export.
	t, err := statcast.NewFileProvider(cfg.CSVPath).Fetch(ctx, 0, time.Time{}, time.Time{})
	if err != nil {
		return fmt.Errorf("read %s: %w", cfg.CSVPath, err)
	}
	r, err := Build(t, cfg.Split, cfg.PitcherID)
	if err != nil {
		return err
	}
	log.Debug(ctx, "report built",
		logger.String("csv", cfg.CSVPath),
		logger.Int("pitches", r.Pitches),
		logger.Int("splits", len(r.Splits)),
		logger.Duration("took", time.Since(start)))

	return Render(cfg.out(), r, cfg.Format)
}
