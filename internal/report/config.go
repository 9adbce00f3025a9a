package report

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/okian/batterlab/internal/domain/splits"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds configuration for one report run.
type Config struct {
	CSVPath   string    // Statcast CSV export to read
	PitcherID int64     // optional matchup pitcher
	Format    string    // text or json
	Split     string    // optional single split kind
	Out       io.Writer // defaults to stdout
}

// Validate reports every invalid field.
func (c *Config) Validate() error {
	var errs []error
	if c.CSVPath == "" {
		errs = append(errs, ErrMissingCSV)
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format))
	}
	if c.Split != "" {
		if _, err := splits.ParseKind(c.Split); err != nil {
			errs = append(errs, fmt.Errorf("split %q: %w", c.Split, err))
		}
	}
	if c.PitcherID < 0 {
		errs = append(errs, errors.New("pitcher id must be positive"))
	}
	return errors.Join(errs...)
}

func (c *Config) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}
