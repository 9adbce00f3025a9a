package report

import "io"

// ShowHelp prints usage information for the report tool.
func ShowHelp(w io.Writer) {
	_, _ = io.WriteString(w, `batterlab split report
======================

Builds batting splits from a Baseball Savant CSV export.

Usage:
  go run ./cmd/splits-report -csv FILE [options]

Options:
  -csv string
        Statcast CSV export (required)
  -pitcher int
        Add the matchup against this pitcher id
  -format string
        text or json (default "text")
  -split string
        Only this split: clutch, count, first_pitch, ballpark, inning,
        platoon, home_away or month
  -verbose
        Enable debug logging
  -help
        Show this help message

Examples:
  go run ./cmd/splits-report -csv soto_2024.csv
  go run ./cmd/splits-report -csv soto_2024.csv -split platoon -format json
  go run ./cmd/splits-report -csv soto_2024.csv -pitcher 605400
`)
}
