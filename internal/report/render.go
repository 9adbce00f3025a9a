package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/okian/batterlab/internal/domain/stats"
)

// lineColumns are the BattingLine columns printed in text tables.
var lineColumns = []string{"PA", "AB", "H", "2B", "3B", "HR", "RBI", "BB", "SO", "BA", "OBP", "SLG", "OPS"}

// Render writes r to w in the given format.
func Render(w io.Writer, r Report, format string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatText:
		return renderText(w, r)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func renderText(w io.Writer, r Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(tw, "pitches: %d\n\n", r.Pitches)
	writeHeader(tw, "Overall")
	writeLine(tw, "All", r.Line)

	for _, st := range r.Splits {
		fmt.Fprintln(tw)
		writeHeader(tw, string(st.Kind))
		if st.Empty() {
			fmt.Fprintln(tw, "(no data)\t")
		}
		for _, row := range st.Rows {
			writeLine(tw, row.Split, row.BattingLine)
		}
	}
	if r.TopPark != nil {
		fmt.Fprintf(tw, "\ntop park: %s (%s) OPS %.3f\n", r.TopPark.Park.Name, r.TopPark.Park.Code, r.TopPark.Row.OPS)
	}

	fmt.Fprintln(tw, "\nzones\t")
	fmt.Fprintln(tw, "x\tz\tH\tAB\tBA\t")
	for _, c := range r.Zones {
		if !c.HasData {
			fmt.Fprintf(tw, "%s\t%s\t-\t-\t-\t\n", c.X, c.Z)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%.3f\t\n", c.X, c.Z, c.Hits, c.AtBats, c.Avg)
	}

	d := r.Discipline
	fmt.Fprintln(tw, "\ndiscipline\t")
	fmt.Fprintf(tw, "pitches\t%d\t\n", d.Pitches)
	fmt.Fprintf(tw, "chase rate\t%.1f%%\t\n", d.ChaseRate)
	fmt.Fprintf(tw, "zone swing rate\t%.1f%%\t\n", d.ZoneSwingRate)
	for _, s := range d.BySituation {
		fmt.Fprintf(tw, "%s\t%d/%d\t%.1f%%\t\n", s.Situation, s.Chases, s.OutOfZone, s.ChaseRate)
	}

	fmt.Fprintln(tw, "\npitchers faced\t")
	for _, p := range r.Pitchers {
		fmt.Fprintf(tw, "%s\t%d\t%d\t\n", p.Name, p.ID, p.Pitches)
	}

	if m := r.Matchup; m != nil {
		fmt.Fprintln(tw)
		writeHeader(tw, "vs "+m.Pitcher.Name)
		writeLine(tw, "All", m.Line)
		for _, o := range m.Outcomes {
			fmt.Fprintf(tw, "%s\t%d\t%.1f%%\t\n", o.Event, o.Count, o.Percent)
		}
	}
	return tw.Flush()
}

func writeHeader(w io.Writer, title string) {
	fmt.Fprintf(w, "%s\t%s\t\n", title, strings.Join(lineColumns, "\t"))
}

func writeLine(w io.Writer, label string, l stats.BattingLine) {
	cells := make([]string, 0, len(lineColumns))
	for _, c := range lineColumns {
		v, _ := l.Stat(c)
		switch c {
		case "BA", "OBP", "SLG", "OPS":
			cells = append(cells, fmt.Sprintf("%.3f", v))
		default:
			cells = append(cells, fmt.Sprintf("%d", int(v)))
		}
	}
	fmt.Fprintf(w, "%s\t%s\t\n", label, strings.Join(cells, "\t"))
}
