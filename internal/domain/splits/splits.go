// Package splits partitions the event log into labelled buckets and
// aggregates each bucket into a BattingLine.
//
// Every classifier is a pure function of the table. A classifier whose
// required columns are missing returns an empty Table and never fails.
package splits

import (
	"github.com/okian/batterlab/internal/domain/pitch"
	"github.com/okian/batterlab/internal/domain/stats"
)

// Kind names a split classifier.
type Kind string

// Classifier kinds, in the order All reports them.
const (
	KindClutch     Kind = "clutch"
	KindCount      Kind = "count"
	KindFirstPitch Kind = "first_pitch"
	KindBallpark   Kind = "ballpark"
	KindInning     Kind = "inning"
	KindPlatoon    Kind = "platoon"
	KindHomeAway   Kind = "home_away"
	KindMonth      Kind = "month"
)

// Kinds lists every classifier kind in report order.
var Kinds = []Kind{
	KindClutch, KindCount, KindFirstPitch, KindBallpark,
	KindInning, KindPlatoon, KindHomeAway, KindMonth,
}

// Row is one labelled bucket. The label serialises first, followed by the
// BattingLine columns.
type Row struct {
	Split string `json:"Split"`
	stats.BattingLine
}

// Table is the ordered result of one classifier.
type Table struct {
	Kind Kind  `json:"kind"`
	Rows []Row `json:"rows"`
}

// Len returns the number of rows.
func (t Table) Len() int { return len(t.Rows) }

// Empty reports whether the table has no rows.
func (t Table) Empty() bool { return len(t.Rows) == 0 }

// Get returns the row labelled split.
func (t Table) Get(split string) (Row, bool) {
	for _, r := range t.Rows {
		if r.Split == split {
			return r, true
		}
	}
	return Row{}, false
}

// Labels returns the row labels in order.
func (t Table) Labels() []string {
	out := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r.Split
	}
	return out
}

// Lines returns the BattingLines in row order.
func (t Table) Lines() []stats.BattingLine {
	out := make([]stats.BattingLine, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r.BattingLine
	}
	return out
}

// Classifier builds one split table from the event log.
type Classifier func(t *pitch.Table) Table

var classifiers = map[Kind]Classifier{
	KindClutch:     Clutch,
	KindCount:      Count,
	KindFirstPitch: FirstPitch,
	KindBallpark:   Ballpark,
	KindInning:     Inning,
	KindPlatoon:    Platoon,
	KindHomeAway:   HomeAway,
	KindMonth:      Month,
}

// ParseKind validates a classifier name.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := classifiers[k]; !ok {
		return "", ErrUnknownKind
	}
	return k, nil
}

// ByKind runs the classifier named k.
func ByKind(k Kind, t *pitch.Table) (Table, error) {
	c, ok := classifiers[k]
	if !ok {
		return Table{}, ErrUnknownKind
	}
	return c(t), nil
}

// All runs every classifier and returns the non-empty tables in Kinds order.
func All(t *pitch.Table) []Table {
	out := make([]Table, 0, len(Kinds))
	for _, k := range Kinds {
		if st := classifiers[k](t); !st.Empty() {
			out = append(out, st)
		}
	}
	return out
}

// builder accumulates rows for one table.
type builder struct {
	table Table
}

func newBuilder(k Kind) *builder {
	return &builder{table: Table{Kind: k, Rows: []Row{}}}
}

// add aggregates v under label unless v is empty.
func (b *builder) add(label string, v pitch.View) {
	if v.Len() == 0 {
		return
	}
	b.table.Rows = append(b.table.Rows, Row{Split: label, BattingLine: stats.Aggregate(v)})
}

func (b *builder) build() Table { return b.table }

// empty returns a table with no rows for k.
func empty(k Kind) Table {
	return Table{Kind: k, Rows: []Row{}}
}
