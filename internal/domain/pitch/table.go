package pitch

import "sort"

// Table is an immutable event log plus the set of columns its source carried.
// Rows must not be modified once the table is built.
type Table struct {
	rows []Pitch
	cols ColumnSet
}

// NewTable wraps rows. A nil cols means every known column is present.
func NewTable(rows []Pitch, cols ColumnSet) *Table {
	if cols == nil {
		cols = NewColumnSet(AllColumns...)
	}
	return &Table{rows: rows, cols: cols}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Columns returns the column set of the table.
func (t *Table) Columns() ColumnSet {
	if t == nil {
		return ColumnSet{}
	}
	return t.cols
}

// Has reports whether the table carries column c.
func (t *Table) Has(c Column) bool {
	return t.Columns().Has(c)
}

// All returns a view over every row.
func (t *Table) All() View {
	if t == nil {
		return View{}
	}
	idx := make([]int, len(t.rows))
	for i := range idx {
		idx[i] = i
	}
	return View{table: t, idx: idx}
}

// View is an ordered index set over a Table. Views never copy rows.
type View struct {
	table *Table
	idx   []int
}

// Len returns the number of rows in the view.
func (v View) Len() int { return len(v.idx) }

// At returns the i-th row of the view.
func (v View) At(i int) *Pitch { return &v.table.rows[v.idx[i]] }

// Has reports whether the underlying table carries column c.
func (v View) Has(c Column) bool { return v.table.Has(c) }

// Table returns the table backing the view.
func (v View) Table() *Table { return v.table }

// Each calls fn for every row in view order.
func (v View) Each(fn func(p *Pitch)) {
	for _, i := range v.idx {
		fn(&v.table.rows[i])
	}
}

// Filter returns the rows for which keep returns true.
func (v View) Filter(keep func(p *Pitch) bool) View {
	out := make([]int, 0, len(v.idx))
	for _, i := range v.idx {
		if keep(&v.table.rows[i]) {
			out = append(out, i)
		}
	}
	return View{table: v.table, idx: out}
}

// Outcomes returns the terminal pitches of the view.
func (v View) Outcomes() View {
	return v.Filter(func(p *Pitch) bool { return p.Ends() })
}

// Keys returns the set of plate-appearance keys touched by the view.
func (v View) Keys() map[Key]struct{} {
	keys := make(map[Key]struct{})
	for _, i := range v.idx {
		keys[v.table.rows[i].Key()] = struct{}{}
	}
	return keys
}

// InKeys returns the rows whose plate-appearance key is in keys.
func (v View) InKeys(keys map[Key]struct{}) View {
	return v.Filter(func(p *Pitch) bool {
		_, ok := keys[p.Key()]
		return ok
	})
}

// Group is the ordered pitches of one plate appearance.
type Group struct {
	Key     Key
	Pitches View
}

// Last returns the last pitch of the group by pitch number.
func (g Group) Last() *Pitch {
	return g.Pitches.At(g.Pitches.Len() - 1)
}

// GroupByPA partitions the view into plate appearances. Groups are ordered by
// (game_pk, at_bat_number) and each group's pitches by pitch_number.
func (v View) GroupByPA() []Group {
	byKey := make(map[Key][]int)
	order := make([]Key, 0)
	for _, i := range v.idx {
		k := v.table.rows[i].Key()
		if _, ok := byKey[k]; !ok {
			order = append(order, k)
		}
		byKey[k] = append(byKey[k], i)
	}
	sort.Slice(order, func(a, b int) bool {
		if order[a].GamePK != order[b].GamePK {
			return order[a].GamePK < order[b].GamePK
		}
		return order[a].AtBatNumber < order[b].AtBatNumber
	})
	groups := make([]Group, 0, len(order))
	for _, k := range order {
		idx := byKey[k]
		sort.SliceStable(idx, func(a, b int) bool {
			return v.table.rows[idx[a]].PitchNumber < v.table.rows[idx[b]].PitchNumber
		})
		groups = append(groups, Group{Key: k, Pitches: View{table: v.table, idx: idx}})
	}
	return groups
}
