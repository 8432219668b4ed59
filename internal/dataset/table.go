// Package dataset provides an in-memory column-oriented table for CSV
// experiment results, with wide-to-long reshaping and keyed joins.
//
// All operations are pure: they never mutate their receiver and return fresh
// tables, so any number of derived views can share one loaded file.
package dataset

import (
	"fmt"
	"strconv"
)

// Kind discriminates the value type of a column.
type Kind int

const (
	Numeric Kind = iota
	Text
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Text:
		return "text"
	}
	return "unknown"
}

// Column is an ordered sequence of scalar values under a name. Exactly one of
// Floats/Strings is populated, according to Kind.
type Column struct {
	Name    string
	Kind    Kind
	Floats  []float64
	Strings []string
}

// NumericColumn builds a numeric column over vals. The slice is not copied.
func NumericColumn(name string, vals []float64) Column {
	return Column{Name: name, Kind: Numeric, Floats: vals}
}

// TextColumn builds a text column over vals. The slice is not copied.
func TextColumn(name string, vals []string) Column {
	return Column{Name: name, Kind: Text, Strings: vals}
}

// Len returns the number of cells in the column.
func (c Column) Len() int {
	if c.Kind == Numeric {
		return len(c.Floats)
	}
	return len(c.Strings)
}

// cell returns the canonical string form of cell i, used as a join key and
// when re-widening a long table. Numeric cells use the shortest exact
// representation so 0.8 and 0.80 parsed from the same file stay equal.
func (c Column) cell(i int) string {
	if c.Kind == Numeric {
		return strconv.FormatFloat(c.Floats[i], 'g', -1, 64)
	}
	return c.Strings[i]
}

// take returns a new column holding the cells at idx, in order.
func (c Column) take(idx []int) Column {
	out := Column{Name: c.Name, Kind: c.Kind}
	if c.Kind == Numeric {
		out.Floats = make([]float64, 0, len(idx))
		for _, i := range idx {
			out.Floats = append(out.Floats, c.Floats[i])
		}
		return out
	}
	out.Strings = make([]string, 0, len(idx))
	for _, i := range idx {
		out.Strings = append(out.Strings, c.Strings[i])
	}
	return out
}

// Table is an ordered sequence of named columns of equal length. Column names
// are unique within a table.
type Table struct {
	cols  []Column
	index map[string]int
}

// New builds a table from cols, enforcing the table invariants: all columns
// share one row count and no name repeats.
func New(cols ...Column) (*Table, error) {
	t := &Table{cols: cols, index: make(map[string]int, len(cols))}
	rows := -1
	for i, c := range cols {
		if _, dup := t.index[c.Name]; dup {
			return nil, fmt.Errorf("duplicate column %q", c.Name)
		}
		t.index[c.Name] = i
		if rows == -1 {
			rows = c.Len()
			continue
		}
		if c.Len() != rows {
			return nil, &DimensionMismatchError{Want: rows, Got: c.Len()}
		}
	}
	return t, nil
}

// NumRows returns the row count; zero for a table without columns.
func (t *Table) NumRows() int {
	if len(t.cols) == 0 {
		return 0
	}
	return t.cols[0].Len()
}

// NumCols returns the column count.
func (t *Table) NumCols() int { return len(t.cols) }

// ColumnNames returns the column names in table order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name
	}
	return names
}

// HasColumn reports whether a column with the given name exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns the named column or a MissingColumnError.
func (t *Table) Column(name string) (Column, error) {
	i, ok := t.index[name]
	if !ok {
		return Column{}, &MissingColumnError{Column: name}
	}
	return t.cols[i], nil
}

// Floats returns the values of a numeric column. A text column yields a
// ColumnKindError rather than a silent conversion.
func (t *Table) Floats(name string) ([]float64, error) {
	c, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	if c.Kind != Numeric {
		return nil, &ColumnKindError{Column: name, Want: Numeric}
	}
	return c.Floats, nil
}

// Strings returns the values of a text column.
func (t *Table) Strings(name string) ([]string, error) {
	c, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	if c.Kind != Text {
		return nil, &ColumnKindError{Column: name, Want: Text}
	}
	return c.Strings, nil
}

// Filter returns a new table with the rows for which keep returns true,
// preserving relative order. Filtering an empty table yields an empty table
// of the same shape.
func (t *Table) Filter(keep func(row int) bool) *Table {
	var idx []int
	for i := 0; i < t.NumRows(); i++ {
		if keep(i) {
			idx = append(idx, i)
		}
	}
	return t.take(idx)
}

// WhereGreater filters to rows where the named numeric column exceeds
// threshold.
func (t *Table) WhereGreater(column string, threshold float64) (*Table, error) {
	vals, err := t.Floats(column)
	if err != nil {
		return nil, err
	}
	return t.Filter(func(i int) bool { return vals[i] > threshold }), nil
}

// Select returns a new table holding only the named columns, in the given
// order.
func (t *Table) Select(names ...string) (*Table, error) {
	cols := make([]Column, 0, len(names))
	for _, name := range names {
		c, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		cols = append(cols, c)
	}
	return New(cols...)
}

// Slice returns the half-open row range [from, to), clamped to the table.
func (t *Table) Slice(from, to int) *Table {
	if from < 0 {
		from = 0
	}
	if to > t.NumRows() {
		to = t.NumRows()
	}
	var idx []int
	for i := from; i < to; i++ {
		idx = append(idx, i)
	}
	return t.take(idx)
}

// WithColumn returns a new table with col appended.
func (t *Table) WithColumn(col Column) (*Table, error) {
	cols := make([]Column, len(t.cols), len(t.cols)+1)
	copy(cols, t.cols)
	return New(append(cols, col)...)
}

func (t *Table) take(idx []int) *Table {
	cols := make([]Column, len(t.cols))
	for i, c := range t.cols {
		cols[i] = c.take(idx)
	}
	out, err := New(cols...)
	if err != nil {
		// take preserves lengths and names; New cannot fail on its output.
		panic(err)
	}
	return out
}
