package dataset

// Melt reshapes a wide table into long form. Every column other than idColumn
// is treated as a category column whose name becomes a category value; cells
// become the value column. The result has three columns: the id column under
// its original name, a text category column and a numeric value column named
// categoryName and valueName.
//
// Rows come out category-major: all ids for the first category column, then
// all ids for the second, preserving the original column and row order. A
// wide table with zero category columns melts to a zero-row long table.
func Melt(wide *Table, idColumn, categoryName, valueName string) (*Table, error) {
	id, err := wide.Column(idColumn)
	if err != nil {
		return nil, err
	}

	var catCols []Column
	for _, c := range wide.cols {
		if c.Name == idColumn {
			continue
		}
		if c.Kind != Numeric {
			return nil, &ColumnKindError{Column: c.Name, Want: Numeric}
		}
		catCols = append(catCols, c)
	}

	rows := wide.NumRows()
	total := rows * len(catCols)
	outID := Column{Name: id.Name, Kind: id.Kind}
	cats := make([]string, 0, total)
	vals := make([]float64, 0, total)
	for _, c := range catCols {
		if id.Kind == Numeric {
			outID.Floats = append(outID.Floats, id.Floats...)
		} else {
			outID.Strings = append(outID.Strings, id.Strings...)
		}
		for i := 0; i < rows; i++ {
			cats = append(cats, c.Name)
			vals = append(vals, c.Floats[i])
		}
	}
	if id.Kind == Numeric && outID.Floats == nil {
		outID.Floats = []float64{}
	}
	if id.Kind == Text && outID.Strings == nil {
		outID.Strings = []string{}
	}

	return New(outID, TextColumn(categoryName, cats), NumericColumn(valueName, vals))
}

// Widen is the inverse of Melt: it groups a long table's rows by category
// back into one numeric column per category value. Categories and ids keep
// their first-appearance order, so widening the output of Melt reconstructs
// the original wide table exactly.
//
// Every category must carry the same id sequence; a ragged long table yields
// a DimensionMismatchError.
func Widen(long *Table, idColumn, categoryColumn, valueColumn string) (*Table, error) {
	id, err := long.Column(idColumn)
	if err != nil {
		return nil, err
	}
	cats, err := long.Strings(categoryColumn)
	if err != nil {
		return nil, err
	}
	vals, err := long.Floats(valueColumn)
	if err != nil {
		return nil, err
	}

	var order []string
	groups := make(map[string][]int)
	for i, cat := range cats {
		if _, seen := groups[cat]; !seen {
			order = append(order, cat)
		}
		groups[cat] = append(groups[cat], i)
	}

	if len(order) == 0 {
		empty := Column{Name: id.Name, Kind: id.Kind}
		if id.Kind == Numeric {
			empty.Floats = []float64{}
		} else {
			empty.Strings = []string{}
		}
		return New(empty)
	}

	first := groups[order[0]]
	cols := make([]Column, 0, len(order)+1)
	cols = append(cols, id.take(first))
	for _, cat := range order {
		idx := groups[cat]
		if len(idx) != len(first) {
			return nil, &DimensionMismatchError{Want: len(first), Got: len(idx)}
		}
		col := make([]float64, len(idx))
		for k, i := range idx {
			col[k] = vals[i]
		}
		cols = append(cols, NumericColumn(cat, col))
	}
	return New(cols...)
}

// Attach joins a second measured quantity onto a long table. For every base
// row it looks up the row in other with an equal (id, category) pair and
// appends other's value column under newName. An unmatched pair fails with a
// KeyLookupError; the join never null-fills.
func Attach(base, other *Table, idColumn, categoryColumn, valueColumn, newName string) (*Table, error) {
	baseID, err := base.Column(idColumn)
	if err != nil {
		return nil, err
	}
	baseCat, err := base.Column(categoryColumn)
	if err != nil {
		return nil, err
	}
	otherID, err := other.Column(idColumn)
	if err != nil {
		return nil, err
	}
	otherCat, err := other.Column(categoryColumn)
	if err != nil {
		return nil, err
	}
	otherVals, err := other.Floats(valueColumn)
	if err != nil {
		return nil, err
	}

	type key struct{ id, cat string }
	lookup := make(map[key]float64, other.NumRows())
	for i := 0; i < other.NumRows(); i++ {
		lookup[key{otherID.cell(i), otherCat.cell(i)}] = otherVals[i]
	}

	attached := make([]float64, base.NumRows())
	for i := 0; i < base.NumRows(); i++ {
		k := key{baseID.cell(i), baseCat.cell(i)}
		v, ok := lookup[k]
		if !ok {
			return nil, &KeyLookupError{ID: k.id, Category: k.cat}
		}
		attached[i] = v
	}
	return base.WithColumn(NumericColumn(newName, attached))
}
