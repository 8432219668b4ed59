package dataset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func wideFixture(t *testing.T) *Table {
	t.Helper()
	w, err := New(
		NumericColumn("alpha", []float64{0.1, 0.2, 0.3}),
		NumericColumn("0.80", []float64{1.0, 1.1, 1.2}),
		NumericColumn("0.90", []float64{2.0, 2.1, 2.2}),
	)
	require.NoError(t, err)
	return w
}

func TestNewEnforcesInvariants(t *testing.T) {
	_, err := New(
		NumericColumn("a", []float64{1, 2}),
		NumericColumn("b", []float64{1, 2, 3}),
	)
	var dim *DimensionMismatchError
	require.ErrorAs(t, err, &dim)
	require.Equal(t, 2, dim.Want)
	require.Equal(t, 3, dim.Got)

	_, err = New(
		NumericColumn("a", []float64{1}),
		NumericColumn("a", []float64{2}),
	)
	require.Error(t, err)
}

func TestColumnLookup(t *testing.T) {
	w := wideFixture(t)

	vals, err := w.Floats("alpha")
	require.NoError(t, err)
	require.Equal(t, []float64{0.1, 0.2, 0.3}, vals)

	_, err = w.Floats("delta")
	var missing *MissingColumnError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "delta", missing.Column)

	_, err = w.Strings("alpha")
	var kind *ColumnKindError
	require.ErrorAs(t, err, &kind)
}

func TestFilterPreservesOrderAndShape(t *testing.T) {
	w := wideFixture(t)

	got, err := w.WhereGreater("alpha", 0.15)
	require.NoError(t, err)
	require.Equal(t, 2, got.NumRows())
	vals, err := got.Floats("alpha")
	require.NoError(t, err)
	require.Equal(t, []float64{0.2, 0.3}, vals)

	// Filtering away everything keeps the column set.
	empty := w.Filter(func(int) bool { return false })
	require.Equal(t, 0, empty.NumRows())
	require.Equal(t, w.ColumnNames(), empty.ColumnNames())

	// Filter on an empty table returns an empty table of the same shape.
	again := empty.Filter(func(int) bool { return true })
	require.Equal(t, 0, again.NumRows())
	require.Equal(t, w.ColumnNames(), again.ColumnNames())
}

func TestSliceClampsToTable(t *testing.T) {
	w := wideFixture(t)
	s := w.Slice(1, 10)
	require.Equal(t, 2, s.NumRows())
	vals, err := s.Floats("alpha")
	require.NoError(t, err)
	require.Equal(t, []float64{0.2, 0.3}, vals)
}

func TestMeltCategoryMajorOrder(t *testing.T) {
	w := wideFixture(t)

	long, err := Melt(w, "alpha", "delta", "phi")
	require.NoError(t, err)
	require.Equal(t, []string{"alpha", "delta", "phi"}, long.ColumnNames())
	require.Equal(t, 6, long.NumRows())

	ids, err := long.Floats("alpha")
	require.NoError(t, err)
	cats, err := long.Strings("delta")
	require.NoError(t, err)
	vals, err := long.Floats("phi")
	require.NoError(t, err)

	// All ids for the first category column, then all for the second.
	require.Equal(t, []float64{0.1, 0.2, 0.3, 0.1, 0.2, 0.3}, ids)
	require.Equal(t, []string{"0.80", "0.80", "0.80", "0.90", "0.90", "0.90"}, cats)
	require.Equal(t, []float64{1.0, 1.1, 1.2, 2.0, 2.1, 2.2}, vals)
}

func TestMeltMissingIDColumn(t *testing.T) {
	w := wideFixture(t)
	_, err := Melt(w, "beta", "delta", "phi")
	var missing *MissingColumnError
	require.ErrorAs(t, err, &missing)
}

func TestMeltZeroCategoryColumns(t *testing.T) {
	w, err := New(NumericColumn("alpha", []float64{0.1, 0.2}))
	require.NoError(t, err)

	long, err := Melt(w, "alpha", "delta", "phi")
	require.NoError(t, err)
	require.Equal(t, 0, long.NumRows())
	require.Equal(t, 3, long.NumCols())
}

func TestMeltWidenRoundTrip(t *testing.T) {
	w := wideFixture(t)

	long, err := Melt(w, "alpha", "delta", "phi")
	require.NoError(t, err)
	back, err := Widen(long, "alpha", "delta", "phi")
	require.NoError(t, err)

	require.Equal(t, w.ColumnNames(), back.ColumnNames())
	for _, name := range w.ColumnNames() {
		want, err := w.Floats(name)
		require.NoError(t, err)
		got, err := back.Floats(name)
		require.NoError(t, err)
		require.Equal(t, want, got, "column %s", name)
	}
}

func TestWidenRaggedCategories(t *testing.T) {
	long, err := New(
		NumericColumn("alpha", []float64{0.1, 0.2, 0.1}),
		TextColumn("delta", []string{"0.80", "0.80", "0.90"}),
		NumericColumn("phi", []float64{1, 2, 3}),
	)
	require.NoError(t, err)

	_, err = Widen(long, "alpha", "delta", "phi")
	var dim *DimensionMismatchError
	require.ErrorAs(t, err, &dim)
}

func TestAttach(t *testing.T) {
	w := wideFixture(t)
	phi, err := Melt(w, "alpha", "delta", "phi")
	require.NoError(t, err)

	perc, err := New(
		NumericColumn("alpha", []float64{0.1, 0.2, 0.3}),
		NumericColumn("0.80", []float64{10, 20, 30}),
		NumericColumn("0.90", []float64{40, 50, 60}),
	)
	require.NoError(t, err)
	percLong, err := Melt(perc, "alpha", "delta", "percentage")
	require.NoError(t, err)

	joined, err := Attach(phi, percLong, "alpha", "delta", "percentage", "percentage")
	require.NoError(t, err)
	require.Equal(t, []string{"alpha", "delta", "phi", "percentage"}, joined.ColumnNames())

	vals, err := joined.Floats("percentage")
	require.NoError(t, err)
	require.Equal(t, []float64{10, 20, 30, 40, 50, 60}, vals)
}

func TestAttachUnmatchedKey(t *testing.T) {
	w := wideFixture(t)
	phi, err := Melt(w, "alpha", "delta", "phi")
	require.NoError(t, err)

	other, err := New(
		NumericColumn("alpha", []float64{0.1}),
		TextColumn("delta", []string{"0.80"}),
		NumericColumn("percentage", []float64{10}),
	)
	require.NoError(t, err)

	_, err = Attach(phi, other, "alpha", "delta", "percentage", "percentage")
	var lookup *KeyLookupError
	require.ErrorAs(t, err, &lookup)
	require.Equal(t, "0.80", lookup.Category)
}

func TestErrorsAreDistinguishable(t *testing.T) {
	var err error = &MissingColumnError{Column: "x"}
	var missing *MissingColumnError
	require.True(t, errors.As(err, &missing))
	require.Contains(t, err.Error(), `"x"`)
}
