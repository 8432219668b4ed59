package dataset

import "fmt"

// MissingColumnError indicates a referenced column is absent from a table.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("column %q not found", e.Column)
}

// ColumnKindError indicates a column holds the wrong kind of values for an
// operation (e.g., text where numbers are required).
type ColumnKindError struct {
	Column string
	Want   Kind
}

func (e *ColumnKindError) Error() string {
	return fmt.Sprintf("column %q is not %s", e.Column, e.Want)
}

// DimensionMismatchError indicates mismatched lengths between columns or
// paired inputs.
type DimensionMismatchError struct {
	Want int
	Got  int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("dimension mismatch: want length %d, got %d", e.Want, e.Got)
}

// KeyLookupError indicates an (id, category) pair without a match during a
// keyed join. Both tables are expected to come from the same experiment run,
// so an unmatched key is a data-integrity violation, not a missing value.
type KeyLookupError struct {
	ID       string
	Category string
}

func (e *KeyLookupError) Error() string {
	return fmt.Sprintf("no match for id %q, category %q", e.ID, e.Category)
}
