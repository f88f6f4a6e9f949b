package sparse

import "fmt"

// DuplicateIndexError signals two entries at the same coordinates
// where at most one is allowed.
type DuplicateIndexError struct {
	Row    int
	Column int
}

func (e DuplicateIndexError) Error() string {
	return fmt.Sprintf("duplicate entry at (%d, %d)", e.Row, e.Column)
}

// MalformedMatrixError signals raw component slices that violate the
// CSR/COO format invariants.
type MalformedMatrixError struct {
	Reason string
}

func (e MalformedMatrixError) Error() string {
	return "malformed sparse matrix: " + e.Reason
}

// SliceRangeError signals an invalid half-open slice range.
type SliceRangeError struct {
	Start int
	End   int
	Bound int
}

func (e SliceRangeError) Error() string {
	return fmt.Sprintf("slice [%d, %d) out of range 0 <= start <= end <= %d",
		e.Start, e.End, e.Bound)
}
