package sparse

import (
	"fmt"
	"slices"
	"sort"

	"k3l.io/go-linalg/pkg/algebra"
	"k3l.io/go-linalg/pkg/shapes"
	spopt "k3l.io/go-linalg/pkg/sparse/option"
	"k3l.io/go-linalg/pkg/util"
)

// COOMatrix is a coordinate-format matrix.
//
// Entries are sorted lexicographically by (row, column) with no duplicate
// coordinates.  Entries may include explicitly stored zeros; operations
// treat them the same as implicit zeros.
type COOMatrix[T algebra.Element[T]] struct {
	Shape      shapes.Shape
	RowIndices []int
	ColIndices []int
	Entries    []T
}

// NewCOO wraps raw COO components after validating them.
func NewCOO[T algebra.Element[T]](
	shape shapes.Shape, rowIndices, colIndices []int, entries []T,
) (*COOMatrix[T], error) {
	if shape.Rank() != 2 {
		return nil, fmt.Errorf("shape %v is not a matrix: %w",
			shape, shapes.ErrDimensionMismatch)
	}
	rows, cols := shape.Dim(0), shape.Dim(1)
	if len(rowIndices) != len(entries) || len(colIndices) != len(entries) {
		return nil, MalformedMatrixError{Reason: fmt.Sprintf(
			"%d row and %d column indices for %d entries",
			len(rowIndices), len(colIndices), len(entries))}
	}
	for p := range entries {
		if r := rowIndices[p]; r < 0 || r >= rows {
			return nil, util.IndexOutOfBoundsError{Index: r, Bound: rows}
		}
		if c := colIndices[p]; c < 0 || c >= cols {
			return nil, util.IndexOutOfBoundsError{Index: c, Bound: cols}
		}
		if p == 0 {
			continue
		}
		switch {
		case rowIndices[p-1] > rowIndices[p]:
			return nil, MalformedMatrixError{
				Reason: "entries not sorted by (row, column)"}
		case rowIndices[p-1] < rowIndices[p]:
		case colIndices[p-1] > colIndices[p]:
			return nil, MalformedMatrixError{
				Reason: "entries not sorted by (row, column)"}
		case colIndices[p-1] == colIndices[p]:
			return nil, DuplicateIndexError{
				Row: rowIndices[p], Column: colIndices[p]}
		}
	}
	return &COOMatrix[T]{
		Shape:      shape,
		RowIndices: rowIndices,
		ColIndices: colIndices,
		Entries:    entries,
	}, nil
}

// FromTriples builds a COO matrix from entries in any order.
//
// The shape is inferred from the largest indices seen unless fixed via
// options.  Duplicate coordinates are an error unless spopt.Coalesce is
// given, in which case their values are added.  Zero values are dropped
// unless spopt.IncludeZero is given; coalescing happens first, so
// duplicates that cancel each other drop out as a single zero.
func FromTriples[T algebra.Element[T]](
	triples []Triple[T], opts ...spopt.Option,
) (*COOMatrix[T], error) {
	o := spopt.New(opts...)
	sorted := slices.Clone(triples)
	sort.Sort(TriplesByRowColumn[T](sorted))
	rows, cols := o.Row.Dim, o.Column.Dim
	var (
		rowIndices []int
		colIndices []int
		entries    []T
	)
	for _, tr := range sorted {
		switch {
		case tr.Row < 0 || (tr.Row >= rows && !o.Row.Grow):
			return nil, util.IndexOutOfBoundsError{Index: tr.Row, Bound: rows}
		case tr.Row >= rows:
			rows = tr.Row + 1
		}
		switch {
		case tr.Column < 0 || (tr.Column >= cols && !o.Column.Grow):
			return nil, util.IndexOutOfBoundsError{Index: tr.Column, Bound: cols}
		case tr.Column >= cols:
			cols = tr.Column + 1
		}
		if n := len(entries); n > 0 &&
			rowIndices[n-1] == tr.Row && colIndices[n-1] == tr.Column {
			if !o.Value.Coalesce {
				return nil, DuplicateIndexError{Row: tr.Row, Column: tr.Column}
			}
			entries[n-1] = entries[n-1].Add(tr.Value)
			continue
		}
		rowIndices = append(rowIndices, tr.Row)
		colIndices = append(colIndices, tr.Column)
		entries = append(entries, tr.Value)
	}
	m := &COOMatrix[T]{
		Shape:      shapes.Of(rows, cols),
		RowIndices: util.ShrinkWrap(rowIndices),
		ColIndices: util.ShrinkWrap(colIndices),
		Entries:    util.ShrinkWrap(entries),
	}
	if !o.Value.IncludeZero {
		m = m.DropZeros()
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *COOMatrix[T]) Rows() int { return m.Shape.Dim(0) }

// Cols returns the number of columns.
func (m *COOMatrix[T]) Cols() int { return m.Shape.Dim(1) }

// NNZ returns the number of stored entries,
// including explicitly stored zeros.
func (m *COOMatrix[T]) NNZ() int { return len(m.Entries) }

// At returns the entry stored at (i, j), or false if none is.
func (m *COOMatrix[T]) At(i, j int) (T, bool) {
	start, _ := slices.BinarySearch(m.RowIndices, i)
	for p := start; p < len(m.Entries) && m.RowIndices[p] == i; p++ {
		if m.ColIndices[p] == j {
			return m.Entries[p], true
		}
	}
	var zero T
	return zero, false
}

// Clone returns a deep copy.
func (m *COOMatrix[T]) Clone() *COOMatrix[T] {
	return &COOMatrix[T]{
		Shape:      m.Shape,
		RowIndices: slices.Clone(m.RowIndices),
		ColIndices: slices.Clone(m.ColIndices),
		Entries:    slices.Clone(m.Entries),
	}
}

// AddInv returns a copy with every entry negated.
func (m *COOMatrix[T]) AddInv() *COOMatrix[T] {
	return &COOMatrix[T]{
		Shape:      m.Shape,
		RowIndices: slices.Clone(m.RowIndices),
		ColIndices: slices.Clone(m.ColIndices),
		Entries:    util.Map(m.Entries, func(v T) T { return v.AddInv() }),
	}
}
