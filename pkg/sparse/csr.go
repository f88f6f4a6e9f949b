// Package sparse handles sparse matrices and vectors in compressed
// sparse row (CSR) and coordinate (COO) formats, generic over the
// element types in the algebra package.
package sparse

import (
	"fmt"
	"slices"
	"sort"

	"k3l.io/go-linalg/pkg/algebra"
	"k3l.io/go-linalg/pkg/shapes"
	"k3l.io/go-linalg/pkg/util"
)

// CSRMatrix is a compressed sparse row matrix.
//
// Row i's entries occupy positions RowPointers[i] through RowPointers[i+1]
// (exclusive) of Entries and ColIndices.  Within a row, column indices are
// strictly ascending.  Entries may include explicitly stored zeros;
// operations treat them the same as implicit zeros.
type CSRMatrix[T algebra.Element[T]] struct {
	Shape       shapes.Shape
	RowPointers []int
	ColIndices  []int
	Entries     []T
}

// NewCSR wraps raw CSR components after validating them.
func NewCSR[T algebra.Element[T]](
	shape shapes.Shape, rowPointers, colIndices []int, entries []T,
) (*CSRMatrix[T], error) {
	if shape.Rank() != 2 {
		return nil, fmt.Errorf("shape %v is not a matrix: %w",
			shape, shapes.ErrDimensionMismatch)
	}
	rows, cols := shape.Dim(0), shape.Dim(1)
	if len(rowPointers) != rows+1 {
		return nil, MalformedMatrixError{Reason: fmt.Sprintf(
			"%d row pointers for %d rows", len(rowPointers), rows)}
	}
	if len(colIndices) != len(entries) {
		return nil, MalformedMatrixError{Reason: fmt.Sprintf(
			"%d column indices for %d entries", len(colIndices), len(entries))}
	}
	if rowPointers[0] != 0 || rowPointers[rows] != len(entries) {
		return nil, MalformedMatrixError{
			Reason: "row pointers do not span the entries"}
	}
	for i := 0; i < rows; i++ {
		if rowPointers[i] > rowPointers[i+1] {
			return nil, MalformedMatrixError{Reason: fmt.Sprintf(
				"row %d pointer decreases", i)}
		}
		for p := rowPointers[i]; p < rowPointers[i+1]; p++ {
			if c := colIndices[p]; c < 0 || c >= cols {
				return nil, util.IndexOutOfBoundsError{Index: c, Bound: cols}
			}
			if p > rowPointers[i] && colIndices[p-1] >= colIndices[p] {
				return nil, MalformedMatrixError{Reason: fmt.Sprintf(
					"row %d columns not strictly ascending", i)}
			}
		}
	}
	return &CSRMatrix[T]{
		Shape:       shape,
		RowPointers: rowPointers,
		ColIndices:  colIndices,
		Entries:     entries,
	}, nil
}

// Rows returns the number of rows.
func (m *CSRMatrix[T]) Rows() int { return m.Shape.Dim(0) }

// Cols returns the number of columns.
func (m *CSRMatrix[T]) Cols() int { return m.Shape.Dim(1) }

// NNZ returns the number of stored entries,
// including explicitly stored zeros.
func (m *CSRMatrix[T]) NNZ() int { return len(m.Entries) }

// At returns the entry stored at (i, j), or false if none is.
// The row index must be in range.
func (m *CSRMatrix[T]) At(i, j int) (T, bool) {
	start, end := m.RowPointers[i], m.RowPointers[i+1]
	k, found := slices.BinarySearch(m.ColIndices[start:end], j)
	if !found {
		var zero T
		return zero, false
	}
	return m.Entries[start+k], true
}

// Clone returns a deep copy.
func (m *CSRMatrix[T]) Clone() *CSRMatrix[T] {
	return &CSRMatrix[T]{
		Shape:       m.Shape,
		RowPointers: slices.Clone(m.RowPointers),
		ColIndices:  slices.Clone(m.ColIndices),
		Entries:     slices.Clone(m.Entries),
	}
}

// AddInv returns a copy with every entry negated.
func (m *CSRMatrix[T]) AddInv() *CSRMatrix[T] {
	return &CSRMatrix[T]{
		Shape:       m.Shape,
		RowPointers: slices.Clone(m.RowPointers),
		ColIndices:  slices.Clone(m.ColIndices),
		Entries:     util.Map(m.Entries, func(v T) T { return v.AddInv() }),
	}
}

// SortIndices restores ascending column order within each row,
// moving entries along with their column indices.
func (m *CSRMatrix[T]) SortIndices() {
	for i := 0; i < m.Rows(); i++ {
		start, end := m.RowPointers[i], m.RowPointers[i+1]
		sort.Sort(indexValueSort[T]{
			indices: m.ColIndices[start:end],
			entries: m.Entries[start:end],
		})
	}
}

// indexValueSort sorts parallel (index, value) slices by index.
type indexValueSort[T any] struct {
	indices []int
	entries []T
}

func (s indexValueSort[T]) Len() int           { return len(s.indices) }
func (s indexValueSort[T]) Less(i, j int) bool { return s.indices[i] < s.indices[j] }

func (s indexValueSort[T]) Swap(i, j int) {
	s.indices[i], s.indices[j] = s.indices[j], s.indices[i]
	s.entries[i], s.entries[j] = s.entries[j], s.entries[i]
}
