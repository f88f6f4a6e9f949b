package sparse

import (
	"slices"

	"k3l.io/go-linalg/pkg/algebra"
	"k3l.io/go-linalg/pkg/dense"
	"k3l.io/go-linalg/pkg/shapes"
	"k3l.io/go-linalg/pkg/util"
)

// ToCSR converts to compressed sparse row format.  Entries are already
// in row-major order, so only the row pointers need to be built.
func (m *COOMatrix[T]) ToCSR() *CSRMatrix[T] {
	rowPointers := make([]int, m.Rows()+1)
	for _, r := range m.RowIndices {
		rowPointers[r+1]++
	}
	for i := 0; i < m.Rows(); i++ {
		rowPointers[i+1] += rowPointers[i]
	}
	return &CSRMatrix[T]{
		Shape:       m.Shape,
		RowPointers: rowPointers,
		ColIndices:  slices.Clone(m.ColIndices),
		Entries:     slices.Clone(m.Entries),
	}
}

// ToCOO converts to coordinate format, expanding the row pointers into
// per-entry row indices.
func (m *CSRMatrix[T]) ToCOO() *COOMatrix[T] {
	rowIndices := make([]int, len(m.Entries))
	for i := 0; i < m.Rows(); i++ {
		for p := m.RowPointers[i]; p < m.RowPointers[i+1]; p++ {
			rowIndices[p] = i
		}
	}
	return &COOMatrix[T]{
		Shape:      m.Shape,
		RowIndices: rowIndices,
		ColIndices: slices.Clone(m.ColIndices),
		Entries:    slices.Clone(m.Entries),
	}
}

// ToDense scatters the stored entries into a dense matrix.
// The implicit-zero fill value is sampled from the stored entries.
func (m *CSRMatrix[T]) ToDense() (*dense.Matrix[T], error) {
	n, err := m.Shape.TotalEntriesInt()
	if err != nil {
		return nil, err
	}
	data := make([]T, n)
	algebra.Fill(data, algebra.ZeroOf(m.Entries))
	cols := m.Cols()
	for i := 0; i < m.Rows(); i++ {
		rowStart := i * cols
		for p := m.RowPointers[i]; p < m.RowPointers[i+1]; p++ {
			data[rowStart+m.ColIndices[p]] = m.Entries[p]
		}
	}
	return &dense.Matrix[T]{Shape: m.Shape, Data: data}, nil
}

// ToDense scatters the stored entries into a dense matrix.
// The implicit-zero fill value is sampled from the stored entries.
func (m *COOMatrix[T]) ToDense() (*dense.Matrix[T], error) {
	n, err := m.Shape.TotalEntriesInt()
	if err != nil {
		return nil, err
	}
	data := make([]T, n)
	algebra.Fill(data, algebra.ZeroOf(m.Entries))
	cols := m.Cols()
	for p, i := range m.RowIndices {
		data[i*cols+m.ColIndices[p]] = m.Entries[p]
	}
	return &dense.Matrix[T]{Shape: m.Shape, Data: data}, nil
}

// FromDense collects the non-zero entries of a dense matrix.
func FromDense[T algebra.Element[T]](m *dense.Matrix[T]) *COOMatrix[T] {
	var (
		rowIndices []int
		colIndices []int
		entries    []T
	)
	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := m.Data[i*cols+j]
			if v.IsZero() {
				continue
			}
			rowIndices = append(rowIndices, i)
			colIndices = append(colIndices, j)
			entries = append(entries, v)
		}
	}
	return &COOMatrix[T]{
		Shape:      m.Shape,
		RowIndices: util.ShrinkWrap(rowIndices),
		ColIndices: util.ShrinkWrap(colIndices),
		Entries:    util.ShrinkWrap(entries),
	}
}

// DropZeros returns a copy without explicitly stored zero entries.
func (m *CSRMatrix[T]) DropZeros() *CSRMatrix[T] {
	rowPointers := make([]int, m.Rows()+1)
	var (
		colIndices []int
		entries    []T
	)
	for i := 0; i < m.Rows(); i++ {
		for p := m.RowPointers[i]; p < m.RowPointers[i+1]; p++ {
			if m.Entries[p].IsZero() {
				continue
			}
			colIndices = append(colIndices, m.ColIndices[p])
			entries = append(entries, m.Entries[p])
		}
		rowPointers[i+1] = len(entries)
	}
	return &CSRMatrix[T]{
		Shape:       m.Shape,
		RowPointers: rowPointers,
		ColIndices:  util.ShrinkWrap(colIndices),
		Entries:     util.ShrinkWrap(entries),
	}
}

// DropZeros returns a copy without explicitly stored zero entries.
func (m *COOMatrix[T]) DropZeros() *COOMatrix[T] {
	var (
		rowIndices []int
		colIndices []int
		entries    []T
	)
	for p, v := range m.Entries {
		if v.IsZero() {
			continue
		}
		rowIndices = append(rowIndices, m.RowIndices[p])
		colIndices = append(colIndices, m.ColIndices[p])
		entries = append(entries, v)
	}
	return &COOMatrix[T]{
		Shape:      m.Shape,
		RowIndices: util.ShrinkWrap(rowIndices),
		ColIndices: util.ShrinkWrap(colIndices),
		Entries:    util.ShrinkWrap(entries),
	}
}

// Flatten folds the matrix into a single row.
func (m *CSRMatrix[T]) Flatten() (*CSRMatrix[T], error) {
	return m.FlattenAxis(0)
}

// FlattenAxis flattens along the given axis.  Axis 0 folds all rows
// into one, remapping each entry's column to its row-major flat
// position; axis 1 folds into a single column, rebuilding the row
// pointers from a histogram of flat positions.
func (m *CSRMatrix[T]) FlattenAxis(axis int) (*CSRMatrix[T], error) {
	n, err := m.Shape.TotalEntriesInt()
	if err != nil {
		return nil, err
	}
	cols := m.Cols()
	switch axis {
	case 0:
		colIndices := make([]int, len(m.Entries))
		for i := 0; i < m.Rows(); i++ {
			for p := m.RowPointers[i]; p < m.RowPointers[i+1]; p++ {
				colIndices[p] = i*cols + m.ColIndices[p]
			}
		}
		return &CSRMatrix[T]{
			Shape:       shapes.Of(1, n),
			RowPointers: []int{0, len(m.Entries)},
			ColIndices:  colIndices,
			Entries:     slices.Clone(m.Entries),
		}, nil
	case 1:
		rowPointers := make([]int, n+1)
		for i := 0; i < m.Rows(); i++ {
			for p := m.RowPointers[i]; p < m.RowPointers[i+1]; p++ {
				rowPointers[i*cols+m.ColIndices[p]+1] = 1
			}
		}
		for f := 0; f < n; f++ {
			rowPointers[f+1] += rowPointers[f]
		}
		return &CSRMatrix[T]{
			Shape:       shapes.Of(n, 1),
			RowPointers: rowPointers,
			ColIndices:  make([]int, len(m.Entries)),
			Entries:     slices.Clone(m.Entries),
		}, nil
	default:
		return nil, util.IndexOutOfBoundsError{Index: axis, Bound: 2}
	}
}

// Flatten folds the matrix into a single row.
func (m *COOMatrix[T]) Flatten() (*COOMatrix[T], error) {
	return m.FlattenAxis(0)
}

// FlattenAxis flattens along the given axis.  Axis 0 folds all rows
// into one, axis 1 into a single column; either way each entry moves to
// its row-major flat position, which preserves the lexicographic entry
// order.
func (m *COOMatrix[T]) FlattenAxis(axis int) (*COOMatrix[T], error) {
	n, err := m.Shape.TotalEntriesInt()
	if err != nil {
		return nil, err
	}
	if axis != 0 && axis != 1 {
		return nil, util.IndexOutOfBoundsError{Index: axis, Bound: 2}
	}
	cols := m.Cols()
	flat := make([]int, len(m.Entries))
	for p, i := range m.RowIndices {
		flat[p] = i*cols + m.ColIndices[p]
	}
	out := &COOMatrix[T]{Entries: slices.Clone(m.Entries)}
	if axis == 0 {
		out.Shape = shapes.Of(1, n)
		out.RowIndices = make([]int, len(flat))
		out.ColIndices = flat
	} else {
		out.Shape = shapes.Of(n, 1)
		out.RowIndices = flat
		out.ColIndices = make([]int, len(flat))
	}
	return out, nil
}

// Slice copies the sub-matrix covering rows [rowStart, rowEnd) and
// columns [colStart, colEnd).  Empty ranges are allowed.
func (m *CSRMatrix[T]) Slice(
	rowStart, rowEnd, colStart, colEnd int,
) (*CSRMatrix[T], error) {
	if rowStart < 0 || rowStart > rowEnd || rowEnd > m.Rows() {
		return nil, SliceRangeError{
			Start: rowStart, End: rowEnd, Bound: m.Rows()}
	}
	if colStart < 0 || colStart > colEnd || colEnd > m.Cols() {
		return nil, SliceRangeError{
			Start: colStart, End: colEnd, Bound: m.Cols()}
	}
	rowPointers := make([]int, rowEnd-rowStart+1)
	var (
		colIndices []int
		entries    []T
	)
	for i := rowStart; i < rowEnd; i++ {
		for p := m.RowPointers[i]; p < m.RowPointers[i+1]; p++ {
			c := m.ColIndices[p]
			if c < colStart {
				continue
			}
			if c >= colEnd {
				break
			}
			colIndices = append(colIndices, c-colStart)
			entries = append(entries, m.Entries[p])
		}
		rowPointers[i-rowStart+1] = len(entries)
	}
	return &CSRMatrix[T]{
		Shape:       shapes.Of(rowEnd-rowStart, colEnd-colStart),
		RowPointers: rowPointers,
		ColIndices:  util.ShrinkWrap(colIndices),
		Entries:     util.ShrinkWrap(entries),
	}, nil
}
