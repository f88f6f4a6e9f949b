package sparse

import (
	"slices"
	"sort"

	"k3l.io/go-linalg/pkg/algebra"
)

// Transpose returns the transpose, built with a counting pass so that
// every output row keeps its column indices in ascending order without
// an extra sort.
func (m *CSRMatrix[T]) Transpose() *CSRMatrix[T] {
	rows, cols := m.Rows(), m.Cols()
	// histogram of entries per output row, i.e. per input column
	rowPointers := make([]int, cols+1)
	for _, c := range m.ColIndices {
		rowPointers[c+1]++
	}
	for i := 0; i < cols; i++ {
		rowPointers[i+1] += rowPointers[i]
	}
	colIndices := make([]int, len(m.ColIndices))
	entries := make([]T, len(m.Entries))
	cursor := slices.Clone(rowPointers[:cols])
	for i := 0; i < rows; i++ {
		for p := m.RowPointers[i]; p < m.RowPointers[i+1]; p++ {
			c := m.ColIndices[p]
			pos := cursor[c]
			cursor[c]++
			colIndices[pos] = i
			entries[pos] = m.Entries[p]
		}
	}
	return &CSRMatrix[T]{
		Shape:       m.Shape.Transposed(),
		RowPointers: rowPointers,
		ColIndices:  colIndices,
		Entries:     entries,
	}
}

// HermTransposeCSR returns the conjugate transpose of m.
func HermTransposeCSR[T algebra.ConjElement[T]](m *CSRMatrix[T]) *CSRMatrix[T] {
	t := m.Transpose()
	for p, v := range t.Entries {
		t.Entries[p] = v.Conj()
	}
	return t
}

// Transpose returns the transpose, with indices swapped and re-sorted
// into lexicographic order.
func (m *COOMatrix[T]) Transpose() *COOMatrix[T] {
	triples := make([]Triple[T], len(m.Entries))
	for p := range m.Entries {
		triples[p] = Triple[T]{
			Row:    m.ColIndices[p],
			Column: m.RowIndices[p],
			Value:  m.Entries[p],
		}
	}
	sort.Sort(TriplesByRowColumn[T](triples))
	rowIndices := make([]int, len(triples))
	colIndices := make([]int, len(triples))
	entries := make([]T, len(triples))
	for p, tr := range triples {
		rowIndices[p] = tr.Row
		colIndices[p] = tr.Column
		entries[p] = tr.Value
	}
	return &COOMatrix[T]{
		Shape:      m.Shape.Transposed(),
		RowIndices: rowIndices,
		ColIndices: colIndices,
		Entries:    entries,
	}
}

// HermTransposeCOO returns the conjugate transpose of m.
func HermTransposeCOO[T algebra.ConjElement[T]](m *COOMatrix[T]) *COOMatrix[T] {
	t := m.Transpose()
	for p, v := range t.Entries {
		t.Entries[p] = v.Conj()
	}
	return t
}
