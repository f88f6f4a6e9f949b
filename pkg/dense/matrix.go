// Package dense implements dense row-major matrices over generic algebraic
// elements, together with the shape-driven dispatch of their
// multiplication kernels.
package dense

import (
	"fmt"

	"k3l.io/go-linalg/pkg/algebra"
	"k3l.io/go-linalg/pkg/shapes"
)

// Matrix is a dense rank-2 tensor.
// Data holds the entries in row-major order.
type Matrix[T algebra.Element[T]] struct {
	Shape shapes.Shape
	Data  []T
}

// New returns a matrix wrapping the given row-major data.
func New[T algebra.Element[T]](
	shape shapes.Shape, data []T,
) (*Matrix[T], error) {
	if shape.Rank() != 2 {
		return nil, fmt.Errorf(
			"shape %v is not a matrix: %w", shape, shapes.ErrDimensionMismatch)
	}
	n, err := shape.TotalEntriesInt()
	if err != nil {
		return nil, err
	}
	if len(data) != n {
		return nil, fmt.Errorf(
			"%d entries for shape %v: %w",
			len(data), shape, shapes.ErrDimensionMismatch)
	}
	return &Matrix[T]{Shape: shape, Data: data}, nil
}

// NewFilled returns a shape-sized matrix with every entry set to fill.
func NewFilled[T algebra.Element[T]](
	shape shapes.Shape, fill T,
) (*Matrix[T], error) {
	if shape.Rank() != 2 {
		return nil, fmt.Errorf(
			"shape %v is not a matrix: %w", shape, shapes.ErrDimensionMismatch)
	}
	n, err := shape.TotalEntriesInt()
	if err != nil {
		return nil, err
	}
	data := make([]T, n)
	algebra.Fill(data, fill)
	return &Matrix[T]{Shape: shape, Data: data}, nil
}

// Rows returns the row count.
func (m *Matrix[T]) Rows() int { return m.Shape.Dim(0) }

// Cols returns the column count.
func (m *Matrix[T]) Cols() int { return m.Shape.Dim(1) }

// At returns the entry at row i, column j.
func (m *Matrix[T]) At(i, j int) T { return m.Data[i*m.Cols()+j] }

// Set assigns the entry at row i, column j.
func (m *Matrix[T]) Set(i, j int, v T) { m.Data[i*m.Cols()+j] = v }

// Equals reports exact element-wise equality.
func (m *Matrix[T]) Equals(o *Matrix[T]) bool {
	if !m.Shape.Equals(o.Shape) {
		return false
	}
	for i, v := range m.Data {
		if !v.Equals(o.Data[i]) {
			return false
		}
	}
	return true
}

// Transpose returns a new matrix with rows and columns swapped.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	rows, cols := m.Rows(), m.Cols()
	data := make([]T, len(m.Data))
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data[j*rows+i] = m.Data[i*cols+j]
		}
	}
	return &Matrix[T]{Shape: m.Shape.Transposed(), Data: data}
}

// LiftComplex widens a real matrix element-wise.
func LiftComplex(m *Matrix[algebra.Real]) *Matrix[algebra.Complex] {
	return &Matrix[algebra.Complex]{
		Shape: m.Shape,
		Data:  algebra.LiftComplex(m.Data),
	}
}

// zeroed returns an n-entry slice filled with the additive identity,
// sampled from the operands.
func zeroed[T algebra.Element[T]](n int, samples ...[]T) []T {
	dest := make([]T, n)
	algebra.Fill(dest, algebra.ZeroOf(samples...))
	return dest
}
