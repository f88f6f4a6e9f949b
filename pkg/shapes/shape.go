// Package shapes provides immutable tensor shapes and the conformability
// checks shared by the dense and sparse matrix packages.
package shapes

import (
	"fmt"
	"math/big"
	"slices"
	"strconv"
	"strings"

	"k3l.io/go-linalg/pkg/util"
)

// Shape is an immutable tensor shape.
// The zero value is the rank-0 shape.
type Shape struct {
	dims []int
}

// New returns the shape with the given axis sizes.
func New(dims ...int) (Shape, error) {
	for _, d := range dims {
		if d < 0 {
			return Shape{}, NegativeDimError{Dim: d}
		}
	}
	return Shape{dims: slices.Clone(dims)}, nil
}

// Of is New except it panics upon a negative axis size.
func Of(dims ...int) Shape {
	return util.Must(New(dims...))
}

// Rank returns the number of axes.
func (s Shape) Rank() int { return len(s.dims) }

// Dim returns the size of the given axis.
func (s Shape) Dim(axis int) int { return s.dims[axis] }

// Dims returns a copy of all axis sizes.
func (s Shape) Dims() []int { return slices.Clone(s.dims) }

// Rows returns the size of axis 0.
func (s Shape) Rows() int { return s.dims[0] }

// Cols returns the size of axis 1.
func (s Shape) Cols() int { return s.dims[1] }

// TotalEntries returns the number of entries spanned by the shape.
// The count can exceed the int range, so it is returned as a big integer.
func (s Shape) TotalEntries() *big.Int {
	n := big.NewInt(1)
	for _, d := range s.dims {
		n.Mul(n, big.NewInt(int64(d)))
	}
	return n
}

// TotalEntriesInt is TotalEntries narrowed to int,
// with ErrTooManyEntries if the count does not fit.
func (s Shape) TotalEntriesInt() (int, error) {
	n := s.TotalEntries()
	if !n.IsInt64() || int64(int(n.Int64())) != n.Int64() {
		return 0, fmt.Errorf("shape %v: %w", s, ErrTooManyEntries)
	}
	return int(n.Int64()), nil
}

// Strides returns the row-major stride of each axis.
func (s Shape) Strides() []int {
	strides := make([]int, len(s.dims))
	stride := 1
	for i := len(s.dims) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= s.dims[i]
	}
	return strides
}

// FlatIndex maps an index tuple to its row-major flat offset.
// The tuple must have exactly one index per axis.
func (s Shape) FlatIndex(indices ...int) (int, error) {
	if len(indices) != len(s.dims) {
		return 0, fmt.Errorf(
			"%d indices for shape %v: %w", len(indices), s, ErrDimensionMismatch)
	}
	flat := 0
	stride := 1
	for i := len(s.dims) - 1; i >= 0; i-- {
		if indices[i] < 0 || indices[i] >= s.dims[i] {
			return 0, util.IndexOutOfBoundsError{
				Index: indices[i],
				Bound: s.dims[i],
			}
		}
		flat += indices[i] * stride
		stride *= s.dims[i]
	}
	return flat, nil
}

// Equals reports whether both shapes have identical axis sizes.
func (s Shape) Equals(o Shape) bool { return slices.Equal(s.dims, o.dims) }

// IsSquare reports whether s is a rank-2 shape with equal axes.
func (s Shape) IsSquare() bool {
	return len(s.dims) == 2 && s.dims[0] == s.dims[1]
}

// Transposed returns the rank-2 shape with its axes swapped.
func (s Shape) Transposed() Shape {
	return Of(s.dims[1], s.dims[0])
}

// String formats the shape as its axis sizes joined by "x", e.g. "2x3".
func (s Shape) String() string {
	parts := make([]string, len(s.dims))
	for i, d := range s.dims {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, "x")
}

// EnsureSame returns ErrDimensionMismatch unless both shapes are equal.
func EnsureSame(s1, s2 Shape) error {
	if !s1.Equals(s2) {
		return fmt.Errorf("shapes %v and %v: %w", s1, s2, ErrDimensionMismatch)
	}
	return nil
}

// EnsureMultCompatible checks matrix multiplication conformability:
// both shapes are rank 2 and the column count of s1 equals the row count
// of s2.
func EnsureMultCompatible(s1, s2 Shape) error {
	if s1.Rank() != 2 || s2.Rank() != 2 || s1.dims[1] != s2.dims[0] {
		return fmt.Errorf(
			"shapes %v and %v are not multiplication conformable: %w",
			s1, s2, ErrDimensionMismatch)
	}
	return nil
}

// EnsureMultTransposeCompatible checks conformability of s1 times the
// transpose of s2: both shapes are rank 2 with equal column counts.
func EnsureMultTransposeCompatible(s1, s2 Shape) error {
	if s1.Rank() != 2 || s2.Rank() != 2 || s1.dims[1] != s2.dims[1] {
		return fmt.Errorf(
			"shapes %v and transposed %v are not multiplication conformable: %w",
			s1, s2, ErrDimensionMismatch)
	}
	return nil
}

// EnsureVecMultCompatible checks matrix-vector conformability:
// s is rank 2 and its column count equals the vector dimension.
func EnsureVecMultCompatible(s Shape, dim int) error {
	if s.Rank() != 2 || s.dims[1] != dim {
		return fmt.Errorf(
			"shape %v and %d-vector are not multiplication conformable: %w",
			s, dim, ErrDimensionMismatch)
	}
	return nil
}
