package sparse

import (
	"fmt"
	"slices"

	"k3l.io/go-linalg/pkg/algebra"
	"k3l.io/go-linalg/pkg/shapes"
	"k3l.io/go-linalg/pkg/util"
)

// Vector is a sparse vector: strictly ascending indices paired with
// their entries.  Entries may include explicitly stored zeros.
type Vector[T algebra.Element[T]] struct {
	Dim     int
	Indices []int
	Entries []T
}

// NewVector wraps raw vector components after validating them.
func NewVector[T algebra.Element[T]](
	dim int, indices []int, entries []T,
) (*Vector[T], error) {
	if dim < 0 {
		return nil, shapes.NegativeDimError{Dim: dim}
	}
	if len(indices) != len(entries) {
		return nil, MalformedMatrixError{Reason: fmt.Sprintf(
			"%d indices for %d entries", len(indices), len(entries))}
	}
	for k, idx := range indices {
		if idx < 0 || idx >= dim {
			return nil, util.IndexOutOfBoundsError{Index: idx, Bound: dim}
		}
		if k > 0 && indices[k-1] >= idx {
			return nil, MalformedMatrixError{
				Reason: "indices not strictly ascending"}
		}
	}
	return &Vector[T]{Dim: dim, Indices: indices, Entries: entries}, nil
}

// NNZ returns the number of stored entries,
// including explicitly stored zeros.
func (v *Vector[T]) NNZ() int { return len(v.Entries) }

// At returns the entry stored at index i, or false if none is.
func (v *Vector[T]) At(i int) (T, bool) {
	k, found := slices.BinarySearch(v.Indices, i)
	if !found {
		var zero T
		return zero, false
	}
	return v.Entries[k], true
}

// Clone returns a deep copy.
func (v *Vector[T]) Clone() *Vector[T] {
	return &Vector[T]{
		Dim:     v.Dim,
		Indices: slices.Clone(v.Indices),
		Entries: slices.Clone(v.Entries),
	}
}

// AddInv returns a copy with every entry negated.
func (v *Vector[T]) AddInv() *Vector[T] {
	return &Vector[T]{
		Dim:     v.Dim,
		Indices: slices.Clone(v.Indices),
		Entries: util.Map(v.Entries, func(x T) T { return x.AddInv() }),
	}
}

// ToDense scatters the stored entries into a dense slice.
// The implicit-zero fill value is sampled from the stored entries.
func (v *Vector[T]) ToDense() []T {
	data := make([]T, v.Dim)
	algebra.Fill(data, algebra.ZeroOf(v.Entries))
	for k, idx := range v.Indices {
		data[idx] = v.Entries[k]
	}
	return data
}

// FromDenseVector collects the non-zero entries of a dense vector.
func FromDenseVector[T algebra.Element[T]](data []T) *Vector[T] {
	var (
		indices []int
		entries []T
	)
	for i, x := range data {
		if x.IsZero() {
			continue
		}
		indices = append(indices, i)
		entries = append(entries, x)
	}
	return &Vector[T]{
		Dim:     len(data),
		Indices: util.ShrinkWrap(indices),
		Entries: util.ShrinkWrap(entries),
	}
}

// vecMergeJoin merges two same-dimension sparse vectors in one
// two-pointer pass, the way csrMergeJoin does per CSR row.
func vecMergeJoin[A algebra.Element[A], B algebra.Element[B], R algebra.Element[R]](
	a *Vector[A], b *Vector[B],
	left func(A) R, right func(B) R, both func(A, B) R,
) (*Vector[R], error) {
	if a.Dim != b.Dim {
		return nil, fmt.Errorf("vector dimensions %d and %d: %w",
			a.Dim, b.Dim, shapes.ErrDimensionMismatch)
	}
	len1, len2 := len(a.Entries), len(b.Entries)
	indices := make([]int, 0, max(len1, len2))
	entries := make([]R, 0, cap(indices))
	p1, p2 := 0, 0
	for p1 < len1 || p2 < len2 {
		switch {
		case p2 >= len2 || (p1 < len1 && a.Indices[p1] < b.Indices[p2]):
			// a wins
			indices = append(indices, a.Indices[p1])
			entries = append(entries, left(a.Entries[p1]))
			p1++
		case p1 >= len1 || b.Indices[p2] < a.Indices[p1]:
			// b wins
			indices = append(indices, b.Indices[p2])
			entries = append(entries, right(b.Entries[p2]))
			p2++
		default: // both
			indices = append(indices, a.Indices[p1])
			entries = append(entries, both(a.Entries[p1], b.Entries[p2]))
			p1++
			p2++
		}
	}
	return &Vector[R]{
		Dim:     a.Dim,
		Indices: util.ShrinkWrap(indices),
		Entries: util.ShrinkWrap(entries),
	}, nil
}

// vecIntersectJoin is vecMergeJoin restricted to indices stored in both
// operands.
func vecIntersectJoin[A algebra.Element[A], B algebra.Element[B], R algebra.Element[R]](
	a *Vector[A], b *Vector[B], both func(A, B) R,
) (*Vector[R], error) {
	if a.Dim != b.Dim {
		return nil, fmt.Errorf("vector dimensions %d and %d: %w",
			a.Dim, b.Dim, shapes.ErrDimensionMismatch)
	}
	len1, len2 := len(a.Entries), len(b.Entries)
	indices := make([]int, 0, min(len1, len2))
	entries := make([]R, 0, cap(indices))
	p1, p2 := 0, 0
	for p1 < len1 && p2 < len2 {
		switch {
		case a.Indices[p1] < b.Indices[p2]:
			p1++
		case b.Indices[p2] < a.Indices[p1]:
			p2++
		default:
			indices = append(indices, a.Indices[p1])
			entries = append(entries, both(a.Entries[p1], b.Entries[p2]))
			p1++
			p2++
		}
	}
	return &Vector[R]{
		Dim:     a.Dim,
		Indices: util.ShrinkWrap(indices),
		Entries: util.ShrinkWrap(entries),
	}, nil
}

// Add returns the element-wise sum v + o.
func (v *Vector[T]) Add(o *Vector[T]) (*Vector[T], error) {
	id := func(x T) T { return x }
	return vecMergeJoin(v, o, id, id, func(x, y T) T { return x.Add(y) })
}

// Sub returns the element-wise difference v - o.
func (v *Vector[T]) Sub(o *Vector[T]) (*Vector[T], error) {
	return vecMergeJoin(v, o,
		func(x T) T { return x },
		func(y T) T { return y.AddInv() },
		func(x, y T) T { return x.Sub(y) })
}

// ElemMult returns the element-wise (Hadamard) product of v and o.
// Only indices stored in both operands are visited.
func (v *Vector[T]) ElemMult(o *Vector[T]) (*Vector[T], error) {
	return vecIntersectJoin(v, o, func(x, y T) T { return x.Mult(y) })
}
