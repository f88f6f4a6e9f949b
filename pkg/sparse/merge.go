package sparse

import (
	"k3l.io/go-linalg/pkg/algebra"
	"k3l.io/go-linalg/pkg/shapes"
	"k3l.io/go-linalg/pkg/util"
)

// csrMergeJoin merges two same-shape CSR matrices with one two-pointer
// pass per row.  Coordinates stored in both operands are joined with
// both; coordinates stored on one side only are carried over through
// left or right.  Values are never consulted, so explicitly stored
// zeros flow through like any other entry.
func csrMergeJoin[A algebra.Element[A], B algebra.Element[B], R algebra.Element[R]](
	a *CSRMatrix[A], b *CSRMatrix[B],
	left func(A) R, right func(B) R, both func(A, B) R,
) (*CSRMatrix[R], error) {
	if err := shapes.EnsureSame(a.Shape, b.Shape); err != nil {
		return nil, err
	}
	rows := a.Rows()
	rowPointers := make([]int, rows+1)
	colIndices := make([]int, 0, max(len(a.Entries), len(b.Entries)))
	entries := make([]R, 0, cap(colIndices))
	for i := 0; i < rows; i++ {
		p1, end1 := a.RowPointers[i], a.RowPointers[i+1]
		p2, end2 := b.RowPointers[i], b.RowPointers[i+1]
		for p1 < end1 || p2 < end2 {
			switch {
			case p2 >= end2 ||
				(p1 < end1 && a.ColIndices[p1] < b.ColIndices[p2]):
				// a wins
				colIndices = append(colIndices, a.ColIndices[p1])
				entries = append(entries, left(a.Entries[p1]))
				p1++
			case p1 >= end1 || b.ColIndices[p2] < a.ColIndices[p1]:
				// b wins
				colIndices = append(colIndices, b.ColIndices[p2])
				entries = append(entries, right(b.Entries[p2]))
				p2++
			default: // both
				colIndices = append(colIndices, a.ColIndices[p1])
				entries = append(entries, both(a.Entries[p1], b.Entries[p2]))
				p1++
				p2++
			}
		}
		rowPointers[i+1] = len(entries)
	}
	return &CSRMatrix[R]{
		Shape:       a.Shape,
		RowPointers: rowPointers,
		ColIndices:  util.ShrinkWrap(colIndices),
		Entries:     util.ShrinkWrap(entries),
	}, nil
}

// csrIntersectJoin is csrMergeJoin restricted to coordinates stored in
// both operands; one-sided entries are skipped, suiting operators that
// yield zero whenever either side is zero.
func csrIntersectJoin[A algebra.Element[A], B algebra.Element[B], R algebra.Element[R]](
	a *CSRMatrix[A], b *CSRMatrix[B], both func(A, B) R,
) (*CSRMatrix[R], error) {
	if err := shapes.EnsureSame(a.Shape, b.Shape); err != nil {
		return nil, err
	}
	rows := a.Rows()
	rowPointers := make([]int, rows+1)
	colIndices := make([]int, 0, min(len(a.Entries), len(b.Entries)))
	entries := make([]R, 0, cap(colIndices))
	for i := 0; i < rows; i++ {
		p1, end1 := a.RowPointers[i], a.RowPointers[i+1]
		p2, end2 := b.RowPointers[i], b.RowPointers[i+1]
		for p1 < end1 && p2 < end2 {
			switch {
			case a.ColIndices[p1] < b.ColIndices[p2]:
				p1++
			case b.ColIndices[p2] < a.ColIndices[p1]:
				p2++
			default:
				colIndices = append(colIndices, a.ColIndices[p1])
				entries = append(entries, both(a.Entries[p1], b.Entries[p2]))
				p1++
				p2++
			}
		}
		rowPointers[i+1] = len(entries)
	}
	return &CSRMatrix[R]{
		Shape:       a.Shape,
		RowPointers: rowPointers,
		ColIndices:  util.ShrinkWrap(colIndices),
		Entries:     util.ShrinkWrap(entries),
	}, nil
}

// ApplyBinary merges two same-shape CSR matrices element-wise.
//
// combine joins entries stored at the same coordinates.  adjust maps
// entries present only in b, for operators where the right side cannot
// be carried over as-is (pass nil to carry it unchanged).  Entries
// present only in a always carry over unchanged.
func ApplyBinary[T algebra.Element[T]](
	a, b *CSRMatrix[T], combine func(T, T) T, adjust func(T) T,
) (*CSRMatrix[T], error) {
	if adjust == nil {
		adjust = func(v T) T { return v }
	}
	return csrMergeJoin(a, b, func(v T) T { return v }, adjust, combine)
}

// Add returns the element-wise sum m + o.
func (m *CSRMatrix[T]) Add(o *CSRMatrix[T]) (*CSRMatrix[T], error) {
	return ApplyBinary(m, o, func(x, y T) T { return x.Add(y) }, nil)
}

// Sub returns the element-wise difference m - o.
func (m *CSRMatrix[T]) Sub(o *CSRMatrix[T]) (*CSRMatrix[T], error) {
	return ApplyBinary(m, o,
		func(x, y T) T { return x.Sub(y) },
		func(y T) T { return y.AddInv() })
}

// ElemMult returns the element-wise (Hadamard) product of m and o.
// Only coordinates stored in both operands are visited.
func (m *CSRMatrix[T]) ElemMult(o *CSRMatrix[T]) (*CSRMatrix[T], error) {
	return csrIntersectJoin(m, o, func(x, y T) T { return x.Mult(y) })
}

// AddRealComplexCSR returns a + b, widening a's entries to complex.
func AddRealComplexCSR(
	a *CSRMatrix[algebra.Real], b *CSRMatrix[algebra.Complex],
) (*CSRMatrix[algebra.Complex], error) {
	return csrMergeJoin(a, b,
		algebra.Real.Complex,
		func(y algebra.Complex) algebra.Complex { return y },
		func(x algebra.Real, y algebra.Complex) algebra.Complex {
			return x.Complex().Add(y)
		})
}

// SubRealComplexCSR returns a - b, widening a's entries to complex.
func SubRealComplexCSR(
	a *CSRMatrix[algebra.Real], b *CSRMatrix[algebra.Complex],
) (*CSRMatrix[algebra.Complex], error) {
	return csrMergeJoin(a, b,
		algebra.Real.Complex,
		algebra.Complex.AddInv,
		func(x algebra.Real, y algebra.Complex) algebra.Complex {
			return x.Complex().Sub(y)
		})
}

// SubComplexRealCSR returns a - b, widening b's entries to complex.
func SubComplexRealCSR(
	a *CSRMatrix[algebra.Complex], b *CSRMatrix[algebra.Real],
) (*CSRMatrix[algebra.Complex], error) {
	return csrMergeJoin(a, b,
		func(x algebra.Complex) algebra.Complex { return x },
		func(y algebra.Real) algebra.Complex { return y.Complex().AddInv() },
		func(x algebra.Complex, y algebra.Real) algebra.Complex {
			return x.Sub(y.Complex())
		})
}

// ElemMultRealComplexCSR returns the element-wise product of a and b,
// widening a's entries to complex.
func ElemMultRealComplexCSR(
	a *CSRMatrix[algebra.Real], b *CSRMatrix[algebra.Complex],
) (*CSRMatrix[algebra.Complex], error) {
	return csrIntersectJoin(a, b,
		func(x algebra.Real, y algebra.Complex) algebra.Complex {
			return x.Complex().Mult(y)
		})
}
