package sparse

import (
	"fmt"

	"k3l.io/go-linalg/pkg/algebra"
	"k3l.io/go-linalg/pkg/dense"
	"k3l.io/go-linalg/pkg/shapes"
	"k3l.io/go-linalg/pkg/util"
)

// lexLess reports whether (r1, c1) precedes (r2, c2) in row-major order.
func lexLess(r1, c1, r2, c2 int) bool {
	return r1 < r2 || (r1 == r2 && c1 < c2)
}

// cooMergeJoin merges two same-shape COO matrices in one lexicographic
// two-pointer pass, the way csrMergeJoin does per CSR row.
func cooMergeJoin[A algebra.Element[A], B algebra.Element[B], R algebra.Element[R]](
	a *COOMatrix[A], b *COOMatrix[B],
	left func(A) R, right func(B) R, both func(A, B) R,
) (*COOMatrix[R], error) {
	if err := shapes.EnsureSame(a.Shape, b.Shape); err != nil {
		return nil, err
	}
	len1, len2 := len(a.Entries), len(b.Entries)
	rowIndices := make([]int, 0, max(len1, len2))
	colIndices := make([]int, 0, cap(rowIndices))
	entries := make([]R, 0, cap(rowIndices))
	p1, p2 := 0, 0
	for p1 < len1 || p2 < len2 {
		switch {
		case p2 >= len2 ||
			(p1 < len1 && lexLess(a.RowIndices[p1], a.ColIndices[p1],
				b.RowIndices[p2], b.ColIndices[p2])):
			// a wins
			rowIndices = append(rowIndices, a.RowIndices[p1])
			colIndices = append(colIndices, a.ColIndices[p1])
			entries = append(entries, left(a.Entries[p1]))
			p1++
		case p1 >= len1 ||
			lexLess(b.RowIndices[p2], b.ColIndices[p2],
				a.RowIndices[p1], a.ColIndices[p1]):
			// b wins
			rowIndices = append(rowIndices, b.RowIndices[p2])
			colIndices = append(colIndices, b.ColIndices[p2])
			entries = append(entries, right(b.Entries[p2]))
			p2++
		default: // both
			rowIndices = append(rowIndices, a.RowIndices[p1])
			colIndices = append(colIndices, a.ColIndices[p1])
			entries = append(entries, both(a.Entries[p1], b.Entries[p2]))
			p1++
			p2++
		}
	}
	return &COOMatrix[R]{
		Shape:      a.Shape,
		RowIndices: util.ShrinkWrap(rowIndices),
		ColIndices: util.ShrinkWrap(colIndices),
		Entries:    util.ShrinkWrap(entries),
	}, nil
}

// cooIntersectJoin is cooMergeJoin restricted to coordinates stored in
// both operands.
func cooIntersectJoin[A algebra.Element[A], B algebra.Element[B], R algebra.Element[R]](
	a *COOMatrix[A], b *COOMatrix[B], both func(A, B) R,
) (*COOMatrix[R], error) {
	if err := shapes.EnsureSame(a.Shape, b.Shape); err != nil {
		return nil, err
	}
	len1, len2 := len(a.Entries), len(b.Entries)
	rowIndices := make([]int, 0, min(len1, len2))
	colIndices := make([]int, 0, cap(rowIndices))
	entries := make([]R, 0, cap(rowIndices))
	p1, p2 := 0, 0
	for p1 < len1 && p2 < len2 {
		switch {
		case lexLess(a.RowIndices[p1], a.ColIndices[p1],
			b.RowIndices[p2], b.ColIndices[p2]):
			p1++
		case lexLess(b.RowIndices[p2], b.ColIndices[p2],
			a.RowIndices[p1], a.ColIndices[p1]):
			p2++
		default:
			rowIndices = append(rowIndices, a.RowIndices[p1])
			colIndices = append(colIndices, a.ColIndices[p1])
			entries = append(entries, both(a.Entries[p1], b.Entries[p2]))
			p1++
			p2++
		}
	}
	return &COOMatrix[R]{
		Shape:      a.Shape,
		RowIndices: util.ShrinkWrap(rowIndices),
		ColIndices: util.ShrinkWrap(colIndices),
		Entries:    util.ShrinkWrap(entries),
	}, nil
}

// Add returns the element-wise sum m + o.
func (m *COOMatrix[T]) Add(o *COOMatrix[T]) (*COOMatrix[T], error) {
	id := func(v T) T { return v }
	return cooMergeJoin(m, o, id, id, func(x, y T) T { return x.Add(y) })
}

// Sub returns the element-wise difference m - o.
func (m *COOMatrix[T]) Sub(o *COOMatrix[T]) (*COOMatrix[T], error) {
	return cooMergeJoin(m, o,
		func(v T) T { return v },
		func(v T) T { return v.AddInv() },
		func(x, y T) T { return x.Sub(y) })
}

// ElemMult returns the element-wise (Hadamard) product of m and o.
// Only coordinates stored in both operands are visited.
func (m *COOMatrix[T]) ElemMult(o *COOMatrix[T]) (*COOMatrix[T], error) {
	return cooIntersectJoin(m, o, func(x, y T) T { return x.Mult(y) })
}

// AddRealComplexCOO returns a + b, widening a's entries to complex.
func AddRealComplexCOO(
	a *COOMatrix[algebra.Real], b *COOMatrix[algebra.Complex],
) (*COOMatrix[algebra.Complex], error) {
	return cooMergeJoin(a, b,
		algebra.Real.Complex,
		func(y algebra.Complex) algebra.Complex { return y },
		func(x algebra.Real, y algebra.Complex) algebra.Complex {
			return x.Complex().Add(y)
		})
}

// SubRealComplexCOO returns a - b, widening a's entries to complex.
func SubRealComplexCOO(
	a *COOMatrix[algebra.Real], b *COOMatrix[algebra.Complex],
) (*COOMatrix[algebra.Complex], error) {
	return cooMergeJoin(a, b,
		algebra.Real.Complex,
		algebra.Complex.AddInv,
		func(x algebra.Real, y algebra.Complex) algebra.Complex {
			return x.Complex().Sub(y)
		})
}

// SubComplexRealCOO returns a - b, widening b's entries to complex.
func SubComplexRealCOO(
	a *COOMatrix[algebra.Complex], b *COOMatrix[algebra.Real],
) (*COOMatrix[algebra.Complex], error) {
	return cooMergeJoin(a, b,
		func(x algebra.Complex) algebra.Complex { return x },
		func(y algebra.Real) algebra.Complex { return y.Complex().AddInv() },
		func(x algebra.Complex, y algebra.Real) algebra.Complex {
			return x.Sub(y.Complex())
		})
}

// ElemMultRealComplexCOO returns the element-wise product of a and b,
// widening a's entries to complex.
func ElemMultRealComplexCOO(
	a *COOMatrix[algebra.Real], b *COOMatrix[algebra.Complex],
) (*COOMatrix[algebra.Complex], error) {
	return cooIntersectJoin(a, b,
		func(x algebra.Real, y algebra.Complex) algebra.Complex {
			return x.Complex().Mult(y)
		})
}

// AddToEachRow adds the sparse vector to every row of m, returning the
// dense result.  The vector runs along the columns, so its dimension
// must equal Cols.
func (m *COOMatrix[T]) AddToEachRow(v *Vector[T]) (*dense.Matrix[T], error) {
	if v.Dim != m.Cols() {
		return nil, fmt.Errorf("%d-vector against %v matrix rows: %w",
			v.Dim, m.Shape, shapes.ErrDimensionMismatch)
	}
	n, err := m.Shape.TotalEntriesInt()
	if err != nil {
		return nil, err
	}
	data := make([]T, n)
	algebra.Fill(data, algebra.ZeroOf(m.Entries, v.Entries))
	rows, cols := m.Rows(), m.Cols()
	// broadcast the vector into every row
	for k, j := range v.Indices {
		x := v.Entries[k]
		for i := 0; i < rows; i++ {
			data[i*cols+j] = x
		}
	}
	// scatter-add the stored entries
	for p, i := range m.RowIndices {
		index := i*cols + m.ColIndices[p]
		data[index] = data[index].Add(m.Entries[p])
	}
	return &dense.Matrix[T]{Shape: m.Shape, Data: data}, nil
}

// AddToEachCol adds the sparse vector to every column of m, returning
// the dense result.  The vector runs along the rows, so its dimension
// must equal Rows.
func (m *COOMatrix[T]) AddToEachCol(v *Vector[T]) (*dense.Matrix[T], error) {
	if v.Dim != m.Rows() {
		return nil, fmt.Errorf("%d-vector against %v matrix columns: %w",
			v.Dim, m.Shape, shapes.ErrDimensionMismatch)
	}
	n, err := m.Shape.TotalEntriesInt()
	if err != nil {
		return nil, err
	}
	data := make([]T, n)
	algebra.Fill(data, algebra.ZeroOf(m.Entries, v.Entries))
	cols := m.Cols()
	// broadcast the vector into every column
	for k, i := range v.Indices {
		x := v.Entries[k]
		rowStart := i * cols
		for j := 0; j < cols; j++ {
			data[rowStart+j] = x
		}
	}
	// scatter-add the stored entries
	for p, i := range m.RowIndices {
		index := i*cols + m.ColIndices[p]
		data[index] = data[index].Add(m.Entries[p])
	}
	return &dense.Matrix[T]{Shape: m.Shape, Data: data}, nil
}
