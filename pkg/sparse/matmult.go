package sparse

import (
	"sort"

	"k3l.io/go-linalg/pkg/algebra"
	"k3l.io/go-linalg/pkg/dense"
	"k3l.io/go-linalg/pkg/shapes"
	"k3l.io/go-linalg/pkg/util"
)

// MultCSR multiplies two CSR matrices into a dense result.
// Only stored entries are visited; implicit zeros never contribute.
func MultCSR[T algebra.Element[T]](
	a, b *CSRMatrix[T],
) (*dense.Matrix[T], error) {
	if err := shapes.EnsureMultCompatible(a.Shape, b.Shape); err != nil {
		return nil, err
	}
	outShape := shapes.Of(a.Rows(), b.Cols())
	n, err := outShape.TotalEntriesInt()
	if err != nil {
		return nil, err
	}
	data := make([]T, n)
	algebra.Fill(data, algebra.ZeroOf(a.Entries, b.Entries))
	multCSRRange(data, a, b, 0, a.Rows())
	return &dense.Matrix[T]{Shape: outShape, Data: data}, nil
}

// multCSRRange accumulates rows [start, end) of the product a*b into
// dest.  For each stored a[i][k], the stored entries of b's row k are
// scattered into dest row i.
func multCSRRange[T algebra.Element[T]](
	dest []T, a, b *CSRMatrix[T], start, end int,
) {
	cols2 := b.Cols()
	for i := start; i < end; i++ {
		destStart := i * cols2
		for p := a.RowPointers[i]; p < a.RowPointers[i+1]; p++ {
			aValue := a.Entries[p]
			k := a.ColIndices[p]
			for q := b.RowPointers[k]; q < b.RowPointers[k+1]; q++ {
				destIndex := destStart + b.ColIndices[q]
				dest[destIndex] = dest[destIndex].Add(aValue.Mult(b.Entries[q]))
			}
		}
	}
}

// MultCSRToSparse multiplies two CSR matrices into a CSR result,
// keeping the output sparse.  Each output row accumulates in a hash map
// keyed by column, then is sorted back into ascending column order.
func MultCSRToSparse[T algebra.Element[T]](
	a, b *CSRMatrix[T],
) (*CSRMatrix[T], error) {
	if err := shapes.EnsureMultCompatible(a.Shape, b.Shape); err != nil {
		return nil, err
	}
	rows := a.Rows()
	rowPointers := make([]int, rows+1)
	var (
		colIndices []int
		entries    []T
	)
	accum := map[int]T{}
	for i := 0; i < rows; i++ {
		clear(accum)
		for p := a.RowPointers[i]; p < a.RowPointers[i+1]; p++ {
			aValue := a.Entries[p]
			k := a.ColIndices[p]
			for q := b.RowPointers[k]; q < b.RowPointers[k+1]; q++ {
				c := b.ColIndices[q]
				product := aValue.Mult(b.Entries[q])
				if old, ok := accum[c]; ok {
					accum[c] = old.Add(product)
				} else {
					accum[c] = product
				}
			}
		}
		// restore the ascending-column invariant
		cols := make([]int, 0, len(accum))
		for c := range accum {
			cols = append(cols, c)
		}
		sort.Ints(cols)
		colIndices = util.GrowCap(colIndices, len(colIndices)+len(cols))
		entries = util.GrowCap(entries, len(entries)+len(cols))
		for _, c := range cols {
			colIndices = append(colIndices, c)
			entries = append(entries, accum[c])
		}
		rowPointers[i+1] = len(entries)
	}
	return &CSRMatrix[T]{
		Shape:       shapes.Of(rows, b.Cols()),
		RowPointers: rowPointers,
		ColIndices:  util.ShrinkWrap(colIndices),
		Entries:     util.ShrinkWrap(entries),
	}, nil
}

// rowBucketIndex maps each row index of a COO matrix to the positions
// of that row's entries, for join-style probing.
func rowBucketIndex(rowIndices []int) map[int][]int {
	index := make(map[int][]int)
	for p, r := range rowIndices {
		index[r] = append(index[r], p)
	}
	return index
}

// MultCOO multiplies two COO matrices into a dense result by probing an
// index of b's rows with a's column indices.
func MultCOO[T algebra.Element[T]](
	a, b *COOMatrix[T],
) (*dense.Matrix[T], error) {
	if err := shapes.EnsureMultCompatible(a.Shape, b.Shape); err != nil {
		return nil, err
	}
	outShape := shapes.Of(a.Rows(), b.Cols())
	n, err := outShape.TotalEntriesInt()
	if err != nil {
		return nil, err
	}
	data := make([]T, n)
	algebra.Fill(data, algebra.ZeroOf(a.Entries, b.Entries))
	index := rowBucketIndex(b.RowIndices)
	cols2 := b.Cols()
	for p, i := range a.RowIndices {
		aValue := a.Entries[p]
		destStart := i * cols2
		for _, q := range index[a.ColIndices[p]] {
			destIndex := destStart + b.ColIndices[q]
			data[destIndex] = data[destIndex].Add(aValue.Mult(b.Entries[q]))
		}
	}
	return &dense.Matrix[T]{Shape: outShape, Data: data}, nil
}

// MultCSRVec multiplies a CSR matrix by a sparse vector into a dense
// vector.  Each row's entries merge with the vector's indices like two
// sorted lists.
func MultCSRVec[T algebra.Element[T]](
	a *CSRMatrix[T], v *Vector[T],
) ([]T, error) {
	if err := shapes.EnsureVecMultCompatible(a.Shape, v.Dim); err != nil {
		return nil, err
	}
	dest := make([]T, a.Rows())
	algebra.Fill(dest, algebra.ZeroOf(a.Entries, v.Entries))
	for i := 0; i < a.Rows(); i++ {
		p, end := a.RowPointers[i], a.RowPointers[i+1]
		q := 0
		sum := dest[i]
		for p < end && q < len(v.Indices) {
			switch {
			case a.ColIndices[p] == v.Indices[q]:
				sum = sum.Add(a.Entries[p].Mult(v.Entries[q]))
				p++
				q++
			case a.ColIndices[p] < v.Indices[q]:
				p++
			default:
				q++
			}
		}
		dest[i] = sum
	}
	return dest, nil
}

// MultCOOVec multiplies a COO matrix by a sparse vector into a dense
// vector, probing the vector's entries by index.
func MultCOOVec[T algebra.Element[T]](
	a *COOMatrix[T], v *Vector[T],
) ([]T, error) {
	if err := shapes.EnsureVecMultCompatible(a.Shape, v.Dim); err != nil {
		return nil, err
	}
	probe := make(map[int]T, len(v.Entries))
	for k, idx := range v.Indices {
		probe[idx] = v.Entries[k]
	}
	dest := make([]T, a.Rows())
	algebra.Fill(dest, algebra.ZeroOf(a.Entries, v.Entries))
	for p, i := range a.RowIndices {
		if x, ok := probe[a.ColIndices[p]]; ok {
			dest[i] = dest[i].Add(a.Entries[p].Mult(x))
		}
	}
	return dest, nil
}
