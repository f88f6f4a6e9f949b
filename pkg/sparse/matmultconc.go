package sparse

import (
	"sync"

	"k3l.io/go-linalg/pkg/algebra"
	"k3l.io/go-linalg/pkg/dense"
	"k3l.io/go-linalg/pkg/parallel"
	"k3l.io/go-linalg/pkg/shapes"
	"k3l.io/go-linalg/pkg/util"
)

// ConcurrentMultCSR is MultCSR with the rows of a partitioned across
// workers.  Workers write disjoint destination rows, so no locking is
// needed.
func ConcurrentMultCSR[T algebra.Element[T]](
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
	_ = parallel.For(a.Rows(), func(start, end int) error {
		multCSRRange(data, a, b, start, end)
		return nil
	})
	return &dense.Matrix[T]{Shape: outShape, Data: data}, nil
}

// ConcurrentMultCOO is MultCOO with the entries of a partitioned across
// workers.  Workers can land on the same destination cell, so
// contributions accumulate through locked read-modify-write updates of
// a lock-striped map; once all workers finish, the map is scattered
// into the dense result.
func ConcurrentMultCOO[T algebra.Element[T]](
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
	index := rowBucketIndex(b.RowIndices)
	cols2 := b.Cols()
	accum := util.NewShardedMap[T](4 * parallel.Workers())
	_ = parallel.For(len(a.Entries), func(start, end int) error {
		for p := start; p < end; p++ {
			aValue := a.Entries[p]
			destStart := a.RowIndices[p] * cols2
			for _, q := range index[a.ColIndices[p]] {
				destIndex := destStart + b.ColIndices[q]
				product := aValue.Mult(b.Entries[q])
				accum.Update(destIndex, func(old T, ok bool) T {
					if !ok {
						return product
					}
					return old.Add(product)
				})
			}
		}
		return nil
	})
	data := make([]T, n)
	algebra.Fill(data, algebra.ZeroOf(a.Entries, b.Entries))
	accum.Range(func(destIndex int, sum T) bool {
		data[destIndex] = sum
		return true
	})
	return &dense.Matrix[T]{Shape: outShape, Data: data}, nil
}

// ConcurrentMultCOOVec is MultCOOVec with the entries of a partitioned
// across workers.  All workers funnel through a single lock around the
// destination vector, which serializes most of the work; callers after
// raw throughput should prefer MultCOOVec.
func ConcurrentMultCOOVec[T algebra.Element[T]](
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
	var mu sync.Mutex
	_ = parallel.For(len(a.Entries), func(start, end int) error {
		for p := start; p < end; p++ {
			x, ok := probe[a.ColIndices[p]]
			if !ok {
				continue
			}
			i := a.RowIndices[p]
			product := a.Entries[p].Mult(x)
			mu.Lock()
			dest[i] = dest[i].Add(product)
			mu.Unlock()
		}
		return nil
	})
	return dest, nil
}
