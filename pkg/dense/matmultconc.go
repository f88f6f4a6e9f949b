package dense

import (
	"k3l.io/go-linalg/pkg/algebra"
	"k3l.io/go-linalg/pkg/parallel"
	"k3l.io/go-linalg/pkg/shapes"
)

// Concurrent kernel variants.  The destination rows are partitioned across
// workers, so no synchronization is needed: each row of dest is written by
// exactly one goroutine, and each cell accumulates in the same order as in
// the sequential kernels.

func concurrentStandard[T algebra.Element[T]](
	src1 []T, shape1 shapes.Shape, src2 []T, shape2 shapes.Shape,
) []T {
	rows1 := shape1.Dim(0)
	cols1, cols2 := shape1.Dim(1), shape2.Dim(1)
	dest := zeroed[T](rows1*cols2, src1, src2)
	_ = parallel.For(rows1, func(start, end int) error {
		standardRange(dest, src1, cols1, src2, cols2, start, end)
		return nil
	})
	return dest
}

func concurrentReordered[T algebra.Element[T]](
	src1 []T, shape1 shapes.Shape, src2 []T, shape2 shapes.Shape,
) []T {
	rows1 := shape1.Dim(0)
	cols1, cols2 := shape1.Dim(1), shape2.Dim(1)
	dest := zeroed[T](rows1*cols2, src1, src2)
	_ = parallel.For(rows1, func(start, end int) error {
		reorderedRange(dest, src1, cols1, src2, cols2, start, end)
		return nil
	})
	return dest
}

func concurrentBlocked[T algebra.Element[T]](
	src1 []T, shape1 shapes.Shape, src2 []T, shape2 shapes.Shape,
	blockSize int,
) []T {
	rows1 := shape1.Dim(0)
	cols1, cols2 := shape1.Dim(1), shape2.Dim(1)
	dest := zeroed[T](rows1*cols2, src1, src2)
	_ = parallel.BlockedFor(rows1, blockSize, func(start, end int) error {
		blockedRange(dest, src1, cols1, src2, cols2, blockSize, start, end)
		return nil
	})
	return dest
}

func concurrentBlockedReordered[T algebra.Element[T]](
	src1 []T, shape1 shapes.Shape, src2 []T, shape2 shapes.Shape,
	blockSize int,
) []T {
	rows1 := shape1.Dim(0)
	cols1, cols2 := shape1.Dim(1), shape2.Dim(1)
	dest := zeroed[T](rows1*cols2, src1, src2)
	_ = parallel.BlockedFor(rows1, blockSize, func(start, end int) error {
		blockedReorderedRange(
			dest, src1, cols1, src2, cols2, blockSize, start, end)
		return nil
	})
	return dest
}

func concurrentStandardVector[T algebra.Element[T]](
	src1 []T, shape1 shapes.Shape, src2 []T,
) []T {
	rows1 := shape1.Dim(0)
	cols1 := shape1.Dim(1)
	dest := zeroed[T](rows1, src1, src2)
	_ = parallel.For(rows1, func(start, end int) error {
		standardVectorRange(dest, src1, cols1, src2, start, end)
		return nil
	})
	return dest
}

func concurrentBlockedVector[T algebra.Element[T]](
	src1 []T, shape1 shapes.Shape, src2 []T, blockSize int,
) []T {
	rows1 := shape1.Dim(0)
	cols1 := shape1.Dim(1)
	dest := zeroed[T](rows1, src1, src2)
	_ = parallel.BlockedFor(rows1, blockSize, func(start, end int) error {
		blockedVectorRange(dest, src1, cols1, src2, blockSize, start, end)
		return nil
	})
	return dest
}
