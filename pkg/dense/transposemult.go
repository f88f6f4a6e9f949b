package dense

import (
	"k3l.io/go-linalg/pkg/algebra"
	"k3l.io/go-linalg/pkg/parallel"
	"k3l.io/go-linalg/pkg/shapes"
)

// Kernels for src1 times the transpose of src2, without materializing the
// transpose.  Both operands are walked row-major: row j of src2 serves as
// column j of the virtual right operand.

func multTranspose[T algebra.Element[T]](
	src1 []T, shape1 shapes.Shape, src2 []T, shape2 shapes.Shape,
) []T {
	rows1 := shape1.Dim(0)
	dest := zeroed[T](rows1*shape2.Dim(0), src1, src2)
	multTransposeRange(
		dest, src1, shape1.Dim(1), src2, shape2.Dim(0), 0, rows1)
	return dest
}

func multTransposeRange[T algebra.Element[T]](
	dest, src1 []T, cols1 int, src2 []T, rows2 int, start, end int,
) {
	for i := start; i < end; i++ {
		src1Start := i * cols1
		destStart := i * rows2
		for j := 0; j < rows2; j++ {
			src2Start := j * cols1
			sum := dest[destStart+j]
			for k := 0; k < cols1; k++ {
				sum = sum.Add(src1[src1Start+k].Mult(src2[src2Start+k]))
			}
			dest[destStart+j] = sum
		}
	}
}

func multTransposeBlocked[T algebra.Element[T]](
	src1 []T, shape1 shapes.Shape, src2 []T, shape2 shapes.Shape,
	blockSize int,
) []T {
	rows1 := shape1.Dim(0)
	dest := zeroed[T](rows1*shape2.Dim(0), src1, src2)
	multTransposeBlockedRange(
		dest, src1, shape1.Dim(1), src2, shape2.Dim(0), blockSize, 0, rows1)
	return dest
}

func multTransposeBlockedRange[T algebra.Element[T]](
	dest, src1 []T, cols1 int, src2 []T, rows2 int,
	blockSize, start, end int,
) {
	for ii := start; ii < end; ii += blockSize {
		iBound := min(ii+blockSize, end)
		for jj := 0; jj < rows2; jj += blockSize {
			jBound := min(jj+blockSize, rows2)
			for kk := 0; kk < cols1; kk += blockSize {
				kBound := min(kk+blockSize, cols1)
				for i := ii; i < iBound; i++ {
					src1Start := i * cols1
					destStart := i * rows2
					for j := jj; j < jBound; j++ {
						src2Start := j * cols1
						sum := dest[destStart+j]
						for k := kk; k < kBound; k++ {
							sum = sum.Add(src1[src1Start+k].Mult(src2[src2Start+k]))
						}
						dest[destStart+j] = sum
					}
				}
			}
		}
	}
}

func multTransposeConcurrent[T algebra.Element[T]](
	src1 []T, shape1 shapes.Shape, src2 []T, shape2 shapes.Shape,
) []T {
	rows1 := shape1.Dim(0)
	cols1, rows2 := shape1.Dim(1), shape2.Dim(0)
	dest := zeroed[T](rows1*rows2, src1, src2)
	_ = parallel.For(rows1, func(start, end int) error {
		multTransposeRange(dest, src1, cols1, src2, rows2, start, end)
		return nil
	})
	return dest
}

func multTransposeBlockedConcurrent[T algebra.Element[T]](
	src1 []T, shape1 shapes.Shape, src2 []T, shape2 shapes.Shape,
	blockSize int,
) []T {
	rows1 := shape1.Dim(0)
	cols1, rows2 := shape1.Dim(1), shape2.Dim(0)
	dest := zeroed[T](rows1*rows2, src1, src2)
	_ = parallel.BlockedFor(rows1, blockSize, func(start, end int) error {
		multTransposeBlockedRange(
			dest, src1, cols1, src2, rows2, blockSize, start, end)
		return nil
	})
	return dest
}
