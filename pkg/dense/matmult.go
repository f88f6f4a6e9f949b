package dense

import (
	"k3l.io/go-linalg/pkg/algebra"
	"k3l.io/go-linalg/pkg/shapes"
)

// Sequential matrix-matrix and matrix-vector kernels.
//
// Every kernel computes the same product with the same per-entry operand
// order; they differ only in loop nesting and tiling, i.e. in memory access
// pattern.  Kernels do not validate shapes; the dispatch entry points do
// that up front.

// standard is the reference kernel: plain ijk loops, with a strided walk
// down each column of src2.
func standard[T algebra.Element[T]](
	src1 []T, shape1 shapes.Shape, src2 []T, shape2 shapes.Shape,
) []T {
	rows1 := shape1.Dim(0)
	dest := zeroed[T](rows1*shape2.Dim(1), src1, src2)
	standardRange(dest, src1, shape1.Dim(1), src2, shape2.Dim(1), 0, rows1)
	return dest
}

// standardRange runs the standard kernel over rows [start, end) of src1.
func standardRange[T algebra.Element[T]](
	dest, src1 []T, cols1 int, src2 []T, cols2 int, start, end int,
) {
	for i := start; i < end; i++ {
		src1Start := i * cols1
		destStart := i * cols2
		for j := 0; j < cols2; j++ {
			sum := dest[destStart+j]
			src2Index := j
			for src1Index := src1Start; src1Index < src1Start+cols1; src1Index++ {
				sum = sum.Add(src1[src1Index].Mult(src2[src2Index]))
				src2Index += cols2
			}
			dest[destStart+j] = sum
		}
	}
}

// reordered walks src2 and dest sequentially (ikj loop order) instead of
// striding down src2 columns.
func reordered[T algebra.Element[T]](
	src1 []T, shape1 shapes.Shape, src2 []T, shape2 shapes.Shape,
) []T {
	rows1 := shape1.Dim(0)
	dest := zeroed[T](rows1*shape2.Dim(1), src1, src2)
	reorderedRange(dest, src1, shape1.Dim(1), src2, shape2.Dim(1), 0, rows1)
	return dest
}

func reorderedRange[T algebra.Element[T]](
	dest, src1 []T, cols1 int, src2 []T, cols2 int, start, end int,
) {
	for i := start; i < end; i++ {
		src1Start := i * cols1
		destStart := i * cols2
		for k := 0; k < cols1; k++ {
			src1Value := src1[src1Start+k]
			src2Index := k * cols2
			destIndex := destStart
			for stop := src2Index + cols2; src2Index < stop; src2Index++ {
				dest[destIndex] = dest[destIndex].Add(src1Value.Mult(src2[src2Index]))
				destIndex++
			}
		}
	}
}

// blocked tiles all three loops so working sets stay cache resident.
func blocked[T algebra.Element[T]](
	src1 []T, shape1 shapes.Shape, src2 []T, shape2 shapes.Shape,
	blockSize int,
) []T {
	rows1 := shape1.Dim(0)
	dest := zeroed[T](rows1*shape2.Dim(1), src1, src2)
	blockedRange(
		dest, src1, shape1.Dim(1), src2, shape2.Dim(1), blockSize, 0, rows1)
	return dest
}

// blockedRange runs the blocked kernel over rows [start, end) of src1.
// start must be block aligned.
func blockedRange[T algebra.Element[T]](
	dest, src1 []T, cols1 int, src2 []T, cols2 int,
	blockSize, start, end int,
) {
	for ii := start; ii < end; ii += blockSize {
		iBound := min(ii+blockSize, end)
		for jj := 0; jj < cols2; jj += blockSize {
			jBound := min(jj+blockSize, cols2)
			for kk := 0; kk < cols1; kk += blockSize {
				kBound := min(kk+blockSize, cols1)
				for i := ii; i < iBound; i++ {
					src1Start := i*cols1 + kk
					destStart := i * cols2
					for j := jj; j < jBound; j++ {
						destIndex := destStart + j
						src2Index := kk*cols2 + j
						sum := dest[destIndex]
						for src1Index := src1Start; src1Index < src1Start+(kBound-kk); src1Index++ {
							sum = sum.Add(src1[src1Index].Mult(src2[src2Index]))
							src2Index += cols2
						}
						dest[destIndex] = sum
					}
				}
			}
		}
	}
}

// blockedReordered tiles the reordered kernel (ii/kk/jj order).
func blockedReordered[T algebra.Element[T]](
	src1 []T, shape1 shapes.Shape, src2 []T, shape2 shapes.Shape,
	blockSize int,
) []T {
	rows1 := shape1.Dim(0)
	dest := zeroed[T](rows1*shape2.Dim(1), src1, src2)
	blockedReorderedRange(
		dest, src1, shape1.Dim(1), src2, shape2.Dim(1), blockSize, 0, rows1)
	return dest
}

func blockedReorderedRange[T algebra.Element[T]](
	dest, src1 []T, cols1 int, src2 []T, cols2 int,
	blockSize, start, end int,
) {
	for ii := start; ii < end; ii += blockSize {
		iBound := min(ii+blockSize, end)
		for kk := 0; kk < cols1; kk += blockSize {
			kBound := min(kk+blockSize, cols1)
			for jj := 0; jj < cols2; jj += blockSize {
				jBound := min(jj+blockSize, cols2)
				for i := ii; i < iBound; i++ {
					destStart := i * cols2
					src1Start := i * cols1
					stopIndex := destStart + jBound
					for k := kk; k < kBound; k++ {
						destIndex := destStart + jj
						src1Value := src1[src1Start+k]
						src2Index := k*cols2 + jj
						for destIndex < stopIndex {
							dest[destIndex] = dest[destIndex].Add(src1Value.Mult(src2[src2Index]))
							destIndex++
							src2Index++
						}
					}
				}
			}
		}
	}
}

// standardVector is the matrix-vector reference kernel: one dot product
// per row.
func standardVector[T algebra.Element[T]](
	src1 []T, shape1 shapes.Shape, src2 []T,
) []T {
	rows1 := shape1.Dim(0)
	dest := zeroed[T](rows1, src1, src2)
	standardVectorRange(dest, src1, shape1.Dim(1), src2, 0, rows1)
	return dest
}

func standardVectorRange[T algebra.Element[T]](
	dest, src1 []T, cols1 int, src2 []T, start, end int,
) {
	for i := start; i < end; i++ {
		src1Start := i * cols1
		sum := dest[i]
		for k := 0; k < cols1; k++ {
			sum = sum.Add(src1[src1Start+k].Mult(src2[k]))
		}
		dest[i] = sum
	}
}

// blockedVector tiles the matrix-vector kernel over rows and the shared
// dimension.
func blockedVector[T algebra.Element[T]](
	src1 []T, shape1 shapes.Shape, src2 []T, blockSize int,
) []T {
	rows1 := shape1.Dim(0)
	dest := zeroed[T](rows1, src1, src2)
	blockedVectorRange(dest, src1, shape1.Dim(1), src2, blockSize, 0, rows1)
	return dest
}

func blockedVectorRange[T algebra.Element[T]](
	dest, src1 []T, cols1 int, src2 []T, blockSize, start, end int,
) {
	for ii := start; ii < end; ii += blockSize {
		iBound := min(ii+blockSize, end)
		for kk := 0; kk < cols1; kk += blockSize {
			kBound := min(kk+blockSize, cols1)
			for i := ii; i < iBound; i++ {
				src1Start := i * cols1
				sum := dest[i]
				for k := kk; k < kBound; k++ {
					sum = sum.Add(src1[src1Start+k].Mult(src2[k]))
				}
				dest[i] = sum
			}
		}
	}
}
