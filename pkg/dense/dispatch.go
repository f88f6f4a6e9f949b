package dense

import (
	"fmt"
	"math"

	"k3l.io/go-linalg/pkg/shapes"
)

// Algorithm identifies a concrete multiplication kernel.
type Algorithm int

const (
	// AlgoAuto lets the dispatcher choose a kernel from the operand shape.
	AlgoAuto Algorithm = iota
	AlgoStandard
	AlgoReordered
	AlgoBlocked
	AlgoBlockedReordered
	AlgoConcurrentStandard
	AlgoConcurrentReordered
	AlgoConcurrentBlocked
	AlgoConcurrentBlockedReordered
	AlgoStandardVector
	AlgoBlockedVector
	AlgoConcurrentStandardVector
	AlgoConcurrentBlockedVector
	AlgoMultTranspose
	AlgoMultTransposeBlocked
	AlgoMultTransposeConcurrent
	AlgoMultTransposeBlockedConcurrent
)

func (a Algorithm) String() string {
	switch a {
	case AlgoAuto:
		return "auto"
	case AlgoStandard:
		return "standard"
	case AlgoReordered:
		return "reordered"
	case AlgoBlocked:
		return "blocked"
	case AlgoBlockedReordered:
		return "blockedReordered"
	case AlgoConcurrentStandard:
		return "concurrentStandard"
	case AlgoConcurrentReordered:
		return "concurrentReordered"
	case AlgoConcurrentBlocked:
		return "concurrentBlocked"
	case AlgoConcurrentBlockedReordered:
		return "concurrentBlockedReordered"
	case AlgoStandardVector:
		return "standardVector"
	case AlgoBlockedVector:
		return "blockedVector"
	case AlgoConcurrentStandardVector:
		return "concurrentStandardVector"
	case AlgoConcurrentBlockedVector:
		return "concurrentBlockedVector"
	case AlgoMultTranspose:
		return "multTranspose"
	case AlgoMultTransposeBlocked:
		return "multTransposeBlocked"
	case AlgoMultTransposeConcurrent:
		return "multTransposeConcurrent"
	case AlgoMultTransposeBlockedConcurrent:
		return "multTransposeBlockedConcurrent"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// squarenessRatio is the minimum squareness for a shape to take the
// square branch of the decision trees.
const squarenessRatio = 0.75

// squareness is 1 for a square shape, approaching 0 as it elongates.
func squareness(s shapes.Shape) float64 {
	rows, cols := float64(s.Dim(0)), float64(s.Dim(1))
	return 1 - math.Abs(rows-cols)/math.Max(rows, cols)
}

// Breakpoints for the real (float64) family, from benchmark sweeps of the
// float64 kernels over each shape class.
const (
	realSquareSequentialBelow = 40
	realSquareConcurrentBelow = 3072

	realTallSequentialMaxRows = 100
	realTallSequentialMaxCols = 5

	realWideNarrowMaxCols        = 100
	realWideNarrowSequentialRows = 20
	realWideMediumMaxCols        = 500
	realWideMediumSequentialRows = 10
	realWideBroadSequentialRows  = 5
	realWideBroadStandardRows    = 50

	realVectorBlockedMaxRows           = 300
	realVectorConcurrentBlockedMaxRows = 2048

	realTransposeSequentialBelow = 40
	realTransposeBlockedBelow    = 55
	realTransposeConcurrentBelow = 1200
)

// SelectReal picks a kernel for a real matrix-matrix product from the
// left operand's shape.
func SelectReal(shape1 shapes.Shape) Algorithm {
	rows1, cols1 := shape1.Dim(0), shape1.Dim(1)
	switch {
	case squareness(shape1) >= squarenessRatio:
		switch {
		case rows1 < realSquareSequentialBelow:
			return AlgoReordered
		case rows1 < realSquareConcurrentBelow:
			return AlgoConcurrentReordered
		default:
			return AlgoConcurrentBlockedReordered
		}
	case rows1 > cols1:
		if rows1 <= realTallSequentialMaxRows &&
			cols1 <= realTallSequentialMaxCols {
			return AlgoReordered
		}
		return AlgoConcurrentReordered
	default:
		switch {
		case cols1 <= realWideNarrowMaxCols:
			if rows1 <= realWideNarrowSequentialRows {
				return AlgoReordered
			}
			return AlgoConcurrentReordered
		case cols1 <= realWideMediumMaxCols:
			if rows1 <= realWideMediumSequentialRows {
				return AlgoReordered
			}
			return AlgoConcurrentReordered
		default:
			switch {
			case rows1 <= realWideBroadSequentialRows:
				return AlgoReordered
			case rows1 <= realWideBroadStandardRows:
				return AlgoConcurrentStandard
			default:
				return AlgoConcurrentReordered
			}
		}
	}
}

// SelectRealVector picks a kernel for a real matrix-vector product.
func SelectRealVector(shape1 shapes.Shape) Algorithm {
	switch rows1 := shape1.Dim(0); {
	case rows1 <= realVectorBlockedMaxRows:
		return AlgoBlockedVector
	case rows1 <= realVectorConcurrentBlockedMaxRows:
		return AlgoConcurrentBlockedVector
	default:
		return AlgoConcurrentStandardVector
	}
}

// SelectRealTranspose picks a kernel for a real product with a transposed
// right operand.
//
// TODO: breakpoints are only tuned on square operands; sweep rectangular
// shapes with internal/bench.
func SelectRealTranspose(shape1 shapes.Shape) Algorithm {
	switch rows1 := shape1.Dim(0); {
	case rows1 < realTransposeSequentialBelow:
		return AlgoMultTranspose
	case rows1 < realTransposeBlockedBelow:
		return AlgoMultTransposeBlocked
	case rows1 < realTransposeConcurrentBelow:
		return AlgoMultTransposeConcurrent
	default:
		return AlgoMultTransposeBlockedConcurrent
	}
}

// Breakpoints for the complex (complex128) family.  Complex arithmetic
// costs more per entry, so the concurrent and blocked kernels pay off at
// smaller shapes than in the real family.
const (
	complexSquareSequentialMaxRows = 30
	complexSquareConcurrentMaxRows = 250

	complexTallNarrowMaxRows     = 100
	complexTallSequentialMaxCols = 4
	complexTallConcurrentMaxCols = 45

	complexWideNarrowMaxCols        = 100
	complexWideNarrowSequentialRows = 20
	complexWideMediumMaxCols        = 500
	complexWideMediumSequentialRows = 10
	complexWideMediumConcurrentRows = 200
	complexWideBroadSequentialRows  = 5
	complexWideBroadConcurrentRows  = 15

	complexVectorStandardMaxRows          = 250
	complexVectorConcurrentBlockedMaxRows = 1024

	complexTransposeSequentialBelow = 25
	complexTransposeConcurrentBelow = 750
)

// SelectComplex picks a kernel for a complex matrix-matrix product.
func SelectComplex(shape1 shapes.Shape) Algorithm {
	rows1, cols1 := shape1.Dim(0), shape1.Dim(1)
	switch {
	case squareness(shape1) >= squarenessRatio:
		switch {
		case rows1 <= complexSquareSequentialMaxRows:
			return AlgoReordered
		case rows1 <= complexSquareConcurrentMaxRows:
			return AlgoConcurrentReordered
		default:
			return AlgoConcurrentBlockedReordered
		}
	case rows1 > cols1:
		if rows1 <= complexTallNarrowMaxRows {
			if cols1 <= complexTallSequentialMaxCols {
				return AlgoReordered
			}
			return AlgoConcurrentReordered
		}
		if cols1 <= complexTallConcurrentMaxCols {
			return AlgoConcurrentReordered
		}
		return AlgoConcurrentBlockedReordered
	default:
		switch {
		case cols1 <= complexWideNarrowMaxCols:
			if rows1 <= complexWideNarrowSequentialRows {
				return AlgoReordered
			}
			return AlgoConcurrentReordered
		case cols1 <= complexWideMediumMaxCols:
			switch {
			case rows1 <= complexWideMediumSequentialRows:
				return AlgoReordered
			case rows1 <= complexWideMediumConcurrentRows:
				return AlgoConcurrentReordered
			default:
				return AlgoConcurrentBlockedReordered
			}
		default:
			switch {
			case rows1 <= complexWideBroadSequentialRows:
				return AlgoReordered
			case rows1 <= complexWideBroadConcurrentRows:
				return AlgoConcurrentReordered
			default:
				return AlgoConcurrentBlockedReordered
			}
		}
	}
}

// SelectComplexVector picks a kernel for a complex matrix-vector product.
func SelectComplexVector(shape1 shapes.Shape) Algorithm {
	switch rows1 := shape1.Dim(0); {
	case rows1 <= complexVectorStandardMaxRows:
		return AlgoStandardVector
	case rows1 <= complexVectorConcurrentBlockedMaxRows:
		return AlgoConcurrentBlockedVector
	default:
		return AlgoConcurrentStandardVector
	}
}

// SelectComplexTranspose picks a kernel for a complex product with a
// transposed right operand.
func SelectComplexTranspose(shape1 shapes.Shape) Algorithm {
	switch rows1 := shape1.Dim(0); {
	case rows1 < complexTransposeSequentialBelow:
		return AlgoMultTranspose
	case rows1 < complexTransposeConcurrentBelow:
		return AlgoMultTransposeConcurrent
	default:
		return AlgoMultTransposeBlockedConcurrent
	}
}

// Breakpoints for mixed real/complex products, where one operand is
// widened to complex up front.
const (
	mixedSquareSequentialMaxRows = 40
	mixedSquareConcurrentMaxRows = 225

	mixedTallNarrowMaxRows     = 100
	mixedTallSequentialMaxCols = 2
	mixedTallConcurrentMaxCols = 45

	mixedWideNarrowMaxCols             = 100
	mixedWideNarrowSequentialRows      = 15
	mixedWideMediumMaxCols             = 500
	mixedWideMediumSequentialRows      = 15
	mixedWideMediumConcurrentRows      = 100
	mixedWideBroadSequentialRows       = 2
	mixedWideBroadBlockedReorderedRows = 15
	mixedWideBroadConcurrentRows       = 150

	mixedVectorStandardMaxRows = 600

	mixedTransposeSequentialBelow = 50
	mixedTransposeBlockedBelow    = 60
	mixedTransposeConcurrentBelow = 300
)

// SelectRealComplex picks a kernel for a mixed real/complex matrix-matrix
// product.
func SelectRealComplex(shape1 shapes.Shape) Algorithm {
	rows1, cols1 := shape1.Dim(0), shape1.Dim(1)
	switch {
	case squareness(shape1) >= squarenessRatio:
		switch {
		case rows1 <= mixedSquareSequentialMaxRows:
			return AlgoReordered
		case rows1 <= mixedSquareConcurrentMaxRows:
			return AlgoConcurrentReordered
		default:
			return AlgoConcurrentBlockedReordered
		}
	case rows1 > cols1:
		if rows1 <= mixedTallNarrowMaxRows {
			if cols1 <= mixedTallSequentialMaxCols {
				return AlgoReordered
			}
			return AlgoConcurrentReordered
		}
		if cols1 <= mixedTallConcurrentMaxCols {
			return AlgoConcurrentReordered
		}
		return AlgoConcurrentBlockedReordered
	default:
		switch {
		case cols1 <= mixedWideNarrowMaxCols:
			if rows1 <= mixedWideNarrowSequentialRows {
				return AlgoReordered
			}
			return AlgoConcurrentReordered
		case cols1 <= mixedWideMediumMaxCols:
			switch {
			case rows1 <= mixedWideMediumSequentialRows:
				return AlgoReordered
			case rows1 <= mixedWideMediumConcurrentRows:
				return AlgoConcurrentReordered
			default:
				return AlgoConcurrentBlockedReordered
			}
		default:
			switch {
			case rows1 <= mixedWideBroadSequentialRows:
				return AlgoReordered
			case rows1 <= mixedWideBroadBlockedReorderedRows:
				return AlgoBlockedReordered
			case rows1 <= mixedWideBroadConcurrentRows:
				return AlgoConcurrentReordered
			default:
				return AlgoConcurrentBlockedReordered
			}
		}
	}
}

// SelectRealComplexVector picks a kernel for a mixed real/complex
// matrix-vector product.
func SelectRealComplexVector(shape1 shapes.Shape) Algorithm {
	if shape1.Dim(0) <= mixedVectorStandardMaxRows {
		return AlgoStandardVector
	}
	return AlgoConcurrentBlockedVector
}

// SelectRealComplexTranspose picks a kernel for a mixed real/complex
// product with a transposed right operand.
func SelectRealComplexTranspose(shape1 shapes.Shape) Algorithm {
	switch rows1 := shape1.Dim(0); {
	case rows1 < mixedTransposeSequentialBelow:
		return AlgoMultTranspose
	case rows1 < mixedTransposeBlockedBelow:
		return AlgoMultTransposeBlocked
	case rows1 < mixedTransposeConcurrentBelow:
		return AlgoMultTransposeConcurrent
	default:
		return AlgoMultTransposeBlockedConcurrent
	}
}

// Arbitrary element types reuse the real-family breakpoints, except for
// the vector products.
const (
	genericVectorStandardMaxRows = 600
)

// SelectGeneric picks a kernel for a matrix-matrix product over an
// arbitrary element type.
func SelectGeneric(shape1 shapes.Shape) Algorithm {
	return SelectReal(shape1)
}

// SelectGenericVector picks a kernel for a matrix-vector product over an
// arbitrary element type.
func SelectGenericVector(shape1 shapes.Shape) Algorithm {
	if shape1.Dim(0) <= genericVectorStandardMaxRows {
		return AlgoStandardVector
	}
	return AlgoConcurrentBlockedVector
}

// SelectGenericTranspose picks a kernel for a product with a transposed
// right operand over an arbitrary element type.
func SelectGenericTranspose(shape1 shapes.Shape) Algorithm {
	return SelectRealTranspose(shape1)
}
