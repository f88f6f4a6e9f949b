package dense

import (
	"k3l.io/go-linalg/pkg/algebra"
	"k3l.io/go-linalg/pkg/shapes"
)

// Mult multiplies two dense matrices, picking a kernel from the left
// operand's shape.  The family entry points (MultReal, MultComplex,
// MultRealComplex, MultComplexReal) use decision trees tuned to their
// element types; unknown types fall back to the generic tree.
//
// The kernel choice never affects the result: every kernel accumulates
// each destination cell in the same order.
func Mult[T algebra.Element[T]](
	m1, m2 *Matrix[T], opts ...MultOpt,
) (*Matrix[T], error) {
	return multVia(m1, m2, SelectGeneric, SelectGenericVector, opts)
}

// MultReal is Mult with the real-family decision tree.
func MultReal(
	m1, m2 *Matrix[algebra.Real], opts ...MultOpt,
) (*Matrix[algebra.Real], error) {
	return multVia(m1, m2, SelectReal, SelectRealVector, opts)
}

// MultComplex is Mult with the complex-family decision tree.
func MultComplex(
	m1, m2 *Matrix[algebra.Complex], opts ...MultOpt,
) (*Matrix[algebra.Complex], error) {
	return multVia(m1, m2, SelectComplex, SelectComplexVector, opts)
}

// MultRealComplex multiplies a real by a complex matrix.
// The real operand is widened once up front.
func MultRealComplex(
	m1 *Matrix[algebra.Real], m2 *Matrix[algebra.Complex], opts ...MultOpt,
) (*Matrix[algebra.Complex], error) {
	return multVia(
		LiftComplex(m1), m2, SelectRealComplex, SelectRealComplexVector, opts)
}

// MultComplexReal multiplies a complex by a real matrix.
// The real operand is widened once up front.
func MultComplexReal(
	m1 *Matrix[algebra.Complex], m2 *Matrix[algebra.Real], opts ...MultOpt,
) (*Matrix[algebra.Complex], error) {
	return multVia(
		m1, LiftComplex(m2), SelectRealComplex, SelectRealComplexVector, opts)
}

func multVia[T algebra.Element[T]](
	m1, m2 *Matrix[T],
	sel, selVec func(shapes.Shape) Algorithm,
	opts []MultOpt,
) (*Matrix[T], error) {
	if err := shapes.EnsureMultCompatible(m1.Shape, m2.Shape); err != nil {
		return nil, err
	}
	o := NewMultOpts(opts...)
	alg := o.Algorithm
	var data []T
	if m2.Shape.Dim(1) == 1 {
		// Matrix-vector product in disguise.
		if alg == AlgoAuto {
			alg = selVec(m1.Shape)
		}
		data = runVec(alg, m1.Data, m1.Shape, m2.Data, o.BlockSize)
	} else {
		if alg == AlgoAuto {
			alg = sel(m1.Shape)
		}
		data = run(alg, m1.Data, m1.Shape, m2.Data, m2.Shape, o.BlockSize)
	}
	return &Matrix[T]{
		Shape: shapes.Of(m1.Shape.Dim(0), m2.Shape.Dim(1)),
		Data:  data,
	}, nil
}

// MultVec multiplies a dense matrix by a dense vector.
func MultVec[T algebra.Element[T]](
	m *Matrix[T], v []T, opts ...MultOpt,
) ([]T, error) {
	return multVecVia(m, v, SelectGenericVector, opts)
}

// MultVecReal is MultVec with the real-family decision tree.
func MultVecReal(
	m *Matrix[algebra.Real], v []algebra.Real, opts ...MultOpt,
) ([]algebra.Real, error) {
	return multVecVia(m, v, SelectRealVector, opts)
}

// MultVecComplex is MultVec with the complex-family decision tree.
func MultVecComplex(
	m *Matrix[algebra.Complex], v []algebra.Complex, opts ...MultOpt,
) ([]algebra.Complex, error) {
	return multVecVia(m, v, SelectComplexVector, opts)
}

// MultVecRealComplex multiplies a real matrix by a complex vector.
func MultVecRealComplex(
	m *Matrix[algebra.Real], v []algebra.Complex, opts ...MultOpt,
) ([]algebra.Complex, error) {
	return multVecVia(LiftComplex(m), v, SelectRealComplexVector, opts)
}

// MultVecComplexReal multiplies a complex matrix by a real vector.
func MultVecComplexReal(
	m *Matrix[algebra.Complex], v []algebra.Real, opts ...MultOpt,
) ([]algebra.Complex, error) {
	return multVecVia(m, algebra.LiftComplex(v), SelectRealComplexVector, opts)
}

func multVecVia[T algebra.Element[T]](
	m *Matrix[T], v []T,
	selVec func(shapes.Shape) Algorithm,
	opts []MultOpt,
) ([]T, error) {
	if err := shapes.EnsureVecMultCompatible(m.Shape, len(v)); err != nil {
		return nil, err
	}
	o := NewMultOpts(opts...)
	alg := o.Algorithm
	if alg == AlgoAuto {
		alg = selVec(m.Shape)
	}
	return runVec(alg, m.Data, m.Shape, v, o.BlockSize), nil
}

// MultTranspose multiplies m1 by the transpose of m2, without forming the
// transpose.
func MultTranspose[T algebra.Element[T]](
	m1, m2 *Matrix[T], opts ...MultOpt,
) (*Matrix[T], error) {
	return multTransposeVia(m1, m2, SelectGenericTranspose, opts)
}

// MultTransposeReal is MultTranspose with the real-family decision tree.
func MultTransposeReal(
	m1, m2 *Matrix[algebra.Real], opts ...MultOpt,
) (*Matrix[algebra.Real], error) {
	return multTransposeVia(m1, m2, SelectRealTranspose, opts)
}

// MultTransposeComplex is MultTranspose with the complex-family decision
// tree.
func MultTransposeComplex(
	m1, m2 *Matrix[algebra.Complex], opts ...MultOpt,
) (*Matrix[algebra.Complex], error) {
	return multTransposeVia(m1, m2, SelectComplexTranspose, opts)
}

// MultTransposeRealComplex multiplies a real matrix by a transposed
// complex matrix.
func MultTransposeRealComplex(
	m1 *Matrix[algebra.Real], m2 *Matrix[algebra.Complex], opts ...MultOpt,
) (*Matrix[algebra.Complex], error) {
	return multTransposeVia(
		LiftComplex(m1), m2, SelectRealComplexTranspose, opts)
}

// MultTransposeComplexReal multiplies a complex matrix by a transposed
// real matrix.
func MultTransposeComplexReal(
	m1 *Matrix[algebra.Complex], m2 *Matrix[algebra.Real], opts ...MultOpt,
) (*Matrix[algebra.Complex], error) {
	return multTransposeVia(
		m1, LiftComplex(m2), SelectRealComplexTranspose, opts)
}

func multTransposeVia[T algebra.Element[T]](
	m1, m2 *Matrix[T],
	selTranspose func(shapes.Shape) Algorithm,
	opts []MultOpt,
) (*Matrix[T], error) {
	err := shapes.EnsureMultTransposeCompatible(m1.Shape, m2.Shape)
	if err != nil {
		return nil, err
	}
	o := NewMultOpts(opts...)
	alg := o.Algorithm
	if alg == AlgoAuto {
		alg = selTranspose(m1.Shape)
	}
	data := runTranspose(alg, m1.Data, m1.Shape, m2.Data, m2.Shape, o.BlockSize)
	return &Matrix[T]{
		Shape: shapes.Of(m1.Shape.Dim(0), m2.Shape.Dim(0)),
		Data:  data,
	}, nil
}

// run executes the chosen matrix-matrix kernel.
// Unrecognized choices fall back to the standard kernel.
func run[T algebra.Element[T]](
	alg Algorithm,
	src1 []T, shape1 shapes.Shape, src2 []T, shape2 shapes.Shape,
	blockSize int,
) []T {
	switch alg {
	case AlgoReordered:
		return reordered(src1, shape1, src2, shape2)
	case AlgoBlocked:
		return blocked(src1, shape1, src2, shape2, blockSize)
	case AlgoBlockedReordered:
		return blockedReordered(src1, shape1, src2, shape2, blockSize)
	case AlgoConcurrentStandard:
		return concurrentStandard(src1, shape1, src2, shape2)
	case AlgoConcurrentReordered:
		return concurrentReordered(src1, shape1, src2, shape2)
	case AlgoConcurrentBlocked:
		return concurrentBlocked(src1, shape1, src2, shape2, blockSize)
	case AlgoConcurrentBlockedReordered:
		return concurrentBlockedReordered(src1, shape1, src2, shape2, blockSize)
	default:
		return standard(src1, shape1, src2, shape2)
	}
}

// runVec executes the chosen matrix-vector kernel.
func runVec[T algebra.Element[T]](
	alg Algorithm, src1 []T, shape1 shapes.Shape, src2 []T, blockSize int,
) []T {
	switch alg {
	case AlgoBlockedVector:
		return blockedVector(src1, shape1, src2, blockSize)
	case AlgoConcurrentStandardVector:
		return concurrentStandardVector(src1, shape1, src2)
	case AlgoConcurrentBlockedVector:
		return concurrentBlockedVector(src1, shape1, src2, blockSize)
	default:
		return standardVector(src1, shape1, src2)
	}
}

// runTranspose executes the chosen transposed-multiply kernel.
func runTranspose[T algebra.Element[T]](
	alg Algorithm,
	src1 []T, shape1 shapes.Shape, src2 []T, shape2 shapes.Shape,
	blockSize int,
) []T {
	switch alg {
	case AlgoMultTransposeBlocked:
		return multTransposeBlocked(src1, shape1, src2, shape2, blockSize)
	case AlgoMultTransposeConcurrent:
		return multTransposeConcurrent(src1, shape1, src2, shape2)
	case AlgoMultTransposeBlockedConcurrent:
		return multTransposeBlockedConcurrent(src1, shape1, src2, shape2, blockSize)
	default:
		return multTranspose(src1, shape1, src2, shape2)
	}
}
