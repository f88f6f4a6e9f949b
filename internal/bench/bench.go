// Package bench times the dense multiplication kernels over the shape
// classes behind the dispatcher's breakpoint tables, so that the tables
// can be re-tuned on new hardware.
package bench

import (
	"fmt"
	"time"

	"github.com/mohae/deepcopy"

	"k3l.io/go-linalg/pkg/dense"
	"k3l.io/go-linalg/pkg/shapes"
)

// Kind selects the product family a case exercises.
type Kind int

const (
	// Matrix times an (Rows x Inner) by an (Inner x Cols) product.
	Matrix Kind = iota
	// Vector times an (Rows x Inner) by an Inner-vector product.
	// Cols is unused.
	Vector
	// Transpose times an (Rows x Inner) product with a transposed
	// (Cols x Inner) right operand.
	Transpose
)

func (k Kind) String() string {
	switch k {
	case Matrix:
		return "matrix"
	case Vector:
		return "vector"
	case Transpose:
		return "transpose"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Case is one shape point of a sweep.
type Case struct {
	Name    string
	Kind    Kind
	Rows    int
	Inner   int
	Cols    int
	Repeats int
	Seed    int64
	// Verify checks every kernel's product against a gonum baseline.
	Verify bool
	// Algorithms overrides the kind's default kernel palette.
	Algorithms []dense.Algorithm
}

// Selected is the dispatcher's pick for the case's left-operand shape.
func (c Case) Selected() dense.Algorithm {
	shape := shapes.Of(c.Rows, c.Inner)
	switch c.Kind {
	case Vector:
		return dense.SelectRealVector(shape)
	case Transpose:
		return dense.SelectRealTranspose(shape)
	default:
		return dense.SelectReal(shape)
	}
}

func (c Case) palette() []dense.Algorithm {
	if len(c.Algorithms) > 0 {
		return c.Algorithms
	}
	switch c.Kind {
	case Vector:
		return VectorAlgorithms
	case Transpose:
		return TransposeAlgorithms
	default:
		return MatrixAlgorithms
	}
}

// Result is one kernel's timing on one case.
type Result struct {
	Case      string
	Kind      Kind
	Rows      int
	Inner     int
	Cols      int
	Algorithm dense.Algorithm
	// Selected marks the kernel the dispatcher picks for this shape.
	Selected bool
	Best     time.Duration
	Mean     time.Duration
}

// Default kernel palettes, one per product family.
var (
	MatrixAlgorithms = []dense.Algorithm{
		dense.AlgoStandard,
		dense.AlgoReordered,
		dense.AlgoBlocked,
		dense.AlgoBlockedReordered,
		dense.AlgoConcurrentStandard,
		dense.AlgoConcurrentReordered,
		dense.AlgoConcurrentBlocked,
		dense.AlgoConcurrentBlockedReordered,
	}
	VectorAlgorithms = []dense.Algorithm{
		dense.AlgoStandardVector,
		dense.AlgoBlockedVector,
		dense.AlgoConcurrentStandardVector,
		dense.AlgoConcurrentBlockedVector,
	}
	TransposeAlgorithms = []dense.Algorithm{
		dense.AlgoMultTranspose,
		dense.AlgoMultTransposeBlocked,
		dense.AlgoMultTransposeConcurrent,
		dense.AlgoMultTransposeBlockedConcurrent,
	}
)

// Expand stamps the template over the given (rows, inner, cols) points.
// Each case gets a deep copy of the template, so the Algorithms slice is
// not shared.
func Expand(template Case, class string, points [][3]int) []Case {
	cases := make([]Case, 0, len(points))
	for _, pt := range points {
		c := deepcopy.Copy(template).(Case)
		c.Name = fmt.Sprintf("%s/%dx%dx%d", class, pt[0], pt[1], pt[2])
		c.Rows, c.Inner, c.Cols = pt[0], pt[1], pt[2]
		cases = append(cases, c)
	}
	return cases
}

// MatrixSweep brackets the real-family matrix-matrix breakpoints with
// square, tall, and wide shape ladders.
func MatrixSweep(template Case) []Case {
	template.Kind = Matrix
	var cases []Case
	cases = append(cases, Expand(template, "square", [][3]int{
		{16, 16, 16}, {32, 32, 32}, {40, 40, 40}, {48, 48, 48},
		{64, 64, 64}, {128, 128, 128}, {256, 256, 256},
	})...)
	cases = append(cases, Expand(template, "tall", [][3]int{
		{96, 4, 64}, {96, 8, 64}, {128, 4, 64}, {256, 16, 64},
	})...)
	cases = append(cases, Expand(template, "wide", [][3]int{
		{16, 96, 64}, {32, 96, 64}, {8, 384, 64}, {16, 384, 64},
		{4, 768, 64}, {32, 768, 64}, {64, 768, 64},
	})...)
	return cases
}

// VectorSweep brackets the real-family matrix-vector breakpoints.
func VectorSweep(template Case) []Case {
	template.Kind = Vector
	return Expand(template, "vector", [][3]int{
		{256, 512, 1}, {320, 512, 1}, {1024, 512, 1},
		{1800, 512, 1}, {2300, 512, 1},
	})
}

// TransposeSweep brackets the real-family transposed-product breakpoints.
func TransposeSweep(template Case) []Case {
	template.Kind = Transpose
	return Expand(template, "transpose", [][3]int{
		{32, 64, 32}, {48, 64, 48}, {64, 64, 64},
		{1100, 64, 64}, {1300, 64, 64},
	})
}
