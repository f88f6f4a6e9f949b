package algebra

import (
	"math"

	"k3l.io/go-linalg/pkg/util"
)

// Real is the float64 element type.
type Real float64

func (x Real) Add(y Real) Real { return x + y }

func (x Real) Sub(y Real) Real { return x - y }

func (x Real) Mult(y Real) Real { return x * y }

func (x Real) AddInv() Real { return -x }

func (x Real) Zero() Real { return 0 }

func (x Real) One() Real { return 1 }

func (x Real) IsZero() bool { return x == 0 }

func (x Real) IsOne() bool { return x == 1 }

func (x Real) Abs() float64 { return math.Abs(float64(x)) }

func (x Real) Equals(y Real) bool { return x == y }

// Conj returns the receiver; real values are self-conjugate.
func (x Real) Conj() Real { return x }

// Complex widens the receiver into a Complex with zero imaginary part.
func (x Real) Complex() Complex { return Complex(complex(float64(x), 0)) }

// LiftComplex widens a real slice element-wise.
func LiftComplex(xs []Real) []Complex {
	return util.Map(xs, Real.Complex)
}
