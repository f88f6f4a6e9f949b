package algebra

import "math/cmplx"

// Complex is the complex128 element type.
type Complex complex128

func (x Complex) Add(y Complex) Complex { return x + y }

func (x Complex) Sub(y Complex) Complex { return x - y }

func (x Complex) Mult(y Complex) Complex { return x * y }

func (x Complex) AddInv() Complex { return -x }

func (x Complex) Zero() Complex { return 0 }

func (x Complex) One() Complex { return 1 }

func (x Complex) IsZero() bool { return x == 0 }

func (x Complex) IsOne() bool { return x == 1 }

// Abs returns the complex modulus.
func (x Complex) Abs() float64 { return cmplx.Abs(complex128(x)) }

func (x Complex) Equals(y Complex) bool { return x == y }

// Conj returns the complex conjugate.
func (x Complex) Conj() Complex { return Complex(cmplx.Conj(complex128(x))) }
