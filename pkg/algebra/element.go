// Package algebra defines the element contract that all generic matrix
// kernels in go-linalg are parameterized over, plus the built-in real and
// complex element types.
package algebra

// Element is the value contract required of matrix/vector entries.
//
// The constraint is self-referential: a conforming type T declares its
// methods over T itself, so every kernel instantiation resolves arithmetic
// at compile time.  Implementations are expected to be small value types;
// all methods must leave the receiver unmodified.
type Element[T any] interface {
	// Add returns the receiver plus the argument.
	Add(T) T
	// Sub returns the receiver minus the argument.
	Sub(T) T
	// Mult returns the receiver times the argument.
	Mult(T) T
	// AddInv returns the additive inverse of the receiver.
	AddInv() T
	// Zero returns the additive identity of T.
	Zero() T
	// One returns the multiplicative identity of T.
	One() T
	// IsZero reports whether the receiver equals the additive identity.
	IsZero() bool
	// IsOne reports whether the receiver equals the multiplicative identity.
	IsOne() bool
	// Abs returns the magnitude of the receiver.
	Abs() float64
	// Equals reports whether the receiver equals the argument exactly.
	Equals(T) bool
}

// ConjElement is an Element with complex conjugation.
// Real-valued types return themselves.
type ConjElement[T any] interface {
	Element[T]
	Conj() T
}

// ZeroOf returns the additive identity for T, sampled from the first entry
// of the first non-empty slice.  The zero element is only obtainable from an
// existing instance; with no sample available, it falls back to T's zero
// value, which coincides with the additive identity for the built-in
// element types.
func ZeroOf[T Element[T]](samples ...[]T) T {
	for _, s := range samples {
		if len(s) > 0 {
			return s[0].Zero()
		}
	}
	var zero T
	return zero
}

// Fill sets every element of dest to v.
func Fill[T any](dest []T, v T) {
	for i := range dest {
		dest[i] = v
	}
}
