package sparse

import "k3l.io/go-linalg/pkg/algebra"

// Tolerances for IsCloseToIdentity: diagonal entries may drift further
// from one than off-diagonal entries may drift from zero.
const (
	closeToIdentityDiagTol    = 1.001e-5
	closeToIdentityNonDiagTol = 1e-8
)

// Equals reports element-wise equality.  Explicitly stored zeros count
// as absent, so matrices that agree at every coordinate are equal even
// when their stored structures differ.
func (m *CSRMatrix[T]) Equals(o *CSRMatrix[T]) bool {
	if !m.Shape.Equals(o.Shape) {
		return false
	}
	for i := 0; i < m.Rows(); i++ {
		p1, end1 := m.RowPointers[i], m.RowPointers[i+1]
		p2, end2 := o.RowPointers[i], o.RowPointers[i+1]
		for p1 < end1 || p2 < end2 {
			if p1 < end1 && m.Entries[p1].IsZero() {
				p1++
				continue
			}
			if p2 < end2 && o.Entries[p2].IsZero() {
				p2++
				continue
			}
			if p1 >= end1 || p2 >= end2 {
				// one side has surplus non-zeros
				return false
			}
			if m.ColIndices[p1] != o.ColIndices[p2] ||
				!m.Entries[p1].Equals(o.Entries[p2]) {
				return false
			}
			p1++
			p2++
		}
	}
	return true
}

// Equals reports element-wise equality.  Explicitly stored zeros count
// as absent, so matrices that agree at every coordinate are equal even
// when their stored structures differ.
func (m *COOMatrix[T]) Equals(o *COOMatrix[T]) bool {
	if !m.Shape.Equals(o.Shape) {
		return false
	}
	len1, len2 := len(m.Entries), len(o.Entries)
	p1, p2 := 0, 0
	for p1 < len1 || p2 < len2 {
		if p1 < len1 && m.Entries[p1].IsZero() {
			p1++
			continue
		}
		if p2 < len2 && o.Entries[p2].IsZero() {
			p2++
			continue
		}
		if p1 >= len1 || p2 >= len2 {
			// one side has surplus non-zeros
			return false
		}
		if m.RowIndices[p1] != o.RowIndices[p2] ||
			m.ColIndices[p1] != o.ColIndices[p2] ||
			!m.Entries[p1].Equals(o.Entries[p2]) {
			return false
		}
		p1++
		p2++
	}
	return true
}

// IsIdentity reports whether the matrix is exactly the identity:
// square, every diagonal entry one, everything else zero.
func (m *CSRMatrix[T]) IsIdentity() bool {
	// a full diagonal needs at least one stored entry per row
	if !m.Shape.IsSquare() || len(m.Entries) < m.Rows() {
		return false
	}
	diagCount := 0
	for i := 0; i < m.Rows(); i++ {
		for p := m.RowPointers[i]; p < m.RowPointers[i+1]; p++ {
			if m.ColIndices[p] == i {
				if !m.Entries[p].IsOne() {
					return false
				}
				diagCount++
			} else if !m.Entries[p].IsZero() {
				return false
			}
		}
	}
	return diagCount == m.Rows()
}

// IsCloseToIdentity reports whether the matrix is within rounding noise
// of the identity.
func (m *CSRMatrix[T]) IsCloseToIdentity() bool {
	if !m.Shape.IsSquare() || len(m.Entries) < m.Rows() {
		return false
	}
	diagCount := 0
	for i := 0; i < m.Rows(); i++ {
		for p := m.RowPointers[i]; p < m.RowPointers[i+1]; p++ {
			entry := m.Entries[p]
			if m.ColIndices[p] == i {
				if entry.Sub(entry.One()).Abs() > closeToIdentityDiagTol {
					return false
				}
				diagCount++
			} else if entry.Abs() > closeToIdentityNonDiagTol {
				return false
			}
		}
	}
	return diagCount == m.Rows()
}

// IsSymmetric reports whether the matrix equals its transpose.
func (m *CSRMatrix[T]) IsSymmetric() bool {
	return m.Shape.IsSquare() && m.Equals(m.Transpose())
}

// IsAntiSymmetric reports whether the matrix equals the negation of its
// transpose.
func (m *CSRMatrix[T]) IsAntiSymmetric() bool {
	return m.Shape.IsSquare() && m.Equals(m.Transpose().AddInv())
}

// IsSymmetric reports whether the matrix equals its transpose.
func (m *COOMatrix[T]) IsSymmetric() bool {
	return m.Shape.IsSquare() && m.Equals(m.Transpose())
}

// IsAntiSymmetric reports whether the matrix equals the negation of its
// transpose.
func (m *COOMatrix[T]) IsAntiSymmetric() bool {
	return m.Shape.IsSquare() && m.Equals(m.Transpose().AddInv())
}

// IsHermitianCSR reports whether the matrix equals its conjugate
// transpose.
func IsHermitianCSR[T algebra.ConjElement[T]](m *CSRMatrix[T]) bool {
	return m.Shape.IsSquare() && m.Equals(HermTransposeCSR(m))
}

// IsHermitianCOO reports whether the matrix equals its conjugate
// transpose.
func IsHermitianCOO[T algebra.ConjElement[T]](m *COOMatrix[T]) bool {
	return m.Shape.IsSquare() && m.Equals(HermTransposeCOO(m))
}
