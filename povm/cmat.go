// Package povm: real symmetric embedding of complex Hermitian matrices.
//
// The map H = A + iB ↦ [[A, −B], [B, A]] is an injective *-algebra
// homomorphism into real 2d×2d matrices, carrying Hermitian to symmetric
// and doubling each eigenvalue's multiplicity. It keeps every spectral
// computation inside gonum's real symmetric routines.

package povm

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// embedHermitian returns the real symmetric embedding of m. The Hermitian
// part (m + m†)/2 is used, so tiny numeric asymmetry cannot break the
// SymDense contract.
//
// Complexity: O(d²).
func embedHermitian(m *mat.CDense) *mat.SymDense {
	d, _ := m.Dims()
	e := mat.NewSymDense(2*d, nil)
	for i := 0; i < d; i++ {
		for j := i; j < d; j++ {
			h := (m.At(i, j) + cmplx.Conj(m.At(j, i))) / 2
			a, b := real(h), imag(h)
			e.SetSym(i, j, a)
			e.SetSym(d+i, d+j, a)
			// Antisymmetric block: B(i,j) sits at (d+i, j); its mirror
			// (i, d+j) carries −B(i,j). SetSym writes both triangles, so
			// only the upper-triangle coordinates are touched.
			if i != j {
				e.SetSym(i, d+j, -b)
				e.SetSym(j, d+i, b)
			}
		}
	}

	return e
}

// minEigHermitian returns the smallest eigenvalue of the Hermitian part of
// m, computed on the real embedding.
//
// Complexity: O(d³).
func minEigHermitian(m *mat.CDense) float64 {
	var eig mat.EigenSym
	if !eig.Factorize(embedHermitian(m), false) {
		// Factorization of a finite symmetric matrix does not fail; a
		// non-finite input surfaces as -Inf and is caught by callers.
		return math.Inf(-1)
	}

	values := eig.Values(nil)
	minV := values[0]
	for _, v := range values[1:] {
		if v < minV {
			minV = v
		}
	}

	return minV
}
