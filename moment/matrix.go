// Package moment: moment-matrix index construction.

package moment

import "github.com/katalvlaran/ncpol/operator"

// ZeroEntry marks a cell whose monomial annihilated under the rules.
const ZeroEntry = -1

// Matrix is the symbolic moment matrix over a basis: every cell (i,j) holds
// the variable index of the canonical form of uᵢ†·uⱼ, or ZeroEntry when the
// product reduced to zero. Variable 0 is always the identity moment ⟨1⟩.
//
// A moment and its adjoint share one variable (the matrix is Hermitian and
// the relaxation is real-valued), represented by the lexicographically
// smaller of the two canonical keys.
type Matrix struct {
	// Basis is the indexing monomial sequence; Basis[0] is the identity.
	Basis operator.Basis

	// Moments lists one representative monomial per variable, in
	// first-occurrence order over the row-major matrix walk.
	Moments []operator.Monomial

	// Entry is the len(Basis)×len(Basis) variable-index table.
	Entry [][]int
}

// Size returns the side length of the moment matrix.
func (m *Matrix) Size() int {
	return len(m.Basis)
}

// NumMoments returns the number of distinct moment variables, the identity
// included.
func (m *Matrix) NumMoments() int {
	return len(m.Moments)
}

// Build constructs the moment-matrix index for basis under subs. A nil subs
// applies no algebraic reduction (purely syntactic moments).
//
// Determinism: the walk is row-major over the basis order, variables are
// numbered first-occurrence-wins, so identical inputs give identical
// indexes — the property the downstream SDP block layout relies on.
//
// Errors:
//   - ErrEmptyBasis  — basis has no elements.
//   - ErrNoIdentity  — basis[0] is not the identity monomial.
//
// Complexity: O(b²·k²) for b basis monomials of degree ≤ k.
func Build(basis operator.Basis, subs *Substitutions) (*Matrix, error) {
	if len(basis) == 0 {
		return nil, ErrEmptyBasis
	}
	if !basis[0].IsIdentity() {
		return nil, ErrNoIdentity
	}

	n := len(basis)
	mm := &Matrix{
		Basis: basis,
		Entry: make([][]int, n),
	}
	adjoints := make([]operator.Monomial, n)
	for i, u := range basis {
		mm.Entry[i] = make([]int, n)
		adjoints[i] = u.Adjoint()
	}

	varByKey := make(map[string]int)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			rep, annihilated := canonicalMoment(adjoints[i].Mul(basis[j]), subs)
			if annihilated {
				mm.Entry[i][j] = ZeroEntry
				continue
			}
			id, ok := varByKey[rep.Key()]
			if !ok {
				id = len(mm.Moments)
				varByKey[rep.Key()] = id
				mm.Moments = append(mm.Moments, rep)
			}
			mm.Entry[i][j] = id
		}
	}

	return mm, nil
}

// canonicalMoment reduces m and identifies it with its adjoint: the
// representative is whichever of reduce(m) and reduce(m†) has the smaller
// canonical key.
func canonicalMoment(m operator.Monomial, subs *Substitutions) (operator.Monomial, bool) {
	red, zero := subs.Reduce(m)
	if zero {
		return operator.Identity(), true
	}
	adj, zeroAdj := subs.Reduce(red.Adjoint())
	if zeroAdj {
		// m† = 0 forces m = 0 in any *-algebra.
		return operator.Identity(), true
	}
	if adj.Key() < red.Key() {
		return adj, false
	}

	return red, false
}
