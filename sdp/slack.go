// Package sdp: dense slack-matrix reconstruction for feasibility checks.

package sdp

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Slack reconstructs the slack matrix X = Σᵢ xᵢFᵢ − F₀ as one dense
// symmetric matrix per block. Diagonal blocks are expanded to dense for a
// uniform return shape (their off-diagonals are zero).
//
// Use case: verifying a candidate solution from an external backend —
// feasibility means every returned block is positive semidefinite.
//
// Errors:
//   - everything Problem.Validate returns
//   - ErrVectorLength — len(x) != p.NumVars()
//   - ErrNaNInf       — a non-finite value in x
//
// Complexity: O(Σ sᵢ² + E) for block sizes sᵢ and E sparse entries.
func (p *Problem) Slack(x []float64) ([]*mat.SymDense, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(x) != p.NumVars() {
		return nil, ErrVectorLength
	}
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNaNInf
		}
	}

	blocks := make([]*mat.SymDense, len(p.BlockSizes))
	for b, s := range p.BlockSizes {
		if s < 0 {
			s = -s
		}
		blocks[b] = mat.NewSymDense(s, nil)
	}

	// F₀ enters with weight -1, every Fᵢ with weight xᵢ.
	for k, m := range p.F {
		weight := -1.0
		if k > 0 {
			weight = x[k-1]
		}
		for _, e := range m {
			blk := blocks[e.Block]
			blk.SetSym(e.Row, e.Col, blk.At(e.Row, e.Col)+weight*e.Value)
		}
	}

	return blocks, nil
}

// MinEigenvalue returns the smallest eigenvalue across all slack blocks for
// the assignment x — a feasibility margin: non-negative (within solver
// tolerance) means x is primal feasible.
//
// Complexity: O(Σ sᵢ³).
func (p *Problem) MinEigenvalue(x []float64) (float64, error) {
	blocks, err := p.Slack(x)
	if err != nil {
		return 0, err
	}

	minEig := math.Inf(1)
	var eig mat.EigenSym
	for _, blk := range blocks {
		if !eig.Factorize(blk, false) {
			return 0, ErrNaNInf
		}
		for _, v := range eig.Values(nil) {
			if v < minEig {
				minEig = v
			}
		}
	}

	return minEig, nil
}
