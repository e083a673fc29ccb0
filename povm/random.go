// Package povm: deterministic Haar-based random POVM sampling.

package povm

import (
	"math"
	"math/cmplx"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Random samples a POVM from the Haar-isometry ensemble: a complex Ginibre
// matrix of shape (dim·outcomes)×dim is orthonormalized into an isometry V,
// whose dim×dim row blocks Vₐ define the effects Mₐ = Vₐ†·Vₐ. Completeness
// ΣMₐ = V†V = I and positivity hold by construction.
//
// Policy: seed==0 uses the fixed default stream; identical (dim, outcomes,
// seed) triples produce identical POVMs on every platform.
//
// Errors: ErrBadDimension (dim < 1), ErrNoEffects (outcomes < 1).
//
// Complexity: O(outcomes·dim³).
func Random(dim, outcomes int, seed int64) (POVM, error) {
	return randomFromRNG(dim, outcomes, rngFromSeed(seed))
}

// RandomEnsemble samples count independent POVMs from SplitMix64-derived
// substreams of seed, so members stay independent and individually
// reproducible regardless of how many are drawn.
//
// Errors: ErrBadDimension, ErrNoEffects; count < 1 yields an empty slice.
//
// Complexity: O(count·outcomes·dim³).
func RandomEnsemble(dim, outcomes, count int, seed int64) ([]POVM, error) {
	if count < 1 {
		return nil, nil
	}
	out := make([]POVM, count)
	for i := range out {
		p, err := randomFromRNG(dim, outcomes, deriveRNG(seed, uint64(i)))
		if err != nil {
			return nil, err
		}
		out[i] = p
	}

	return out, nil
}

// randomFromRNG draws one POVM from the given stream.
func randomFromRNG(dim, outcomes int, rng *rand.Rand) (POVM, error) {
	if dim < 1 {
		return POVM{}, ErrBadDimension
	}
	if outcomes < 1 {
		return POVM{}, ErrNoEffects
	}

	v := haarIsometry(dim*outcomes, dim, rng)

	effects := make([]*mat.CDense, outcomes)
	for a := 0; a < outcomes; a++ {
		m := mat.NewCDense(dim, dim, nil)
		for i := 0; i < dim; i++ {
			for j := 0; j < dim; j++ {
				sum := complex(0, 0)
				for r := 0; r < dim; r++ {
					sum += cmplx.Conj(v[a*dim+r][i]) * v[a*dim+r][j]
				}
				m.Set(i, j, sum)
			}
		}
		effects[a] = m
	}

	return POVM{Dim: dim, Effects: effects}, nil
}

// haarIsometry returns cols orthonormal columns in C^rows, distributed with
// the Haar measure: Ginibre columns (entries drawn real-then-imaginary in
// row-major order, for reproducibility) followed by modified Gram–Schmidt.
func haarIsometry(rows, cols int, rng *rand.Rand) [][]complex128 {
	g := make([][]complex128, rows)
	for r := range g {
		g[r] = make([]complex128, cols)
		for c := range g[r] {
			g[r][c] = complex(rng.NormFloat64(), rng.NormFloat64()) / complex(math.Sqrt2, 0)
		}
	}

	for j := 0; j < cols; j++ {
		// Remove the projections onto the already-orthonormal columns.
		for i := 0; i < j; i++ {
			overlap := complex(0, 0)
			for r := 0; r < rows; r++ {
				overlap += cmplx.Conj(g[r][i]) * g[r][j]
			}
			for r := 0; r < rows; r++ {
				g[r][j] -= overlap * g[r][i]
			}
		}
		nrm := 0.0
		for r := 0; r < rows; r++ {
			nrm += real(g[r][j] * cmplx.Conj(g[r][j]))
		}
		nrm = math.Sqrt(nrm)
		// A Ginibre column is almost surely outside the span of the previous
		// ones; redraw on the measure-zero degeneracy instead of dividing by
		// (near) zero.
		if nrm < 1e-12 {
			for r := 0; r < rows; r++ {
				g[r][j] = complex(rng.NormFloat64(), rng.NormFloat64()) / complex(math.Sqrt2, 0)
			}
			j--
			continue
		}
		for r := 0; r < rows; r++ {
			g[r][j] /= complex(nrm, 0)
		}
	}

	return g
}
