// Package moment: assembly of the moment-matrix SDP relaxation.

package moment

import (
	"math"

	"github.com/katalvlaran/ncpol/operator"
	"github.com/katalvlaran/ncpol/sdp"
)

// Term is one monomial of an objective polynomial with its real coefficient.
type Term struct {
	Coeff float64
	Mono  operator.Monomial
}

// Relax assembles the level-d relaxation of
//
//	minimize Σ Coeffₘ·⟨m⟩  subject to  M(y) ⪰ 0, ⟨1⟩ = 1
//
// into an sdp.Problem with a single dense block of side mm.Size(): one
// scalar variable per non-identity moment, the identity moment folded into
// the constant matrix F₀ and into the returned offset.
//
// The returned offset collects the objective terms that reduced to the
// identity (or to zero); the value of the original objective at a solver
// optimum x* is offset + c·x*.
//
// Errors:
//   - ErrNilMatrix     — mm is nil.
//   - ErrUnknownMoment — an objective monomial reduces to a moment that
//     occurs nowhere in the matrix, so the relaxation cannot weight it.
//   - sdp.ErrNaNInf    — a non-finite objective coefficient.
//
// Complexity: O(b² + T·k²) for side b and T objective terms of degree ≤ k.
func Relax(mm *Matrix, subs *Substitutions, objective []Term) (*sdp.Problem, float64, error) {
	if mm == nil {
		return nil, 0, ErrNilMatrix
	}

	varByKey := make(map[string]int, len(mm.Moments))
	for id, mono := range mm.Moments {
		varByKey[mono.Key()] = id
	}

	// Objective: moment 0 (the identity) contributes a constant, every other
	// moment k maps to scalar variable k-1.
	cost := make([]float64, mm.NumMoments()-1)
	offset := 0.0
	for _, t := range objective {
		if math.IsNaN(t.Coeff) || math.IsInf(t.Coeff, 0) {
			return nil, 0, sdp.ErrNaNInf
		}
		rep, annihilated := canonicalMoment(t.Mono, subs)
		if annihilated {
			continue // ⟨0⟩ = 0 contributes nothing
		}
		id, ok := varByKey[rep.Key()]
		if !ok {
			return nil, 0, ErrUnknownMoment
		}
		if id == 0 {
			offset += t.Coeff
			continue
		}
		cost[id-1] += t.Coeff
	}

	// Constraint matrices: M(y) = E₀ + Σ yₖEₖ ⪰ 0 becomes Σ yₖFₖ − F₀ ⪰ 0
	// with Fₖ = Eₖ and F₀ = −E₀. Upper triangle only; the lower mirror is
	// implicit in the symmetric block.
	mats := make([]sdp.Matrix, mm.NumMoments())
	for i := 0; i < mm.Size(); i++ {
		for j := i; j < mm.Size(); j++ {
			id := mm.Entry[i][j]
			if id == ZeroEntry {
				continue
			}
			value := 1.0
			if id == 0 {
				value = -1.0 // F₀ carries the negated identity cells
			}
			mats[id] = append(mats[id], sdp.Entry{Block: 0, Row: i, Col: j, Value: value})
		}
	}

	p := &sdp.Problem{
		BlockSizes: []int{mm.Size()},
		Cost:       cost,
		F:          mats,
	}
	if err := p.Validate(); err != nil {
		return nil, 0, err
	}

	return p, offset, nil
}
