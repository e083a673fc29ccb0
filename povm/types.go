// Package povm: domain types and functional options.

package povm

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// DefaultEpsilon is the non-negative tolerance for Hermiticity, positivity
// and completeness checks. Tuned for effects with entries of order 1.
const DefaultEpsilon = 1e-9

// POVM is a positive-operator-valued measure: Outcomes() effects of shape
// Dim×Dim that are Hermitian, positive semidefinite and sum to the identity.
// The struct itself carries no invariants — Validate certifies them.
type POVM struct {
	// Dim is the Hilbert space dimension.
	Dim int

	// Effects holds one complex matrix per measurement outcome.
	Effects []*mat.CDense
}

// New assembles a POVM after checking shapes only; algebraic properties are
// a Validate concern, so partially built measurements stay representable.
//
// Errors: ErrBadDimension, ErrNoEffects.
func New(dim int, effects ...*mat.CDense) (POVM, error) {
	if dim < 1 {
		return POVM{}, ErrBadDimension
	}
	if len(effects) == 0 {
		return POVM{}, ErrNoEffects
	}
	for _, e := range effects {
		r, c := e.Dims()
		if r != dim || c != dim {
			return POVM{}, ErrBadDimension
		}
	}

	return POVM{Dim: dim, Effects: effects}, nil
}

// Outcomes returns the number of effects.
func (p POVM) Outcomes() int {
	return len(p.Effects)
}

// Option configures validation and simulability tolerances. Constructors
// panic on nonsensical values (programmer error), never on data.
type Option func(*options)

type options struct {
	epsilon float64
}

// WithEpsilon overrides the numeric tolerance.
// Panics if eps is negative or NaN.
func WithEpsilon(eps float64) Option {
	if !(eps >= 0) {
		panic("povm: WithEpsilon requires a non-negative tolerance")
	}

	return func(o *options) { o.epsilon = eps }
}

func gatherOptions(opts []Option) options {
	o := options{epsilon: DefaultEpsilon}
	for _, apply := range opts {
		apply(&o)
	}

	return o
}

// Validate certifies the three POVM axioms within the configured tolerance:
// every effect Hermitian, every effect positive semidefinite, effects
// summing to the identity.
//
// Errors: ErrBadDimension, ErrNoEffects, ErrNotHermitian, ErrNotPSD,
// ErrNotComplete — reported in that priority order.
//
// Complexity: O(k·d³) for k effects on dimension d.
func (p POVM) Validate(opts ...Option) error {
	o := gatherOptions(opts)
	if p.Dim < 1 {
		return ErrBadDimension
	}
	if len(p.Effects) == 0 {
		return ErrNoEffects
	}

	for _, e := range p.Effects {
		r, c := e.Dims()
		if r != p.Dim || c != p.Dim {
			return ErrBadDimension
		}
		if !isHermitian(e, o.epsilon) {
			return ErrNotHermitian
		}
	}
	for _, e := range p.Effects {
		if minEigHermitian(e) < -o.epsilon {
			return ErrNotPSD
		}
	}

	for i := 0; i < p.Dim; i++ {
		for j := 0; j < p.Dim; j++ {
			sum := complex(0, 0)
			for _, e := range p.Effects {
				sum += e.At(i, j)
			}
			want := complex(0, 0)
			if i == j {
				want = 1
			}
			if cmplx.Abs(sum-want) > float64(p.Dim)*o.epsilon {
				return ErrNotComplete
			}
		}
	}

	return nil
}

// isHermitian checks M = M† entrywise within eps.
func isHermitian(m *mat.CDense, eps float64) bool {
	d, _ := m.Dims()
	for i := 0; i < d; i++ {
		if math.Abs(imag(m.At(i, i))) > eps {
			return false
		}
		for j := i + 1; j < d; j++ {
			if cmplx.Abs(m.At(i, j)-cmplx.Conj(m.At(j, i))) > eps {
				return false
			}
		}
	}

	return true
}
