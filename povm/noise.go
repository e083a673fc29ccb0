package povm

import "gonum.org/v1/gonum/mat"

// Depolarize mixes every effect with white noise at the given visibility t:
//
//	Mₐ ↦ t·Mₐ + (1−t)·(tr Mₐ / d)·I
//
// t = 1 returns a copy of p, t = 0 the fully depolarized, trivially
// simulable POVM. Traces and completeness are preserved exactly.
//
// Errors: ErrBadVisibility when t is outside [0, 1] or not finite, plus any
// shape error from the input (ErrBadDimension, ErrNoEffects).
//
// Complexity: O(outcomes·d²).
func Depolarize(p POVM, visibility float64) (POVM, error) {
	if !(visibility >= 0 && visibility <= 1) {
		return POVM{}, ErrBadVisibility
	}
	if p.Dim < 1 {
		return POVM{}, ErrBadDimension
	}
	if len(p.Effects) == 0 {
		return POVM{}, ErrNoEffects
	}

	d := p.Dim
	effects := make([]*mat.CDense, len(p.Effects))
	for a, m := range p.Effects {
		tr := complex(0, 0)
		for i := 0; i < d; i++ {
			tr += m.At(i, i)
		}
		bg := tr * complex((1-visibility)/float64(d), 0)

		out := mat.NewCDense(d, d, nil)
		for i := 0; i < d; i++ {
			for j := 0; j < d; j++ {
				v := m.At(i, j) * complex(visibility, 0)
				if i == j {
					v += bg
				}
				out.Set(i, j, v)
			}
		}
		effects[a] = out
	}

	return POVM{Dim: d, Effects: effects}, nil
}
