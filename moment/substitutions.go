// Package moment: substitution rules and fixed-point monomial reduction.

package moment

import "github.com/katalvlaran/ncpol/operator"

// pairKey is an ordered pair of factor keys addressing an adjacent factor
// pair inside a monomial during reduction.
type pairKey struct {
	left, right string
}

// Substitutions is a validated set of rewrite rules applied to adjacent
// factor pairs:
//
//   - projective:  P·P → P          (idempotent Hermitian projector)
//   - orthogonal:  Pᵢ·Pⱼ → 0        (distinct outcomes of one measurement)
//   - commuting:   B·A  → A·B       (normalize toward lexicographic order)
//
// The zero value is usable and holds no rules; a nil *Substitutions behaves
// the same, so Build(basis, nil) gives the purely syntactic moment matrix.
type Substitutions struct {
	projective map[string]struct{}
	zero       map[pairKey]struct{}
	commuting  map[pairKey]struct{}
}

// NewSubstitutions returns an empty rule set.
func NewSubstitutions() *Substitutions {
	return &Substitutions{
		projective: make(map[string]struct{}),
		zero:       make(map[pairKey]struct{}),
		commuting:  make(map[pairKey]struct{}),
	}
}

// Projective declares g idempotent: g·g reduces to g. The generator must be
// Hermitian — projectors are observables.
//
// Errors: ErrNotHermitian, ErrEmptyGeneratorID (via operator conventions).
func (s *Substitutions) Projective(g operator.Generator) error {
	if g.ID == "" {
		return operator.ErrEmptyGeneratorID
	}
	if !g.Hermitian {
		return ErrNotHermitian
	}
	s.projective[g.ID] = struct{}{}

	return nil
}

// Orthogonal declares g·h → 0 and h·g → 0, the relation between distinct
// outcome projectors of one projective measurement. Both generators must be
// Hermitian and distinct.
//
// Errors: ErrNotHermitian, ErrSameGenerator, ErrEmptyGeneratorID.
func (s *Substitutions) Orthogonal(g, h operator.Generator) error {
	if g.ID == "" || h.ID == "" {
		return operator.ErrEmptyGeneratorID
	}
	if !g.Hermitian || !h.Hermitian {
		return ErrNotHermitian
	}
	if g.ID == h.ID {
		return ErrSameGenerator
	}
	s.zero[pairKey{left: g.ID, right: h.ID}] = struct{}{}
	s.zero[pairKey{left: h.ID, right: g.ID}] = struct{}{}

	return nil
}

// Commute declares that g and h commute, including every conjugated variant
// ([g,h] = 0 is registered together with [g†,h], [g,h†] and [g†,h†] — the
// standard situation for operators acting on different tensor factors).
// Reduction uses the rule to bubble adjacent commuting factors into
// lexicographic key order, which makes the canonical form unique.
//
// Errors: ErrSameGenerator, ErrEmptyGeneratorID.
func (s *Substitutions) Commute(g, h operator.Generator) error {
	if g.ID == "" || h.ID == "" {
		return operator.ErrEmptyGeneratorID
	}
	if g.ID == h.ID {
		return ErrSameGenerator
	}
	for _, a := range factorVariants(g) {
		for _, b := range factorVariants(h) {
			s.commuting[pairKey{left: a, right: b}] = struct{}{}
			s.commuting[pairKey{left: b, right: a}] = struct{}{}
		}
	}

	return nil
}

// factorVariants lists the distinct factor keys a generator can occupy:
// one for Hermitian generators, two (plain and daggered) otherwise.
func factorVariants(g operator.Generator) []string {
	plain := operator.Factor{Gen: g}
	if g.Hermitian {
		return []string{plain.Key()}
	}

	return []string{plain.Key(), operator.Factor{Gen: g, Conj: true}.Key()}
}

// Reduce rewrites m to its canonical form under the rule set, scanning
// adjacent factor pairs to a fixed point. The boolean reports annihilation:
// when true, the monomial reduced to zero and the returned value is the
// identity placeholder.
//
// Termination: projectivity strictly shortens the word, orthogonality ends
// the computation, and commutation strictly decreases the number of
// lexicographic inversions — so the rewriting always halts.
//
// Complexity: O(k²) pair scans in the worst case, k = degree of m.
func (s *Substitutions) Reduce(m operator.Monomial) (operator.Monomial, bool) {
	if s == nil || m.Degree() < 2 {
		return m, false
	}

	fs := m.Factors()
	for changed := true; changed; {
		changed = false
		for i := 0; i+1 < len(fs); i++ {
			pk := pairKey{left: fs[i].Key(), right: fs[i+1].Key()}
			if _, annihilates := s.zero[pk]; annihilates {
				return operator.Identity(), true
			}
			if pk.left == pk.right {
				if _, idem := s.projective[fs[i].Gen.ID]; idem {
					fs = append(fs[:i+1], fs[i+2:]...)
					changed = true
					break
				}
			}
			if _, swap := s.commuting[pk]; swap && pk.right < pk.left {
				fs[i], fs[i+1] = fs[i+1], fs[i]
				changed = true
				break
			}
		}
	}

	return operator.FromFactors(fs), false
}
