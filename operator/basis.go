// Package operator: degree-bounded monomial basis generation.

package operator

// GenerateBasis — monomial basis of a noncommutative operator algebra
//
// Description:
//
//	Produces every syntactically distinct monomial of degree ≤ degree formed
//	from the given generators. Non-Hermitian generators contribute both
//	themselves and their adjoint as independent multiplication choices;
//	Hermitian generators contribute only themselves.
//
// Algorithm Outline:
//  1. working := [identity]
//  2. Repeat degree times:
//     next := working
//     for each m in working (in order):
//     for each g in generators (in input order):
//     next ← m·g, then m·g† when g is non-Hermitian
//     working := stable first-occurrence dedup of next
//  3. Return working.
//
// Ordering semantics:
//
//	The output order decides which row/column of a downstream moment matrix
//	each monomial occupies, so the dedup is stable and the identity is
//	always element 0. Two calls with identical inputs return identical
//	sequences — no randomness, no dependency on external state.
//
// Complexity:
//
//	Time   = O(Σ_rounds b·n·k)  (b = basis size, n = generators, k = degree)
//	Memory = O(final basis size)
//
// Errors:
//   - ErrNegativeDegree     — degree < 0.
//   - ErrEmptyGeneratorID   — a generator with an empty ID.
//   - ErrDuplicateGenerator — the same ID supplied twice.
func GenerateBasis(generators []Generator, degree int) (Basis, error) {
	if degree < 0 {
		return nil, ErrNegativeDegree
	}
	if err := validateGenerators(generators); err != nil {
		return nil, err
	}

	working := Basis{Identity()}
	for round := 0; round < degree; round++ {
		next := make(Basis, 0, len(working)*(1+2*len(generators)))
		next = append(next, working...)
		for _, m := range working {
			for _, g := range generators {
				next = append(next, m.mulFactor(Factor{Gen: g}))
				if !g.Hermitian {
					next = append(next, m.mulFactor(Factor{Gen: g, Conj: true}))
				}
			}
		}
		working = dedup(next)
	}

	return working, nil
}

// validateGenerators rejects empty and duplicate IDs before any computation,
// so a precondition violation never yields a partial basis.
func validateGenerators(generators []Generator) error {
	seen := make(map[string]struct{}, len(generators))
	for _, g := range generators {
		if g.ID == "" {
			return ErrEmptyGeneratorID
		}
		if _, dup := seen[g.ID]; dup {
			return ErrDuplicateGenerator
		}
		seen[g.ID] = struct{}{}
	}

	return nil
}

// dedup removes duplicates with first-occurrence-wins semantics, preserving
// the order in which monomials were produced.
//
// Complexity: O(total key length) time, O(n) extra memory.
func dedup(in Basis) Basis {
	seen := make(map[string]struct{}, len(in))
	out := make(Basis, 0, len(in))
	for _, m := range in {
		k := m.Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, m)
	}

	return out
}
