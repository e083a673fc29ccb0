// Package operator: Monomial behavior - construction, multiplication,
// adjoints, equality and canonical keys.

package operator

import "strings"

// keySep separates factor keys inside Monomial.Key. A unit separator keeps
// keys collision-free for any printable generator ID.
const keySep = "\x1f"

// daggerMark annotates conjugated factors in Key and String output.
const daggerMark = "†"

// Identity returns the empty product, the multiplicative identity.
//
// Complexity: O(1).
func Identity() Monomial {
	return Monomial{}
}

// Mono lifts a single generator into a degree-1 monomial.
//
// Complexity: O(1).
func Mono(g Generator) Monomial {
	return Monomial{factors: []Factor{{Gen: g}}}
}

// MonoAdjoint lifts the adjoint of a generator into a degree-1 monomial.
// For a Hermitian generator the result equals Mono(g).
//
// Complexity: O(1).
func MonoAdjoint(g Generator) Monomial {
	return Monomial{factors: []Factor{{Gen: g, Conj: !g.Hermitian}}}
}

// FromFactors builds a monomial from an explicit factor sequence. The slice
// is copied; Conj is cleared on Hermitian factors so that syntactic equality
// keeps matching the constructors' normal form.
//
// Complexity: O(k).
func FromFactors(fs []Factor) Monomial {
	if len(fs) == 0 {
		return Monomial{}
	}
	out := make([]Factor, len(fs))
	copy(out, fs)
	for i := range out {
		if out[i].Gen.Hermitian {
			out[i].Conj = false
		}
	}

	return Monomial{factors: out}
}

// Key returns the canonical key of a single factor: the generator ID with a
// dagger mark when conjugated. Factor keys compose into Monomial.Key.
func (f Factor) Key() string {
	if f.Conj {
		return f.Gen.ID + daggerMark
	}

	return f.Gen.ID
}

// Factors returns a copy of the ordered factor sequence. The copy keeps the
// receiver immutable under caller mutation.
//
// Complexity: O(k), k = degree.
func (m Monomial) Factors() []Factor {
	if len(m.factors) == 0 {
		return nil
	}
	out := make([]Factor, len(m.factors))
	copy(out, m.factors)

	return out
}

// Degree returns the number of factors; the identity has degree 0.
//
// Complexity: O(1).
func (m Monomial) Degree() int {
	return len(m.factors)
}

// IsIdentity reports whether m is the empty product.
//
// Complexity: O(1).
func (m Monomial) IsIdentity() bool {
	return len(m.factors) == 0
}

// Mul returns the concatenation m·n. Neither operand is mutated; the result
// owns freshly allocated storage.
//
// Complexity: O(k+l), k,l = operand degrees.
func (m Monomial) Mul(n Monomial) Monomial {
	if len(m.factors) == 0 {
		return Monomial{factors: n.Factors()}
	}
	if len(n.factors) == 0 {
		return Monomial{factors: m.Factors()}
	}
	out := make([]Factor, 0, len(m.factors)+len(n.factors))
	out = append(out, m.factors...)
	out = append(out, n.factors...)

	return Monomial{factors: out}
}

// mulFactor returns m with one extra trailing factor. Internal fast path for
// basis generation; allocates exactly once.
func (m Monomial) mulFactor(f Factor) Monomial {
	out := make([]Factor, len(m.factors)+1)
	copy(out, m.factors)
	out[len(m.factors)] = f

	return Monomial{factors: out}
}

// Adjoint returns m† — factors reversed, conjugation flipped on every
// non-Hermitian factor. Hermitian factors are left untouched (g = g†).
//
// Complexity: O(k).
func (m Monomial) Adjoint() Monomial {
	if len(m.factors) == 0 {
		return Monomial{}
	}
	out := make([]Factor, len(m.factors))
	for i, f := range m.factors {
		if !f.Gen.Hermitian {
			f.Conj = !f.Conj
		}
		out[len(m.factors)-1-i] = f
	}

	return Monomial{factors: out}
}

// Equal reports syntactic equality: identical ordered sequences of
// (generator ID, conjugated) pairs.
//
// Complexity: O(k).
func (m Monomial) Equal(n Monomial) bool {
	if len(m.factors) != len(n.factors) {
		return false
	}
	for i, f := range m.factors {
		if f.Gen.ID != n.factors[i].Gen.ID || f.Conj != n.factors[i].Conj {
			return false
		}
	}

	return true
}

// Key returns a canonical string usable as a hash-map key: factor IDs joined
// by a unit separator, with a dagger mark on conjugated factors. Two
// monomials share a Key iff they are Equal. The identity’s key is "".
//
// Complexity: O(total ID length).
func (m Monomial) Key() string {
	if len(m.factors) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, f := range m.factors {
		if i > 0 {
			sb.WriteString(keySep)
		}
		sb.WriteString(f.Gen.ID)
		if f.Conj {
			sb.WriteString(daggerMark)
		}
	}

	return sb.String()
}

// String renders the monomial for humans: factors joined by "·", the
// identity as "1". Example: "A·A†·X0".
func (m Monomial) String() string {
	if len(m.factors) == 0 {
		return "1"
	}
	var sb strings.Builder
	for i, f := range m.factors {
		if i > 0 {
			sb.WriteString("·")
		}
		sb.WriteString(f.Gen.ID)
		if f.Conj {
			sb.WriteString(daggerMark)
		}
	}

	return sb.String()
}
