// Package operator: domain types for the symbolic operator algebra.
// This file declares Generator, Factor, Monomial and Basis. Behavior
// (multiplication, adjoints, basis generation) lives in monomial.go and
// basis.go per the package-layout conventions.

package operator

// Generator is an abstract algebraic symbol. Two generators are equal iff
// they carry the same ID — there is no implicit algebraic equality.
//
// Hermitian generators satisfy g = g† and contribute a single multiplication
// choice during basis generation; non-Hermitian generators contribute both g
// and g† as independent choices.
type Generator struct {
	// ID uniquely identifies this generator within one basis-generation call.
	ID string

	// Hermitian reports whether the generator equals its own adjoint.
	Hermitian bool
}

// NewHermitian returns a Hermitian generator (g = g†), modelling a physical
// observable such as a projector or a Pauli operator.
func NewHermitian(id string) Generator {
	return Generator{ID: id, Hermitian: true}
}

// NewGenerator returns a non-Hermitian generator, whose adjoint g† is a
// distinct symbol correlated one-to-one with g.
func NewGenerator(id string) Generator {
	return Generator{ID: id, Hermitian: false}
}

// Factor is one position of a monomial: a generator reference plus a
// conjugation flag. For Hermitian generators Conj is always false (the
// adjoint collapses onto the generator itself).
type Factor struct {
	// Gen is the generator occupying this position.
	Gen Generator

	// Conj marks the adjoint (dagger) of a non-Hermitian generator.
	Conj bool
}

// Monomial is a finite ordered product of factors. The zero value is the
// empty product, i.e. the multiplicative identity.
//
// Equality is purely syntactic: two monomials are equal iff their ordered
// (generator ID, conjugated) sequences are identical. No substitution rule
// (idempotency, orthogonality, commutation) is applied at this layer.
type Monomial struct {
	factors []Factor
}

// Basis is an insertion-ordered collection of unique monomials, built
// degree by degree. The identity monomial is always element 0.
type Basis []Monomial
