// Package povm: sentinel error set.

package povm

import "errors"

var (
	// ErrNoEffects indicates a POVM with an empty effect list.
	ErrNoEffects = errors.New("povm: no effects")

	// ErrBadDimension indicates a non-positive Hilbert space dimension or an
	// effect whose shape differs from Dim×Dim.
	ErrBadDimension = errors.New("povm: bad dimension")

	// ErrNotHermitian indicates an effect violating M = M† within eps.
	ErrNotHermitian = errors.New("povm: effect is not Hermitian within eps")

	// ErrNotPSD indicates an effect with an eigenvalue below −eps.
	ErrNotPSD = errors.New("povm: effect is not positive semidefinite within eps")

	// ErrNotComplete indicates ΣMₐ ≠ I within eps.
	ErrNotComplete = errors.New("povm: effects do not sum to identity within eps")

	// ErrBadVisibility indicates a depolarizing parameter outside [0, 1].
	ErrBadVisibility = errors.New("povm: visibility must lie in [0,1]")

	// ErrTooFewOutcomes indicates a simulability query on a POVM with fewer
	// than two outcomes (a one-outcome POVM is trivially projective).
	ErrTooFewOutcomes = errors.New("povm: simulability needs at least two outcomes")

	// ErrNotSolved indicates the SDP backend finished without an optimal
	// certificate, so no visibility can be reported.
	ErrNotSolved = errors.New("povm: solver did not reach an optimal solution")
)
