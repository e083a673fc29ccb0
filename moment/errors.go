// Package moment: sentinel error set.

package moment

import "errors"

var (
	// ErrNotHermitian indicates a projectivity or orthogonality rule was
	// declared on a non-Hermitian generator; projectors are observables.
	ErrNotHermitian = errors.New("moment: rule requires a Hermitian generator")

	// ErrSameGenerator indicates an orthogonality or commutation rule whose
	// two sides carry the same generator ID.
	ErrSameGenerator = errors.New("moment: rule requires two distinct generators")

	// ErrEmptyBasis indicates an empty monomial basis.
	ErrEmptyBasis = errors.New("moment: basis is empty")

	// ErrNoIdentity indicates a basis whose element 0 is not the identity;
	// the identity moment anchors variable 0 and the constant block.
	ErrNoIdentity = errors.New("moment: basis must start with the identity")

	// ErrUnknownMoment indicates an objective monomial whose reduction does
	// not occur anywhere in the moment matrix, so no variable carries it.
	ErrUnknownMoment = errors.New("moment: monomial not covered by the moment matrix")

	// ErrNilMatrix indicates a nil *Matrix passed to Relax.
	ErrNilMatrix = errors.New("moment: matrix is nil")
)
