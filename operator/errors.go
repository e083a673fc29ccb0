// Package operator: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// operator package. All functions MUST return these sentinels and tests MUST
// check them via errors.Is. No function panics on user-triggered conditions.

package operator

import "errors"

var (
	// ErrNegativeDegree indicates a basis was requested for degree < 0.
	// Degree is a count of multiplication rounds; negative values are a
	// precondition violation and no partial computation is performed.
	ErrNegativeDegree = errors.New("operator: degree must be non-negative")

	// ErrEmptyGeneratorID indicates a generator with an empty ID string.
	// IDs are the sole notion of generator identity, so an empty ID would
	// make two distinct generators indistinguishable.
	ErrEmptyGeneratorID = errors.New("operator: generator ID is empty")

	// ErrDuplicateGenerator indicates the same generator ID appeared twice
	// in the input list. Accepting duplicates would silently inflate the
	// generated basis, so the input is rejected instead of deduplicated.
	ErrDuplicateGenerator = errors.New("operator: duplicate generator ID")
)
