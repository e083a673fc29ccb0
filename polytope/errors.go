// Package polytope: sentinel error set.

package polytope

import "errors"

var (
	// ErrBadDimension indicates an H-representation over zero variables.
	ErrBadDimension = errors.New("polytope: dimension must be at least 1")

	// ErrDimensionMismatch indicates rows of A with inconsistent lengths or
	// len(B) != number of rows.
	ErrDimensionMismatch = errors.New("polytope: inconsistent H-representation shape")

	// ErrNaNInf indicates a NaN or ±Inf coefficient in A or B.
	ErrNaNInf = errors.New("polytope: NaN or Inf encountered")

	// ErrNotPointed indicates the polyhedron contains a line, so it has no
	// vertex representation.
	ErrNotPointed = errors.New("polytope: polyhedron contains a line")

	// ErrInfeasible indicates an empty polyhedron: no point satisfies all
	// constraints.
	ErrInfeasible = errors.New("polytope: infeasible constraint system")
)
