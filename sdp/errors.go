// Package sdp: sentinel error set.
// All functions return these sentinels; tests match them via errors.Is.
// Wrapping with fmt.Errorf("ctx: %w", ErrX) happens only at outer boundaries.

package sdp

import "errors"

var (
	// ErrNilProblem indicates a nil *Problem was passed in.
	ErrNilProblem = errors.New("sdp: problem is nil")

	// ErrNoBlocks indicates a problem with an empty block structure.
	ErrNoBlocks = errors.New("sdp: no blocks declared")

	// ErrBadBlockSize indicates a zero block size (positive = dense block,
	// negative = diagonal block; zero is meaningless).
	ErrBadBlockSize = errors.New("sdp: block size must be non-zero")

	// ErrMatrixCount indicates len(F) != number of variables + 1 (F₀ plus
	// one constraint matrix per variable).
	ErrMatrixCount = errors.New("sdp: constraint matrix count mismatch")

	// ErrEntryOutOfRange indicates an entry referencing a block or index
	// outside the declared structure.
	ErrEntryOutOfRange = errors.New("sdp: entry out of range")

	// ErrLowerTriangle indicates an entry with Row > Col. Matrices are
	// symmetric; only the upper triangle is stored.
	ErrLowerTriangle = errors.New("sdp: entry below the diagonal")

	// ErrOffDiagonal indicates an off-diagonal entry inside a diagonal block.
	ErrOffDiagonal = errors.New("sdp: off-diagonal entry in diagonal block")

	// ErrDuplicateEntry indicates two entries at the same (matrix, block,
	// row, col) coordinate; the writer would emit an ambiguous file.
	ErrDuplicateEntry = errors.New("sdp: duplicate sparse entry")

	// ErrNaNInf indicates a NaN or ±Inf coefficient where finite values are
	// required (cost vector or sparse entries).
	ErrNaNInf = errors.New("sdp: NaN or Inf encountered")

	// ErrVectorLength indicates a variable vector whose length differs from
	// the problem's variable count.
	ErrVectorLength = errors.New("sdp: variable vector length mismatch")
)
