// Package sdp: domain types - sparse entries, constraint matrices, the
// block-diagonal Problem, and the Solver/Result surface.

package sdp

import "math"

// Entry is one coefficient of a sparse symmetric constraint matrix.
// Indices are zero-based; the writer converts to SDPA's one-based layout.
// Only the upper triangle is stored (Row ≤ Col); symmetry is implicit.
type Entry struct {
	// Block indexes into Problem.BlockSizes.
	Block int

	// Row and Col address the coefficient inside its block, 0-based, Row ≤ Col.
	Row, Col int

	// Value is the coefficient; must be finite.
	Value float64
}

// Matrix is a sparse symmetric block-diagonal matrix: the constant term F₀
// or one constraint matrix Fᵢ.
type Matrix []Entry

// Problem is a semidefinite program in SDPA primal form:
//
//	minimize c·x  subject to  Σᵢ xᵢFᵢ − F₀ ⪰ 0.
type Problem struct {
	// BlockSizes declares the block structure. Positive size s = dense s×s
	// block; negative size -s = diagonal block with s scalar entries.
	BlockSizes []int

	// Cost is the objective vector c; its length fixes the variable count.
	Cost []float64

	// F holds F₀ at index 0 followed by one constraint matrix per variable,
	// so len(F) must equal len(Cost)+1.
	F []Matrix
}

// NumVars returns the number of scalar variables.
//
// Complexity: O(1).
func (p *Problem) NumVars() int {
	return len(p.Cost)
}

// Validate checks structural consistency: non-empty blocks, matrix count,
// index ranges, upper-triangle storage, diagonal-block discipline, finite
// coefficients and duplicate-free entries.
//
// Complexity: O(total entries).
func (p *Problem) Validate() error {
	if p == nil {
		return ErrNilProblem
	}
	if len(p.BlockSizes) == 0 {
		return ErrNoBlocks
	}
	for _, s := range p.BlockSizes {
		if s == 0 {
			return ErrBadBlockSize
		}
	}
	if len(p.F) != len(p.Cost)+1 {
		return ErrMatrixCount
	}
	for _, c := range p.Cost {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return ErrNaNInf
		}
	}

	type coord struct{ mat, block, row, col int }
	seen := make(map[coord]struct{})
	for k, m := range p.F {
		for _, e := range m {
			if e.Block < 0 || e.Block >= len(p.BlockSizes) {
				return ErrEntryOutOfRange
			}
			size := p.BlockSizes[e.Block]
			diagonal := size < 0
			if diagonal {
				size = -size
			}
			if e.Row < 0 || e.Col < 0 || e.Row >= size || e.Col >= size {
				return ErrEntryOutOfRange
			}
			if e.Row > e.Col {
				return ErrLowerTriangle
			}
			if diagonal && e.Row != e.Col {
				return ErrOffDiagonal
			}
			if math.IsNaN(e.Value) || math.IsInf(e.Value, 0) {
				return ErrNaNInf
			}
			c := coord{mat: k, block: e.Block, row: e.Row, col: e.Col}
			if _, dup := seen[c]; dup {
				return ErrDuplicateEntry
			}
			seen[c] = struct{}{}
		}
	}

	return nil
}

// Status classifies a solver outcome.
type Status int

const (
	// Unknown — the backend could not certify optimality or infeasibility.
	Unknown Status = iota

	// Optimal — primal and dual optimal within the backend's tolerance.
	Optimal

	// Infeasible — the primal problem admits no feasible point.
	Infeasible

	// Unbounded — the objective is unbounded below.
	Unbounded
)

// String renders the status for diagnostics.
func (s Status) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case Infeasible:
		return "infeasible"
	case Unbounded:
		return "unbounded"
	default:
		return "unknown"
	}
}

// Result carries a solver's answer: the objective values, the variable
// assignment and the certified status.
type Result struct {
	// Status classifies the outcome; X and the objectives are meaningful
	// only when Status == Optimal.
	Status Status

	// Primal and Dual are the optimal objective values c·x and tr(F₀Y).
	Primal, Dual float64

	// X is the optimal variable assignment, length Problem.NumVars().
	X []float64
}

// Solver is a pluggable SDP backend. Implementations must treat the Problem
// as read-only. Solver internals are out of scope for this library; external
// processes consuming WriteSparse output are the expected backends.
type Solver interface {
	Solve(p *Problem) (*Result, error)
}
