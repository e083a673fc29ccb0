package povm

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ncpol/sdp"
)

// VisibilityProblem assembles the projective-simulability SDP for p in the
// form consumed by sdp: maximize the visibility t such that the depolarized
// POVM t·p + (1−t)·noise splits into a convex mixture of two-outcome
// sub-measurements, one per unordered outcome pair P = {a, b}:
//
//	t·Mₐ + (1−t)·(tr Mₐ/d)·I = Σ_{P∋a} N_{P,a},   0 ⪯ N_{P,a} ⪯ q_P·I,
//	Σ_P q_P = 1,   N_{P,b} = q_P·I − N_{P,a} for P = {a, b}, a < b.
//
// For qubits the two-outcome decomposition is exact, so the optimum is the
// critical visibility; for d > 2 it is a lower bound on it.
//
// Assembly notes: each Hermitian unknown N_P enters through its d² real
// coordinates and two PSD blocks holding the real symmetric embedding
// [[A, −B], [B, A]] of N_P and of q_P·I − N_P; the affine identities above
// sit in a trailing diagonal block as paired one-sided rows. Variable 0 is
// t with cost −1, so sdp's minimization maximizes the visibility.
//
// Errors: validation errors of p, plus ErrTooFewOutcomes when p has fewer
// than two effects.
//
// Complexity: O(k²·d²) entries for k outcomes in dimension d.
func VisibilityProblem(p POVM, opts ...Option) (*sdp.Problem, error) {
	if err := p.Validate(opts...); err != nil {
		return nil, err
	}
	if len(p.Effects) < 2 {
		return nil, ErrTooFewOutcomes
	}

	lay := newLayout(p)
	prob := &sdp.Problem{
		BlockSizes: lay.blockSizes(),
		Cost:       make([]float64, lay.numVars()),
		F:          make([]sdp.Matrix, lay.numVars()+1),
	}
	prob.Cost[0] = -1 // minimize −t

	lay.positivityBlocks(prob)
	lay.decompositionRows(p, prob)
	lay.mixtureRow(prob)
	lay.visibilityRows(prob)

	if err := prob.Validate(); err != nil {
		return nil, err
	}

	return prob, nil
}

// CriticalVisibility solves the simulability SDP of p with s and reports the
// largest visibility at which the depolarized POVM is still simulable by
// two-outcome measurements. The result is in [0, 1] for any valid POVM; a
// value of 1 means p itself is simulable.
//
// Errors: assembly errors of VisibilityProblem, solver errors, and
// ErrNotSolved when the solver terminates without an optimal certificate.
func CriticalVisibility(p POVM, s sdp.Solver, opts ...Option) (float64, error) {
	prob, err := VisibilityProblem(p, opts...)
	if err != nil {
		return 0, err
	}
	res, err := s.Solve(prob)
	if err != nil {
		return 0, err
	}
	if res.Status != sdp.Optimal {
		return 0, ErrNotSolved
	}

	return -res.Primal, nil
}

// Simulable reports whether p admits an exact two-outcome simulation, i.e.
// whether its critical visibility reaches 1 up to the configured tolerance.
func Simulable(p POVM, s sdp.Solver, opts ...Option) (bool, error) {
	cfg := gatherOptions(opts)
	crit, err := CriticalVisibility(p, s, opts...)
	if err != nil {
		return false, err
	}

	return crit >= 1-cfg.epsilon, nil
}

// layout fixes the variable, block and row numbering of the simulability
// SDP so that assembly and tests agree on one deterministic ordering.
//
// Variables: x[0] = t; each pair P (lexicographic over a < b) then owns a
// contiguous slab [q_P, N_P coordinates]. The d² coordinates of a Hermitian
// d×d matrix are the d diagonal entries followed by (Re, Im) for every
// strict upper-triangle cell in row-major order.
type layout struct {
	dim      int
	outcomes int
	pairs    [][2]int
}

func newLayout(p POVM) layout {
	k := len(p.Effects)
	pairs := make([][2]int, 0, k*(k-1)/2)
	for a := 0; a < k; a++ {
		for b := a + 1; b < k; b++ {
			pairs = append(pairs, [2]int{a, b})
		}
	}

	return layout{dim: p.Dim, outcomes: k, pairs: pairs}
}

func (l layout) coords() int  { return l.dim * l.dim }
func (l layout) numVars() int { return 1 + len(l.pairs)*(1+l.coords()) }

// qIndex and nIndex locate a pair's mixing weight and matrix coordinates
// inside the variable vector.
func (l layout) qIndex(pi int) int    { return 1 + pi*(1+l.coords()) }
func (l layout) nIndex(pi, c int) int { return l.qIndex(pi) + 1 + c }

// upperIdx enumerates strict upper-triangle cells (i < j) row-major;
// upperCell inverts it.
func (l layout) upperIdx(i, j int) int {
	return i*l.dim - i*(i+1)/2 + (j - i - 1)
}

func (l layout) upperCell(idx int) (i, j int) {
	for i = 0; ; i++ {
		rowLen := l.dim - i - 1
		if idx < rowLen {
			return i, i + 1 + idx
		}
		idx -= rowLen
	}
}

// blockSizes lists two PSD embedding blocks of size 2d per pair and one
// trailing diagonal block carrying the paired equality and bound rows.
func (l layout) blockSizes() []int {
	sizes := make([]int, 0, 2*len(l.pairs)+1)
	for range l.pairs {
		sizes = append(sizes, 2*l.dim, 2*l.dim)
	}
	return append(sizes, -l.diagRows())
}

// diagRows counts the rows of the trailing diagonal block: two one-sided
// rows per equality (k·d² decomposition identities plus Σq = 1), then the
// two visibility bound rows 0 ≤ t ≤ 1.
func (l layout) diagRows() int {
	return 2*(l.outcomes*l.coords()+1) + 2
}

func (l layout) diagBlock() int { return 2 * len(l.pairs) }

// eqRow returns the "≥" row of a decomposition equality; its "≤" partner is
// eqRow+1.
func (l layout) eqRow(a, c int) int { return 2 * (a*l.coords() + c) }
func (l layout) mixRow() int        { return 2 * l.outcomes * l.coords() }
func (l layout) boundRow() int      { return l.mixRow() + 2 }

// addCoeff appends a nonzero upper-triangle coefficient of variable v;
// addConst does the same for the constant matrix F₀.
func addCoeff(prob *sdp.Problem, v, block, row, col int, val float64) {
	addRaw(prob, v+1, block, row, col, val)
}

func addConst(prob *sdp.Problem, block, row, col int, val float64) {
	addRaw(prob, 0, block, row, col, val)
}

func addRaw(prob *sdp.Problem, k, block, row, col int, val float64) {
	if val == 0 {
		return
	}
	prob.F[k] = append(prob.F[k], sdp.Entry{Block: block, Row: row, Col: col, Value: val})
}

// addEqualityTerm puts the coefficient val of variable v into both one-sided
// rows of the equality whose "≥" row is row.
func (l layout) addEqualityTerm(prob *sdp.Problem, v, row int, val float64) {
	addCoeff(prob, v, l.diagBlock(), row, row, val)
	addCoeff(prob, v, l.diagBlock(), row+1, row+1, -val)
}

// addEqualityConst fixes the right hand side of the equality at row.
func (l layout) addEqualityConst(prob *sdp.Problem, row int, rhs float64) {
	addConst(prob, l.diagBlock(), row, row, rhs)
	addConst(prob, l.diagBlock(), row+1, row+1, -rhs)
}

// embed writes sign·(coordinate basis matrix of c) into PSD block b of the
// matrix of variable v, using the real symmetric embedding of the Hermitian
// basis element.
func (l layout) embed(prob *sdp.Problem, v, b, c int, sign float64) {
	d := l.dim
	if c < d { // diagonal coordinate
		addCoeff(prob, v, b, c, c, sign)
		addCoeff(prob, v, b, d+c, d+c, sign)
		return
	}
	oc := c - d
	i, j := l.upperCell(oc / 2)
	if oc%2 == 0 { // real part, symmetric contribution
		addCoeff(prob, v, b, i, j, sign)
		addCoeff(prob, v, b, d+i, d+j, sign)
	} else { // imaginary part, antisymmetric contribution
		addCoeff(prob, v, b, i, d+j, -sign)
		addCoeff(prob, v, b, j, d+i, sign)
	}
}

// positivityBlocks fills the per-pair PSD blocks: block 2pi holds the
// embedding of N_P, block 2pi+1 the embedding of q_P·I − N_P.
func (l layout) positivityBlocks(prob *sdp.Problem) {
	for pi := range l.pairs {
		bN, bC := 2*pi, 2*pi+1
		for r := 0; r < 2*l.dim; r++ {
			addCoeff(prob, l.qIndex(pi), bC, r, r, 1)
		}
		for c := 0; c < l.coords(); c++ {
			v := l.nIndex(pi, c)
			l.embed(prob, v, bN, c, 1)
			l.embed(prob, v, bC, c, -1)
		}
	}
}

// decompositionRows imposes, coordinate by coordinate, the identity
// t·Mₐ + (1−t)·τₐ·I = Σ_{P∋a} N_{P,a} with τₐ = tr Mₐ/d, using
// N_{P,b} = q_P·I − N_{P,a} for the larger outcome of each pair.
func (l layout) decompositionRows(p POVM, prob *sdp.Problem) {
	d := l.dim
	for a, m := range p.Effects {
		tau := 0.0
		for i := 0; i < d; i++ {
			tau += real(m.At(i, i))
		}
		tau /= float64(d)

		for c := 0; c < l.coords(); c++ {
			row := l.eqRow(a, c)
			mc, diag := l.compValue(m, c)

			rhs := 0.0
			if diag {
				rhs = tau
			}
			l.addEqualityConst(prob, row, rhs)
			l.addEqualityTerm(prob, 0, row, -(mc - rhs)) // t coefficient

			for pi, pr := range l.pairs {
				switch {
				case pr[0] == a:
					l.addEqualityTerm(prob, l.nIndex(pi, c), row, 1)
				case pr[1] == a:
					if diag {
						l.addEqualityTerm(prob, l.qIndex(pi), row, 1)
					}
					l.addEqualityTerm(prob, l.nIndex(pi, c), row, -1)
				}
			}
		}
	}
}

// compValue extracts the real coordinate c of the Hermitian effect m and
// reports whether it is a diagonal coordinate.
func (l layout) compValue(m *mat.CDense, c int) (float64, bool) {
	d := l.dim
	if c < d {
		return real(m.At(c, c)), true
	}
	oc := c - d
	i, j := l.upperCell(oc / 2)
	if oc%2 == 0 {
		return real(m.At(i, j)), false
	}
	return imag(m.At(i, j)), false
}

// mixtureRow imposes Σ_P q_P = 1.
func (l layout) mixtureRow(prob *sdp.Problem) {
	row := l.mixRow()
	l.addEqualityConst(prob, row, 1)
	for pi := range l.pairs {
		l.addEqualityTerm(prob, l.qIndex(pi), row, 1)
	}
}

// visibilityRows bound the objective variable: t ≥ 0 and 1 − t ≥ 0.
func (l layout) visibilityRows(prob *sdp.Problem) {
	row := l.boundRow()
	addCoeff(prob, 0, l.diagBlock(), row, row, 1)
	addCoeff(prob, 0, l.diagBlock(), row+1, row+1, -1)
	addConst(prob, l.diagBlock(), row+1, row+1, -1)
}
