// Package polytope converts convex polyhedra from their halfspace
// description (A·x ≤ b) to their vertex/ray description by the double
// description method.
//
// 🚀 Why vertex enumeration?
//
//	Local deterministic models in quantum information are polytopes: the
//	facets are positivity and normalization constraints, the vertices are
//	the deterministic strategies.  Testing membership, computing critical
//	visibilities and deriving Bell-type inequalities all start from the
//	V-representation of a polytope given by its facets.
//
// ✨ Key features:
//   - double description with incremental halfspace insertion
//   - combinatorial adjacency test over tight constraint sets
//   - homogenization handles unbounded polyhedra: rays come out alongside vertices
//   - epsilon-based numeric policy with a validated option
//   - deterministic output: insertion follows input row order, results are sorted
//
// ⚙️ Usage:
//
//	// The unit square: 0 ≤ x ≤ 1, 0 ≤ y ≤ 1.
//	h := polytope.HRep{
//	  A: [][]float64{{1, 0}, {-1, 0}, {0, 1}, {0, -1}},
//	  B: []float64{1, 0, 1, 0},
//	}
//	v, err := polytope.Enumerate(h)
//	// v.Vertices = [[0 0] [0 1] [1 0] [1 1]], v.Rays empty
//
// Limits:
//
//	The method is exact only in exact arithmetic; the epsilon policy keeps
//	it robust for well-scaled inputs (coefficients of order 1).  Polyhedra
//	containing a line have no vertex representation and are rejected with
//	ErrNotPointed.
//
// Complexity: output-sensitive; worst case exponential in the input size,
// as inherent to vertex enumeration.
//
// See example_test.go for bounded, unbounded and infeasible scenarios.
package polytope
