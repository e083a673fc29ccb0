// Package sdp models semidefinite programs in SDPA form and exports them in
// the SDPA sparse format understood by external solvers.
//
// 🚀 What is the SDPA form?
//
//	The standard primal shape used by SDPA, SDPT3 and Mosek's text front end:
//
//	  minimize    c·x
//	  subject to  X = x₁F₁ + x₂F₂ + … + xₘFₘ − F₀ ⪰ 0
//
//	where every Fᵢ is a block-diagonal symmetric matrix. A negative block
//	size declares a diagonal block (a bundle of scalar inequalities), which
//	is also how linear equalities are encoded: h(x) ≥ 0 and −h(x) ≥ 0.
//
// ✨ Key features:
//   - sparse, block-aware Problem model with strict validation
//   - deterministic SDPA sparse (.dat-s) writer: stable entry ordering
//   - Solver interface + Result, so solver backends stay pluggable
//   - slack-matrix reconstruction on gonum dense blocks for feasibility checks
//
// ⚙️ Usage:
//
//	p := &sdp.Problem{
//	  BlockSizes: []int{2},
//	  Cost:       []float64{1, 1},
//	  F: []sdp.Matrix{
//	    {{Block: 0, Row: 0, Col: 0, Value: 1}, {Block: 0, Row: 1, Col: 1, Value: 1}}, // F0
//	    {{Block: 0, Row: 0, Col: 0, Value: 1}},                                       // F1
//	    {{Block: 0, Row: 1, Col: 1, Value: 1}},                                       // F2
//	  },
//	}
//	err := sdp.WriteSparse(os.Stdout, p)
//
// Solver internals are deliberately out of scope: this package describes
// problems and results, external backends solve them.
//
// See example_test.go for a complete round trip.
package sdp
