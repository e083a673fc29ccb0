package sdp_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/ncpol/sdp"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleWriteSparse
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	minimize x₁ + x₂ subject to diag(x₁, x₂) ⪰ I, the textbook warm-up
//	from the SDPA user guide.  The emitted .dat-s file feeds directly into
//	sdpa, csdp or mosek.
func ExampleWriteSparse() {
	p := &sdp.Problem{
		BlockSizes: []int{2},
		Cost:       []float64{1, 1},
		F: []sdp.Matrix{
			{{Block: 0, Row: 0, Col: 0, Value: 1}, {Block: 0, Row: 1, Col: 1, Value: 1}}, // F0 = I
			{{Block: 0, Row: 0, Col: 0, Value: 1}},                                       // F1
			{{Block: 0, Row: 1, Col: 1, Value: 1}},                                       // F2
		},
	}

	if err := sdp.WriteSparse(os.Stdout, p); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// 2
	// 1
	// 2
	// 1 1
	// 0 1 1 1 1
	// 0 1 2 2 1
	// 1 1 1 1 1
	// 2 1 2 2 1
}

// ExampleProblem_MinEigenvalue shows the feasibility margin of a candidate
// assignment returned by an external backend.
func ExampleProblem_MinEigenvalue() {
	p := &sdp.Problem{
		BlockSizes: []int{2},
		Cost:       []float64{1, 1},
		F: []sdp.Matrix{
			{{Block: 0, Row: 0, Col: 0, Value: 1}, {Block: 0, Row: 1, Col: 1, Value: 1}},
			{{Block: 0, Row: 0, Col: 0, Value: 1}},
			{{Block: 0, Row: 1, Col: 1, Value: 1}},
		},
	}

	margin, err := p.MinEigenvalue([]float64{1, 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("feasibility margin: %.1f\n", margin)
	// Output:
	// feasibility margin: 0.0
}
