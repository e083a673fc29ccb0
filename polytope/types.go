// Package polytope: domain types and functional options.

package polytope

// DefaultEpsilon is the non-negative tolerance used by all sign and tightness
// decisions. Tuned for inputs with coefficients of order 1.
const DefaultEpsilon = 1e-9

// HRep is a halfspace description: the polyhedron {x : A·x ≤ B}.
// Every row of A pairs with one entry of B.
type HRep struct {
	A [][]float64
	B []float64
}

// Dim returns the ambient dimension, 0 for an empty description.
func (h HRep) Dim() int {
	if len(h.A) == 0 {
		return 0
	}

	return len(h.A[0])
}

// VRep is a vertex/ray description: the polyhedron is the convex hull of
// Vertices plus the conic hull of Rays. Both lists are sorted
// lexicographically; rays are normalized to unit Euclidean length.
type VRep struct {
	Vertices [][]float64
	Rays     [][]float64
}

// Bounded reports whether the polyhedron is a polytope (no rays).
func (v VRep) Bounded() bool {
	return len(v.Rays) == 0
}

// Option configures Enumerate. Constructors validate their parameters and
// panic on nonsensical values (programmer error), never on data.
type Option func(*options)

type options struct {
	epsilon float64
}

// WithEpsilon overrides the numeric tolerance.
// Panics if eps is negative or NaN.
func WithEpsilon(eps float64) Option {
	if !(eps >= 0) {
		panic("polytope: WithEpsilon requires a non-negative tolerance")
	}

	return func(o *options) { o.epsilon = eps }
}

// gatherOptions folds user options over the documented defaults.
func gatherOptions(opts []Option) options {
	o := options{epsilon: DefaultEpsilon}
	for _, apply := range opts {
		apply(&o)
	}

	return o
}
