// Package polytope: double description vertex enumeration.

package polytope

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// ray is one element of the working double description pair: a direction in
// the homogenized space R^(n+1) plus the processed rows it is tight on.
type ray struct {
	z     []float64
	tight []bool
}

// Enumerate — H-representation to V-representation conversion
//
// Description:
//
//	Computes the vertices and extreme rays of {x : A·x ≤ B} by the double
//	description method on the homogenization cone
//
//	  C = {(x,t) : A·x ≤ B·t, t ≥ 0} ⊂ R^(n+1).
//
//	Extreme rays of C with t > 0 project to vertices x/t; rays with t = 0
//	are the recession directions of the polyhedron.
//
// Algorithm Outline:
//  1. Validate shape and numeric policy; homogenize the constraints.
//  2. Pointedness check: the homogenized rows must span R^(n+1), otherwise
//     the polyhedron contains a line and has no vertex representation.
//  3. Seed the ray set with the columns of S⁻¹ for a nonsingular row subset
//     S (a simplicial cone whose double description is immediate).
//  4. Insert the remaining halfspaces one by one, in input order: keep
//     non-negative rays, and for every adjacent (positive, negative) pair
//     add their combination lying on the new hyperplane. Adjacency is the
//     combinatorial test over tight-row sets.
//  5. Split the final rays by the homogenizing coordinate, normalize,
//     deduplicate and sort.
//
// Errors:
//   - ErrBadDimension      — zero ambient dimension.
//   - ErrDimensionMismatch — ragged A or len(B) != len(A).
//   - ErrNaNInf            — non-finite coefficient.
//   - ErrNotPointed        — the polyhedron contains a line.
//   - ErrInfeasible        — no point satisfies the constraints.
//
// Complexity: output-sensitive, worst case exponential (inherent to the
// problem); O(R²·m) per inserted halfspace for R intermediate rays.
func Enumerate(h HRep, opts ...Option) (VRep, error) {
	o := gatherOptions(opts)
	if err := validate(h); err != nil {
		return VRep{}, err
	}

	n := h.Dim()
	rows := homogenize(h)

	seed, rest, err := seedSubset(rows, n+1, o.epsilon)
	if err != nil {
		return VRep{}, err
	}

	rays, err := initialRays(rows, seed)
	if err != nil {
		return VRep{}, err
	}
	processed := append([]int{}, seed...)
	for _, ri := range rest {
		rays = insertHalfspace(rays, rows, processed, ri, n, o.epsilon)
		processed = append(processed, ri)
	}

	return extract(rays, n, o.epsilon)
}

// validate enforces the H-representation shape and the finite-value policy.
func validate(h HRep) error {
	if len(h.A) == 0 || len(h.A[0]) == 0 {
		return ErrBadDimension
	}
	if len(h.B) != len(h.A) {
		return ErrDimensionMismatch
	}
	n := len(h.A[0])
	for i, row := range h.A {
		if len(row) != n {
			return ErrDimensionMismatch
		}
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return ErrNaNInf
			}
		}
		if math.IsNaN(h.B[i]) || math.IsInf(h.B[i], 0) {
			return ErrNaNInf
		}
	}

	return nil
}

// homogenize maps aᵢ·x ≤ bᵢ to the cone rows rᵢ = (−aᵢ, bᵢ) with rᵢ·z ≥ 0,
// appending the homogenizing constraint t ≥ 0 as the last row.
func homogenize(h HRep) [][]float64 {
	n := h.Dim()
	rows := make([][]float64, 0, len(h.A)+1)
	for i, a := range h.A {
		r := make([]float64, n+1)
		for j, v := range a {
			r[j] = -v
		}
		r[n] = h.B[i]
		rows = append(rows, r)
	}
	tRow := make([]float64, n+1)
	tRow[n] = 1
	rows = append(rows, tRow)

	return rows
}

// seedSubset greedily selects dim linearly independent rows (Gram–Schmidt
// residual test) and returns their indices plus the remaining row indices in
// input order. Fewer than dim independent rows means the cone is not pointed.
func seedSubset(rows [][]float64, dim int, eps float64) (seed, rest []int, err error) {
	basis := make([][]float64, 0, dim)
	selected := make(map[int]struct{}, dim)
	for i, r := range rows {
		if len(basis) == dim {
			break
		}
		res := residual(r, basis)
		if norm(res) > eps {
			scale(res, 1/norm(res))
			basis = append(basis, res)
			selected[i] = struct{}{}
			seed = append(seed, i)
		}
	}
	if len(seed) < dim {
		return nil, nil, ErrNotPointed
	}
	for i := range rows {
		if _, ok := selected[i]; !ok {
			rest = append(rest, i)
		}
	}

	return seed, rest, nil
}

// initialRays returns the extreme rays of the simplicial cone {z : S·z ≥ 0}:
// the columns of S⁻¹, each tight on every seed row but its own.
func initialRays(rows [][]float64, seed []int) ([]ray, error) {
	dim := len(seed)
	s := mat.NewDense(dim, dim, nil)
	for i, ri := range seed {
		s.SetRow(i, rows[ri])
	}
	var inv mat.Dense
	if err := inv.Inverse(s); err != nil {
		// seedSubset certified independence; an ill-conditioned seed still
		// means no usable simplicial cone exists at this tolerance.
		return nil, ErrNotPointed
	}

	rays := make([]ray, dim)
	for j := 0; j < dim; j++ {
		z := make([]float64, dim)
		mat.Col(z, j, &inv)
		scale(z, 1/norm(z))
		rays[j] = ray{z: z}
	}

	return rays, nil
}

// insertHalfspace performs one double description step for row ri.
func insertHalfspace(rays []ray, rows [][]float64, processed []int, ri, n int, eps float64) []ray {
	r := rows[ri]
	sign := make([]float64, len(rays))
	for i := range rays {
		sign[i] = dot(r, rays[i].z)
	}

	// Tight sets over the rows processed so far drive the adjacency test.
	for i := range rays {
		rays[i].tight = tightSet(rays[i].z, rows, processed, eps)
	}

	kept := make([]ray, 0, len(rays))
	for i := range rays {
		if sign[i] >= -eps {
			kept = append(kept, rays[i])
		}
	}
	for p := range rays {
		if sign[p] <= eps {
			continue
		}
		for q := range rays {
			if sign[q] >= -eps {
				continue
			}
			if !adjacent(rays, p, q, n, eps) {
				continue
			}
			z := combine(rays[p].z, sign[p], rays[q].z, sign[q])
			if norm(z) <= eps {
				continue
			}
			scale(z, 1/norm(z))
			if containsDirection(kept, z, eps) {
				continue
			}
			kept = append(kept, ray{z: z})
		}
	}

	return kept
}

// adjacent applies the combinatorial adjacency test: rays p and q are
// adjacent iff no third ray is tight on every row both are tight on.
// The |Z| ≥ n−1 cardinality filter rejects most pairs cheaply.
func adjacent(rays []ray, p, q, n int, eps float64) bool {
	shared := make([]int, 0, len(rays[p].tight))
	for k, tp := range rays[p].tight {
		if tp && rays[q].tight[k] {
			shared = append(shared, k)
		}
	}
	if len(shared) < n-1 {
		return false
	}
	for w := range rays {
		if w == p || w == q {
			continue
		}
		covers := true
		for _, k := range shared {
			if !rays[w].tight[k] {
				covers = false
				break
			}
		}
		if covers {
			return false
		}
	}

	return true
}

// tightSet marks the processed rows z lies on, indexed by position in
// processed.
func tightSet(z []float64, rows [][]float64, processed []int, eps float64) []bool {
	out := make([]bool, len(processed))
	for k, ri := range processed {
		out[k] = math.Abs(dot(rows[ri], z)) <= eps
	}

	return out
}

// combine returns sp·zq − sq·zp, which lies on the inserted hyperplane and
// stays inside every previously processed halfspace (sp > 0 > sq).
func combine(zp []float64, sp float64, zq []float64, sq float64) []float64 {
	out := make([]float64, len(zp))
	for i := range out {
		out[i] = sp*zq[i] - sq*zp[i]
	}

	return out
}

// containsDirection reports whether dir (unit norm) already occurs among the
// kept rays, within eps componentwise.
func containsDirection(kept []ray, dir []float64, eps float64) bool {
	for i := range kept {
		if sameVector(kept[i].z, dir, eps) {
			return true
		}
	}

	return false
}

// extract splits the final rays by the homogenizing coordinate, normalizes,
// deduplicates and sorts both result lists.
func extract(rays []ray, n int, eps float64) (VRep, error) {
	var v VRep
	for i := range rays {
		z := rays[i].z
		t := z[n]
		if t > eps {
			x := make([]float64, n)
			for j := 0; j < n; j++ {
				x[j] = z[j] / t
			}
			if !containsVector(v.Vertices, x, eps) {
				v.Vertices = append(v.Vertices, x)
			}
			continue
		}
		d := make([]float64, n)
		copy(d, z[:n])
		if norm(d) <= eps {
			continue
		}
		scale(d, 1/norm(d))
		if !containsVector(v.Rays, d, eps) {
			v.Rays = append(v.Rays, d)
		}
	}

	if len(v.Vertices) == 0 && len(v.Rays) == 0 {
		return VRep{}, ErrInfeasible
	}
	sortVectors(v.Vertices)
	sortVectors(v.Rays)

	return v, nil
}

// ---------- small vector helpers ----------

func dot(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}

func norm(a []float64) float64 {
	return math.Sqrt(dot(a, a))
}

func scale(a []float64, f float64) {
	for i := range a {
		a[i] *= f
	}
}

// residual returns r minus its projection onto the orthonormal basis.
func residual(r []float64, basis [][]float64) []float64 {
	out := make([]float64, len(r))
	copy(out, r)
	for _, q := range basis {
		c := dot(out, q)
		for i := range out {
			out[i] -= c * q[i]
		}
	}

	return out
}

func sameVector(a, b []float64, eps float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}

	return true
}

func containsVector(set [][]float64, x []float64, eps float64) bool {
	for _, s := range set {
		if sameVector(s, x, eps) {
			return true
		}
	}

	return false
}

// sortVectors orders vectors lexicographically for reproducible output.
func sortVectors(set [][]float64) {
	sort.Slice(set, func(i, j int) bool {
		for k := range set[i] {
			if set[i][k] != set[j][k] {
				return set[i][k] < set[j][k]
			}
		}

		return false
	})
}
