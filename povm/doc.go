// Package povm models quantum measurements (POVMs) on complex matrices:
// validation, deterministic random sampling, depolarizing noise, and the
// projective-simulability SDP.
//
// 🚀 What is a POVM?
//
//	A positive-operator-valued measure: effects M₁,…,Mₖ with Mₐ ⪰ 0 and
//	ΣMₐ = I.  A POVM is simulable by projective measurements when it is a
//	convex combination of (post-processed) projective measurements; the
//	largest depolarizing visibility t at which t·M + (1−t)·noise stays
//	simulable is the critical visibility, computable as one SDP.
//
// ✨ Key features:
//   - effect validation: Hermiticity, positivity and completeness within eps
//   - Haar-based random POVMs with fixed-seed determinism (SplitMix64 streams)
//   - depolarizing noise map t·M + (1−t)·tr(M)/d·I
//   - two-outcome projective-simulability SDP assembly (exact for qubits,
//     see Oszmaniec, Guerini, Wittek, Acín 2017)
//   - critical visibility through any sdp.Solver backend
//
// ⚙️ Usage:
//
//	p, err := povm.Random(2, 4, 42)      // qubit, 4 outcomes, fixed seed
//	prob, err := povm.VisibilityProblem(p)
//	err = sdp.WriteSparse(f, prob)       // hand off to sdpa/csdp/mosek
//
//	// or, with an in-process backend:
//	t, err := povm.CriticalVisibility(p, solver)
//
// Numerics:
//
//	Complex Hermitian matrices are handled through their real symmetric
//	embedding [[A, −B], [B, A]] of H = A + iB, an algebra homomorphism, so
//	eigenvalue checks and the SDP blocks stay in gonum's real routines.
//
// Determinism:
//
//	Same seed ⇒ identical POVMs across platforms.  No time-based sources,
//	no package-level RNG state.
//
// See example_test.go for end-to-end scenarios.
package povm
