// Package ncpol is your in-memory toolkit for noncommutative polynomial
// optimization — from symbolic operator algebra to moment-matrix SDP
// relaxations, polytope vertex enumeration and POVM simulability.
//
// 🚀 What is ncpol?
//
//	A deterministic, pure-computation library that brings together:
//		• Operator algebra: Hermitian/non-Hermitian generators, monomials, adjoints
//		• Basis generation: every distinct monomial up to a given degree
//		• Moment matrices: NPA-style relaxation assembly with substitution rules
//		• SDP modelling: block-diagonal problems + SDPA sparse (.dat-s) export
//		• Polytopes: H-representation → vertex/ray enumeration (double description)
//		• POVMs: validation, deterministic random sampling, projective simulability
//
// ✨ Why choose ncpol?
//
//   - Reproducible by construction – stable orderings, fixed-seed RNG, no globals
//   - Rock-solid guarantees – sentinel errors, no panics on user input, no logging
//   - Pure Go – no cgo, no solver binaries baked in
//   - Composable – every layer returns plain values the next layer consumes
//
// Under the hood, everything is organized under five subpackages:
//
//	operator/ — generators, monomials, conjugation & degree-bounded basis generation
//	moment/   — substitution rules, canonical reduction & moment-matrix relaxations
//	sdp/      — block-diagonal SDP problems, Solver interface, SDPA sparse writer
//	polytope/ — vertex enumeration for systems of linear inequalities
//	povm/     — quantum measurements: validation, noise, simulability SDPs
//
// Quick sketch of the pipeline:
//
//	generators ──▶ operator.GenerateBasis ──▶ moment.Build ──▶ sdp.WriteSparse
//	                                              ▲
//	                        moment.Substitutions ─┘ (projectivity, orthogonality, …)
//
// Dive into the examples/ directory for end-to-end programs: basis growth,
// POVM critical visibility, and Bell-polytope vertex enumeration.
//
//	go get github.com/katalvlaran/ncpol
package ncpol
