// Package povm - RNG utilities shared by the random-measurement samplers.
//
// This file centralizes deterministic random generation for POVM sampling.
//
// Goals:
//   - Determinism: same seed ⇒ identical POVMs across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging; only sentinel errors from errors.go when needed.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use deriveRNG to create independent streams for ensemble sampling.
package povm

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
//
// Rationale:
//   - Ensemble sampling needs independent substreams derived from one base seed.
//   - We apply a SplitMix64-style avalanche mix to eliminate correlations.
//
// Notes:
//   - Constants are the canonical SplitMix64 multipliers/finalizer. They provide strong
//     bit diffusion; small changes in inputs produce large, well-distributed output changes.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	// SplitMix64-style finalizer; see Vigna 2014 for the constants and rationale.
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// deriveRNG creates an independent deterministic RNG stream for member
// `stream` of an ensemble rooted at seed.
//
// Complexity: O(1).
func deriveRNG(seed int64, stream uint64) *rand.Rand {
	var parent int64
	parent = seed
	if parent == 0 {
		parent = defaultRNGSeed
	}
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}
