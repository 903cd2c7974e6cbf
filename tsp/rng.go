// SPDX-License-Identifier: MIT

// Package tsp - RNG utilities shared by the genetic operators.
//
// Goals:
//   - Determinism: same seed ⇒ identical runs across platforms.
//   - Encapsulation: a single RNG factory; no time-based or global sources.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
package tsp

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// shuffleInPlace performs a Fisher–Yates shuffle of t using r.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleInPlace(t Tour, r *rand.Rand) {
	var i, j int
	for i = len(t) - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		t[i], t[j] = t[j], t[i]
	}
}

// twoDistinct draws two different indices from [0, n) without replacement,
// uniformly over ordered pairs. Requires n >= 2.
func twoDistinct(n int, r *rand.Rand) (int, int) {
	a := r.Intn(n)
	b := r.Intn(n - 1)
	if b >= a {
		b++
	}

	return a, b
}
