// SPDX-License-Identifier: MIT

package tsp

import "math/rand"

// SwapMutation returns a copy of t in which, with probability rate, the
// contents of two distinct uniformly chosen positions are swapped.
func SwapMutation(t Tour, rate float64, r *rand.Rand) Tour {
	out := t.Clone()
	swapInPlace(out, rate, r)

	return out
}

// swapInPlace is SwapMutation without the copy. The rate draw happens even
// for tours too short to swap, so the RNG stream does not depend on n.
func swapInPlace(t Tour, rate float64, r *rand.Rand) {
	if r.Float64() >= rate || len(t) < 2 {
		return
	}
	a, b := twoDistinct(len(t), r)
	t[a], t[b] = t[b], t[a]
}
