// SPDX-License-Identifier: MIT

package tsp

import "math/rand"

// InitPopulation returns size independent uniformly random permutations of
// cities. Duplicated individuals are allowed.
//
// Complexity: O(size · n).
func InitPopulation(size int, cities []City, r *rand.Rand) []Tour {
	pop := make([]Tour, size)
	for i := range pop {
		t := make(Tour, len(cities))
		copy(t, cities)
		shuffleInPlace(t, r)
		pop[i] = t
	}

	return pop
}
