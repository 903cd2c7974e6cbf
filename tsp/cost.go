// SPDX-License-Identifier: MIT

package tsp

import "math"

// TourLength returns the closed-cycle length of t: the sum of
// d(t[i], t[(i+1) mod n]) over all i, wrap-around edge included.
// An empty tour has length 0.
//
// Complexity: O(n) Weight calls.
func TourLength(t Tour, p Problem) (float64, error) {
	var (
		n   = len(t)
		sum float64
		w   float64
		err error
		i   int
	)
	for i = 0; i < n; i++ {
		w, err = p.Weight(t[i], t[(i+1)%n])
		if err != nil {
			return 0, err
		}
		sum += w
	}

	return sum, nil
}

// Fitness maps a tour length to 1/length, or +Inf for a zero length.
func Fitness(length float64) float64 {
	if length > 0 {
		return 1.0 / length
	}

	return math.Inf(1)
}

// Evaluate returns the length of t and its fitness. It has no side effects.
func Evaluate(t Tour, p Problem) (length, fitness float64, err error) {
	length, err = TourLength(t, p)
	if err != nil {
		return 0, 0, err
	}

	return length, Fitness(length), nil
}
