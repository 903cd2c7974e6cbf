// SPDX-License-Identifier: MIT

package tsp

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// SelectRoulette picks one individual with probability proportional to its
// fitness. fitness[i] belongs to population[i].
//
// Policy:
//   - total fitness 0 ⇒ uniform pick over the population;
//   - total fitness +Inf (some zero-length tours) ⇒ uniform pick over the
//     individuals whose fitness is +Inf, rather than always the last one;
//   - total fitness overflowing to +Inf from finite values ⇒ fitness is
//     rescaled by its maximum and the wheel below proceeds as usual;
//   - otherwise draw x ∈ [0,1) and return the first individual whose
//     cumulative normalized fitness exceeds x. If rounding leaves the
//     cumulative sum at or below x, the last individual is returned.
//
// The returned Tour aliases the population slot; callers copy before mutating.
// Returns nil for an empty population.
//
// Complexity: O(N).
func SelectRoulette(population []Tour, fitness []float64, r *rand.Rand) Tour {
	if len(population) == 0 {
		return nil
	}

	return population[rouletteIndex(fitness[:len(population)], r)]
}

// rouletteIndex implements SelectRoulette over the fitness vector alone.
func rouletteIndex(fitness []float64, r *rand.Rand) int {
	n := len(fitness)
	total := floats.Sum(fitness)
	if total == 0 {
		return r.Intn(n)
	}
	if math.IsInf(total, 1) {
		best := make([]int, 0, n)
		for i, f := range fitness {
			if math.IsInf(f, 1) {
				best = append(best, i)
			}
		}
		if len(best) > 0 {
			return best[r.Intn(len(best))]
		}
		// every value is finite but the sum overflowed
		fitness = rescaled(fitness)
		total = floats.Sum(fitness)
	}

	var (
		x   = r.Float64()
		cum float64
	)
	for i, f := range fitness {
		cum += f / total
		if cum > x {
			return i
		}
	}

	return n - 1 // rounding left cum <= x
}

// rescaled returns fitness divided by its maximum, so the sum stays finite
// and the proportions are kept.
func rescaled(fitness []float64) []float64 {
	var (
		peak = floats.Max(fitness)
		out  = make([]float64, len(fitness))
	)
	for i, f := range fitness {
		out[i] = f / peak
	}

	return out
}
