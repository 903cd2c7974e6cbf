// SPDX-License-Identifier: MIT

// Package tsp implements a generational genetic algorithm for the
// Travelling Salesman Problem.
//
// A candidate solution is a Tour: a permutation of every City of a Problem,
// read as a closed cycle. One run evolves a fixed-size population through
// a fixed number of generations:
//
//   - Evaluate: length = Σ d(t[i], t[(i+1) mod n]); fitness = 1/length
//     (+Inf for a zero-length tour).
//   - Elitism: the top-E tours by fitness are carried over unchanged.
//   - Selection: roulette wheel proportional to fitness.
//   - Crossover: order crossover (OX) with probability CrossoverRate.
//   - Mutation: swap of two distinct positions with probability MutationRate.
//
// The run returns the best tour seen, its length, and a convergence history
// holding the best-so-far length after each generation.
//
// Determinism:
//
//	Every stochastic step draws from one *rand.Rand built from Options.Seed
//	(or injected with WithRand). Same problem + same options ⇒ bit-identical
//	Result. A *rand.Rand is not goroutine-safe; runs never share one.
//
// Errors:
//
//	Invalid problems wrap ErrInvalidInstance; invalid options wrap
//	ErrInvalidParameters. Both are reported before the first generation.
//	The package never logs; observe progress through OnGeneration/OnNewBest.
//
// Complexity: O(G · N · n) time and O(N · n + n²) memory for G generations,
// population N and n cities (the n² term is the cached distance table).
package tsp
