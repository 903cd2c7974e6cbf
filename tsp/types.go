// SPDX-License-Identifier: MIT

package tsp

import "errors"

// City is an opaque city identifier as exposed by a Problem.
// TSPLIB instances number their cities 1..n.
type City int

// Tour is an ordering of all cities of a Problem, read as a closed cycle:
// the last city connects back to the first.
type Tour []City

// Category sentinels. Every error returned before a run starts wraps one of them.
var (
	// ErrInvalidInstance marks a problem that cannot be searched.
	ErrInvalidInstance = errors.New("tsp: invalid instance")

	// ErrInvalidParameters marks a GA parameter outside its domain.
	ErrInvalidParameters = errors.New("tsp: invalid parameters")
)

// Instance causes; always returned together with ErrInvalidInstance.
var (
	// ErrNilProblem is returned when a nil Problem is passed.
	ErrNilProblem = errors.New("tsp: problem is nil")

	// ErrTooFewCities is returned for problems with fewer than two cities.
	ErrTooFewCities = errors.New("tsp: fewer than 2 cities")

	// ErrDuplicateCity is returned when Nodes lists the same city twice.
	ErrDuplicateCity = errors.New("tsp: duplicate city")

	// ErrMissingWeight is returned when a weight cannot be read or is NaN/±Inf.
	ErrMissingWeight = errors.New("tsp: missing or unreadable weight")

	// ErrNegativeWeight is returned for a weight below zero.
	ErrNegativeWeight = errors.New("tsp: negative weight")

	// ErrUnknownCity is returned by Weight for a city outside the problem.
	ErrUnknownCity = errors.New("tsp: unknown city")

	// ErrNotPermutation is returned when a tour is not a permutation of the cities.
	ErrNotPermutation = errors.New("tsp: tour is not a permutation of the cities")
)

// Parameter causes; always returned together with ErrInvalidParameters.
var (
	// ErrPopulationSize is returned when the population holds fewer than two tours.
	ErrPopulationSize = errors.New("tsp: population size must be >= 2")

	// ErrGenerations is returned when fewer than one generation is requested.
	ErrGenerations = errors.New("tsp: generations must be >= 1")

	// ErrEliteCount is returned when the elite count is negative or exceeds the population.
	ErrEliteCount = errors.New("tsp: elite count out of range")

	// ErrRateOutOfRange is returned for a crossover or mutation rate outside [0,1].
	ErrRateOutOfRange = errors.New("tsp: rate outside [0,1]")
)

// GenerationStats summarizes one generation of a run.
type GenerationStats struct {
	// Generation is the zero-based generation index.
	Generation int

	// Best is the shortest length in this generation's population.
	Best float64

	// BestEver is the best length seen up to and including this generation.
	BestEver float64

	// Worst is the longest length in this generation's population.
	Worst float64

	// Mean and StdDev describe the population's length distribution.
	Mean   float64
	StdDev float64

	// Improved reports whether this generation replaced the best-ever tour.
	Improved bool
}

// Result is the outcome of a run.
type Result struct {
	// Tour is the best tour found across all generations.
	Tour Tour

	// Length is the closed-cycle length of Tour.
	Length float64

	// History holds the best-ever length after each generation;
	// len(History) == generations and it never increases.
	History []float64

	// Stats holds one entry per generation, aligned with History.
	Stats []GenerationStats
}
