// SPDX-License-Identifier: MIT

package tsp

import "math/rand"

// Defaults for Options.
const (
	DefaultPopulationSize = 50
	DefaultGenerations    = 100
	DefaultCrossoverRate  = 0.8
	DefaultMutationRate   = 0.05
	DefaultEliteCount     = 2
	DefaultSeed           = int64(42)
)

// Option configures a run via functional arguments.
type Option func(*Options)

// Options holds the GA parameters and observation hooks of one run.
type Options struct {
	// PopulationSize is the number of tours per generation (>= 2).
	PopulationSize int

	// Generations is the fixed number of generations (>= 1).
	Generations int

	// CrossoverRate is the probability that a selected pair is recombined
	// with order crossover instead of being copied, in [0,1].
	CrossoverRate float64

	// MutationRate is the per-child probability of one swap, in [0,1].
	MutationRate float64

	// EliteCount is the number of best tours copied unchanged into the next
	// generation, in [0, PopulationSize].
	EliteCount int

	// Seed feeds NewRand when Rand is nil.
	Seed int64

	// Rand, when non-nil, is used instead of a generator built from Seed.
	// It must not be shared with concurrent runs.
	Rand *rand.Rand

	// OnGeneration is called once per generation after the best-ever update.
	OnGeneration func(GenerationStats)

	// OnNewBest is called whenever a generation strictly improves the best
	// length. The tour is a copy owned by the callee.
	OnNewBest func(generation int, tour Tour, length float64)
}

// DefaultOptions returns the parameters used by the reference experiments:
// population 50, 100 generations, crossover 0.8, mutation 0.05, elite 2,
// seed 42, no hooks.
func DefaultOptions() Options {
	return Options{
		PopulationSize: DefaultPopulationSize,
		Generations:    DefaultGenerations,
		CrossoverRate:  DefaultCrossoverRate,
		MutationRate:   DefaultMutationRate,
		EliteCount:     DefaultEliteCount,
		Seed:           DefaultSeed,
	}
}

// WithPopulationSize sets Options.PopulationSize.
func WithPopulationSize(n int) Option { return func(o *Options) { o.PopulationSize = n } }

// WithGenerations sets Options.Generations.
func WithGenerations(g int) Option { return func(o *Options) { o.Generations = g } }

// WithCrossoverRate sets Options.CrossoverRate.
func WithCrossoverRate(p float64) Option { return func(o *Options) { o.CrossoverRate = p } }

// WithMutationRate sets Options.MutationRate.
func WithMutationRate(p float64) Option { return func(o *Options) { o.MutationRate = p } }

// WithEliteCount sets Options.EliteCount.
func WithEliteCount(e int) Option { return func(o *Options) { o.EliteCount = e } }

// WithSeed sets Options.Seed.
func WithSeed(seed int64) Option { return func(o *Options) { o.Seed = seed } }

// WithRand injects the random source.
func WithRand(r *rand.Rand) Option { return func(o *Options) { o.Rand = r } }

// WithOnGeneration installs the per-generation hook.
func WithOnGeneration(fn func(GenerationStats)) Option {
	return func(o *Options) { o.OnGeneration = fn }
}

// WithOnNewBest installs the improvement hook.
func WithOnNewBest(fn func(generation int, tour Tour, length float64)) Option {
	return func(o *Options) { o.OnNewBest = fn }
}
