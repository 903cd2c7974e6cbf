// SPDX-License-Identifier: MIT

package tsp

import (
	"errors"
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrEngineUsed is returned when Run is called on an engine that already ran.
var ErrEngineUsed = errors.New("tsp: engine already ran")

// State is the lifecycle stage of an Engine.
type State int

const (
	// Initialized: parameters and instance validated, population not yet built.
	Initialized State = iota
	// Running: inside the generational loop.
	Running
	// Completed: all generations done; the Result is final.
	Completed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Initialized:
		return "initialized"
	case Running:
		return "running"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// Engine owns one run: its instance, options, random source and population.
// An Engine is single-use and not safe for concurrent use.
type Engine struct {
	inst  *Instance
	opts  Options
	rng   *rand.Rand
	state State
	gen   int
}

// NewEngine validates opts and compiles p. Parameter errors are reported
// before instance errors.
func NewEngine(p Problem, opts Options) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	inst, err := Compile(p)
	if err != nil {
		return nil, err
	}
	r := opts.Rand
	if r == nil {
		r = NewRand(opts.Seed)
	}

	return &Engine{inst: inst, opts: opts, rng: r, state: Initialized}, nil
}

// State returns the current lifecycle stage.
func (e *Engine) State() State { return e.state }

// Generation returns the index of the generation being (or last) processed.
func (e *Engine) Generation() int { return e.gen }

// Run executes all generations and returns the best tour, its length, the
// convergence history and per-generation statistics.
//
// Per generation:
//  1. evaluate every tour;
//  2. take the generation best (first occurrence on ties);
//  3. replace the best-ever tour on strict improvement and call OnNewBest;
//  4. append the best-ever length to the history and call OnGeneration;
//  5. breed the next population (elites, then selected/crossed/mutated pairs).
func (e *Engine) Run() (Result, error) {
	if e.state != Initialized {
		return Result{}, ErrEngineUsed
	}
	e.state = Running

	var (
		o       = e.opts
		n       = o.PopulationSize
		pop     = InitPopulation(n, e.inst.cities, e.rng)
		lengths = make([]float64, n)
		fitness = make([]float64, n)
		res     = Result{
			Length:  math.Inf(1),
			History: make([]float64, 0, o.Generations),
			Stats:   make([]GenerationStats, 0, o.Generations),
		}
		err error
	)

	for e.gen = 0; e.gen < o.Generations; e.gen++ {
		for i, t := range pop {
			if lengths[i], err = TourLength(t, e.inst); err != nil {
				return Result{}, err
			}
			fitness[i] = Fitness(lengths[i])
		}

		bi := floats.MaxIdx(fitness)
		improved := lengths[bi] < res.Length
		if improved {
			res.Length = lengths[bi]
			res.Tour = pop[bi].Clone()
			if o.OnNewBest != nil {
				o.OnNewBest(e.gen, res.Tour.Clone(), res.Length)
			}
		}
		res.History = append(res.History, res.Length)

		st := summarize(e.gen, lengths, lengths[bi], res.Length, improved)
		res.Stats = append(res.Stats, st)
		if o.OnGeneration != nil {
			o.OnGeneration(st)
		}

		pop = e.breed(pop, fitness)
	}
	e.state = Completed

	return res, nil
}

// breed builds the next population from pop and its fitness vector.
func (e *Engine) breed(pop []Tour, fitness []float64) []Tour {
	var (
		o    = e.opts
		n    = len(pop)
		next = make([]Tour, 0, n)
	)
	for _, idx := range eliteIndices(fitness, o.EliteCount) {
		next = append(next, pop[idx].Clone())
	}
	for len(next) < n {
		p1 := SelectRoulette(pop, fitness, e.rng)
		p2 := SelectRoulette(pop, fitness, e.rng)
		c1, c2 := Crossover(p1, p2, o.CrossoverRate, e.rng)
		swapInPlace(c1, o.MutationRate, e.rng)
		swapInPlace(c2, o.MutationRate, e.rng)

		next = append(next, c1)
		if len(next) < n {
			next = append(next, c2) // odd remainder drops the second child
		}
	}

	return next
}

// eliteIndices returns the indices of the top-k fitness values, descending,
// ties kept in population order.
func eliteIndices(fitness []float64, k int) []int {
	if k <= 0 {
		return nil
	}
	order := make([]int, len(fitness))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return fitness[order[a]] > fitness[order[b]]
	})
	if k > len(order) {
		k = len(order)
	}

	return order[:k]
}

// summarize builds the statistics of one evaluated generation.
func summarize(gen int, lengths []float64, best, bestEver float64, improved bool) GenerationStats {
	mean, std := stat.MeanStdDev(lengths, nil)

	return GenerationStats{
		Generation: gen,
		Best:       best,
		BestEver:   bestEver,
		Worst:      floats.Max(lengths),
		Mean:       mean,
		StdDev:     std,
		Improved:   improved,
	}
}

// Run evolves a population on p with DefaultOptions modified by opts.
func Run(p Problem, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return RunWithOptions(p, o)
}

// RunWithOptions evolves a population on p with the given options.
func RunWithOptions(p Problem, o Options) (Result, error) {
	e, err := NewEngine(p, o)
	if err != nil {
		return Result{}, err
	}

	return e.Run()
}

// RunGA is the positional entry point: it returns the best tour, its length
// and the convergence history (one entry per generation).
func RunGA(
	p Problem,
	populationSize, generations int,
	crossoverRate, mutationRate float64,
	eliteCount int,
	seed int64,
) (Tour, float64, []float64, error) {
	res, err := RunWithOptions(p, Options{
		PopulationSize: populationSize,
		Generations:    generations,
		CrossoverRate:  crossoverRate,
		MutationRate:   mutationRate,
		EliteCount:     eliteCount,
		Seed:           seed,
	})
	if err != nil {
		return nil, 0, nil, err
	}

	return res.Tour, res.Length, res.History, nil
}
