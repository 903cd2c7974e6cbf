package tsp

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// nearOneSource makes rand.Float64 return 1-2^-53, the largest value below 1.
type nearOneSource struct{}

func (nearOneSource) Int63() int64 { return 1<<63 - 1024 }
func (nearOneSource) Seed(int64) {}

func TestRouletteIndex_RoundingFallsBackToLast(t *testing.T) {
	r := rand.New(nearOneSource{})
	require.Equal(t, 1-1.0/(1<<53), r.Float64())

	fit := make([]float64, 10)
	for i := range fit {
		fit[i] = 1
	}
	// ten shares of 0.1 add up to 1-2^-53, not above the draw
	require.Equal(t, 9, rouletteIndex(fit, r))
}

func TestTwoDistinct(t *testing.T) {
	r := NewRand(3)
	seen := map[[2]int]int{}
	for i := 0; i < 3000; i++ {
		a, b := twoDistinct(3, r)
		require.NotEqual(t, a, b)
		require.True(t, a >= 0 && a < 3 && b >= 0 && b < 3)
		seen[[2]int{a, b}]++
	}
	require.Len(t, seen, 6, "all ordered pairs occur")
}

func TestBreed_KeepsSizeForOddPopulation(t *testing.T) {
	p := FuncProblem{
		Cities:   SequentialCities(6),
		Distance: func(a, b City) float64 { return float64(a + b) },
	}
	o := DefaultOptions()
	o.PopulationSize = 7
	o.EliteCount = 3
	e, err := NewEngine(p, o)
	require.NoError(t, err)

	pop := InitPopulation(7, e.inst.cities, e.rng)
	fit := make([]float64, len(pop))
	for i, tour := range pop {
		l, err := TourLength(tour, e.inst)
		require.NoError(t, err)
		fit[i] = Fitness(l)
	}
	next := e.breed(pop, fit)
	require.Len(t, next, 7)
	for _, idx := range eliteIndices(fit, 3) {
		require.Contains(t, next[:3], pop[idx])
	}
	for _, tour := range next {
		require.NoError(t, ValidatePermutation(tour, e.inst.cities))
	}
}

func TestEliteIndices_StableDescending(t *testing.T) {
	fit := []float64{0.2, 0.5, 0.2, 0.5, 0.1}
	require.Equal(t, []int{1, 3, 0}, eliteIndices(fit, 3))
	require.Equal(t, []int{1, 3, 0, 2, 4}, eliteIndices(fit, 9))
	require.Nil(t, eliteIndices(fit, 0))
}
