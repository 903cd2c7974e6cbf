// Package tsp_test validates tour utilities and the evaluator.
package tsp_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/gatsp/tsp"
	"github.com/stretchr/testify/require"
)

func TestTourLength_EqualsCyclicEdgeSum(t *testing.T) {
	p := circle(t, 9)
	r := tsp.NewRand(3)
	for _, tour := range tsp.InitPopulation(25, p.Nodes(), r) {
		got, err := tsp.TourLength(tour, p)
		require.NoError(t, err)

		var want float64
		for i := range tour {
			w, err := p.Weight(tour[i], tour[(i+1)%len(tour)])
			require.NoError(t, err)
			want += w
		}
		require.Equal(t, want, got)
	}
}

func TestTourLength_TwoCities(t *testing.T) {
	p := tsp.FuncProblem{
		Cities:   []tsp.City{10, 20},
		Distance: func(a, b tsp.City) float64 { return 3.5 },
	}
	l, err := tsp.TourLength(tsp.Tour{20, 10}, p)
	require.NoError(t, err)
	require.Equal(t, 7.0, l)
}

func TestTourLength_UnitSquare(t *testing.T) {
	p := unitSquare(t)

	l, err := tsp.TourLength(tsp.Tour{1, 2, 3, 4}, p)
	require.NoError(t, err)
	require.InDelta(t, 4.0, l, epsTiny)

	l, err = tsp.TourLength(tsp.Tour{1, 3, 2, 4}, p)
	require.NoError(t, err)
	require.InDelta(t, 2+2*math.Sqrt2, l, epsTiny)
}

func TestTourLength_UnknownCity(t *testing.T) {
	_, err := tsp.TourLength(tsp.Tour{1, 2, 99}, unitSquare(t))
	require.ErrorIs(t, err, tsp.ErrUnknownCity)
}

func TestFitnessAndEvaluate(t *testing.T) {
	require.Equal(t, 0.25, tsp.Fitness(4))
	require.True(t, math.IsInf(tsp.Fitness(0), 1))

	length, fit, err := tsp.Evaluate(tsp.Tour{1, 2, 3, 4}, unitSquare(t))
	require.NoError(t, err)
	require.InDelta(t, 4.0, length, epsTiny)
	require.InDelta(t, 0.25, fit, epsTiny)

	zero := tsp.FuncProblem{
		Cities:   []tsp.City{1, 2, 3},
		Distance: func(a, b tsp.City) float64 { return 0 },
	}
	length, fit, err = tsp.Evaluate(tsp.Tour{1, 2, 3}, zero)
	require.NoError(t, err)
	require.Zero(t, length)
	require.True(t, math.IsInf(fit, 1))
}

func TestValidatePermutation(t *testing.T) {
	cities := []tsp.City{1, 2, 3, 4}
	require.NoError(t, tsp.ValidatePermutation(tsp.Tour{4, 2, 1, 3}, cities))

	for name, tour := range map[string]tsp.Tour{
		"short":     {1, 2, 3},
		"duplicate": {1, 2, 2, 4},
		"unknown":   {1, 2, 3, 9},
	} {
		t.Run(name, func(t *testing.T) {
			err := tsp.ValidatePermutation(tour, cities)
			require.True(t, errors.Is(err, tsp.ErrNotPermutation), "got %v", err)
		})
	}
}

func TestEqualModuloRotationAndString(t *testing.T) {
	require.True(t, tsp.EqualModuloRotation(tsp.Tour{1, 2, 3, 4}, tsp.Tour{3, 4, 1, 2}))
	require.False(t, tsp.EqualModuloRotation(tsp.Tour{1, 2, 3, 4}, tsp.Tour{1, 4, 3, 2}))
	require.False(t, tsp.EqualModuloRotation(tsp.Tour{1, 2}, tsp.Tour{1, 2, 3}))
	require.True(t, tsp.EqualModuloRotation(nil, tsp.Tour{}))

	require.Equal(t, "[3 1 2]", tsp.Tour{3, 1, 2}.String())
	require.Nil(t, tsp.Tour(nil).Clone())
}
