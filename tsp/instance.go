// SPDX-License-Identifier: MIT

package tsp

import (
	"fmt"
	"math"
	"reflect"

	"github.com/katalvlaran/gatsp/matrix"
)

// Instance is a validated Problem with every pairwise weight cached in a
// dense table. The engine compiles its Problem once and evaluates against
// the Instance, so a missing weight is reported before the first generation
// instead of in the middle of a run.
type Instance struct {
	cities []City
	index  map[City]int
	dist   *matrix.Dense
}

var _ Problem = (*Instance)(nil)

// Compile queries p for every ordered pair of distinct cities and caches the
// weights.
//
// Errors (all wrap ErrInvalidInstance):
//   - ErrNilProblem for p == nil or a nil pointer held in p,
//   - ErrTooFewCities for fewer than two cities,
//   - ErrDuplicateCity when Nodes repeats a city,
//   - ErrMissingWeight when Weight fails or returns NaN/±Inf,
//   - ErrNegativeWeight for a weight below zero.
//
// Complexity: O(n²) Weight calls and O(n²) memory.
func Compile(p Problem) (*Instance, error) {
	if p == nil || isNilPointer(p) {
		return nil, invalidInstance(ErrNilProblem, "compile")
	}
	if inst, ok := p.(*Instance); ok {
		if inst.Len() < 2 {
			return nil, invalidInstance(ErrTooFewCities, "got %d", inst.Len())
		}
		return inst, nil
	}

	cities := p.Nodes()
	n := len(cities)
	if n < 2 {
		return nil, invalidInstance(ErrTooFewCities, "got %d", n)
	}
	index, err := indexCities(cities)
	if err != nil {
		return nil, err
	}
	dist, err := matrix.NewSquare(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInstance, err)
	}

	var (
		i, j int
		w    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue // diagonal stays 0
			}
			w, err = p.Weight(cities[i], cities[j])
			if err != nil {
				return nil, invalidInstance(ErrMissingWeight, "d(%d,%d): %v", cities[i], cities[j], err)
			}
			if math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, invalidInstance(ErrMissingWeight, "d(%d,%d)=%v", cities[i], cities[j], w)
			}
			if w < 0 {
				return nil, invalidInstance(ErrNegativeWeight, "d(%d,%d)=%v", cities[i], cities[j], w)
			}
			if err = dist.Set(i, j, w); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidInstance, err)
			}
		}
	}

	return &Instance{cities: append([]City(nil), cities...), index: index, dist: dist}, nil
}

// Len returns the number of cities.
func (in *Instance) Len() int { return len(in.cities) }

// Nodes returns a copy of the city list in the order the Problem gave it.
func (in *Instance) Nodes() []City { return append([]City(nil), in.cities...) }

// Weight returns the cached weight; a == b yields 0.
func (in *Instance) Weight(a, b City) (float64, error) {
	i, ok := in.index[a]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownCity, a)
	}
	j, ok := in.index[b]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownCity, b)
	}

	return in.dist.At(i, j)
}

// Distances returns a copy of the cached weight table; row k is Nodes()[k].
func (in *Instance) Distances() *matrix.Dense {
	return in.dist.Clone().(*matrix.Dense)
}

// isNilPointer reports whether p wraps a nil pointer, such as a
// (*MatrixProblem)(nil).
func isNilPointer(p Problem) bool {
	v := reflect.ValueOf(p)

	return v.Kind() == reflect.Pointer && v.IsNil()
}
