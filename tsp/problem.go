// SPDX-License-Identifier: MIT

package tsp

import (
	"fmt"

	"github.com/katalvlaran/gatsp/matrix"
)

// Problem is the capability the engine needs from a TSP instance.
//
// Contract:
//   - Nodes returns every city exactly once; the order seeds nothing but the
//     identity of the set.
//   - Weight returns a finite, non-negative distance for every ordered pair
//     of distinct cities in Nodes. Symmetry is assumed by the domain but not
//     enforced.
type Problem interface {
	Nodes() []City
	Weight(a, b City) (float64, error)
}

// MatrixProblem is a Problem backed by a square distance matrix.
// Row/column k of the matrix belongs to Cities[k].
type MatrixProblem struct {
	name   string
	cities []City
	index  map[City]int
	dist   matrix.Matrix
}

var _ Problem = (*MatrixProblem)(nil)

// NewMatrixProblem binds city identifiers to the rows of dist.
// When cities is nil the cities are numbered 1..n, as in TSPLIB.
//
// Errors (all wrap ErrInvalidInstance): ErrTooFewCities, ErrDuplicateCity,
// and matrix sentinels for a nil or non-square matrix or a length mismatch.
//
// Complexity: O(n).
func NewMatrixProblem(name string, cities []City, dist matrix.Matrix) (*MatrixProblem, error) {
	if err := matrix.ValidateSquare(dist); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInstance, err)
	}
	n := dist.Rows()
	if cities == nil {
		cities = SequentialCities(n)
	}
	if len(cities) != n {
		return nil, fmt.Errorf("%w: %d cities for a %dx%d matrix", ErrInvalidInstance, len(cities), n, n)
	}
	if n < 2 {
		return nil, invalidInstance(ErrTooFewCities, "got %d", n)
	}
	index, err := indexCities(cities)
	if err != nil {
		return nil, err
	}

	return &MatrixProblem{
		name:   name,
		cities: append([]City(nil), cities...),
		index:  index,
		dist:   dist,
	}, nil
}

// Name returns the instance name given at construction.
func (p *MatrixProblem) Name() string { return p.name }

// Nodes returns a copy of the city list.
func (p *MatrixProblem) Nodes() []City { return append([]City(nil), p.cities...) }

// Weight returns dist[a][b]; unknown cities yield ErrUnknownCity.
func (p *MatrixProblem) Weight(a, b City) (float64, error) {
	i, ok := p.index[a]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownCity, a)
	}
	j, ok := p.index[b]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownCity, b)
	}

	return p.dist.At(i, j)
}

// FuncProblem adapts a plain distance function to Problem.
type FuncProblem struct {
	Cities   []City
	Distance func(a, b City) float64
}

var _ Problem = FuncProblem{}

// Nodes returns a copy of Cities.
func (p FuncProblem) Nodes() []City { return append([]City(nil), p.Cities...) }

// Weight calls Distance; a nil Distance yields ErrMissingWeight.
func (p FuncProblem) Weight(a, b City) (float64, error) {
	if p.Distance == nil {
		return 0, ErrMissingWeight
	}

	return p.Distance(a, b), nil
}

// SequentialCities returns the cities 1..n.
func SequentialCities(n int) []City {
	out := make([]City, n)
	for i := range out {
		out[i] = City(i + 1)
	}

	return out
}

// indexCities maps each city to its position, rejecting duplicates.
func indexCities(cities []City) (map[City]int, error) {
	index := make(map[City]int, len(cities))
	for i, c := range cities {
		if _, dup := index[c]; dup {
			return nil, invalidInstance(ErrDuplicateCity, "%d", c)
		}
		index[c] = i
	}

	return index, nil
}

// invalidInstance joins the category sentinel, the cause and a detail message.
func invalidInstance(cause error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: "+format, append([]any{ErrInvalidInstance, cause}, args...)...)
}

// invalidParameters joins the category sentinel, the cause and a detail message.
func invalidParameters(cause error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: "+format, append([]any{ErrInvalidParameters, cause}, args...)...)
}
