// SPDX-License-Identifier: MIT

package tsplib

import "github.com/katalvlaran/gatsp/tsp"

// Header holds the specification part of a TSPLIB file.
type Header struct {
	Name             string
	Comment          string
	Type             string
	Dimension        int
	EdgeWeightType   string
	EdgeWeightFormat string
}

// Point is a node coordinate. For GEO instances X is latitude and Y
// longitude, both in DDD.MM format.
type Point struct {
	X, Y float64
}

// Problem is a loaded instance. It satisfies tsp.Problem through the
// embedded MatrixProblem.
type Problem struct {
	*tsp.MatrixProblem

	Header Header

	// Coords is nil for EXPLICIT instances.
	Coords map[tsp.City]Point
}

var _ tsp.Problem = (*Problem)(nil)
