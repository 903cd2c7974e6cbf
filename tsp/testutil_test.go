// Package tsp_test provides helpers shared across *_test.go files in this package.
package tsp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gatsp/matrix"
	"github.com/katalvlaran/gatsp/tsp"
	"github.com/stretchr/testify/require"
)

const (
	// epsTiny is the tolerance for comparing sums of irrational edge lengths.
	epsTiny = 1e-9

	// seedDet is the fixed seed used by determinism tests.
	seedDet = int64(7)
)

// euclidProblem builds a MatrixProblem over points numbered 1..n.
func euclidProblem(t testing.TB, name string, pts [][2]float64) *tsp.MatrixProblem {
	t.Helper()
	n := len(pts)
	m, err := matrix.NewSquare(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := math.Hypot(pts[i][0]-pts[j][0], pts[i][1]-pts[j][1])
			require.NoError(t, m.SetSymmetric(i, j, d))
		}
	}
	p, err := tsp.NewMatrixProblem(name, nil, m)
	require.NoError(t, err)

	return p
}

// unitSquare has cities 1..4 at the corners of a unit square; optimum is 4.
func unitSquare(t *testing.T) *tsp.MatrixProblem {
	return euclidProblem(t, "square4", [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
}

// circle places n cities on a slightly rippled circle to avoid ties.
func circle(t *testing.T, n int) *tsp.MatrixProblem {
	pts := make([][2]float64, n)
	for i := 0; i < n; i++ {
		th := 2 * math.Pi * float64(i) / float64(n)
		r := 1.0 + 0.025*float64(i%3)
		pts[i] = [2]float64{r * math.Cos(th), r * math.Sin(th)}
	}

	return euclidProblem(t, "circle", pts)
}

// Repeat runs fn n times as subtests to lock in deterministic behavior.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	for i := 0; i < n; i++ {
		t.Run("", fn)
	}
}
