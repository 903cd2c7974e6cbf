// SPDX-License-Identifier: MIT

package tsplib

import (
	"fmt"
	"math"
)

// Edge weight types computed from coordinates.
const (
	Euc2D    = "EUC_2D"
	Ceil2D   = "CEIL_2D"
	Man2D    = "MAN_2D"
	Max2D    = "MAX_2D"
	Att      = "ATT"
	Geo      = "GEO"
	Explicit = "EXPLICIT"
)

// Constants of the TSPLIB GEO distance.
const (
	geoPI     = 3.141592
	geoRadius = 6378.388
)

// DistanceFunc computes the TSPLIB distance between two coordinates.
type DistanceFunc func(a, b Point) float64

// DistanceFor returns the distance function of a coordinate weight type.
func DistanceFor(weightType string) (DistanceFunc, error) {
	switch weightType {
	case Euc2D:
		return euc2D, nil
	case Ceil2D:
		return ceil2D, nil
	case Man2D:
		return man2D, nil
	case Max2D:
		return max2D, nil
	case Att:
		return att, nil
	case Geo:
		return geo, nil
	default:
		return nil, fmt.Errorf("%w: EDGE_WEIGHT_TYPE %q", ErrUnsupported, weightType)
	}
}

// nint rounds to the nearest integer the way TSPLIB defines it: (int)(x+0.5).
func nint(x float64) float64 {
	return float64(int64(x + 0.5))
}

func euc2D(a, b Point) float64 {
	return nint(math.Hypot(a.X-b.X, a.Y-b.Y))
}

func ceil2D(a, b Point) float64 {
	return math.Ceil(math.Hypot(a.X-b.X, a.Y-b.Y))
}

func man2D(a, b Point) float64 {
	return nint(math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y))
}

func max2D(a, b Point) float64 {
	return math.Max(nint(math.Abs(a.X-b.X)), nint(math.Abs(a.Y-b.Y)))
}

// att is the pseudo-Euclidean distance of the att48/att532 instances.
func att(a, b Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	r := math.Sqrt((dx*dx + dy*dy) / 10.0)
	t := nint(r)
	if t < r {
		return t + 1
	}

	return t
}

// geoRadians converts a DDD.MM coordinate to radians. Degrees are
// truncated, as in the reference implementations.
func geoRadians(x float64) float64 {
	deg := math.Trunc(x)
	minutes := x - deg

	return geoPI * (deg + 5.0*minutes/3.0) / 180.0
}

// geo is the great-circle distance on the idealized earth sphere, in km.
func geo(a, b Point) float64 {
	latA, lonA := geoRadians(a.X), geoRadians(a.Y)
	latB, lonB := geoRadians(b.X), geoRadians(b.Y)
	q1 := math.Cos(lonA - lonB)
	q2 := math.Cos(latA - latB)
	q3 := math.Cos(latA + latB)

	return float64(int64(geoRadius*math.Acos(0.5*((1.0+q1)*q2-(1.0-q1)*q3)) + 1.0))
}
