// SPDX-License-Identifier: MIT

package tsp

import (
	"fmt"
	"math/rand"
)

// Crossover applies OrderCrossover with probability rate; otherwise it returns
// copies of the parents. The children never alias the parents.
func Crossover(p1, p2 Tour, rate float64, r *rand.Rand) (Tour, Tour) {
	if r.Float64() < rate {
		return OrderCrossover(p1, p2, r)
	}

	return p1.Clone(), p2.Clone()
}

// OrderCrossover (OX) picks two distinct cut points i < j uniformly and
// builds two children. child1 keeps p1[i..j] in place and fills the other
// slots with the remaining cities in the circular order they appear in p2,
// reading p2 and writing child1 from position (j+1) mod n. child2 is the
// mirror image. Both children are permutations whenever p1 and p2 are
// permutations of the same cities.
//
// Parents shorter than two cities are copied.
//
// Complexity: O(n) time and space.
func OrderCrossover(p1, p2 Tour, r *rand.Rand) (Tour, Tour) {
	n := len(p1)
	if n < 2 || len(p2) != n {
		return p1.Clone(), p2.Clone()
	}
	i, j := twoDistinct(n, r)
	if i > j {
		i, j = j, i
	}

	return oxChild(p1, p2, i, j), oxChild(p2, p1, i, j)
}

// OrderCrossoverAt is OrderCrossover with explicit cut points.
// It validates the cut points and that both parents are permutations of
// the same cities.
func OrderCrossoverAt(p1, p2 Tour, i, j int) (Tour, Tour, error) {
	n := len(p1)
	if i < 0 || j >= n || i >= j {
		return nil, nil, fmt.Errorf("tsp: cut points %d,%d invalid for %d cities", i, j, n)
	}
	if err := ValidatePermutation(p2, p1); err != nil {
		return nil, nil, err
	}

	return oxChild(p1, p2, i, j), oxChild(p2, p1, i, j), nil
}

// oxChild copies keep[i..j] and fills the rest from fill. The scan over fill
// is bounded by n so mismatched parents cannot loop forever.
func oxChild(keep, fill Tour, i, j int) Tour {
	var (
		n      = len(keep)
		child  = make(Tour, n)
		placed = make(map[City]struct{}, n)
		k      int
	)
	for k = i; k <= j; k++ {
		child[k] = keep[k]
		placed[keep[k]] = struct{}{}
	}

	var (
		filled = j - i + 1
		pos    = (j + 1) % n
		src    = (j + 1) % n
		g      City
		ok     bool
	)
	for k = 0; k < n && filled < n; k++ {
		g = fill[src]
		src = (src + 1) % n
		if _, ok = placed[g]; ok {
			continue
		}
		child[pos] = g
		placed[g] = struct{}{}
		pos = (pos + 1) % n
		filled++
	}

	return child
}
