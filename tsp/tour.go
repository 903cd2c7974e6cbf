// SPDX-License-Identifier: MIT

package tsp

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidatePermutation checks that t contains every city of cities exactly once
// and nothing else.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(t Tour, cities []City) error {
	if len(t) != len(cities) {
		return fmt.Errorf("%w: length %d, want %d", ErrNotPermutation, len(t), len(cities))
	}
	remaining := make(map[City]int, len(cities))
	for _, c := range cities {
		remaining[c]++
	}
	for i, c := range t {
		if remaining[c] == 0 {
			return fmt.Errorf("%w: city %d at position %d is repeated or unknown", ErrNotPermutation, c, i)
		}
		remaining[c]--
	}

	return nil
}

// Clone returns an independent copy of t.
func (t Tour) Clone() Tour {
	if t == nil {
		return nil
	}
	out := make(Tour, len(t))
	copy(out, t)

	return out
}

// EqualModuloRotation reports whether a and b describe the same cycle in the
// same direction, possibly starting at a different city.
//
// Complexity: O(n).
func EqualModuloRotation(a, b Tour) bool {
	if len(a) != len(b) {
		return false
	}
	n := len(a)
	if n == 0 {
		return true
	}
	p := -1
	for j := 0; j < n; j++ {
		if b[j] == a[0] {
			p = j
			break
		}
	}
	if p == -1 {
		return false
	}
	for i := 0; i < n; i++ {
		if a[i] != b[(p+i)%n] {
			return false
		}
	}

	return true
}

// String renders the tour as "[1 4 2 3]".
func (t Tour) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, c := range t {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(int(c)))
	}
	sb.WriteByte(']')

	return sb.String()
}
