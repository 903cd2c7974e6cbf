// SPDX-License-Identifier: MIT

package matrix

// Matrix is the read/write view of a distance table that problems and
// validators accept. Dense is the only implementation in this module.
type Matrix interface {
	Rows() int
	Cols() int

	// At returns entry (i, j), or ErrIndexOutOfBounds.
	At(i, j int) (float64, error)

	// Set stores v at (i, j), or returns ErrIndexOutOfBounds.
	Set(i, j int, v float64) error

	// Clone returns an independent copy. Complexity: O(r*c).
	Clone() Matrix
}

var _ Matrix = (*Dense)(nil)
