// SPDX-License-Identifier: MIT

// Package matrix: canonical validators.
// All checks are pure and allocate nothing; they return sentinels wrapped
// with the validator tag so errors.Is keeps working at the call site.

package matrix

import "math"

// ValidateNotNil ensures the matrix reference is non-nil.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateDistances checks that every entry of a square matrix is finite and
// non-negative. The diagonal is not required to be zero.
//
// Complexity: O(n²).
func ValidateDistances(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	var (
		n    = m.Rows()
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return err
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidateDistances", ErrNaNInf)
			}
			if v < 0 {
				return validatorErrorf("ValidateDistances", ErrNegative)
			}
		}
	}

	return nil
}

// ValidateSymmetric checks |a_ij − a_ji| ≤ eps over the upper triangle.
//
// Complexity: O(n²).
func ValidateSymmetric(m Matrix, eps float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	var (
		n        = m.Rows()
		i, j     int
		aij, aji float64
		err      error
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if aij, err = m.At(i, j); err != nil {
				return err
			}
			if aji, err = m.At(j, i); err != nil {
				return err
			}
			if math.Abs(aij-aji) > eps {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}
