// SPDX-License-Identifier: MIT

// Package matrix provides the dense float64 matrix used as a distance table.
//
// A Dense stores r×c values row-major in one flat slice, so a weight lookup
// is a bounds check plus one multiply-add. Problems built from TSPLIB files
// or in-memory coordinates precompute every pairwise distance into a Dense
// once, and the genetic engine reads it in its inner evaluation loop.
//
// Errors are package-level sentinels (errors.go); callers match them with
// errors.Is. No function in this package panics on user input.
package matrix
