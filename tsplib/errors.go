// SPDX-License-Identifier: MIT

package tsplib

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed is returned for syntactically invalid or inconsistent files.
	ErrMalformed = errors.New("tsplib: malformed instance")

	// ErrUnsupported is returned for problem types, weight types or formats
	// this reader does not handle.
	ErrUnsupported = errors.New("tsplib: unsupported feature")
)

// malformedf wraps ErrMalformed with the offending line.
func malformedf(line int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: "+format, append([]any{ErrMalformed, line}, args...)...)
}
