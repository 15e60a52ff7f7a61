package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when a traverse contains a malformed side or correction.
var ErrInvalidInput = errors.New("invalid input")

// ErrInsufficientVertices is returned when area or closure is requested on a degenerate traverse.
var ErrInsufficientVertices = errors.New("insufficient vertices")

// ErrNormalizationOverflow is returned when a non-finite angle reaches normalization.
var ErrNormalizationOverflow = errors.New("normalization overflow")

// SideError describes a single invalid field of a traverse.
// Index is -1 for traverse-level fields.
type SideError struct {
	Index  int     // Side index (0-based) or -1
	Field  string  // Field name
	Reason string  // Human-readable reason for failure
	Value  float64 // The value that failed validation
}

func (e *SideError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s %q: %s (got %g)", ErrInvalidInput, e.Field, e.Reason, e.Value)
	}
	return fmt.Sprintf("%s: side %d %q: %s (got %g)", ErrInvalidInput, e.Index+1, e.Field, e.Reason, e.Value)
}

// Unwrap lets errors.Is match ErrInvalidInput.
func (e *SideError) Unwrap() error {
	return ErrInvalidInput
}
