package domain

import (
	"fmt"
	"math"
)

// Side is one measured leg of a traverse.
type Side struct {
	Label  string   `json:"label,omitempty" yaml:"label,omitempty"`
	Length float64  `json:"length" yaml:"length"` // Decimal feet
	Turn   TurnSpec `json:"turn" yaml:"turn"`
}

// Name returns the label, falling back to the length in feet and inches.
func (s Side) Name() string {
	if s.Label != "" {
		return s.Label
	}
	return FormatFeetInches(s.Length)
}

// Validate checks the side at the given position of its traverse.
func (s Side) Validate(index int) error {
	if math.IsNaN(s.Length) || math.IsInf(s.Length, 0) {
		return &SideError{Index: index, Field: "length", Reason: "must be finite", Value: s.Length}
	}
	if s.Length <= 0 {
		return &SideError{Index: index, Field: "length", Reason: "must be positive", Value: s.Length}
	}
	if reason := s.Turn.validate(index == 0); reason != "" {
		return &SideError{Index: index, Field: "turn." + s.Turn.Kind.String(), Reason: reason, Value: s.Turn.Angle}
	}
	return nil
}

// FeetInches converts feet and inches into decimal feet.
func FeetInches(feet, inches float64) float64 {
	return feet + inches/12.0
}

// FormatFeetInches renders decimal feet to the nearest inch, e.g. 87'1".
func FormatFeetInches(length float64) string {
	totalInches := int(math.Round(length * 12))
	feet, inches := totalInches/12, totalInches%12
	if inches == 0 {
		return fmt.Sprintf("%d'", feet)
	}
	return fmt.Sprintf("%d'%d\"", feet, inches)
}
