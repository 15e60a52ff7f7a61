package domain

import (
	"fmt"
	"math"
)

// FullCircle is the number of degrees in a full turn.
const FullCircle = 360.0

// Normalize folds any finite angle in degrees into [0, 360).
// It is idempotent and works for inputs arbitrarily far outside the range.
func Normalize(deg float64) float64 {
	r := math.Mod(deg, FullCircle)
	if r < 0 {
		r += FullCircle
	}
	// Tiny negative remainders round up to exactly 360 when shifted.
	if r >= FullCircle {
		r -= FullCircle
	}
	return r
}

// CheckedNormalize is Normalize with an overflow guard for NaN and infinities.
func CheckedNormalize(deg float64) (float64, error) {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0, fmt.Errorf("%w: cannot normalize %v", ErrNormalizationOverflow, deg)
	}
	r := Normalize(deg)
	if r < 0 || r >= FullCircle {
		return 0, fmt.Errorf("%w: %v normalized to %v", ErrNormalizationOverflow, deg, r)
	}
	return r, nil
}

// NormalizeSigned folds an angle into [-180, 180).
func NormalizeSigned(deg float64) float64 {
	return Normalize(deg+FullCircle/2) - FullCircle/2
}

// DMS composes an angle from whole degrees and minutes.
func DMS(degrees, minutes float64) float64 {
	return degrees + minutes/60
}

// ToRadians converts a survey bearing (clockwise from north) into a mathematical
// angle (counter-clockwise from east) in radians, ready for math.Cos and math.Sin.
func ToRadians(bearing float64) float64 {
	angle := 90 - Normalize(bearing)
	if angle < 0 {
		angle += FullCircle
	}
	return angle * math.Pi / 180
}

// FromRadians is the inverse of ToRadians.
func FromRadians(theta float64) float64 {
	return Normalize(90 - theta*180/math.Pi)
}

// Reverse returns the back-azimuth of a bearing.
func Reverse(bearing float64) float64 {
	return Normalize(bearing + FullCircle/2)
}

// FormatDMS renders a bearing as degrees and rounded minutes, e.g. 174°56'.
func FormatDMS(bearing float64) string {
	b := Normalize(bearing)
	deg := math.Floor(b)
	mins := math.Round((b - deg) * 60)
	if mins == 60 {
		deg++
		mins = 0
	}
	if deg >= FullCircle {
		deg -= FullCircle
	}
	return fmt.Sprintf("%d°%02d'", int(deg), int(mins))
}
