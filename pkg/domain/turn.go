package domain

import (
	"fmt"
	"math"
)

// TurnKind identifies how a side's bearing is derived from its predecessor.
type TurnKind int

const (
	TurnContinue    TurnKind = iota // Keep the running bearing (start bearing for side 1)
	TurnAbsolute                    // Explicit bearing, first side only
	TurnBackAzimuth                 // Explicit back-sight bearing, first side only
	TurnInterior                    // Interior angle at the vertex
	TurnExterior                    // Exterior angle at the vertex
)

var turnKindNames = map[TurnKind]string{
	TurnContinue:    "continue",
	TurnAbsolute:    "absolute",
	TurnBackAzimuth: "back_azimuth",
	TurnInterior:    "interior",
	TurnExterior:    "exterior",
}

func (k TurnKind) String() string {
	if s, ok := turnKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("TurnKind(%d)", int(k))
}

// MarshalText encodes the kind by name for JSON and YAML output.
func (k TurnKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name.
func (k *TurnKind) UnmarshalText(text []byte) error {
	for kind, name := range turnKindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("%w: unknown turn kind %q", ErrInvalidInput, text)
}

// TurnSpec describes how one side's bearing follows from the previous one.
// The zero value continues along the running bearing.
type TurnSpec struct {
	Kind  TurnKind `json:"kind" yaml:"kind"`
	Angle float64  `json:"angle,omitempty" yaml:"angle,omitempty"`
}

// Absolute returns a TurnSpec with an explicit bearing.
func Absolute(bearing float64) TurnSpec {
	return TurnSpec{Kind: TurnAbsolute, Angle: bearing}
}

// BackAzimuth returns a TurnSpec whose forward bearing is opposite to the observed one.
func BackAzimuth(bearing float64) TurnSpec {
	return TurnSpec{Kind: TurnBackAzimuth, Angle: bearing}
}

// Interior returns a TurnSpec for an interior angle.
func Interior(angle float64) TurnSpec {
	return TurnSpec{Kind: TurnInterior, Angle: angle}
}

// Exterior returns a TurnSpec for an exterior angle.
func Exterior(angle float64) TurnSpec {
	return TurnSpec{Kind: TurnExterior, Angle: angle}
}

// InteriorAngle returns the interior angle at the vertex, if the turn is angular.
func (t TurnSpec) InteriorAngle() (float64, bool) {
	switch t.Kind {
	case TurnInterior:
		return t.Angle, true
	case TurnExterior:
		return FullCircle - t.Angle, true
	}
	return 0, false
}

// Resolve derives the absolute bearing of a side from the previous bearing.
// The result is normalized into [0, 360).
func (t TurnSpec) Resolve(prev float64) float64 {
	switch t.Kind {
	case TurnAbsolute:
		return Normalize(t.Angle)
	case TurnBackAzimuth:
		return Reverse(t.Angle)
	case TurnInterior, TurnExterior:
		interior, _ := t.InteriorAngle()
		return Normalize(prev + 180 - interior)
	}
	return Normalize(prev)
}

// validate reports why the turn is malformed, or "" if it is acceptable at the given position.
func (t TurnSpec) validate(first bool) string {
	if math.IsNaN(t.Angle) || math.IsInf(t.Angle, 0) {
		return "angle must be finite"
	}
	switch t.Kind {
	case TurnContinue:
		if !first {
			return "only the first side may omit its turn"
		}
	case TurnAbsolute, TurnBackAzimuth:
		if !first {
			return "explicit bearings are only allowed on the first side"
		}
		if t.Angle < 0 || t.Angle >= FullCircle {
			return "bearing must be in [0, 360)"
		}
	case TurnInterior, TurnExterior:
		if t.Angle <= 0 || t.Angle >= FullCircle {
			return "angle must be in (0, 360)"
		}
	default:
		return "unknown turn kind"
	}
	return ""
}
