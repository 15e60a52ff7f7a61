package domain

import (
	"errors"
	"math"
)

// CorrectionOrder selects which global correction the solver applies first.
type CorrectionOrder string

const (
	RotateThenDeclinate CorrectionOrder = "rotate_then_declinate" // Default
	DeclinateThenRotate CorrectionOrder = "declinate_then_rotate"
)

// RotationTarget anchors the traverse by the known real-world bearing of one side.
type RotationTarget struct {
	Side    int     `json:"side" yaml:"side"` // 0-based side index
	Bearing float64 `json:"bearing" yaml:"bearing"`
}

// Traverse is a surveyed sequence of sides plus its traverse-level corrections.
type Traverse struct {
	Name         string          `json:"name" yaml:"name"`
	Title        string          `json:"title,omitempty" yaml:"title,omitempty"`
	Sides        []Side          `json:"sides" yaml:"sides"`
	StartBearing float64         `json:"start_bearing" yaml:"start_bearing"`
	Rotation     *RotationTarget `json:"rotation,omitempty" yaml:"rotation,omitempty"`
	Declination  *float64        `json:"declination,omitempty" yaml:"declination,omitempty"`
	Order        CorrectionOrder `json:"order,omitempty" yaml:"order,omitempty"`
}

// CorrectionOrder returns the configured order, defaulting to RotateThenDeclinate.
func (t Traverse) CorrectionOrder() CorrectionOrder {
	if t.Order == "" {
		return RotateThenDeclinate
	}
	return t.Order
}

// Validate checks every side and correction. The first failure is returned.
func (t Traverse) Validate() error {
	if len(t.Sides) == 0 {
		return &SideError{Index: -1, Field: "sides", Reason: "traverse has no sides"}
	}
	if !finite(t.StartBearing) || t.StartBearing < 0 || t.StartBearing >= FullCircle {
		return &SideError{Index: -1, Field: "start_bearing", Reason: "must be in [0, 360)", Value: t.StartBearing}
	}
	for i, s := range t.Sides {
		if err := s.Validate(i); err != nil {
			return err
		}
	}
	if r := t.Rotation; r != nil {
		if r.Side < 0 || r.Side >= len(t.Sides) {
			return &SideError{Index: -1, Field: "rotation.side", Reason: "no such side", Value: float64(r.Side)}
		}
		if !finite(r.Bearing) || r.Bearing < 0 || r.Bearing >= FullCircle {
			return &SideError{Index: -1, Field: "rotation.bearing", Reason: "must be in [0, 360)", Value: r.Bearing}
		}
	}
	if t.Declination != nil && !finite(*t.Declination) {
		return &SideError{Index: -1, Field: "declination", Reason: "must be finite", Value: *t.Declination}
	}
	switch t.CorrectionOrder() {
	case RotateThenDeclinate, DeclinateThenRotate:
	default:
		return errors.Join(ErrInvalidInput, errors.New("unknown correction order "+string(t.Order)))
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
