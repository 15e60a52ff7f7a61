package domain

import "fmt"

// Unit is a linear unit. Conversions are plain scalar multiplications.
type Unit string

const (
	Feet        Unit = "ft"
	Meters      Unit = "m"
	Millimeters Unit = "mm"
)

// Area conversion constants.
const (
	SquareFeetPerAcre      = 43560.0
	SquareMetersPerHectare = 10000.0
	metersPerFoot          = 0.3048
	millimetersPerFoot     = 304.8
)

// PerFoot returns how many of u make up one foot.
func (u Unit) PerFoot() float64 {
	switch u {
	case Meters:
		return metersPerFoot
	case Millimeters:
		return millimetersPerFoot
	}
	return 1
}

// Convert expresses v, given in unit from, in unit u.
func (u Unit) Convert(v float64, from Unit) float64 {
	return v / from.PerFoot() * u.PerFoot()
}

// ParseUnit accepts the short unit names and their common spellings.
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "ft", "feet", "foot", "":
		return Feet, nil
	case "m", "meters", "metres", "meter", "metre":
		return Meters, nil
	case "mm", "millimeters", "millimetres":
		return Millimeters, nil
	}
	return "", fmt.Errorf("%w: unknown unit %q", ErrInvalidInput, s)
}
