package report

import (
	"fmt"
	"math"

	"github.com/aretw0/traverse/internal/solver"
	"github.com/aretw0/traverse/pkg/domain"
)

// Report is the geometric analysis of a solved traverse, expressed in Unit.
// Bearings are angles and are never unit-converted.
type Report struct {
	Traverse       domain.Traverse `json:"traverse" yaml:"traverse"`
	Unit           domain.Unit     `json:"unit" yaml:"unit"`
	Vertices       []domain.Vertex `json:"vertices" yaml:"vertices"`
	Bearings       []float64       `json:"bearings" yaml:"bearings"`
	Rotation       float64         `json:"rotation" yaml:"rotation"`
	Declination    float64         `json:"declination" yaml:"declination"`
	Area           float64         `json:"area" yaml:"area"`
	Perimeter      float64         `json:"perimeter" yaml:"perimeter"`
	ClosureError   float64         `json:"closure_error" yaml:"closure_error"`
	ClosingBearing float64         `json:"closing_bearing" yaml:"closing_bearing"`
	Orientation    Orientation     `json:"orientation" yaml:"orientation"`
	Bounds         Bounds          `json:"bounds" yaml:"bounds"`
	Legs           []Leg           `json:"legs" yaml:"legs"`
	Acres          float64         `json:"acres" yaml:"acres"`
	Hectares       float64         `json:"hectares" yaml:"hectares"`
}

// Analyze computes area, perimeter, closure error and closing bearing for a solution.
// The report is in feet, the unit of the side lengths.
func Analyze(sol *solver.Solution) (*Report, error) {
	if sol == nil {
		return nil, fmt.Errorf("%w: no solution", domain.ErrInsufficientVertices)
	}
	area, err := Area(sol.Vertices)
	if err != nil {
		return nil, err
	}
	closure, err := ClosureError(sol.Vertices)
	if err != nil {
		return nil, err
	}
	closing, err := ClosingBearing(sol.Vertices)
	if err != nil {
		return nil, err
	}

	poly := Polygon(sol.Vertices)
	m := domain.Meters.PerFoot()
	return &Report{
		Traverse:       sol.Traverse,
		Unit:           domain.Feet,
		Vertices:       append([]domain.Vertex(nil), sol.Vertices...),
		Bearings:       append([]float64(nil), sol.Bearings...),
		Rotation:       sol.Rotation,
		Declination:    sol.Declination,
		Area:           area,
		Perimeter:      Perimeter(sol.Traverse.Sides),
		ClosureError:   closure,
		ClosingBearing: closing,
		Orientation:    OrientationOf(sol.Vertices),
		Bounds:         BoundsOf(poly),
		Legs:           Legs(sol.Vertices),
		Acres:          area / domain.SquareFeetPerAcre,
		Hectares:       area * m * m / domain.SquareMetersPerHectare,
	}, nil
}

// In returns a copy of the report with every length and area expressed in unit.
func (r *Report) In(unit domain.Unit) *Report {
	f := unit.Convert(1, r.Unit)
	out := *r
	out.Unit = unit
	out.Vertices = make([]domain.Vertex, len(r.Vertices))
	for i, v := range r.Vertices {
		out.Vertices[i] = v.Scale(f)
	}
	out.Legs = make([]Leg, len(r.Legs))
	for i, l := range r.Legs {
		out.Legs[i] = Leg{From: l.From, To: l.To, DX: l.DX * f, DY: l.DY * f, Length: l.Length * f}
	}
	out.Area = r.Area * f * f
	out.Perimeter = r.Perimeter * f
	out.ClosureError = r.ClosureError * f
	out.Bounds = Bounds{
		MinX:   r.Bounds.MinX * f,
		MinY:   r.Bounds.MinY * f,
		MaxX:   r.Bounds.MaxX * f,
		MaxY:   r.Bounds.MaxY * f,
		Width:  r.Bounds.Width * f,
		Height: r.Bounds.Height * f,
	}
	return &out
}

// SideLength returns the specified length of side i in the report's unit.
func (r *Report) SideLength(i int) float64 {
	return r.Unit.Convert(r.Traverse.Sides[i].Length, domain.Feet)
}

// Magnetic returns bearing i referred back to magnetic north by removing the
// declination applied during the solve.
func (r *Report) Magnetic(i int) float64 {
	return domain.Normalize(r.Bearings[i] - r.Declination)
}

// Precision is the closure ratio 1:N, N = perimeter / closure error.
// It reports false for a perfectly closed traverse.
func (r *Report) Precision() (float64, bool) {
	if r.ClosureError == 0 {
		return math.Inf(1), false
	}
	return r.Perimeter / r.ClosureError, true
}

// Closed reports whether the final vertex returns to the origin within closingTolerance feet.
func (r *Report) Closed() bool {
	return domain.Feet.Convert(r.ClosureError, r.Unit) <= closingTolerance
}

// PolygonVertices returns the report's vertices without a duplicate closing vertex.
func (r *Report) PolygonVertices() []domain.Vertex {
	return Polygon(r.Vertices)
}
