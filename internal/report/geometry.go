package report

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/aretw0/traverse/pkg/domain"
)

// closingTolerance is how close the final vertex must be to the origin to count as
// a duplicate closing vertex.
const closingTolerance = 1e-9

// Polygon returns the polygon vertices of a walk: the final vertex is dropped only
// when it duplicates the origin.
func Polygon(vertices []domain.Vertex) []domain.Vertex {
	n := len(vertices)
	if n > 1 {
		last := vertices[n-1]
		if math.Hypot(last.X-vertices[0].X, last.Y-vertices[0].Y) <= closingTolerance {
			return vertices[:n-1]
		}
	}
	return vertices
}

// SignedArea is the shoelace sum over the polygon, halved.
// It is positive for counter-clockwise and negative for clockwise winding.
func SignedArea(vertices []domain.Vertex) (float64, error) {
	poly := Polygon(vertices)
	if len(poly) < 3 {
		return 0, fmt.Errorf("%w: area needs 3 vertices, got %d", domain.ErrInsufficientVertices, len(poly))
	}
	var sum float64
	for i := range poly {
		j := (i + 1) % len(poly)
		sum += r2.Cross(poly[i].Vec(), poly[j].Vec())
	}
	return sum / 2, nil
}

// Area computes the polygon area with the shoelace formula.
// The result does not depend on winding order.
func Area(vertices []domain.Vertex) (float64, error) {
	a, err := SignedArea(vertices)
	if err != nil {
		return 0, err
	}
	return math.Abs(a), nil
}

// Perimeter sums the specified side lengths rather than re-measuring the vertices,
// so rounding in the coordinate walk never leaks into it.
func Perimeter(sides []domain.Side) float64 {
	var p float64
	for _, s := range sides {
		p += s.Length
	}
	return p
}

// ClosureError is the distance from the final computed vertex back to the origin.
func ClosureError(vertices []domain.Vertex) (float64, error) {
	if len(vertices) < 2 {
		return 0, fmt.Errorf("%w: closure needs 2 vertices, got %d", domain.ErrInsufficientVertices, len(vertices))
	}
	return r2.Norm(r2.Sub(vertices[len(vertices)-1].Vec(), vertices[0].Vec())), nil
}

// ClosingBearing is the survey bearing that walks from the final vertex straight
// back to the origin. A figure closed within closingTolerance needs no closing leg and gets 0.
func ClosingBearing(vertices []domain.Vertex) (float64, error) {
	if len(vertices) < 2 {
		return 0, fmt.Errorf("%w: closing bearing needs 2 vertices, got %d", domain.ErrInsufficientVertices, len(vertices))
	}
	gap := r2.Sub(vertices[0].Vec(), vertices[len(vertices)-1].Vec())
	if r2.Norm(gap) <= closingTolerance {
		return 0, nil
	}
	return domain.FromRadians(math.Atan2(gap.Y, gap.X)), nil
}

// Bounds is the axis-aligned bounding box of the polygon.
type Bounds struct {
	MinX   float64 `json:"min_x" yaml:"min_x"`
	MinY   float64 `json:"min_y" yaml:"min_y"`
	MaxX   float64 `json:"max_x" yaml:"max_x"`
	MaxY   float64 `json:"max_y" yaml:"max_y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// BoundsOf measures the bounding box of the given vertices.
func BoundsOf(vertices []domain.Vertex) Bounds {
	if len(vertices) == 0 {
		return Bounds{}
	}
	b := ring(vertices).Bound()
	return Bounds{
		MinX:   b.Left(),
		MinY:   b.Bottom(),
		MaxX:   b.Right(),
		MaxY:   b.Top(),
		Width:  b.Right() - b.Left(),
		Height: b.Top() - b.Bottom(),
	}
}

// Orientation is the winding direction of a polygon.
type Orientation string

const (
	Clockwise        Orientation = "clockwise"
	CounterClockwise Orientation = "counter-clockwise"
	Degenerate       Orientation = "degenerate"
)

// OrientationOf reports the winding of the polygon formed by the vertices.
func OrientationOf(vertices []domain.Vertex) Orientation {
	poly := Polygon(vertices)
	if len(poly) < 3 {
		return Degenerate
	}
	switch ring(poly).Orientation() {
	case orb.CCW:
		return CounterClockwise
	case orb.CW:
		return Clockwise
	}
	return Degenerate
}

// Leg is the vector between two consecutive polygon vertices.
type Leg struct {
	From   int     `json:"from" yaml:"from"` // 0-based vertex index
	To     int     `json:"to" yaml:"to"`
	DX     float64 `json:"dx" yaml:"dx"`
	DY     float64 `json:"dy" yaml:"dy"`
	Length float64 `json:"length" yaml:"length"`
}

// Legs returns the cyclic edge vectors of the polygon, closing segment included.
func Legs(vertices []domain.Vertex) []Leg {
	poly := Polygon(vertices)
	legs := make([]Leg, 0, len(poly))
	for i := range poly {
		j := (i + 1) % len(poly)
		d := r2.Sub(poly[j].Vec(), poly[i].Vec())
		legs = append(legs, Leg{From: i, To: j, DX: d.X, DY: d.Y, Length: r2.Norm(d)})
	}
	return legs
}

func ring(vertices []domain.Vertex) orb.Ring {
	r := make(orb.Ring, len(vertices))
	for i, v := range vertices {
		r[i] = orb.Point{v.X, v.Y}
	}
	return r
}
