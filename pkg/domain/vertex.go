package domain

import "gonum.org/v1/gonum/spatial/r2"

// Vertex is a 2D point, x east and y north, in the linear unit of the side lengths.
type Vertex struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Origin is the fixed first vertex of every traverse.
var Origin = Vertex{}

// Vec returns the vertex as a gonum vector.
func (v Vertex) Vec() r2.Vec {
	return r2.Vec{X: v.X, Y: v.Y}
}

// VertexOf converts a gonum vector into a Vertex.
func VertexOf(p r2.Vec) Vertex {
	return Vertex{X: p.X, Y: p.Y}
}

// Scale multiplies both coordinates by f.
func (v Vertex) Scale(f float64) Vertex {
	return VertexOf(r2.Scale(f, v.Vec()))
}
