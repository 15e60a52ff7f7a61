package dsl

import "github.com/aretw0/traverse/pkg/domain"

// SideBuilder provides a fluent API for configuring a side.
type SideBuilder struct {
	side    domain.Side
	builder *Builder
}

// Label sets the display label of the side (e.g. 87'1").
func (s *SideBuilder) Label(label string) *SideBuilder {
	s.side.Label = label
	return s
}

// Bearing fixes the side's absolute bearing. Only valid on the first side.
func (s *SideBuilder) Bearing(bearing float64) *SideBuilder {
	s.side.Turn = domain.Absolute(bearing)
	return s
}

// BackAzimuth fixes the side by the bearing observed looking back along it.
// Only valid on the first side.
func (s *SideBuilder) BackAzimuth(bearing float64) *SideBuilder {
	s.side.Turn = domain.BackAzimuth(bearing)
	return s
}

// Interior turns into this side by the interior angle at its starting vertex.
func (s *SideBuilder) Interior(angle float64) *SideBuilder {
	s.side.Turn = domain.Interior(angle)
	return s
}

// Exterior turns into this side by the exterior angle at its starting vertex.
func (s *SideBuilder) Exterior(angle float64) *SideBuilder {
	s.side.Turn = domain.Exterior(angle)
	return s
}

// Side closes this side and starts the next one.
func (s *SideBuilder) Side(length float64) *SideBuilder {
	return s.builder.Side(length)
}

// Done returns to the traverse builder.
func (s *SideBuilder) Done() *Builder {
	return s.builder
}

// Build returns the underlying domain.Side.
func (s *SideBuilder) Build() domain.Side {
	return s.side
}
