package dsl

import (
	"fmt"

	"github.com/aretw0/traverse/pkg/domain"
)

// Builder manages the traverse construction.
type Builder struct {
	traverse domain.Traverse
	sides    []*SideBuilder
}

// New creates a new traverse builder.
func New(name string) *Builder {
	return &Builder{
		traverse: domain.Traverse{Name: name},
	}
}

// Title sets the human-readable title used by reports and diagrams.
func (b *Builder) Title(title string) *Builder {
	b.traverse.Title = title
	return b
}

// StartBearing sets the reference bearing the walk starts from when the first
// side does not carry an explicit bearing.
func (b *Builder) StartBearing(bearing float64) *Builder {
	b.traverse.StartBearing = bearing
	return b
}

// RotateTo anchors the traverse: after the walk, the whole figure is rotated so
// that side (1-based, as surveyors number them) runs on bearing.
func (b *Builder) RotateTo(side int, bearing float64) *Builder {
	b.traverse.Rotation = &domain.RotationTarget{Side: side - 1, Bearing: bearing}
	return b
}

// Declination adds a magnetic declination to every bearing after the walk.
func (b *Builder) Declination(degrees float64) *Builder {
	b.traverse.Declination = &degrees
	return b
}

// DeclinateFirst applies the declination before the rotation.
func (b *Builder) DeclinateFirst() *Builder {
	b.traverse.Order = domain.DeclinateThenRotate
	return b
}

// Side appends a new side of the given length in decimal feet.
func (b *Builder) Side(length float64) *SideBuilder {
	sb := &SideBuilder{
		side:    domain.Side{Length: length},
		builder: b,
	}
	b.sides = append(b.sides, sb)
	return sb
}

// Build compiles the sides into a validated traverse.
func (b *Builder) Build() (domain.Traverse, error) {
	t := b.traverse
	t.Sides = make([]domain.Side, 0, len(b.sides))
	for _, sb := range b.sides {
		t.Sides = append(t.Sides, sb.side)
	}

	if err := t.Validate(); err != nil {
		return domain.Traverse{}, fmt.Errorf("failed to build traverse %q: %w", t.Name, err)
	}
	return t, nil
}

// MustBuild is Build for traverses hardcoded in source; it panics on invalid input.
func (b *Builder) MustBuild() domain.Traverse {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}
