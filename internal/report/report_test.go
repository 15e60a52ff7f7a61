package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/traverse/internal/report"
	"github.com/aretw0/traverse/internal/solver"
	"github.com/aretw0/traverse/pkg/domain"
)

func solve(t *testing.T, tr domain.Traverse) *solver.Solution {
	t.Helper()
	sol, err := solver.Solve(tr)
	require.NoError(t, err)
	return sol
}

func TestAnalyze_Rectangle(t *testing.T) {
	sol := solve(t, domain.Traverse{
		Name: "rectangle",
		Sides: []domain.Side{
			{Length: 10, Turn: domain.Absolute(90)},
			{Length: 5, Turn: domain.Interior(90)},
			{Length: 10, Turn: domain.Interior(90)},
			{Length: 5, Turn: domain.Interior(90)},
		},
	})

	rep, err := report.Analyze(sol)
	require.NoError(t, err)
	assert.InDelta(t, 50, rep.Area, 1e-9)
	assert.Equal(t, 30.0, rep.Perimeter)
	assert.Less(t, rep.ClosureError, 1e-6)
	assert.Equal(t, 0.0, rep.ClosingBearing)
	assert.True(t, rep.Closed())
	assert.True(t, rep.In(domain.Millimeters).Closed())
	assert.Equal(t, report.Clockwise, rep.Orientation)
	assert.Len(t, rep.PolygonVertices(), 4)
	assert.Len(t, rep.Legs, 4)
	assert.InDelta(t, 10, rep.Bounds.Width, 1e-9)
	assert.InDelta(t, 5, rep.Bounds.Height, 1e-9)

	_, ok := rep.Precision()
	if rep.ClosureError == 0 {
		assert.False(t, ok)
	} else {
		assert.True(t, ok)
	}
}

func TestAnalyze_Plot7(t *testing.T) {
	decl := domain.DMS(14, 50)
	sol := solve(t, domain.Traverse{
		Name: "plot7",
		Sides: []domain.Side{
			{Length: 60, Turn: domain.BackAzimuth(domain.DMS(340, 6))},
			{Length: domain.FeetInches(87, 1), Turn: domain.Interior(180 - domain.DMS(67, 50))},
			{Length: domain.FeetInches(21, 2), Turn: domain.Interior(domain.DMS(113, 3))},
			{Length: 25, Turn: domain.Exterior(135)},
			{Length: domain.FeetInches(92, 2), Turn: domain.Interior(domain.DMS(57, 9))},
			{Length: 71, Turn: domain.Interior(180 - domain.DMS(57, 3))},
		},
		Declination: &decl,
	})

	rep, err := report.Analyze(sol)
	require.NoError(t, err)
	assert.InDelta(t, 7430.509277, rep.Area, 1e-5)
	assert.InDelta(t, 356.416667, rep.Perimeter, 1e-5)
	assert.InDelta(t, 0.043630, rep.ClosureError, 1e-6)
	assert.InDelta(t, 310.847503, rep.ClosingBearing, 1e-5)
	assert.False(t, rep.Closed())
	assert.InDelta(t, 7430.509277/43560, rep.Acres, 1e-9)
	assert.InDelta(t, 7430.509277*0.3048*0.3048/10000, rep.Hectares, 1e-8)
	// The final vertex misses the origin, so the closing segment is a real edge.
	assert.Len(t, rep.PolygonVertices(), 7)
	assert.InDelta(t, domain.DMS(340, 6), domain.Reverse(rep.Magnetic(0)), 1e-9)

	precision, ok := rep.Precision()
	require.True(t, ok)
	assert.InDelta(t, 356.416667/0.043630, precision, 5)
}

func TestReport_In(t *testing.T) {
	sol := solve(t, domain.Traverse{
		Sides: []domain.Side{
			{Length: 10, Turn: domain.Absolute(90)},
			{Length: 5, Turn: domain.Interior(90)},
			{Length: 10, Turn: domain.Interior(90)},
			{Length: 5, Turn: domain.Interior(90)},
		},
	})
	rep, err := report.Analyze(sol)
	require.NoError(t, err)

	m := rep.In(domain.Meters)
	assert.Equal(t, domain.Meters, m.Unit)
	assert.InDelta(t, 50*0.3048*0.3048, m.Area, 1e-9)
	assert.InDelta(t, 30*0.3048, m.Perimeter, 1e-9)
	assert.InDelta(t, 3.048, m.Vertices[1].X, 1e-12)
	assert.InDelta(t, 3.048, m.SideLength(0), 1e-12)
	assert.Equal(t, rep.Bearings, m.Bearings)
	assert.Equal(t, rep.Acres, m.Acres)

	mm := m.In(domain.Millimeters)
	assert.InDelta(t, 3048, mm.Vertices[1].X, 1e-9)
	assert.InDelta(t, 3048, mm.Bounds.Width, 1e-9)

	// The original report is untouched.
	assert.Equal(t, domain.Feet, rep.Unit)
	assert.InDelta(t, 10, rep.Vertices[1].X, 1e-12)
}

func TestAnalyze_Nil(t *testing.T) {
	_, err := report.Analyze(nil)
	assert.ErrorIs(t, err, domain.ErrInsufficientVertices)
}

func TestAnalyze_DegenerateTraverse(t *testing.T) {
	sol := solve(t, domain.Traverse{Sides: []domain.Side{{Length: 3, Turn: domain.Absolute(0)}}})
	_, err := report.Analyze(sol)
	assert.ErrorIs(t, err, domain.ErrInsufficientVertices)
}
