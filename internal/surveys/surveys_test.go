package surveys_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/traverse/internal/report"
	"github.com/aretw0/traverse/internal/solver"
	"github.com/aretw0/traverse/internal/surveys"
)

func TestDefault_Names(t *testing.T) {
	assert.Equal(t, []string{"plot7", "plot7-rotated", "rectangle"}, surveys.Default().Names())
}

func TestCatalog_Get(t *testing.T) {
	c := surveys.Default()
	tr, err := c.Get("plot7")
	require.NoError(t, err)
	assert.Len(t, tr.Sides, 6)
	assert.Equal(t, `87'1"`, tr.Sides[1].Label)

	_, err = c.Get("plot8")
	assert.ErrorIs(t, err, surveys.ErrNotFound)
}

func TestCatalog_EverySurveySolves(t *testing.T) {
	c := surveys.Default()
	for _, name := range c.Names() {
		t.Run(name, func(t *testing.T) {
			tr, err := c.Get(name)
			require.NoError(t, err)
			sol, err := solver.Solve(tr)
			require.NoError(t, err)
			rep, err := report.Analyze(sol)
			require.NoError(t, err)
			assert.Greater(t, rep.Area, 0.0)
			assert.Less(t, rep.ClosureError, 0.05)
		})
	}
}

func TestPlot7Variants_ShareShape(t *testing.T) {
	// Both transcriptions describe the same figure; only its orientation differs.
	a, err := solver.Solve(surveys.Plot7())
	require.NoError(t, err)
	b, err := solver.Solve(surveys.Plot7Rotated())
	require.NoError(t, err)

	ra, err := report.Analyze(a)
	require.NoError(t, err)
	rb, err := report.Analyze(b)
	require.NoError(t, err)
	assert.InDelta(t, ra.Area, rb.Area, 1e-6)
	assert.InDelta(t, ra.ClosureError, rb.ClosureError, 1e-9)

	// The 14°50' and 10°50' declinations leave the first side 4° apart.
	assert.InDelta(t, 4, ra.Bearings[0]-rb.Bearings[0], 1e-9)
}
