package testutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/traverse/internal/report"
	"github.com/aretw0/traverse/internal/solver"
	"github.com/aretw0/traverse/pkg/domain"
)

// Analyze solves and analyzes tr with default options.
// It fails the test immediately on error.
func Analyze(t *testing.T, tr domain.Traverse) *report.Report {
	t.Helper()

	sol, err := solver.Solve(tr)
	require.NoError(t, err, "Failed to solve %q", tr.Name)

	rep, err := report.Analyze(sol)
	require.NoError(t, err, "Failed to analyze %q", tr.Name)

	return rep
}

// AssertVertexNear checks both coordinates of a vertex within delta.
func AssertVertexNear(t *testing.T, want, got domain.Vertex, delta float64, msgAndArgs ...any) bool {
	t.Helper()
	okX := assert.InDelta(t, want.X, got.X, delta, msgAndArgs...)
	okY := assert.InDelta(t, want.Y, got.Y, delta, msgAndArgs...)
	return okX && okY
}
