package tui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/traverse/internal/presentation/tui"
	"github.com/aretw0/traverse/internal/surveys"
	"github.com/aretw0/traverse/internal/testutils"
	"github.com/aretw0/traverse/pkg/domain"
)

func TestMarkdown_Plot7(t *testing.T) {
	md := tui.Markdown(testutils.Analyze(t, surveys.Plot7()).In(domain.Millimeters))

	assert.True(t, strings.HasPrefix(md, "# Plot 7 - Complete Survey (True North)\n"))
	assert.Contains(t, md, "| Area | 7430.5 sq ft (0.1706 acres) |")
	assert.Contains(t, md, "| Perimeter | 108635.80 mm |")
	assert.Contains(t, md, "| Magnetic | True |")
	assert.Contains(t, md, "| 1 | 60' | back-azimuth 340°06' | - | 160.1° | 174.9° (174°56') |")
	assert.Contains(t, md, "| 4 | 25' | exterior 135.00° | 225.00° |")
	assert.Contains(t, md, "## Vertices (mm)")
	assert.Contains(t, md, "| V2 | 1615.1 | -18216.5 |")
	assert.Contains(t, md, "| V7 → V1 |")
	assert.Contains(t, md, "To close: need bearing 310.8°")
}

func TestMarkdown_NoDeclination(t *testing.T) {
	md := tui.Markdown(testutils.Analyze(t, surveys.Rectangle()))
	assert.Contains(t, md, "| # | Side | Turn | Interior | Bearing |")
	assert.Contains(t, md, "| 1 | 10' | bearing 90°00' | - | 90.0° (90°00') |")
	assert.Contains(t, md, "| Orientation | clockwise |")
	assert.NotContains(t, md, "Declination")
	assert.Contains(t, md, "## Vertices (ft)")
	assert.Contains(t, md, "Closed: the final vertex returns to the origin.")
	assert.NotContains(t, md, "need bearing")
}

func TestClosureStatus(t *testing.T) {
	got := tui.ClosureStatus(testutils.Analyze(t, surveys.Plot7()), termenv.Ascii)
	assert.Equal(t, "closure 0.044 ft (1:8169)", got)
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf, termenv.Ascii)
	assert.Contains(t, buf.String(), `|_||_|`)
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestNewRenderer(t *testing.T) {
	render := tui.NewRenderer()
	out, err := render("# Plot 7\n\nArea: 7430.5 sq ft\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Plot 7")
	assert.Contains(t, out, "7430.5")
}

func TestClosureStatus_ClosedFigure(t *testing.T) {
	got := tui.ClosureStatus(testutils.Analyze(t, surveys.Rectangle()), termenv.Ascii)
	assert.Equal(t, "closed exactly", got)
}
