package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/traverse/internal/report"
	"github.com/aretw0/traverse/pkg/domain"
)

// Markdown formats a report as a markdown document: summary, per-side bearings,
// vertex coordinates, leg vectors, bounding box and the bearing needed to close.
// Lengths are shown in the report's unit.
func Markdown(rep *report.Report) string {
	var sb strings.Builder
	u := string(rep.Unit)

	title := rep.Traverse.Title
	if title == "" {
		title = rep.Traverse.Name
	}
	fmt.Fprintf(&sb, "# %s\n\n", title)

	sqft := rep.In(domain.Feet).Area
	sqm := rep.In(domain.Meters).Area
	sb.WriteString("| Quantity | Value |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Area | %.1f sq ft (%.4f acres) |\n", sqft, rep.Acres)
	fmt.Fprintf(&sb, "| Area (metric) | %.0f m² (%.4f hectares) |\n", sqm, rep.Hectares)
	fmt.Fprintf(&sb, "| Perimeter | %.2f %s |\n", rep.Perimeter, u)
	fmt.Fprintf(&sb, "| Closure error | %.3f %s |\n", rep.ClosureError, u)
	if ratio, ok := rep.Precision(); ok {
		fmt.Fprintf(&sb, "| Precision | 1:%.0f |\n", ratio)
	}
	fmt.Fprintf(&sb, "| Orientation | %s |\n", rep.Orientation)
	if rep.Rotation != 0 {
		fmt.Fprintf(&sb, "| Rotation | %+.4f° |\n", rep.Rotation)
	}
	if rep.Declination != 0 {
		fmt.Fprintf(&sb, "| Declination | %s |\n", domain.FormatDMS(rep.Declination))
	}

	sb.WriteString("\n## Sides\n\n")
	if rep.Declination != 0 {
		sb.WriteString("| # | Side | Turn | Interior | Magnetic | True |\n|---|---|---|---|---|---|\n")
	} else {
		sb.WriteString("| # | Side | Turn | Interior | Bearing |\n|---|---|---|---|---|\n")
	}
	for i, side := range rep.Traverse.Sides {
		interior := "-"
		if a, ok := side.Turn.InteriorAngle(); ok {
			interior = fmt.Sprintf("%.2f°", a)
		}
		fmt.Fprintf(&sb, "| %d | %s | %s | %s |", i+1, side.Name(), turnLabel(side.Turn), interior)
		if rep.Declination != 0 {
			fmt.Fprintf(&sb, " %.1f° | %.1f° (%s) |\n", rep.Magnetic(i), rep.Bearings[i], domain.FormatDMS(rep.Bearings[i]))
		} else {
			fmt.Fprintf(&sb, " %.1f° (%s) |\n", rep.Bearings[i], domain.FormatDMS(rep.Bearings[i]))
		}
	}

	poly := rep.PolygonVertices()
	fmt.Fprintf(&sb, "\n## Vertices (%s)\n\n| Vertex | x | y |\n|---|---|---|\n", u)
	for i, v := range poly {
		fmt.Fprintf(&sb, "| V%d | %.1f | %.1f |\n", i+1, v.X, v.Y)
	}

	fmt.Fprintf(&sb, "\n## Legs (%s)\n\n| Leg | dx | dy | Length |\n|---|---|---|---|\n", u)
	for _, l := range rep.Legs {
		fmt.Fprintf(&sb, "| V%d → V%d | %.1f | %.1f | %.1f |\n", l.From+1, l.To+1, l.DX, l.DY, l.Length)
	}

	b := rep.Bounds
	fmt.Fprintf(&sb, "\n## Bounding box (%s)\n\n", u)
	fmt.Fprintf(&sb, "- Width (x): %.1f\n- Height (y): %.1f\n", b.Width, b.Height)
	fmt.Fprintf(&sb, "- Min X: %.1f, Max X: %.1f\n- Min Y: %.1f, Max Y: %.1f\n", b.MinX, b.MaxX, b.MinY, b.MaxY)

	sb.WriteString("\n## Closure\n\n")
	if rep.Closed() {
		sb.WriteString("Closed: the final vertex returns to the origin.\n")
	} else {
		fmt.Fprintf(&sb, "To close: need bearing %.1f° (%s) for %.3f %s.\n",
			rep.ClosingBearing, domain.FormatDMS(rep.ClosingBearing), rep.ClosureError, u)
	}
	return sb.String()
}

func turnLabel(t domain.TurnSpec) string {
	switch t.Kind {
	case domain.TurnAbsolute:
		return "bearing " + domain.FormatDMS(t.Angle)
	case domain.TurnBackAzimuth:
		return "back-azimuth " + domain.FormatDMS(t.Angle)
	case domain.TurnInterior:
		return fmt.Sprintf("interior %.2f°", t.Angle)
	case domain.TurnExterior:
		return fmt.Sprintf("exterior %.2f°", t.Angle)
	}
	return "start bearing"
}
