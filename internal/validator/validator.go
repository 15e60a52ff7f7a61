package validator

import (
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/aretw0/traverse/internal/report"
	"github.com/aretw0/traverse/pkg/domain"
)

// ErrQuality marks a solved traverse whose geometry fails the field-quality checks.
var ErrQuality = errors.New("traverse failed quality checks")

// areaTolerance scales with the squared perimeter so the check is unit-free.
const areaTolerance = 1e-9

// Options tunes the checks.
type Options struct {
	// MinPrecision is the lowest acceptable closure ratio 1:N. Zero disables the check.
	MinPrecision float64
}

// DefaultOptions requires 1:5000, the usual minimum for boundary surveys.
func DefaultOptions() Options {
	return Options{MinPrecision: 5000}
}

// ValidateReport checks closure precision, polygon area and self-intersection.
func ValidateReport(rep *report.Report, opts Options) error {
	var issues []string

	if p, ok := rep.Precision(); ok && opts.MinPrecision > 0 && p < opts.MinPrecision {
		issues = append(issues, fmt.Sprintf("closure precision 1:%.0f is below 1:%.0f", p, opts.MinPrecision))
	}
	if rep.Orientation == report.Degenerate || rep.Area <= areaTolerance*rep.Perimeter*rep.Perimeter {
		issues = append(issues, "polygon encloses no area")
	}
	issues = append(issues, crossings(corners(rep.Vertices))...)

	if len(issues) > 0 {
		return fmt.Errorf("%w: found %d issues:\n- %s", ErrQuality, len(issues), strings.Join(issues, "\n- "))
	}
	return nil
}

// corners drops the final computed vertex so the last side closes on the origin.
func corners(vertices []domain.Vertex) []domain.Vertex {
	if len(vertices) < 2 {
		return nil
	}
	return vertices[:len(vertices)-1]
}

// crossings reports every pair of non-adjacent sides that properly intersect.
func crossings(poly []domain.Vertex) []string {
	n := len(poly)
	if n < 4 {
		return nil
	}
	var out []string
	for i := 0; i < n; i++ {
		a1, a2 := poly[i].Vec(), poly[(i+1)%n].Vec()
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue
			}
			b1, b2 := poly[j].Vec(), poly[(j+1)%n].Vec()
			if intersects(a1, a2, b1, b2) {
				out = append(out, fmt.Sprintf("sides %d and %d cross", i+1, j+1))
			}
		}
	}
	return out
}

func intersects(a1, a2, b1, b2 r2.Vec) bool {
	d1 := r2.Cross(r2.Sub(a2, a1), r2.Sub(b1, a1))
	d2 := r2.Cross(r2.Sub(a2, a1), r2.Sub(b2, a1))
	d3 := r2.Cross(r2.Sub(b2, b1), r2.Sub(a1, b1))
	d4 := r2.Cross(r2.Sub(b2, b1), r2.Sub(a2, b1))
	return d1*d2 < 0 && d3*d4 < 0
}
