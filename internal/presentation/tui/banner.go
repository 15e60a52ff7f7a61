package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/aretw0/traverse/internal/report"
)

// PrintBanner writes the traverse banner in a green-to-teal gradient.
func PrintBanner(w io.Writer, p termenv.Profile) {
	lines := []struct {
		text  string
		color string
	}{
		{"  _____                                     ", "#65a30d"},
		{" |_   _| __ __ ___   _____ _ __ ___  ___    ", "#16a34a"},
		{"   | || '__/ _` \\ \\ / / _ \\ '__/ __|/ _ \\   ", "#059669"},
		{"   | || | | (_| |\\ V /  __/ |  \\__ \\  __/   ", "#0d9488"},
		{"   |_||_|  \\__,_| \\_/ \\___|_|  |___/\\___|   ", "#0891b2"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, p.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}

// Precision grades for the closure ratio 1:N.
const (
	exactPrecision = 1e9
	goodPrecision  = 5000.0
	fairPrecision  = 1000.0
)

// ClosureStatus summarizes the closure error, coloured by the closure ratio.
func ClosureStatus(rep *report.Report, p termenv.Profile) string {
	ratio, ok := rep.Precision()
	if !ok || ratio >= exactPrecision {
		return p.String("closed exactly").Foreground(p.Color("#16a34a")).String()
	}

	msg := fmt.Sprintf("closure %.3f %s (1:%.0f)", rep.ClosureError, rep.Unit, ratio)
	color := "#dc2626"
	switch {
	case ratio >= goodPrecision:
		color = "#16a34a"
	case ratio >= fairPrecision:
		color = "#d97706"
	}
	return p.String(msg).Foreground(p.Color(color)).String()
}
