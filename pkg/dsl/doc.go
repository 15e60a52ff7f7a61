/*
Package dsl provides a Go DSL for programmatically constructing traverses.

Field notes are transcribed side by side, the way they were walked, using a fluent
builder instead of hand-assembled domain structs. The built-in survey catalogue is
written with it.

Example usage:

	plot, err := dsl.New("plot7").
		Title("Plot 7").
		Declination(domain.DMS(14, 50)).
		Side(60).BackAzimuth(domain.DMS(340, 6)).
		Side(domain.FeetInches(87, 1)).Interior(180 - domain.DMS(67, 50)).
		Side(domain.FeetInches(21, 2)).Interior(domain.DMS(113, 3)).
		Side(25).Exterior(135).
		Done().
		Build()
*/
package dsl
