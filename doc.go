/*
Package traverse turns a land surveyor's field traverse into a polygon.

A traverse is an ordered list of measured sides, each carrying a turn: an explicit
bearing or back-azimuth for the first side, interior or exterior angles for the rest.
The engine walks the sides from the origin, applies the traverse-level corrections
(rotation to a known reference bearing, magnetic declination), and analyses the result:
shoelace area, perimeter, closure error and the bearing needed to close.

# Concept

The core is a pure fold from sides to vertices. Nothing is forced closed; the gap
between the last computed vertex and the origin is reported as the closure error, a
diagnostic of field measurement error. Diagrams and console reports are presentation
layers that consume the computed geometry.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/traverse"
		"github.com/aretw0/traverse/pkg/dsl"
	)

	func main() {
		rect, err := dsl.New("rectangle").
			Side(10).Bearing(90).
			Side(5).Interior(90).
			Side(10).Interior(90).
			Side(5).Interior(90).
			Done().
			Build()
		if err != nil {
			log.Fatal(err)
		}

		rep, err := traverse.New().Run(rect)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("area %.1f sq ft, closure %.3f ft\n", rep.Area, rep.ClosureError)
	}
*/
package traverse
