/*
Package domain contains the core survey models of the traverse engine.

It defines the vocabulary shared by the solver, the reporter and every presentation
layer. This package is kept pure and free of I/O, following the same hexagonal split as
the rest of the module.

# Key Entities

  - Bearing: an angle in degrees clockwise from north, normalized into [0, 360).
  - TurnSpec: how a side's bearing is derived (absolute, back-azimuth, interior or exterior angle).
  - Side: a measured length in decimal feet paired with its TurnSpec.
  - Vertex: a 2D point in the same linear unit as the side lengths.
  - Traverse: an ordered list of sides plus the traverse-level corrections
    (start bearing, rotation target, magnetic declination).
*/
package domain
