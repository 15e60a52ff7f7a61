// Package surveys holds the built-in catalogue of field traverses.
package surveys

import (
	"errors"
	"fmt"
	"sort"

	"github.com/aretw0/traverse/pkg/domain"
	"github.com/aretw0/traverse/pkg/dsl"
)

// ErrNotFound is returned when no traverse is registered under a name.
var ErrNotFound = errors.New("traverse not found")

// Catalog is a read-only set of named traverses.
type Catalog struct {
	traverses map[string]domain.Traverse
}

// NewCatalog indexes the given traverses by name.
func NewCatalog(traverses ...domain.Traverse) *Catalog {
	c := &Catalog{traverses: make(map[string]domain.Traverse, len(traverses))}
	for _, t := range traverses {
		c.traverses[t.Name] = t
	}
	return c
}

// Default returns the catalogue of built-in traverses.
func Default() *Catalog {
	return NewCatalog(Plot7(), Plot7Rotated(), Rectangle())
}

// Names returns the registered names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.traverses))
	for name := range c.traverses {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the traverse registered under name.
func (c *Catalog) Get(name string) (domain.Traverse, error) {
	t, ok := c.traverses[name]
	if !ok {
		return domain.Traverse{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return t, nil
}

// plot7Sides transcribes the plot 7 field notes after the first side.
func plot7Sides(b *dsl.SideBuilder) *dsl.Builder {
	return b.
		Side(domain.FeetInches(87, 1)).Label(`87'1"`).Interior(180 - domain.DMS(67, 50)).
		Side(domain.FeetInches(21, 2)).Label(`21'2"`).Interior(domain.DMS(113, 3)).
		Side(25).Label(`25'`).Exterior(135).
		Side(domain.FeetInches(92, 2)).Label(`92'2"`).Interior(domain.DMS(57, 9)).
		Side(71).Label(`71'`).Interior(180 - domain.DMS(57, 3)).
		Done()
}

// Plot7 is the plot 7 survey anchored by the back-sight of its 60' side,
// 340°06' magnetic, corrected with a 14°50' declination.
func Plot7() domain.Traverse {
	b := dsl.New("plot7").
		Title("Plot 7 - Complete Survey (True North)").
		Declination(domain.DMS(14, 50))
	return plot7Sides(b.Side(60).Label(`60'`).BackAzimuth(domain.DMS(340, 6))).MustBuild()
}

// Plot7Rotated walks plot 7 from due east, rotates the figure so the 60' side runs
// on its magnetic forward bearing of 160°06', then applies a 10°50' declination.
func Plot7Rotated() domain.Traverse {
	b := dsl.New("plot7-rotated").
		Title("Plot 7 - Rotated from East (10°50' declination)").
		StartBearing(90).
		RotateTo(1, domain.DMS(160, 6)).
		Declination(domain.DMS(10, 50))
	return plot7Sides(b.Side(60).Label(`60'`)).MustBuild()
}

// Rectangle is a closed 10' by 5' rectangle walked with right-angle interior turns.
func Rectangle() domain.Traverse {
	return dsl.New("rectangle").
		Title("Rectangle 10' x 5'").
		Side(10).Bearing(90).
		Side(5).Interior(90).
		Side(10).Interior(90).
		Side(5).Interior(90).
		Done().
		MustBuild()
}
