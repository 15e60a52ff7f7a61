package diagram

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/beevik/etree"

	"github.com/aretw0/traverse/internal/report"
	"github.com/aretw0/traverse/pkg/domain"
)

// Options controls the canvas and the display unit of a diagram.
type Options struct {
	Width  int
	Height int
	Unit   domain.Unit
}

// DefaultOptions draws a 1200x1000 canvas labelled in metres.
func DefaultOptions() Options {
	return Options{Width: 1200, Height: 1000, Unit: domain.Meters}
}

const (
	headerHeight = 80.0
	marginShare  = 0.2 // Share of the larger extent kept free around the figure
	minMarginM   = 6.0 // Metres
	emptyRangeM  = 30.0
)

const styles = `
    .side { stroke: #1f4fd1; stroke-width: 3; fill: none; }
    .closure { stroke: #d62728; stroke-width: 2; stroke-dasharray: 8 6; opacity: 0.7; }
    .vertex { fill: #d62728; }
    .vlabel { font: bold 16px sans-serif; fill: darkred; }
    .length { font: bold 14px sans-serif; text-anchor: middle; }
    .length-box { fill: yellow; opacity: 0.9; }
    .bearing { font: bold 10px sans-serif; text-anchor: middle; }
    .bearing-box { fill: lightgreen; opacity: 0.9; }
    .angle { font: bold 11px sans-serif; text-anchor: middle; }
    .angle-box { fill: lightblue; opacity: 0.9; }
    .title { font: 12px sans-serif; text-anchor: middle; }
    .info { font: bold 12px sans-serif; }
    .info-box { fill: lightyellow; stroke: #999; opacity: 0.9; }
    .north { font: bold 20px sans-serif; text-anchor: middle; }
    .legend { font: 12px sans-serif; fill: #d62728; }
`

// canvas maps survey coordinates (x east, y north) onto SVG pixels (y down) with
// an equal aspect ratio.
type canvas struct {
	scale, ox, oy, left, top float64
}

func newCanvas(b report.Bounds, unit domain.Unit, width, height float64) canvas {
	empty := unit.Convert(emptyRangeM, domain.Meters)
	xr, yr := b.Width, b.Height
	if xr == 0 {
		xr = empty
	}
	if yr == 0 {
		yr = empty
	}
	margin := math.Max(unit.Convert(minMarginM, domain.Meters), math.Max(xr*marginShare, yr*marginShare))

	spanX, spanY := xr+2*margin, yr+2*margin
	plotH := height - headerHeight
	scale := math.Min(width/spanX, plotH/spanY)
	return canvas{
		scale: scale,
		ox:    (width - spanX*scale) / 2,
		oy:    headerHeight + (plotH-spanY*scale)/2,
		left:  b.MinX - margin - (xr-b.Width)/2,
		top:   b.MaxY + margin + (yr-b.Height)/2,
	}
}

func (c canvas) point(v domain.Vertex) (float64, float64) {
	return c.ox + (v.X-c.left)*c.scale, c.oy + (c.top-v.Y)*c.scale
}

// Document builds an annotated diagram of a traverse report: solid sides, a dashed
// closing segment, labelled vertices, side lengths, bearings, interior angles, a
// north arrow and the area/closure summary.
func Document(rep *report.Report, opts Options) *etree.Document {
	if opts.Width <= 0 || opts.Height <= 0 {
		d := DefaultOptions()
		opts.Width, opts.Height = d.Width, d.Height
	}
	if opts.Unit == "" {
		opts.Unit = domain.Meters
	}
	r := rep.In(opts.Unit)
	unit := string(opts.Unit)
	w, h := float64(opts.Width), float64(opts.Height)
	c := newCanvas(report.BoundsOf(r.Vertices), opts.Unit, w, h)

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	svg := doc.CreateElement("svg")
	setAttrs(svg,
		"xmlns", "http://www.w3.org/2000/svg",
		"width", strconv.Itoa(opts.Width),
		"height", strconv.Itoa(opts.Height),
		"viewBox", fmt.Sprintf("0 0 %d %d", opts.Width, opts.Height),
	)
	svg.CreateElement("style").SetText(styles)
	setAttrs(svg.CreateElement("rect"), "width", strconv.Itoa(opts.Width), "height", strconv.Itoa(opts.Height), "fill", "white")
	d := drawing{svg}

	// Title
	title := r.Traverse.Title
	if title == "" {
		title = r.Traverse.Name
	}
	d.text("title", w/2, 24, title)
	d.text("title", w/2, 44, firstSideCaption(r))
	d.text("title", w/2, 64, fmt.Sprintf("Area: %.0f %s² (%.4f hectares) | Closure: %.2f %s",
		r.Area, unit, r.Hectares, r.ClosureError, unit))

	// Sides
	for i := 0; i+1 < len(r.Vertices); i++ {
		d.line("side", c, r.Vertices[i], r.Vertices[i+1])
	}

	// Closure
	if n := len(r.Vertices); n > 1 {
		d.line("closure", c, r.Vertices[n-1], r.Vertices[0])
		d.text("legend", w-180, headerHeight+70, fmt.Sprintf("- - Closure: %.2f%s", r.ClosureError, unit))
	}

	// Vertices
	for i, v := range r.Vertices {
		x, y := c.point(v)
		setAttrs(svg.CreateElement("circle"), "class", "vertex", "cx", num(x), "cy", num(y), "r", "8")
		d.text("vlabel", x+10, y-10, fmt.Sprintf("V%d", i+1))
	}

	// Side annotations
	for i := 0; i+1 < len(r.Vertices) && i < len(r.Traverse.Sides); i++ {
		x1, y1 := c.point(r.Vertices[i])
		x2, y2 := c.point(r.Vertices[i+1])
		mx, my := (x1+x2)/2, (y1+y2)/2
		d.boxed("length", mx, my-20, fmt.Sprintf("%.2f%s", r.SideLength(i), unit), 8)
		d.boxed("bearing", mx, my+25, bearingLabel(r, i), 6)
	}

	// Interior angles at the vertex each turn leads out of
	for i := 1; i < len(r.Traverse.Sides) && i < len(r.Vertices); i++ {
		a, ok := r.Traverse.Sides[i].Turn.InteriorAngle()
		if !ok {
			continue
		}
		x, y := c.point(r.Vertices[i])
		d.boxed("angle", x-30, y+30, fmt.Sprintf("%.1f°", a), 7)
	}

	// North arrow
	nx := w - 60
	d.text("north", nx, headerHeight+10, "N")
	setAttrs(svg.CreateElement("line"),
		"x1", num(nx), "y1", num(headerHeight+55), "x2", num(nx), "y2", num(headerHeight+20),
		"stroke", "black", "stroke-width", "3")
	setAttrs(svg.CreateElement("polygon"),
		"points", fmt.Sprintf("%s,%s %s,%s %s,%s",
			num(nx), num(headerHeight+14), num(nx-7), num(headerHeight+28), num(nx+7), num(headerHeight+28)),
		"fill", "black")

	// Summary box
	setAttrs(svg.CreateElement("rect"),
		"class", "info-box", "x", "10", "y", num(headerHeight+4), "width", "230", "height", "64", "rx", "6")
	d.text("info", 20, headerHeight+24, fmt.Sprintf("Area: %.0f %s²", r.Area, unit))
	d.text("info", 20, headerHeight+42, fmt.Sprintf("(%.4f hectares, %.4f acres)", r.Hectares, r.Acres))
	d.text("info", 20, headerHeight+60, fmt.Sprintf("Perimeter: %.2f %s", r.Perimeter, unit))

	doc.Indent(2)
	return doc
}

// GenerateSVG renders Document as a string.
func GenerateSVG(rep *report.Report, opts Options) string {
	out, err := Document(rep, opts).WriteToString()
	if err != nil {
		return ""
	}
	return out
}

// WriteSVG writes the diagram document to w.
func WriteSVG(w io.Writer, rep *report.Report, opts Options) error {
	_, err := Document(rep, opts).WriteTo(w)
	return err
}

func firstSideCaption(r *report.Report) string {
	if len(r.Traverse.Sides) == 0 || len(r.Bearings) == 0 {
		return ""
	}
	s := r.Traverse.Sides[0]
	caption := fmt.Sprintf("%s @ %s", s.Name(), domain.FormatDMS(r.Bearings[0]))
	if r.Declination != 0 {
		caption += fmt.Sprintf(" true (%s mag + %s decl.)", domain.FormatDMS(r.Magnetic(0)), domain.FormatDMS(r.Declination))
	}
	return caption
}

func bearingLabel(r *report.Report, i int) string {
	if r.Declination != 0 {
		return fmt.Sprintf("%.1f° true", r.Bearings[i])
	}
	return fmt.Sprintf("%.1f°", r.Bearings[i])
}

// drawing appends shapes to the root svg element.
type drawing struct {
	svg *etree.Element
}

func (d drawing) line(class string, c canvas, from, to domain.Vertex) {
	x1, y1 := c.point(from)
	x2, y2 := c.point(to)
	setAttrs(d.svg.CreateElement("line"), "class", class, "x1", num(x1), "y1", num(y1), "x2", num(x2), "y2", num(y2))
}

func (d drawing) text(class string, x, y float64, text string) {
	el := d.svg.CreateElement("text")
	setAttrs(el, "class", class, "x", num(x), "y", num(y))
	el.SetText(text)
}

// boxed draws a centred label over a rounded background box; charWidth is an
// estimate of the glyph width at the class's font size.
func (d drawing) boxed(class string, x, y float64, text string, charWidth float64) {
	bw := float64(len([]rune(text)))*charWidth + 10
	bh := charWidth*2 + 4
	setAttrs(d.svg.CreateElement("rect"),
		"class", class+"-box", "x", num(x-bw/2), "y", num(y-bh+4), "width", num(bw), "height", num(bh), "rx", "4")
	d.text(class, x, y, text)
}

// setAttrs sets attributes from alternating key/value pairs, keeping their order.
func setAttrs(el *etree.Element, kv ...string) {
	for i := 0; i+1 < len(kv); i += 2 {
		el.CreateAttr(kv[i], kv[i+1])
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
