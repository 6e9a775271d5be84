// render/surface.go
package render

import (
	"image"
	"image/color"

	"github.com/waozixyz/gantt/metrics"
)

// Align selects the horizontal anchor of drawn text.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
)

// Surface is the raster target a chart paints on. Backends implement it;
// coordinates are surface pixels with the origin at the top left.
type Surface interface {
	metrics.TextMeasurer

	// Reset resizes the drawing area and clears it to bg.
	Reset(width, height int, bg color.RGBA)
	// Line strokes a 1px line.
	Line(x0, y0, x1, y1 float64, c color.RGBA)
	// FillRect fills an axis-aligned rectangle.
	FillRect(x, y, w, h float64, c color.RGBA)
	// Text draws text whose vertical middle sits at y.
	Text(text string, x, y float64, font metrics.FontSpec, align Align, c color.RGBA)
}

// Snapshotter is implemented by surfaces whose pixels can be read back for export.
type Snapshotter interface {
	Snapshot() (image.Image, error)
}

// Rect is an axis-aligned rectangle in content space.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r. The left and top edges are
// inside, the right and bottom edges are not.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// pen draws on a surface with a fixed translation, so paint code works in
// content space.
type pen struct {
	s      Surface
	dx, dy float64
}

func (p pen) line(x0, y0, x1, y1 float64, c Color) {
	p.s.Line(x0+p.dx, y0+p.dy, x1+p.dx, y1+p.dy, c.ToRGBA())
}

func (p pen) fill(x, y, w, h float64, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	p.s.FillRect(x+p.dx, y+p.dy, w, h, c.ToRGBA())
}

func (p pen) text(s string, x, y float64, font metrics.FontSpec, align Align, c Color) {
	if s == "" {
		return
	}
	p.s.Text(s, x+p.dx, y+p.dy, font, align, c.ToRGBA())
}

func (p pen) rect(x, y, w, h float64, c Color) {
	p.line(x, y, x+w, y, c)
	p.line(x+w, y, x+w, y+h, c)
	p.line(x+w, y+h, x, y+h, c)
	p.line(x, y+h, x, y, c)
}
