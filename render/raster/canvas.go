// render/raster/canvas.go

// Package raster implements render.Surface on an in-memory RGBA image using
// the Go fonts from golang.org/x/image. It needs no window or GPU, so it backs
// headless export and tests.
package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/waozixyz/gantt/metrics"
	"github.com/waozixyz/gantt/render"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Canvas is a render.Surface backed by an *image.RGBA.
type Canvas struct {
	img   *image.RGBA
	faces *metrics.Faces
}

var _ render.Surface = (*Canvas)(nil)
var _ render.Snapshotter = (*Canvas)(nil)

// NewCanvas returns an empty canvas; the chart sizes it on its first pass.
func NewCanvas() *Canvas {
	return &Canvas{
		img:   image.NewRGBA(image.Rect(0, 0, 0, 0)),
		faces: metrics.NewFaces(),
	}
}

// Image returns the live backing image. It changes on the next Reset.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Close releases cached font faces.
func (c *Canvas) Close() error { return c.faces.Close() }

// Reset implements render.Surface.
func (c *Canvas) Reset(width, height int, bg color.RGBA) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if c.img.Bounds().Dx() != width || c.img.Bounds().Dy() != height {
		c.img = image.NewRGBA(image.Rect(0, 0, width, height))
	}
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)
}

// Line implements render.Surface. Axis-aligned lines, the only kind a chart
// draws, are filled as 1px rectangles; anything else is stepped pixel by pixel.
func (c *Canvas) Line(x0, y0, x1, y1 float64, col color.RGBA) {
	switch {
	case x0 == x1:
		x := int(math.Floor(x0))
		top, bottom := ordered(y0, y1)
		c.fill(image.Rect(x, int(math.Floor(top)), x+1, int(math.Floor(bottom))+1), col)
	case y0 == y1:
		y := int(math.Floor(y0))
		left, right := ordered(x0, x1)
		c.fill(image.Rect(int(math.Floor(left)), y, int(math.Floor(right))+1, y+1), col)
	default:
		steps := int(math.Ceil(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))))
		for i := 0; i <= steps; i++ {
			t := float64(i) / float64(steps)
			x := int(math.Floor(x0 + (x1-x0)*t))
			y := int(math.Floor(y0 + (y1-y0)*t))
			c.fill(image.Rect(x, y, x+1, y+1), col)
		}
	}
}

// FillRect implements render.Surface.
func (c *Canvas) FillRect(x, y, w, h float64, col color.RGBA) {
	c.fill(image.Rect(
		int(math.Round(x)), int(math.Round(y)),
		int(math.Round(x+w)), int(math.Round(y+h)),
	), col)
}

// Text implements render.Surface.
func (c *Canvas) Text(text string, x, y float64, spec metrics.FontSpec, align render.Align, col color.RGBA) {
	face, err := c.faces.Face(spec)
	if err != nil {
		return
	}
	if align == render.AlignCenter {
		x -= metrics.Fixed(font.MeasureString(face, text)) / 2
	}
	m := face.Metrics()
	baseline := y + (metrics.Fixed(m.Ascent)-metrics.Fixed(m.Descent))/2

	d := &font.Drawer{
		Dst:  c.img,
		Src:  &image.Uniform{C: col},
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(math.Round(x * 64)), Y: fixed.Int26_6(math.Round(baseline * 64))},
	}
	d.DrawString(text)
}

// MeasureText implements metrics.TextMeasurer with the same faces Text draws with.
func (c *Canvas) MeasureText(text string, spec metrics.FontSpec) float64 {
	return c.faces.MeasureText(text, spec)
}

// Snapshot implements render.Snapshotter with a copy of the current pixels.
func (c *Canvas) Snapshot() (image.Image, error) {
	out := image.NewRGBA(c.img.Bounds())
	copy(out.Pix, c.img.Pix)
	return out, nil
}

func (c *Canvas) fill(r image.Rectangle, col color.RGBA) {
	r = r.Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	op := draw.Over
	if col.A == 0xff {
		op = draw.Src
	}
	draw.Draw(c.img, r, &image.Uniform{C: col}, image.Point{}, op)
}

func ordered(a, b float64) (float64, float64) {
	if a > b {
		return b, a
	}
	return a, b
}
