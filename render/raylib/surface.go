// render/raylib/surface.go
package raylib

import (
	"fmt"
	"image"
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/waozixyz/gantt/metrics"
	"github.com/waozixyz/gantt/render"
	"golang.org/x/image/draw"
)

// defaultFontBaseSize is the pixel size raylib's built-in font was designed at.
const defaultFontBaseSize = 10.0

// TextureSurface is a render.Surface that records a chart pass and replays it
// into a render texture. It needs an open raylib window.
type TextureSurface struct {
	list    displayList
	target  rl.RenderTexture2D
	font    rl.Font
	hasFont bool
}

var _ render.Surface = (*TextureSurface)(nil)
var _ render.Snapshotter = (*TextureSurface)(nil)

// NewTextureSurface returns a surface drawing with raylib's default font.
func NewTextureSurface() *TextureSurface {
	return &TextureSurface{}
}

// Size returns the pixel size of the last Reset.
func (s *TextureSurface) Size() (int, int) { return s.list.width, s.list.height }

// Reset implements render.Surface.
func (s *TextureSurface) Reset(width, height int, bg color.RGBA) {
	s.list.reset(width, height, bg)
}

// Line implements render.Surface.
func (s *TextureSurface) Line(x0, y0, x1, y1 float64, c color.RGBA) {
	s.list.add(drawOp{kind: opLine, x0: x0, y0: y0, x1: x1, y1: y1, color: c})
}

// FillRect implements render.Surface.
func (s *TextureSurface) FillRect(x, y, w, h float64, c color.RGBA) {
	s.list.add(drawOp{kind: opFill, x0: x, y0: y, x1: w, y1: h, color: c})
}

// Text implements render.Surface.
func (s *TextureSurface) Text(text string, x, y float64, font metrics.FontSpec, align render.Align, c color.RGBA) {
	s.list.add(drawOp{kind: opText, x0: x, y0: y, text: text, font: font, align: align, color: c})
}

// MeasureText implements metrics.TextMeasurer with raylib's font metrics.
func (s *TextureSurface) MeasureText(text string, font metrics.FontSpec) float64 {
	return immediate{font: s.defaultFont()}.MeasureText(text, font)
}

// Present draws the surface with its top left corner at (x, y), flushing
// pending ops first. Call it between BeginDrawing and EndDrawing.
func (s *TextureSurface) Present(x, y float32) {
	if err := s.flush(); err != nil || s.target.ID == 0 {
		return
	}
	w, h := float32(s.target.Texture.Width), float32(s.target.Texture.Height)
	// Render textures are stored upside down.
	rl.DrawTextureRec(s.target.Texture, rl.NewRectangle(0, 0, w, -h), rl.NewVector2(x, y), rl.White)
}

// Snapshot implements render.Snapshotter by reading the render texture back.
func (s *TextureSurface) Snapshot() (image.Image, error) {
	if err := s.flush(); err != nil {
		return nil, err
	}
	if s.target.ID == 0 {
		return nil, fmt.Errorf("TextureSurface Snapshot: nothing rendered yet")
	}
	img := rl.LoadImageFromTexture(s.target.Texture)
	if img == nil || img.Data == nil {
		return nil, fmt.Errorf("TextureSurface Snapshot: failed to read render texture")
	}
	defer rl.UnloadImage(img)
	rl.ImageFlipVertical(img)

	// Copy into Go memory before the raylib image is unloaded.
	return copyRGBA(img.ToImage()), nil
}

// copyRGBA returns src as a new *image.RGBA with its origin at (0, 0).
func copyRGBA(src image.Image) *image.RGBA {
	b := src.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), src, b.Min, draw.Src)
	return out
}

// Unload frees the render texture.
func (s *TextureSurface) Unload() {
	if s.target.ID > 0 {
		rl.UnloadRenderTexture(s.target)
		s.target = rl.RenderTexture2D{}
	}
}

func (s *TextureSurface) flush() error {
	if !s.list.dirty {
		return nil
	}
	if !rl.IsWindowReady() {
		return fmt.Errorf("TextureSurface flush: raylib window is not ready")
	}
	w, h := s.list.width, s.list.height
	if w <= 0 || h <= 0 {
		s.Unload()
		s.list.dirty = false
		return nil
	}
	if s.target.ID == 0 || int(s.target.Texture.Width) != w || int(s.target.Texture.Height) != h {
		s.Unload()
		s.target = rl.LoadRenderTexture(int32(w), int32(h))
		if s.target.ID == 0 {
			return fmt.Errorf("TextureSurface flush: failed to create %dx%d render texture", w, h)
		}
	}

	rl.BeginTextureMode(s.target)
	s.list.replay(immediate{font: s.defaultFont()})
	rl.EndTextureMode()
	s.list.dirty = false
	return nil
}

func (s *TextureSurface) defaultFont() rl.Font {
	if !s.hasFont {
		s.font = rl.GetFontDefault()
		s.hasFont = true
	}
	return s.font
}

// immediate draws straight to the current raylib target.
type immediate struct {
	font rl.Font
}

func (immediate) Reset(width, height int, bg color.RGBA) {
	rl.ClearBackground(bg)
}

func (immediate) Line(x0, y0, x1, y1 float64, c color.RGBA) {
	// Offset by half a pixel so 1px lines land on a single pixel row or column.
	start := rl.NewVector2(float32(x0)+0.5, float32(y0)+0.5)
	end := rl.NewVector2(float32(x1)+0.5, float32(y1)+0.5)
	rl.DrawLineEx(start, end, 1, c)
}

func (immediate) FillRect(x, y, w, h float64, c color.RGBA) {
	rl.DrawRectangleRec(rl.NewRectangle(float32(x), float32(y), float32(w), float32(h)), c)
}

func (im immediate) Text(text string, x, y float64, font metrics.FontSpec, align render.Align, c color.RGBA) {
	size := float32(font.Size)
	spacing := fontSpacing(size)
	if align == render.AlignCenter {
		x -= im.MeasureText(text, font) / 2
	}
	pos := rl.NewVector2(float32(math.Round(x)), float32(math.Round(y-font.Size/2)))
	rl.DrawTextEx(im.font, text, pos, size, spacing, c)
	if font.Bold {
		// The default font has no bold variant; overdraw one pixel to the right.
		pos.X++
		rl.DrawTextEx(im.font, text, pos, size, spacing, c)
	}
}

func (im immediate) MeasureText(text string, font metrics.FontSpec) float64 {
	size := float32(font.Size)
	w := float64(rl.MeasureTextEx(im.font, text, size, fontSpacing(size)).X)
	if font.Bold && text != "" {
		w++
	}
	return w
}

func fontSpacing(size float32) float32 {
	return size / defaultFontBaseSize
}
