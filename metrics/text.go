// metrics/text.go
package metrics

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// FontSpec describes the font a piece of text is measured and drawn with.
type FontSpec struct {
	Size   float64
	Family string
	Bold   bool
}

// Emphasized returns a bold copy of f.
func (f FontSpec) Emphasized() FontSpec {
	f.Bold = true
	return f
}

// String renders f as a CSS-like font shorthand, e.g. "bold 14px Helvetica".
func (f FontSpec) String() string {
	var b strings.Builder
	if f.Bold {
		b.WriteString("bold ")
	}
	fmt.Fprintf(&b, "%gpx", f.Size)
	if f.Family != "" {
		b.WriteString(" ")
		b.WriteString(f.Family)
	}
	return b.String()
}

// IsMonospace reports whether the family list asks for a monospace face.
func (f FontSpec) IsMonospace() bool {
	family := strings.ToLower(f.Family)
	return strings.Contains(family, "mono") || strings.Contains(family, "courier")
}

// TextMeasurer reports the advance width of text drawn with a given font.
type TextMeasurer interface {
	MeasureText(text string, font FontSpec) float64
}

// EstimateMeasurer approximates text width from the rune count.
// It needs no font data, which makes it useful for headless layout and tests.
type EstimateMeasurer struct {
	// Ratio is the average glyph width as a fraction of the font size. Zero means 0.6.
	Ratio float64
	// BoldRatio widens bold text. Zero means 1.1.
	BoldRatio float64
}

// MeasureText implements TextMeasurer.
func (m EstimateMeasurer) MeasureText(text string, font FontSpec) float64 {
	ratio := m.Ratio
	if ratio == 0 {
		ratio = 0.6
	}
	w := float64(utf8.RuneCountInString(text)) * font.Size * ratio
	if font.Bold {
		bold := m.BoldRatio
		if bold == 0 {
			bold = 1.1
		}
		w *= bold
	}
	return w
}
