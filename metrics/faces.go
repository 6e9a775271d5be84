// metrics/faces.go
package metrics

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Faces builds and caches font faces for FontSpecs from the embedded Go fonts.
// Family names only choose between the proportional and monospace Go fonts;
// no system font lookup happens. A Faces value is not safe for concurrent use.
type Faces struct {
	DPI float64

	parsed map[string]*opentype.Font
	faces  map[FontSpec]font.Face
}

// NewFaces returns an empty face cache at 72 DPI, so one point equals one pixel.
func NewFaces() *Faces {
	return &Faces{
		DPI:    72,
		parsed: make(map[string]*opentype.Font),
		faces:  make(map[FontSpec]font.Face),
	}
}

// Face returns the cached face for spec, creating it on first use.
func (f *Faces) Face(spec FontSpec) (font.Face, error) {
	if face, ok := f.faces[spec]; ok {
		return face, nil
	}
	name, ttf := fontData(spec)
	parsed, ok := f.parsed[name]
	if !ok {
		var err error
		parsed, err = opentype.Parse(ttf)
		if err != nil {
			return nil, fmt.Errorf("Faces: parse %s: %w", name, err)
		}
		f.parsed[name] = parsed
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    spec.Size,
		DPI:     f.DPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("Faces: new face %s: %w", spec, err)
	}
	f.faces[spec] = face
	return face, nil
}

// MeasureText implements TextMeasurer. Faces that cannot be built fall back to
// EstimateMeasurer so layout never fails on text.
func (f *Faces) MeasureText(text string, spec FontSpec) float64 {
	face, err := f.Face(spec)
	if err != nil {
		return EstimateMeasurer{}.MeasureText(text, spec)
	}
	return Fixed(font.MeasureString(face, text))
}

// Close releases every cached face.
func (f *Faces) Close() error {
	var firstErr error
	for spec, face := range f.faces {
		if err := face.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(f.faces, spec)
	}
	return firstErr
}

// Fixed converts a 26.6 fixed point value to float64 pixels.
func Fixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func fontData(spec FontSpec) (string, []byte) {
	switch {
	case spec.IsMonospace() && spec.Bold:
		return "gomonobold", gomonobold.TTF
	case spec.IsMonospace():
		return "gomono", gomono.TTF
	case spec.Bold:
		return "gobold", gobold.TTF
	default:
		return "goregular", goregular.TTF
	}
}
