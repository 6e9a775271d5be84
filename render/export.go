// render/export.go
package render

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var (
	// ErrUnsupportedFormat is returned when no encoder handles the requested format.
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// ErrNotExportable is returned when the chart's surface cannot be read back.
	ErrNotExportable = errors.New("surface does not support export")
)

// DefaultJPEGQuality is used when a quality outside (0, 1] is passed for JPEG.
const DefaultJPEGQuality = 0.92

// Encode writes img in format. Format names are MIME types such as "image/png";
// bare extensions ("png", "jpg") are accepted too. Quality only applies to JPEG
// and ranges over (0, 1].
func Encode(w io.Writer, img image.Image, format string, quality float64) error {
	switch normalizeFormat(format) {
	case "image/png":
		return png.Encode(w, img)
	case "image/jpeg":
		if quality <= 0 || quality > 1 {
			quality = DefaultJPEGQuality
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: int(math.Round(quality * 100))})
	case "image/bmp":
		return bmp.Encode(w, img)
	case "image/tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// FormatForPath guesses an export format from a file name extension.
func FormatForPath(path string) string {
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return "image/png"
	}
	return normalizeFormat(path[i+1:])
}

func normalizeFormat(format string) string {
	f := strings.ToLower(strings.TrimSpace(format))
	switch f {
	case "", "png", "image/png":
		return "image/png"
	case "jpg", "jpeg", "image/jpg", "image/jpeg":
		return "image/jpeg"
	case "bmp", "image/bmp":
		return "image/bmp"
	case "tif", "tiff", "image/tiff":
		return "image/tiff"
	}
	return f
}
