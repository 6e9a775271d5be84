// render/options.go
package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/waozixyz/gantt/metrics"
	"gopkg.in/yaml.v3"
)

// DefaultFontFamily mirrors the CSS font stack labels are styled with.
const DefaultFontFamily = "Helvetica Neue,Helvetica,PingFang SC,Hiragino Sans GB,Microsoft YaHei,SimSun,sans-serif"

// barThickness is the height of every progress track.
const barThickness = 12.0

// Color is an RGBA color that reads from "#rgb", "#rrggbb" or "#rrggbbaa" strings.
type Color color.RGBA

// ToRGBA returns c as a color.RGBA.
func (c Color) ToRGBA() color.RGBA { return color.RGBA(c) }

// Hex formats c as "#rrggbb", or "#rrggbbaa" when not opaque.
func (c Color) Hex() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseColor parses a hex color string.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}) + "ff"
	case 6:
		hex += "ff"
	case 8:
	default:
		return Color{}, fmt.Errorf("color %q: want #rgb, #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// MustColor is ParseColor for constant inputs.
func MustColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// UnmarshalYAML decodes a hex color string.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseColor(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = parsed
	return nil
}

// MarshalYAML writes c as a hex string.
func (c Color) MarshalYAML() (interface{}, error) {
	return c.Hex(), nil
}

// Options configures the chart. YAML keys match the chart's option names.
type Options struct {
	Type       Granularity `yaml:"type"`
	FontSize   float64     `yaml:"fontSize"`
	FontFamily string      `yaml:"fontFamily"`

	Pad  float64 `yaml:"pad"`  // outer padding around the whole chart
	PadX float64 `yaml:"padX"` // horizontal text padding in the label column
	PadY float64 `yaml:"padY"` // vertical text padding inside a row

	CellWidth  float64 `yaml:"cellWidth"`
	CellHeight float64 `yaml:"cellHeight"`

	Color      Color `yaml:"color"`      // label text
	LineColor  Color `yaml:"lineColor"`  // grid lines
	HColor     Color `yaml:"hColor"`     // header text
	BarColor1  Color `yaml:"barColor1"`  // group progress fill
	BarColor2  Color `yaml:"barColor2"`  // item progress fill
	BarBgColor Color `yaml:"barBgColor"` // progress track
	Background Color `yaml:"background"`
	TodayColor Color `yaml:"todayColor"`
}

// DefaultOptions returns the stock chart look.
func DefaultOptions() Options {
	return Options{
		Type:       Day,
		FontSize:   14,
		FontFamily: DefaultFontFamily,
		Pad:        10,
		PadX:       10,
		PadY:       10,
		CellWidth:  28,
		CellHeight: 28,
		Color:      MustColor("#555"),
		LineColor:  MustColor("#e9e9e9"),
		HColor:     MustColor("#999"),
		BarColor1:  MustColor("#2db7f5"),
		BarColor2:  MustColor("#87d068"),
		BarBgColor: MustColor("#e9e9e9"),
		Background: MustColor("#fff"),
		TodayColor: MustColor("#f50"),
	}
}

// Font returns the plain label font.
func (o Options) Font() metrics.FontSpec {
	return metrics.FontSpec{Size: o.FontSize, Family: o.FontFamily}
}

// RowHeight is the height of one body row: the font size plus vertical text padding.
func (o Options) RowHeight() float64 {
	return o.FontSize + 2*o.PadY
}

// Validate reports every unusable setting in one joined error.
func (o Options) Validate() error {
	var errs []error
	if !o.Type.Valid() {
		errs = append(errs, fmt.Errorf("type: %w: %d", ErrInvalidGranularity, uint8(o.Type)))
	}
	positive := []struct {
		name string
		v    float64
	}{
		{"fontSize", o.FontSize},
		{"cellWidth", o.CellWidth},
		{"cellHeight", o.CellHeight},
	}
	for _, p := range positive {
		if p.v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %g", p.name, p.v))
		}
	}
	nonNegative := []struct {
		name string
		v    float64
	}{
		{"pad", o.Pad},
		{"padX", o.PadX},
		{"padY", o.PadY},
	}
	for _, p := range nonNegative {
		if p.v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %g", p.name, p.v))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}

// LoadOptions overlays YAML from r onto DefaultOptions and validates the result.
func LoadOptions(r io.Reader) (Options, error) {
	opts := DefaultOptions()
	if err := yaml.NewDecoder(r).Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return opts, fmt.Errorf("LoadOptions: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return opts, fmt.Errorf("LoadOptions: %w", err)
	}
	return opts, nil
}

// LoadOptionsFile is LoadOptions on a file. An empty path yields the defaults.
func LoadOptionsFile(path string) (Options, error) {
	if path == "" {
		return DefaultOptions(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return DefaultOptions(), fmt.Errorf("LoadOptions: %w", err)
	}
	defer f.Close()
	return LoadOptions(f)
}
