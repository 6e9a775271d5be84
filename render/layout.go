// render/layout.go
package render

import (
	"math"
	"time"

	"github.com/waozixyz/gantt/metrics"
)

// Layout holds the pixel geometry of one pass. Width and Height are content
// sizes; the surface adds Pad on every side.
type Layout struct {
	Columns       int
	Unit          time.Duration
	RowHeight     float64
	LabelWidth    float64
	Width         float64
	Height        float64
	SurfaceWidth  int
	SurfaceHeight int
}

// ComputeLayout turns a Summary into pixel dimensions for the given options.
func ComputeLayout(sum Summary, opts Options) Layout {
	unit := opts.Type.Unit()
	cols := int(math.Ceil(metrics.Units(sum.MinDate, sum.MaxDate, unit)))
	if cols < 1 {
		cols = 1
	}
	h := opts.RowHeight()
	l := Layout{
		Columns:    cols,
		Unit:       unit,
		RowHeight:  h,
		LabelWidth: sum.LabelWidth,
		Width:      float64(cols)*opts.CellWidth + sum.LabelWidth,
		Height:     2*opts.CellHeight + float64(sum.Rows)*h,
	}
	l.SurfaceWidth = int(math.Ceil(l.Width + 2*opts.Pad))
	l.SurfaceHeight = int(math.Ceil(l.Height + 2*opts.Pad))
	return l
}

// Scale maps dates to content-space x coordinates.
type Scale struct {
	Origin    time.Time
	Unit      time.Duration
	Offset    float64
	CellWidth float64
}

// NewScale returns the scale shared by the grid, the today marker and the bars.
func NewScale(sum Summary, l Layout, opts Options) Scale {
	return Scale{Origin: sum.MinDate, Unit: l.Unit, Offset: l.LabelWidth, CellWidth: opts.CellWidth}
}

// X returns the content-space x of t.
func (s Scale) X(t time.Time) float64 {
	return s.Offset + metrics.Units(s.Origin, t, s.Unit)*s.CellWidth
}
