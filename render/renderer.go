// render/renderer.go
package render

import (
	"math"
	"time"

	"github.com/waozixyz/gantt/task"
)

// Paint draws one complete chart on s, which must already be sized and cleared
// for l. It returns the label-row box of every group, indexed like groups.
func Paint(s Surface, groups []task.Group, sum Summary, l Layout, opts Options, now time.Time) []Rect {
	p := pen{s: s, dx: opts.Pad, dy: opts.Pad}
	f := frame{sum: sum, layout: l, opts: opts, scale: NewScale(sum, l, opts)}

	paintGrid(p, f)
	opts.Type.header().paint(p, f)
	paintToday(p, f, now)
	return paintBody(p, f, groups)
}

// --- Grid ---

func paintGrid(p pen, f frame) {
	o, l := f.opts, f.layout

	p.rect(0, 0, l.Width, l.Height, o.LineColor)
	p.line(l.LabelWidth, 0, l.LabelWidth, l.Height, o.LineColor)
	p.line(0, o.CellHeight*2, l.Width, o.CellHeight*2, o.LineColor)
	p.line(l.LabelWidth, o.CellHeight, l.Width, o.CellHeight, o.LineColor)
	for i := 1; i < l.Columns; i++ {
		x := l.LabelWidth + float64(i)*o.CellWidth
		p.line(x, o.CellHeight, x, l.Height, o.LineColor)
	}
}

// paintToday marks now with a vertical line across the body when it falls in the chart.
func paintToday(p pen, f frame, now time.Time) {
	if now.Before(f.sum.MinDate) || !now.Before(f.sum.MaxDate) {
		return
	}
	x := f.scale.X(now)
	p.line(x, f.opts.CellHeight*2, x, f.layout.Height, f.opts.TodayColor)
}

// --- Body ---

func paintBody(p pen, f frame, groups []task.Group) []Rect {
	o, l := f.opts, f.layout
	h := l.RowHeight
	plain := o.Font()
	bold := plain.Emphasized()

	boxes := make([]Rect, len(groups))
	offsetY := o.CellHeight * 2

	for i, g := range groups {
		p.text(g.Name, o.PadX, offsetY+h/2, bold, AlignLeft, o.Color)
		boxes[i] = Rect{X: 0, Y: offsetY, W: l.LabelWidth, H: h}

		if i < len(f.sum.Groups) {
			if span := f.sum.Groups[i]; span.Scheduled {
				paintProgress(p, f, offsetY, span.From, span.To, span.Percent, o.BarColor1)
			}
		}
		offsetY += h

		if !g.Collapse {
			for _, it := range g.Children {
				p.text(it.Name, o.PadX, offsetY+h/2, plain, AlignLeft, o.Color)
				if it.Scheduled() {
					paintProgress(p, f, offsetY, it.From, it.To, it.Percent, o.BarColor2)
				}
				offsetY += h
			}
		}
		p.line(0, offsetY, l.Width, offsetY, o.LineColor)
	}
	return boxes
}

// paintProgress draws the track for [from, to] in the row at rowY and fills
// percent of it with fill.
func paintProgress(p pen, f frame, rowY float64, from, to time.Time, percent float64, fill Color) {
	x := f.scale.X(from)
	w := f.scale.X(to) - x
	y := rowY + (f.layout.RowHeight-barThickness)/2

	p.fill(x, y, w, barThickness, f.opts.BarBgColor)
	if pct := math.Min(math.Max(percent, 0), 100); pct > 0 {
		p.fill(x, y, w*pct/100, barThickness, fill)
	}
}
