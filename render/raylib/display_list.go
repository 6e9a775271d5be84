// render/raylib/display_list.go
package raylib

import (
	"image/color"

	"github.com/waozixyz/gantt/metrics"
	"github.com/waozixyz/gantt/render"
)

type opKind uint8

const (
	opLine opKind = iota
	opFill
	opText
)

// drawOp is one recorded drawing call.
type drawOp struct {
	kind           opKind
	x0, y0, x1, y1 float64 // line endpoints, or x, y, w, h for fills
	text           string
	font           metrics.FontSpec
	align          render.Align
	color          color.RGBA
}

// displayList records the calls of one chart pass so they can be replayed into
// a render texture in one batch.
type displayList struct {
	width, height int
	bg            color.RGBA
	ops           []drawOp
	dirty         bool
}

func (d *displayList) reset(width, height int, bg color.RGBA) {
	d.width, d.height, d.bg = width, height, bg
	d.ops = d.ops[:0]
	d.dirty = true
}

func (d *displayList) add(op drawOp) {
	d.ops = append(d.ops, op)
	d.dirty = true
}

// replay sends every op to s in recording order.
func (d *displayList) replay(s render.Surface) {
	s.Reset(d.width, d.height, d.bg)
	for _, op := range d.ops {
		switch op.kind {
		case opLine:
			s.Line(op.x0, op.y0, op.x1, op.y1, op.color)
		case opFill:
			s.FillRect(op.x0, op.y0, op.x1, op.y1, op.color)
		case opText:
			s.Text(op.text, op.x0, op.y0, op.font, op.align, op.color)
		}
	}
}
