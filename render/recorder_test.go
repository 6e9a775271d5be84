package render

import (
	"image/color"
	"time"

	"github.com/waozixyz/gantt/metrics"
	"github.com/waozixyz/gantt/task"
)

type recordedLine struct {
	x0, y0, x1, y1 float64
	c              color.RGBA
}

type recordedFill struct {
	x, y, w, h float64
	c          color.RGBA
}

type recordedText struct {
	text  string
	x, y  float64
	font  metrics.FontSpec
	align Align
	c     color.RGBA
}

// recorder is a Surface that keeps every call for inspection.
type recorder struct {
	metrics.EstimateMeasurer

	resets        int
	width, height int
	bg            color.RGBA
	lines         []recordedLine
	fills         []recordedFill
	texts         []recordedText
}

func (r *recorder) Reset(width, height int, bg color.RGBA) {
	r.resets++
	r.width, r.height, r.bg = width, height, bg
	r.lines, r.fills, r.texts = nil, nil, nil
}

func (r *recorder) Line(x0, y0, x1, y1 float64, c color.RGBA) {
	r.lines = append(r.lines, recordedLine{x0, y0, x1, y1, c})
}

func (r *recorder) FillRect(x, y, w, h float64, c color.RGBA) {
	r.fills = append(r.fills, recordedFill{x, y, w, h, c})
}

func (r *recorder) Text(text string, x, y float64, font metrics.FontSpec, align Align, c color.RGBA) {
	r.texts = append(r.texts, recordedText{text, x, y, font, align, c})
}

func (r *recorder) findText(s string) (recordedText, bool) {
	for _, t := range r.texts {
		if t.text == s {
			return t, true
		}
	}
	return recordedText{}, false
}

func (r *recorder) linesWithColor(c Color) []recordedLine {
	var out []recordedLine
	for _, l := range r.lines {
		if l.c == c.ToRGBA() {
			out = append(out, l)
		}
	}
	return out
}

func (r *recorder) fillsWithColor(c Color) []recordedFill {
	var out []recordedFill
	for _, f := range r.fills {
		if f.c == c.ToRGBA() {
			out = append(out, f)
		}
	}
	return out
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// scenarioA is one expanded group with two overlapping items.
func scenarioA() []task.Group {
	return []task.Group{{
		ID:   "1",
		Name: "Group",
		Children: []task.Item{
			{ID: "11", Name: "first", From: day(2015, 1, 1), To: day(2015, 1, 5), Percent: 50},
			{ID: "12", Name: "second", From: day(2015, 1, 3), To: day(2015, 1, 10), Percent: 100},
		},
	}}
}
