package render

import (
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/waozixyz/gantt/task"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

// paintOn runs one full pass on a fresh recorder with default options of the given type.
func paintOn(groups []task.Group, g Granularity, now time.Time) (*recorder, Summary, Layout, []Rect) {
	r := &recorder{}
	opts := DefaultOptions()
	opts.Type = g
	sum := Preprocess(groups, r, opts.Font(), opts.PadX, now)
	l := ComputeLayout(sum, opts)
	r.Reset(l.SurfaceWidth, l.SurfaceHeight, opts.Background.ToRGBA())
	boxes := Paint(r, groups, sum, l, opts, now)
	return r, sum, l, boxes
}

func (r *recorder) hasLine(x0, y0, x1, y1 float64, c Color) bool {
	for _, l := range r.linesWithColor(c) {
		if near(l.x0, x0) && near(l.y0, y0) && near(l.x1, x1) && near(l.y1, y1) {
			return true
		}
	}
	return false
}

func TestPaint_Bars(t *testing.T) {
	r, sum, _, _ := paintOn(scenarioA(), Day, day(2020, 1, 1))
	opts := DefaultOptions()
	lw := sum.LabelWidth

	type bar struct {
		x, y, w, fill float64
		c             Color
	}
	want := []bar{
		{x: lw + 10, y: 10 + 56 + 11, w: 9 * 28, fill: 9 * 28 * 0.75, c: opts.BarColor1},
		{x: lw + 10, y: 10 + 90 + 11, w: 4 * 28, fill: 2 * 28, c: opts.BarColor2},
		{x: lw + 10 + 2*28, y: 10 + 124 + 11, w: 7 * 28, fill: 7 * 28, c: opts.BarColor2},
	}

	tracks := r.fillsWithColor(opts.BarBgColor)
	if len(tracks) != len(want) {
		t.Fatalf("got %d tracks, want %d", len(tracks), len(want))
	}
	var fills []recordedFill
	fills = append(fills, r.fillsWithColor(opts.BarColor1)...)
	fills = append(fills, r.fillsWithColor(opts.BarColor2)...)
	if len(fills) != len(want) {
		t.Fatalf("got %d progress fills, want %d", len(fills), len(want))
	}

	for i, b := range want {
		tr := tracks[i]
		if !near(tr.x, b.x) || !near(tr.y, b.y) || !near(tr.w, b.w) || tr.h != barThickness {
			t.Errorf("track %d = %+v, want x=%v y=%v w=%v", i, tr, b.x, b.y, b.w)
		}
		f := fills[i]
		if f.c != b.c.ToRGBA() || !near(f.x, b.x) || !near(f.y, b.y) || !near(f.w, b.fill) {
			t.Errorf("fill %d = %+v, want x=%v y=%v w=%v", i, f, b.x, b.y, b.fill)
		}
	}
}

func TestPaint_PercentClamped(t *testing.T) {
	groups := []task.Group{{Name: "g", Collapse: true, Children: []task.Item{
		{Name: "over", From: day(2015, 1, 1), To: day(2015, 1, 3), Percent: 150},
	}}}
	opts := DefaultOptions()

	r, _, _, _ := paintOn(groups, Day, day(2020, 1, 1))
	fills := r.fillsWithColor(opts.BarColor1)
	if len(fills) != 1 || !near(fills[0].w, 2*28) {
		t.Errorf("fill = %+v, want full 56px", fills)
	}

	groups[0].Children[0].Percent = -5
	r, _, _, _ = paintOn(groups, Day, day(2020, 1, 1))
	if fills := r.fillsWithColor(opts.BarColor1); len(fills) != 0 {
		t.Errorf("negative percent should not fill, got %+v", fills)
	}
	if tracks := r.fillsWithColor(opts.BarBgColor); len(tracks) != 1 {
		t.Errorf("track should still be drawn, got %d", len(tracks))
	}
}

func TestPaint_CollapsedAndUnscheduled(t *testing.T) {
	groups := []task.Group{
		{Name: "open", Children: []task.Item{
			{Name: "dated", From: day(2015, 1, 1), To: day(2015, 1, 2)},
			{Name: "undated"},
		}},
		{Name: "closed", Collapse: true, Children: []task.Item{
			{Name: "hidden", From: day(2015, 1, 1), To: day(2015, 1, 2)},
		}},
	}
	r, _, _, boxes := paintOn(groups, Day, day(2020, 1, 1))
	opts := DefaultOptions()

	for _, name := range []string{"open", "dated", "undated", "closed"} {
		if _, ok := r.findText(name); !ok {
			t.Errorf("label %q not drawn", name)
		}
	}
	if _, ok := r.findText("hidden"); ok {
		t.Error("child of a collapsed group was drawn")
	}
	// open group, dated child, closed group
	if tracks := r.fillsWithColor(opts.BarBgColor); len(tracks) != 3 {
		t.Errorf("got %d tracks, want 3", len(tracks))
	}

	if len(boxes) != 2 {
		t.Fatalf("got %d boxes, want 2", len(boxes))
	}
	if boxes[0].Y != 56 || boxes[1].Y != 56+3*34 {
		t.Errorf("box rows = %v, %v", boxes[0].Y, boxes[1].Y)
	}

	label, _ := r.findText("open")
	if !label.font.Bold || label.align != AlignLeft || !near(label.x, 20) || !near(label.y, 10+56+17) {
		t.Errorf("group label = %+v", label)
	}
	child, _ := r.findText("dated")
	if child.font.Bold {
		t.Error("item labels should use the plain font")
	}
}

func TestPaint_HitBoxes(t *testing.T) {
	_, sum, _, boxes := paintOn(scenarioA(), Day, day(2020, 1, 1))
	want := Rect{X: 0, Y: 56, W: sum.LabelWidth, H: 34}
	if len(boxes) != 1 || boxes[0] != want {
		t.Errorf("boxes = %+v, want [%+v]", boxes, want)
	}
}

func TestPaint_Grid(t *testing.T) {
	r, _, l, _ := paintOn(scenarioA(), Day, day(2020, 1, 1))
	c := DefaultOptions().LineColor
	lw := l.LabelWidth

	checks := map[string][4]float64{
		"top":             {10, 10, 10 + l.Width, 10},
		"label column":    {10 + lw, 10, 10 + lw, 10 + l.Height},
		"header bottom":   {10, 10 + 56, 10 + l.Width, 10 + 56},
		"header middle":   {10 + lw, 10 + 28, 10 + l.Width, 10 + 28},
		"first column":    {10 + lw + 28, 10 + 28, 10 + lw + 28, 10 + l.Height},
		"last column":     {10 + lw + 9*28, 10 + 28, 10 + lw + 9*28, 10 + l.Height},
		"group separator": {10, 10 + l.Height, 10 + l.Width, 10 + l.Height},
	}
	for name, ln := range checks {
		if !r.hasLine(ln[0], ln[1], ln[2], ln[3], c) {
			t.Errorf("%s line %v not drawn", name, ln)
		}
	}
	if l.Height != 56+3*34 {
		t.Errorf("Height = %v, want 158", l.Height)
	}
}

func TestPaint_DayHeader(t *testing.T) {
	r, _, l, _ := paintOn(scenarioA(), Day, day(2020, 1, 1))
	hColor := DefaultOptions().HColor.ToRGBA()
	lw := l.LabelWidth

	for i := 1; i <= 10; i++ {
		txt, ok := r.findText(strconv.Itoa(i))
		if !ok {
			t.Fatalf("day label %d missing", i)
		}
		if !near(txt.x, 10+lw+(float64(i)-0.5)*28) || !near(txt.y, 10+42) || txt.align != AlignCenter || txt.c != hColor {
			t.Errorf("day label %d = %+v", i, txt)
		}
	}
	month, ok := r.findText("2015-01")
	if !ok {
		t.Fatal("month label missing")
	}
	if !near(month.x, 10+lw+5*28) || !near(month.y, 10+14) {
		t.Errorf("month label = %+v", month)
	}
}

func TestPaint_DayHeaderShortRuns(t *testing.T) {
	groups := []task.Group{{Name: "g", Children: []task.Item{
		{Name: "a", From: day(2015, 1, 30), To: day(2015, 2, 2)},
	}}}
	r, _, l, _ := paintOn(groups, Day, day(2020, 1, 1))
	lw := l.LabelWidth
	c := DefaultOptions().LineColor

	if l.Columns != 4 {
		t.Fatalf("Columns = %d, want 4", l.Columns)
	}
	for _, s := range []string{"30", "31", "1", "2", "01", "02"} {
		if _, ok := r.findText(s); !ok {
			t.Errorf("label %q missing", s)
		}
	}
	if _, ok := r.findText("2015-01"); ok {
		t.Error("runs of two days should use the short month label")
	}
	for _, x := range []float64{lw + 2*28, lw + 4*28} {
		if !r.hasLine(10+x, 10, 10+x, 10+28, c) {
			t.Errorf("month separator at %v missing", x)
		}
	}
}

func TestPaint_WeekHeader(t *testing.T) {
	groups := []task.Group{{Name: "g", Children: []task.Item{
		{Name: "a", From: day(2015, 1, 1), To: day(2015, 3, 1)},
	}}}
	r, _, l, _ := paintOn(groups, Week, day(2020, 1, 1))
	lw := l.LabelWidth

	if l.Columns != 9 {
		t.Fatalf("Columns = %d, want 9", l.Columns)
	}
	for i := 1; i <= 9; i++ {
		if _, ok := r.findText(strconv.Itoa(i)); !ok {
			t.Errorf("column number %d missing", i)
		}
	}

	first, ok := r.findText("01-01 ~ 01-28")
	if !ok {
		t.Fatal("first bucket label missing")
	}
	if !near(first.x, 10+lw+2*28) || !near(first.y, 10+14) {
		t.Errorf("first bucket = %+v", first)
	}
	if _, ok := r.findText("01-29 ~ 02-25"); !ok {
		t.Error("second bucket label missing")
	}

	buckets := 0
	for _, txt := range r.texts {
		if len(txt.text) == len("01-01 ~ 01-28") {
			buckets++
		}
	}
	if buckets != 2 {
		t.Errorf("got %d bucket labels, want 2 (a partial bucket is not labelled)", buckets)
	}
}

func TestPaint_MonthHeader(t *testing.T) {
	groups := []task.Group{{Name: "g", Children: []task.Item{
		{Name: "a", From: day(2015, 1, 1), To: day(2015, 4, 30)},
	}}}
	r, _, l, _ := paintOn(groups, Month, day(2020, 1, 1))

	if l.Columns != 4 {
		t.Fatalf("Columns = %d, want 4", l.Columns)
	}
	// 4 columns of 30 days from Jan 1 end on Apr 30.
	if _, ok := r.findText("01-01 ~ 04-30"); !ok {
		t.Errorf("bucket label missing, texts = %+v", r.texts)
	}
}

func TestPaint_Today(t *testing.T) {
	opts := DefaultOptions()

	type tc struct {
		now    time.Time
		drawn  bool
		offset float64
	}

	tests := map[string]tc{
		"inside":     {now: time.Date(2015, 1, 4, 12, 0, 0, 0, time.UTC), drawn: true, offset: 3.5 * 28},
		"at min":     {now: day(2015, 1, 1), drawn: true, offset: 0},
		"at max":     {now: day(2015, 1, 11)},
		"before":     {now: day(2014, 12, 31)},
		"long after": {now: day(2020, 1, 1)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r, _, l, _ := paintOn(scenarioA(), Day, tt.now)
			lines := r.linesWithColor(opts.TodayColor)
			if !tt.drawn {
				if len(lines) != 0 {
					t.Errorf("today marker drawn: %+v", lines)
				}
				return
			}
			if len(lines) != 1 {
				t.Fatalf("got %d today lines, want 1", len(lines))
			}
			x := 10 + l.LabelWidth + tt.offset
			if !r.hasLine(x, 10+56, x, 10+l.Height, opts.TodayColor) {
				t.Errorf("today line = %+v, want x=%v", lines[0], x)
			}
		})
	}
}
