package render

import (
	"testing"
	"time"

	"github.com/waozixyz/gantt/metrics"
	"github.com/waozixyz/gantt/task"
)

func TestComputeLayout(t *testing.T) {
	type tc struct {
		from, to time.Time
		unit     Granularity
		columns  int
	}

	tests := map[string]tc{
		"ten days":               {from: day(2015, 1, 1), to: day(2015, 1, 11), unit: Day, columns: 10},
		"two full weeks":         {from: day(2015, 1, 1), to: day(2015, 1, 15), unit: Week, columns: 2},
		"partial week rounds up": {from: day(2015, 1, 1), to: day(2015, 1, 16), unit: Week, columns: 3},
		"month is thirty days":   {from: day(2015, 1, 1), to: day(2015, 3, 2), unit: Month, columns: 2},
		"short span in months":   {from: day(2015, 1, 1), to: day(2015, 1, 2), unit: Month, columns: 1},
		"empty span still one":   {from: day(2015, 1, 1), to: day(2015, 1, 1), unit: Day, columns: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Type = tt.unit
			sum := Summary{Rows: 4, MinDate: tt.from, MaxDate: tt.to, LabelWidth: 100}

			l := ComputeLayout(sum, opts)
			if l.Columns != tt.columns {
				t.Fatalf("Columns = %d, want %d", l.Columns, tt.columns)
			}
			if want := float64(tt.columns)*opts.CellWidth + 100; l.Width != want {
				t.Errorf("Width = %v, want %v", l.Width, want)
			}
			if want := 2*opts.CellHeight + 4*opts.RowHeight(); l.Height != want {
				t.Errorf("Height = %v, want %v", l.Height, want)
			}
			if want := int(l.Width + 2*opts.Pad); l.SurfaceWidth != want {
				t.Errorf("SurfaceWidth = %d, want %d", l.SurfaceWidth, want)
			}
			if want := int(l.Height + 2*opts.Pad); l.SurfaceHeight != want {
				t.Errorf("SurfaceHeight = %d, want %d", l.SurfaceHeight, want)
			}
		})
	}
}

func TestComputeLayout_RowHeight(t *testing.T) {
	opts := DefaultOptions()
	opts.FontSize = 20
	opts.PadY = 7

	l := ComputeLayout(Summary{MinDate: day(2015, 1, 1), MaxDate: day(2015, 1, 2)}, opts)
	if l.RowHeight != 34 {
		t.Errorf("RowHeight = %v, want 34", l.RowHeight)
	}
}

func TestScale(t *testing.T) {
	opts := DefaultOptions()
	sum := Summary{MinDate: day(2015, 1, 1), MaxDate: day(2015, 2, 1), LabelWidth: 80}

	for _, g := range []Granularity{Day, Week, Month} {
		t.Run(g.String(), func(t *testing.T) {
			opts.Type = g
			s := NewScale(sum, ComputeLayout(sum, opts), opts)

			if got := s.X(sum.MinDate); got != 80 {
				t.Errorf("X(MinDate) = %v, want 80", got)
			}
			prev := s.X(sum.MinDate)
			for h := 1; h <= 31*24; h += 5 {
				x := s.X(sum.MinDate.Add(time.Duration(h) * time.Hour))
				if x < prev {
					t.Fatalf("X not monotonic at +%dh: %v < %v", h, x, prev)
				}
				prev = x
			}
			if got, want := s.X(sum.MinDate.Add(g.Unit())), 80+opts.CellWidth; got != want {
				t.Errorf("X(MinDate+unit) = %v, want %v", got, want)
			}
		})
	}
}

func TestLayout_DaylightSaving(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("no tz data: %v", err)
	}
	local := func(m time.Month, d, h int) time.Time { return time.Date(2026, m, d, h, 0, 0, 0, berlin) }
	opts := DefaultOptions()

	// Empty data: a 30 day window that crosses the October clock change.
	sum := Preprocess(nil, metrics.EstimateMeasurer{}, testFont, 10, local(10, 19, 15))
	if l := ComputeLayout(sum, opts); l.Columns != 30 {
		t.Errorf("default window Columns = %d, want 30", l.Columns)
	}

	groups := []task.Group{{Name: "g", Children: []task.Item{
		{Name: "a", From: local(10, 20, 0), To: local(10, 30, 0)},
	}}}
	sum = Preprocess(groups, metrics.EstimateMeasurer{}, testFont, 10, local(10, 19, 15))
	l := ComputeLayout(sum, opts)
	if l.Columns != 11 {
		t.Errorf("Columns = %d, want 11", l.Columns)
	}

	s := NewScale(sum, l, opts)
	if got, want := s.X(local(10, 30, 0))-s.X(local(10, 20, 0)), 10*opts.CellWidth; !near(got, want) {
		t.Errorf("bar width = %v, want %v", got, want)
	}
	if got, want := s.X(local(10, 30, 0)), sum.LabelWidth+10*opts.CellWidth; !near(got, want) {
		t.Errorf("X(Oct 30) = %v, want %v", got, want)
	}
	// Midday on the 25 hour day sits in the middle of its column.
	if got, want := s.X(local(10, 25, 0).Add(12*time.Hour+30*time.Minute)), sum.LabelWidth+5.5*opts.CellWidth; !near(got, want) {
		t.Errorf("X(Oct 25 midday) = %v, want %v", got, want)
	}
}
