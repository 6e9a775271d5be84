// render/header.go
package render

import (
	"strconv"

	"github.com/waozixyz/gantt/metrics"
)

// headerBand paints the two header rows for one granularity.
type headerBand interface {
	paint(p pen, f frame)
}

// frame bundles what header and body painters share during one pass.
type frame struct {
	sum    Summary
	layout Layout
	opts   Options
	scale  Scale
}

// dayHeader labels columns by day of month and groups them by month above.
type dayHeader struct{}

func (dayHeader) paint(p pen, f frame) {
	o, l := f.opts, f.layout
	font := o.Font()

	type run struct {
		key   string
		count int
	}
	var runs []run
	for i := 0; i < l.Columns; i++ {
		cur := metrics.AddDays(f.sum.MinDate, i)
		key := metrics.FormatDate(cur, "YYYY-MM")
		if n := len(runs); n > 0 && runs[n-1].key == key {
			runs[n-1].count++
		} else {
			runs = append(runs, run{key: key, count: 1})
		}
		x := l.LabelWidth + (float64(i)+0.5)*o.CellWidth
		p.text(strconv.Itoa(cur.Day()), x, o.CellHeight*1.5, font, AlignCenter, o.HColor)
	}

	offset := l.LabelWidth
	for _, r := range runs {
		label := r.key
		if r.count <= 2 {
			label = r.key[len(r.key)-2:]
		}
		p.text(label, offset+float64(r.count)/2*o.CellWidth, o.CellHeight/2, font, AlignCenter, o.HColor)
		offset += float64(r.count) * o.CellWidth
		p.line(offset, 0, offset, o.CellHeight, o.LineColor)
	}
}

// bucketHeader numbers columns and labels every size columns with their date range.
type bucketHeader struct {
	size int
	days int
}

func (b bucketHeader) paint(p pen, f frame) {
	o, l := f.opts, f.layout
	font := o.Font()

	for i := 0; i < l.Columns; i++ {
		x := l.LabelWidth + (float64(i)+0.5)*o.CellWidth
		p.text(strconv.Itoa(i+1), x, o.CellHeight*1.5, font, AlignCenter, o.HColor)
	}
	for i := 0; i+b.size <= l.Columns; i += b.size {
		label := b.label(f.sum, i)
		x := l.LabelWidth + (float64(i)+float64(b.size)/2)*o.CellWidth
		p.text(label, x, o.CellHeight/2, font, AlignCenter, o.HColor)

		offset := l.LabelWidth + float64(i+b.size)*o.CellWidth
		p.line(offset, 0, offset, o.CellHeight, o.LineColor)
	}
}

// label formats the "MM-dd ~ MM-dd" range of the bucket starting at column i.
func (b bucketHeader) label(sum Summary, i int) string {
	start := metrics.AddDays(sum.MinDate, i*b.days)
	end := metrics.AddDays(sum.MinDate, (i+b.size)*b.days-1)
	return metrics.FormatDate(start, "MM-dd") + " ~ " + metrics.FormatDate(end, "MM-dd")
}
