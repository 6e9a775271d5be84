// render/preprocess.go
package render

import (
	"math"
	"time"

	"github.com/waozixyz/gantt/metrics"
	"github.com/waozixyz/gantt/task"
)

// defaultSpanDays is the window shown when no item has dates.
const defaultSpanDays = 30

// Span is the derived date range and completion of one group.
type Span struct {
	From      time.Time
	To        time.Time
	Percent   float64
	Scheduled bool // false when no child has both dates
}

// Summary is everything the layout and paint passes need from the data.
// It is rebuilt from scratch on every pass and never updated in place.
type Summary struct {
	Rows       int
	MinDate    time.Time // 00:00 of the earliest day
	MaxDate    time.Time // 00:00 of the day after the latest day
	LabelWidth float64   // widest label plus horizontal text padding on both sides
	Groups     []Span    // indexed like the input groups
}

// Preprocess measures labels and aggregates each group's children. The result
// depends only on its arguments.
func Preprocess(groups []task.Group, m metrics.TextMeasurer, font metrics.FontSpec, padX float64, now time.Time) Summary {
	sum := Summary{Groups: make([]Span, len(groups))}
	bold := font.Emphasized()
	plain := font
	plain.Bold = false

	var minDate, maxDate time.Time
	textWidth := 0.0

	for i, g := range groups {
		textWidth = math.Max(textWidth, m.MeasureText(g.Name, bold))
		sum.Rows++

		span := Span{}
		total := 0.0
		for _, it := range g.Children {
			if !g.Collapse {
				textWidth = math.Max(textWidth, m.MeasureText(it.Name, plain))
				sum.Rows++
			}
			total += it.Percent
			if it.Scheduled() {
				span.From = metrics.Earliest(span.From, it.From)
				span.To = metrics.Latest(span.To, it.To)
				span.Scheduled = true
			}
		}
		if len(g.Children) > 0 {
			span.Percent = total / float64(len(g.Children))
		}
		sum.Groups[i] = span

		if span.Scheduled {
			minDate = metrics.Earliest(minDate, span.From)
			maxDate = metrics.Latest(maxDate, span.To)
		}
	}

	if minDate.IsZero() {
		sum.MinDate = metrics.StartOfDay(now)
		sum.MaxDate = metrics.AddDays(sum.MinDate, defaultSpanDays)
	} else {
		sum.MinDate = metrics.StartOfDay(minDate)
		sum.MaxDate = metrics.NextDayStart(maxDate)
	}
	sum.LabelWidth = textWidth + 2*padX
	return sum
}
