// render/chart.go
package render

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"log"
	"time"

	"github.com/waozixyz/gantt/task"
)

// Chart is one Gantt chart bound to one surface. It owns a private copy of the
// groups and rebuilds every derived value on each pass. A Chart is not safe for
// concurrent use.
type Chart struct {
	surface Surface
	groups  []task.Group
	opts    Options
	now     func() time.Time
	logger  *log.Logger

	sum    Summary
	layout Layout
	boxes  []Rect
}

// ChartOption customises a Chart at construction.
type ChartOption func(*Chart)

// WithClock sets the source of "now" used for the default window and the today marker.
func WithClock(now func() time.Time) ChartOption {
	return func(c *Chart) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger enables per-pass debug logging.
func WithLogger(l *log.Logger) ChartOption {
	return func(c *Chart) {
		c.logger = l
	}
}

// NewChart validates opts, copies groups and paints the first pass onto s.
func NewChart(s Surface, groups []task.Group, opts Options, options ...ChartOption) (*Chart, error) {
	if s == nil {
		return nil, fmt.Errorf("NewChart: surface is nil")
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("NewChart: %w", err)
	}
	c := &Chart{
		surface: s,
		groups:  task.Clone(groups),
		opts:    opts,
		now:     time.Now,
	}
	for _, o := range options {
		o(c)
	}
	c.Redraw()
	return c, nil
}

// SetGranularity switches the column unit and repaints. An invalid value is
// rejected and leaves the chart unchanged.
func (c *Chart) SetGranularity(g Granularity) error {
	if !g.Valid() {
		return fmt.Errorf("SetGranularity: %w: %d", ErrInvalidGranularity, uint8(g))
	}
	c.opts.Type = g
	c.Redraw()
	return nil
}

// SetData replaces the chart's groups with a copy of groups and repaints.
func (c *Chart) SetData(groups []task.Group) {
	c.groups = task.Clone(groups)
	c.Redraw()
}

// Redraw runs preprocessing, layout and painting as one batch.
func (c *Chart) Redraw() {
	now := c.now()
	c.sum = Preprocess(c.groups, c.surface, c.opts.Font(), c.opts.PadX, now)
	c.layout = ComputeLayout(c.sum, c.opts)
	c.surface.Reset(c.layout.SurfaceWidth, c.layout.SurfaceHeight, c.opts.Background.ToRGBA())
	c.boxes = Paint(c.surface, c.groups, c.sum, c.layout, c.opts, now)

	if c.logger != nil {
		c.logger.Printf("Chart Redraw: %d groups, %d rows, %d %s columns, %dx%d px, %s .. %s",
			len(c.groups), c.sum.Rows, c.layout.Columns, c.opts.Type,
			c.layout.SurfaceWidth, c.layout.SurfaceHeight,
			c.sum.MinDate.Format("2006-01-02"), c.sum.MaxDate.Format("2006-01-02"))
	}
}

// HitTest returns the indices of the groups whose label row contains the
// surface point (x, y).
func (c *Chart) HitTest(x, y float64) []int {
	return HitTest(c.boxes, x, y, c.opts.Pad)
}

// Click toggles the collapse flag of every group hit at (x, y) and reports
// whether any toggled. It does not repaint; call Redraw when it returns true.
func (c *Chart) Click(x, y float64) bool {
	hits := c.HitTest(x, y)
	for _, i := range hits {
		c.groups[i].Collapse = !c.groups[i].Collapse
	}
	if c.logger != nil && len(hits) > 0 {
		c.logger.Printf("Chart Click: (%.0f, %.0f) toggled groups %v", x, y, hits)
	}
	return len(hits) > 0
}

// Toggle flips the collapse flag of group i without repainting.
func (c *Chart) Toggle(i int) error {
	if i < 0 || i >= len(c.groups) {
		return fmt.Errorf("Toggle: group index %d out of range [0,%d)", i, len(c.groups))
	}
	c.groups[i].Collapse = !c.groups[i].Collapse
	return nil
}

// SetCollapsed sets every group's collapse flag and repaints.
func (c *Chart) SetCollapsed(collapsed bool) {
	for i := range c.groups {
		c.groups[i].Collapse = collapsed
	}
	c.Redraw()
}

// --- Read access ---

// Summary returns the derived data of the last pass.
func (c *Chart) Summary() Summary {
	s := c.sum
	s.Groups = append([]Span(nil), c.sum.Groups...)
	return s
}

// Layout returns the geometry of the last pass.
func (c *Chart) Layout() Layout { return c.layout }

// HitBoxes returns the group label boxes recorded by the last pass.
func (c *Chart) HitBoxes() []Rect { return append([]Rect(nil), c.boxes...) }

// Groups returns a copy of the chart's groups, including current collapse flags.
func (c *Chart) Groups() []task.Group { return task.Clone(c.groups) }

// Options returns the chart's options.
func (c *Chart) Options() Options { return c.opts }

// --- Export ---

// Export encodes the current surface to w.
func (c *Chart) Export(w io.Writer, format string, quality float64) error {
	img, err := c.snapshot()
	if err != nil {
		return err
	}
	if err := Encode(w, img, format, quality); err != nil {
		return fmt.Errorf("Export: %w", err)
	}
	return nil
}

// ExportAsync snapshots the current surface, then encodes it on another
// goroutine and hands the bytes to callback. The chart may be repainted while
// encoding runs; the snapshot is unaffected.
func (c *Chart) ExportAsync(callback func(data []byte, err error), format string, quality float64) {
	img, err := c.snapshot()
	if err != nil {
		callback(nil, err)
		return
	}
	go func() {
		var buf bytes.Buffer
		if err := Encode(&buf, img, format, quality); err != nil {
			callback(nil, fmt.Errorf("ExportAsync: %w", err))
			return
		}
		callback(buf.Bytes(), nil)
	}()
}

func (c *Chart) snapshot() (image.Image, error) {
	snap, ok := c.surface.(Snapshotter)
	if !ok {
		return nil, ErrNotExportable
	}
	img, err := snap.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	return img, nil
}
