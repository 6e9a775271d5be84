// cmd/gantt-export/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/waozixyz/gantt/internal/app"
	"github.com/waozixyz/gantt/render"
	"github.com/waozixyz/gantt/render/raster"
	"github.com/waozixyz/gantt/task"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	dataFile := flag.String("file", "", "Path to the task data file (YAML or JSON)")
	configFile := flag.String("config", "", "Path to a YAML options file")
	unit := flag.String("type", "", "Column unit override: day, week or month")
	out := flag.String("out", "", "Output image path (default: data file name with the format's extension)")
	format := flag.String("format", "", "Image format: image/png, image/jpeg, image/bmp or image/tiff (default: from -out)")
	quality := flag.Float64("quality", render.DefaultJPEGQuality, "JPEG quality in (0, 1]")
	collapseAll := flag.Bool("collapse-all", false, "Collapse every group before exporting")
	summary := flag.Bool("summary", false, "Print a per-group span summary to stdout")
	verbose := flag.Bool("v", false, "Log the render pass")
	flag.Parse()

	if *dataFile == "" {
		execName := filepath.Base(os.Args[0])
		fmt.Fprintf(os.Stderr, "Usage: %s -file <data_file> [-out chart.png]\n", execName)
		flag.PrintDefaults()
		os.Exit(1)
	}

	groups, err := task.ReadFile(*dataFile)
	if err != nil {
		log.Fatalf("ERROR: Failed to read task data '%s': %v", *dataFile, err)
	}
	opts, err := app.LoadOptions(app.Flags{ConfigFile: *configFile, Type: *unit})
	if err != nil {
		log.Fatalf("ERROR: Invalid options: %v", err)
	}

	outPath, outFormat := outputTarget(*dataFile, *out, *format)

	canvas := raster.NewCanvas()
	defer canvas.Close()

	var chartOpts []render.ChartOption
	if *verbose {
		chartOpts = append(chartOpts, render.WithLogger(log.Default()))
	}
	chart, err := render.NewChart(canvas, groups, opts, chartOpts...)
	if err != nil {
		log.Fatalf("ERROR: Failed to create chart: %v", err)
	}
	if *collapseAll {
		chart.SetCollapsed(true)
	}

	f, err := os.Create(outPath)
	if err != nil {
		log.Fatalf("ERROR: Cannot create '%s': %v", outPath, err)
	}
	if err := chart.Export(f, outFormat, *quality); err != nil {
		f.Close()
		log.Fatalf("ERROR: Export to '%s' failed: %v", outPath, err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("ERROR: Closing '%s': %v", outPath, err)
	}
	l := chart.Layout()
	log.Printf("Wrote %s (%dx%d, %d %s columns)", outPath, l.SurfaceWidth, l.SurfaceHeight, l.Columns, opts.Type)

	if *summary {
		printSummary(os.Stdout, chart.Groups(), chart.Summary(), opts)
	}
}

// outputTarget resolves the output path and format from the flags.
func outputTarget(dataFile, out, format string) (string, string) {
	if out == "" {
		ext := ".png"
		switch render.FormatForPath("x." + strings.TrimPrefix(format, "image/")) {
		case "image/jpeg":
			ext = ".jpg"
		case "image/bmp":
			ext = ".bmp"
		case "image/tiff":
			ext = ".tiff"
		}
		out = strings.TrimSuffix(dataFile, filepath.Ext(dataFile)) + ext
	}
	if format == "" {
		format = render.FormatForPath(out)
	}
	return out, format
}

// printSummary writes one table row per group with its derived span and completion.
func printSummary(w io.Writer, groups []task.Group, sum render.Summary, opts render.Options) {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(opts.BarColor1.Hex())).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	dimStyle := cellStyle.Foreground(lipgloss.Color(opts.HColor.Hex()))

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(opts.HColor.Hex()))).
		Headers("GROUP", "ITEMS", "FROM", "TO", "DONE")

	unscheduled := make(map[int]bool)
	for i, g := range groups {
		from, to := "-", "-"
		if i < len(sum.Groups) && sum.Groups[i].Scheduled {
			from = sum.Groups[i].From.Format("2006-01-02")
			to = sum.Groups[i].To.Format("2006-01-02")
		} else {
			unscheduled[i] = true
		}
		pct := 0.0
		if i < len(sum.Groups) {
			pct = sum.Groups[i].Percent
		}
		t.Row(g.Name, fmt.Sprint(len(g.Children)), from, to, fmt.Sprintf("%.0f%%", pct))
	}

	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		if unscheduled[row] {
			return dimStyle
		}
		return cellStyle
	})

	fmt.Fprintln(w, t.Render())
	fmt.Fprintf(w, "%d rows, %s .. %s\n", sum.Rows,
		sum.MinDate.Format("2006-01-02"), sum.MaxDate.Format("2006-01-02"))
}
