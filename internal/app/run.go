// internal/app/run.go
package app

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/waozixyz/gantt/render"
	"github.com/waozixyz/gantt/task"

	// NOTE: NO direct import of specific viewers like raylib here!
)

// Flags are the command line settings shared by the viewer binaries.
type Flags struct {
	DataFile   string
	ConfigFile string
	Type       string
	Verbose    bool
}

// ParseFlags reads Flags from the command line.
func ParseFlags() Flags {
	var f Flags
	flag.StringVar(&f.DataFile, "file", "", "Path to the task data file (YAML or JSON)")
	flag.StringVar(&f.ConfigFile, "config", "", "Path to a YAML options file")
	flag.StringVar(&f.Type, "type", "", "Column unit override: day, week or month")
	flag.BoolVar(&f.Verbose, "v", false, "Log every redraw")
	flag.Parse()
	return f
}

// LoadOptions reads the options file and applies the -type override.
func LoadOptions(f Flags) (render.Options, error) {
	opts, err := render.LoadOptionsFile(f.ConfigFile)
	if err != nil {
		return opts, err
	}
	if f.Type != "" {
		g, err := render.ParseGranularity(f.Type)
		if err != nil {
			return opts, fmt.Errorf("-type: %w", err)
		}
		opts.Type = g
	}
	return opts, nil
}

// Run is the core application logic, independent of the specific viewer.
func Run(viewer render.Viewer) {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	flags := ParseFlags()
	if flags.DataFile == "" {
		fmt.Println("Usage: <executable_name> -file <data_file> [-config <options.yaml>] [-type day|week|month]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	log.Printf("Loading task data: %s", flags.DataFile)
	groups, err := task.ReadFile(flags.DataFile)
	if err != nil {
		log.Fatalf("ERROR: Failed to read task data '%s': %v", flags.DataFile, err)
	}
	log.Printf("Loaded %d groups", len(groups))

	opts, err := LoadOptions(flags)
	if err != nil {
		log.Fatalf("ERROR: Invalid options: %v", err)
	}

	savePath := strings.TrimSuffix(flags.DataFile, filepath.Ext(flags.DataFile)) + ".png"
	RunChart(viewer, groups, opts, Settings{Title: filepath.Base(flags.DataFile), SavePath: savePath, Verbose: flags.Verbose})
}

// Settings tune RunChart.
type Settings struct {
	Title    string
	SavePath string // where the save key writes the image
	Verbose  bool
}

// RunChart opens viewer, paints groups and runs the interaction loop until the
// window closes.
func RunChart(viewer render.Viewer, groups []task.Group, opts render.Options, s Settings) {
	config := render.DefaultWindowConfig()
	if s.Title != "" {
		config.Title = "Gantt - " + s.Title
	}
	config.DefaultBg = opts.Background.ToRGBA()

	err := viewer.Init(config)
	if err != nil {
		viewer.Cleanup() // Attempt cleanup
		log.Fatalf("ERROR: Failed to initialize viewer: %v", err)
	}
	defer viewer.Cleanup()

	var chartOpts []render.ChartOption
	if s.Verbose {
		chartOpts = append(chartOpts, render.WithLogger(log.Default()))
	}
	chart, err := render.NewChart(viewer.Surface(), groups, opts, chartOpts...)
	if err != nil {
		log.Fatalf("ERROR: Failed to create chart: %v", err)
	}
	viewer.Fit()

	log.Println("Entering main loop...")
	for !viewer.ShouldClose() {
		in := viewer.PollEvents()
		if HandleInput(chart, in, s.SavePath) {
			viewer.Fit()
		}

		viewer.BeginFrame()
		viewer.Present()
		viewer.EndFrame()
	}

	log.Println("Exiting.")
}

// HandleInput applies one frame of input to chart and reports whether the
// chart was repainted.
func HandleInput(chart *render.Chart, in render.Input, savePath string) bool {
	redrawn := false
	if in.Clicked && chart.Click(in.X, in.Y) {
		chart.Redraw()
		redrawn = true
	}

	switch in.Key {
	case render.KeyDay, render.KeyWeek, render.KeyMonth:
		g := map[render.Key]render.Granularity{
			render.KeyDay:   render.Day,
			render.KeyWeek:  render.Week,
			render.KeyMonth: render.Month,
		}[in.Key]
		if g != chart.Options().Type {
			if err := chart.SetGranularity(g); err != nil {
				log.Printf("WARN HandleInput: %v", err)
			} else {
				redrawn = true
			}
		}
	case render.KeyCollapseAll:
		chart.SetCollapsed(true)
		redrawn = true
	case render.KeyExpandAll:
		chart.SetCollapsed(false)
		redrawn = true
	case render.KeySave:
		if savePath == "" {
			break
		}
		if err := SaveImage(chart, savePath); err != nil {
			log.Printf("ERROR HandleInput: Failed to save '%s': %v", savePath, err)
		} else {
			log.Printf("Saved chart to %s", savePath)
		}
	}
	return redrawn
}

// SaveImage writes the chart's current surface to path, picking the format from the extension.
func SaveImage(chart *render.Chart, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := chart.Export(f, render.FormatForPath(path), 0); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
