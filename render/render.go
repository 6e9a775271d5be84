// render/render.go
package render

import (
	"image/color"
)

// WindowConfig holds window settings for interactive backends.
type WindowConfig struct {
	Width     int
	Height    int
	Title     string
	Resizable bool
	TargetFPS int
	DefaultBg color.RGBA
}

// DefaultWindowConfig returns the settings used when no chart size is known yet.
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:     800,
		Height:    600,
		Title:     "Gantt",
		Resizable: true,
		TargetFPS: 60,
		DefaultBg: color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// Key is a backend-neutral keyboard key the viewer loop reacts to.
type Key uint8

const (
	KeyNone Key = iota
	KeyDay
	KeyWeek
	KeyMonth
	KeySave
	KeyCollapseAll
	KeyExpandAll
)

// Input is what a viewer collected during one PollEvents call.
type Input struct {
	Clicked bool
	X, Y    float64 // click position in surface pixels
	Key     Key
}

// Viewer is an interactive backend: a window that shows a Surface and reports
// clicks and key presses.
type Viewer interface {
	// Init opens the window.
	Init(config WindowConfig) error

	// Surface returns the surface charts should paint on. Valid after Init.
	Surface() Surface

	// Fit adapts the window to the surface's current size.
	Fit()

	// PollEvents collects input since the last call.
	PollEvents() Input

	// ShouldClose reports whether the user asked to close the window.
	ShouldClose() bool

	// BeginFrame performs setup before drawing.
	BeginFrame()

	// Present draws the surface contents into the frame.
	Present()

	// EndFrame finishes the frame.
	EndFrame()

	// Cleanup releases backend resources and closes the window.
	Cleanup()
}
