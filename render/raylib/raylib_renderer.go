// render/raylib/raylib_renderer.go
package raylib

import (
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/waozixyz/gantt/render"
)

// RaylibViewer implements render.Viewer with a raylib window. Charts paint on
// its TextureSurface, which is shown at the window origin every frame.
type RaylibViewer struct {
	config  render.WindowConfig
	surface *TextureSurface

	// scroll offset of the window into the chart, in surface pixels
	scrollX, scrollY float64
}

var _ render.Viewer = (*RaylibViewer)(nil)

// NewRaylibViewer creates a viewer; the window opens in Init.
func NewRaylibViewer() *RaylibViewer {
	return &RaylibViewer{
		config:  render.DefaultWindowConfig(),
		surface: NewTextureSurface(),
	}
}

// Init opens the raylib window according to config.
func (v *RaylibViewer) Init(config render.WindowConfig) error {
	v.config = config

	log.Printf("RaylibViewer Init: Initializing window %dx%d. Title: '%s'.",
		config.Width, config.Height, config.Title)

	if config.Resizable {
		rl.SetConfigFlags(rl.FlagWindowResizable)
	}
	rl.InitWindow(int32(config.Width), int32(config.Height), config.Title)

	fps := config.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	rl.SetTargetFPS(int32(fps))

	if !rl.IsWindowReady() {
		return fmt.Errorf("RaylibViewer Init: rl.InitWindow failed or window is not ready")
	}
	log.Println("RaylibViewer Init: Raylib window is ready.")
	return nil
}

// Surface returns the texture surface charts paint on.
func (v *RaylibViewer) Surface() render.Surface { return v.surface }

// Fit resizes the window to the chart, bounded by the current monitor. Charts
// larger than the monitor are scrolled with the mouse wheel.
func (v *RaylibViewer) Fit() {
	if !rl.IsWindowReady() {
		return
	}
	w, h := v.surface.Size()
	if w <= 0 || h <= 0 {
		return
	}
	monitor := rl.GetCurrentMonitor()
	if mw := rl.GetMonitorWidth(monitor); mw > 0 && w > mw {
		w = mw
	}
	if mh := rl.GetMonitorHeight(monitor); mh > 0 && h > mh {
		h = mh
	}
	if w != rl.GetScreenWidth() || h != rl.GetScreenHeight() {
		log.Printf("RaylibViewer Fit: Resizing window to %dx%d.", w, h)
		rl.SetWindowSize(w, h)
	}
	v.scrollBy(0, 0, w, h)
}

// PollEvents scrolls on mouse wheel input and reports a left click, in surface
// coordinates, and the first bound key pressed this frame.
func (v *RaylibViewer) PollEvents() render.Input {
	var in render.Input
	if !rl.IsWindowReady() {
		return in
	}
	if wheel := rl.GetMouseWheelMoveV(); wheel.X != 0 || wheel.Y != 0 {
		v.scrollBy(-float64(wheel.X)*scrollStep, -float64(wheel.Y)*scrollStep, rl.GetScreenWidth(), rl.GetScreenHeight())
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		pos := rl.GetMousePosition()
		in.Clicked = true
		in.X, in.Y = float64(pos.X)+v.scrollX, float64(pos.Y)+v.scrollY
	}
	in.Key = firstPressed(keyBindings, rl.IsKeyPressed)
	return in
}

// ShouldClose returns true if the raylib window has been signaled to close.
func (v *RaylibViewer) ShouldClose() bool {
	return rl.IsWindowReady() && rl.WindowShouldClose()
}

// BeginFrame prepares raylib for a new frame of drawing.
func (v *RaylibViewer) BeginFrame() {
	rl.BeginDrawing()
	rl.ClearBackground(v.config.DefaultBg)
}

// Present draws the chart surface at the current scroll offset.
func (v *RaylibViewer) Present() {
	v.surface.Present(float32(-v.scrollX), float32(-v.scrollY))
}

// EndFrame finalizes the drawing for the current frame.
func (v *RaylibViewer) EndFrame() {
	rl.EndDrawing()
}

// Cleanup unloads the render texture and closes the raylib window.
func (v *RaylibViewer) Cleanup() {
	v.surface.Unload()
	if rl.IsWindowReady() {
		log.Println("RaylibViewer Cleanup: Closing Raylib window...")
		rl.CloseWindow()
	} else {
		log.Println("RaylibViewer Cleanup: Raylib window was already closed or not initialized.")
	}
}

