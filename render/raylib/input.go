// render/raylib/input.go
package raylib

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/waozixyz/gantt/render"
)

// scrollStep is how many pixels one mouse wheel notch scrolls.
const scrollStep = 40.0

type keyBinding struct {
	key    int32
	mapped render.Key
}

// keyBindings maps raylib key codes to viewer keys. Earlier entries win when
// several keys are pressed in the same frame.
var keyBindings = []keyBinding{
	{rl.KeyD, render.KeyDay},
	{rl.KeyW, render.KeyWeek},
	{rl.KeyM, render.KeyMonth},
	{rl.KeyC, render.KeyCollapseAll},
	{rl.KeyE, render.KeyExpandAll},
	{rl.KeyS, render.KeySave},
}

// firstPressed returns the first binding whose key is pressed, or KeyNone.
func firstPressed(bindings []keyBinding, pressed func(key int32) bool) render.Key {
	for _, b := range bindings {
		if pressed(b.key) {
			return b.mapped
		}
	}
	return render.KeyNone
}

// scrollBy moves the scroll offset by (dx, dy) and keeps the view of size
// viewW x viewH inside the chart.
func (v *RaylibViewer) scrollBy(dx, dy float64, viewW, viewH int) {
	w, h := v.surface.Size()
	v.scrollX = clampScroll(v.scrollX+dx, w, viewW)
	v.scrollY = clampScroll(v.scrollY+dy, h, viewH)
}

func clampScroll(offset float64, content, view int) float64 {
	limit := float64(content - view)
	if offset > limit {
		offset = limit
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
