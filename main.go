package main

import (
	"github.com/waozixyz/gantt/internal/app"
	"github.com/waozixyz/gantt/render/raylib"
)

// main opens the task data file given by -file in a raylib window.
// Click a group label to collapse or expand it; D/W/M switch the column unit,
// C/E collapse or expand every group and S saves a PNG next to the data file.
func main() {
	app.Run(raylib.NewRaylibViewer())
}
