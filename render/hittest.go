// render/hittest.go
package render

// HitTest returns the index of every box containing the surface point (x, y).
// The point is shifted into content space by pad first. All boxes are visited,
// so overlapping boxes all match.
func HitTest(boxes []Rect, x, y, pad float64) []int {
	cx, cy := x-pad, y-pad
	var hits []int
	for i, b := range boxes {
		if b.Contains(cx, cy) {
			hits = append(hits, i)
		}
	}
	return hits
}
