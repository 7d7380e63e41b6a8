package common

import "math"

type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Intersects is the conventional overlap test for rectangles anchored at
// their top-left corner.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// CenterIntersects treats X/Y as centres and Width/Height as the reach of r
// along each axis. Only r's extent is considered, so the test is not
// symmetric when the two rects differ in size.
func (r Rect) CenterIntersects(other Rect) bool {
	return math.Abs(other.X-r.X) < r.Width && math.Abs(other.Y-r.Y) < r.Height
}

// Centered returns a rect of the given size whose centre is (cx, cy).
func Centered(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, Width: w, Height: h}
}
