package component

// Transform is the centre of a paddle or the ball in screen pixels. Sprites
// are drawn centred on it and bounding boxes are measured from it.
type Transform struct {
	X float64
	Y float64
}

// Translate moves the transform by (dx, dy).
func (t *Transform) Translate(dx, dy float64) {
	t.X += dx
	t.Y += dy
}

var TransformComponent = NewComponent[Transform]()
