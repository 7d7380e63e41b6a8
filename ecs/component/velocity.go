package component

// Velocity is the per-frame displacement applied by the movement system.
type Velocity struct {
	X float64
	Y float64
}

// Reflect negates both axes.
func (v *Velocity) Reflect() {
	v.X = -v.X
	v.Y = -v.Y
}

var VelocityComponent = NewComponent[Velocity]()
