package system

import (
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

// MovementSystem adds each entity's velocity to its position.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.VelocityComponent, func(e ecs.Entity, v *component.Velocity) {
		t, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			return
		}
		t.Translate(v.X, v.Y)
	})
}
