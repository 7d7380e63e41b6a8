package system

import (
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
	"github.com/milk9111/pong/prefabs"
)

// CollisionSystem reflects the ball's velocity when it touches any paddle.
// The velocity is negated at most once per frame and the ball is not pushed
// out, so a ball that is still overlapping next frame reflects again.
type CollisionSystem struct {
	mode prefabs.CollisionMode
}

func NewCollisionSystem(mode prefabs.CollisionMode) *CollisionSystem {
	if mode == "" {
		mode = prefabs.CollisionCenter
	}
	return &CollisionSystem{mode: mode}
}

func (s *CollisionSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ball, ok := w.First(component.BallTagComponent.Kind())
	if !ok {
		return
	}
	vel, ok := ecs.Get(w, ball, component.VelocityComponent)
	if !ok {
		return
	}

	for _, paddle := range w.Query(component.PaddleTagComponent.Kind()) {
		if !s.hit(w, ball, paddle) {
			continue
		}
		vel.Reflect()
		w.Events().Push(ecs.Event{
			Type: ecs.EventBounce,
			Data: ecs.BounceEvent{Ball: ball, Paddle: paddle},
		})
		return
	}
}

func (s *CollisionSystem) hit(w *ecs.World, ball, paddle ecs.Entity) bool {
	if s.mode == prefabs.CollisionAABB {
		return ecs.Overlaps(w, ball, paddle)
	}
	return ecs.Intersects(w, ball, paddle)
}
