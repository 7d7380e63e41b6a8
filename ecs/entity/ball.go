package entity

import (
	"fmt"

	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
	"github.com/milk9111/pong/prefabs"
)

// BuildBall spawns the ball moving left at speed. A zero transform centres
// it in the window. sound may be nil.
func BuildBall(w *ecs.World, spec *prefabs.BallSpec, speed float64, sound component.SoundPlayer, opts Options) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("entity: nil ball spec")
	}
	sprite, err := buildSprite(spec.Sprite, opts)
	if err != nil {
		return 0, fmt.Errorf("entity: ball: %w", err)
	}

	x, y := spec.Transform.X, spec.Transform.Y
	if x == 0 {
		x = opts.Width / 2
	}
	if y == 0 {
		y = opts.Height / 2
	}

	e := w.CreateEntity()
	if err := addAll(w, e,
		func() error { return ecs.Add(w, e, component.BallTagComponent, component.BallTag{}) },
		func() error { return ecs.Add(w, e, component.TransformComponent, component.Transform{X: x, Y: y}) },
		func() error { return ecs.Add(w, e, component.VelocityComponent, component.Velocity{X: -speed}) },
		func() error { return ecs.Add(w, e, component.SpriteComponent, sprite) },
		func() error {
			return ecs.Add(w, e, component.RenderLayerComponent, component.RenderLayer{Index: spec.RenderLayer.Index})
		},
	); err != nil {
		return 0, fmt.Errorf("entity: ball: %w", err)
	}

	if sound != nil && len(spec.Audio) > 0 {
		a := spec.Audio[0]
		volume := a.Volume
		if volume == 0 {
			volume = 1
		}
		if err := ecs.Add(w, e, component.SoundComponent, component.Sound{Name: a.Name, Player: sound, Volume: volume}); err != nil {
			return 0, fmt.Errorf("entity: ball: %w", err)
		}
	}
	return e, nil
}
