package entity

import (
	"fmt"

	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
	"github.com/milk9111/pong/prefabs"
)

// BuildPaddle spawns a keyboard-driven paddle. A zero y in the spec centres
// it vertically.
func BuildPaddle(w *ecs.World, spec *prefabs.PaddleSpec, speed float64, opts Options) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("entity: nil paddle spec")
	}
	up, err := ParseKey(spec.Controls.Up)
	if err != nil {
		return 0, fmt.Errorf("entity: paddle %s: %w", spec.Name, err)
	}
	down, err := ParseKey(spec.Controls.Down)
	if err != nil {
		return 0, fmt.Errorf("entity: paddle %s: %w", spec.Name, err)
	}
	sprite, err := buildSprite(spec.Sprite, opts)
	if err != nil {
		return 0, fmt.Errorf("entity: paddle %s: %w", spec.Name, err)
	}

	y := spec.Transform.Y
	if y == 0 {
		y = opts.Height / 2
	}

	e := w.CreateEntity()
	if err := addAll(w, e,
		func() error { return ecs.Add(w, e, component.PaddleTagComponent, component.PaddleTag{}) },
		func() error {
			return ecs.Add(w, e, component.TransformComponent, component.Transform{X: spec.Transform.X, Y: y})
		},
		func() error { return ecs.Add(w, e, component.SpriteComponent, sprite) },
		func() error {
			return ecs.Add(w, e, component.PaddleComponent, component.Paddle{Up: up, Down: down, Speed: speed})
		},
		func() error {
			return ecs.Add(w, e, component.RenderLayerComponent, component.RenderLayer{Index: spec.RenderLayer.Index})
		},
	); err != nil {
		return 0, fmt.Errorf("entity: paddle %s: %w", spec.Name, err)
	}
	return e, nil
}

func addAll(w *ecs.World, e ecs.Entity, adds ...func() error) error {
	for _, add := range adds {
		if err := add(); err != nil {
			w.DestroyEntity(e)
			return err
		}
	}
	return nil
}
