package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

// RenderSystem draws every sprite centred on its transform, rotated about
// half its effective size.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Update(w *ecs.World) {}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		return layerOf(w, entities[i]) < layerOf(w, entities[j])
	})

	for _, e := range entities {
		t, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}
		s, ok := ecs.Get(w, e, component.SpriteComponent)
		if !ok || s.Image == nil {
			continue
		}
		screen.DrawImage(s.Image, DrawOptions(*t, *s))
	}
}

// DrawOptions builds the transform for one sprite: shift by the origin,
// rotate, then move to the entity position.
func DrawOptions(t component.Transform, s component.Sprite) *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}
	ox, oy := s.Origin()
	op.GeoM.Translate(-ox, -oy)
	op.GeoM.Rotate(s.Angle())
	op.GeoM.Translate(t.X, t.Y)
	return op
}

func layerOf(w *ecs.World, e ecs.Entity) int {
	if layer, ok := ecs.Get(w, e, component.RenderLayerComponent); ok {
		return layer.Index
	}
	return component.LayerPaddle
}
