package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

// KeySource reports whether a key is held this frame.
type KeySource interface {
	IsKeyPressed(key ebiten.Key) bool
}

// EbitenKeys reads the live keyboard.
type EbitenKeys struct{}

func (EbitenKeys) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// PaddleInputSystem moves paddles vertically while their keys are held.
// Paddles are not clamped to the window.
type PaddleInputSystem struct {
	keys KeySource
}

func NewPaddleInputSystem(keys KeySource) *PaddleInputSystem {
	if keys == nil {
		keys = EbitenKeys{}
	}
	return &PaddleInputSystem{keys: keys}
}

func (s *PaddleInputSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach(w, component.PaddleComponent, func(e ecs.Entity, p *component.Paddle) {
		t, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			return
		}
		if s.keys.IsKeyPressed(p.Up) {
			t.Translate(0, -p.Speed)
		}
		if s.keys.IsKeyPressed(p.Down) {
			t.Translate(0, p.Speed)
		}
	})
}
