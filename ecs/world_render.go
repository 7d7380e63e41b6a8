package ecs

import "github.com/hajimehoshi/ebiten/v2"

// RenderSystem is a System that also paints to the screen. Update still runs
// with the rest of the frame's systems; Draw runs once per rendered frame.
type RenderSystem interface {
	System
	Draw(w *World, screen *ebiten.Image)
}

// Draw hands the screen to every RenderSystem, in the order the systems were
// added, so an overlay added after the sprite renderer draws on top of it.
func (w *World) Draw(screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	for _, s := range w.scheduler.Systems() {
		if rs, ok := s.(RenderSystem); ok {
			rs.Draw(w, screen)
		}
	}
}
