package ecs

import (
	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/ecs/component"
)

// Bounds returns the collision box of e: anchored at its position and half
// as wide and tall as its rotated sprite.
func Bounds(w *World, e Entity) (common.Rect, bool) {
	t, ok := Get(w, e, component.TransformComponent)
	if !ok {
		return common.Rect{}, false
	}
	s, ok := Get(w, e, component.SpriteComponent)
	if !ok {
		return common.Rect{}, false
	}
	return common.Rect{
		X:      t.X,
		Y:      t.Y,
		Width:  s.EffectiveWidth() * 0.5,
		Height: s.EffectiveHeight() * 0.5,
	}, true
}

// Footprint returns the full on-screen rectangle of e, top-left anchored.
func Footprint(w *World, e Entity) (common.Rect, bool) {
	t, ok := Get(w, e, component.TransformComponent)
	if !ok {
		return common.Rect{}, false
	}
	s, ok := Get(w, e, component.SpriteComponent)
	if !ok {
		return common.Rect{}, false
	}
	return common.Centered(t.X, t.Y, s.EffectiveWidth(), s.EffectiveHeight()), true
}

// Intersects tests other's bounds against self's bounds using self's reach.
func Intersects(w *World, self, other Entity) bool {
	a, ok := Bounds(w, self)
	if !ok {
		return false
	}
	b, ok := Bounds(w, other)
	if !ok {
		return false
	}
	return a.CenterIntersects(b)
}

// Overlaps is the conventional test over both full footprints.
func Overlaps(w *World, a, b Entity) bool {
	ra, ok := Footprint(w, a)
	if !ok {
		return false
	}
	rb, ok := Footprint(w, b)
	if !ok {
		return false
	}
	return ra.Intersects(rb)
}
