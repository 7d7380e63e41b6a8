package ecs

import "github.com/milk9111/pong/ecs/component"

// Add stores a copy of value on e, replacing any previous component of the
// same kind.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value T) error {
	if w == nil || !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	if !handle.Kind().Valid() {
		return component.ErrInvalidComponentKind
	}
	v := value
	w.store(handle.Kind().ID()).Set(int(e.id()), &v)
	return nil
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if w == nil || !w.IsAlive(e) {
		return false
	}
	s := w.stores[handle.Kind().ID()]
	if !s.Has(int(e.id())) {
		return false
	}
	s.Remove(int(e.id()))
	return true
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if w == nil || !w.IsAlive(e) {
		return false
	}
	return w.stores[handle.Kind().ID()].Has(int(e.id()))
}

// Get returns a pointer to the stored component; writes through it are
// visible to every later reader.
func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	if w == nil || !w.IsAlive(e) {
		return nil, false
	}
	value, ok := w.stores[handle.Kind().ID()].Get(int(e.id())).(*T)
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

// ForEach calls fn for every entity holding the component, in id order.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	for _, e := range w.Query(handle.Kind()) {
		if v, ok := Get(w, e, handle); ok {
			fn(e, v)
		}
	}
}
