package ecs

import (
	"sort"

	"github.com/milk9111/pong/ecs/component"
)

// Query returns live entities that have every given component, ordered by id.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	ids := w.store(kinds[0].ID()).Entities()
	ids = append([]int(nil), ids...)
	for _, k := range kinds[1:] {
		other := w.stores[k.ID()]
		if other == nil {
			return nil
		}
		filtered := ids[:0]
		for _, id := range ids {
			if other.Has(id) {
				filtered = append(filtered, id)
			}
		}
		ids = filtered
	}
	sort.Ints(ids)
	out := make([]Entity, 0, len(ids))
	for _, id := range ids {
		out = append(out, w.entities.current(id))
	}
	return out
}

// First returns the lowest-id entity with the given component.
func (w *World) First(kind component.Kind) (Entity, bool) {
	ents := w.Query(kind)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}
