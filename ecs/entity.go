package ecs

import "fmt"

// Entity is a handle to a paddle or the ball. The low 32 bits hold the slot
// id and the high 32 bits the slot's generation, so a handle taken before a
// slot is reused stops resolving.
type Entity uint64

// NoEntity is the handle a Game keeps for entities its variant does not
// spawn. No world ever reports it alive.
const NoEntity Entity = 0

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

// String renders the handle as "#id.gen", or "none" for NoEntity.
func (e Entity) String() string {
	if e.id() == 0 {
		return "none"
	}
	return fmt.Sprintf("#%d.%d", e.id(), e.generation())
}
