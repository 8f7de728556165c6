package ecs

import "strconv"

// Entity is a handle made of a 32-bit slot id in the low half and the slot's
// generation in the high half. Destroying an entity bumps its generation, so
// stale handles stop matching once the slot is reused. Zero is never handed
// out.
type Entity uint64

type (
	entityID   uint32
	generation uint32
)

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<32 | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(e & 0xffffffff)
}

func (e Entity) generation() generation {
	return generation(e >> 32)
}

// String formats the handle as "id/generation".
func (e Entity) String() string {
	return strconv.FormatUint(uint64(e.id()), 10) + "/" + strconv.FormatUint(uint64(e.generation()), 10)
}

func (e Entity) Valid() bool {
	return e.id() != 0
}
