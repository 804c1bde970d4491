package ecs

import (
	"sort"
	"strconv"
)

// Entity packs a generation in the high 32 bits and an id in the low 32.
type Entity uint64

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

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e.id()), 10) + "v" + strconv.FormatUint(uint64(e.generation()), 10)
}

// ID is the slot index without the generation. Slots are reused.
func (e Entity) ID() uint32 {
	return uint32(e.id())
}

func (e Entity) Valid() bool {
	return e.id() > 0
}

func sortEntities(es []Entity) {
	sort.Slice(es, func(i, j int) bool { return es[i].id() < es[j].id() })
}
