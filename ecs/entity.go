package ecs

// Entity is a handle into a Pool. It encodes the slot index (lower 32 bits)
// and the slot generation at allocation time (upper 32 bits). Entities carry
// no state of their own; copying one never copies component data.
type Entity uint64

// NewEntity creates an Entity from a slot index and generation
func NewEntity(index uint32, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index extracts the slot index from the entity
func (e Entity) Index() uint32 {
	return uint32(e & 0xFFFFFFFF)
}

// Generation extracts the allocation generation from the entity
func (e Entity) Generation() uint32 {
	return uint32(e >> 32)
}

// IsZero reports whether e is the zero handle, which never refers to a live
// entity because generations start at one.
func (e Entity) IsZero() bool {
	return e == 0
}
