package ecs

import (
	"fmt"
)

// DefaultCapacity is the slot count used when NewPool is given no capacity.
const DefaultCapacity = 100000

type slotState uint8

const (
	slotFree slotState = iota
	slotActive
	slotDying
)

type slot struct {
	generation uint32
	tag        Tag
	state      slotState
}

// Pool is the entity memory pool. It owns the component data of every
// entity as one fixed-size column per component kind, indexed by slot.
//
// A destroyed entity keeps its slot reserved until Sweep, so a slot index is
// never handed out again while a handle to the previous occupant can still
// sit in an iteration list.
type Pool struct {
	slots    []slot
	columns  [kindCount]columnStore
	dying    []uint32
	freeHint int
	active   int
}

// NewPool allocates a pool with room for capacity entities.
func NewPool(capacity int) *Pool {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	p := &Pool{
		slots: make([]slot, capacity),
	}
	p.columns[KindTransform] = newColumn[Transform](capacity)
	p.columns[KindLifespan] = newColumn[Lifespan](capacity)
	p.columns[KindInput] = newColumn[Input](capacity)
	p.columns[KindBoundingBox] = newColumn[BoundingBox](capacity)
	p.columns[KindAnimation] = newColumn[Animation](capacity)
	p.columns[KindGravity] = newColumn[Gravity](capacity)
	p.columns[KindState] = newColumn[State](capacity)
	p.columns[KindDraggable] = newColumn[Draggable](capacity)
	return p
}

// Create allocates the lowest free slot for a new entity with the given tag.
// Every component of the slot starts absent.
func (p *Pool) Create(tag Tag) (Entity, error) {
	if !tag.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidTag, tag)
	}

	index := -1
	for i := p.freeHint; i < len(p.slots); i++ {
		if p.slots[i].state == slotFree {
			index = i
			break
		}
	}
	if index < 0 {
		p.freeHint = len(p.slots)
		return 0, ErrResourceExhausted
	}

	s := &p.slots[index]
	s.generation++
	if s.generation == 0 {
		s.generation = 1
	}
	s.tag = tag
	s.state = slotActive

	for _, col := range p.columns {
		col.Clear(index)
	}

	p.freeHint = index + 1
	p.active++
	return NewEntity(uint32(index), s.generation), nil
}

// Destroy marks the entity inactive. It is a no-op for inactive or stale
// handles. The slot is reclaimed by the next Sweep.
func (p *Pool) Destroy(e Entity) {
	if !p.IsActive(e) {
		return
	}
	p.slots[e.Index()].state = slotDying
	p.dying = append(p.dying, e.Index())
	p.active--
}

// Sweep returns every slot destroyed since the last sweep to the free list.
func (p *Pool) Sweep() {
	for _, idx := range p.dying {
		p.slots[idx].state = slotFree
		if int(idx) < p.freeHint {
			p.freeHint = int(idx)
		}
	}
	p.dying = p.dying[:0]
}

// IsActive reports whether e refers to a live, non-destroyed entity.
func (p *Pool) IsActive(e Entity) bool {
	idx := e.Index()
	if int(idx) >= len(p.slots) {
		return false
	}
	s := p.slots[idx]
	return s.state == slotActive && s.generation == e.Generation()
}

// owns reports whether e is the current occupant of its slot, destroyed or not.
func (p *Pool) owns(e Entity) bool {
	idx := e.Index()
	if int(idx) >= len(p.slots) {
		return false
	}
	s := p.slots[idx]
	return s.state != slotFree && s.generation == e.Generation()
}

// Tag returns the tag the entity was created with.
func (p *Pool) Tag(e Entity) Tag {
	if !p.owns(e) {
		return tagCount
	}
	return p.slots[e.Index()].tag
}

// Len returns the number of active entities.
func (p *Pool) Len() int {
	return p.active
}

// Cap returns the slot capacity.
func (p *Pool) Cap() int {
	return len(p.slots)
}

// HasKind is the untyped form of Has, used by tooling.
func (p *Pool) HasKind(e Entity, k Kind) bool {
	if k >= kindCount || !p.owns(e) {
		return false
	}
	return p.columns[k].Has(int(e.Index()))
}

// ComponentOf returns a pointer to the entity's component of kind k, or nil.
func (p *Pool) ComponentOf(e Entity, k Kind) any {
	if !p.HasKind(e, k) {
		return nil
	}
	return p.columns[k].get(int(e.Index()))
}

// KindsOf lists the component kinds present on the entity.
func (p *Pool) KindsOf(e Entity) []Kind {
	var kinds []Kind
	for k := range kindCount {
		if p.HasKind(e, k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

func columnOf[T Component](p *Pool) *column[T] {
	var zero T
	return p.columns[zero.kind()].(*column[T])
}

// Add constructs or overwrites the entity's T component and returns a
// pointer to the stored value. It returns nil for stale handles.
func Add[T Component](p *Pool, e Entity, c T) *T {
	if !p.owns(e) {
		return nil
	}
	return columnOf[T](p).Set(int(e.Index()), c)
}

// Remove marks the entity's T component absent without releasing storage.
func Remove[T Component](p *Pool, e Entity) {
	if !p.owns(e) {
		return
	}
	columnOf[T](p).Clear(int(e.Index()))
}

// Has reports whether the entity currently has a T component.
func Has[T Component](p *Pool, e Entity) bool {
	if !p.owns(e) {
		return false
	}
	return columnOf[T](p).Has(int(e.Index()))
}

// Get returns the entity's T component, or false if it is absent.
func Get[T Component](p *Pool, e Entity) (*T, bool) {
	if !p.owns(e) {
		return nil, false
	}
	return columnOf[T](p).Get(int(e.Index()))
}

// MustGet is Get for callers that have already established presence.
// It panics with ErrMissingComponent otherwise.
func MustGet[T Component](p *Pool, e Entity) *T {
	c, ok := Get[T](p, e)
	if !ok {
		var zero T
		panic(fmt.Errorf("%w: %s on entity %d", ErrMissingComponent, zero.kind(), e.Index()))
	}
	return c
}
