package systems

import (
	"github.com/plus3/platformer/ecs"
	"github.com/plus3/platformer/physics"
	"github.com/plus3/platformer/vec"
	"github.com/plus3/platformer/world"
)

// Drag moves the entity being dragged with the pointer. At most one entity
// is dragged at a time.
type Drag struct {
	World *world.World
}

// Click handles a pointer click at a world position. A click while dragging
// drops the dragged entity onto the grid cell under the pointer; otherwise
// the first draggable entity under the pointer is picked up. It reports the
// entity released or picked, if any.
func (s *Drag) Click(pos vec.Vec2) (ecs.Entity, bool) {
	w := s.World
	if e, d, ok := s.dragging(); ok {
		d.Dragging = false
		gx, gy := w.PixelToGrid(pos)
		if t, ok := ecs.Get[ecs.Transform](w.Pool, e); ok {
			t.Pos = w.GridToMidPixel(float32(gx), float32(gy), e)
		}
		return e, true
	}

	for _, e := range w.Manager.Entities() {
		if !w.Pool.IsActive(e) {
			continue
		}
		d, ok := ecs.Get[ecs.Draggable](w.Pool, e)
		if !ok || !physics.IsInside(w.Pool, pos, e) {
			continue
		}
		d.Dragging = true
		return e, true
	}
	return 0, false
}

// Dragging returns the entity currently being dragged.
func (s *Drag) Dragging() (ecs.Entity, bool) {
	e, _, ok := s.dragging()
	return e, ok
}

func (s *Drag) dragging() (ecs.Entity, *ecs.Draggable, bool) {
	w := s.World
	for _, e := range w.Manager.Entities() {
		if !w.Pool.IsActive(e) {
			continue
		}
		if d, ok := ecs.Get[ecs.Draggable](w.Pool, e); ok && d.Dragging {
			return e, d, true
		}
	}
	return 0, nil, false
}

func (s *Drag) Execute(frame *ecs.UpdateFrame) {
	e, _, ok := s.dragging()
	if !ok {
		return
	}
	if t, ok := ecs.Get[ecs.Transform](frame.Pool, e); ok {
		t.Pos = s.World.Cursor
	}
}
