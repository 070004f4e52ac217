// Package physics provides the axis-aligned box queries used by collision
// resolution and pointer hit-testing.
//
// All queries soft-fail: an entity missing a required component yields a
// zero overlap or a false containment result.
package physics

import (
	"github.com/plus3/platformer/ecs"
	"github.com/plus3/platformer/vec"
)

// Overlap returns the per-axis penetration of the bounding boxes of a and b
// at their current positions. Both components are positive iff the boxes
// intersect.
func Overlap(p *ecs.Pool, a, b ecs.Entity) vec.Vec2 {
	return overlap(p, a, b, func(t *ecs.Transform) vec.Vec2 { return t.Pos })
}

// PreviousOverlap is Overlap evaluated at the positions recorded by the last
// movement pass.
func PreviousOverlap(p *ecs.Pool, a, b ecs.Entity) vec.Vec2 {
	return overlap(p, a, b, func(t *ecs.Transform) vec.Vec2 { return t.PrevPos })
}

func overlap(p *ecs.Pool, a, b ecs.Entity, pos func(*ecs.Transform) vec.Vec2) vec.Vec2 {
	ta, ok := ecs.Get[ecs.Transform](p, a)
	if !ok {
		return vec.Vec2{}
	}
	tb, ok := ecs.Get[ecs.Transform](p, b)
	if !ok {
		return vec.Vec2{}
	}
	ba, ok := ecs.Get[ecs.BoundingBox](p, a)
	if !ok {
		return vec.Vec2{}
	}
	bb, ok := ecs.Get[ecs.BoundingBox](p, b)
	if !ok {
		return vec.Vec2{}
	}

	delta := pos(ta).Sub(pos(tb)).Abs()
	return ba.HalfSize.Add(bb.HalfSize).Sub(delta)
}

// Intersects reports whether an overlap vector describes intersecting boxes.
func Intersects(o vec.Vec2) bool {
	return o.X > 0 && o.Y > 0
}

// IsInside reports whether point lies within the half-extent of e's current
// animation frame, centred on its position. Edges count as inside.
func IsInside(p *ecs.Pool, point vec.Vec2, e ecs.Entity) bool {
	anim, ok := ecs.Get[ecs.Animation](p, e)
	if !ok {
		return false
	}
	t, ok := ecs.Get[ecs.Transform](p, e)
	if !ok {
		return false
	}

	half := anim.Anim.HalfSize()
	delta := t.Pos.Sub(point).Abs()
	return delta.X <= half.X && delta.Y <= half.Y
}
