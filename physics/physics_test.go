package physics_test

import (
	"testing"

	"github.com/plus3/platformer/assets"
	"github.com/plus3/platformer/ecs"
	"github.com/plus3/platformer/physics"
	"github.com/plus3/platformer/vec"
	"github.com/stretchr/testify/assert"
)

func box(p *ecs.Pool, pos vec.Vec2, half float32) ecs.Entity {
	e, _ := p.Create(ecs.TagTile)
	ecs.Add(p, e, ecs.NewTransform(pos))
	ecs.Add(p, e, ecs.NewBoundingBox(vec.New(half*2, half*2)))
	return e
}

func TestOverlap(t *testing.T) {
	tests := []struct {
		name       string
		a, b       vec.Vec2
		want       vec.Vec2
		intersects bool
	}{
		{"intersecting", vec.New(0, 0), vec.New(15, 0), vec.New(5, 20), true},
		{"separated on x", vec.New(0, 0), vec.New(25, 0), vec.New(-5, 20), false},
		{"touching edges", vec.New(0, 0), vec.New(20, 0), vec.New(0, 20), false},
		{"diagonal", vec.New(0, 0), vec.New(-12, 18), vec.New(8, 2), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ecs.NewPool(4)
			a := box(p, tt.a, 10)
			b := box(p, tt.b, 10)

			ab := physics.Overlap(p, a, b)
			ba := physics.Overlap(p, b, a)
			assert.Equal(t, tt.want, ab)
			assert.Equal(t, ab, ba, "overlap is symmetric")
			assert.Equal(t, tt.intersects, physics.Intersects(ab))
		})
	}
}

func TestPreviousOverlap(t *testing.T) {
	p := ecs.NewPool(4)
	a := box(p, vec.New(0, 0), 10)
	b := box(p, vec.New(40, 0), 10)

	tr := ecs.MustGet[ecs.Transform](p, a)
	tr.PrevPos = tr.Pos
	tr.Pos = vec.New(25, 0)

	assert.Equal(t, vec.New(5, 20), physics.Overlap(p, a, b))
	assert.Equal(t, vec.New(-20, 20), physics.PreviousOverlap(p, a, b))
	assert.Equal(t, physics.PreviousOverlap(p, b, a), physics.PreviousOverlap(p, a, b))
}

func TestOverlapMissingComponents(t *testing.T) {
	p := ecs.NewPool(4)
	a := box(p, vec.New(0, 0), 10)

	noBox, _ := p.Create(ecs.TagTile)
	ecs.Add(p, noBox, ecs.NewTransform(vec.New(0, 0)))

	noTransform, _ := p.Create(ecs.TagTile)
	ecs.Add(p, noTransform, ecs.NewBoundingBox(vec.New(20, 20)))

	assert.Equal(t, vec.Vec2{}, physics.Overlap(p, a, noBox))
	assert.Equal(t, vec.Vec2{}, physics.Overlap(p, noTransform, a))
	assert.Equal(t, vec.Vec2{}, physics.PreviousOverlap(p, a, noBox))
	assert.False(t, physics.Intersects(physics.Overlap(p, a, noBox)))
}

func TestIsInside(t *testing.T) {
	p := ecs.NewPool(4)
	e, _ := p.Create(ecs.TagDecoration)
	ecs.Add(p, e, ecs.NewTransform(vec.New(100, 100)))
	ecs.Add(p, e, ecs.NewAnimation(assets.Animation{Name: "Block", FrameCount: 1, Size: vec.New(64, 32)}, true))

	assert.True(t, physics.IsInside(p, vec.New(100, 100), e))
	assert.True(t, physics.IsInside(p, vec.New(132, 116), e), "edges are inside")
	assert.False(t, physics.IsInside(p, vec.New(133, 100), e))
	assert.False(t, physics.IsInside(p, vec.New(100, 117), e))

	bare, _ := p.Create(ecs.TagDecoration)
	ecs.Add(p, bare, ecs.NewTransform(vec.New(100, 100)))
	assert.False(t, physics.IsInside(p, vec.New(100, 100), bare), "no animation")

	noPos, _ := p.Create(ecs.TagDecoration)
	ecs.Add(p, noPos, ecs.NewAnimation(assets.Animation{Size: vec.New(64, 64)}, true))
	assert.False(t, physics.IsInside(p, vec.Vec2{}, noPos), "no transform")
}
