package systems_test

import (
	"testing"

	"github.com/plus3/platformer/assets"
	"github.com/plus3/platformer/ecs"
	"github.com/plus3/platformer/systems"
	"github.com/plus3/platformer/vec"
	"github.com/plus3/platformer/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimationPlayerState(t *testing.T) {
	w := newWorld(t)
	w.Options.States = world.StatesFour
	p := spawnPlayer(t, w)
	w.Manager.Update()

	sys := &systems.Animation{World: w}
	st := ecs.MustGet[ecs.State](w.Pool, p)
	anim := func() *ecs.Animation { return ecs.MustGet[ecs.Animation](w.Pool, p) }

	sys.Execute(frameOf(w))
	assert.True(t, anim().Anim.Is(assets.AnimAir))
	assert.Equal(t, 1, anim().Anim.Ticks(), "unchanged state keeps playing")

	st.State = ecs.StateRun
	sys.Execute(frameOf(w))
	assert.True(t, anim().Anim.Is(assets.AnimRun))
	assert.Equal(t, ecs.StateRun, st.Previous)
	assert.Equal(t, 1, anim().Anim.Ticks(), "swapped in fresh and advanced once")

	sys.Execute(frameOf(w))
	assert.Equal(t, 2, anim().Anim.Ticks())

	st.State = ecs.StateStand
	sys.Execute(frameOf(w))
	assert.True(t, anim().Anim.Is(assets.AnimStand))

	st.State = ecs.StateAir
	sys.Execute(frameOf(w))
	assert.True(t, anim().Anim.Is(assets.AnimAir))
}

func TestAnimationTwoStateFollowsInput(t *testing.T) {
	w := newWorld(t)
	p := spawnPlayer(t, w)
	w.Manager.Update()

	sys := &systems.Animation{World: w}
	st := ecs.MustGet[ecs.State](w.Pool, p)
	in := ecs.MustGet[ecs.Input](w.Pool, p)

	st.State = ecs.StateGround
	sys.Execute(frameOf(w))
	assert.True(t, ecs.MustGet[ecs.Animation](w.Pool, p).Anim.Is(assets.AnimStand))

	in.Right = true
	sys.Execute(frameOf(w))
	assert.True(t, ecs.MustGet[ecs.Animation](w.Pool, p).Anim.Is(assets.AnimRun))
}

func TestAnimationOneShot(t *testing.T) {
	w := newWorld(t)
	w.Catalog.Register(assets.Animation{Name: "Poof", FrameCount: 2, Speed: 1, Size: vec.New(8, 8)})

	e, err := w.SpawnDecoration("Poof", 0, 0)
	require.NoError(t, err)
	ecs.MustGet[ecs.Animation](w.Pool, e).Repeat = false

	loop, err := w.SpawnDecoration("Poof", 1, 0)
	require.NoError(t, err)
	w.Manager.Update()

	sys := &systems.Animation{World: w}
	sys.Execute(frameOf(w))
	sys.Execute(frameOf(w))
	assert.True(t, w.Pool.IsActive(e))
	assert.True(t, ecs.MustGet[ecs.Animation](w.Pool, e).Anim.HasEnded())

	sys.Execute(frameOf(w))
	assert.False(t, w.Pool.IsActive(e))
	assert.True(t, w.Pool.IsActive(loop))
	assert.Equal(t, 1, ecs.MustGet[ecs.Animation](w.Pool, loop).Anim.Frame())
}
