package world_test

import (
	"testing"

	"github.com/plus3/platformer/assets"
	"github.com/plus3/platformer/ecs"
	"github.com/plus3/platformer/vec"
	"github.com/plus3/platformer/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWorld(t *testing.T) *world.World {
	t.Helper()
	opts := world.DefaultOptions()
	opts.Capacity = 64
	return world.New(opts, assets.Default(), nil)
}

func TestGridToMidPixel(t *testing.T) {
	w := newWorld(t)
	coin, err := w.SpawnDecoration("Coin", 2, 3)
	require.NoError(t, err)

	want := vec.New(2*64+16, 768-3*64-16)
	assert.Equal(t, want, w.GridToMidPixel(2, 3, coin))
	assert.Equal(t, want, w.GridToMidPixel(2, 3, coin), "same cell, same position")
	assert.Equal(t, want, ecs.MustGet[ecs.Transform](w.Pool, coin).Pos)

	again, err := w.SpawnDecoration("Coin", 2, 3)
	require.NoError(t, err)
	assert.Equal(t, want, ecs.MustGet[ecs.Transform](w.Pool, again).Pos, "loading twice places identically")
}

func TestPixelToGrid(t *testing.T) {
	w := newWorld(t)
	tile, err := w.SpawnTile("Brick", 5, 2)
	require.NoError(t, err)

	gx, gy := w.PixelToGrid(ecs.MustGet[ecs.Transform](w.Pool, tile).Pos)
	assert.Equal(t, 5, gx)
	assert.Equal(t, 2, gy)

	gx, gy = w.PixelToGrid(vec.New(-1, 769))
	assert.Equal(t, -1, gx)
	assert.Equal(t, -1, gy)
}

func TestSpawnTile(t *testing.T) {
	w := newWorld(t)

	tile, err := w.SpawnTile("Ground", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, ecs.TagTile, w.Pool.Tag(tile))
	assert.Equal(t, vec.New(32, 736), ecs.MustGet[ecs.Transform](w.Pool, tile).Pos)
	assert.Equal(t, vec.New(32, 32), ecs.MustGet[ecs.BoundingBox](w.Pool, tile).HalfSize)
	assert.True(t, ecs.Has[ecs.Draggable](w.Pool, tile))
	assert.True(t, ecs.MustGet[ecs.Animation](w.Pool, tile).Repeat)

	_, err = w.SpawnTile("Nope", 0, 0)
	assert.ErrorIs(t, err, world.ErrUnknownAnimation)

	dec, err := w.SpawnDecoration("Block", 1, 1)
	require.NoError(t, err)
	assert.False(t, ecs.Has[ecs.BoundingBox](w.Pool, dec), "decorations do not collide")
}

func TestSpawnPlayer(t *testing.T) {
	w := newWorld(t)
	w.Player.X, w.Player.Y = 1, 1
	w.Player.Gravity = 2

	first, err := w.SpawnPlayer()
	require.NoError(t, err)
	assert.Equal(t, first, w.PlayerEntity)
	assert.Equal(t, ecs.StateAir, ecs.MustGet[ecs.State](w.Pool, first).State)
	assert.Equal(t, float32(2), ecs.MustGet[ecs.Gravity](w.Pool, first).Gravity)
	assert.Equal(t, vec.New(24, 24), ecs.MustGet[ecs.BoundingBox](w.Pool, first).HalfSize)
	assert.True(t, ecs.MustGet[ecs.Input](w.Pool, first).CanShoot)
	assert.True(t, ecs.MustGet[ecs.Animation](w.Pool, first).Anim.Is(assets.AnimAir))
	w.Manager.Update()

	second, err := w.SpawnPlayer()
	require.NoError(t, err)
	assert.False(t, w.Pool.IsActive(first), "respawn replaces the old player")
	w.Manager.Update()
	assert.Equal(t, []ecs.Entity{second}, w.Manager.EntitiesByTag(ecs.TagPlayer))

	third, err := w.SpawnPlayer()
	require.NoError(t, err)
	fourth, err := w.SpawnPlayer()
	require.NoError(t, err)
	assert.False(t, w.Pool.IsActive(third), "pending player is replaced too")
	w.Manager.Update()
	assert.Equal(t, []ecs.Entity{fourth}, w.Manager.EntitiesByTag(ecs.TagPlayer))
}

func TestSpawnBullet(t *testing.T) {
	w := newWorld(t)
	p, err := w.SpawnPlayer()
	require.NoError(t, err)
	ecs.MustGet[ecs.Transform](w.Pool, p).Scale.X = -1

	b, err := w.SpawnBullet(p)
	require.NoError(t, err)
	bt := ecs.MustGet[ecs.Transform](w.Pool, b)
	assert.Equal(t, vec.New(-world.BulletSpeed, 0), bt.Velocity)
	assert.Equal(t, ecs.MustGet[ecs.Transform](w.Pool, p).Pos, bt.Pos)
	assert.Equal(t, world.BulletLifespan, ecs.MustGet[ecs.Lifespan](w.Pool, b).Remaining)
	assert.Equal(t, vec.New(8, 8), ecs.MustGet[ecs.BoundingBox](w.Pool, b).HalfSize)

	w.Player.Weapon = "Laser"
	_, err = w.SpawnBullet(p)
	assert.ErrorIs(t, err, world.ErrUnknownAnimation)

	tile, _ := w.SpawnDecoration("Coin", 0, 0)
	ecs.Remove[ecs.Transform](w.Pool, tile)
	_, err = w.SpawnBullet(tile)
	assert.ErrorIs(t, err, ecs.ErrMissingComponent)
}

func TestSpawnCapacity(t *testing.T) {
	opts := world.DefaultOptions()
	opts.Capacity = 1
	w := world.New(opts, nil, nil)

	_, err := w.SpawnTile("Brick", 0, 0)
	require.NoError(t, err)
	_, err = w.SpawnTile("Brick", 1, 0)
	assert.ErrorIs(t, err, ecs.ErrResourceExhausted)
}

func TestCamera(t *testing.T) {
	w := newWorld(t)
	p, _ := w.SpawnPlayer()

	tr := ecs.MustGet[ecs.Transform](w.Pool, p)
	tr.Pos.X = 100
	w.UpdateCamera()
	assert.Equal(t, float32(640), w.CameraX)
	assert.Equal(t, vec.New(10, 20), w.ScreenToWorld(vec.New(10, 20)))

	tr.Pos.X = 1000
	w.UpdateCamera()
	assert.Equal(t, float32(1000), w.CameraX)
	assert.Equal(t, vec.New(370, 20), w.ScreenToWorld(vec.New(10, 20)))
}

func TestReset(t *testing.T) {
	w := newWorld(t)
	w.SpawnPlayer()
	w.SpawnTile("Brick", 0, 0)
	w.Counters.Score = 10
	w.GoalReached = true
	w.Manager.Update()

	w.Reset()
	assert.Empty(t, w.Manager.Entities())
	assert.Equal(t, world.Counters{}, w.Counters)
	assert.False(t, w.GoalReached)
	_, ok := w.ActivePlayer()
	assert.False(t, ok)
}
