package ecs_test

import (
	"testing"

	"github.com/plus3/platformer/ecs"
	"github.com/plus3/platformer/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolCreate(t *testing.T) {
	pool := ecs.NewPool(4)

	t.Run("lowest free slot", func(t *testing.T) {
		a, err := pool.Create(ecs.TagTile)
		require.NoError(t, err)
		b, err := pool.Create(ecs.TagPlayer)
		require.NoError(t, err)

		assert.Equal(t, uint32(0), a.Index())
		assert.Equal(t, uint32(1), b.Index())
		assert.Equal(t, ecs.TagTile, pool.Tag(a))
		assert.Equal(t, ecs.TagPlayer, pool.Tag(b))
		assert.Equal(t, 2, pool.Len())
		assert.Equal(t, 4, pool.Cap())
	})

	t.Run("invalid tag", func(t *testing.T) {
		_, err := pool.Create(ecs.Tag(200))
		assert.ErrorIs(t, err, ecs.ErrInvalidTag)
	})

	t.Run("exhausted", func(t *testing.T) {
		_, err := pool.Create(ecs.TagTile)
		require.NoError(t, err)
		_, err = pool.Create(ecs.TagTile)
		require.NoError(t, err)

		_, err = pool.Create(ecs.TagTile)
		assert.ErrorIs(t, err, ecs.ErrResourceExhausted)
		assert.Equal(t, 4, pool.Len())
	})
}

func TestPoolComponents(t *testing.T) {
	pool := ecs.NewPool(8)
	e, err := pool.Create(ecs.TagPlayer)
	require.NoError(t, err)

	assert.False(t, ecs.Has[ecs.Transform](pool, e))
	assert.Empty(t, pool.KindsOf(e))

	tr := ecs.Add(pool, e, ecs.NewTransform(vec.New(3, 4)))
	require.NotNil(t, tr)
	tr.Velocity = vec.New(1, 0)

	got, ok := ecs.Get[ecs.Transform](pool, e)
	require.True(t, ok)
	assert.Equal(t, vec.New(3, 4), got.Pos)
	assert.Equal(t, vec.New(1, 0), got.Velocity, "Add returns a pointer into the store")
	assert.Equal(t, vec.New(1, 1), got.Scale)

	ecs.Add(pool, e, ecs.NewBoundingBox(vec.New(10, 20)))
	assert.Equal(t, []ecs.Kind{ecs.KindTransform, ecs.KindBoundingBox}, pool.KindsOf(e))
	assert.True(t, pool.HasKind(e, ecs.KindBoundingBox))
	assert.IsType(t, &ecs.BoundingBox{}, pool.ComponentOf(e, ecs.KindBoundingBox))
	assert.Nil(t, pool.ComponentOf(e, ecs.KindGravity))

	ecs.Add(pool, e, ecs.NewTransform(vec.New(9, 9)))
	assert.Equal(t, vec.New(9, 9), ecs.MustGet[ecs.Transform](pool, e).Pos, "Add overwrites")

	ecs.Remove[ecs.Transform](pool, e)
	assert.False(t, ecs.Has[ecs.Transform](pool, e))
	_, ok = ecs.Get[ecs.Transform](pool, e)
	assert.False(t, ok)
	assert.True(t, ecs.Has[ecs.BoundingBox](pool, e))

	assert.PanicsWithError(t, "missing component: Transform on entity 0", func() {
		ecs.MustGet[ecs.Transform](pool, e)
	})
}

func TestPoolStaleHandles(t *testing.T) {
	pool := ecs.NewPool(2)
	old, err := pool.Create(ecs.TagBullet)
	require.NoError(t, err)
	ecs.Add(pool, old, ecs.NewLifespan(10))

	pool.Destroy(old)
	pool.Destroy(old)
	assert.False(t, pool.IsActive(old))
	assert.Equal(t, 0, pool.Len())

	// components survive until the slot is swept
	assert.True(t, ecs.Has[ecs.Lifespan](pool, old))

	pool.Sweep()
	assert.False(t, ecs.Has[ecs.Lifespan](pool, old))

	fresh, err := pool.Create(ecs.TagTile)
	require.NoError(t, err)
	assert.Equal(t, old.Index(), fresh.Index())
	assert.NotEqual(t, old.Generation(), fresh.Generation())

	assert.False(t, pool.IsActive(old))
	assert.False(t, ecs.Has[ecs.Lifespan](pool, fresh), "reused slot starts empty")
	assert.Nil(t, ecs.Add(pool, old, ecs.NewLifespan(1)))
	assert.False(t, ecs.Has[ecs.Lifespan](pool, fresh))

	pool.Destroy(old)
	assert.True(t, pool.IsActive(fresh), "destroying a stale handle is a no-op")
}

func TestPoolSlotReusedOnlyAfterSweep(t *testing.T) {
	pool := ecs.NewPool(2)
	a, _ := pool.Create(ecs.TagTile)
	pool.Destroy(a)

	b, err := pool.Create(ecs.TagTile)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), b.Index())

	_, err = pool.Create(ecs.TagTile)
	assert.ErrorIs(t, err, ecs.ErrResourceExhausted, "dying slot is still reserved")

	pool.Sweep()
	c, err := pool.Create(ecs.TagTile)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), c.Index())
}

func TestPoolCollectStats(t *testing.T) {
	pool := ecs.NewPool(16)
	for range 3 {
		e, _ := pool.Create(ecs.TagTile)
		ecs.Add(pool, e, ecs.NewTransform(vec.Vec2{}))
	}
	p, _ := pool.Create(ecs.TagPlayer)
	ecs.Add(pool, p, ecs.NewTransform(vec.Vec2{}))
	ecs.Add(pool, p, ecs.NewInput())
	pool.Destroy(p)

	stats := pool.CollectStats()
	assert.Equal(t, 16, stats.Capacity)
	assert.Equal(t, 3, stats.Active)
	assert.Equal(t, 1, stats.Dying)
	assert.Equal(t, 4, stats.ComponentCount[ecs.KindTransform])
	assert.Equal(t, 1, stats.ComponentCount[ecs.KindInput])
	assert.Equal(t, 3, stats.TagCount[ecs.TagTile])
	assert.Equal(t, 0, stats.TagCount[ecs.TagPlayer])

	pool.Sweep()
	stats = pool.CollectStats()
	assert.Equal(t, 0, stats.Dying)
	assert.Equal(t, 3, stats.ComponentCount[ecs.KindTransform])
}

func TestEntityHandle(t *testing.T) {
	e := ecs.NewEntity(7, 3)
	assert.Equal(t, uint32(7), e.Index())
	assert.Equal(t, uint32(3), e.Generation())
	assert.False(t, e.IsZero())
	assert.True(t, ecs.Entity(0).IsZero())
}
