package systems_test

import (
	"testing"

	"github.com/plus3/platformer/assets"
	"github.com/plus3/platformer/ecs"
	"github.com/plus3/platformer/vec"
	"github.com/plus3/platformer/world"
	"github.com/stretchr/testify/require"
)

func newWorld(t *testing.T) *world.World {
	t.Helper()
	opts := world.DefaultOptions()
	opts.Capacity = 128
	return world.New(opts, assets.Default(), nil)
}

func frameOf(w *world.World) *ecs.UpdateFrame {
	return &ecs.UpdateFrame{DeltaTime: 1.0 / 60, Manager: w.Manager, Pool: w.Pool}
}

func spawnPlayer(t *testing.T, w *world.World) ecs.Entity {
	t.Helper()
	p, err := w.SpawnPlayer()
	require.NoError(t, err)
	return p
}

// place moves e to pos, recording prev as the position of the previous frame.
func place(w *world.World, e ecs.Entity, prev, pos vec.Vec2) *ecs.Transform {
	tr := ecs.MustGet[ecs.Transform](w.Pool, e)
	tr.PrevPos = prev
	tr.Pos = pos
	return tr
}

func tileAt(t *testing.T, w *world.World, name string, pos vec.Vec2) ecs.Entity {
	t.Helper()
	e, err := w.SpawnTile(name, 0, 0)
	require.NoError(t, err)
	place(w, e, pos, pos)
	return e
}
