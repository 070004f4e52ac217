package world

import (
	"fmt"

	"github.com/plus3/platformer/assets"
	"github.com/plus3/platformer/ecs"
	"github.com/plus3/platformer/vec"
	"go.uber.org/zap"
)

func (w *World) animation(name string) (assets.Animation, error) {
	anim, ok := w.Catalog.Lookup(name)
	if !ok {
		return assets.Animation{}, fmt.Errorf("%w: %q", ErrUnknownAnimation, name)
	}
	return anim, nil
}

func (w *World) animationByID(id assets.AnimationID) assets.Animation {
	anim, ok := w.Catalog.Get(id)
	if !ok {
		w.Log.Warn("animation missing from catalog", zap.Stringer("id", id))
	}
	return anim
}

// Swap replaces e's animation with the catalog animation id.
func (w *World) Swap(e ecs.Entity, id assets.AnimationID, repeat bool) {
	ecs.Add(w.Pool, e, ecs.NewAnimation(w.animationByID(id), repeat))
}

// SpawnTile creates a solid, draggable tile at a grid cell.
func (w *World) SpawnTile(name string, gx, gy float32) (ecs.Entity, error) {
	anim, err := w.animation(name)
	if err != nil {
		return 0, err
	}
	e, err := w.Manager.AddEntity(ecs.TagTile)
	if err != nil {
		return 0, err
	}
	ecs.Add(w.Pool, e, ecs.NewAnimation(anim, true))
	ecs.Add(w.Pool, e, ecs.NewTransform(w.midPixel(gx, gy, anim.Size)))
	ecs.Add(w.Pool, e, ecs.NewBoundingBox(anim.Size))
	ecs.Add(w.Pool, e, ecs.Draggable{})
	return e, nil
}

// SpawnDecoration creates a non-colliding, draggable decoration at a grid
// cell.
func (w *World) SpawnDecoration(name string, gx, gy float32) (ecs.Entity, error) {
	anim, err := w.animation(name)
	if err != nil {
		return 0, err
	}
	e, err := w.Manager.AddEntity(ecs.TagDecoration)
	if err != nil {
		return 0, err
	}
	ecs.Add(w.Pool, e, ecs.NewAnimation(anim, true))
	ecs.Add(w.Pool, e, ecs.NewTransform(w.midPixel(gx, gy, anim.Size)))
	ecs.Add(w.Pool, e, ecs.Draggable{})
	return e, nil
}

// SpawnPlayer destroys any existing player and creates a new one at the
// configured spawn cell.
func (w *World) SpawnPlayer() (ecs.Entity, error) {
	for _, p := range w.Manager.EntitiesByTag(ecs.TagPlayer) {
		w.Pool.Destroy(p)
	}
	w.Pool.Destroy(w.PlayerEntity)
	w.PlayerEntity = 0

	e, err := w.Manager.AddEntity(ecs.TagPlayer)
	if err != nil {
		return 0, err
	}

	anim := w.animationByID(assets.AnimAir)
	size := vec.New(w.Player.CX, w.Player.CY)
	if size.X <= 0 || size.Y <= 0 {
		size = vec.New(DefaultPlayer.CX, DefaultPlayer.CY)
	}

	ecs.Add(w.Pool, e, ecs.NewAnimation(anim, true))
	ecs.Add(w.Pool, e, ecs.NewTransform(w.midPixel(w.Player.X, w.Player.Y, anim.Size)))
	ecs.Add(w.Pool, e, ecs.NewInput())
	ecs.Add(w.Pool, e, ecs.NewBoundingBox(size))
	ecs.Add(w.Pool, e, ecs.Gravity{Gravity: w.Player.Gravity})
	ecs.Add(w.Pool, e, ecs.NewState(ecs.StateAir))
	ecs.Add(w.Pool, e, ecs.Draggable{})

	w.PlayerEntity = e
	return e, nil
}

// SpawnBullet fires the configured weapon from the shooter's position in the
// direction it faces.
func (w *World) SpawnBullet(shooter ecs.Entity) (ecs.Entity, error) {
	st, ok := ecs.Get[ecs.Transform](w.Pool, shooter)
	if !ok {
		return 0, fmt.Errorf("%w: shooter has no %s", ecs.ErrMissingComponent, ecs.KindTransform)
	}
	anim, err := w.animation(w.Player.Weapon)
	if err != nil {
		return 0, err
	}

	e, err := w.Manager.AddEntity(ecs.TagBullet)
	if err != nil {
		return 0, err
	}

	t := ecs.NewTransform(st.Pos)
	t.Scale = st.Scale
	t.Velocity = vec.New(BulletSpeed*st.Scale.X, 0)
	ecs.Add(w.Pool, e, t)
	ecs.Add(w.Pool, e, ecs.NewAnimation(anim, true))
	ecs.Add(w.Pool, e, ecs.NewBoundingBox(anim.Size))
	ecs.Add(w.Pool, e, ecs.NewLifespan(BulletLifespan))
	return e, nil
}

// SpawnCoin creates a one-shot coin decoration one cell above pos.
func (w *World) SpawnCoin(pos vec.Vec2) (ecs.Entity, error) {
	e, err := w.Manager.AddEntity(ecs.TagDecoration)
	if err != nil {
		return 0, err
	}
	ecs.Add(w.Pool, e, ecs.NewAnimation(w.animationByID(assets.AnimCoin), false))
	ecs.Add(w.Pool, e, ecs.NewTransform(vec.New(pos.X, pos.Y-w.Options.CellSize.Y)))
	return e, nil
}
