package systems

import (
	"github.com/plus3/platformer/assets"
	"github.com/plus3/platformer/ecs"
	"github.com/plus3/platformer/physics"
	"github.com/plus3/platformer/world"
	"go.uber.org/zap"
)

// Collision resolves bullets and the player against solid tiles and keeps
// the player inside the world.
//
// The side a player hits a tile from is taken from the previous frame: if
// the boxes were already overlapping on x, the contact is vertical, and if
// they were overlapping on y it is horizontal. When neither was, the player
// approached a corner and is resolved as landing on top.
type Collision struct {
	World *world.World
}

func (s *Collision) Execute(frame *ecs.UpdateFrame) {
	tiles := frame.Manager.EntitiesByTag(ecs.TagTile)
	s.bullets(frame, tiles)
	s.player(tiles)
}

func (s *Collision) bullets(frame *ecs.UpdateFrame, tiles []ecs.Entity) {
	p := frame.Pool
	for _, bullet := range frame.Manager.EntitiesByTag(ecs.TagBullet) {
		if !p.IsActive(bullet) {
			continue
		}
		for _, tile := range tiles {
			if !p.IsActive(tile) || !ecs.Has[ecs.BoundingBox](p, tile) {
				continue
			}
			if !physics.Intersects(physics.Overlap(p, bullet, tile)) {
				continue
			}

			p.Destroy(bullet)
			if anim, ok := ecs.Get[ecs.Animation](p, tile); ok && anim.Anim.Is(assets.AnimBrick) {
				s.breakBrick(tile)
			}
		}
	}
}

func (s *Collision) player(tiles []ecs.Entity) {
	w := s.World
	p := w.Pool

	player, ok := w.ActivePlayer()
	if !ok {
		return
	}
	t, hasT := ecs.Get[ecs.Transform](p, player)
	box, hasBox := ecs.Get[ecs.BoundingBox](p, player)
	st, hasSt := ecs.Get[ecs.State](p, player)
	in, hasIn := ecs.Get[ecs.Input](p, player)
	if !hasT || !hasBox || !hasSt || !hasIn {
		return
	}

	grounded := false
	for _, tile := range tiles {
		if !p.IsActive(tile) {
			continue
		}
		overlap := physics.Overlap(p, player, tile)
		if !physics.Intersects(overlap) {
			continue
		}

		anim, _ := ecs.Get[ecs.Animation](p, tile)
		if anim != nil && (anim.Anim.Is(assets.AnimPole) || anim.Anim.Is(assets.AnimPoleTop)) {
			w.GoalReached = true
			return
		}

		tt := ecs.MustGet[ecs.Transform](p, tile)
		prev := physics.PreviousOverlap(p, player, tile)
		diff := t.Pos.Sub(tt.Pos)

		switch {
		case prev.X > 0:
			t.Velocity.Y = 0
			if diff.Y < 0 {
				t.Pos.Y -= overlap.Y
				t.Pos = t.Pos.Add(tt.Velocity)
				grounded = true
				in.CanJump = !in.Up
			} else {
				t.Pos.Y += overlap.Y
				s.hitBlock(tile)
			}
		case prev.Y > 0:
			if diff.X > 0 {
				t.Pos.X += overlap.X
			} else {
				t.Pos.X -= overlap.X
			}
			t.Velocity.X = 0
			t.Pos = t.Pos.Add(tt.Velocity)
		default:
			t.Pos.Y -= overlap.Y
			t.Velocity.Y = 0
			t.Pos = t.Pos.Add(tt.Velocity)
			grounded = true
			in.CanJump = !in.Up
		}
	}

	st.State = s.classify(grounded, in)

	if t.Pos.Y > w.Options.Height {
		w.Counters.Respawns++
		if _, err := w.SpawnPlayer(); err != nil {
			w.Log.Error("respawn failed", zap.Error(err))
		}
		return
	}
	if t.Pos.X < box.HalfSize.X {
		t.Pos.X = box.HalfSize.X
	}
}

func (s *Collision) classify(grounded bool, in *ecs.Input) ecs.StateLabel {
	if !grounded {
		return ecs.StateAir
	}
	if s.World.Options.States != world.StatesFour {
		return ecs.StateGround
	}
	if in.Left != in.Right {
		return ecs.StateRun
	}
	return ecs.StateStand
}

func (s *Collision) hitBlock(tile ecs.Entity) {
	w := s.World
	anim, ok := ecs.Get[ecs.Animation](w.Pool, tile)
	if !ok {
		return
	}
	switch {
	case anim.Anim.Is(assets.AnimBrick):
		s.breakBrick(tile)
	case anim.Anim.Is(assets.AnimQuestion):
		w.Swap(tile, assets.AnimQuestion2, true)
		pos := ecs.MustGet[ecs.Transform](w.Pool, tile).Pos
		if _, err := w.SpawnCoin(pos); err != nil {
			w.Log.Warn("coin dropped", zap.Error(err))
		}
		w.Counters.Coins++
		w.Counters.Score += w.Options.CoinPoints
	}
}

// breakBrick turns a brick into a one-shot explosion that no longer collides.
func (s *Collision) breakBrick(tile ecs.Entity) {
	w := s.World
	w.Swap(tile, assets.AnimExplosion, false)
	ecs.Remove[ecs.BoundingBox](w.Pool, tile)
	w.Counters.BricksBroken++
	w.Counters.Score += w.Options.BrickPoints
}
