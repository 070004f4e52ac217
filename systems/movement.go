package systems

import (
	"github.com/plus3/platformer/ecs"
	"github.com/plus3/platformer/world"
	"go.uber.org/zap"
)

// Movement applies player input, then gravity and velocity to every entity
// with a Transform. It is the only pass that records PrevPos.
type Movement struct {
	World *world.World
}

func (s *Movement) Execute(frame *ecs.UpdateFrame) {
	s.playerInput()

	for _, e := range frame.Manager.Entities() {
		t, ok := ecs.Get[ecs.Transform](frame.Pool, e)
		if !ok {
			continue
		}
		t.PrevPos = t.Pos

		if d, ok := ecs.Get[ecs.Draggable](frame.Pool, e); ok && d.Dragging {
			continue
		}
		if g, ok := ecs.Get[ecs.Gravity](frame.Pool, e); ok {
			t.Velocity.Y += g.Gravity
		}
		t.Pos = t.Pos.Add(t.Velocity)
	}
}

func (s *Movement) playerInput() {
	w := s.World
	p, ok := w.ActivePlayer()
	if !ok {
		return
	}
	t, ok := ecs.Get[ecs.Transform](w.Pool, p)
	if !ok {
		return
	}
	in, ok := ecs.Get[ecs.Input](w.Pool, p)
	if !ok {
		return
	}

	cfg := w.Player
	dir := float32(0)
	if in.Left {
		dir--
		t.Scale.X = -1
	}
	if in.Right {
		dir++
		t.Scale.X = 1
	}

	switch w.Options.Movement {
	case world.MovementMomentum:
		if dir != 0 {
			t.Velocity.X += dir * cfg.Speed
		} else {
			t.Velocity.X = approachZero(t.Velocity.X, cfg.Speed)
		}
	default:
		t.Velocity.X = dir * cfg.Speed
	}

	st, hasState := ecs.Get[ecs.State](w.Pool, p)
	if in.Up && in.CanJump && hasState && st.State != ecs.StateAir {
		t.Velocity.Y = cfg.Jump
		in.CanJump = false
	}

	if w.Options.Movement == world.MovementMomentum && cfg.MaxSpeed > 0 {
		t.Velocity.X = clamp(t.Velocity.X, cfg.MaxSpeed)
		t.Velocity.Y = clamp(t.Velocity.Y, cfg.MaxSpeed)
	}

	if in.Shoot && in.CanShoot {
		if _, err := w.SpawnBullet(p); err != nil {
			w.Log.Warn("bullet dropped", zap.Error(err))
		}
		in.CanShoot = false
	}
}

func approachZero(v, step float32) float32 {
	switch {
	case v > step:
		return v - step
	case v < -step:
		return v + step
	default:
		return 0
	}
}

func clamp(v, limit float32) float32 {
	switch {
	case v > limit:
		return limit
	case v < -limit:
		return -limit
	default:
		return v
	}
}
