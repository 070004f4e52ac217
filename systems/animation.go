package systems

import (
	"github.com/plus3/platformer/assets"
	"github.com/plus3/platformer/ecs"
	"github.com/plus3/platformer/world"
)

// Animation picks the player animation for its state and advances every
// animation. A one-shot animation that has played through destroys its
// entity.
type Animation struct {
	World *world.World
}

func (s *Animation) Execute(frame *ecs.UpdateFrame) {
	s.player()

	for _, e := range frame.Manager.Entities() {
		anim, ok := ecs.Get[ecs.Animation](frame.Pool, e)
		if !ok || !frame.Pool.IsActive(e) {
			continue
		}
		if anim.Repeat || !anim.Anim.HasEnded() {
			anim.Anim.Update()
		} else {
			frame.Pool.Destroy(e)
		}
	}
}

func (s *Animation) player() {
	w := s.World
	p, ok := w.ActivePlayer()
	if !ok {
		return
	}
	st, ok := ecs.Get[ecs.State](w.Pool, p)
	if !ok {
		return
	}
	anim, ok := ecs.Get[ecs.Animation](w.Pool, p)
	if !ok {
		return
	}

	want := assets.AnimAir
	switch st.State {
	case ecs.StateStand:
		want = assets.AnimStand
	case ecs.StateRun:
		want = assets.AnimRun
	case ecs.StateGround:
		want = assets.AnimStand
		if in, ok := ecs.Get[ecs.Input](w.Pool, p); ok && in.Left != in.Right {
			want = assets.AnimRun
		}
	}

	if (st.Changed() || st.State == ecs.StateGround) && !anim.Anim.Is(want) {
		w.Swap(p, want, true)
	}
	st.Previous = st.State
}
