// Package systems contains the per-frame simulation passes. They run in the
// order Lifespan, Movement, Drag, Collision, Animation after the registry
// has been committed.
package systems

import (
	"github.com/plus3/platformer/ecs"
)

// Lifespan counts down every Lifespan component and destroys the entity once
// it has reached zero.
type Lifespan struct{}

func (s *Lifespan) Execute(frame *ecs.UpdateFrame) {
	for _, e := range frame.Manager.Entities() {
		ls, ok := ecs.Get[ecs.Lifespan](frame.Pool, e)
		if !ok {
			continue
		}
		if ls.Remaining > 0 {
			ls.Remaining--
		} else {
			frame.Pool.Destroy(e)
		}
	}
}
