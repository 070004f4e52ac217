package scene

import (
	"fmt"
	"math"

	"github.com/plus3/platformer/ecs"
	"github.com/plus3/platformer/level"
	"github.com/plus3/platformer/systems"
	"github.com/plus3/platformer/vec"
	"github.com/plus3/platformer/world"
	"go.uber.org/zap"
)

// Play runs one level.
type Play struct {
	engine    *Engine
	index     int
	world     *world.World
	scheduler *ecs.Scheduler
	drag      *systems.Drag

	paused bool
	draw   DrawFlags
}

// NewPlay loads level index of the engine's level list.
func NewPlay(e *Engine, index int) (*Play, error) {
	if index < 0 || index >= len(e.opts.Levels) {
		return nil, fmt.Errorf("%w: %d of %d", ErrNoSuchLevel, index, len(e.opts.Levels))
	}
	info := e.opts.Levels[index]
	w := e.opts.NewWorld()
	if _, err := level.LoadInto(w, info.Path); err != nil {
		return nil, fmt.Errorf("load %s: %w", info.Name, err)
	}

	p := &Play{
		engine: e,
		index:  index,
		world:  w,
		drag:   &systems.Drag{World: w},
		draw:   e.opts.Draw,
	}

	p.scheduler = ecs.NewScheduler(w.Manager)
	p.scheduler.RegisterNamed("lifespan", &systems.Lifespan{})
	p.scheduler.RegisterNamed("movement", &systems.Movement{World: w})
	p.scheduler.RegisterNamed("drag", p.drag)
	p.scheduler.RegisterNamed("collision", &systems.Collision{World: w})
	p.scheduler.RegisterNamed("animation", &systems.Animation{World: w})
	return p, nil
}

// World returns the level state.
func (p *Play) World() *world.World { return p.world }

// Scheduler returns the system scheduler, for statistics.
func (p *Play) Scheduler() *ecs.Scheduler { return p.scheduler }

// Paused reports whether the simulation is paused.
func (p *Play) Paused() bool { return p.paused }

// Draw returns the current drawing toggles.
func (p *Play) Draw() DrawFlags { return p.draw }

func (p *Play) Bindings() []Binding {
	return []Binding{
		{Key: "W", Action: ActionJump},
		{Key: "A", Action: ActionLeft},
		{Key: "S", Action: ActionDown},
		{Key: "D", Action: ActionRight},
		{Key: "P", Action: ActionPause},
		{Key: "Space", Action: ActionShoot},
		{Key: "Escape", Action: ActionQuit},
		{Key: "T", Action: ActionToggleTexture},
		{Key: "C", Action: ActionToggleCollision},
		{Key: "G", Action: ActionToggleGrid},
	}
}

// Update commits the registry and, unless paused, runs the systems.
func (p *Play) Update() {
	if p.paused {
		p.world.Manager.Update()
	} else {
		p.scheduler.Once(1 / float64(p.engine.opts.TPS))
	}
	p.world.UpdateCamera()

	if p.world.GoalReached {
		p.engine.log.Info("level complete",
			zap.String("level", p.engine.opts.Levels[p.index].Name),
			zap.Int("score", p.world.Counters.Score))
		p.engine.LevelComplete(p.index)
	}
}

func (p *Play) HandleAction(a Action) {
	if a.Name == ActionMouseMove {
		p.world.Cursor = p.world.ScreenToWorld(a.Pos)
		return
	}

	if a.Phase == PhaseStart {
		switch a.Name {
		case ActionToggleTexture:
			p.draw.Textures = !p.draw.Textures
			return
		case ActionToggleCollision:
			p.draw.Collision = !p.draw.Collision
			return
		case ActionToggleGrid:
			p.draw.Grid = !p.draw.Grid
			return
		case ActionPause:
			p.paused = !p.paused
			return
		case ActionQuit:
			p.engine.ChangeScene(KindMenu, nil, true)
			return
		case ActionLeftClick:
			p.drag.Click(p.world.ScreenToWorld(a.Pos))
			return
		}
	}

	player, ok := p.world.ActivePlayer()
	if !ok {
		return
	}
	in, ok := ecs.Get[ecs.Input](p.world.Pool, player)
	if !ok {
		return
	}

	if a.Phase == PhaseStart {
		switch a.Name {
		case ActionJump:
			in.Up = true
		case ActionShoot:
			in.Shoot = true
		case ActionLeft:
			in.Left = true
		case ActionRight:
			in.Right = true
		case ActionDown:
			in.Down = true
		}
		return
	}

	switch a.Name {
	case ActionJump:
		if t, ok := ecs.Get[ecs.Transform](p.world.Pool, player); ok && t.Velocity.Y < 0 {
			t.Velocity.Y = 0
		}
		in.Up = false
		in.CanJump = true
	case ActionShoot:
		in.Shoot = false
		in.CanShoot = true
	case ActionLeft:
		in.Left = false
	case ActionRight:
		in.Right = false
	case ActionDown:
		in.Down = false
	}
}

func (p *Play) Render(c Canvas) {
	w := p.world
	if p.paused {
		c.Clear(colorSkyPaused)
	} else {
		c.Clear(colorSky)
	}
	offset := w.CameraOffset()

	if p.draw.Textures {
		for _, e := range w.Manager.Entities() {
			anim, ok := ecs.Get[ecs.Animation](w.Pool, e)
			if !ok {
				continue
			}
			t, ok := ecs.Get[ecs.Transform](w.Pool, e)
			if !ok {
				continue
			}
			alpha := uint8(255)
			if ls, ok := ecs.Get[ecs.Lifespan](w.Pool, e); ok {
				alpha = ls.Alpha()
			}
			c.Sprite(t.Pos.Sub(offset), &anim.Anim, t.Scale, t.Angle, alpha)
		}
	}

	if p.draw.Grid {
		p.renderGrid(c, offset)
	}

	if p.draw.Collision {
		for _, e := range w.Manager.Entities() {
			box, ok := ecs.Get[ecs.BoundingBox](w.Pool, e)
			if !ok {
				continue
			}
			t, ok := ecs.Get[ecs.Transform](w.Pool, e)
			if !ok {
				continue
			}
			c.Rect(t.Pos.Sub(offset), box.Size, colorRed)
		}
	}

	c.Rect(w.Cursor.Sub(offset), vec.New(16, 16), colorCursor)

	hud := fmt.Sprintf("SCORE %d   COINS %d   BRICKS %d   RESPAWNS %d",
		w.Counters.Score, w.Counters.Coins, w.Counters.BricksBroken, w.Counters.Respawns)
	c.Text(vec.New(10, 10), hud, colorBlack)
	if p.paused {
		c.Text(vec.New(10, 30), "PAUSED", colorBlack)
	}
}

func (p *Play) renderGrid(c Canvas, offset vec.Vec2) {
	opts := p.world.Options
	cell := opts.CellSize
	left := offset.X
	right := left + opts.Width + cell.X
	first := float32(math.Floor(float64(left/cell.X))) * cell.X

	for x := first; x < right; x += cell.X {
		c.Line(vec.New(x-left, 0), vec.New(x-left, opts.Height), colorGrid)
	}
	for y := float32(0); y < opts.Height; y += cell.Y {
		sy := opts.Height - y
		c.Line(vec.New(0, sy), vec.New(opts.Width, sy), colorGrid)
		for x := first; x < right; x += cell.X {
			label := fmt.Sprintf("(%d,%d)", int(x/cell.X), int(y/cell.Y))
			c.Text(vec.New(x-left+3, sy-cell.Y+2), label, colorGrid)
		}
	}
}
