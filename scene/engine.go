package scene

import (
	"github.com/plus3/platformer/world"
	"go.uber.org/zap"
)

// LevelInfo is a selectable level.
type LevelInfo struct {
	Name string
	Path string
}

// DrawFlags are the initial play-scene drawing toggles.
type DrawFlags struct {
	Textures  bool
	Collision bool
	Grid      bool
}

// Options configures an Engine.
type Options struct {
	Title  string
	Levels []LevelInfo
	// NewWorld builds an empty world for each level started.
	NewWorld func() *world.World
	Draw     DrawFlags
	// TPS is the simulation rate; DeltaTime is 1/TPS.
	TPS int
}

// Engine owns the scene table and routes frames and input to the current
// scene.
type Engine struct {
	opts    Options
	log     *zap.Logger
	scenes  map[Kind]Scene
	current Kind
	running bool
}

// NewEngine creates an engine showing the menu.
func NewEngine(opts Options, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.TPS <= 0 {
		opts.TPS = 60
	}
	if opts.NewWorld == nil {
		opts.NewWorld = func() *world.World {
			return world.New(world.DefaultOptions(), nil, log)
		}
	}
	e := &Engine{
		opts:    opts,
		log:     log,
		scenes:  make(map[Kind]Scene),
		running: true,
	}
	e.ChangeScene(KindMenu, NewMenu(e), false)
	return e
}

// ChangeScene switches to kind. A non-nil scene replaces the table entry;
// a nil scene resumes the existing one. endCurrent drops the scene being
// left from the table.
func (e *Engine) ChangeScene(kind Kind, s Scene, endCurrent bool) {
	if s != nil {
		e.scenes[kind] = s
	} else if _, ok := e.scenes[kind]; !ok {
		e.log.Warn("scene does not exist", zap.Stringer("scene", kind))
		return
	}

	if endCurrent && kind != e.current {
		delete(e.scenes, e.current)
	}
	e.log.Debug("change scene", zap.Stringer("from", e.current), zap.Stringer("to", kind))
	e.current = kind
}

// Current returns the active scene.
func (e *Engine) Current() Scene {
	return e.scenes[e.current]
}

// CurrentKind returns the table key of the active scene.
func (e *Engine) CurrentKind() Kind {
	return e.current
}

// Scene returns the scene stored under kind, if any.
func (e *Engine) Scene(kind Kind) (Scene, bool) {
	s, ok := e.scenes[kind]
	return s, ok
}

// Levels returns the selectable levels.
func (e *Engine) Levels() []LevelInfo {
	return e.opts.Levels
}

// StartLevel loads level index into a new play scene and switches to it.
// A level that fails to load is logged and the engine stays where it was.
func (e *Engine) StartLevel(index int) bool {
	if index < 0 || index >= len(e.opts.Levels) {
		e.log.Warn("no such level", zap.Int("index", index))
		return false
	}
	p, err := NewPlay(e, index)
	if err != nil {
		e.log.Error("level load failed",
			zap.String("level", e.opts.Levels[index].Name),
			zap.Error(err))
		return false
	}
	e.ChangeScene(KindPlay, p, false)
	return true
}

// LevelComplete advances to the level after index, or returns to the menu
// after the last one.
func (e *Engine) LevelComplete(index int) {
	next := index + 1
	if next < len(e.opts.Levels) && e.StartLevel(next) {
		return
	}
	e.ChangeScene(KindMenu, nil, true)
}

// HandleAction delivers a to the current scene.
func (e *Engine) HandleAction(a Action) {
	if s := e.Current(); s != nil {
		s.HandleAction(a)
	}
}

// Update advances the current scene by one frame.
func (e *Engine) Update() {
	if !e.running {
		return
	}
	if s := e.Current(); s != nil {
		s.Update()
	}
}

// Render draws the current scene.
func (e *Engine) Render(c Canvas) {
	if s := e.Current(); s != nil {
		s.Render(c)
	}
}

// Quit stops the engine.
func (e *Engine) Quit() {
	e.running = false
}

// Running reports whether Quit has not been called.
func (e *Engine) Running() bool {
	return e.running
}
