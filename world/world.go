// Package world holds the state shared by the systems of one running level:
// the entity registry, the animation catalog, level geometry, the player
// configuration and the HUD counters.
package world

import (
	"errors"

	"github.com/plus3/platformer/assets"
	"github.com/plus3/platformer/ecs"
	"github.com/plus3/platformer/vec"
	"go.uber.org/zap"
)

// ErrUnknownAnimation is returned by factories asked for an animation the
// catalog does not hold.
var ErrUnknownAnimation = errors.New("unknown animation")

// MovementModel selects how player input drives horizontal velocity.
type MovementModel string

const (
	// MovementInstant sets the velocity to ±Speed while a direction is held.
	MovementInstant MovementModel = "instant"
	// MovementMomentum accelerates by Speed per tick up to MaxSpeed.
	MovementMomentum MovementModel = "momentum"
)

// StateModel selects the set of labels a grounded player can take.
type StateModel string

const (
	// StatesTwo uses {air, ground}.
	StatesTwo StateModel = "two"
	// StatesFour splits ground into stand and run by horizontal input.
	StatesFour StateModel = "four"
)

const (
	// BulletLifespan is the number of ticks a bullet lives.
	BulletLifespan = 60
	// BulletSpeed is the horizontal bullet speed in the shooter's facing.
	BulletSpeed = 12
)

// PlayerConfig is the player line of a level description.
type PlayerConfig struct {
	// X and Y are the spawn grid cell.
	X, Y float32
	// CX and CY are the collision box size.
	CX, CY   float32
	Speed    float32
	Jump     float32
	MaxSpeed float32
	Gravity  float32
	// Weapon is the animation name used for bullets.
	Weapon string
}

// DefaultPlayer is used until a level provides its own player line.
var DefaultPlayer = PlayerConfig{
	X: 2, Y: 4, CX: 48, CY: 48,
	Speed: 5, Jump: -20, MaxSpeed: 20, Gravity: 0.75,
	Weapon: "Buster",
}

// Counters are the HUD values.
type Counters struct {
	Score        int
	Coins        int
	BricksBroken int
	Respawns     int
}

// Options configures a World.
type Options struct {
	Capacity    int
	CellSize    vec.Vec2
	Width       float32
	Height      float32
	Movement    MovementModel
	States      StateModel
	BrickPoints int
	CoinPoints  int
}

// DefaultOptions returns a 1280x768 world with 64 pixel cells.
func DefaultOptions() Options {
	return Options{
		Capacity:    ecs.DefaultCapacity,
		CellSize:    vec.New(64, 64),
		Width:       1280,
		Height:      768,
		Movement:    MovementInstant,
		States:      StatesTwo,
		BrickPoints: 50,
		CoinPoints:  100,
	}
}

// World is the per-level simulation state.
type World struct {
	Manager *ecs.Manager
	Pool    *ecs.Pool
	Catalog *assets.Catalog
	Log     *zap.Logger

	Options Options
	Player  PlayerConfig

	// PlayerEntity is the current player handle. It stays valid across the
	// frame in which a respawn is still pending commit.
	PlayerEntity ecs.Entity

	// Cursor is the pointer position in world coordinates.
	Cursor  vec.Vec2
	CameraX float32

	Counters    Counters
	GoalReached bool
}

// New creates an empty world.
func New(opts Options, catalog *assets.Catalog, log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	if catalog == nil {
		catalog = assets.Default()
	}
	if opts.CellSize.X <= 0 || opts.CellSize.Y <= 0 {
		opts.CellSize = vec.New(64, 64)
	}
	if opts.Movement == "" {
		opts.Movement = MovementInstant
	}
	if opts.States == "" {
		opts.States = StatesTwo
	}

	pool := ecs.NewPool(opts.Capacity)
	w := &World{
		Manager: ecs.NewManager(pool),
		Pool:    pool,
		Catalog: catalog,
		Log:     log,
		Options: opts,
		Player:  DefaultPlayer,
	}
	w.CameraX = opts.Width / 2
	return w
}

// Reset removes every entity and clears the level state.
func (w *World) Reset() {
	w.Manager.Reset()
	w.PlayerEntity = 0
	w.Player = DefaultPlayer
	w.Counters = Counters{}
	w.GoalReached = false
	w.CameraX = w.Options.Width / 2
}

// ActivePlayer returns the player handle if it is live.
func (w *World) ActivePlayer() (ecs.Entity, bool) {
	if w.PlayerEntity.IsZero() || !w.Pool.IsActive(w.PlayerEntity) {
		return 0, false
	}
	return w.PlayerEntity, true
}

// UpdateCamera centres the view on the player once it walks past half the
// window width.
func (w *World) UpdateCamera() {
	w.CameraX = w.Options.Width / 2
	p, ok := w.ActivePlayer()
	if !ok {
		return
	}
	if t, ok := ecs.Get[ecs.Transform](w.Pool, p); ok && t.Pos.X > w.CameraX {
		w.CameraX = t.Pos.X
	}
}

// CameraOffset is the world position of the top-left screen corner.
func (w *World) CameraOffset() vec.Vec2 {
	return vec.New(w.CameraX-w.Options.Width/2, 0)
}

// ScreenToWorld converts a window position to world coordinates.
func (w *World) ScreenToWorld(screen vec.Vec2) vec.Vec2 {
	return screen.Add(w.CameraOffset())
}
