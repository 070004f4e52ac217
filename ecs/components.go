package ecs

import (
	"github.com/plus3/platformer/assets"
	"github.com/plus3/platformer/vec"
)

// Kind identifies a component column in the pool.
type Kind uint8

const (
	KindTransform Kind = iota
	KindLifespan
	KindInput
	KindBoundingBox
	KindAnimation
	KindGravity
	KindState
	KindDraggable

	kindCount
)

var kindNames = [kindCount]string{
	KindTransform:   "Transform",
	KindLifespan:    "Lifespan",
	KindInput:       "Input",
	KindBoundingBox: "BoundingBox",
	KindAnimation:   "Animation",
	KindGravity:     "Gravity",
	KindState:       "State",
	KindDraggable:   "Draggable",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "unknown"
}

// Kinds returns every component kind in column order.
func Kinds() []Kind {
	kinds := make([]Kind, kindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// Component is implemented by the component records stored in a Pool.
// The set is closed: only types declared in this package satisfy it.
type Component interface {
	Transform | Lifespan | Input | BoundingBox | Animation | Gravity | State | Draggable
	kind() Kind
}

// Transform holds position and motion.
type Transform struct {
	Pos      vec.Vec2
	PrevPos  vec.Vec2
	Scale    vec.Vec2
	Velocity vec.Vec2
	Angle    float32
}

// NewTransform places an entity at pos with unit scale and no motion.
func NewTransform(pos vec.Vec2) Transform {
	return Transform{Pos: pos, PrevPos: pos, Scale: vec.New(1, 1)}
}

func (Transform) kind() Kind { return KindTransform }

// Lifespan destroys an entity once Remaining runs out.
type Lifespan struct {
	Remaining int
	Total     int
}

// NewLifespan returns a lifespan of total ticks.
func NewLifespan(total int) Lifespan {
	return Lifespan{Remaining: total, Total: total}
}

// Alpha returns a fade value proportional to the remaining lifespan.
func (l Lifespan) Alpha() uint8 {
	if l.Total <= 0 {
		return 255
	}
	return uint8(255 * l.Remaining / l.Total)
}

func (Lifespan) kind() Kind { return KindLifespan }

// Input holds the held-state of the player controls.
type Input struct {
	Up, Down, Left, Right bool
	Shoot                 bool
	CanShoot              bool
	CanJump               bool
}

// NewInput returns controls with shooting armed.
func NewInput() Input {
	return Input{CanShoot: true}
}

func (Input) kind() Kind { return KindInput }

// BoundingBox is an axis-aligned collision box centred on the transform.
type BoundingBox struct {
	Size     vec.Vec2
	HalfSize vec.Vec2
}

func NewBoundingBox(size vec.Vec2) BoundingBox {
	return BoundingBox{Size: size, HalfSize: size.Scale(0.5)}
}

func (BoundingBox) kind() Kind { return KindBoundingBox }

// Animation binds an animation descriptor to an entity. A non-repeating
// animation destroys its entity once it has played through.
type Animation struct {
	Anim   assets.Animation
	Repeat bool
}

func NewAnimation(anim assets.Animation, repeat bool) Animation {
	return Animation{Anim: anim, Repeat: repeat}
}

func (Animation) kind() Kind { return KindAnimation }

// Gravity is a per-tick downward acceleration.
type Gravity struct {
	Gravity float32
}

func (Gravity) kind() Kind { return KindGravity }

// StateLabel is the movement state of a player.
type StateLabel uint8

const (
	StateAir StateLabel = iota
	StateGround
	StateStand
	StateRun
)

var stateNames = [...]string{
	StateAir:    "air",
	StateGround: "ground",
	StateStand:  "stand",
	StateRun:    "run",
}

func (s StateLabel) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Grounded reports whether the label is one of the on-ground states.
func (s StateLabel) Grounded() bool {
	return s != StateAir
}

// State tracks the current movement label and the label last acted upon.
type State struct {
	State    StateLabel
	Previous StateLabel
}

func NewState(s StateLabel) State {
	return State{State: s, Previous: s}
}

// Changed reports whether State differs from the label last acted upon.
func (s State) Changed() bool {
	return s.State != s.Previous
}

func (State) kind() Kind { return KindState }

// Draggable marks an entity that can be picked up with the pointer.
type Draggable struct {
	Dragging bool
}

func (Draggable) kind() Kind { return KindDraggable }
