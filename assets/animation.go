// Package assets describes the animation resources the simulation refers to.
// Decoding textures is left to the renderer; the core only needs frame size,
// frame count, playback speed and identity.
package assets

import (
	"image/color"
	"strconv"

	"github.com/plus3/platformer/vec"
)

// AnimationID identifies an animation. Values below AnimDynamic are the fixed
// set gameplay code branches on; manifests may register more above it.
type AnimationID uint16

const (
	AnimNone AnimationID = iota
	AnimAir
	AnimStand
	AnimRun
	AnimGround
	AnimBrick
	AnimQuestion
	AnimQuestion2
	AnimBlock
	AnimPole
	AnimPoleTop
	AnimExplosion
	AnimCoin
	AnimBuster

	// AnimDynamic is the first ID handed to manifest-only animations.
	AnimDynamic
)

var builtinNames = [AnimDynamic]string{
	AnimNone:      "",
	AnimAir:       "Air",
	AnimStand:     "Stand",
	AnimRun:       "Run",
	AnimGround:    "Ground",
	AnimBrick:     "Brick",
	AnimQuestion:  "Question",
	AnimQuestion2: "Question2",
	AnimBlock:     "Block",
	AnimPole:      "Pole",
	AnimPoleTop:   "PoleTop",
	AnimExplosion: "Explosion",
	AnimCoin:      "Coin",
	AnimBuster:    "Buster",
}

// BuiltinID returns the fixed ID registered for name, if any.
func BuiltinID(name string) (AnimationID, bool) {
	for id := AnimAir; id < AnimDynamic; id++ {
		if builtinNames[id] == name {
			return id, true
		}
	}
	return AnimNone, false
}

// String returns the builtin name, or a numeric form for dynamic IDs.
func (id AnimationID) String() string {
	if id < AnimDynamic {
		return builtinNames[id]
	}
	return "anim#" + strconv.Itoa(int(id))
}

// Animation is a playable animation. Copies are independent: each entity
// holding one advances its own frame counter.
type Animation struct {
	ID         AnimationID
	Name       string
	FrameCount int
	// Speed is the number of ticks each frame is shown. Zero is treated as one.
	Speed int
	Size  vec.Vec2
	Color color.RGBA

	current int
}

// Is reports whether the animation has the given identity.
func (a *Animation) Is(id AnimationID) bool {
	return a.ID == id
}

// Update advances the animation by one tick.
func (a *Animation) Update() {
	a.current++
}

// Ticks returns the number of updates applied so far.
func (a *Animation) Ticks() int {
	return a.current
}

// Frame returns the frame index for the current tick.
func (a *Animation) Frame() int {
	if a.FrameCount <= 0 {
		return 0
	}
	return (a.current / a.step()) % a.FrameCount
}

// HasEnded reports whether every frame has been shown at least once.
func (a *Animation) HasEnded() bool {
	return a.current >= a.FrameCount*a.step()
}

// HalfSize returns half the frame size.
func (a *Animation) HalfSize() vec.Vec2 {
	return a.Size.Scale(0.5)
}

func (a *Animation) step() int {
	if a.Speed <= 0 {
		return 1
	}
	return a.Speed
}
