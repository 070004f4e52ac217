// Package scene implements the menu and play modes and the engine that
// dispatches input and frames to the current one.
package scene

import "errors"

// ErrNoSuchLevel is returned for a level index outside the engine's list.
var ErrNoSuchLevel = errors.New("no such level")

// Kind names a scene in the engine's scene table.
type Kind uint8

const (
	KindMenu Kind = iota
	KindPlay
)

func (k Kind) String() string {
	switch k {
	case KindMenu:
		return "MENU"
	case KindPlay:
		return "PLAY"
	default:
		return "UNKNOWN"
	}
}

// Scene is a game mode.
type Scene interface {
	// Update advances the scene by one frame.
	Update()
	HandleAction(a Action)
	Render(c Canvas)
	// Bindings lists the keys the scene responds to.
	Bindings() []Binding
}
