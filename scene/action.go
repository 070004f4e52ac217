package scene

import "github.com/plus3/platformer/vec"

// ActionName is an abstract input, decoupled from the device that produced it.
type ActionName uint8

const (
	ActionNone ActionName = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionJump
	ActionShoot
	ActionPlay
	ActionPause
	ActionQuit
	ActionToggleTexture
	ActionToggleCollision
	ActionToggleGrid
	ActionLeftClick
	ActionMouseMove

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:            "NONE",
	ActionUp:              "UP",
	ActionDown:            "DOWN",
	ActionLeft:            "LEFT",
	ActionRight:           "RIGHT",
	ActionJump:            "JUMP",
	ActionShoot:           "SHOOT",
	ActionPlay:            "PLAY",
	ActionPause:           "PAUSE",
	ActionQuit:            "QUIT",
	ActionToggleTexture:   "TOGGLE_TEXTURE",
	ActionToggleCollision: "TOGGLE_COLLISION",
	ActionToggleGrid:      "TOGGLE_GRID",
	ActionLeftClick:       "LEFT_CLICK",
	ActionMouseMove:       "MOUSE_MOVE",
}

func (a ActionName) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "UNKNOWN"
}

// Phase distinguishes press from release.
type Phase uint8

const (
	PhaseStart Phase = iota
	PhaseEnd
)

func (p Phase) String() string {
	if p == PhaseEnd {
		return "END"
	}
	return "START"
}

// Action is one input event delivered to the current scene. Pos is the
// pointer position in window coordinates for pointer actions.
type Action struct {
	Name  ActionName
	Phase Phase
	Pos   vec.Vec2
}

// Start returns a press of name.
func Start(name ActionName) Action {
	return Action{Name: name, Phase: PhaseStart}
}

// End returns a release of name.
func End(name ActionName) Action {
	return Action{Name: name, Phase: PhaseEnd}
}

// Binding maps a key, by name, to an action.
type Binding struct {
	Key    string
	Action ActionName
}
