// Package level turns level descriptions into entity-creation directives
// and applies them to a world.
//
// Two formats are read: the line format used by the bundled levels
//
//	Tile <animation> <gx> <gy>
//	Dec <animation> <gx> <gy>
//	Player <gx> <gy> <cx> <cy> <speed> <jump> <maxSpeed> <gravity> <weapon>
//
// and Lua scripts, which call the globals tile, dec and player.
package level

import (
	"errors"
	"fmt"

	"github.com/plus3/platformer/world"
)

var (
	// ErrUnknownDirective marks a directive whose kind is not recognised.
	ErrUnknownDirective = errors.New("unknown level directive")
	// ErrMalformedDirective marks a directive with missing or invalid fields.
	ErrMalformedDirective = errors.New("malformed level directive")
)

// Kind is the type of entity a directive creates.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindTile
	KindDecoration
	KindPlayerSpawn
)

func (k Kind) String() string {
	switch k {
	case KindTile:
		return "Tile"
	case KindDecoration:
		return "Dec"
	case KindPlayerSpawn:
		return "Player"
	default:
		return "Unknown"
	}
}

// Directive is one entity-creation request.
type Directive struct {
	Kind Kind
	// Name is the animation of a tile or decoration.
	Name         string
	GridX, GridY float32
	// Player is set for KindPlayerSpawn.
	Player world.PlayerConfig

	// Line is the 1-based source line, or the call index for scripts.
	Line int
	// Err is set when the directive could not be parsed. Such directives
	// are skipped by Apply.
	Err error
}

func (d Directive) String() string {
	switch d.Kind {
	case KindPlayerSpawn:
		return fmt.Sprintf("Player %v %v", d.Player.X, d.Player.Y)
	case KindTile, KindDecoration:
		return fmt.Sprintf("%s %s %v %v", d.Kind, d.Name, d.GridX, d.GridY)
	default:
		return d.Kind.String()
	}
}
