package level

import (
	"fmt"

	"github.com/plus3/platformer/world"
	lua "github.com/yuin/gopher-lua"
)

// scriptBuilder collects the directives emitted by a level script.
type scriptBuilder struct {
	directives []Directive
}

func (b *scriptBuilder) emit(d Directive) {
	d.Line = len(b.directives) + 1
	b.directives = append(b.directives, d)
}

func (b *scriptBuilder) register(vm *lua.LState) {
	vm.SetGlobal("tile", vm.NewFunction(b.placement(KindTile)))
	vm.SetGlobal("dec", vm.NewFunction(b.placement(KindDecoration)))
	vm.SetGlobal("player", vm.NewFunction(b.player))
}

// placement implements tile(name, gx, gy) and dec(name, gx, gy).
func (b *scriptBuilder) placement(kind Kind) lua.LGFunction {
	return func(L *lua.LState) int {
		b.emit(Directive{
			Kind:  kind,
			Name:  L.CheckString(1),
			GridX: float32(L.CheckNumber(2)),
			GridY: float32(L.CheckNumber(3)),
		})
		return 0
	}
}

// player implements player{x=, y=, cx=, cy=, speed=, jump=, max_speed=,
// gravity=, weapon=}. Missing fields take the default player values.
func (b *scriptBuilder) player(L *lua.LState) int {
	t := L.CheckTable(1)
	cfg := world.DefaultPlayer

	num := func(key string, dst *float32) {
		if v := t.RawGetString(key); v != lua.LNil {
			n, ok := v.(lua.LNumber)
			if !ok {
				L.ArgError(1, fmt.Sprintf("%s must be a number", key))
			}
			*dst = float32(n)
		}
	}
	num("x", &cfg.X)
	num("y", &cfg.Y)
	num("cx", &cfg.CX)
	num("cy", &cfg.CY)
	num("speed", &cfg.Speed)
	num("jump", &cfg.Jump)
	num("max_speed", &cfg.MaxSpeed)
	num("gravity", &cfg.Gravity)
	if v := t.RawGetString("weapon"); v != lua.LNil {
		cfg.Weapon = lua.LVAsString(v)
	}

	b.emit(Directive{Kind: KindPlayerSpawn, GridX: cfg.X, GridY: cfg.Y, Player: cfg})
	return 0
}

func newScriptVM(b *scriptBuilder) *lua.LState {
	vm := lua.NewState()
	vm.SetGlobal("API_VERSION", lua.LNumber(1))
	b.register(vm)
	return vm
}

// RunScript executes a Lua level script held in memory.
func RunScript(name, src string) ([]Directive, error) {
	b := &scriptBuilder{}
	vm := newScriptVM(b)
	defer vm.Close()

	if err := vm.DoString(src); err != nil {
		return nil, fmt.Errorf("run level script %s: %w", name, err)
	}
	return b.directives, nil
}

// RunScriptFile executes a Lua level script from disk.
func RunScriptFile(path string) ([]Directive, error) {
	b := &scriptBuilder{}
	vm := newScriptVM(b)
	defer vm.Close()

	if err := vm.DoFile(path); err != nil {
		return nil, fmt.Errorf("run level script %s: %w", path, err)
	}
	return b.directives, nil
}
