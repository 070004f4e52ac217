package level_test

import (
	"strings"
	"testing"

	"github.com/plus3/platformer/assets"
	"github.com/plus3/platformer/ecs"
	"github.com/plus3/platformer/level"
	"github.com/plus3/platformer/vec"
	"github.com/plus3/platformer/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newWorld(t *testing.T) (*world.World, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.WarnLevel)
	opts := world.DefaultOptions()
	opts.Capacity = 256
	return world.New(opts, assets.Default(), zap.New(core)), logs
}

func TestParse(t *testing.T) {
	src := `
# comment
Tile Brick 3 4
Dec  Block 1.5 2
Player 2 4 48 48 5 -20 20 0.75 Buster
Enemy Goomba 1 1
Tile Brick x 4
Tile Brick 3
Player 1 2 3
`
	ds, err := level.Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, ds, 7)

	assert.Equal(t, level.Directive{Kind: level.KindTile, Name: "Brick", GridX: 3, GridY: 4, Line: 3}, ds[0])
	assert.Equal(t, level.KindDecoration, ds[1].Kind)
	assert.Equal(t, float32(1.5), ds[1].GridX)

	assert.Equal(t, level.KindPlayerSpawn, ds[2].Kind)
	assert.Equal(t, world.PlayerConfig{
		X: 2, Y: 4, CX: 48, CY: 48, Speed: 5, Jump: -20, MaxSpeed: 20, Gravity: 0.75, Weapon: "Buster",
	}, ds[2].Player)
	assert.NoError(t, ds[2].Err)

	assert.Equal(t, level.KindUnknown, ds[3].Kind)
	assert.ErrorIs(t, ds[3].Err, level.ErrUnknownDirective)
	assert.Equal(t, 6, ds[3].Line)

	for _, d := range ds[4:] {
		assert.ErrorIs(t, d.Err, level.ErrMalformedDirective, "line %d", d.Line)
	}
}

func TestParseLongLines(t *testing.T) {
	long := strings.Repeat("x", 200*1024)
	src := "# " + long + "\nTile Ground 0 0 " + long + "\nTile Brick 1 2"

	ds, err := level.Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, ds, 2)

	assert.ErrorIs(t, ds[0].Err, level.ErrMalformedDirective)
	assert.Equal(t, 2, ds[0].Line)
	assert.Equal(t, level.Directive{Kind: level.KindTile, Name: "Brick", GridX: 1, GridY: 2, Line: 3}, ds[1])
}

func TestRunScript(t *testing.T) {
	ds, err := level.RunScript("inline", `
for x = 0, 2 do tile("Ground", x, 0) end
dec("Coin", 4, 1)
player{x = 1, y = 2, jump = -15}
`)
	require.NoError(t, err)
	require.Len(t, ds, 5)

	assert.Equal(t, level.KindTile, ds[2].Kind)
	assert.Equal(t, float32(2), ds[2].GridX)
	assert.Equal(t, level.KindDecoration, ds[3].Kind)
	assert.Equal(t, "Coin", ds[3].Name)

	p := ds[4].Player
	assert.Equal(t, float32(1), p.X)
	assert.Equal(t, float32(-15), p.Jump)
	assert.Equal(t, world.DefaultPlayer.Speed, p.Speed, "unset fields keep defaults")
	assert.Equal(t, 5, ds[4].Line)
}

func TestRunScriptErrors(t *testing.T) {
	_, err := level.RunScript("bad", `tile("Ground")`)
	assert.Error(t, err)

	_, err = level.RunScript("bad", `player{x = "left"}`)
	assert.Error(t, err)

	_, err = level.RunScript("bad", `this is not lua`)
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	w, logs := newWorld(t)
	ds, err := level.LoadFile("testdata/level1.txt")
	require.NoError(t, err)

	ds = append(ds,
		level.Directive{Kind: level.KindTile, Name: "Lava", Line: 90},
		level.Directive{Kind: level.KindUnknown, Name: "Enemy", Line: 91, Err: level.ErrUnknownDirective},
	)

	res := level.Apply(w, ds)
	assert.Equal(t, level.Result{Spawned: 5, Skipped: 2}, res)
	assert.Len(t, w.Manager.EntitiesByTag(ecs.TagTile), 3)
	assert.Len(t, w.Manager.EntitiesByTag(ecs.TagDecoration), 1)
	assert.Len(t, w.Manager.EntitiesByTag(ecs.TagPlayer), 1)
	assert.Equal(t, 0, w.Manager.Pending(), "Apply commits")

	assert.Equal(t, 1, logs.FilterMessage("level directive dropped").Len())
	assert.Equal(t, 1, logs.FilterMessage("skipping level directive").Len())
	assert.Equal(t, int64(91), logs.FilterMessage("skipping level directive").All()[0].ContextMap()["line"])

	brick := w.Manager.EntitiesByTag(ecs.TagTile)[2]
	assert.Equal(t, vec.New(3*64+32, 768-3*64-32), ecs.MustGet[ecs.Transform](w.Pool, brick).Pos)
}

func TestApplyIdempotent(t *testing.T) {
	ds, err := level.LoadFile("testdata/level1.txt")
	require.NoError(t, err)

	positions := func() []vec.Vec2 {
		w, _ := newWorld(t)
		level.Apply(w, ds)
		var out []vec.Vec2
		for _, e := range w.Manager.Entities() {
			out = append(out, ecs.MustGet[ecs.Transform](w.Pool, e).Pos)
		}
		return out
	}
	assert.Equal(t, positions(), positions())
}

func TestApplyWithoutPlayer(t *testing.T) {
	w, logs := newWorld(t)
	level.Apply(w, []level.Directive{{Kind: level.KindTile, Name: "Ground"}})

	_, ok := w.ActivePlayer()
	assert.True(t, ok)
	assert.Equal(t, 1, logs.FilterMessage("level has no player line, using defaults").Len())
}

func TestLoadInto(t *testing.T) {
	w, _ := newWorld(t)
	w.Counters.Score = 99

	res, err := level.LoadInto(w, "testdata/level2.lua")
	require.NoError(t, err)
	assert.Equal(t, 13, res.Spawned)
	assert.Zero(t, w.Counters.Score, "loading resets the world")
	assert.Equal(t, float32(6), w.Player.Speed)

	_, err = level.LoadInto(w, "testdata/missing.txt")
	assert.Error(t, err)
}
