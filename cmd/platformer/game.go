package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/platformer/config"
	"github.com/plus3/platformer/ecs/debugui"
	debugui_ebiten "github.com/plus3/platformer/ecs/debugui/ebiten"
	"github.com/plus3/platformer/scene"
	"github.com/plus3/platformer/vec"
	"go.uber.org/zap"
)

// boundKey is a scene binding resolved to an Ebiten key.
type boundKey struct {
	key    ebiten.Key
	action scene.ActionName
}

// Game adapts the scene engine to ebiten.Game.
type Game struct {
	engine *scene.Engine
	log    *zap.Logger
	width  int
	height int
	tps    int
	canvas *canvas
	imgui  *debugui_ebiten.ImguiBackend

	boundScene scene.Scene
	keys       []boundKey
	cursor     vec.Vec2
}

func newGame(engine *scene.Engine, cfg *config.Config, log *zap.Logger) *Game {
	g := &Game{
		engine: engine,
		log:    log,
		width:  cfg.Window.Width,
		height: cfg.Window.Height,
		tps:    max(cfg.Window.TPS, 1),
		canvas: &canvas{},
	}
	if cfg.Debug.Overlay {
		g.imgui = debugui_ebiten.NewImguiBackend(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height,
			debugui.NewOverlay(100, 120))
	}
	return g
}

func (g *Game) Update() error {
	if !g.engine.Running() {
		return ebiten.Termination
	}

	g.pollInput()
	g.engine.Update()

	if g.imgui != nil {
		if play, ok := g.engine.Current().(*scene.Play); ok {
			g.imgui.Frame(play.World().Manager, play.Scheduler(), 1/float32(g.tps))
		} else {
			g.imgui.BeginFrame()
			g.imgui.EndFrame()
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.screen = screen
	g.engine.Render(g.canvas)
	if g.imgui != nil {
		g.imgui.DrawOver(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
	}
	return g.width, g.height
}

// pollInput turns key and mouse edges into scene actions.
func (g *Game) pollInput() {
	current := g.engine.Current()
	if current == nil {
		return
	}
	if current != g.boundScene {
		g.keys = g.resolve(current.Bindings())
		g.boundScene = current
	}

	captureKeyboard, captureMouse := false, false
	if g.imgui != nil {
		captureKeyboard = g.imgui.Overlay.Input.WantCaptureKeyboard
		captureMouse = g.imgui.Overlay.Input.WantCaptureMouse
	}

	if !captureKeyboard {
		for _, k := range g.keys {
			if inpututil.IsKeyJustPressed(k.key) {
				g.engine.HandleAction(scene.Start(k.action))
			}
			if inpututil.IsKeyJustReleased(k.key) {
				g.engine.HandleAction(scene.End(k.action))
			}
		}
	}

	if captureMouse {
		return
	}
	x, y := ebiten.CursorPosition()
	pos := vec.New(float32(x), float32(y))
	if pos != g.cursor {
		g.cursor = pos
		g.engine.HandleAction(scene.Action{Name: scene.ActionMouseMove, Pos: pos})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.engine.HandleAction(scene.Action{Name: scene.ActionLeftClick, Phase: scene.PhaseStart, Pos: pos})
	}
}

func (g *Game) resolve(bindings []scene.Binding) []boundKey {
	keys := make([]boundKey, 0, len(bindings))
	for _, b := range bindings {
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(b.Key)); err != nil {
			g.log.Warn("unknown key in binding", zap.String("key", b.Key), zap.Stringer("action", b.Action))
			continue
		}
		keys = append(keys, boundKey{key: k, action: b.Action})
	}
	return keys
}
