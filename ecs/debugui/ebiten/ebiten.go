// Package ebiten connects the debug overlay to the Ebiten game engine through
// the Dear ImGui Ebiten backend.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/platformer/ecs"
	"github.com/plus3/platformer/ecs/debugui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend and drives a
// debug overlay from an Ebiten game loop.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
	Overlay *debugui.Overlay
}

// NewImguiBackend creates the backend window with ImGui's ini persistence
// disabled.
func NewImguiBackend(title string, width, height int, overlay *debugui.Overlay) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &ImguiBackend{EbitenBackend: backend, Overlay: overlay}
}

// Frame builds one ImGui frame of the overlay. Call it from Game.Update.
func (b *ImguiBackend) Frame(m *ecs.Manager, s *ecs.Scheduler, deltaTime float32) {
	b.BeginFrame()
	b.Overlay.Render(m, s, deltaTime)
	b.EndFrame()
}

// DrawOver renders the last built frame on top of screen.
func (b *ImguiBackend) DrawOver(screen *ebiten.Image) {
	b.Draw(screen)
}
