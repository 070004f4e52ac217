// Package debugui draws Dear ImGui inspection windows over a running
// entity registry: an entity browser, a component inspector for the
// selected entity, and pool and scheduler statistics.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/platformer/ecs"
)

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input
// this frame. Game input handling should skip events ImGui has captured.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Update refreshes the state from the current ImGui IO.
func (s *InputState) Update() {
	io := imgui.CurrentIO()
	s.WantCaptureMouse = io.WantCaptureMouse()
	s.WantCaptureKeyboard = io.WantCaptureKeyboard()
}

// Overlay groups the debug windows. Render must be called between the
// backend's BeginFrame and EndFrame.
type Overlay struct {
	Input     InputState
	Browser   *EntityBrowser
	Inspector *ComponentInspector
	Stats     *PerformanceStats
	// Extra windows drawn after the built-in ones.
	Items []func()
}

// NewOverlay creates the debug windows with the given browser page size and
// frame-time history length.
func NewOverlay(pageSize, historyFrames int) *Overlay {
	return &Overlay{
		Browser:   NewEntityBrowser(pageSize),
		Inspector: NewComponentInspector(),
		Stats:     NewPerformanceStats(historyFrames),
	}
}

// Render draws every window. A nil scheduler hides the system table.
func (o *Overlay) Render(m *ecs.Manager, s *ecs.Scheduler, deltaTime float32) {
	o.Input.Update()

	o.Browser.Render(m)
	e, selected := o.Browser.Selected()
	o.Inspector.Render(m.Pool(), e, selected)
	o.Stats.Render(m.Pool(), s, deltaTime)

	for _, item := range o.Items {
		item()
	}
}
