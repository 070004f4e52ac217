package scene

import "github.com/plus3/platformer/vec"

// Menu lists the levels and starts the selected one.
type Menu struct {
	engine   *Engine
	selected int
}

func NewMenu(e *Engine) *Menu {
	return &Menu{engine: e}
}

// Selected returns the highlighted level index.
func (m *Menu) Selected() int {
	return m.selected
}

func (m *Menu) Bindings() []Binding {
	return []Binding{
		{Key: "W", Action: ActionUp},
		{Key: "S", Action: ActionDown},
		{Key: "D", Action: ActionPlay},
		{Key: "Escape", Action: ActionQuit},
	}
}

func (m *Menu) Update() {}

func (m *Menu) HandleAction(a Action) {
	if a.Phase != PhaseStart {
		return
	}
	n := len(m.engine.Levels())
	switch a.Name {
	case ActionUp:
		if n == 0 {
			return
		}
		m.selected = (m.selected - 1 + n) % n
	case ActionDown:
		if n == 0 {
			return
		}
		m.selected = (m.selected + 1) % n
	case ActionPlay:
		m.engine.StartLevel(m.selected)
	case ActionQuit:
		m.engine.Quit()
	}
}

func (m *Menu) Render(c Canvas) {
	c.Clear(colorSky)
	c.Text(vec.New(10, 10), m.engine.opts.Title, colorBlack)

	for i, l := range m.engine.Levels() {
		col := colorBlack
		if i == m.selected {
			col = colorWhite
		}
		c.Text(vec.New(10, 110+float32(i)*72), l.Name, col)
	}

	c.Text(vec.New(10, 690), "UP: W     DOWN: S     PLAY: D     BACK: ESC", colorBlack)
}
