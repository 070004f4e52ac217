package ecs

// UpdateFrame is passed to every system during one scheduler step.
type UpdateFrame struct {
	DeltaTime float64
	Tick      uint64
	Manager   *Manager
	Pool      *Pool
}

func newUpdateFrame(dt float64, tick uint64, manager *Manager) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Tick:      tick,
		Manager:   manager,
		Pool:      manager.Pool(),
	}
}
