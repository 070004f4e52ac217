package ecs

// System represents a per-frame pass over the registry. Systems borrow
// entity handles for the duration of Execute and never own them.
type System interface {
	Execute(frame *UpdateFrame)
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(frame *UpdateFrame)

func (f SystemFunc) Execute(frame *UpdateFrame) {
	f(frame)
}
