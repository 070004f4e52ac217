package ecs

import "errors"

var (
	// ErrResourceExhausted is returned by Create when every slot is in use.
	// Callers should drop the spawn request.
	ErrResourceExhausted = errors.New("entity capacity exhausted")

	// ErrMissingComponent reports access to a component the entity does not
	// have. MustGet panics with it.
	ErrMissingComponent = errors.New("missing component")

	// ErrInvalidTag is returned by Create for tags outside the declared set.
	ErrInvalidTag = errors.New("invalid tag")
)
