// Package component declares the component types the tween systems
// operate on, plus the typed handle machinery that keys them in a
// world.
package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive = errors.New("ecs: entity not alive")
	ErrInvalidKind    = errors.New("ecs: invalid component kind")
)

// ID uniquely identifies a component type at runtime.
type ID uint32

var nextID atomic.Uint32

// Kind ties an ID to the component's Go type.
type Kind[T any] struct {
	id ID
}

func (k Kind[T]) ID() ID {
	return k.id
}

func (k Kind[T]) Valid() bool {
	return k.id != 0
}

// Handle is the package-level registration for a component type;
// declare one per component with NewComponent.
type Handle[T any] struct {
	kind Kind[T]
}

// NewComponent registers a component type and returns its handle.
func NewComponent[T any]() Handle[T] {
	return Handle[T]{kind: Kind[T]{id: ID(nextID.Add(1))}}
}

func (h Handle[T]) Kind() Kind[T] {
	return h.kind
}
