package ecs

import "github.com/milk9111/tween/ecs/component"

// Add attaches (or replaces) a component value on an entity.
func Add[T any](w *World, e Entity, h component.Handle[T], value T) error {
	return w.addComponent(e, h.Kind().ID(), value)
}

// Get returns a copy of an entity's component value.
func Get[T any](w *World, e Entity, h component.Handle[T]) (T, bool) {
	var zero T
	v, ok := w.getComponent(e, h.Kind().ID())
	if !ok {
		return zero, false
	}
	cast, ok := v.(T)
	if !ok {
		return zero, false
	}
	return cast, true
}

// Has reports whether an entity carries the component.
func Has[T any](w *World, e Entity, h component.Handle[T]) bool {
	return w.hasComponent(e, h.Kind().ID())
}

// Remove detaches the component from the entity.
func Remove[T any](w *World, e Entity, h component.Handle[T]) bool {
	return w.removeComponent(e, h.Kind().ID())
}

// ForEach visits every entity carrying the component. Mutations made
// through the pointer are written back after fn returns. fn must not
// add or remove components of the same kind.
func ForEach[T any](w *World, h component.Handle[T], fn func(e Entity, v *T)) {
	s := w.store(h.Kind().ID())
	for i, eid := range s.denseIDs {
		v, ok := s.denseValues[i].(T)
		if !ok {
			continue
		}
		e := makeEntity(eid, w.entities.gen[eid-1])
		fn(e, &v)
		s.denseValues[i] = v
	}
}

// ForEach2 visits every entity carrying both components, iterating the
// first kind's store. Mutations through either pointer are written
// back.
func ForEach2[A, B any](w *World, ha component.Handle[A], hb component.Handle[B], fn func(e Entity, a *A, b *B)) {
	sa := w.store(ha.Kind().ID())
	sb := w.store(hb.Kind().ID())
	for i, eid := range sa.denseIDs {
		bv, ok := sb.get(eid)
		if !ok {
			continue
		}
		a, okA := sa.denseValues[i].(A)
		b, okB := bv.(B)
		if !okA || !okB {
			continue
		}
		e := makeEntity(eid, w.entities.gen[eid-1])
		fn(e, &a, &b)
		sa.denseValues[i] = a
		sb.set(eid, b)
	}
}
