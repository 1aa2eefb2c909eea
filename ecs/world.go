// Package ecs is a minimal entity/component store with just enough
// machinery to host per-entity tween state: entities with generational
// handles, sparse-set component storage, and a per-frame system loop.
package ecs

import (
	"github.com/milk9111/tween/ecs/component"
)

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// World owns entities, component stores, and system order. Not safe
// for concurrent use; the game loop owns it.
type World struct {
	entities entityStore
	stores   map[component.ID]*sparseSet
	systems  []System
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{stores: make(map[component.ID]*sparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity kills an entity and drops all of its components. Any
// tween runs attached to it simply stop being stepped; no completion
// callbacks fire.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e.id())
	}
	return true
}

// IsAlive reports whether an entity handle is still valid.
func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e)
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	return w.entities.count()
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update runs all systems once, in registration order.
func (w *World) Update() {
	for _, s := range w.systems {
		s.Update(w)
	}
}

func (w *World) store(id component.ID) *sparseSet {
	s, ok := w.stores[id]
	if !ok {
		s = &sparseSet{}
		w.stores[id] = s
	}
	return s
}

func (w *World) addComponent(e Entity, id component.ID, v any) error {
	if !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	if id == 0 {
		return component.ErrInvalidKind
	}
	w.store(id).set(e.id(), v)
	return nil
}

func (w *World) getComponent(e Entity, id component.ID) (any, bool) {
	if !w.entities.isAlive(e) {
		return nil, false
	}
	return w.store(id).get(e.id())
}

func (w *World) hasComponent(e Entity, id component.ID) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	return w.store(id).has(e.id())
}

func (w *World) removeComponent(e Entity, id component.ID) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	return w.store(id).remove(e.id())
}

// Query returns the entities that carry every listed component,
// iterating the smallest store.
func (w *World) Query(ids ...component.ID) []Entity {
	if len(ids) == 0 {
		return nil
	}

	smallest := w.store(ids[0])
	for _, id := range ids[1:] {
		if s := w.store(id); s.len() < smallest.len() {
			smallest = s
		}
	}

	out := make([]Entity, 0, smallest.len())
outer:
	for _, eid := range smallest.denseIDs {
		for _, id := range ids {
			if !w.store(id).has(eid) {
				continue outer
			}
		}
		out = append(out, makeEntity(eid, w.entities.gen[eid-1]))
	}
	return out
}
