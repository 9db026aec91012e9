package ecs

import (
	"sort"

	"github.com/milk9111/pong/ecs/component"
)

// World owns entities and one sparse set per component kind.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*sparseSet
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*sparseSet)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity drops every component of e and retires its handle.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e.id())
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

func (w *World) IsAlive(e Entity) bool {
	return IsAlive(w, e)
}

// Entities returns all live entities in slot order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.entities.count)
	for i := range w.entities.gen {
		if e, ok := w.entities.current(entityID(i + 1)); ok {
			out = append(out, e)
		}
	}
	return out
}

// Query returns the live entities that own every listed component kind,
// ordered by slot.
func (w *World) Query(ids ...component.ComponentID) []Entity {
	if w == nil || len(ids) == 0 {
		return nil
	}
	sets := make([]*sparseSet, 0, len(ids))
	for _, id := range ids {
		s, ok := w.stores[id]
		if !ok {
			return nil
		}
		sets = append(sets, s)
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i].len() < sets[j].len() })

	var out []Entity
	for _, id := range sets[0].ids() {
		if !inAll(id, sets[1:]) {
			continue
		}
		if e, ok := w.entities.current(id); ok {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id() < out[j].id() })
	return out
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) store(id component.ComponentID, create bool) *sparseSet {
	s, ok := w.stores[id]
	if !ok && create {
		s = newSparseSet()
		w.stores[id] = s
	}
	return s
}

func inAll(id entityID, sets []*sparseSet) bool {
	for _, s := range sets {
		if !s.has(id) {
			return false
		}
	}
	return true
}
