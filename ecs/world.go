package ecs

import (
	"fmt"

	"github.com/milk9111/gridpaint/ecs/component"
)

// World owns entities, their components and the frame's event queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
	err      error
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its id.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities returns all live entities in id order.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	return w.entities.list()
}

func (w *World) store(id component.ComponentID) *SparseSet {
	s, ok := w.stores[id]
	if !ok {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// AddComponent attaches value to e, replacing any previous value of that kind.
func (w *World) AddComponent(e Entity, id component.ComponentID, value any) error {
	if w == nil || !w.entities.isAlive(e) {
		return fmt.Errorf("add %s: %w", component.Name(id), component.ErrEntityNotAlive)
	}
	if id == 0 {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return fmt.Errorf("add %s: %w", component.Name(id), component.ErrNilComponent)
	}
	w.store(id).Set(e, value)
	return nil
}

// RemoveComponent detaches the component of kind id from e.
func (w *World) RemoveComponent(e Entity, id component.ComponentID) bool {
	if w == nil {
		return false
	}
	s, ok := w.stores[id]
	if !ok {
		return false
	}
	return s.Remove(e)
}

// HasComponent reports whether e has a component of kind id.
func (w *World) HasComponent(e Entity, id component.ComponentID) bool {
	if w == nil {
		return false
	}
	return w.stores[id].Has(e)
}

// GetComponent returns the component of kind id attached to e.
func (w *World) GetComponent(e Entity, id component.ComponentID) (any, bool) {
	if w == nil {
		return nil, false
	}
	s, ok := w.stores[id]
	if !ok || !s.Has(e) {
		return nil, false
	}
	return s.Get(e), true
}

// Query returns the entities carrying every listed component kind.
func (w *World) Query(ids ...component.ComponentID) []Entity {
	if w == nil || len(ids) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(ids))
	for _, id := range ids {
		s, ok := w.stores[id]
		if !ok {
			return nil
		}
		sets = append(sets, s)
	}
	return IntersectEntities(sets...)
}

// First returns the first entity carrying the component kind id.
func (w *World) First(id component.ComponentID) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	s, ok := w.stores[id]
	if !ok || s.Len() == 0 {
		return 0, false
	}
	return s.Entities()[0], true
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Fail records a fatal error. Only the first error is kept.
func (w *World) Fail(err error) {
	if w == nil || err == nil || w.err != nil {
		return
	}
	w.err = err
}

// Err returns the error recorded by Fail, if any.
func (w *World) Err() error {
	if w == nil {
		return nil
	}
	return w.err
}
