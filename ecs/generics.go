package ecs

import "github.com/milk9111/gridpaint/ecs/component"

// Add attaches value to e under handle. Components are stored by pointer so
// systems mutate them in place.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value *T) error {
	if value == nil {
		return component.ErrNilComponent
	}
	return w.AddComponent(e, handle.ID(), value)
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.RemoveComponent(e, handle.ID())
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.HasComponent(e, handle.ID())
}

func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	value, ok := w.GetComponent(e, handle.ID())
	if !ok {
		return nil, false
	}
	cast, ok := value.(*T)
	return cast, ok
}

// First returns the first entity carrying handle and its component.
func First[T any](w *World, handle component.ComponentHandle[T]) (Entity, *T, bool) {
	e, ok := w.First(handle.ID())
	if !ok {
		return 0, nil, false
	}
	v, ok := Get(w, e, handle)
	return e, v, ok
}

// ForEach calls fn for every entity carrying handle. fn must not add or
// remove components of the same kind.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(Entity, *T)) {
	for _, e := range w.Query(handle.ID()) {
		if v, ok := Get(w, e, handle); ok {
			fn(e, v)
		}
	}
}
