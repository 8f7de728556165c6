package component

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID identifies a component kind within the process. Zero is never
// handed out.
type ComponentID uint32

var registry struct {
	mu    sync.Mutex
	names []string
}

func register(name string) ComponentID {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.names = append(registry.names, name)
	return ComponentID(len(registry.names))
}

// Name returns the Go type name a kind was registered with, for logs and
// error messages.
func Name(id ComponentID) string {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if id == 0 || int(id) > len(registry.names) {
		return fmt.Sprintf("component#%d", id)
	}
	return registry.names[id-1]
}

// ComponentHandle gives typed access to one component kind.
type ComponentHandle[T any] struct {
	id ComponentID
}

// NewComponent registers a new kind storing *T values.
func NewComponent[T any]() ComponentHandle[T] {
	var zero T
	return ComponentHandle[T]{id: register(fmt.Sprintf("%T", zero))}
}

func (h ComponentHandle[T]) ID() ComponentID {
	return h.id
}

func (h ComponentHandle[T]) Valid() bool {
	return h.id != 0
}

func (h ComponentHandle[T]) String() string {
	return Name(h.id)
}
