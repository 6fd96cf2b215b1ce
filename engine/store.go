package engine

import (
	"github.com/lixenwraith/cthulhu-strike/core"
)

// Store is a generic arena for a specific component type T keyed by entity handle
// Sparse set: map for lookup, dense entity slice for iteration
// Owned by the single simulation goroutine, no locking
type Store[T any] struct {
	components map[core.Entity]T
	entities   []core.Entity
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[core.Entity]T),
		entities:   make([]core.Entity, 0, 16),
	}
}

// SetComponent inserts or updates a component for an entity
func (s *Store[T]) SetComponent(e core.Entity, val T) {
	if _, exists := s.components[e]; !exists {
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
}

// GetComponent retrieves a component for an entity
func (s *Store[T]) GetComponent(e core.Entity) (T, bool) {
	val, ok := s.components[e]
	return val, ok
}

// RemoveEntity deletes the entity's component, preserving iteration order of the rest
func (s *Store[T]) RemoveEntity(e core.Entity) {
	if _, exists := s.components[e]; !exists {
		return
	}
	delete(s.components, e)
	for i, entity := range s.entities {
		if entity == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			break
		}
	}
}

// GetAllEntities returns a copy of the entities with this component, in insertion order
// Safe to mutate the store while ranging over the result
func (s *Store[T]) GetAllEntities() []core.Entity {
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// CountEntities returns number of entities with this component
func (s *Store[T]) CountEntities() int {
	return len(s.entities)
}
