// Package memory provides the in-memory entity registries. All state lives
// for the process lifetime only; persistence across restarts is out of scope.
package memory

import (
	"sync"

	"github.com/procurement/backend/internal/domain/shared"
)

// store is a mutex-guarded id-keyed registry preserving insertion order.
// The core is single-threaded, but the registries guard their maps anyway so
// a future concurrent host cannot corrupt them.
type store[T shared.Entity] struct {
	mu    sync.RWMutex
	byID  map[int64]T
	order []int64
}

func newStore[T shared.Entity]() *store[T] {
	return &store[T]{
		byID: make(map[int64]T),
	}
}

func (s *store[T]) save(entity T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := entity.GetID()
	if _, exists := s.byID[id]; !exists {
		s.order = append(s.order, id)
	}
	s.byID[id] = entity
}

func (s *store[T]) find(id int64) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entity, ok := s.byID[id]
	if !ok {
		var zero T
		return zero, shared.ErrNotFound
	}
	return entity, nil
}

func (s *store[T]) all() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entities := make([]T, 0, len(s.order))
	for _, id := range s.order {
		entities = append(entities, s.byID[id])
	}
	return entities
}
