package memory

import (
	"context"
	"sync"
)

type Entity interface {
	GetID() string
}

// Repository is an insert-only store; entities keep their insertion order.
type Repository[T Entity] struct {
	data  map[string]T
	order []string
	mu    sync.RWMutex
}

func New[T Entity]() *Repository[T] {
	return &Repository[T]{
		data: make(map[string]T),
	}
}

func (r *Repository[T]) Save(ctx context.Context, entity T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := entity.GetID()
	if _, exists := r.data[id]; exists {
		return ErrAlreadyExists
	}
	r.data[id] = entity
	r.order = append(r.order, id)
	return nil
}

func (r *Repository[T]) GetByID(ctx context.Context, id string) (T, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	var zero T
	entity, exists := r.data[id]
	if !exists {
		return zero, ErrNotFound
	}
	return entity, nil
}

func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	entities := make([]T, 0, len(r.order))
	for _, id := range r.order {
		entities = append(entities, r.data[id])
	}
	return entities, nil
}

func (r *Repository[T]) Count(ctx context.Context) (int, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data), nil
}
