package local

import (
	"context"
	"encoding/json"
	"sync"

	"makemodelyear/services/blog/internal/repo"
)

// collection is one namespace read and written as a whole JSON array.
// mu serializes read-modify-write cycles within this process.
type collection[T any] struct {
	mu        sync.Mutex
	backend   Backend
	namespace string
}

func newCollection[T any](backend Backend, namespace string) *collection[T] {
	return &collection[T]{backend: backend, namespace: namespace}
}

func (c *collection[T]) read(ctx context.Context, op string) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx, op)
}

// modify loads the collection, hands it to fn and saves whatever fn returns.
// Nothing is written when fn fails or reports no change.
func (c *collection[T]) modify(ctx context.Context, op string, fn func([]T) ([]T, bool, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx, op)
	if err != nil {
		return err
	}
	next, changed, err := fn(items)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	data, err := json.Marshal(next)
	if err != nil {
		return repo.LocalError(op, err)
	}
	if err := c.backend.Save(ctx, c.namespace, data); err != nil {
		return repo.LocalError(op, err)
	}
	return nil
}

func (c *collection[T]) load(ctx context.Context, op string) ([]T, error) {
	if c.backend == nil {
		return nil, repo.LocalError(op, repo.ErrLocalUnavailable)
	}
	data, err := c.backend.Load(ctx, c.namespace)
	if err != nil {
		return nil, repo.LocalError(op, err)
	}
	items := []T{}
	if len(data) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, repo.LocalError(op, err)
	}
	return items, nil
}
