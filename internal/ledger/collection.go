package ledger

import (
	"context"
	"sync"

	"ledger/internal/core"
)

// collection is the generic repository over one JSON-array storage key.
// Entity-specific behavior (id accessors, creation stamping, validation)
// is injected by the typed wrappers in this package.
type collection[T any] struct {
	mu     sync.Mutex
	ledger *Ledger
	key    string
	name   string

	getID    func(T) string
	onCreate func(*T) // stamp id + created-at, apply defaults
	validate func(T) error
}

// all returns the whole collection; an empty slice when nothing has been
// persisted yet.
func (c *collection[T]) all(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

// create stamps identity and creation time onto the draft, validates it,
// appends it and persists the whole collection. The stored record is
// returned so callers see the assigned fields.
func (c *collection[T]) create(ctx context.Context, draft T) (T, error) {
	var zero T
	c.mu.Lock()
	defer c.mu.Unlock()

	c.onCreate(&draft)
	if err := c.validate(draft); err != nil {
		return zero, err
	}

	items, err := c.load(ctx)
	if err != nil {
		return zero, err
	}
	items = append(items, draft)
	if err := c.save(ctx, items); err != nil {
		return zero, err
	}

	c.ledger.publish(ctx, c.name, OpCreate, c.getID(draft))
	return draft, nil
}

// update applies a merge function to the record with the given id and
// persists. A missing id yields core.ErrNotFound.
func (c *collection[T]) update(ctx context.Context, id string, apply func(*T)) (T, error) {
	return c.mutate(ctx, id, OpUpdate, apply)
}

// mutate is update with a caller-chosen event op (bill payments reuse it).
func (c *collection[T]) mutate(ctx context.Context, id, op string, apply func(*T)) (T, error) {
	var zero T
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return zero, err
	}

	idx := -1
	for i := range items {
		if c.getID(items[i]) == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return zero, core.ErrNotFound
	}

	apply(&items[idx])
	if err := c.validate(items[idx]); err != nil {
		return zero, err
	}
	if err := c.save(ctx, items); err != nil {
		return zero, err
	}

	c.ledger.publish(ctx, c.name, op, id)
	return items[idx], nil
}

// remove deletes the record with the given id. Deleting an absent id is a
// no-op, not an error.
func (c *collection[T]) remove(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return err
	}

	kept := items[:0]
	removed := false
	for _, it := range items {
		if c.getID(it) == id {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	if !removed {
		return nil
	}
	if err := c.save(ctx, kept); err != nil {
		return err
	}

	c.ledger.publish(ctx, c.name, OpDelete, id)
	return nil
}

func (c *collection[T]) load(ctx context.Context) ([]T, error) {
	items, ok, err := loadJSON[[]T](ctx, c.ledger.store, c.key)
	if err != nil {
		return nil, err
	}
	if !ok || items == nil {
		return []T{}, nil
	}
	return items, nil
}

func (c *collection[T]) save(ctx context.Context, items []T) error {
	return saveJSON(ctx, c.ledger.store, c.key, items)
}
