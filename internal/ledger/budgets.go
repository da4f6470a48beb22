package ledger

import (
	"context"
	"strings"
	"sync"

	"ledger/internal/core"
	"ledger/internal/kv"
)

// Budgets maps category names to monthly limits. Unlike the other
// repositories it is a keyed map, not an id-addressed array: setting an
// existing category overwrites its limit, and nothing else references the
// category (deleting a budget never cascades into transactions).
type Budgets struct {
	mu     sync.Mutex
	ledger *Ledger
}

func newBudgets(l *Ledger) *Budgets {
	return &Budgets{ledger: l}
}

// All returns the full category-to-limit mapping; empty map when none set.
func (r *Budgets) All(ctx context.Context) (core.Budgets, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

// Set stores the limit for a category, overwriting any previous value.
func (r *Budgets) Set(ctx context.Context, category string, limit core.Money) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return core.ErrEmptyCategory
	}
	if err := limit.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	budgets, err := r.load(ctx)
	if err != nil {
		return err
	}
	budgets[category] = limit
	if err := r.save(ctx, budgets); err != nil {
		return err
	}

	r.ledger.publish(ctx, "budgets", OpSet, category)
	return nil
}

// Delete removes a category's budget; an absent category is a no-op.
func (r *Budgets) Delete(ctx context.Context, category string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	budgets, err := r.load(ctx)
	if err != nil {
		return err
	}
	if _, ok := budgets[category]; !ok {
		return nil
	}
	delete(budgets, category)
	if err := r.save(ctx, budgets); err != nil {
		return err
	}

	r.ledger.publish(ctx, "budgets", OpDelete, category)
	return nil
}

func (r *Budgets) load(ctx context.Context) (core.Budgets, error) {
	budgets, ok, err := loadJSON[core.Budgets](ctx, r.ledger.store, kv.KeyBudgets)
	if err != nil {
		return nil, err
	}
	if !ok || budgets == nil {
		return core.Budgets{}, nil
	}
	return budgets, nil
}

func (r *Budgets) save(ctx context.Context, budgets core.Budgets) error {
	return saveJSON(ctx, r.ledger.store, kv.KeyBudgets, budgets)
}
