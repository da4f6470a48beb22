package ledger

import (
	"context"

	"ledger/internal/core"
	"ledger/internal/kv"
)

// Liabilities is the repository for debts and other obligations.
type Liabilities struct {
	c collection[core.Liability]
}

type LiabilityPatch struct {
	Name         *string
	Type         *string
	Amount       *core.Money
	Date         *core.Date
	Description  *string
	InterestRate *int64
}

func newLiabilities(l *Ledger) *Liabilities {
	return &Liabilities{c: collection[core.Liability]{
		ledger: l,
		key:    kv.KeyLiabilities,
		name:   "liabilities",
		getID:  func(li core.Liability) string { return li.ID },
		onCreate: func(li *core.Liability) {
			li.ID = l.newID()
			li.CreatedAt = l.now()
			if li.Date.IsZero() {
				li.Date = core.DateOf(l.now())
			}
		},
		validate: core.Liability.Validate,
	}}
}

func (r *Liabilities) Create(ctx context.Context, draft core.Liability) (core.Liability, error) {
	return r.c.create(ctx, draft)
}

func (r *Liabilities) All(ctx context.Context) ([]core.Liability, error) {
	return r.c.all(ctx)
}

func (r *Liabilities) Update(ctx context.Context, id string, patch LiabilityPatch) (core.Liability, error) {
	return r.c.update(ctx, id, func(li *core.Liability) {
		if patch.Name != nil {
			li.Name = *patch.Name
		}
		if patch.Type != nil {
			li.Type = *patch.Type
		}
		if patch.Amount != nil {
			li.Amount = *patch.Amount
		}
		if patch.Date != nil {
			li.Date = *patch.Date
		}
		if patch.Description != nil {
			li.Description = *patch.Description
		}
		if patch.InterestRate != nil {
			li.InterestRate = *patch.InterestRate
		}
	})
}

func (r *Liabilities) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}
