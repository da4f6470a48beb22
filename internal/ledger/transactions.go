package ledger

import (
	"context"

	"ledger/internal/core"
	"ledger/internal/kv"
)

// Transactions is the repository for income and expense events.
type Transactions struct {
	c collection[core.Transaction]
}

// TransactionPatch carries the fields an update may replace. Nil fields
// are left untouched; set fields replace the stored value wholesale.
type TransactionPatch struct {
	Type          *core.TransactionType
	Category      *string
	Amount        *core.Money
	Date          *core.Date
	Description   *string
	PaymentMethod *string
}

func newTransactions(l *Ledger) *Transactions {
	return &Transactions{c: collection[core.Transaction]{
		ledger: l,
		key:    kv.KeyTransactions,
		name:   "transactions",
		getID:  func(t core.Transaction) string { return t.ID },
		onCreate: func(t *core.Transaction) {
			t.ID = l.newID()
			t.CreatedAt = l.now()
		},
		validate: core.Transaction.Validate,
	}}
}

// Create stores the draft with a fresh id and creation timestamp.
func (r *Transactions) Create(ctx context.Context, draft core.Transaction) (core.Transaction, error) {
	return r.c.create(ctx, draft)
}

// All returns every transaction in insertion order.
func (r *Transactions) All(ctx context.Context) ([]core.Transaction, error) {
	return r.c.all(ctx)
}

// Update merges the patch over the stored record.
func (r *Transactions) Update(ctx context.Context, id string, patch TransactionPatch) (core.Transaction, error) {
	return r.c.update(ctx, id, func(t *core.Transaction) {
		if patch.Type != nil {
			t.Type = *patch.Type
		}
		if patch.Category != nil {
			t.Category = *patch.Category
		}
		if patch.Amount != nil {
			t.Amount = *patch.Amount
		}
		if patch.Date != nil {
			t.Date = *patch.Date
		}
		if patch.Description != nil {
			t.Description = *patch.Description
		}
		if patch.PaymentMethod != nil {
			t.PaymentMethod = *patch.PaymentMethod
		}
	})
}

// Delete removes the transaction; absent ids are a no-op.
func (r *Transactions) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}
