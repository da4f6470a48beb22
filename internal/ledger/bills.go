package ledger

import (
	"context"

	"ledger/internal/core"
	"ledger/internal/kv"
)

// Bills is the repository for recurring bills and their payment history.
type Bills struct {
	c collection[core.Bill]
}

// BillPatch deliberately has no PaymentHistory field: history is
// append-only through AppendPayment, never replaced by an update.
type BillPatch struct {
	Name      *string
	Amount    *core.Money
	DueDate   *core.Date
	Frequency *string
	AutoPay   *bool
}

func newBills(l *Ledger) *Bills {
	return &Bills{c: collection[core.Bill]{
		ledger: l,
		key:    kv.KeyBills,
		name:   "bills",
		getID:  func(b core.Bill) string { return b.ID },
		onCreate: func(b *core.Bill) {
			b.ID = l.newID()
			b.CreatedAt = l.now()
			// A new bill starts with an empty, non-nil history so the
			// persisted JSON carries [] rather than null.
			b.PaymentHistory = []core.Payment{}
		},
		validate: core.Bill.Validate,
	}}
}

func (r *Bills) Create(ctx context.Context, draft core.Bill) (core.Bill, error) {
	return r.c.create(ctx, draft)
}

func (r *Bills) All(ctx context.Context) ([]core.Bill, error) {
	return r.c.all(ctx)
}

func (r *Bills) Update(ctx context.Context, id string, patch BillPatch) (core.Bill, error) {
	return r.c.update(ctx, id, func(b *core.Bill) {
		if patch.Name != nil {
			b.Name = *patch.Name
		}
		if patch.Amount != nil {
			b.Amount = *patch.Amount
		}
		if patch.DueDate != nil {
			b.DueDate = *patch.DueDate
		}
		if patch.Frequency != nil {
			b.Frequency = *patch.Frequency
		}
		if patch.AutoPay != nil {
			b.AutoPay = *patch.AutoPay
		}
	})
}

func (r *Bills) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}

// AppendPayment records a payment at the end of the bill's history. The
// due date is left alone: advancing it for the next cycle is the caller's
// decision, not the repository's.
func (r *Bills) AppendPayment(ctx context.Context, id string, p core.Payment) (core.Bill, error) {
	return r.c.mutate(ctx, id, OpPayment, func(b *core.Bill) {
		b.PaymentHistory = append(b.PaymentHistory, p)
	})
}
