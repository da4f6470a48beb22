package services

import (
	"context"
	"sort"
	"time"

	"ledger/internal/core"
)

// DefaultUpcomingWindowDays is the lookahead used when a caller does not
// choose one.
const DefaultUpcomingWindowDays = 7

// BillSource is the port the cycle engine needs from the bill repository.
type BillSource interface {
	All(ctx context.Context) ([]core.Bill, error)
	AppendPayment(ctx context.Context, id string, p core.Payment) (core.Bill, error)
}

// BillCycle decides which bills are upcoming or overdue from each bill's
// single fixed due date and its payment history.
//
// The due date is never advanced automatically, not even by MarkPaid. For
// a recurring bill that means the caller must move DueDate to the next
// cycle after paying; otherwise, once the old date passes again, Overdue
// will re-flag a bill whose current cycle was in fact paid. Deliberately
// preserved behavior of the single-due-date model.
type BillCycle struct {
	bills BillSource
	now   func() time.Time
}

func NewBillCycle(bills BillSource, now func() time.Time) *BillCycle {
	if now == nil {
		now = time.Now
	}
	return &BillCycle{bills: bills, now: now}
}

// Upcoming returns bills whose due date falls inside [today, today+daysAhead],
// both ends inclusive and day-normalized, ordered ascending by due date.
// Non-positive daysAhead falls back to the default window.
func (e *BillCycle) Upcoming(ctx context.Context, daysAhead int) ([]core.Bill, error) {
	if daysAhead <= 0 {
		daysAhead = DefaultUpcomingWindowDays
	}

	bills, err := e.bills.All(ctx)
	if err != nil {
		return nil, err
	}

	today := core.DateOf(e.now())
	end := today.AddDays(daysAhead)

	upcoming := make([]core.Bill, 0)
	for _, b := range bills {
		if b.DueDate.Before(today) || b.DueDate.After(end) {
			continue
		}
		upcoming = append(upcoming, b)
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DueDate.Before(upcoming[j].DueDate)
	})
	return upcoming, nil
}

// Overdue returns bills whose due date is strictly before today and whose
// current cycle has not been paid: either no payment exists at all, or the
// most recent payment predates the due date.
func (e *BillCycle) Overdue(ctx context.Context) ([]core.Bill, error) {
	bills, err := e.bills.All(ctx)
	if err != nil {
		return nil, err
	}

	today := core.DateOf(e.now())

	overdue := make([]core.Bill, 0)
	for _, b := range bills {
		if !b.DueDate.Before(today) {
			continue
		}
		last, ok := b.LastPayment()
		if !ok || last.Date.Before(b.DueDate) {
			overdue = append(overdue, b)
		}
	}
	return overdue, nil
}

// MarkPaid appends a payment of the bill's current amount, dated
// paymentDate or today when zero. The due date stays where it is.
func (e *BillCycle) MarkPaid(ctx context.Context, id string, paymentDate core.Date) (core.Bill, error) {
	bills, err := e.bills.All(ctx)
	if err != nil {
		return core.Bill{}, err
	}

	var amount core.Money
	found := false
	for _, b := range bills {
		if b.ID == id {
			amount = b.Amount
			found = true
			break
		}
	}
	if !found {
		return core.Bill{}, core.ErrNotFound
	}

	if paymentDate.IsZero() {
		paymentDate = core.DateOf(e.now())
	}
	return e.bills.AppendPayment(ctx, id, core.Payment{Date: paymentDate, Amount: amount})
}
