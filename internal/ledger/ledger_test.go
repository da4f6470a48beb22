package ledger

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"ledger/internal/core"
	"ledger/internal/kv"
)

func testLedger(t *testing.T) *Ledger {
	t.Helper()
	seq := 0
	return New(kv.NewMemoryStore(),
		WithClock(func() time.Time { return time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC) }),
		WithIDFunc(func() string { seq++; return fmt.Sprintf("id-%d", seq) }),
	)
}

func TestTransactionRoundTrip(t *testing.T) {
	l := testLedger(t)
	ctx := context.Background()

	draft := core.Transaction{
		Type:          core.Expense,
		Category:      "Groceries",
		Amount:        core.Money{Cents: 32000},
		Date:          core.NewDate(2024, 5, 5),
		Description:   "Weekly groceries",
		PaymentMethod: "Credit Card",
	}

	stored, err := l.Transactions.Create(ctx, draft)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if stored.ID == "" || stored.CreatedAt.IsZero() {
		t.Fatalf("create must stamp id and timestamp: %+v", stored)
	}

	all, err := l.Transactions.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(all))
	}
	got := all[0]
	if got.ID != stored.ID || got.Category != draft.Category || got.Amount != draft.Amount ||
		got.Date != draft.Date || got.Description != draft.Description {
		t.Fatalf("stored record mismatch: %+v", got)
	}

	if err := l.Transactions.Delete(ctx, stored.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	all, _ = l.Transactions.All(ctx)
	if len(all) != 0 {
		t.Fatalf("expected empty collection after delete, got %d", len(all))
	}
}

func TestCreateRejectsInvalidRecords(t *testing.T) {
	l := testLedger(t)
	ctx := context.Background()

	_, err := l.Transactions.Create(ctx, core.Transaction{
		Type:     core.Expense,
		Category: "Groceries",
		Amount:   core.Money{Cents: -500},
		Date:     core.NewDate(2024, 5, 5),
	})
	if !errors.Is(err, core.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}

	// Nothing may have been persisted
	all, err := l.Transactions.All(ctx)
	if err != nil || len(all) != 0 {
		t.Fatalf("rejected create must not persist: %d records, err=%v", len(all), err)
	}
}

func TestUpdateMergesPartialFields(t *testing.T) {
	l := testLedger(t)
	ctx := context.Background()

	stored, err := l.Transactions.Create(ctx, core.Transaction{
		Type:          core.Expense,
		Category:      "Utilities",
		Amount:        core.Money{Cents: 15000},
		Date:          core.NewDate(2024, 5, 3),
		Description:   "Electric bill",
		PaymentMethod: "Debit Card",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	amount := core.Money{Cents: 16000}
	updated, err := l.Transactions.Update(ctx, stored.ID, TransactionPatch{Amount: &amount})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Amount != amount {
		t.Fatalf("amount not updated: %+v", updated)
	}
	// Untouched fields survive the merge
	if updated.ID != stored.ID || updated.Category != "Utilities" ||
		updated.Description != "Electric bill" || !updated.CreatedAt.Equal(stored.CreatedAt) {
		t.Fatalf("merge clobbered untouched fields: %+v", updated)
	}
}

func TestUpdateNotFound(t *testing.T) {
	l := testLedger(t)
	desc := "x"
	_, err := l.Transactions.Update(context.Background(), "missing", TransactionPatch{Description: &desc})
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteAbsentIDIsNoOp(t *testing.T) {
	l := testLedger(t)
	if err := l.Transactions.Delete(context.Background(), "missing"); err != nil {
		t.Fatalf("delete of absent id must be a no-op, got %v", err)
	}
}

func TestIDsAreNeverReused(t *testing.T) {
	l := testLedger(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		a, err := l.Assets.Create(ctx, core.Asset{Name: "Account", Value: core.Money{Cents: 100}})
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		if seen[a.ID] {
			t.Fatalf("id %s reused", a.ID)
		}
		seen[a.ID] = true
		if err := l.Assets.Delete(ctx, a.ID); err != nil {
			t.Fatalf("delete %d: %v", i, err)
		}
	}
}

func TestAssetDateDefaultsToCreationDay(t *testing.T) {
	l := testLedger(t)
	a, err := l.Assets.Create(context.Background(), core.Asset{Name: "Checking", Value: core.Money{Cents: 500000}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.Date != core.NewDate(2024, 5, 10) {
		t.Fatalf("date not defaulted to creation day: %v", a.Date)
	}
}

func TestBillDefaultsAndPaymentAppend(t *testing.T) {
	l := testLedger(t)
	ctx := context.Background()

	b, err := l.Bills.Create(ctx, core.Bill{
		Name:    "Internet",
		Amount:  core.Money{Cents: 6000},
		DueDate: core.NewDate(2024, 5, 15),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if b.AutoPay {
		t.Fatalf("autopay must default to false")
	}
	if b.PaymentHistory == nil || len(b.PaymentHistory) != 0 {
		t.Fatalf("payment history must default to empty: %+v", b.PaymentHistory)
	}

	first := core.Payment{Date: core.NewDate(2024, 5, 14), Amount: b.Amount}
	second := core.Payment{Date: core.NewDate(2024, 6, 14), Amount: b.Amount}
	if _, err := l.Bills.AppendPayment(ctx, b.ID, first); err != nil {
		t.Fatalf("append payment: %v", err)
	}
	got, err := l.Bills.AppendPayment(ctx, b.ID, second)
	if err != nil {
		t.Fatalf("append payment: %v", err)
	}
	if len(got.PaymentHistory) != 2 || got.PaymentHistory[0] != first || got.PaymentHistory[1] != second {
		t.Fatalf("history must preserve append order: %+v", got.PaymentHistory)
	}
	if got.DueDate != core.NewDate(2024, 5, 15) {
		t.Fatalf("payment must not move the due date: %v", got.DueDate)
	}

	if _, err := l.Bills.AppendPayment(ctx, "missing", first); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBudgetsOverwriteAndDelete(t *testing.T) {
	l := testLedger(t)
	ctx := context.Background()

	if err := l.Budgets.Set(ctx, "Groceries", core.Money{Cents: 50000}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := l.Budgets.Set(ctx, "Groceries", core.Money{Cents: 45000}); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	all, err := l.Budgets.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 1 || all["Groceries"].Cents != 45000 {
		t.Fatalf("overwrite must keep the last value: %+v", all)
	}

	if err := l.Budgets.Delete(ctx, "Groceries"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := l.Budgets.Delete(ctx, "Groceries"); err != nil {
		t.Fatalf("deleting absent category must be a no-op: %v", err)
	}
	all, _ = l.Budgets.All(ctx)
	if len(all) != 0 {
		t.Fatalf("expected empty budgets, got %+v", all)
	}

	if err := l.Budgets.Set(ctx, "  ", core.Money{Cents: 1}); !errors.Is(err, core.ErrEmptyCategory) {
		t.Fatalf("expected ErrEmptyCategory, got %v", err)
	}
}

func TestSettingsDefaultsThenPut(t *testing.T) {
	l := testLedger(t)
	ctx := context.Background()

	s, err := l.Settings.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if s != core.DefaultSettings {
		t.Fatalf("expected defaults, got %+v", s)
	}

	want := core.Settings{Currency: "EUR", CurrencySymbol: "€"}
	if err := l.Settings.Put(ctx, want); err != nil {
		t.Fatalf("put: %v", err)
	}
	s, _ = l.Settings.Get(ctx)
	if s != want {
		t.Fatalf("expected %+v, got %+v", want, s)
	}
}

func TestCorruptCollectionSurfacesStorageError(t *testing.T) {
	store := kv.NewMemoryStore()
	ctx := context.Background()
	if err := store.Set(ctx, kv.KeyTransactions, []byte(`{not json`)); err != nil {
		t.Fatalf("seed: %v", err)
	}

	l := New(store)
	if _, err := l.Transactions.All(ctx); !errors.Is(err, kv.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable for corrupt payload, got %v", err)
	}

	// The corrupt payload stays untouched: mutations fail before writing.
	if err := l.Transactions.Delete(ctx, "any"); !errors.Is(err, kv.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	raw, _, _ := store.Get(ctx, kv.KeyTransactions)
	if string(raw) != `{not json` {
		t.Fatalf("corrupt collection was modified: %s", raw)
	}
}

type captivePublisher struct {
	changes []Change
}

func (p *captivePublisher) PublishChange(_ context.Context, ch Change) error {
	p.changes = append(p.changes, ch)
	return nil
}

func TestMutationsPublishChangeEvents(t *testing.T) {
	pub := &captivePublisher{}
	seq := 0
	l := New(kv.NewMemoryStore(),
		WithIDFunc(func() string { seq++; return fmt.Sprintf("id-%d", seq) }),
		WithPublisher(pub),
	)
	ctx := context.Background()

	g, err := l.Goals.Create(ctx, core.Goal{Name: "Vacation", TargetAmount: core.Money{Cents: 300000}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	done := true
	if _, err := l.Goals.Update(ctx, g.ID, GoalPatch{Completed: &done}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := l.Goals.Delete(ctx, g.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	want := []string{OpCreate, OpUpdate, OpDelete}
	if len(pub.changes) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(pub.changes))
	}
	for i, op := range want {
		ch := pub.changes[i]
		if ch.Op != op || ch.Collection != "goals" || ch.ID != g.ID {
			t.Errorf("event %d = %+v, want op %s on goals/%s", i, ch, op, g.ID)
		}
	}
}
