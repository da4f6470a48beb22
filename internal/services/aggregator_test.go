package services

import (
	"context"
	"testing"
	"time"

	"ledger/internal/core"
)

type fakeTransactions []core.Transaction

func (f fakeTransactions) All(context.Context) ([]core.Transaction, error) { return f, nil }

type fakeAssets []core.Asset

func (f fakeAssets) All(context.Context) ([]core.Asset, error) { return f, nil }

type fakeLiabilities []core.Liability

func (f fakeLiabilities) All(context.Context) ([]core.Liability, error) { return f, nil }

func cents(v int64) core.Money { return core.Money{Cents: v} }

func TestNetWorth(t *testing.T) {
	tests := []struct {
		name        string
		assets      fakeAssets
		liabilities fakeLiabilities
		want        int64
	}{
		{
			name: "empty collections yield zero",
			want: 0,
		},
		{
			name: "assets minus liabilities",
			assets: fakeAssets{
				{Name: "Checking", Value: cents(100000)},
				{Name: "Savings", Value: cents(50000)},
			},
			liabilities: fakeLiabilities{
				{Name: "Card", Amount: cents(30000)},
			},
			want: 120000,
		},
		{
			name: "net worth can go negative",
			assets: fakeAssets{
				{Name: "Cash", Value: cents(10000)},
			},
			liabilities: fakeLiabilities{
				{Name: "Loan", Amount: cents(250000)},
			},
			want: -240000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := NewAggregator(fakeTransactions{}, tt.assets, tt.liabilities)
			got, err := agg.NetWorth(context.Background())
			if err != nil {
				t.Fatalf("NetWorth: %v", err)
			}
			if got.Cents != tt.want {
				t.Errorf("NetWorth = %d, want %d", got.Cents, tt.want)
			}
		})
	}
}

func TestMonthlyTotalsFilterByCalendarMonth(t *testing.T) {
	txs := fakeTransactions{
		{Type: core.Income, Category: "Salary", Amount: cents(500000), Date: core.NewDate(2024, 5, 1)},
		{Type: core.Expense, Category: "Groceries", Amount: cents(32000), Date: core.NewDate(2024, 5, 31)},
		{Type: core.Expense, Category: "Groceries", Amount: cents(28000), Date: core.NewDate(2024, 6, 1)},
		{Type: core.Expense, Category: "Rent/Mortgage", Amount: cents(150000), Date: core.NewDate(2024, 5, 1)},
		{Type: core.Expense, Category: "Groceries", Amount: cents(40000), Date: core.NewDate(2023, 5, 15)},
	}
	agg := NewAggregator(txs, fakeAssets{}, fakeLiabilities{})
	ctx := context.Background()

	income, err := agg.MonthlyIncome(ctx, 2024, time.May)
	if err != nil || income.Cents != 500000 {
		t.Fatalf("MonthlyIncome = %d (err=%v), want 500000", income.Cents, err)
	}

	// 2024-05-31 included, 2024-06-01 and other years excluded
	expenses, err := agg.MonthlyExpenses(ctx, 2024, time.May)
	if err != nil || expenses.Cents != 182000 {
		t.Fatalf("MonthlyExpenses = %d (err=%v), want 182000", expenses.Cents, err)
	}

	june, _ := agg.MonthlyExpenses(ctx, 2024, time.June)
	if june.Cents != 28000 {
		t.Fatalf("June expenses = %d, want 28000", june.Cents)
	}
}

func TestCategorySpendingExcludesIncomeAndOtherCategories(t *testing.T) {
	txs := fakeTransactions{
		{Type: core.Expense, Category: "Groceries", Amount: cents(32000), Date: core.NewDate(2024, 5, 5)},
		{Type: core.Expense, Category: "Groceries", Amount: cents(12000), Date: core.NewDate(2024, 5, 20)},
		// Same category, income type: excluded
		{Type: core.Income, Category: "Groceries", Amount: cents(5000), Date: core.NewDate(2024, 5, 6)},
		// Other category: excluded
		{Type: core.Expense, Category: "Utilities", Amount: cents(15000), Date: core.NewDate(2024, 5, 3)},
		// Other month: excluded
		{Type: core.Expense, Category: "Groceries", Amount: cents(9000), Date: core.NewDate(2024, 4, 28)},
	}
	agg := NewAggregator(txs, fakeAssets{}, fakeLiabilities{})

	got, err := agg.CategorySpending(context.Background(), "Groceries", 2024, time.May)
	if err != nil {
		t.Fatalf("CategorySpending: %v", err)
	}
	if got.Cents != 44000 {
		t.Errorf("CategorySpending = %d, want 44000", got.Cents)
	}
}
