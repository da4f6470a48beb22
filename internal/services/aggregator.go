// Package services holds the derived-figure engines: aggregation over raw
// records and the bill due-cycle logic. Both are stateless reads over the
// repositories; nothing here caches or persists derived state.
package services

import (
	"context"
	"time"

	"ledger/internal/core"
)

// Ports onto the repositories. The engines only ever need full snapshots.
type (
	TransactionSource interface {
		All(ctx context.Context) ([]core.Transaction, error)
	}

	AssetSource interface {
		All(ctx context.Context) ([]core.Asset, error)
	}

	LiabilitySource interface {
		All(ctx context.Context) ([]core.Liability, error)
	}
)

// Aggregator computes net worth and period totals. Every call re-scans the
// relevant collections; with whole-collection persistence there is nothing
// cheaper to read anyway.
type Aggregator struct {
	transactions TransactionSource
	assets       AssetSource
	liabilities  LiabilitySource
}

func NewAggregator(tx TransactionSource, as AssetSource, li LiabilitySource) *Aggregator {
	return &Aggregator{transactions: tx, assets: as, liabilities: li}
}

// NetWorth is total asset value minus total liability amount. Empty
// collections contribute zero; the result may be negative.
func (a *Aggregator) NetWorth(ctx context.Context) (core.Money, error) {
	assets, err := a.assets.All(ctx)
	if err != nil {
		return core.Money{}, err
	}
	liabilities, err := a.liabilities.All(ctx)
	if err != nil {
		return core.Money{}, err
	}

	var total core.Money
	for _, as := range assets {
		total = total.Add(as.Value)
	}
	for _, li := range liabilities {
		total = total.Sub(li.Amount)
	}
	return total, nil
}

// MonthlyIncome sums income transactions dated in the given month. The
// match is on the transaction's own date, never its creation timestamp.
func (a *Aggregator) MonthlyIncome(ctx context.Context, year int, month time.Month) (core.Money, error) {
	return a.sumTransactions(ctx, func(t core.Transaction) bool {
		return t.Type == core.Income && t.Date.InMonth(year, month)
	})
}

// MonthlyExpenses sums expense transactions dated in the given month.
func (a *Aggregator) MonthlyExpenses(ctx context.Context, year int, month time.Month) (core.Money, error) {
	return a.sumTransactions(ctx, func(t core.Transaction) bool {
		return t.Type == core.Expense && t.Date.InMonth(year, month)
	})
}

// CategorySpending sums expense transactions for one category in the given
// month. Income in the same category never counts.
func (a *Aggregator) CategorySpending(ctx context.Context, category string, year int, month time.Month) (core.Money, error) {
	return a.sumTransactions(ctx, func(t core.Transaction) bool {
		return t.Type == core.Expense && t.Category == category && t.Date.InMonth(year, month)
	})
}

func (a *Aggregator) sumTransactions(ctx context.Context, match func(core.Transaction) bool) (core.Money, error) {
	txs, err := a.transactions.All(ctx)
	if err != nil {
		return core.Money{}, err
	}
	var total core.Money
	for _, t := range txs {
		if match(t) {
			total = total.Add(t.Amount)
		}
	}
	return total, nil
}
