// Package kv defines the key-value storage port the ledger persists
// through, plus the memory, file and sqlite backends that implement it.
//
// The contract is deliberately minimal: whole serialized collections are
// read and written under single string keys. Anything smarter (indexes,
// partial writes) belongs behind a different port.
package kv

import (
	"context"
	"errors"
)

// ErrUnavailable marks storage failures: the backend is unreachable or a
// persisted payload cannot be read. Callers surface it as a hard failure
// and never attempt partial recovery.
var ErrUnavailable = errors.New("storage unavailable")

// Store is the persistence port. Get reports ok=false when the key has
// never been written; that is not an error.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}

// Storage keys for the ledger collections. Kept stable so persisted data
// survives backend swaps.
const (
	KeyTransactions = "finance_transactions"
	KeyBudgets      = "finance_budgets"
	KeyGoals        = "finance_goals"
	KeyBills        = "finance_bills"
	KeyAssets       = "finance_assets"
	KeyLiabilities  = "finance_liabilities"
	KeySettings     = "finance_settings"
)
