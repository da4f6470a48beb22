// Package ledger implements the record repositories: one collection per
// entity kind, persisted whole under a single storage key.
//
// Every mutation follows read-collection, mutate-in-memory, write-collection
// under a per-collection mutex. That guard makes the single-writer
// assumption explicit; it does not make two processes sharing one store
// safe, it only serializes callers inside this one.
package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"ledger/internal/kv"
)

// Change describes one successful mutation, for the optional event hook.
type Change struct {
	Collection string    `json:"collection"`
	Op         string    `json:"op"`
	ID         string    `json:"id,omitempty"`
	At         time.Time `json:"at"`
}

// Mutation ops carried in change events.
const (
	OpCreate  = "create"
	OpUpdate  = "update"
	OpDelete  = "delete"
	OpSet     = "set"
	OpPayment = "payment"
)

// Publisher receives change events after successful writes. Publishing is
// best-effort: a publish failure is logged, never surfaced to the caller.
type Publisher interface {
	PublishChange(ctx context.Context, ch Change) error
}

// Ledger bundles all repositories over one store handle.
type Ledger struct {
	store kv.Store
	now   func() time.Time
	newID func() string
	pub   Publisher
	log   *slog.Logger

	Transactions *Transactions
	Budgets      *Budgets
	Goals        *Goals
	Bills        *Bills
	Assets       *Assets
	Liabilities  *Liabilities
	Settings     *SettingsRepo
}

type Option func(*Ledger)

// WithClock overrides the wall clock; tests pin it.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithIDFunc overrides id generation; tests make it deterministic.
func WithIDFunc(newID func() string) Option {
	return func(l *Ledger) { l.newID = newID }
}

// WithPublisher enables change-event publishing.
func WithPublisher(p Publisher) Option {
	return func(l *Ledger) { l.pub = p }
}

func WithLogger(logger *slog.Logger) Option {
	return func(l *Ledger) { l.log = logger }
}

func New(store kv.Store, opts ...Option) *Ledger {
	l := &Ledger{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}

	l.Transactions = newTransactions(l)
	l.Budgets = newBudgets(l)
	l.Goals = newGoals(l)
	l.Bills = newBills(l)
	l.Assets = newAssets(l)
	l.Liabilities = newLiabilities(l)
	l.Settings = newSettingsRepo(l)
	return l
}

func (l *Ledger) publish(ctx context.Context, collection, op, id string) {
	if l.pub == nil {
		return
	}
	ch := Change{Collection: collection, Op: op, ID: id, At: l.now()}
	if err := l.pub.PublishChange(ctx, ch); err != nil {
		l.log.WarnContext(ctx, "Failed to publish change event",
			"error", err,
			"collection", collection,
			"op", op,
			"id", id)
	}
}

// loadJSON reads and decodes one storage key. Absence yields the zero
// value of T with ok=false; a malformed payload is a storage failure, the
// collection is reported corrupt and left untouched.
func loadJSON[T any](ctx context.Context, store kv.Store, key string) (T, bool, error) {
	var out T
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return out, false, err
	}
	if !ok {
		return out, false, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, false, fmt.Errorf("decode %s: %v: %w", key, err, kv.ErrUnavailable)
	}
	return out, true, nil
}

func saveJSON[T any](ctx context.Context, store kv.Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return store.Set(ctx, key, raw)
}
