package ledger

import (
	"context"
	"sync"

	"ledger/internal/core"
	"ledger/internal/kv"
)

// SettingsRepo holds the singleton display-currency record.
type SettingsRepo struct {
	mu     sync.Mutex
	ledger *Ledger
}

func newSettingsRepo(l *Ledger) *SettingsRepo {
	return &SettingsRepo{ledger: l}
}

// Get returns the stored settings, or the defaults when none persisted.
func (r *SettingsRepo) Get(ctx context.Context) (core.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok, err := loadJSON[core.Settings](ctx, r.ledger.store, kv.KeySettings)
	if err != nil {
		return core.Settings{}, err
	}
	if !ok {
		return core.DefaultSettings, nil
	}
	return s, nil
}

// Put replaces the settings record.
func (r *SettingsRepo) Put(ctx context.Context, s core.Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := saveJSON(ctx, r.ledger.store, kv.KeySettings, s); err != nil {
		return err
	}
	r.ledger.publish(ctx, "settings", OpSet, "")
	return nil
}
