package ledger

import (
	"context"

	"ledger/internal/core"
	"ledger/internal/kv"
)

// Assets is the repository for owned assets.
type Assets struct {
	c collection[core.Asset]
}

type AssetPatch struct {
	Name        *string
	Type        *string
	Value       *core.Money
	Date        *core.Date
	Description *string
}

func newAssets(l *Ledger) *Assets {
	return &Assets{c: collection[core.Asset]{
		ledger: l,
		key:    kv.KeyAssets,
		name:   "assets",
		getID:  func(a core.Asset) string { return a.ID },
		onCreate: func(a *core.Asset) {
			a.ID = l.newID()
			a.CreatedAt = l.now()
			if a.Date.IsZero() {
				a.Date = core.DateOf(l.now())
			}
		},
		validate: core.Asset.Validate,
	}}
}

func (r *Assets) Create(ctx context.Context, draft core.Asset) (core.Asset, error) {
	return r.c.create(ctx, draft)
}

func (r *Assets) All(ctx context.Context) ([]core.Asset, error) {
	return r.c.all(ctx)
}

func (r *Assets) Update(ctx context.Context, id string, patch AssetPatch) (core.Asset, error) {
	return r.c.update(ctx, id, func(a *core.Asset) {
		if patch.Name != nil {
			a.Name = *patch.Name
		}
		if patch.Type != nil {
			a.Type = *patch.Type
		}
		if patch.Value != nil {
			a.Value = *patch.Value
		}
		if patch.Date != nil {
			a.Date = *patch.Date
		}
		if patch.Description != nil {
			a.Description = *patch.Description
		}
	})
}

func (r *Assets) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}
