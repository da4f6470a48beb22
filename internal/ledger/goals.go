package ledger

import (
	"context"

	"ledger/internal/core"
	"ledger/internal/kv"
)

// Goals is the repository for savings goals.
type Goals struct {
	c collection[core.Goal]
}

type GoalPatch struct {
	Name          *string
	TargetAmount  *core.Money
	CurrentAmount *core.Money
	TargetDate    *core.Date
	Completed     *bool
}

func newGoals(l *Ledger) *Goals {
	return &Goals{c: collection[core.Goal]{
		ledger: l,
		key:    kv.KeyGoals,
		name:   "goals",
		getID:  func(g core.Goal) string { return g.ID },
		onCreate: func(g *core.Goal) {
			g.ID = l.newID()
			g.CreatedAt = l.now()
			// New goals always start incomplete, whatever the draft says.
			g.Completed = false
		},
		validate: core.Goal.Validate,
	}}
}

func (r *Goals) Create(ctx context.Context, draft core.Goal) (core.Goal, error) {
	return r.c.create(ctx, draft)
}

func (r *Goals) All(ctx context.Context) ([]core.Goal, error) {
	return r.c.all(ctx)
}

func (r *Goals) Update(ctx context.Context, id string, patch GoalPatch) (core.Goal, error) {
	return r.c.update(ctx, id, func(g *core.Goal) {
		if patch.Name != nil {
			g.Name = *patch.Name
		}
		if patch.TargetAmount != nil {
			g.TargetAmount = *patch.TargetAmount
		}
		if patch.CurrentAmount != nil {
			g.CurrentAmount = *patch.CurrentAmount
		}
		if patch.TargetDate != nil {
			g.TargetDate = *patch.TargetDate
		}
		if patch.Completed != nil {
			g.Completed = *patch.Completed
		}
	})
}

func (r *Goals) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}
