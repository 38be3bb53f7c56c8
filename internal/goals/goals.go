// Package goals tracks savings goals.
package goals

import (
	"github.com/shopspring/decimal"

	"github.com/tally-finance/tally/internal/model"
)

// Tracker holds savings goals in creation order.
type Tracker struct {
	goals []model.SavingsGoal
	newID func() string
}

// NewTracker creates a Tracker over existing goals.
func NewTracker(goals []model.SavingsGoal, newID func() string) *Tracker {
	own := make([]model.SavingsGoal, len(goals))
	copy(own, goals)
	return &Tracker{goals: own, newID: newID}
}

// Add creates a goal with nothing saved yet.
func (t *Tracker) Add(name string, target decimal.Decimal, deadline model.Date) model.SavingsGoal {
	g := model.SavingsGoal{
		ID:       t.newID(),
		Name:     name,
		Target:   target,
		Current:  decimal.Zero,
		Deadline: deadline,
	}
	t.goals = append(t.goals, g)
	return g
}

// Adjust adds a signed delta to a goal's progress without clamping.
// found is false for an unknown id; changed is false when nothing was
// written, which includes a zero delta.
func (t *Tracker) Adjust(id string, delta decimal.Decimal) (found, changed bool) {
	for i := range t.goals {
		if t.goals[i].ID != id {
			continue
		}
		if delta.IsZero() {
			return true, false
		}
		t.goals[i].Current = t.goals[i].Current.Add(delta)
		return true, true
	}
	return false, false
}

// Get returns the goal with the given id.
func (t *Tracker) Get(id string) (model.SavingsGoal, bool) {
	for _, g := range t.goals {
		if g.ID == id {
			return g, true
		}
	}
	return model.SavingsGoal{}, false
}

// List returns a copy of all goals.
func (t *Tracker) List() []model.SavingsGoal {
	out := make([]model.SavingsGoal, len(t.goals))
	copy(out, t.goals)
	return out
}

// CountCompleted returns how many goals have reached their target.
func CountCompleted(goals []model.SavingsGoal) int {
	n := 0
	for _, g := range goals {
		if g.Completed() {
			n++
		}
	}
	return n
}
