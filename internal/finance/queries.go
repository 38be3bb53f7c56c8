package finance

import (
	"github.com/tally-finance/tally/internal/model"
)

// Transactions returns the ledger, most recently added first.
func (s *Store) Transactions() []model.Transaction {
	s.mustOpen()
	return s.ledger.List()
}

// Transaction returns one ledger record.
func (s *Store) Transaction(id string) (model.Transaction, bool) {
	s.mustOpen()
	return s.ledger.Get(id)
}

// Budgets returns a copy of the budgets.
func (s *Store) Budgets() []model.Budget {
	s.mustOpen()
	out := make([]model.Budget, len(s.budgets))
	copy(out, s.budgets)
	return out
}

// Goals returns a copy of the savings goals.
func (s *Store) Goals() []model.SavingsGoal {
	s.mustOpen()
	return s.goals.List()
}

// Goal returns one savings goal.
func (s *Store) Goal(id string) (model.SavingsGoal, bool) {
	s.mustOpen()
	return s.goals.Get(id)
}

// Bills returns a copy of the bills.
func (s *Store) Bills() []model.Bill {
	s.mustOpen()
	return s.bills.List()
}

// Achievements returns a copy of the achievement records.
func (s *Store) Achievements() []model.Achievement {
	s.mustOpen()
	out := make([]model.Achievement, len(s.achievements))
	copy(out, s.achievements)
	return out
}

// Snapshot returns the exportable state.
func (s *Store) Snapshot() model.Snapshot {
	s.mustOpen()
	return model.Snapshot{
		Transactions: s.Transactions(),
		Budgets:      s.Budgets(),
		SavingsGoals: s.Goals(),
		Bills:        s.Bills(),
	}
}
