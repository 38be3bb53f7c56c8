package finance

import (
	"github.com/shopspring/decimal"

	"github.com/tally-finance/tally/internal/achievement"
	"github.com/tally-finance/tally/internal/budget"
	"github.com/tally-finance/tally/internal/logging"
	"github.com/tally-finance/tally/internal/model"
)

// AddTransaction records a new transaction and returns it together with
// any achievements it caused to be earned.
func (s *Store) AddTransaction(d model.TransactionDraft) (model.Transaction, []achievement.Event) {
	s.mustOpen()
	txn := s.ledger.Add(d)
	s.log.WithField(logging.FieldID, txn.ID).Debug("transaction added")
	return txn, s.ledgerChanged()
}

// ImportTransactions adds drafts as one mutation. drafts are ordered most
// recent first, the same as List, and keep that order in the ledger.
func (s *Store) ImportTransactions(drafts []model.TransactionDraft) ([]model.Transaction, []achievement.Event) {
	s.mustOpen()
	if len(drafts) == 0 {
		return nil, nil
	}
	added := make([]model.Transaction, len(drafts))
	for i := len(drafts) - 1; i >= 0; i-- {
		added[i] = s.ledger.Add(drafts[i])
	}
	return added, s.ledgerChanged()
}

// UpdateTransaction merges patch into the transaction with the given id.
// It reports false and does nothing when the id is unknown.
func (s *Store) UpdateTransaction(id string, patch model.TransactionPatch) (bool, []achievement.Event) {
	s.mustOpen()
	if !s.ledger.Update(id, patch) {
		return false, nil
	}
	s.log.WithField(logging.FieldID, id).Debug("transaction updated")
	return true, s.ledgerChanged()
}

// DeleteTransaction removes a transaction permanently.
// It reports false and does nothing when the id is unknown.
func (s *Store) DeleteTransaction(id string) (bool, []achievement.Event) {
	s.mustOpen()
	if !s.ledger.Delete(id) {
		return false, nil
	}
	s.log.WithField(logging.FieldID, id).Debug("transaction deleted")
	return true, s.ledgerChanged()
}

// ledgerChanged runs the derived-state pipeline after a ledger mutation.
func (s *Store) ledgerChanged() []achievement.Event {
	txns := s.ledger.List()

	recalculated := budget.Recalculate(txns, s.budgets)
	budgetsChanged := !budget.Equal(s.budgets, recalculated)
	s.budgets = recalculated

	var events []achievement.Event
	s.achievements, events = s.catalog.Evaluate(txns, s.achievements, s.now())
	for _, e := range events {
		s.log.WithField(logging.FieldAchievement, e.ID).Infof("achievement earned: %s", e.Title)
	}

	s.write(KeyTransactions, txns)
	if budgetsChanged {
		s.write(KeyBudgets, s.budgets)
	}
	if len(events) > 0 {
		s.write(KeyAchievements, s.achievements)
	}
	return events
}

// SetBudgetLimit changes the limit for category. Spent is not affected.
// It reports false when category has no budget.
func (s *Store) SetBudgetLimit(category string, limit decimal.Decimal) bool {
	s.mustOpen()
	updated, ok := budget.SetLimit(s.budgets, category, limit)
	if !ok {
		return false
	}
	s.budgets = updated
	s.write(KeyBudgets, s.budgets)
	return true
}

// AddGoal creates a savings goal with no progress.
func (s *Store) AddGoal(name string, target decimal.Decimal, deadline model.Date) model.SavingsGoal {
	s.mustOpen()
	g := s.goals.Add(name, target, deadline)
	s.log.WithField(logging.FieldID, g.ID).Debug("savings goal added")
	s.write(KeyGoals, s.goals.List())
	return g
}

// AdjustGoal adds a signed delta to a goal's progress. A zero delta
// changes nothing and writes nothing. It reports false for an unknown id.
func (s *Store) AdjustGoal(id string, delta decimal.Decimal) bool {
	s.mustOpen()
	found, changed := s.goals.Adjust(id, delta)
	if changed {
		s.log.WithField(logging.FieldID, id).Debug("savings goal adjusted")
		s.write(KeyGoals, s.goals.List())
	}
	return found
}

// AddBill records an unpaid bill.
func (s *Store) AddBill(name string, amount decimal.Decimal, due model.Date) model.Bill {
	s.mustOpen()
	b := s.bills.Add(name, amount, due)
	s.log.WithField(logging.FieldID, b.ID).Debug("bill added")
	s.write(KeyBills, s.bills.List())
	return b
}

// MarkBillPaid marks a bill as paid. Calling it again is harmless.
// It reports false for an unknown id.
func (s *Store) MarkBillPaid(id string) bool {
	s.mustOpen()
	found, changed := s.bills.MarkPaid(id)
	if changed {
		s.log.WithField(logging.FieldID, id).Debug("bill paid")
		s.write(KeyBills, s.bills.List())
	}
	return found
}
