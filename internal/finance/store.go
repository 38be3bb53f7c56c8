// Package finance is the in-memory finance state: the ledger plus the
// collections derived from it, mirrored to a key-value store on every change.
//
// Every ledger mutation runs the same pipeline to completion before
// returning: mutate ledger, recompute budgets, evaluate achievements, save.
package finance

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/tally-finance/tally/internal/achievement"
	"github.com/tally-finance/tally/internal/bills"
	"github.com/tally-finance/tally/internal/budget"
	"github.com/tally-finance/tally/internal/categories"
	"github.com/tally-finance/tally/internal/goals"
	"github.com/tally-finance/tally/internal/id"
	"github.com/tally-finance/tally/internal/kv"
	"github.com/tally-finance/tally/internal/ledger"
	"github.com/tally-finance/tally/internal/logging"
	"github.com/tally-finance/tally/internal/model"
)

// Keys under which each collection is persisted.
const (
	KeyTransactions = "transactions"
	KeyBudgets      = "budgets"
	KeyGoals        = "savingsGoals"
	KeyBills        = "bills"
	KeyAchievements = "achievements"
)

// Store is the finance state. It is not safe for concurrent use; there is
// exactly one writer.
type Store struct {
	kv      kv.Store
	log     logrus.FieldLogger
	now     func() time.Time
	newID   func() string
	catalog *achievement.Catalog

	budgetCategories []string
	budgetLimit      decimal.Decimal

	ledger       *ledger.Ledger
	budgets      []model.Budget
	goals        *goals.Tracker
	bills        *bills.Tracker
	achievements []model.Achievement

	opened bool
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Store) { s.log = l }
}

// WithClock sets the time source used to stamp earned achievements.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDs sets the identity generator for new records.
func WithIDs(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithCatalog replaces the achievement catalog.
func WithCatalog(c *achievement.Catalog) Option {
	return func(s *Store) { s.catalog = c }
}

// WithDefaultBudgets sets the categories and limit seeded when no budgets
// have been persisted yet.
func WithDefaultBudgets(categories []string, limit decimal.Decimal) Option {
	return func(s *Store) {
		s.budgetCategories = categories
		s.budgetLimit = limit
	}
}

// Open loads every collection from store. A missing or unreadable entry is
// treated as empty; budgets and achievements are seeded when absent.
func Open(store kv.Store, opts ...Option) *Store {
	s := &Store{
		kv:               store,
		log:              logging.Discard(),
		now:              time.Now,
		newID:            id.New,
		catalog:          achievement.DefaultCatalog(),
		budgetCategories: categories.Default().Expense,
		budgetLimit:      budget.DefaultLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load()
	s.opened = true
	return s
}

func (s *Store) load() {
	var txns []model.Transaction
	s.read(KeyTransactions, &txns)
	s.ledger = ledger.New(txns, s.newID)

	var goalList []model.SavingsGoal
	s.read(KeyGoals, &goalList)
	s.goals = goals.NewTracker(goalList, s.newID)

	var billList []model.Bill
	s.read(KeyBills, &billList)
	s.bills = bills.NewTracker(billList, s.newID)

	var stored []model.Budget
	if s.read(KeyBudgets, &stored) {
		s.budgets = stored
	} else {
		s.budgets = budget.Defaults(s.budgetCategories, s.budgetLimit)
	}
	recalculated := budget.Recalculate(s.ledger.List(), s.budgets)
	budgetsChanged := !budget.Equal(stored, recalculated)
	s.budgets = recalculated
	if budgetsChanged {
		s.write(KeyBudgets, s.budgets)
	}

	var achievements []model.Achievement
	if s.read(KeyAchievements, &achievements) {
		s.achievements = s.catalog.Merge(achievements)
		if len(s.achievements) != len(achievements) {
			s.write(KeyAchievements, s.achievements)
		}
	} else {
		s.achievements = s.catalog.Seed()
		s.write(KeyAchievements, s.achievements)
	}

	s.log.WithFields(logrus.Fields{
		"transactions": s.ledger.Len(),
		"budgets":      len(s.budgets),
		"goals":        len(goalList),
		"bills":        len(billList),
	}).Debug("finance state loaded")
}

// read decodes the entry for key into v and reports whether it held a
// usable value. v is left untouched otherwise.
func (s *Store) read(key string, v any) bool {
	data, err := s.kv.Get(key)
	if errors.Is(err, kv.ErrNotFound) {
		return false
	}
	if err != nil {
		s.log.WithError(err).WithField(logging.FieldKey, key).Warn("reading persisted entry failed, using empty")
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.log.WithError(err).WithField(logging.FieldKey, key).Warn("corrupt persisted entry, using empty")
		return false
	}
	return true
}

// write persists v under key. Failures are logged and dropped: the
// in-memory state stays authoritative.
func (s *Store) write(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.WithError(err).WithField(logging.FieldKey, key).Error("encoding state failed")
		return
	}
	if err := s.kv.Put(key, data); err != nil {
		s.log.WithError(err).WithField(logging.FieldKey, key).Warn("saving state failed")
	}
}

func (s *Store) mustOpen() {
	if s == nil || !s.opened {
		panic("finance: Store used before Open")
	}
}
