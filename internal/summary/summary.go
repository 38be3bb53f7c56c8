// Package summary computes the dashboard figures from the finance state.
// Everything here is a pure function of its inputs.
package summary

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-finance/tally/internal/achievement"
	"github.com/tally-finance/tally/internal/budget"
	"github.com/tally-finance/tally/internal/goals"
	"github.com/tally-finance/tally/internal/model"
)

// RecentCount is how many transactions the dashboard lists.
const RecentCount = 5

// TrendMonths is the length of the income/expense series.
const TrendMonths = 6

// CategoryAmount is an amount aggregated by category.
type CategoryAmount struct {
	Category string
	Amount   decimal.Decimal
}

// MonthTotals is income and expense for one calendar month.
type MonthTotals struct {
	Key      string // YYYY-MM
	Label    string // "Jan 25"
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// Balance is income minus expenses.
func (m MonthTotals) Balance() decimal.Decimal {
	return m.Income.Sub(m.Expenses)
}

// Input is the state a Dashboard is computed from.
type Input struct {
	Transactions []model.Transaction
	Budgets      []model.Budget
	Goals        []model.SavingsGoal
	Achievements []model.Achievement
}

// Dashboard is the overview shown by the summary command.
type Dashboard struct {
	Month MonthTotals

	BudgetLimit     decimal.Decimal
	BudgetSpent     decimal.Decimal
	BudgetRemaining decimal.Decimal

	GoalsCompleted     int
	GoalsTotal         int
	AchievementsEarned int
	AchievementsTotal  int

	ByCategory []CategoryAmount
	Trend      []MonthTotals
	Recent     []model.Transaction
}

// Build computes the dashboard for the month containing now.
func Build(in Input, now time.Time) Dashboard {
	d := Dashboard{
		Month:              MonthOf(in.Transactions, now.Year(), now.Month()),
		GoalsCompleted:     goals.CountCompleted(in.Goals),
		GoalsTotal:         len(in.Goals),
		AchievementsEarned: achievement.CountEarned(in.Achievements),
		AchievementsTotal:  len(in.Achievements),
		ByCategory:         ExpensesByCategory(in.Transactions),
		Trend:              LastMonths(in.Transactions, now, TrendMonths),
	}
	d.BudgetLimit, d.BudgetSpent, d.BudgetRemaining = budget.Totals(in.Budgets)

	n := min(RecentCount, len(in.Transactions))
	d.Recent = make([]model.Transaction, n)
	copy(d.Recent, in.Transactions[:n])
	return d
}

// MonthOf totals the transactions dated in the given month.
func MonthOf(txns []model.Transaction, year int, month time.Month) MonthTotals {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	m := MonthTotals{
		Key:      first.Format("2006-01"),
		Label:    first.Format("Jan 06"),
		Income:   decimal.Zero,
		Expenses: decimal.Zero,
	}
	for _, t := range txns {
		if t.Date.MonthKey() != m.Key {
			continue
		}
		if t.IsIncome() {
			m.Income = m.Income.Add(t.Amount)
		} else if t.IsExpense() {
			m.Expenses = m.Expenses.Add(t.Amount)
		}
	}
	return m
}

// LastMonths returns totals for the n months ending with the month of now,
// oldest first.
func LastMonths(txns []model.Transaction, now time.Time, n int) []MonthTotals {
	out := make([]MonthTotals, 0, n)
	for i := n - 1; i >= 0; i-- {
		// Day 1 so AddDate never spills into the following month.
		m := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		out = append(out, MonthOf(txns, m.Year(), m.Month()))
	}
	return out
}

// ExpensesByCategory sums expenses per category across the whole ledger,
// in order of first appearance.
func ExpensesByCategory(txns []model.Transaction) []CategoryAmount {
	var out []CategoryAmount
	index := make(map[string]int)
	for _, t := range txns {
		if !t.IsExpense() {
			continue
		}
		i, ok := index[t.Category]
		if !ok {
			i = len(out)
			index[t.Category] = i
			out = append(out, CategoryAmount{Category: t.Category, Amount: decimal.Zero})
		}
		out[i].Amount = out[i].Amount.Add(t.Amount)
	}
	return out
}
