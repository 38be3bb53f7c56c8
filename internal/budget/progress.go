package budget

import (
	"github.com/shopspring/decimal"

	"github.com/tally-finance/tally/internal/model"
)

// Progress is the display view of one budget.
type Progress struct {
	Category  string
	Limit     decimal.Decimal
	Spent     decimal.Decimal
	Percent   decimal.Decimal
	Over      bool
	Overage   decimal.Decimal
	Remaining decimal.Decimal
}

// ProgressOf returns progress rows for budgets with a positive limit.
func ProgressOf(budgets []model.Budget) []Progress {
	var out []Progress
	for _, b := range budgets {
		if !b.Limit.IsPositive() {
			continue
		}
		out = append(out, Progress{
			Category:  b.Category,
			Limit:     b.Limit,
			Spent:     b.Spent,
			Percent:   b.PercentUsed(),
			Over:      b.OverBudget(),
			Overage:   b.Overage(),
			Remaining: b.Remaining(),
		})
	}
	return out
}

// Totals sums limits and spending across all budgets.
func Totals(budgets []model.Budget) (limit, spent, remaining decimal.Decimal) {
	limit, spent = decimal.Zero, decimal.Zero
	for _, b := range budgets {
		limit = limit.Add(b.Limit)
		spent = spent.Add(b.Spent)
	}
	return limit, spent, limit.Sub(spent)
}
