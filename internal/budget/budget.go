// Package budget derives per-category spending from the ledger.
package budget

import (
	"github.com/shopspring/decimal"

	"github.com/tally-finance/tally/internal/model"
)

// DefaultLimit is the limit given to every seeded budget.
var DefaultLimit = decimal.NewFromInt(200)

// Defaults returns one budget per category with the given limit and nothing spent.
func Defaults(categories []string, limit decimal.Decimal) []model.Budget {
	out := make([]model.Budget, 0, len(categories))
	for _, c := range categories {
		out = append(out, model.Budget{Category: c, Limit: limit, Spent: decimal.Zero})
	}
	return out
}

// Recalculate returns a copy of budgets where each Spent is the sum of expense
// amounts in txns whose category matches exactly. Budgets are never created
// for untracked categories.
func Recalculate(txns []model.Transaction, budgets []model.Budget) []model.Budget {
	spent := make(map[string]decimal.Decimal, len(budgets))
	for _, t := range txns {
		if !t.IsExpense() {
			continue
		}
		spent[t.Category] = spent[t.Category].Add(t.Amount)
	}

	out := make([]model.Budget, len(budgets))
	for i, b := range budgets {
		b.Spent = decimal.Zero
		if s, ok := spent[b.Category]; ok {
			b.Spent = s
		}
		out[i] = b
	}
	return out
}

// SetLimit returns a copy of budgets with the limit of category replaced.
// It reports false when no budget exists for category.
func SetLimit(budgets []model.Budget, category string, limit decimal.Decimal) ([]model.Budget, bool) {
	out := make([]model.Budget, len(budgets))
	copy(out, budgets)
	found := false
	for i := range out {
		if out[i].Category == category {
			out[i].Limit = limit
			found = true
		}
	}
	return out, found
}

// Equal reports whether two budget lists hold the same values in the same order.
func Equal(a, b []model.Budget) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Category != b[i].Category || !a[i].Limit.Equal(b[i].Limit) || !a[i].Spent.Equal(b[i].Spent) {
			return false
		}
	}
	return true
}

// Find returns the budget for category.
func Find(budgets []model.Budget, category string) (model.Budget, bool) {
	for _, b := range budgets {
		if b.Category == category {
			return b, true
		}
	}
	return model.Budget{}, false
}
