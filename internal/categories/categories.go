// Package categories holds the category vocabulary offered for each
// transaction type. The ledger does not enforce it.
package categories

import (
	"slices"

	"github.com/tally-finance/tally/internal/model"
)

// Vocabulary lists the known categories per transaction type.
type Vocabulary struct {
	Expense []string
	Income  []string
}

// Default returns the built-in vocabulary.
func Default() Vocabulary {
	return Vocabulary{
		Expense: []string{"Food", "Transport", "Books", "Entertainment", "Shopping", "Utilities", "Other"},
		Income:  []string{"Job", "Allowance", "Scholarship", "Other"},
	}
}

// For returns the categories offered for kind.
func (v Vocabulary) For(kind model.Kind) []string {
	switch kind {
	case model.KindExpense:
		return slices.Clone(v.Expense)
	case model.KindIncome:
		return slices.Clone(v.Income)
	default:
		return nil
	}
}

// Contains reports whether category is offered for kind. Matching is exact.
func (v Vocabulary) Contains(kind model.Kind, category string) bool {
	return slices.Contains(v.For(kind), category)
}
