package model

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Budget is a spending limit for one category. Spent is derived from the
// ledger and is only ever written by the budget recalculation.
type Budget struct {
	Category string          `json:"category"`
	Limit    decimal.Decimal `json:"limit"`
	Spent    decimal.Decimal `json:"spent"`
}

// OverBudget reports whether spending exceeds the limit.
func (b Budget) OverBudget() bool {
	return b.Spent.GreaterThan(b.Limit)
}

// Overage is the amount spent beyond the limit, or zero.
func (b Budget) Overage() decimal.Decimal {
	if !b.OverBudget() {
		return decimal.Zero
	}
	return b.Spent.Sub(b.Limit)
}

// Remaining is Limit - Spent. Negative when over budget.
func (b Budget) Remaining() decimal.Decimal {
	return b.Limit.Sub(b.Spent)
}

// PercentUsed is Spent/Limit*100, or zero for a non-positive limit.
func (b Budget) PercentUsed() decimal.Decimal {
	if !b.Limit.IsPositive() {
		return decimal.Zero
	}
	return b.Spent.Div(b.Limit).Mul(hundred)
}
