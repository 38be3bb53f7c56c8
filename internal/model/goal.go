package model

import "github.com/shopspring/decimal"

// SavingsGoal tracks progress toward a target amount.
// Current is not clamped: it may go negative or past Target.
type SavingsGoal struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Target   decimal.Decimal `json:"target"`
	Current  decimal.Decimal `json:"current"`
	Deadline Date            `json:"deadline"`
}

// Completed reports whether Current has reached Target.
func (g SavingsGoal) Completed() bool {
	return g.Current.GreaterThanOrEqual(g.Target)
}

// PercentComplete is Current/Target*100, or zero for a non-positive target.
func (g SavingsGoal) PercentComplete() decimal.Decimal {
	if !g.Target.IsPositive() {
		return decimal.Zero
	}
	return g.Current.Div(g.Target).Mul(hundred)
}
