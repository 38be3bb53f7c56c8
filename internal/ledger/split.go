package ledger

import "github.com/shopspring/decimal"

// SplitShare returns the payer's share of amount when it is split evenly
// with the given number of other participants, rounded to cents.
func SplitShare(amount decimal.Decimal, others int) decimal.Decimal {
	if others <= 0 {
		return amount
	}
	return amount.Div(decimal.NewFromInt(int64(others + 1))).Round(2)
}
