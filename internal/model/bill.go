package model

import "github.com/shopspring/decimal"

// Bill is an upcoming payment. IsPaid only ever moves from false to true.
type Bill struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Amount  decimal.Decimal `json:"amount"`
	DueDate Date            `json:"dueDate"`
	IsPaid  bool            `json:"isPaid"`
}
