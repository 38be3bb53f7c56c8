package model

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// Kind says whether a transaction adds or removes money.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// ParseKind validates a kind string.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindIncome, KindExpense:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown transaction type %q (want income or expense)", s)
	}
}

// Transaction is one ledger record.
type Transaction struct {
	ID          string          `json:"id"`
	Type        Kind            `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        Date            `json:"date"`
	SplitWith   []string        `json:"splitWith,omitempty"` // participant names; Amount is already the payer's share
}

// IsExpense reports whether t is an expense.
func (t Transaction) IsExpense() bool { return t.Type == KindExpense }

// IsIncome reports whether t is income.
func (t Transaction) IsIncome() bool { return t.Type == KindIncome }

// Clone returns a copy that shares no slices with t.
func (t Transaction) Clone() Transaction {
	t.SplitWith = slices.Clone(t.SplitWith)
	return t
}

// TransactionDraft is a transaction that has not been assigned an identity yet.
type TransactionDraft struct {
	Type        Kind
	Amount      decimal.Decimal
	Category    string
	Description string
	Date        Date
	SplitWith   []string
}

// WithID turns the draft into a ledger record.
func (d TransactionDraft) WithID(id string) Transaction {
	return Transaction{
		ID:          id,
		Type:        d.Type,
		Amount:      d.Amount,
		Category:    d.Category,
		Description: d.Description,
		Date:        d.Date,
		SplitWith:   slices.Clone(d.SplitWith),
	}
}

// Draft strips the identity from t.
func (t Transaction) Draft() TransactionDraft {
	return TransactionDraft{
		Type:        t.Type,
		Amount:      t.Amount,
		Category:    t.Category,
		Description: t.Description,
		Date:        t.Date,
		SplitWith:   slices.Clone(t.SplitWith),
	}
}

// TransactionPatch holds the fields of a partial update. Nil fields are left alone.
type TransactionPatch struct {
	Type        *Kind
	Amount      *decimal.Decimal
	Category    *string
	Description *string
	Date        *Date
	SplitWith   *[]string
}

// IsEmpty reports whether the patch sets no fields.
func (p TransactionPatch) IsEmpty() bool {
	return p.Type == nil && p.Amount == nil && p.Category == nil &&
		p.Description == nil && p.Date == nil && p.SplitWith == nil
}

// Apply merges the patch into t. The identity is never changed.
func (p TransactionPatch) Apply(t Transaction) Transaction {
	out := t.Clone()
	if p.Type != nil {
		out.Type = *p.Type
	}
	if p.Amount != nil {
		out.Amount = *p.Amount
	}
	if p.Category != nil {
		out.Category = *p.Category
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.Date != nil {
		out.Date = *p.Date
	}
	if p.SplitWith != nil {
		out.SplitWith = slices.Clone(*p.SplitWith)
	}
	return out
}
