// Package validate checks user input before it reaches the finance store,
// which trusts whatever it is given.
package validate

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tally-finance/tally/internal/categories"
	"github.com/tally-finance/tally/internal/model"
)

// Error describes one invalid field.
type Error struct {
	Field       string
	Description string
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Description)
}

// Join folds errs into a single error, or nil when errs is empty.
func Join(errs []Error) error {
	if len(errs) == 0 {
		return nil
	}
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}

// Transaction checks a draft. When vocab is non-nil the category must be
// one offered for the draft's type.
func Transaction(d model.TransactionDraft, vocab *categories.Vocabulary) []Error {
	var errs []Error

	if _, err := model.ParseKind(string(d.Type)); err != nil {
		errs = append(errs, Error{Field: "type", Description: "must be income or expense"})
	}
	errs = positive(errs, "amount", d.Amount)
	errs = required(errs, "description", d.Description)
	if strings.TrimSpace(d.Category) == "" {
		errs = append(errs, Error{Field: "category", Description: "is required"})
	} else if vocab != nil && d.Type != "" && !vocab.Contains(d.Type, d.Category) {
		errs = append(errs, Error{
			Field:       "category",
			Description: fmt.Sprintf("%q is not a %s category (have %s)", d.Category, d.Type, strings.Join(vocab.For(d.Type), ", ")),
		})
	}
	if d.Date.IsZero() {
		errs = append(errs, Error{Field: "date", Description: "is required"})
	}
	for _, name := range d.SplitWith {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, Error{Field: "split", Description: "participant names must not be empty"})
			break
		}
	}
	return errs
}

// Goal checks the fields of a new savings goal.
func Goal(name string, target decimal.Decimal, deadline model.Date) []Error {
	var errs []Error
	errs = required(errs, "name", name)
	errs = positive(errs, "target", target)
	if deadline.IsZero() {
		errs = append(errs, Error{Field: "deadline", Description: "is required"})
	}
	return errs
}

// Bill checks the fields of a new bill.
func Bill(name string, amount decimal.Decimal, due model.Date) []Error {
	var errs []Error
	errs = required(errs, "name", name)
	errs = positive(errs, "amount", amount)
	if due.IsZero() {
		errs = append(errs, Error{Field: "due", Description: "is required"})
	}
	return errs
}

// Limit checks a budget limit. Zero is allowed and means "no budget".
func Limit(limit decimal.Decimal) []Error {
	if limit.IsNegative() {
		return []Error{{Field: "limit", Description: "must not be negative"}}
	}
	return nil
}

func required(errs []Error, field, value string) []Error {
	if strings.TrimSpace(value) == "" {
		return append(errs, Error{Field: field, Description: "is required"})
	}
	return errs
}

func positive(errs []Error, field string, v decimal.Decimal) []Error {
	if !v.IsPositive() {
		return append(errs, Error{Field: field, Description: "must be greater than zero"})
	}
	return errs
}
