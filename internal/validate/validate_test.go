package validate

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-finance/tally/internal/categories"
	"github.com/tally-finance/tally/internal/model"
)

func validDraft() model.TransactionDraft {
	return model.TransactionDraft{
		Type:        model.KindExpense,
		Amount:      decimal.RequireFromString("12.5"),
		Category:    "Food",
		Description: "lunch",
		Date:        model.NewDate(2025, time.January, 2),
	}
}

func fields(errs []Error) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Field
	}
	return out
}

func TestTransaction_Valid(t *testing.T) {
	vocab := categories.Default()
	assert.Empty(t, Transaction(validDraft(), &vocab))
	assert.Empty(t, Transaction(validDraft(), nil))
}

func TestTransaction_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*model.TransactionDraft)
		want   []string
	}{
		{"zero amount", func(d *model.TransactionDraft) { d.Amount = decimal.Zero }, []string{"amount"}},
		{"negative amount", func(d *model.TransactionDraft) { d.Amount = decimal.NewFromInt(-1) }, []string{"amount"}},
		{"blank description", func(d *model.TransactionDraft) { d.Description = "  " }, []string{"description"}},
		{"no category", func(d *model.TransactionDraft) { d.Category = "" }, []string{"category"}},
		{"no date", func(d *model.TransactionDraft) { d.Date = model.Date{} }, []string{"date"}},
		{"bad type", func(d *model.TransactionDraft) { d.Type = "transfer" }, []string{"type"}},
		{"empty participant", func(d *model.TransactionDraft) { d.SplitWith = []string{"ana", ""} }, []string{"split"}},
		{"everything", func(d *model.TransactionDraft) { *d = model.TransactionDraft{Type: model.KindIncome} }, []string{"amount", "description", "category", "date"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.modify(&d)
			assert.Equal(t, tt.want, fields(Transaction(d, nil)))
		})
	}
}

func TestTransaction_Vocabulary(t *testing.T) {
	vocab := categories.Default()

	d := validDraft()
	d.Category = "Job"
	errs := Transaction(d, &vocab)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Description, `"Job" is not a expense category`)

	d.Type = model.KindIncome
	assert.Empty(t, Transaction(d, &vocab))

	d.Category = "job"
	assert.Len(t, Transaction(d, &vocab), 1, "categories are case-sensitive")
}

func TestGoal(t *testing.T) {
	deadline := model.NewDate(2025, time.December, 31)
	assert.Empty(t, Goal("Laptop", decimal.NewFromInt(1000), deadline))
	assert.Equal(t, []string{"name", "target", "deadline"}, fields(Goal("", decimal.Zero, model.Date{})))
}

func TestBill(t *testing.T) {
	due := model.NewDate(2025, time.February, 1)
	assert.Empty(t, Bill("Rent", decimal.NewFromInt(800), due))
	assert.Equal(t, []string{"amount"}, fields(Bill("Rent", decimal.NewFromInt(-5), due)))
}

func TestLimit(t *testing.T) {
	assert.Empty(t, Limit(decimal.Zero))
	assert.Empty(t, Limit(decimal.NewFromInt(300)))
	assert.Len(t, Limit(decimal.NewFromInt(-1)), 1)
}

func TestJoin(t *testing.T) {
	assert.NoError(t, Join(nil))

	err := Join([]Error{{Field: "amount", Description: "must be greater than zero"}, {Field: "date", Description: "is required"}})
	require.Error(t, err)
	assert.Equal(t, "validation failed: amount: must be greater than zero; date: is required", err.Error())
}
