package budget

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-finance/tally/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func txn(id string, kind model.Kind, category, amount string) model.Transaction {
	return model.Transaction{
		ID:       id,
		Type:     kind,
		Category: category,
		Amount:   dec(amount),
		Date:     model.NewDate(2025, time.January, 10),
	}
}

func TestDefaults(t *testing.T) {
	got := Defaults([]string{"Food", "Transport"}, DefaultLimit)
	require.Len(t, got, 2)
	for _, b := range got {
		assert.True(t, b.Limit.Equal(dec("200")))
		assert.True(t, b.Spent.IsZero())
	}
	assert.Equal(t, "Food", got[0].Category)
	assert.Equal(t, "Transport", got[1].Category)
}

func TestRecalculate_Scenario(t *testing.T) {
	budgets := Defaults([]string{"Food"}, dec("200"))

	txns := []model.Transaction{txn("1", model.KindExpense, "Food", "50")}
	budgets = Recalculate(txns, budgets)
	food, ok := Find(budgets, "Food")
	require.True(t, ok)
	assert.True(t, food.Spent.Equal(dec("50")))
	assert.False(t, food.OverBudget())

	txns = append([]model.Transaction{txn("2", model.KindExpense, "Food", "200")}, txns...)
	budgets = Recalculate(txns, budgets)
	food, _ = Find(budgets, "Food")
	assert.True(t, food.Spent.Equal(dec("250")))
	assert.True(t, food.OverBudget())
	assert.True(t, food.Overage().Equal(dec("50")))
}

func TestRecalculate_Rules(t *testing.T) {
	budgets := Defaults([]string{"Food", "Books"}, dec("200"))
	txns := []model.Transaction{
		txn("1", model.KindExpense, "Food", "10"),
		txn("2", model.KindIncome, "Food", "999"), // income never counts
		txn("3", model.KindExpense, "food", "7"),  // case-sensitive
		txn("4", model.KindExpense, "Travel", "40"),
		txn("5", model.KindExpense, "Food", "0.25"),
	}

	got := Recalculate(txns, budgets)
	require.Len(t, got, 2, "no budget is created for untracked categories")
	assert.True(t, got[0].Spent.Equal(dec("10.25")), "food spent %s", got[0].Spent)
	assert.True(t, got[1].Spent.IsZero())
}

func TestRecalculate_FromScratch(t *testing.T) {
	budgets := []model.Budget{{Category: "Food", Limit: dec("200"), Spent: dec("12345")}}
	got := Recalculate(nil, budgets)
	assert.True(t, got[0].Spent.IsZero(), "stale spent must be discarded")
	assert.True(t, budgets[0].Spent.Equal(dec("12345")), "input is not modified")
}

func TestSetLimit(t *testing.T) {
	budgets := Defaults([]string{"Food", "Books"}, dec("200"))
	budgets[0].Spent = dec("30")

	got, ok := SetLimit(budgets, "Food", dec("500"))
	require.True(t, ok)
	assert.True(t, got[0].Limit.Equal(dec("500")))
	assert.True(t, got[0].Spent.Equal(dec("30")), "spent is untouched")
	assert.True(t, budgets[0].Limit.Equal(dec("200")), "input is not modified")

	_, ok = SetLimit(budgets, "Rent", dec("1"))
	assert.False(t, ok)
}

func TestEqual(t *testing.T) {
	a := Defaults([]string{"Food"}, dec("200"))
	b := Defaults([]string{"Food"}, dec("200.00"))
	assert.True(t, Equal(a, b))

	b[0].Spent = dec("1")
	assert.False(t, Equal(a, b))
	assert.False(t, Equal(a, nil))
}

func TestProgressOf(t *testing.T) {
	budgets := []model.Budget{
		{Category: "Food", Limit: dec("200"), Spent: dec("250")},
		{Category: "Books", Limit: dec("0"), Spent: dec("5")},
		{Category: "Transport", Limit: dec("100"), Spent: dec("25")},
	}
	got := ProgressOf(budgets)
	require.Len(t, got, 2, "zero-limit budgets are skipped")

	assert.Equal(t, "Food", got[0].Category)
	assert.True(t, got[0].Over)
	assert.True(t, got[0].Overage.Equal(dec("50")))
	assert.True(t, got[0].Percent.Equal(dec("125")))

	assert.Equal(t, "Transport", got[1].Category)
	assert.False(t, got[1].Over)
	assert.True(t, got[1].Remaining.Equal(dec("75")))
}

func TestTotals(t *testing.T) {
	budgets := []model.Budget{
		{Category: "Food", Limit: dec("200"), Spent: dec("250")},
		{Category: "Books", Limit: dec("100"), Spent: dec("20")},
	}
	limit, spent, remaining := Totals(budgets)
	assert.True(t, limit.Equal(dec("300")))
	assert.True(t, spent.Equal(dec("270")))
	assert.True(t, remaining.Equal(dec("30")))
}
