package categories

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tally-finance/tally/internal/model"
)

func TestDefault(t *testing.T) {
	v := Default()
	assert.Len(t, v.Expense, 7)
	assert.Len(t, v.Income, 4)
	assert.Contains(t, v.Expense, "Food")
	assert.Contains(t, v.Income, "Scholarship")
}

func TestContains(t *testing.T) {
	v := Default()
	tests := []struct {
		kind     model.Kind
		category string
		want     bool
	}{
		{model.KindExpense, "Food", true},
		{model.KindExpense, "food", false},
		{model.KindExpense, "Job", false},
		{model.KindIncome, "Job", true},
		{model.KindIncome, "Other", true},
		{model.Kind("transfer"), "Other", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, v.Contains(tt.kind, tt.category), "%s/%s", tt.kind, tt.category)
	}
}

func TestFor_ReturnsCopy(t *testing.T) {
	v := Default()
	got := v.For(model.KindExpense)
	got[0] = "changed"
	assert.Equal(t, "Food", v.Expense[0])
}
