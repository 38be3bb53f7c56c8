package export

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tally-finance/tally/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func sampleSnapshot() model.Snapshot {
	return model.Snapshot{
		Transactions: []model.Transaction{
			{
				ID:          "t2",
				Type:        model.KindExpense,
				Amount:      dec("12.50"),
				Category:    "Food",
				Description: "pizza, drinks, dessert",
				Date:        model.NewDate(2025, time.January, 14),
				SplitWith:   []string{"ana", "bo"},
			},
			{
				ID:          "t1",
				Type:        model.KindIncome,
				Amount:      dec("1500"),
				Category:    "Job",
				Description: "January salary",
				Date:        model.NewDate(2025, time.January, 1),
			},
		},
		Budgets: []model.Budget{
			{Category: "Food", Limit: dec("200"), Spent: dec("12.5")},
		},
		SavingsGoals: []model.SavingsGoal{
			{ID: "g1", Name: "Laptop", Target: dec("1000"), Current: dec("300"), Deadline: model.NewDate(2025, time.June, 30)},
		},
		Bills: []model.Bill{
			{ID: "b1", Name: "Rent", Amount: dec("800"), DueDate: model.NewDate(2025, time.February, 1), IsPaid: true},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"json", FormatJSON},
		{"CSV", FormatCSV},
		{" xlsx ", FormatXLSX},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseFormat("pdf")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
	assert.Equal(t, ".csv", FormatCSV.Ext())
}

func TestJSON_RoundTrip(t *testing.T) {
	snap := sampleSnapshot()

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, snap))

	got, err := ReadSnapshot(&buf)
	require.NoError(t, err)

	require.Len(t, got.Transactions, 2)
	for i, want := range snap.Transactions {
		have := got.Transactions[i]
		assert.Equal(t, want.ID, have.ID)
		assert.Equal(t, want.Type, have.Type)
		assert.True(t, want.Amount.Equal(have.Amount))
		assert.Equal(t, want.Category, have.Category)
		assert.Equal(t, want.Description, have.Description, "descriptions survive unchanged")
		assert.Equal(t, want.Date.String(), have.Date.String())
		assert.Equal(t, want.SplitWith, have.SplitWith)
	}
	require.Len(t, got.Budgets, 1)
	assert.True(t, got.Budgets[0].Spent.Equal(dec("12.5")))
	require.Len(t, got.SavingsGoals, 1)
	assert.Equal(t, "Laptop", got.SavingsGoals[0].Name)
	require.Len(t, got.Bills, 1)
	assert.True(t, got.Bills[0].IsPaid)
}

func TestJSON_Shape(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, model.Snapshot{}))

	out := buf.String()
	assert.Contains(t, out, "\n  \"transactions\": []")
	assert.Contains(t, out, `"savingsGoals": []`)
	assert.NotContains(t, out, "null")
	assert.NotContains(t, out, "achievements")
}

func TestReadSnapshot_Invalid(t *testing.T) {
	_, err := ReadSnapshot(strings.NewReader("{"))
	assert.Error(t, err)
}

func TestMarshalRow(t *testing.T) {
	row := MarshalRow(sampleSnapshot().Transactions[0])
	assert.Equal(t, []string{"2025-01-14", "expense", "Food", "12.5", "pizza; drinks; dessert"}, row)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleSnapshot().Transactions))

	want := "Date,Type,Category,Amount,Description\n" +
		"2025-01-14,expense,Food,12.5,pizza; drinks; dessert\n" +
		"2025-01-01,income,Job,1500,January salary\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSV_NoQuoting(t *testing.T) {
	txn := model.Transaction{
		Type:        model.KindExpense,
		Amount:      dec("3"),
		Category:    "Other",
		Description: `said "hi", left`,
		Date:        model.NewDate(2025, time.March, 2),
	}
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []model.Transaction{txn}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `2025-03-02,expense,Other,3,said "hi"; left`, lines[1])
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, Header+"\n", buf.String())
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleSnapshot().Transactions))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, HeaderFields(), rows[0])
	assert.Equal(t, []string{"2025-01-14", "expense", "Food", "12.5", "pizza, drinks, dessert"}, rows[1])
	assert.Equal(t, "1500", rows[2][colAmount])
}

func TestWrite_Dispatch(t *testing.T) {
	snap := sampleSnapshot()

	var csvBuf bytes.Buffer
	require.NoError(t, Write(&csvBuf, FormatCSV, snap))
	assert.True(t, strings.HasPrefix(csvBuf.String(), Header))

	var jsonBuf bytes.Buffer
	require.NoError(t, Write(&jsonBuf, FormatJSON, snap))
	assert.True(t, strings.HasPrefix(jsonBuf.String(), "{"))

	err := Write(&bytes.Buffer{}, Format("pdf"), snap)
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}
