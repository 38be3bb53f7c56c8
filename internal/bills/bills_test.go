package bills

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-finance/tally/internal/id"
	"github.com/tally-finance/tally/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var due = model.NewDate(2025, time.February, 1)

func TestAdd(t *testing.T) {
	tr := NewTracker(nil, id.Sequence())
	b := tr.Add("Rent", dec("800"), due)

	assert.Equal(t, "1", b.ID)
	assert.False(t, b.IsPaid)
	assert.True(t, b.Amount.Equal(dec("800")))
	assert.Len(t, tr.List(), 1)
}

func TestMarkPaid_Idempotent(t *testing.T) {
	tr := NewTracker(nil, id.Sequence())
	b := tr.Add("Internet", dec("40"), due)

	found, changed := tr.MarkPaid(b.ID)
	require.True(t, found)
	assert.True(t, changed)
	once := tr.List()

	found, changed = tr.MarkPaid(b.ID)
	require.True(t, found)
	assert.False(t, changed)
	assert.Equal(t, once, tr.List())

	got, _ := tr.Get(b.ID)
	assert.True(t, got.IsPaid)
}

func TestMarkPaid_Missing(t *testing.T) {
	tr := NewTracker(nil, id.Sequence())
	tr.Add("Internet", dec("40"), due)

	found, _ := tr.MarkPaid("nope")
	assert.False(t, found)
	assert.False(t, tr.List()[0].IsPaid)
}

func TestUnpaid(t *testing.T) {
	tr := NewTracker(nil, id.Sequence())
	a := tr.Add("Rent", dec("800"), due)
	tr.Add("Phone", dec("20"), due)
	tr.MarkPaid(a.ID)

	unpaid := Unpaid(tr.List())
	require.Len(t, unpaid, 1)
	assert.Equal(t, "Phone", unpaid[0].Name)
}
