// Package bills tracks upcoming bills and their paid state.
package bills

import (
	"github.com/shopspring/decimal"

	"github.com/tally-finance/tally/internal/model"
)

// Tracker holds bills in creation order.
type Tracker struct {
	bills []model.Bill
	newID func() string
}

// NewTracker creates a Tracker over existing bills.
func NewTracker(bills []model.Bill, newID func() string) *Tracker {
	own := make([]model.Bill, len(bills))
	copy(own, bills)
	return &Tracker{bills: own, newID: newID}
}

// Add records an unpaid bill.
func (t *Tracker) Add(name string, amount decimal.Decimal, due model.Date) model.Bill {
	b := model.Bill{
		ID:      t.newID(),
		Name:    name,
		Amount:  amount,
		DueDate: due,
	}
	t.bills = append(t.bills, b)
	return b
}

// MarkPaid sets the paid flag. There is no way to unset it.
// changed is false when the bill was already paid.
func (t *Tracker) MarkPaid(id string) (found, changed bool) {
	for i := range t.bills {
		if t.bills[i].ID != id {
			continue
		}
		if t.bills[i].IsPaid {
			return true, false
		}
		t.bills[i].IsPaid = true
		return true, true
	}
	return false, false
}

// Get returns the bill with the given id.
func (t *Tracker) Get(id string) (model.Bill, bool) {
	for _, b := range t.bills {
		if b.ID == id {
			return b, true
		}
	}
	return model.Bill{}, false
}

// List returns a copy of all bills.
func (t *Tracker) List() []model.Bill {
	out := make([]model.Bill, len(t.bills))
	copy(out, t.bills)
	return out
}

// Unpaid returns bills not yet paid.
func Unpaid(bills []model.Bill) []model.Bill {
	var out []model.Bill
	for _, b := range bills {
		if !b.IsPaid {
			out = append(out, b)
		}
	}
	return out
}
