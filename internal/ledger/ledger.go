// Package ledger holds the ordered transaction list, most recent first.
package ledger

import (
	"github.com/tally-finance/tally/internal/model"
)

// Ledger is the in-memory transaction sequence. It trusts its inputs:
// validation belongs to the caller.
type Ledger struct {
	txns  []model.Transaction
	newID func() string
}

// New creates a Ledger over txns (most recent first). newID assigns
// identities to added transactions.
func New(txns []model.Transaction, newID func() string) *Ledger {
	own := make([]model.Transaction, len(txns))
	for i, t := range txns {
		own[i] = t.Clone()
	}
	return &Ledger{txns: own, newID: newID}
}

// Add assigns a fresh identity and puts the transaction at the front.
func (l *Ledger) Add(d model.TransactionDraft) model.Transaction {
	txn := d.WithID(l.newID())
	l.txns = append([]model.Transaction{txn}, l.txns...)
	return txn.Clone()
}

// Update merges patch into the transaction with the given id.
// It reports false, changing nothing, when no such transaction exists.
func (l *Ledger) Update(id string, patch model.TransactionPatch) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.txns[i] = patch.Apply(l.txns[i])
	return true
}

// Delete removes the transaction with the given id. Missing ids are a no-op.
func (l *Ledger) Delete(id string) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.txns = append(l.txns[:i:i], l.txns[i+1:]...)
	return true
}

// Get returns the transaction with the given id.
func (l *Ledger) Get(id string) (model.Transaction, bool) {
	i := l.index(id)
	if i < 0 {
		return model.Transaction{}, false
	}
	return l.txns[i].Clone(), true
}

// List returns a copy of every transaction, most recently added first.
func (l *Ledger) List() []model.Transaction {
	out := make([]model.Transaction, len(l.txns))
	for i, t := range l.txns {
		out[i] = t.Clone()
	}
	return out
}

// Len returns the number of transactions.
func (l *Ledger) Len() int {
	return len(l.txns)
}

func (l *Ledger) index(id string) int {
	for i, t := range l.txns {
		if t.ID == id {
			return i
		}
	}
	return -1
}
