// Package achievement evaluates the fixed badge catalog against the ledger.
package achievement

import (
	"github.com/tally-finance/tally/internal/model"
)

// Predicate decides from the ledger whether a badge is earned.
type Predicate func(txns []model.Transaction) bool

// Rule is one catalog entry. A nil Earned predicate means the badge is
// never awarded automatically.
type Rule struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Earned      Predicate
}

// Catalog is a closed, ordered table of rules keyed by id.
type Catalog struct {
	rules []Rule
	byID  map[string]Rule
}

// NewCatalog builds a catalog. Panics on a duplicate id.
func NewCatalog(rules ...Rule) *Catalog {
	c := &Catalog{byID: make(map[string]Rule, len(rules))}
	for _, r := range rules {
		if _, ok := c.byID[r.ID]; ok {
			panic("duplicate achievement id: " + r.ID)
		}
		c.byID[r.ID] = r
		c.rules = append(c.rules, r)
	}
	return c
}

// DefaultCatalog returns the built-in five badges.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		Rule{ID: "1", Title: "First Transaction", Description: "Log your first transaction", Icon: "🎯", Earned: MinTransactions(1)},
		Rule{ID: "2", Title: "Budget Master", Description: "Stay within budget for a week", Icon: "💪"},
		Rule{ID: "3", Title: "Savings Star", Description: "Reach your first savings goal", Icon: "⭐"},
		Rule{ID: "4", Title: "Expense Tracker", Description: "Log 50 transactions", Icon: "📊", Earned: MinTransactions(50)},
		Rule{ID: "5", Title: "Bill Organizer", Description: "Pay all bills on time for a month", Icon: "🏆"},
	)
}

// MinTransactions is earned once the ledger holds at least n transactions.
func MinTransactions(n int) Predicate {
	return func(txns []model.Transaction) bool {
		return len(txns) >= n
	}
}

// Seed returns an unearned record for every catalog entry.
func (c *Catalog) Seed() []model.Achievement {
	out := make([]model.Achievement, 0, len(c.rules))
	for _, r := range c.rules {
		out = append(out, r.record())
	}
	return out
}

// Merge appends records for catalog entries missing from stored, so
// badges added to the catalog later show up for existing users.
// Stored records, earned or not, are kept as they are.
func (c *Catalog) Merge(stored []model.Achievement) []model.Achievement {
	have := make(map[string]bool, len(stored))
	out := make([]model.Achievement, 0, len(stored))
	for _, a := range stored {
		have[a.ID] = true
		out = append(out, a)
	}
	for _, r := range c.rules {
		if !have[r.ID] {
			out = append(out, r.record())
		}
	}
	return out
}

func (r Rule) record() model.Achievement {
	return model.Achievement{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Icon:        r.Icon,
	}
}
