package achievement

import (
	"time"

	"github.com/tally-finance/tally/internal/model"
)

// Event reports a badge earned by the evaluation that returned it.
type Event struct {
	ID          string
	Title       string
	Description string
	Icon        string
	EarnedAt    time.Time
}

// Evaluate returns a copy of achievements with every unearned entry whose
// predicate holds marked earned at now, plus one Event per such transition.
// Earned entries are never re-checked or revoked.
func (c *Catalog) Evaluate(txns []model.Transaction, achievements []model.Achievement, now time.Time) ([]model.Achievement, []Event) {
	out := make([]model.Achievement, len(achievements))
	var events []Event
	for i, a := range achievements {
		out[i] = a
		if a.Earned {
			continue
		}
		r, ok := c.byID[a.ID]
		if !ok || r.Earned == nil || !r.Earned(txns) {
			continue
		}
		at := now
		out[i].Earned = true
		out[i].EarnedAt = &at
		events = append(events, Event{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Description,
			Icon:        a.Icon,
			EarnedAt:    now,
		})
	}
	return out, events
}

// CountEarned returns how many achievements are earned.
func CountEarned(achievements []model.Achievement) int {
	n := 0
	for _, a := range achievements {
		if a.Earned {
			n++
		}
	}
	return n
}
