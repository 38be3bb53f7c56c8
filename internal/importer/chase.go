package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/tally-finance/tally/internal/model"
)

// ChaseParser parses Chase bank checking CSV exports. Debits become
// expenses and credits become income, all filed under Category.
type ChaseParser struct {
	// Category is assigned to every row. Empty means "Other".
	Category string
}

const (
	chaseDateFormat = "01/02/2006"
	chaseNumFields  = 7
	chaseColDate    = 1
	chaseColDesc    = 2
	chaseColAmount  = 3
)

// Format returns the parser name.
func (p *ChaseParser) Format() string { return "chase" }

// Parse reads a Chase CSV and returns drafts newest date first. Rows
// sharing a date keep file order.
func (p *ChaseParser) Parse(r io.Reader) ([]model.TransactionDraft, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = chaseNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading chase CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	category := p.Category
	if category == "" {
		category = "Other"
	}

	var drafts []model.TransactionDraft
	for i, rec := range records[1:] {
		d, err := parseChaseRow(rec, category)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		drafts = append(drafts, d)
	}
	slices.SortStableFunc(drafts, func(a, b model.TransactionDraft) int {
		return b.Date.Compare(a.Date.Time)
	})
	return drafts, nil
}

func parseChaseRow(rec []string, category string) (model.TransactionDraft, error) {
	date, err := time.Parse(chaseDateFormat, rec[chaseColDate])
	if err != nil {
		return model.TransactionDraft{}, fmt.Errorf("parsing date %q: %w", rec[chaseColDate], err)
	}

	amount, err := ParseAmount(rec[chaseColAmount])
	if err != nil {
		return model.TransactionDraft{}, err
	}

	kind := model.KindIncome
	if amount.IsNegative() {
		kind = model.KindExpense
	}

	return model.TransactionDraft{
		Type:        kind,
		Amount:      amount.Abs(),
		Category:    category,
		Description: rec[chaseColDesc],
		Date:        model.DateOf(date),
	}, nil
}
