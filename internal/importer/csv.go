package importer

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tally-finance/tally/internal/model"
)

const formatCSV = "csv"

// CSVParser reads the Date,Type,Category,Amount,Description layout that
// the CSV export writes. Fields are unquoted; everything after the fourth
// comma is the description. The header row is optional.
type CSVParser struct{}

const (
	csvNumFields   = 5
	csvColDate     = 0
	csvColType     = 1
	csvColCategory = 2
	csvColAmount   = 3
	csvColDesc     = 4
)

// Format returns the parser name.
func (p *CSVParser) Format() string { return formatCSV }

// Parse reads the CSV and returns one draft per row, in file order.
func (p *CSVParser) Parse(r io.Reader) ([]model.TransactionDraft, error) {
	var drafts []model.TransactionDraft
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec := strings.SplitN(line, ",", csvNumFields)
		if n == 1 && strings.EqualFold(strings.TrimSpace(rec[csvColDate]), "date") {
			continue
		}
		if len(rec) != csvNumFields {
			return nil, fmt.Errorf("row %d: wrong number of fields: want %d, got %d", n, csvNumFields, len(rec))
		}
		d, err := parseCSVRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n, err)
		}
		drafts = append(drafts, d)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading transaction CSV: %w", err)
	}
	return drafts, nil
}

func parseCSVRow(rec []string) (model.TransactionDraft, error) {
	date, err := model.ParseDate(strings.TrimSpace(rec[csvColDate]))
	if err != nil {
		return model.TransactionDraft{}, err
	}
	kind, err := model.ParseKind(strings.ToLower(strings.TrimSpace(rec[csvColType])))
	if err != nil {
		return model.TransactionDraft{}, err
	}
	amount, err := ParseAmount(rec[csvColAmount])
	if err != nil {
		return model.TransactionDraft{}, err
	}
	return model.TransactionDraft{
		Type:        kind,
		Amount:      amount,
		Category:    strings.TrimSpace(rec[csvColCategory]),
		Description: rec[csvColDesc],
		Date:        date,
	}, nil
}

// ParseAmount parses a money string, ignoring currency symbols, spaces and
// thousands separators.
func ParseAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '.' || r == '-' {
			return r
		}
		return -1
	}, s)
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return amount, nil
}
