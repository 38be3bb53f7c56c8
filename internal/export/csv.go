package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/tally-finance/tally/internal/model"
)

// Header is the first line of a transaction CSV.
const Header = "Date,Type,Category,Amount,Description"

const (
	numFields   = 5
	colDate     = 0
	colType     = 1
	colCategory = 2
	colAmount   = 3
	colDesc     = 4
)

// HeaderFields returns the header split into column names.
func HeaderFields() []string {
	return strings.Split(Header, ",")
}

// MarshalRow converts a transaction to its CSV fields. Commas in the
// description become semicolons; nothing is quoted.
func MarshalRow(t model.Transaction) []string {
	row := make([]string, numFields)
	row[colDate] = t.Date.String()
	row[colType] = string(t.Type)
	row[colCategory] = t.Category
	row[colAmount] = t.Amount.String()
	row[colDesc] = strings.ReplaceAll(t.Description, ",", ";")
	return row
}

// WriteCSV writes the header and one line per transaction, in ledger order.
// Lines are joined by hand: encoding/csv would quote fields, and the format
// is deliberately unquoted.
func WriteCSV(w io.Writer, txns []model.Transaction) error {
	if _, err := io.WriteString(w, Header+"\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, t := range txns {
		line := strings.Join(MarshalRow(t), ",") + "\n"
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return nil
}
