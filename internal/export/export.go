// Package export writes the finance state out as a JSON snapshot, a flat
// CSV of transactions, or an XLSX workbook of transactions.
package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tally-finance/tally/internal/model"
)

// Format names an export format.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ErrUnknownFormat is returned for a format name that is not supported.
var ErrUnknownFormat = errors.New("unknown export format")

// Formats lists the supported formats in display order.
func Formats() []Format {
	return []Format{FormatJSON, FormatCSV, FormatXLSX}
}

// ParseFormat accepts a format name in any case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Ext returns the file extension for f, including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// Write encodes snap to w in format f. CSV and XLSX carry transactions only.
func Write(w io.Writer, f Format, snap model.Snapshot) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, snap)
	case FormatCSV:
		return WriteCSV(w, snap.Transactions)
	case FormatXLSX:
		return WriteXLSX(w, snap.Transactions)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}
