package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/tally-finance/tally/internal/model"
)

// SheetName is the worksheet holding the exported transactions.
const SheetName = "Transactions"

var columnWidths = map[string]float64{
	"A": 12,
	"B": 10,
	"C": 15,
	"D": 12,
	"E": 40,
}

// WriteXLSX writes transactions as a workbook with the same columns as the
// CSV export. Amounts are stored as numbers so spreadsheets can sum them.
func WriteXLSX(w io.Writer, txns []model.Transaction) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	for i, h := range HeaderFields() {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, t := range txns {
		row := i + 2
		amount, _ := t.Amount.Float64()
		values := []any{t.Date.String(), string(t.Type), t.Category, amount, t.Description}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return fmt.Errorf("writing row %d: %w", row, err)
			}
		}
	}

	for col, width := range columnWidths {
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return fmt.Errorf("setting width of column %s: %w", col, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
