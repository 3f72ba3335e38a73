package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"receiptbook/internal/core"
	"receiptbook/internal/i18n"
)

// ReceiptsWorkbook renders the full receipt list as a spreadsheet: one row
// per receipt plus a trailing total row. The sheet is named after the
// localized word for "receipts"; WorkbookFilename derives the matching file
// name.
func ReceiptsWorkbook(receipts []core.Receipt, lang core.Language) ([]byte, error) {
	t := func(key string) string { return i18n.T(lang, key) }

	f := excelize.NewFile()
	defer f.Close()

	sheet := t("receipts")
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("name sheet: %w", err)
	}

	headers := []string{t("receiptNumber"), t("name"), t("date"), t("amount")}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("set header: %w", err)
		}
	}

	row := 2
	for _, r := range receipts {
		values := []interface{}{r.ReceiptNumber, r.Name, r.Date, r.Amount.Rupees()}
		for i, v := range values {
			cell, err := excelize.CoordinatesToCellName(i+1, row)
			if err != nil {
				return nil, fmt.Errorf("data cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("set cell: %w", err)
			}
		}
		row++
	}

	// Trailing total row: label in the date column, sum in the amount column.
	total := core.TotalCollected(receipts)
	if err := f.SetCellValue(sheet, fmt.Sprintf("C%d", row), t("total")); err != nil {
		return nil, fmt.Errorf("set total label: %w", err)
	}
	if err := f.SetCellValue(sheet, fmt.Sprintf("D%d", row), total.Rupees()); err != nil {
		return nil, fmt.Errorf("set total: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// WorkbookFilename is the localized download name for the receipts export.
func WorkbookFilename(lang core.Language) string {
	return i18n.T(lang, "receipts") + ".xlsx"
}
