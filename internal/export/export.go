// Package export renders label reports as spreadsheet files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ledgerbook/backend/internal/aggregate"
	"github.com/xuri/excelize/v2"
)

var header = []string{"label", "amount", "comment"}

// bom makes spreadsheet applications read the CSV as UTF-8.
var bom = []byte{0xEF, 0xBB, 0xBF}

// text quotes values that spreadsheet applications would read as a formula.
func text(s string) string {
	if s != "" && strings.ContainsRune("=+-@\t\r", rune(s[0])) {
		return "'" + s
	}
	return s
}

// CSV writes the report as comma separated values with a header row.
func CSV(w io.Writer, rows []aggregate.LabelTotal) error {
	if _, err := w.Write(bom); err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, row := range rows {
		err := writer.Write([]string{
			text(row.Label),
			strconv.FormatFloat(row.Amount, 'f', -1, 64),
			text(row.Comment),
		})
		if err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// XLSX writes the report as a workbook with a single sheet.
func XLSX(w io.Writer, sheet string, rows []aggregate.LabelTotal) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		if err := f.SetSheetRow(sheet, cell, &[]any{text(row.Label), row.Amount, text(row.Comment)}); err != nil {
			return err
		}
	}

	return f.Write(w)
}
