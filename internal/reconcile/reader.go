package reconcile

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/shakinm/xlsReader/xls"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Column headers of the consolidated accounts-payable report. The amount
// column has no header text in the report, so it is addressed by its
// synthesized positional key.
const (
	dateColumnHeader   = "Relatório de Contas a Pagar - Consolidado"
	amountColumnHeader = "_18"
)

// Row is one extracted (due date label, amount) pair. The label is the raw
// cell text: either a DD/MM/YYYY date or one of the report's footer labels.
type Row struct {
	Label  string
	Amount decimal.Decimal
}

// ExtractRows reads the first sheet of an uploaded .xls/.xlsx report and
// returns the (date, amount) pairs found in the expected columns. Rows
// missing either cell, and rows whose amount does not parse to a finite
// number, are skipped.
func ExtractRows(r io.Reader, filename string) ([]Row, error) {
	rows, err := loadFirstSheet(r, filename)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	dateIdx, amountIdx := -1, -1
	for i, cell := range rows[0] {
		key := strings.TrimSpace(cell)
		if key == "" {
			key = fmt.Sprintf("_%d", i+1)
		}
		switch key {
		case dateColumnHeader:
			dateIdx = i
		case amountColumnHeader:
			amountIdx = i
		}
	}
	if dateIdx == -1 || amountIdx == -1 {
		return nil, nil
	}

	var out []Row
	for _, row := range rows[1:] {
		label := cellAt(row, dateIdx)
		raw := cellAt(row, amountIdx)
		if label == "" || raw == "" {
			continue
		}
		amount, err := ParseAmountBR(raw)
		if err != nil {
			continue
		}
		out = append(out, Row{Label: label, Amount: amount})
	}
	return out, nil
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// loadFirstSheet returns the first sheet as rows of cell strings, trying
// the xlsx reader first and falling back to the legacy xls format.
func loadFirstSheet(r io.Reader, filename string) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".xls" {
		if rows, err := loadXLS(data); err == nil {
			return rows, nil
		}
		// some reports carry a .xls name but are really xlsx
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		rows, xlsErr := loadXLS(data)
		if xlsErr != nil {
			return nil, fmt.Errorf("unsupported workbook file format")
		}
		return rows, nil
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	return f.GetRows(sheets[0])
}

func loadXLS(data []byte) ([][]string, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	sheet, err := workbook.GetSheet(0)
	if err != nil {
		return nil, fmt.Errorf("get xls sheet: %w", err)
	}

	var rows [][]string
	for _, row := range sheet.GetRows() {
		var cells []string
		for _, cell := range row.GetCols() {
			cells = append(cells, cell.GetString())
		}
		rows = append(rows, cells)
	}
	return rows, nil
}
