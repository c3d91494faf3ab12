// Package sheettest builds master workbooks for tests.
package sheettest

import (
	"testing"

	"github.com/xuri/excelize/v2"

	"motor-datasheet/internal/sheet"
)

// LastRow is the last master row filled by StandardColumn
const LastRow = 60

// Column is one master column: its header key and the values below it
type Column struct {
	Key    string
	Values map[int]any
}

// RowValue is the value StandardColumn stores in every data row except the voltage row
func RowValue(row int) float64 {
	return float64(row) + 0.25
}

// StandardColumn returns a column whose row 6 holds voltage and every other
// data row r holds RowValue(r)
func StandardColumn(key string, voltage any) Column {
	values := make(map[int]any)
	for r := sheet.HeaderRow + 1; r <= LastRow; r++ {
		values[r] = RowValue(r)
	}
	values[6] = voltage
	return Column{Key: key, Values: values}
}

// Sheet describes a worksheet: columns start at column C (3) and empty
// keys leave a blank column
type Sheet struct {
	Name    string
	Columns []Column
}

// FirstDataColumn is the column index of the first fixture column
const FirstDataColumn = 3

// Workbook builds a workbook holding the given sheets
func Workbook(t testing.TB, sheets ...Sheet) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	for i, sh := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sh.Name); err != nil {
				t.Fatalf("failed to rename sheet: %v", err)
			}
		} else if _, err := f.NewSheet(sh.Name); err != nil {
			t.Fatalf("failed to create sheet %q: %v", sh.Name, err)
		}

		ws, err := sheet.OpenSheet(f, sh.Name)
		if err != nil {
			t.Fatalf("failed to open sheet %q: %v", sh.Name, err)
		}
		for c, col := range sh.Columns {
			colIdx := FirstDataColumn + c
			if col.Key == "" {
				continue
			}
			if err := ws.SetCell(sheet.HeaderRow, colIdx, col.Key); err != nil {
				t.Fatalf("failed to write header: %v", err)
			}
			for row, v := range col.Values {
				if err := ws.SetCell(row, colIdx, v); err != nil {
					t.Fatalf("failed to write %s row %d: %v", sh.Name, row, err)
				}
			}
		}
	}
	return f
}

// Save writes a workbook to path
func Save(t testing.TB, f *excelize.File, path string) {
	t.Helper()
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save workbook %s: %v", path, err)
	}
}
