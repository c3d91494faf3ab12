package sheet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"motor-datasheet/internal/model"
)

// SheetError is returned when a workbook has no sheet with the requested name
type SheetError struct {
	Name string
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q not found in workbook", e.Name)
}

func (e *SheetError) Unwrap() error { return model.ErrLookup }

// ExcelSheet adapts one worksheet of an excelize workbook to Sheet
type ExcelSheet struct {
	file *excelize.File
	name string
}

// OpenSheet returns the named worksheet of f
func OpenSheet(f *excelize.File, name string) (*ExcelSheet, error) {
	idx, err := f.GetSheetIndex(name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up sheet %q: %w", name, err)
	}
	if idx == -1 {
		return nil, &SheetError{Name: name}
	}
	return &ExcelSheet{file: f, name: name}, nil
}

// FirstSheet returns the first worksheet of f
func FirstSheet(f *excelize.File) (*ExcelSheet, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &SheetError{Name: "(first)"}
	}
	return &ExcelSheet{file: f, name: sheets[0]}, nil
}

// Name returns the worksheet name
func (s *ExcelSheet) Name() string {
	return s.name
}

// File returns the underlying workbook
func (s *ExcelSheet) File() *excelize.File {
	return s.file
}

// Cell returns the typed value at (row, col)
func (s *ExcelSheet) Cell(row, col int) (any, error) {
	if row < 1 || col < 1 {
		return nil, nil
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return nil, err
	}
	raw, err := s.file.GetCellValue(s.name, cell, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read %s!%s: %w", s.name, cell, err)
	}
	if raw == "" {
		return nil, nil
	}
	typ, err := s.file.GetCellType(s.name, cell)
	if err != nil {
		return nil, fmt.Errorf("failed to read type of %s!%s: %w", s.name, cell, err)
	}
	return decode(raw, typ), nil
}

// Row returns the typed values of one row
func (s *ExcelSheet) Row(row int) ([]any, error) {
	rows, err := s.file.GetRows(s.name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read rows of %s: %w", s.name, err)
	}
	if row < 1 || row > len(rows) {
		return nil, nil
	}

	values := make([]any, len(rows[row-1]))
	for i, raw := range rows[row-1] {
		if raw == "" {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return nil, err
		}
		typ, err := s.file.GetCellType(s.name, cell)
		if err != nil {
			return nil, fmt.Errorf("failed to read type of %s!%s: %w", s.name, cell, err)
		}
		values[i] = decode(raw, typ)
	}
	return values, nil
}

// SetCell writes v at (row, col). Supported values are nil, string, float64 and bool.
func (s *ExcelSheet) SetCell(row, col int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return &CellError{Row: row, Col: col}
	}
	switch v.(type) {
	case nil, string, float64, bool:
	default:
		return fmt.Errorf("unsupported cell value %T for %s!%s", v, s.name, cell)
	}
	if err := s.file.SetCellValue(s.name, cell, v); err != nil {
		return fmt.Errorf("failed to write %s!%s: %w", s.name, cell, err)
	}
	return nil
}

// decode converts a raw cell string to a typed value
func decode(raw string, typ excelize.CellType) any {
	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return raw
	case excelize.CellTypeFormula:
		// t="str": the cached result of a text formula
		return raw
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "true")
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}
