package sheet

import (
	"fmt"

	"motor-datasheet/internal/model"
)

// HeaderRow is the master sheet row whose cells hold the column keys
const HeaderRow = 5

// LookupError is returned when a key is missing from the header row
type LookupError struct {
	Key   string
	Sheet string
}

func (e *LookupError) Error() string {
	if e.Sheet != "" {
		return fmt.Sprintf("key %q not found in header row %d of sheet %q", e.Key, HeaderRow, e.Sheet)
	}
	return fmt.Sprintf("key %q not found in header row %d", e.Key, HeaderRow)
}

func (e *LookupError) Unwrap() error { return model.ErrLookup }

// CellError reports an invalid cell address
type CellError struct {
	Row, Col int
}

func (e *CellError) Error() string {
	return fmt.Sprintf("invalid cell address (row %d, col %d)", e.Row, e.Col)
}

// named is implemented by tables that know their sheet name
type named interface {
	Name() string
}

// FindColumn returns the first 1-indexed column whose trimmed header text equals key
func FindColumn(t Table, key string) (int, error) {
	header, err := t.Row(HeaderRow)
	if err != nil {
		return 0, fmt.Errorf("failed to read header row: %w", err)
	}
	for i, v := range header {
		if headerText(v) == key {
			return i + 1, nil
		}
	}

	lerr := &LookupError{Key: key}
	if n, ok := t.(named); ok {
		lerr.Sheet = n.Name()
	}
	return 0, lerr
}

// ReadCell returns the value at (row, col) without fallback
func ReadCell(t Table, row, col int) (any, error) {
	return t.Cell(row, col)
}

// ResolveCell returns the value at (row, col), moving left until a non-empty
// cell is found. Merged cells keep their value in the leftmost cell only.
// It returns nil when every cell from col down to minCol is empty.
func ResolveCell(t Table, row, col, minCol int) (any, error) {
	for ; col >= minCol; col-- {
		v, err := t.Cell(row, col)
		if err != nil {
			return nil, err
		}
		if !IsEmpty(v) {
			return v, nil
		}
	}
	return nil, nil
}
