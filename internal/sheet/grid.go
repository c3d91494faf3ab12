package sheet

// Table is a read-only grid addressed by 1-indexed (row, col).
// Cells outside the used range read as nil.
type Table interface {
	Cell(row, col int) (any, error)
	Row(row int) ([]any, error)
}

// Sheet is a Table that can be written
type Sheet interface {
	Table
	SetCell(row, col int, v any) error
}

// Grid is an in-memory Sheet
type Grid struct {
	rows [][]any
}

// NewGrid creates a grid from rows; rows[0] is row 1 and rows[r][0] is column 1
func NewGrid(rows [][]any) *Grid {
	g := &Grid{}
	for r, row := range rows {
		for c, v := range row {
			if v != nil {
				g.SetCell(r+1, c+1, v)
			}
		}
	}
	return g
}

// Cell returns the value at (row, col)
func (g *Grid) Cell(row, col int) (any, error) {
	if row < 1 || row > len(g.rows) {
		return nil, nil
	}
	cells := g.rows[row-1]
	if col < 1 || col > len(cells) {
		return nil, nil
	}
	return cells[col-1], nil
}

// Row returns a copy of the given row
func (g *Grid) Row(row int) ([]any, error) {
	if row < 1 || row > len(g.rows) {
		return nil, nil
	}
	return append([]any(nil), g.rows[row-1]...), nil
}

// SetCell stores v at (row, col), growing the grid as needed
func (g *Grid) SetCell(row, col int, v any) error {
	if row < 1 || col < 1 {
		return &CellError{Row: row, Col: col}
	}
	for len(g.rows) < row {
		g.rows = append(g.rows, nil)
	}
	for len(g.rows[row-1]) < col {
		g.rows[row-1] = append(g.rows[row-1], nil)
	}
	g.rows[row-1][col-1] = v
	return nil
}
