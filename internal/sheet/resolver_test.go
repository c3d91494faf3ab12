package sheet

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motor-datasheet/internal/model"
)

func headerGrid(keys ...any) *Grid {
	rows := make([][]any, HeaderRow)
	rows[HeaderRow-1] = keys
	return NewGrid(rows)
}

func TestFindColumn(t *testing.T) {
	g := headerGrid(nil, "Typ", " 246.25 ", "246.40", 246.4, "246.40")

	col, err := FindColumn(g, "246.40")
	require.NoError(t, err)
	assert.Equal(t, 4, col, "first exact match wins")

	col, err = FindColumn(g, "246.25")
	require.NoError(t, err)
	assert.Equal(t, 3, col, "header values are trimmed")

	col, err = FindColumn(g, "246.4")
	require.NoError(t, err)
	assert.Equal(t, 5, col, "numeric headers compare in shortest form")
}

func TestFindColumnMissingKey(t *testing.T) {
	g := headerGrid("246.25")

	_, err := FindColumn(g, "999.99")
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrLookup))

	var lerr *LookupError
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, "999.99", lerr.Key)
}

func TestFindColumnEmptyTable(t *testing.T) {
	_, err := FindColumn(NewGrid(nil), "246.25")
	assert.ErrorIs(t, err, model.ErrLookup)
}

func TestResolveCell(t *testing.T) {
	g := NewGrid([][]any{
		{nil, nil, nil, nil, "X"},
		{nil, nil, "left", "", nil},
		{nil, nil, nil, nil, nil},
	})

	tests := []struct {
		name     string
		row, col int
		minCol   int
		expected any
	}{
		{"direct hit", 1, 5, 0, "X"},
		{"scan past nil and empty string", 2, 5, 0, "left"},
		{"all empty returns nil", 3, 5, 0, nil},
		{"minCol stops the scan", 2, 5, 4, nil},
		{"minCol is inclusive", 2, 5, 3, "left"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ResolveCell(g, tt.row, tt.col, tt.minCol)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestResolveCellSpecColumns(t *testing.T) {
	// columns 3, 4, 5 hold nil, nil, "X"
	g := NewGrid([][]any{{nil, nil, nil, nil, "X"}})
	v, err := ResolveCell(g, 1, 5, 0)
	require.NoError(t, err)
	assert.Equal(t, "X", v)
}

func TestReadCellHasNoFallback(t *testing.T) {
	g := NewGrid([][]any{{"A", nil}})
	v, err := ReadCell(g, 1, 2)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestGridRoundTrip(t *testing.T) {
	g := NewGrid(nil)
	values := []any{"IP54", 679.0, true, "4", nil}
	for i, v := range values {
		require.NoError(t, g.SetCell(i+1, 12, v))
	}
	for i, v := range values {
		got, err := g.Cell(i+1, 12)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	assert.Error(t, g.SetCell(0, 1, "x"))
}

func TestText(t *testing.T) {
	assert.Equal(t, "400", Text(400.0))
	assert.Equal(t, "246.4", Text(246.4))
	assert.Equal(t, "", Text(nil))
	assert.Equal(t, "HD", Text("HD"))
	assert.Equal(t, "true", Text(true))
}
