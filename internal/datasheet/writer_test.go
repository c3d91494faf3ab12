package datasheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motor-datasheet/internal/mapping"
	"motor-datasheet/internal/model"
	"motor-datasheet/internal/sheet"
)

const masterCol = 4

// masterGrid returns a master table whose column 4 holds row+0.25 in every
// data row and the given voltage in row 6
func masterGrid(voltage any) *sheet.Grid {
	g := sheet.NewGrid(nil)
	for r := sheet.HeaderRow + 1; r <= 60; r++ {
		g.SetCell(r, masterCol, float64(r)+0.25)
	}
	g.SetCell(mapping.VoltageRow, masterCol, voltage)
	return g
}

func testSelection() model.Selection {
	return model.Selection{
		Family:          model.FamilyKSY,
		Variant:         "HD",
		FrameSize:       "2",
		Poles:           "4",
		PackageLength:   "6",
		RatedSpeed:      "40",
		ProtectionClass: "IP54",
		DutyType:        "S1",
		Insulation:      "F",
		Encoder:         model.EncoderR4,
	}
}

func cell(t *testing.T, g *sheet.Grid, row int) any {
	t.Helper()
	v, err := g.Cell(row, WriteColumn)
	require.NoError(t, err)
	return v
}

func TestWriteCommonFields(t *testing.T) {
	target := sheet.NewGrid(nil)
	w := NewWriter(target)

	require.NoError(t, w.WriteCommonFields(masterGrid(400.0), masterCol, testSelection()))

	assert.Equal(t, 400.0, cell(t, target, 8))
	assert.Equal(t, 8.25, cell(t, target, 16))
	assert.Equal(t, 17.25, cell(t, target, 12))
	assert.Equal(t, 18.25, cell(t, target, 15))
	assert.Equal(t, 20.25, cell(t, target, 17))
	assert.Equal(t, 21.25, cell(t, target, 18))
	assert.Equal(t, 25.25, cell(t, target, 21))
	assert.Equal(t, 26.25, cell(t, target, 22))
	assert.Equal(t, 23.25, cell(t, target, 23))

	assert.Equal(t, "4", cell(t, target, 19))
	assert.Equal(t, "IP54", cell(t, target, 24))
	assert.Equal(t, "S1", cell(t, target, 25))
	assert.Equal(t, "F", cell(t, target, 26))
	assert.Equal(t, "BOT", cell(t, target, 5))
	assert.Equal(t, 679.0, cell(t, target, 20))

	assert.Len(t, w.Writes(), 15)
}

func TestPeakVoltage(t *testing.T) {
	tests := []struct {
		rated    any
		expected float64
		ok       bool
	}{
		{400.0, 679, true},
		{230.0, 325, true},
		{277.0, 0, false},
		{"400", 0, false},
		{nil, 0, false},
	}

	for _, tt := range tests {
		got, ok := PeakVoltage(tt.rated)
		assert.Equal(t, tt.ok, ok, "rated %v", tt.rated)
		assert.Equal(t, tt.expected, got, "rated %v", tt.rated)
	}
}

func TestWriteCommonFieldsSkipsUnknownVoltage(t *testing.T) {
	target := sheet.NewGrid(nil)
	w := NewWriter(target)

	require.NoError(t, w.WriteCommonFields(masterGrid(277.0), masterCol, testSelection()))
	assert.Nil(t, cell(t, target, mapping.RowPeakVoltage))
	assert.Len(t, w.Writes(), 14)
}

func TestWritePerformance(t *testing.T) {
	target := sheet.NewGrid(nil)
	w := NewWriter(target)

	m, err := mapping.Lookup(mapping.Variant{Brake: true, Encoder: model.EncoderR4})
	require.NoError(t, err)
	require.NoError(t, w.WritePerformance(masterGrid(400.0), masterCol, m))

	assert.Equal(t, 34.25, cell(t, target, 9))
	assert.Equal(t, 36.25, cell(t, target, 10))
	assert.Equal(t, 37.25, cell(t, target, 13))
	assert.Equal(t, 39.25, cell(t, target, 11))
	assert.Equal(t, 40.25, cell(t, target, 14))
}

func TestWriteGearSupplement(t *testing.T) {
	master := masterGrid(400.0)
	// row 33 is merged across columns 2..4, value only in column 2
	master.SetCell(33, masterCol, nil)
	master.SetCell(33, 3, "")
	master.SetCell(33, 2, "merged torque")

	target := sheet.NewGrid(nil)
	w := NewWriter(target)
	require.NoError(t, w.WriteGearRatio("10"))
	require.NoError(t, w.WriteGearSupplement(master, masterCol))

	assert.Equal(t, "10", cell(t, target, 30))
	assert.Equal(t, "merged torque", cell(t, target, 29))
	assert.Equal(t, 26.25, cell(t, target, 31))
	assert.Equal(t, 24.25, cell(t, target, 32))
	assert.Equal(t, 28.25, cell(t, target, 34))
}

func TestTitle(t *testing.T) {
	sel := testSelection()
	assert.Equal(t, "KSY 246.40 HD  R4 / 400", Title(sel, "246.40", 400.0))

	sel.Brake = true
	sel.Encoder = model.EncoderRx
	assert.Equal(t, "KSY 246.40 HD -MD Rx / 230", Title(sel, "246.40", 230.0))
}

func TestWriteTitle(t *testing.T) {
	target := sheet.NewGrid(nil)
	w := NewWriter(target)
	require.NoError(t, w.WriteTitle("KSY 246.40 HD  R4 / 400"))

	v, err := target.Cell(TitleRow, TitleColumn)
	require.NoError(t, err)
	assert.Equal(t, "KSY 246.40 HD  R4 / 400", v)
}
