// Package datasheet writes resolved master values into a datasheet template.
package datasheet

import (
	"fmt"
	"math"

	"motor-datasheet/internal/mapping"
	"motor-datasheet/internal/model"
	"motor-datasheet/internal/sheet"
)

// Template cells
const (
	WriteColumn = 12 // column L
	TitleRow    = 6
	TitleColumn = 3 // column C
)

// Write records one value placed in the template
type Write struct {
	Row    int
	Column int
	Value  any
}

// Writer places values into a template sheet's write column
type Writer struct {
	target sheet.Sheet
	column int
	writes []Write
}

// NewWriter creates a Writer targeting the fixed write column of target
func NewWriter(target sheet.Sheet) *Writer {
	return &Writer{target: target, column: WriteColumn}
}

// Set writes v to the given template row
func (w *Writer) Set(row int, v any) error {
	return w.setCell(row, w.column, v)
}

func (w *Writer) setCell(row, col int, v any) error {
	if err := w.target.SetCell(row, col, v); err != nil {
		return fmt.Errorf("failed to write template row %d: %w", row, err)
	}
	w.writes = append(w.writes, Write{Row: row, Column: col, Value: v})
	return nil
}

// Writes returns every write so far, in order
func (w *Writer) Writes() []Write {
	return append([]Write(nil), w.writes...)
}

// copyRow copies master (src, col) into template row dst
func (w *Writer) copyRow(master sheet.Table, col, src, dst int) error {
	v, err := sheet.ReadCell(master, src, col)
	if err != nil {
		return fmt.Errorf("failed to read master row %d: %w", src, err)
	}
	return w.Set(dst, v)
}

// WriteCommonFields writes the rows shared by every datasheet and the derived peak voltage
func (w *Writer) WriteCommonFields(master sheet.Table, col int, sel model.Selection) error {
	for _, p := range mapping.CommonPairs {
		if err := w.copyRow(master, col, p.Src, p.Dst); err != nil {
			return err
		}
	}

	direct := []struct {
		row   int
		value string
	}{
		{mapping.RowPoles, sel.Poles},
		{mapping.RowProtection, sel.ProtectionClass},
		{mapping.RowDutyType, sel.DutyType},
		{mapping.RowInsulation, sel.Insulation},
		{mapping.RowTag, mapping.TagValue},
	}
	for _, d := range direct {
		if err := w.Set(d.row, d.value); err != nil {
			return err
		}
	}

	voltage, err := sheet.ReadCell(master, mapping.VoltageRow, col)
	if err != nil {
		return fmt.Errorf("failed to read rated voltage: %w", err)
	}
	peak, ok := PeakVoltage(voltage)
	if !ok {
		// reported as a warning by the caller
		return nil
	}
	return w.Set(mapping.RowPeakVoltage, peak)
}

// PeakVoltage returns the displayed line-to-line peak voltage for a rated voltage.
// Only the 400 V and 230 V classes are known.
func PeakVoltage(rated any) (float64, bool) {
	v, ok := sheet.Number(rated)
	if !ok {
		return 0, false
	}
	switch v {
	case 400:
		return math.Round(480 * math.Sqrt2), true
	case 230:
		return math.Round(230 * math.Sqrt2), true
	}
	return 0, false
}

// WritePerformance copies the performance figures selected by m
func (w *Writer) WritePerformance(master sheet.Table, col int, m mapping.FieldMapping) error {
	for _, e := range m {
		dst, ok := mapping.PerformanceTargets[e.Field]
		if !ok {
			return fmt.Errorf("no template row for field %q", e.Field)
		}
		if err := w.copyRow(master, col, e.Row, dst); err != nil {
			return err
		}
	}
	return nil
}

// WriteGearRatio writes the user supplied gear ratio
func (w *Writer) WriteGearRatio(ratio string) error {
	return w.Set(mapping.RowGearRatio, ratio)
}

// WriteGearSupplement copies the gearmotor rows read from the plain motor sheet
func (w *Writer) WriteGearSupplement(master sheet.Table, col int) error {
	for _, g := range mapping.GearPairs {
		if !g.Merged {
			if err := w.copyRow(master, col, g.Src, g.Dst); err != nil {
				return err
			}
			continue
		}
		v, err := sheet.ResolveCell(master, g.Src, col, mapping.MergeFallbackTo)
		if err != nil {
			return fmt.Errorf("failed to resolve master row %d: %w", g.Src, err)
		}
		if err := w.Set(g.Dst, v); err != nil {
			return err
		}
	}
	return nil
}

// Title composes the datasheet heading
func Title(sel model.Selection, partNumber string, voltage any) string {
	brake := ""
	if sel.Brake {
		brake = "-MD"
	}
	return fmt.Sprintf("%s %s %s %s %s / %s", sel.Family, partNumber, sel.Variant, brake, sel.Encoder, sheet.Text(voltage))
}

// WriteTitle writes the heading to the title cell
func (w *Writer) WriteTitle(title string) error {
	return w.setCell(TitleRow, TitleColumn, title)
}
