package assembler

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"motor-datasheet/internal/config"
	"motor-datasheet/internal/datasheet"
	"motor-datasheet/internal/keys"
	"motor-datasheet/internal/logger"
	"motor-datasheet/internal/mapping"
	"motor-datasheet/internal/model"
	"motor-datasheet/internal/sheet"
)

// Workbook gives access to master sheets by name
type Workbook interface {
	Sheet(name string) (sheet.Table, error)
}

type excelWorkbook struct {
	f *excelize.File
}

func (w excelWorkbook) Sheet(name string) (sheet.Table, error) {
	return sheet.OpenSheet(w.f, name)
}

// Fill is the outcome of writing one selection into a template sheet
type Fill struct {
	Writes   []datasheet.Write
	Title    string
	Sheet    string // master sheet the title voltage was read from
	Warnings []string
}

// masterSheet returns the sheet holding the part number column
func masterSheet(cfg *config.Config, sel model.Selection, k keys.LookupKey) (string, error) {
	if !sel.Gearbox {
		return k.MotorString, nil
	}
	name, ok := cfg.GearSheet(string(sel.Family))
	if !ok {
		return "", fmt.Errorf("%w: no gearmotor sheet configured for family %s", model.ErrLookup, sel.Family)
	}
	return name, nil
}

// findColumn opens a master sheet and locates key in its header row
func findColumn(master Workbook, name, key, location string) (sheet.Table, int, error) {
	tbl, err := master.Sheet(name)
	if err != nil {
		logger.LogLookupError(location, err, "sheet "+name)
		return nil, 0, fmt.Errorf("failed to open master sheet: %w", err)
	}
	col, err := sheet.FindColumn(tbl, key)
	if err != nil {
		logger.LogLookupError(location, err, "sheet "+name)
		return nil, 0, err
	}
	logger.Debug("Found %q in column %d of sheet %q", key, col, name)
	return tbl, col, nil
}

// FillTemplate writes every field of sel into target: common fields, the
// performance mapping, the gearmotor pass when a gearbox is selected, and
// the title. fm must come from mapping.Lookup for sel.
func FillTemplate(cfg *config.Config, master Workbook, target sheet.Sheet, sel model.Selection, k keys.LookupKey, fm mapping.FieldMapping) (*Fill, error) {
	name, err := masterSheet(cfg, sel, k)
	if err != nil {
		return nil, err
	}
	tbl, col, err := findColumn(master, name, k.PartNumber, cfg.Master.Source)
	if err != nil {
		return nil, err
	}

	out := &Fill{}
	w := datasheet.NewWriter(target)

	if err := w.WriteCommonFields(tbl, col, sel); err != nil {
		return nil, fmt.Errorf("failed to write common fields: %w", err)
	}
	rated, err := sheet.ReadCell(tbl, mapping.VoltageRow, col)
	if err != nil {
		return nil, fmt.Errorf("failed to read rated voltage: %w", err)
	}
	if _, ok := datasheet.PeakVoltage(rated); !ok {
		out.Warnings = append(out.Warnings, fmt.Sprintf("rated voltage %q has no peak voltage rule", sheet.Text(rated)))
	}

	if err := w.WritePerformance(tbl, col, fm); err != nil {
		return nil, fmt.Errorf("failed to write performance fields: %w", err)
	}

	if sel.Gearbox {
		if err := w.WriteGearRatio(sel.GearRatio); err != nil {
			return nil, err
		}
		// The supplementary rows live in the plain motor sheet under the gear key
		name = k.MotorString
		tbl, col, err = findColumn(master, name, k.Gear, cfg.Master.Source)
		if err != nil {
			return nil, err
		}
		if err := w.WriteGearSupplement(tbl, col); err != nil {
			return nil, fmt.Errorf("failed to write gearmotor fields: %w", err)
		}
	}

	voltage, err := sheet.ReadCell(tbl, mapping.VoltageRow, col)
	if err != nil {
		return nil, fmt.Errorf("failed to read title voltage: %w", err)
	}
	out.Title = datasheet.Title(sel, k.PartNumber, voltage)
	if err := w.WriteTitle(out.Title); err != nil {
		return nil, err
	}

	out.Writes = w.Writes()
	out.Sheet = name
	return out, nil
}

// fieldValues labels the writes of a fill for side exports
func fieldValues(writes []datasheet.Write, layout datasheet.Layout) []model.FieldValue {
	labels := datasheet.Labels(layout)
	values := make([]model.FieldValue, 0, len(writes))
	for _, w := range writes {
		cell, _ := excelize.CoordinatesToCellName(w.Column, w.Row)
		label := ""
		switch {
		case w.Row == datasheet.TitleRow && w.Column == datasheet.TitleColumn:
			label = datasheet.TitleLabel
		case w.Column == datasheet.WriteColumn:
			label = labels[w.Row]
		}
		values = append(values, model.FieldValue{Row: w.Row, Cell: cell, Label: label, Value: w.Value})
	}
	return values
}
