package datasheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Layout selects one of the two template layouts
type Layout int

const (
	LayoutMotor Layout = iota
	LayoutGearmotor
)

// String returns the layout name
func (l Layout) String() string {
	switch l {
	case LayoutMotor:
		return "motor"
	case LayoutGearmotor:
		return "gearmotor"
	default:
		return "unknown"
	}
}

// LayoutFor returns the layout used with or without gearbox
func LayoutFor(gearbox bool) Layout {
	if gearbox {
		return LayoutGearmotor
	}
	return LayoutMotor
}

// SheetName is the worksheet created by NewTemplateLayout
const SheetName = "Datenblatt"

// TitleLabel is the label left of the title cell
const TitleLabel = "Typ"

var motorLabels = map[int]string{
	5:  "Kennung",
	8:  "Bemessungsspannung [V]",
	9:  "Bemessungsdrehzahl [1/min]",
	10: "Bemessungsdrehmoment [Nm]",
	11: "Stillstandsdrehmoment [Nm]",
	12: "Bemessungsleistung [kW]",
	13: "Bemessungsstrom [A]",
	14: "Stillstandsstrom [A]",
	15: "Drehmomentkonstante [Nm/A]",
	16: "Bemessungsfrequenz [Hz]",
	17: "Spannungskonstante [V/1000 1/min]",
	18: "Wicklungswiderstand [Ohm]",
	19: "Polzahl",
	20: "Zwischenkreisspannung [V]",
	21: "Induktivität [mH]",
	22: "Massenträgheitsmoment [kgcm²]",
	23: "Gewicht [kg]",
	24: "Schutzart",
	25: "Betriebsart",
	26: "Isolationsklasse",
}

var gearLabels = map[int]string{
	29: "Abtriebsdrehmoment [Nm]",
	30: "Getriebeübersetzung",
	31: "Massenträgheitsmoment Motor [kgcm²]",
	32: "Max. Antriebsdrehzahl [1/min]",
	34: "Gewicht Getriebemotor [kg]",
}

// Labels returns the row labels of a layout
func Labels(l Layout) map[int]string {
	out := make(map[int]string, len(motorLabels)+len(gearLabels))
	for row, label := range motorLabels {
		out[row] = label
	}
	if l == LayoutGearmotor {
		for row, label := range gearLabels {
			out[row] = label
		}
	}
	return out
}

// NewTemplateLayout builds a blank template workbook: labels in column B,
// values in the write column, heading in the title cell
func NewTemplateLayout(l Layout) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		f.Close()
		return nil, err
	}
	styler, err := NewStyler(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	title, _ := excelize.CoordinatesToCellName(TitleColumn, TitleRow)
	valueCol, _ := excelize.ColumnNumberToName(WriteColumn)

	f.SetCellValue(SheetName, "B2", "Datenblatt")
	f.SetCellStyle(SheetName, "B2", "B2", styler.HeaderStyle)
	f.SetCellValue(SheetName, "B6", TitleLabel)
	f.SetCellStyle(SheetName, "B6", "B6", styler.LabelStyle)
	f.SetCellStyle(SheetName, title, title, styler.TitleStyle)

	for row, label := range Labels(l) {
		labelCell := fmt.Sprintf("B%d", row)
		valueCell := fmt.Sprintf("%s%d", valueCol, row)
		f.SetCellValue(SheetName, labelCell, label)
		f.SetCellStyle(SheetName, labelCell, labelCell, styler.LabelStyle)
		f.SetCellStyle(SheetName, valueCell, valueCell, styler.ValueStyle)
	}

	f.SetColWidth(SheetName, "B", "B", 40)
	f.SetColWidth(SheetName, valueCol, valueCol, 18)

	return f, nil
}
