// Package mapping holds the master-row to template-row tables.
//
// Every table lives here as data: the common fields written for every
// datasheet, the performance rows chosen by (gearbox, brake, encoder), and
// the supplementary gearmotor rows read from the plain motor sheet.
package mapping

import (
	"fmt"

	"motor-datasheet/internal/model"
)

// Field names a performance figure
type Field string

const (
	RatedSpeed   Field = "n"
	RatedTorque  Field = "m"
	RatedCurrent Field = "i"
	StallTorque  Field = "ms"
	StallCurrent Field = "is"
)

// Fields is the fixed field set, in write order
var Fields = []Field{RatedSpeed, RatedTorque, RatedCurrent, StallTorque, StallCurrent}

// Entry maps one field to the master row that supplies it
type Entry struct {
	Field Field
	Row   int
}

// FieldMapping is an ordered field → master row mapping
type FieldMapping []Entry

// AsMap returns the mapping as field → row
func (m FieldMapping) AsMap() map[Field]int {
	out := make(map[Field]int, len(m))
	for _, e := range m {
		out[e.Field] = e.Row
	}
	return out
}

func rows(n, m, i, ms, is int) FieldMapping {
	return FieldMapping{
		{RatedSpeed, n},
		{RatedTorque, m},
		{RatedCurrent, i},
		{StallTorque, ms},
		{StallCurrent, is},
	}
}

// Variant selects a performance mapping
type Variant struct {
	Gearbox bool
	Brake   bool
	Encoder model.Encoder
}

// plainVariants are defined only for these (brake, encoder) pairs
var plainVariants = map[Variant]FieldMapping{
	{Brake: false, Encoder: model.EncoderR4}: rows(9, 11, 12, 14, 15),
	{Brake: true, Encoder: model.EncoderR4}:  rows(34, 36, 37, 39, 40),
	{Brake: false, Encoder: model.EncoderRx}: rows(47, 49, 50, 52, 53),
}

// gearMapping applies to every gearmotor regardless of brake and encoder
var gearMapping = rows(9, 11, 12, 14, 15)

// VariantError is returned for a (brake, encoder) pair without a mapping
type VariantError struct {
	Brake   bool
	Encoder model.Encoder
}

func (e *VariantError) Error() string {
	return fmt.Sprintf("no field mapping for brake=%t encoder=%s", e.Brake, e.Encoder)
}

func (e *VariantError) Unwrap() error { return model.ErrLookup }

// Lookup returns the performance mapping for a variant
func Lookup(v Variant) (FieldMapping, error) {
	if v.Gearbox {
		return clone(gearMapping), nil
	}
	m, ok := plainVariants[Variant{Brake: v.Brake, Encoder: v.Encoder}]
	if !ok {
		return nil, &VariantError{Brake: v.Brake, Encoder: v.Encoder}
	}
	return clone(m), nil
}

// VariantOf returns the mapping variant of a selection
func VariantOf(sel model.Selection) Variant {
	return Variant{Gearbox: sel.Gearbox, Brake: sel.Brake, Encoder: sel.Encoder}
}

func clone(m FieldMapping) FieldMapping {
	return append(FieldMapping(nil), m...)
}

// PerformanceTargets maps each field to its template row
var PerformanceTargets = map[Field]int{
	RatedSpeed:   9,
	RatedTorque:  10,
	RatedCurrent: 13,
	StallTorque:  11,
	StallCurrent: 14,
}

// Pair copies master row Src into template row Dst
type Pair struct {
	Src int
	Dst int
}

// CommonPairs are copied for every datasheet
var CommonPairs = []Pair{
	{6, 8},
	{8, 16},
	{17, 12},
	{18, 15},
	{20, 17},
	{21, 18},
	{25, 21},
	{26, 22},
	{23, 23},
}

// Template rows written from the selection or derived values
const (
	RowTag          = 5
	RowPoles        = 19
	RowPeakVoltage  = 20
	RowProtection   = 24
	RowDutyType     = 25
	RowInsulation   = 26
	RowGearRatio    = 30
	TagValue        = "BOT"
	VoltageRow      = 6 // master row holding the rated voltage
	MergeFallbackTo = 1 // leftmost column scanned by merge fallback
)

// GearPair is a supplementary gearmotor row read from the plain motor sheet
type GearPair struct {
	Pair
	Merged bool // resolve through the merged-cell fallback
}

// GearPairs are read from the plain motor sheet after the gear pass
var GearPairs = []GearPair{
	{Pair{33, 29}, true},
	{Pair{26, 31}, false},
	{Pair{24, 32}, false},
	{Pair{28, 34}, false},
}
