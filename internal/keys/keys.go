// Package keys derives the lookup strings used to find master columns,
// name sheets and output files, and match drawing PDFs.
package keys

import (
	"fmt"
	"strings"

	"motor-datasheet/internal/model"
)

// Suffix tokens appended to drawing keys
const (
	KeyWayLabel      = "PF"
	BlockFlangeLabel = "BF"

	suffixConnector = "mit Stecker"
	suffixB5        = "mit B5"
)

// LookupKey bundles every string derived from one selection
type LookupKey struct {
	MotorString string // Sheet name and output name part (e.g., "KSY HD B5")
	PartNumber  string // Master header key (e.g., "246.40")
	Drawing     string // Drawing file token (e.g., "KSY 24x HD mit Stecker")
	Gear        string // Gear header key in the plain motor sheet, empty without gearbox
}

// Build derives all lookup strings from a selection
func Build(sel model.Selection) LookupKey {
	part := PartNumberKey(sel.PartNumbers())
	k := LookupKey{
		MotorString: MotorString(sel.Family, sel.Variant, sel.B5Flange, sel.FlangeKind()),
		PartNumber:  part,
		Drawing: DrawingKey(sel.Family, sel.FrameSize, sel.Poles, sel.Variant, DrawingFlags{
			KeyWay:      sel.KeyWay,
			Connector:   sel.Connector,
			Flange:      sel.B5Flange,
			FlangeKind:  sel.FlangeKind(),
			BlockFlange: sel.BlockFlange,
		}),
	}
	if sel.Gearbox {
		k.Gear = GearKey(sel.Family, part, sel.GearRatio)
	}
	return k
}

// MotorString returns "{family} {variant}" with the flange kind appended when a flange is fitted
func MotorString(family model.Family, variant string, hasFlange bool, flangeKind string) string {
	if hasFlange {
		return fmt.Sprintf("%s %s %s", family, variant, flangeKind)
	}
	return fmt.Sprintf("%s %s", family, variant)
}

// PartNumberKey joins the first three numbers and places the fourth after a dot.
// No numeric parsing happens: ["2","4","6","25"] becomes "246.25".
func PartNumberKey(numbers [4]string) string {
	return numbers[0] + numbers[1] + numbers[2] + "." + numbers[3]
}

// GearKey returns the header key of a gearmotor column in the plain motor sheet
func GearKey(family model.Family, partNumber, ratio string) string {
	return fmt.Sprintf("%s %s %s", family, partNumber, ratio)
}

// DrawingFlags holds the options that can add a suffix to a drawing key
type DrawingFlags struct {
	KeyWay      bool
	Connector   bool
	Flange      bool
	FlangeKind  string
	BlockFlange bool
}

// suffixRule yields a suffix token, or "" when the rule does not apply
type suffixRule func(DrawingFlags) string

// suffixRules lists each family's rules in precedence order; the first
// non-empty result wins. Families without an entry get no suffix.
var suffixRules = map[model.Family][]suffixRule{
	model.FamilyKSY: {
		func(f DrawingFlags) string { return when(f.KeyWay, "mit "+KeyWayLabel) },
		func(f DrawingFlags) string { return when(f.Connector, suffixConnector) },
		flangeSuffix,
	},
	model.FamilyKSG: {
		func(f DrawingFlags) string { return when(f.BlockFlange, "mit "+BlockFlangeLabel) },
	},
}

// flangeSuffix maps the flange kind to its drawing label. B14 motors are
// drawn with the connector, so they share the connector token.
func flangeSuffix(f DrawingFlags) string {
	if !f.Flange {
		return ""
	}
	switch f.FlangeKind {
	case model.FlangeB5:
		return suffixB5
	case model.FlangeB14:
		return suffixConnector
	}
	return ""
}

func when(cond bool, token string) string {
	if cond {
		return token
	}
	return ""
}

// DrawingKey returns "{family} {size}{poles}x {variant}" plus at most one family-specific suffix
func DrawingKey(family model.Family, size, poles, variant string, flags DrawingFlags) string {
	parts := []string{fmt.Sprintf("%s %s%sx %s", family, size, poles, variant)}
	for _, rule := range suffixRules[family] {
		if token := rule(flags); token != "" {
			parts = append(parts, token)
			break
		}
	}
	return strings.Join(parts, " ")
}
