package model

import (
	"fmt"
	"strings"
)

// Family represents the motor base type
type Family string

const (
	FamilyKSY Family = "KSY"
	FamilyKSD Family = "KSD"
	FamilyKSG Family = "KSG"
	FamilyKTY Family = "KTY"
)

// Families lists every family accepted by the form, in display order
var Families = []Family{FamilyKSY, FamilyKSD, FamilyKSG, FamilyKTY}

// ParseFamily converts a form value into a Family
func ParseFamily(s string) (Family, error) {
	for _, f := range Families {
		if strings.EqualFold(strings.TrimSpace(s), string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: unknown motor family %q", ErrInvalidSelection, s)
}

// Encoder represents the rotor position encoder variant
type Encoder string

const (
	EncoderR4 Encoder = "R4"
	EncoderRx Encoder = "Rx"
)

// Encoders lists every encoder variant, in display order
var Encoders = []Encoder{EncoderR4, EncoderRx}

// ParseEncoder converts a form value into an Encoder
func ParseEncoder(s string) (Encoder, error) {
	for _, e := range Encoders {
		if strings.EqualFold(strings.TrimSpace(s), string(e)) {
			return e, nil
		}
	}
	return "", fmt.Errorf("%w: unknown rotor position encoder %q", ErrInvalidSelection, s)
}

// Flange kinds. A motor without the B5 flange is built with B14.
const (
	FlangeB5  = "B5"
	FlangeB14 = "B14"
)

// Selection holds everything the user picked for one datasheet
type Selection struct {
	// Motor identity
	Family  Family // Motor base type (KSY, KSD, KSG, KTY)
	Variant string // Variant tag (e.g., "HD")

	// Part number components (form strings, used verbatim)
	FrameSize     string // Baugröße
	Poles         string // Polzahl
	PackageLength string // Paketlänge in cm
	RatedSpeed    string // Bemessungsdrehzahl in 100/min

	// Plain datasheet attributes
	ProtectionClass string // Schutzart (e.g., "IP54")
	DutyType        string // Betriebsart (e.g., "S1")
	Insulation      string // Isolationsklasse (e.g., "F")

	Encoder Encoder

	// Options
	Brake       bool
	B5Flange    bool
	Gearbox     bool
	KeyWay      bool // Passfeder
	BlockFlange bool // Blockflansch
	Connector   bool // Stecker
	DirectPDF   bool // Render and merge the PDF deliverable

	GearRatio string // Getriebeübersetzung, required when Gearbox is set
}

// FlangeKind returns the flange designation used in sheet names and drawing keys
func (s Selection) FlangeKind() string {
	if s.B5Flange {
		return FlangeB5
	}
	return FlangeB14
}

// PartNumbers returns the four part number components in key order
func (s Selection) PartNumbers() [4]string {
	return [4]string{s.FrameSize, s.Poles, s.PackageLength, s.RatedSpeed}
}

// Validate checks that the selection is complete enough to build lookup keys
func (s Selection) Validate() error {
	if _, err := ParseFamily(string(s.Family)); err != nil {
		return err
	}
	if _, err := ParseEncoder(string(s.Encoder)); err != nil {
		return err
	}

	required := []struct {
		name  string
		value string
	}{
		{"variant", s.Variant},
		{"frame size", s.FrameSize},
		{"pole count", s.Poles},
		{"package length", s.PackageLength},
		{"rated speed", s.RatedSpeed},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidSelection, r.name)
		}
	}

	if s.Gearbox && strings.TrimSpace(s.GearRatio) == "" {
		return fmt.Errorf("%w: gear ratio is required when a gearbox is selected", ErrInvalidSelection)
	}

	return nil
}
