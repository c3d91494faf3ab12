package server

import (
	"net/url"
	"strings"

	"motor-datasheet/internal/exporter/openapi"
	"motor-datasheet/internal/model"
)

// Form field names
const (
	fieldFamily      = "family"
	fieldVariant     = "variant"
	fieldFrameSize   = "frame_size"
	fieldPoles       = "poles"
	fieldPackage     = "package_length"
	fieldRatedSpeed  = "rated_speed"
	fieldProtection  = "protection_class"
	fieldDutyType    = "duty_type"
	fieldInsulation  = "insulation"
	fieldEncoder     = "encoder"
	fieldGearRatio   = "gear_ratio"
	fieldBrake       = "brake"
	fieldB5          = "b5"
	fieldGearbox     = "gearbox"
	fieldKeyWay      = "key_way"
	fieldBlockFlange = "block_flange"
	fieldConnector   = "connector"
	fieldDirectPDF   = "direct_pdf"
)

func checked(v url.Values, name string) bool {
	switch strings.ToLower(strings.TrimSpace(v.Get(name))) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

// ParseSelection reads a submitted form. The returned selection is filled
// as far as possible even when err is set, so the form can be shown again.
func ParseSelection(v url.Values) (model.Selection, error) {
	sel := model.Selection{
		Family:          model.Family(strings.TrimSpace(v.Get(fieldFamily))),
		Variant:         strings.TrimSpace(v.Get(fieldVariant)),
		FrameSize:       strings.TrimSpace(v.Get(fieldFrameSize)),
		Poles:           strings.TrimSpace(v.Get(fieldPoles)),
		PackageLength:   strings.TrimSpace(v.Get(fieldPackage)),
		RatedSpeed:      strings.TrimSpace(v.Get(fieldRatedSpeed)),
		ProtectionClass: strings.TrimSpace(v.Get(fieldProtection)),
		DutyType:        strings.TrimSpace(v.Get(fieldDutyType)),
		Insulation:      strings.TrimSpace(v.Get(fieldInsulation)),
		Encoder:         model.Encoder(strings.TrimSpace(v.Get(fieldEncoder))),
		Brake:           checked(v, fieldBrake),
		B5Flange:        checked(v, fieldB5),
		Gearbox:         checked(v, fieldGearbox),
		KeyWay:          checked(v, fieldKeyWay),
		BlockFlange:     checked(v, fieldBlockFlange),
		Connector:       checked(v, fieldConnector),
		DirectPDF:       checked(v, fieldDirectPDF),
	}
	if sel.Gearbox {
		sel.GearRatio = strings.TrimSpace(v.Get(fieldGearRatio))
	}

	family, err := model.ParseFamily(string(sel.Family))
	if err != nil {
		return sel, err
	}
	sel.Family = family

	encoder, err := model.ParseEncoder(string(sel.Encoder))
	if err != nil {
		return sel, err
	}
	sel.Encoder = encoder

	return sel, sel.Validate()
}

// formFields describes the form for the API document
func formFields(opts model.FormOptions) []openapi.FormField {
	families := make([]string, len(opts.Families))
	for i, f := range opts.Families {
		families[i] = string(f)
	}
	encoders := make([]string, len(opts.Encoders))
	for i, e := range opts.Encoders {
		encoders[i] = string(e)
	}

	text := func(name string, enum []string, required bool, desc string) openapi.FormField {
		return openapi.FormField{Name: name, Type: "string", Enum: enum, Required: required, Description: desc}
	}
	flag := func(name, desc string) openapi.FormField {
		return openapi.FormField{Name: name, Type: "boolean", Description: desc + ` (checked when "on")`}
	}

	return []openapi.FormField{
		text(fieldFamily, families, true, "Motor family"),
		text(fieldVariant, opts.Variants, true, "Variant tag"),
		text(fieldFrameSize, opts.FrameSizes, true, "Frame size"),
		text(fieldPoles, opts.Poles, true, "Pole count"),
		text(fieldPackage, opts.PackageLengths, true, "Package length in cm"),
		text(fieldRatedSpeed, opts.RatedSpeeds, true, "Rated speed in 100/min"),
		text(fieldProtection, opts.ProtectionClass, false, "Protection class"),
		text(fieldDutyType, opts.DutyTypes, false, "Duty type"),
		text(fieldInsulation, opts.InsulationClass, false, "Insulation class"),
		text(fieldEncoder, encoders, true, "Rotor position encoder"),
		text(fieldGearRatio, opts.GearRatios, false, "Gear ratio, required with gearbox"),
		flag(fieldBrake, "Brake"),
		flag(fieldB5, "B5 flange"),
		flag(fieldGearbox, "Gearbox"),
		flag(fieldKeyWay, "Key way"),
		flag(fieldBlockFlange, "Block flange"),
		flag(fieldConnector, "Connector"),
		flag(fieldDirectPDF, "Render and merge the PDF"),
	}
}
