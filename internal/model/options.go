package model

// FormOptions holds the choices offered for each selectable field
type FormOptions struct {
	Families        []Family
	Variants        []string
	FrameSizes      []string
	Poles           []string
	PackageLengths  []string
	RatedSpeeds     []string
	ProtectionClass []string
	DutyTypes       []string
	InsulationClass []string
	Encoders        []Encoder
	GearRatios      []string
}

// Options returns the choices known to the master file
func Options() FormOptions {
	return FormOptions{
		Families:        Families,
		Variants:        []string{"HD"},
		FrameSizes:      []string{"1", "2", "3", "4", "5", "6", "8"},
		Poles:           []string{"2", "4", "6", "8", "10", "12", "14"},
		PackageLengths:  []string{"2", "4", "6", "8", "10", "12", "16"},
		RatedSpeeds:     []string{"25", "30", "40", "45", "50", "55", "60", "80", "90"},
		ProtectionClass: []string{"IP54", "IP65", "IP67", "IP69K"},
		DutyTypes:       []string{"S1"},
		InsulationClass: []string{"F", "H"},
		Encoders:        Encoders,
		GearRatios:      []string{"3", "5", "7", "9", "10", "12", "15", "21", "25", "30", "35", "49", "70", "100"},
	}
}
