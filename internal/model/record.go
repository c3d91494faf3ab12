package model

import "time"

// FieldValue is one value written into the datasheet template
type FieldValue struct {
	Row   int    `json:"row"`
	Cell  string `json:"cell"`
	Label string `json:"label,omitempty"`
	Value any    `json:"value"`
}

// Datasheet summarizes one generation for side exports
type Datasheet struct {
	RequestID   string       `json:"request_id"`
	Created     time.Time    `json:"created"`
	Title       string       `json:"title"`
	MotorString string       `json:"motor_string"`
	PartNumber  string       `json:"part_number"`
	DrawingKey  string       `json:"drawing_key"`
	Drawing     string       `json:"drawing,omitempty"` // Empty when the datasheet was delivered alone
	Layout      string       `json:"layout"`
	Selection   Selection    `json:"selection"`
	Values      []FieldValue `json:"values"`
}

// BaseName returns the file name stem shared by all outputs of this datasheet
func (d *Datasheet) BaseName() string {
	return "Datenblatt_" + d.MotorString + "_" + d.PartNumber
}
