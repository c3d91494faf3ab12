package common

import (
	"sort"

	"motor-datasheet/internal/model"
)

// FirstGearRow is the first template row of the gearmotor block
const FirstGearRow = 29

// SplitValues separates the written values into the motor block and the
// gearmotor block, each ordered by template row. The input is not modified.
func SplitValues(values []model.FieldValue) (motor []model.FieldValue, gear []model.FieldValue) {
	sorted := make([]model.FieldValue, len(values))
	copy(sorted, values)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Row < sorted[j].Row
	})

	for _, v := range sorted {
		if v.Row >= FirstGearRow {
			gear = append(gear, v)
		} else {
			motor = append(motor, v)
		}
	}
	return motor, gear
}
