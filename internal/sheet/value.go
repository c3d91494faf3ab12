package sheet

import (
	"fmt"
	"strconv"
	"strings"
)

// Cell values are nil, string, float64 or bool. Nothing else is stored so a
// value written to a sheet reads back unchanged.

// IsEmpty reports whether a cell holds no visible value
func IsEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	}
	return false
}

// Text renders a cell value the way header keys and titles compare it.
// Numbers use the shortest decimal form ("400", "246.4").
func Text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	}
	return fmt.Sprint(v)
}

// Number returns the numeric value of a cell, if it holds one
func Number(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	}
	return 0, false
}

// headerText is the trimmed string form used when matching header keys
func headerText(v any) string {
	return strings.TrimSpace(Text(v))
}
