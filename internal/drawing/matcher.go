// Package drawing locates the technical drawing PDF that belongs to a datasheet.
package drawing

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"motor-datasheet/internal/model"
)

// Directory keys of the drawing directory map
const (
	KeyKSY        = "KSY"
	KeyKSYB5      = "KSY_B5"
	KeyKSYStecker = "KSY_Stecker"
	KeyKSG        = "KSG"
)

// DirectoryKey returns the drawing directory key for a selection
func DirectoryKey(sel model.Selection) string {
	if sel.Family == model.FamilyKSY {
		if sel.B5Flange {
			return KeyKSYB5
		}
		return KeyKSYStecker
	}
	return KeyKSG
}

// fold normalizes a file name or token for case-insensitive comparison.
// File names from macOS volumes arrive decomposed, hence NFC first.
func fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

// FindDrawing returns the first PDF in dir whose name contains token, ignoring case.
// The directory is not searched recursively. With several matches the first
// one in listing order (sorted by name) wins. ok is false when nothing matches.
func FindDrawing(dir, token string) (path string, ok bool, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false, fmt.Errorf("failed to list drawing directory: %w", err)
	}

	want := fold(token)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := fold(e.Name())
		if strings.HasSuffix(name, ".pdf") && strings.Contains(name, want) {
			return filepath.Join(dir, e.Name()), true, nil
		}
	}
	return "", false, nil
}
