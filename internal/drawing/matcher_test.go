package drawing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motor-datasheet/internal/model"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("%PDF-1.4"), 0644))
	}
}

func TestFindDrawing(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir,
		"KSY 24x HD mit Stecker.dwg",
		"Maßblatt ksy 24x hd MIT STECKER.PDF",
		"Maßblatt KSY 24x HD mit B5.pdf",
		"Maßblatt KSY 26x HD.pdf",
	)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "KSY 24x HD mit Stecker.pdf"), 0755))

	tests := []struct {
		token    string
		expected string
		ok       bool
	}{
		{"KSY 24x HD mit Stecker", "Maßblatt ksy 24x hd MIT STECKER.PDF", true},
		{"KSY 24x HD mit B5", "Maßblatt KSY 24x HD mit B5.pdf", true},
		{"MASSBLATT KSY 26x", "Maßblatt KSY 26x HD.pdf", true},
		{"KSG 24x HD", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			path, ok, err := FindDrawing(dir, tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, filepath.Join(dir, tt.expected), path)
			} else {
				assert.Empty(t, path)
			}
		})
	}
}

func TestFindDrawingFirstInListingOrder(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "b KSY 24x HD.pdf", "a KSY 24x HD.pdf")

	path, ok, err := FindDrawing(dir, "KSY 24x HD")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "a KSY 24x HD.pdf", filepath.Base(path))
}

func TestFindDrawingMissingDirectory(t *testing.T) {
	_, _, err := FindDrawing(filepath.Join(t.TempDir(), "missing"), "KSY")
	assert.Error(t, err)
}

func TestDirectoryKey(t *testing.T) {
	tests := []struct {
		family   model.Family
		b5       bool
		expected string
	}{
		{model.FamilyKSY, true, KeyKSYB5},
		{model.FamilyKSY, false, KeyKSYStecker},
		{model.FamilyKSG, false, KeyKSG},
		{model.FamilyKSD, true, KeyKSG},
		{model.FamilyKTY, false, KeyKSG},
	}

	for _, tt := range tests {
		got := DirectoryKey(model.Selection{Family: tt.family, B5Flange: tt.b5})
		assert.Equal(t, tt.expected, got, "%s b5=%t", tt.family, tt.b5)
	}
}
