package e2e

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"motor-datasheet/internal/assembler"
	"motor-datasheet/internal/config"
	"motor-datasheet/internal/datasheet"
	"motor-datasheet/internal/server"
	"motor-datasheet/internal/sheet"
	"motor-datasheet/internal/sheet/sheettest"
)

// setupWorkspace lays out a working directory the way the datasheet tool
// expects it and returns the path of its config file
func setupWorkspace(t *testing.T) (string, string) {
	t.Helper()
	root := t.TempDir()

	master := sheettest.Workbook(t,
		sheettest.Sheet{Name: "KSY HD", Columns: []sheettest.Column{
			sheettest.StandardColumn("246.40", 400.0),
		}},
		sheettest.Sheet{Name: "KSG HD", Columns: []sheettest.Column{
			sheettest.StandardColumn("KSG 246.40 10", 400.0),
		}},
		sheettest.Sheet{Name: "KSY HD - KSG", Columns: []sheettest.Column{
			sheettest.StandardColumn("246.40", 400.0),
		}},
	)
	defer master.Close()
	sheettest.Save(t, master, filepath.Join(root, "SEW_Masterfile.xlsx"))

	for l, name := range map[datasheet.Layout]string{
		datasheet.LayoutMotor:     "Datenblattvorlage_Motor.xlsx",
		datasheet.LayoutGearmotor: "Datenblattvorlage_Getriebemotor.xlsx",
	} {
		f, err := datasheet.NewTemplateLayout(l)
		require.NoError(t, err)
		sheettest.Save(t, f, filepath.Join(root, name))
		f.Close()
	}

	drawings := map[string]string{
		"KSY_Stecker": "Maßblatt KSY 24x HD mit Stecker.pdf",
		"KSG":         "Maßblatt KSG 24x HD.pdf",
	}
	for dir, name := range drawings {
		path := filepath.Join(root, "drawings", dir)
		require.NoError(t, os.MkdirAll(path, 0755))
		pdf := fpdf.New("L", "mm", "A4", "")
		pdf.AddPage()
		pdf.SetFont("Helvetica", "", 12)
		pdf.Cell(60, 10, "Massblatt "+dir)
		require.NoError(t, pdf.OutputFileAndClose(filepath.Join(path, name)))
	}

	configContent := fmt.Sprintf(`
master:
  source: %q
  gear_sheets:
    KSG: "KSY HD - KSG"
templates:
  motor: %q
  gearmotor: %q
drawings:
  dirs:
    KSY_Stecker: %q
    KSG: %q
  on_missing: "fail"
output:
  dir: %q
  write_files: true
  formats: ["docx", "json"]
`,
		filepath.Join(root, "SEW_Masterfile.xlsx"),
		filepath.Join(root, "Datenblattvorlage_Motor.xlsx"),
		filepath.Join(root, "Datenblattvorlage_Getriebemotor.xlsx"),
		filepath.Join(root, "drawings", "KSY_Stecker"),
		filepath.Join(root, "drawings", "KSG"),
		filepath.Join(root, "output"),
	)
	configPath := filepath.Join(root, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	return root, configPath
}

func submit(t *testing.T, h http.Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/datasheet", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func pdfPages(t *testing.T, b []byte) int {
	t.Helper()
	r, err := pdf.NewReader(bytes.NewReader(b), int64(len(b)))
	require.NoError(t, err)
	return r.NumPage()
}

func baseForm() url.Values {
	return url.Values{
		"variant":          {"HD"},
		"frame_size":       {"2"},
		"poles":            {"4"},
		"package_length":   {"6"},
		"rated_speed":      {"40"},
		"protection_class": {"IP54"},
		"duty_type":        {"S1"},
		"insulation":       {"F"},
		"encoder":          {"R4"},
		"direct_pdf":       {"on"},
	}
}

func TestEndToEndFlow(t *testing.T) {
	root, configPath := setupWorkspace(t)

	cfg, err := config.Load(configPath)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	h := server.New(assembler.New(cfg))

	// Motor with connector
	form := baseForm()
	form.Set("family", "KSY")
	form.Set("connector", "on")
	rec := submit(t, h, form)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, `attachment; filename="Datenblatt_KSY HD_246.40_V2.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, 2, pdfPages(t, rec.Body.Bytes()))

	outDir := filepath.Join(root, "output")
	for _, name := range []string{
		"Datenblatt_KSY HD_246.40.xlsx",
		"Datenblatt_KSY HD_246.40.pdf",
		"Datenblatt_KSY HD_246.40_V2.pdf",
		"Datenblatt_KSY HD_246.40.json",
		"Datenblatt_KSY HD_246.40.docx",
	} {
		assert.FileExists(t, filepath.Join(outDir, name))
	}

	f, err := excelize.OpenFile(filepath.Join(outDir, "Datenblatt_KSY HD_246.40.xlsx"))
	require.NoError(t, err)
	defer f.Close()
	s, err := sheet.FirstSheet(f)
	require.NoError(t, err)
	title, err := s.Cell(datasheet.TitleRow, datasheet.TitleColumn)
	require.NoError(t, err)
	assert.Equal(t, "KSY 246.40 HD  R4 / 400", title)

	r, err := docx.ReadDocxFile(filepath.Join(outDir, "Datenblatt_KSY HD_246.40.docx"))
	require.NoError(t, err)
	defer r.Close()
	assert.Contains(t, r.Editable().GetContent(), "KSY 246.40 HD  R4 / 400")

	// Gearmotor
	form = baseForm()
	form.Set("family", "KSG")
	form.Set("gearbox", "on")
	form.Set("gear_ratio", "10")
	rec = submit(t, h, form)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, `attachment; filename="Datenblatt_KSG HD_246.40_V2.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, 2, pdfPages(t, rec.Body.Bytes()))
}

func TestEndToEndMissingDrawing(t *testing.T) {
	root, configPath := setupWorkspace(t)

	cfg, err := config.Load(configPath)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(cfg.Output.Dir, 0755))
	h := server.New(assembler.New(cfg))

	// No drawing carries the key way token
	form := baseForm()
	form.Set("family", "KSY")
	form.Set("key_way", "on")
	rec := submit(t, h, form)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "no matching drawing PDF")

	entries, err := os.ReadDir(filepath.Join(root, "output"))
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing is written for a failed generation")
}
