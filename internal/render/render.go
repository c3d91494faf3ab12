// Package render turns a filled template sheet into a PDF and merges PDFs.
package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/xuri/excelize/v2"
)

func init() {
	// pdfcpu would otherwise create a config directory under the user's home
	api.DisableConfigDir()
}

const (
	labelWidth = 95.0
	lineHeight = 7.0
)

// SheetPDF renders the non-empty rows of a sheet as a two-column table.
// The first non-empty cell of a row is the label, the rest is the value.
// created is written as creation and modification date, so equal input
// yields equal bytes.
func SheetPDF(f *excelize.File, sheetName string, created time.Time) ([]byte, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(created)
	pdf.SetModificationDate(created)
	pdf.SetCatalogSort(true)
	pdf.SetTitle(sheetName, true)
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	for _, row := range rows {
		cells := nonEmpty(row)
		switch len(cells) {
		case 0:
			continue
		case 1:
			pdf.SetFont("Helvetica", "B", 14)
			pdf.CellFormat(0, lineHeight+3, tr(cells[0]), "", 1, "L", false, 0, "")
		default:
			pdf.SetFont("Helvetica", "", 10)
			pdf.CellFormat(labelWidth, lineHeight, tr(cells[0]), "B", 0, "L", false, 0, "")
			pdf.SetFont("Helvetica", "B", 10)
			pdf.CellFormat(0, lineHeight, tr(strings.Join(cells[1:], " ")), "B", 1, "R", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func nonEmpty(row []string) []string {
	out := make([]string, 0, len(row))
	for _, c := range row {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

func newConfiguration() *pdfmodel.Configuration {
	conf := pdfmodel.NewDefaultConfiguration()
	conf.ValidationMode = pdfmodel.ValidationRelaxed
	return conf
}

// Merge concatenates PDFs in order
func Merge(parts ...[]byte) ([]byte, error) {
	switch len(parts) {
	case 0:
		return nil, fmt.Errorf("nothing to merge")
	case 1:
		return append([]byte(nil), parts[0]...), nil
	}

	rsc := make([]io.ReadSeeker, len(parts))
	for i, p := range parts {
		rsc[i] = bytes.NewReader(p)
	}

	var buf bytes.Buffer
	if err := api.MergeRaw(rsc, &buf, false, newConfiguration()); err != nil {
		return nil, fmt.Errorf("failed to merge pdfs: %w", err)
	}
	return buf.Bytes(), nil
}

// PageCount returns the number of pages of a PDF
func PageCount(pdf []byte) (int, error) {
	n, err := api.PageCount(bytes.NewReader(pdf), newConfiguration())
	if err != nil {
		return 0, fmt.Errorf("failed to count pages: %w", err)
	}
	return n, nil
}
