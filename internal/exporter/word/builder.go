package word

import (
	"bytes"
	"fmt"
	"strings"

	"motor-datasheet/internal/config"
	"motor-datasheet/internal/exporter/common"
	"motor-datasheet/internal/model"
	"motor-datasheet/internal/sheet"

	"github.com/nguyenthenguyen/docx"
)

type WordExporter struct{}

func NewWordExporter() *WordExporter {
	return &WordExporter{}
}

func (e *WordExporter) Export(ds *model.Datasheet, cfg *config.Config) (string, error) {
	templateBytes, err := Template()
	if err != nil {
		return "", err
	}

	r, err := docx.ReadDocxFromMemory(bytes.NewReader(templateBytes), int64(len(templateBytes)))
	if err != nil {
		return "", fmt.Errorf("failed to read docx template: %w", err)
	}
	defer r.Close()

	doc := r.Editable()

	drawing := ds.Drawing
	if drawing == "" {
		drawing = "-"
	}

	// The docx library handles the XML encoding
	replacements := []struct{ placeholder, value string }{
		{"{{Title}}", ds.Title},
		{"{{Date}}", ds.Created.Format("2006-01-02 15:04")},
		{"{{Drawing}}", drawing},
		{"{{Content}}", buildContent(ds)},
	}
	for _, rep := range replacements {
		if err := doc.Replace(rep.placeholder, rep.value, -1); err != nil {
			return "", fmt.Errorf("failed to fill %s: %w", rep.placeholder, err)
		}
	}

	outFile := cfg.OutputPath(ds.BaseName() + ".docx")
	if err := doc.WriteToFile(outFile); err != nil {
		return "", fmt.Errorf("failed to write Word document: %w", err)
	}

	return outFile, nil
}

// buildContent lists the written values as a plain text table
func buildContent(ds *model.Datasheet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Motor: %s   Teilenummer: %s\n", ds.MotorString, ds.PartNumber))
	sb.WriteString(fmt.Sprintf("Vorlage: %s   Anfrage: %s\n\n", ds.Layout, ds.RequestID))
	sb.WriteString(fmt.Sprintf("%-6s %-40s %s\n", "Zelle", "Bezeichnung", "Wert"))
	sb.WriteString(strings.Repeat("-", 70) + "\n")

	motor, gear := common.SplitValues(ds.Values)
	for _, v := range motor {
		sb.WriteString(fmt.Sprintf("%-6s %-40s %s\n", v.Cell, truncate(v.Label, 40), sheet.Text(v.Value)))
	}
	if len(gear) > 0 {
		sb.WriteString("\nGetriebe\n")
		for _, v := range gear {
			sb.WriteString(fmt.Sprintf("%-6s %-40s %s\n", v.Cell, truncate(v.Label, 40), sheet.Text(v.Value)))
		}
	}

	return sb.String()
}

// truncate truncates a string to a maximum length
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
