package exporter

import (
	"strings"

	"motor-datasheet/internal/exporter/html"
	"motor-datasheet/internal/exporter/word"
)

// GetExporters returns a list of Exporters based on requested formats
func GetExporters(formats []string) []Exporter {
	exporters := []Exporter{}
	seen := make(map[string]bool)

	for _, fmtStr := range formats {
		fmtStr = strings.ToLower(strings.TrimSpace(fmtStr))
		if fmtStr == "word" {
			fmtStr = "docx"
		}
		if seen[fmtStr] {
			continue
		}
		seen[fmtStr] = true

		switch fmtStr {
		case "docx":
			exporters = append(exporters, word.NewWordExporter())
		case "html":
			exporters = append(exporters, html.NewHTMLExporter())
		case "json":
			exporters = append(exporters, NewJSONExporter())
		}
	}

	return exporters
}
