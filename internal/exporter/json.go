package exporter

import (
	"encoding/json"
	"fmt"
	"os"

	"motor-datasheet/internal/config"
	"motor-datasheet/internal/model"
)

// JSONExporter writes the resolved values as a JSON record
type JSONExporter struct{}

func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

func (e *JSONExporter) Export(ds *model.Datasheet, cfg *config.Config) (string, error) {
	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode datasheet record: %w", err)
	}

	outFile := cfg.OutputPath(ds.BaseName() + ".json")
	if err := os.WriteFile(outFile, append(data, '\n'), 0644); err != nil {
		return "", fmt.Errorf("failed to write JSON record: %w", err)
	}
	return outFile, nil
}
