package exporter

import (
	"motor-datasheet/internal/config"
	"motor-datasheet/internal/model"
)

// Exporter writes a side document for a generated datasheet
type Exporter interface {
	Export(ds *model.Datasheet, cfg *config.Config) (string, error)
}
