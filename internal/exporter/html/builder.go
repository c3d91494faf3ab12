package html

import (
	"fmt"
	"html/template"
	"os"

	"motor-datasheet/internal/config"
	"motor-datasheet/internal/exporter/common"
	"motor-datasheet/internal/model"
	"motor-datasheet/internal/sheet"
)

type HTMLExporter struct{}

func NewHTMLExporter() *HTMLExporter {
	return &HTMLExporter{}
}

// DatasheetPageData feeds DatasheetTemplate
type DatasheetPageData struct {
	Datasheet *model.Datasheet
	Created   string
	Drawing   string
	Motor     []model.FieldValue
	Gear      []model.FieldValue
}

func (e *HTMLExporter) Export(ds *model.Datasheet, cfg *config.Config) (string, error) {
	motor, gear := common.SplitValues(ds.Values)

	drawing := ds.Drawing
	if drawing == "" {
		drawing = "-"
	}

	data := DatasheetPageData{
		Datasheet: ds,
		Created:   ds.Created.Format("2006-01-02 15:04"),
		Drawing:   drawing,
		Motor:     motor,
		Gear:      gear,
	}

	tmpl, err := template.New("datasheet").Funcs(template.FuncMap{
		"text":     sheet.Text,
		"rowClass": rowClass,
	}).Parse(DatasheetTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML template: %w", err)
	}

	outFile := cfg.OutputPath(ds.BaseName() + ".html")
	f, err := os.Create(outFile)
	if err != nil {
		return "", fmt.Errorf("failed to create HTML file: %w", err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return "", fmt.Errorf("failed to render HTML datasheet: %w", err)
	}
	return outFile, nil
}

// rowClass stripes table rows
func rowClass(i int) string {
	if i%2 == 0 {
		return "even"
	}
	return "odd"
}
