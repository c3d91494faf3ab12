// Package assembler runs one datasheet generation: it opens the master and
// template workbooks, fills the template, renders it and merges the drawing.
package assembler

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"motor-datasheet/internal/config"
	"motor-datasheet/internal/datasheet"
	"motor-datasheet/internal/drawing"
	"motor-datasheet/internal/exporter"
	"motor-datasheet/internal/keys"
	"motor-datasheet/internal/logger"
	"motor-datasheet/internal/mapping"
	"motor-datasheet/internal/metrics"
	"motor-datasheet/internal/model"
	"motor-datasheet/internal/render"
	"motor-datasheet/internal/sheet"
	"motor-datasheet/internal/source"
	"motor-datasheet/internal/ui"
)

// Content types of the deliverable
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Opener opens master and template locations
type Opener interface {
	Open(ctx context.Context, location string) (io.ReadCloser, error)
}

// Assembler generates datasheets. It holds no per-request state, but output
// file names are shared, so callers serialize generations that write files.
type Assembler struct {
	cfg      *config.Config
	src      Opener
	now      func() time.Time
	newID    func() string
	progress io.Writer
}

// Option customizes an Assembler
type Option func(*Assembler)

// WithOpener replaces the location opener
func WithOpener(o Opener) Option {
	return func(a *Assembler) { a.src = o }
}

// WithClock replaces the clock used for PDF dates and durations
func WithClock(now func() time.Time) Option {
	return func(a *Assembler) { a.now = now }
}

// WithRequestID replaces the request ID generator
func WithRequestID(newID func() string) Option {
	return func(a *Assembler) { a.newID = newID }
}

// WithProgress shows phase progress bars on w
func WithProgress(w io.Writer) Option {
	return func(a *Assembler) { a.progress = w }
}

// New creates an Assembler for cfg
func New(cfg *config.Config, opts ...Option) *Assembler {
	a := &Assembler{
		cfg:   cfg,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.src == nil {
		a.src = source.NewFetcher(cfg.S3)
	}
	return a
}

// Result holds everything one generation produced
type Result struct {
	Datasheet    *model.Datasheet
	Keys         keys.LookupKey
	Workbook     []byte   // Filled template (.xlsx)
	DatasheetPDF []byte   // Rendered template, nil without direct PDF export
	PDF          []byte   // Final PDF: datasheet + drawing, or the datasheet alone
	Files        []string // Paths written to the output directory
	Warnings     []string
}

// WorkbookName returns the file name of the filled template
func (r *Result) WorkbookName() string {
	return r.Datasheet.BaseName() + ".xlsx"
}

// DatasheetPDFName returns the file name of the rendered template
func (r *Result) DatasheetPDFName() string {
	return r.Datasheet.BaseName() + ".pdf"
}

// PDFName returns the file name of the final PDF
func (r *Result) PDFName() string {
	return r.Datasheet.BaseName() + "_V2.pdf"
}

// Deliverable returns the document handed to the user: the final PDF when
// one was produced, else the filled workbook
func (r *Result) Deliverable() (name string, data []byte, contentType string) {
	if r.PDF != nil {
		return r.PDFName(), r.PDF, ContentTypePDF
	}
	return r.WorkbookName(), r.Workbook, ContentTypeXLSX
}

func (a *Assembler) pipeline() *ui.Pipeline {
	if a.progress == nil {
		p := ui.NewPipelineWithOutput(ui.GenerationPhases, io.Discard)
		p.Disable()
		return p
	}
	return ui.NewPipelineWithOutput(ui.GenerationPhases, a.progress)
}

// Generate runs the whole pipeline for one selection. Nothing is written to
// the output directory unless every step succeeds.
func (a *Assembler) Generate(ctx context.Context, sel model.Selection) (res *Result, err error) {
	timer := metrics.NewTimer(a.now)
	layout := datasheet.LayoutFor(sel.Gearbox)
	defer func() {
		metrics.RecordGeneration(string(sel.Family), layout.String(), err, timer.Duration())
	}()

	if err := sel.Validate(); err != nil {
		return nil, err
	}
	// Undefined variants fail before any workbook is opened
	fm, err := mapping.Lookup(mapping.VariantOf(sel))
	if err != nil {
		return nil, err
	}

	k := keys.Build(sel)
	res = &Result{
		Keys: k,
		Datasheet: &model.Datasheet{
			RequestID:   a.newID(),
			Created:     a.now(),
			MotorString: k.MotorString,
			PartNumber:  k.PartNumber,
			DrawingKey:  k.Drawing,
			Layout:      layout.String(),
			Selection:   sel,
		},
	}
	logger.Infow("Generating datasheet",
		"request_id", res.Datasheet.RequestID,
		"motor", k.MotorString,
		"part", k.PartNumber,
		"layout", layout.String(),
	)

	progress := a.pipeline()
	defer progress.Finish()

	if err := a.buildDatasheet(ctx, sel, k, fm, layout, res, progress); err != nil {
		return nil, err
	}

	if sel.DirectPDF {
		if err := a.attachDrawing(sel, k, res, progress); err != nil {
			return nil, err
		}
	}

	if a.cfg.Output.WriteFiles {
		if err := a.writeFiles(res); err != nil {
			return nil, err
		}
	}

	for _, w := range res.Warnings {
		metrics.RecordWarning("generation")
		logger.Warnw("Datasheet warning", "request_id", res.Datasheet.RequestID, "warning", w)
	}
	name, data, _ := res.Deliverable()
	logger.Infow("Datasheet generated",
		"request_id", res.Datasheet.RequestID,
		"file", name,
		"bytes", len(data),
	)
	progress.PrintSummary(fmt.Sprintf("✓ %s", name))
	return res, nil
}

// buildDatasheet covers the steps that need the workbooks open: fill, save
// and render. Both workbooks are closed when it returns.
func (a *Assembler) buildDatasheet(ctx context.Context, sel model.Selection, k keys.LookupKey, fm mapping.FieldMapping, layout datasheet.Layout, res *Result, progress *ui.Pipeline) error {
	bar := progress.Enter(ui.PhaseLoading, 2)

	master, err := a.openWorkbook(ctx, a.cfg.Master.Source)
	if err != nil {
		return fmt.Errorf("failed to load master file: %w", err)
	}
	defer master.Close()
	bar.Increment()

	tmpl, err := a.openWorkbook(ctx, a.cfg.TemplateFor(sel.Gearbox))
	if err != nil {
		return fmt.Errorf("failed to load %s template: %w", layout, err)
	}
	defer tmpl.Close()
	bar.Increment()

	target, err := sheet.FirstSheet(tmpl)
	if err != nil {
		return fmt.Errorf("failed to open template sheet: %w", err)
	}

	progress.Enter(ui.PhaseResolving, 1)
	fill, err := FillTemplate(a.cfg, excelWorkbook{master}, target, sel, k, fm)
	if err != nil {
		return err
	}

	bar = progress.Enter(ui.PhaseWriting, 1)
	bar.Describe(fmt.Sprintf("%d cells", len(fill.Writes)))
	buf, err := tmpl.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("failed to save filled template: %w", err)
	}
	res.Workbook = buf.Bytes()
	res.Warnings = append(res.Warnings, fill.Warnings...)
	res.Datasheet.Title = fill.Title
	res.Datasheet.Values = fieldValues(fill.Writes, layout)
	bar.Increment()

	if sel.DirectPDF {
		progress.Enter(ui.PhaseRendering, 1)
		pdf, err := render.SheetPDF(tmpl, target.Name(), res.Datasheet.Created)
		if err != nil {
			return err
		}
		res.DatasheetPDF = pdf
	}
	return nil
}

func (a *Assembler) openWorkbook(ctx context.Context, location string) (*excelize.File, error) {
	rc, err := a.src.Open(ctx, location)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	f, err := excelize.OpenReader(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", location, err)
	}
	return f, nil
}

// attachDrawing merges the matching drawing behind the datasheet PDF,
// applying the missing-drawing policy when none matches
func (a *Assembler) attachDrawing(sel model.Selection, k keys.LookupKey, res *Result, progress *ui.Pipeline) error {
	bar := progress.Enter(ui.PhaseMerging, 2)

	dirKey := drawing.DirectoryKey(sel)
	path, err := a.findDrawing(dirKey, k.Drawing)
	if err != nil {
		return err
	}
	bar.Increment()

	if path == "" {
		metrics.RecordDrawingMiss(dirKey)
		if a.cfg.Drawings.OnMissing != config.OnMissingDatasheetOnly {
			return fmt.Errorf("%w: %q in %s", model.ErrDrawingNotFound, k.Drawing, dirKey)
		}
		res.Warnings = append(res.Warnings, fmt.Sprintf("no drawing matches %q, delivering the datasheet alone", k.Drawing))
		res.PDF = res.DatasheetPDF
		return nil
	}

	drawingPDF, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read drawing: %w", err)
	}
	merged, err := render.Merge(res.DatasheetPDF, drawingPDF)
	if err != nil {
		return err
	}
	res.PDF = merged
	res.Datasheet.Drawing = path
	bar.Increment()

	logger.Info("PDFs erfolgreich zusammengefügt: %s + %s", res.DatasheetPDFName(), path)
	return nil
}

// findDrawing returns "" when the directory is not configured or holds no match
func (a *Assembler) findDrawing(dirKey, token string) (string, error) {
	dir, ok := a.cfg.DrawingDir(dirKey)
	if !ok {
		logger.Warn("No drawing directory configured for %s", dirKey)
		return "", nil
	}
	path, found, err := drawing.FindDrawing(dir, token)
	if err != nil {
		return "", fmt.Errorf("failed to search drawings for %q: %w", token, err)
	}
	if !found {
		return "", nil
	}
	logger.Debug("Drawing for %q: %s", token, path)
	return path, nil
}

// writeFiles stores the deliverables and side exports in the output
// directory. Files already written are removed again when a later one fails.
func (a *Assembler) writeFiles(res *Result) (err error) {
	defer func() {
		if err == nil {
			return
		}
		for _, path := range res.Files {
			if rmErr := os.Remove(path); rmErr != nil && !os.IsNotExist(rmErr) {
				logger.Warn("Failed to remove %s: %v", path, rmErr)
			}
		}
		res.Files = nil
	}()

	outputs := []struct {
		name string
		data []byte
	}{
		{res.WorkbookName(), res.Workbook},
		{res.DatasheetPDFName(), res.DatasheetPDF},
		{res.PDFName(), res.PDF},
	}
	for _, o := range outputs {
		if o.data == nil {
			continue
		}
		path := a.cfg.OutputPath(o.name)
		if err := os.WriteFile(path, o.data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", o.name, err)
		}
		res.Files = append(res.Files, path)
	}

	for _, exp := range exporter.GetExporters(a.cfg.Output.Formats) {
		path, err := exp.Export(res.Datasheet, a.cfg)
		if err != nil {
			return err
		}
		res.Files = append(res.Files, path)
	}
	return nil
}
