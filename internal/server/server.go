// Package server serves the datasheet form and delivers generated documents.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"sync"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"motor-datasheet/internal/assembler"
	"motor-datasheet/internal/exporter/openapi"
	"motor-datasheet/internal/logger"
	"motor-datasheet/internal/model"
)

// APIVersion is reported in the API document
const APIVersion = "1.0.0"

// Generator produces a datasheet for a selection
type Generator interface {
	Generate(ctx context.Context, sel model.Selection) (*assembler.Result, error)
}

type Server struct {
	router chi.Router
	gen    Generator
	form   *template.Template

	// Generations share output file names
	mu sync.Mutex
}

type formData struct {
	Options   model.FormOptions
	Selection model.Selection
	Error     string
}

// New creates a Server around gen
func New(gen Generator) *Server {
	s := &Server{
		router: chi.NewRouter(),
		gen:    gen,
		form:   template.Must(template.New("form").Parse(formTemplate)),
	}
	s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("%s %s (%s) from %s", r.Method, r.URL.Path, time.Since(start), r.RemoteAddr)
		})
	})

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	s.router.Handle("/metrics", promhttp.Handler())

	s.router.Get("/", s.handleForm)
	s.router.Post("/datasheet", s.handleDatasheet)
	s.router.Get("/v1/options", s.handleOptions)
	s.router.Get("/openapi.json", s.handleOpenAPI)
}

// defaultSelection preselects the first option of every list
func defaultSelection(opts model.FormOptions) model.Selection {
	first := func(list []string) string {
		if len(list) == 0 {
			return ""
		}
		return list[0]
	}
	return model.Selection{
		Family:          opts.Families[0],
		Variant:         first(opts.Variants),
		FrameSize:       first(opts.FrameSizes),
		Poles:           first(opts.Poles),
		PackageLength:   first(opts.PackageLengths),
		RatedSpeed:      first(opts.RatedSpeeds),
		ProtectionClass: first(opts.ProtectionClass),
		DutyType:        first(opts.DutyTypes),
		Insulation:      first(opts.InsulationClass),
		Encoder:         opts.Encoders[0],
		DirectPDF:       true,
	}
}

func (s *Server) renderForm(w http.ResponseWriter, status int, data formData) {
	var buf bytes.Buffer
	if err := s.form.Execute(&buf, data); err != nil {
		logger.Error("Failed to render form: %v", err)
		http.Error(w, "failed to render form", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	opts := model.Options()
	s.renderForm(w, http.StatusOK, formData{Options: opts, Selection: defaultSelection(opts)})
}

func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.Options())
}

func (s *Server) handleOpenAPI(w http.ResponseWriter, r *http.Request) {
	doc := openapi.Build(APIVersion, formFields(model.Options()))
	w.Header().Set("Content-Type", "application/json")
	if err := openapi.Write(w, doc); err != nil {
		logger.Error("Failed to write API document: %v", err)
	}
}

// statusFor maps a generation error to an HTTP status
func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidSelection):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrLookup), errors.Is(err, model.ErrDrawingNotFound):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) handleDatasheet(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	sel, err := ParseSelection(r.PostForm)
	if err != nil {
		s.fail(w, r, sel, err)
		return
	}

	s.mu.Lock()
	res, err := s.gen.Generate(r.Context(), sel)
	s.mu.Unlock()
	if err != nil {
		s.fail(w, r, sel, err)
		return
	}

	name, data, contentType := res.Deliverable()
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	if res.Datasheet != nil {
		w.Header().Set("X-Request-Id", res.Datasheet.RequestID)
	}
	if len(res.Warnings) > 0 {
		w.Header().Set("X-Datasheet-Warnings", strconv.Itoa(len(res.Warnings)))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// fail shows the form again with the error message
func (s *Server) fail(w http.ResponseWriter, r *http.Request, sel model.Selection, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Errorw("Datasheet request failed", "request_id", middleware.GetReqID(r.Context()), "status", status, "error", err)
	} else {
		logger.Warnw("Datasheet request rejected", "request_id", middleware.GetReqID(r.Context()), "status", status, "error", err)
	}
	s.renderForm(w, status, formData{Options: model.Options(), Selection: sel, Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// ListenAndServe serves s on addr until ctx is cancelled
func ListenAndServe(ctx context.Context, addr string, s *Server) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Datasheet form listening on %s", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}
