// Package metrics provides Prometheus metrics for datasheet generation
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"motor-datasheet/internal/model"
)

// Outcome labels
const (
	OutcomeSuccess          = "success"
	OutcomeLookupError      = "lookup_error"
	OutcomeInvalidSelection = "invalid_selection"
	OutcomeDrawingMissing   = "drawing_missing"
	OutcomeError            = "error"
)

var (
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "datasheet_generations_total",
			Help: "Total number of datasheet generations",
		},
		[]string{"family", "layout", "outcome"},
	)

	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "datasheet_generation_duration_seconds",
			Help:    "Time taken to generate one datasheet",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"family", "layout"},
	)

	DrawingMissesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "datasheet_drawing_misses_total",
			Help: "Total number of selections without a matching drawing",
		},
		[]string{"directory"},
	)

	WarningsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "datasheet_warnings_total",
			Help: "Total number of non-fatal generation warnings",
		},
		[]string{"kind"},
	)
)

// Outcome classifies a generation error
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, model.ErrInvalidSelection):
		return OutcomeInvalidSelection
	case errors.Is(err, model.ErrDrawingNotFound):
		return OutcomeDrawingMissing
	case errors.Is(err, model.ErrLookup):
		return OutcomeLookupError
	default:
		return OutcomeError
	}
}

// RecordGeneration records one finished generation
func RecordGeneration(family, layout string, err error, duration time.Duration) {
	GenerationsTotal.WithLabelValues(family, layout, Outcome(err)).Inc()
	GenerationDuration.WithLabelValues(family, layout).Observe(duration.Seconds())
}

// RecordDrawingMiss records a selection whose drawing was not found
func RecordDrawingMiss(directory string) {
	DrawingMissesTotal.WithLabelValues(directory).Inc()
}

// RecordWarning records a non-fatal condition (e.g., unknown voltage class)
func RecordWarning(kind string) {
	WarningsTotal.WithLabelValues(kind).Inc()
}

// Timer is a helper for measuring duration
type Timer struct {
	start time.Time
	now   func() time.Time
}

// NewTimer creates a new timer reading the given clock
func NewTimer(now func() time.Time) *Timer {
	if now == nil {
		now = time.Now
	}
	return &Timer{start: now(), now: now}
}

// Duration returns the elapsed time since the timer was created
func (t *Timer) Duration() time.Duration {
	return t.now().Sub(t.start)
}
