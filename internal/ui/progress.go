package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// ProgressBar wraps the progressbar library with our custom styling
type ProgressBar struct {
	bar   *progressbar.ProgressBar
	phase Phase
	total int
}

// Phase represents a stage of one datasheet generation
type Phase string

const (
	PhaseLoading   Phase = "Loading"
	PhaseResolving Phase = "Resolving"
	PhaseWriting   Phase = "Writing"
	PhaseRendering Phase = "Rendering"
	PhaseMerging   Phase = "Merging"
)

// GenerationPhases lists the phases of a generation in order
var GenerationPhases = []Phase{PhaseLoading, PhaseResolving, PhaseWriting, PhaseRendering, PhaseMerging}

// NewProgressBarWithOutput creates a new progress bar with custom output
func NewProgressBarWithOutput(phase Phase, total int, output io.Writer) *ProgressBar {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(output),
		progressbar.OptionSetDescription(fmt.Sprintf("[%s]", phase)),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionEnableColorCodes(true),
	)

	return &ProgressBar{bar: bar, phase: phase, total: total}
}

// Increment increments the progress bar by 1
func (pb *ProgressBar) Increment() error {
	return pb.bar.Add(1)
}

// Finish completes the progress bar
func (pb *ProgressBar) Finish() error {
	return pb.bar.Finish()
}

// Describe updates the description of the progress bar
func (pb *ProgressBar) Describe(description string) {
	pb.bar.Describe(fmt.Sprintf("[%s] %s", pb.phase, description))
}

// Phase returns the phase shown by the bar
func (pb *ProgressBar) Phase() Phase {
	return pb.phase
}

// Pipeline represents a multi-phase progress tracking system
type Pipeline struct {
	phases   []Phase
	current  int
	bar      *ProgressBar
	disabled bool
	output   io.Writer
}

// NewPipeline creates a new pipeline progress tracker on stdout
func NewPipeline(phases []Phase) *Pipeline {
	return NewPipelineWithOutput(phases, os.Stdout)
}

// NewPipelineWithOutput creates a new pipeline with custom output
func NewPipelineWithOutput(phases []Phase, output io.Writer) *Pipeline {
	return &Pipeline{
		phases:  phases,
		current: -1,
		output:  output,
	}
}

// Disable disables the progress bar output
func (p *Pipeline) Disable() {
	p.disabled = true
}

// Enter finishes the running phase and starts the given one.
// Phases not in the pipeline, or already passed, are ignored.
func (p *Pipeline) Enter(phase Phase, total int) *ProgressBar {
	next := -1
	for i := p.current + 1; i < len(p.phases); i++ {
		if p.phases[i] == phase {
			next = i
			break
		}
	}
	if next < 0 {
		return nil
	}

	p.finishCurrent()
	p.current = next

	output := p.output
	if p.disabled {
		output = io.Discard
	}
	p.bar = NewProgressBarWithOutput(phase, total, output)
	return p.bar
}

// Current returns the running phase, or "" before the first one
func (p *Pipeline) Current() Phase {
	if p.current < 0 {
		return ""
	}
	return p.phases[p.current]
}

func (p *Pipeline) finishCurrent() {
	if p.bar != nil {
		p.bar.Finish()
		p.bar = nil
	}
}

// Finish completes all phases
func (p *Pipeline) Finish() {
	p.finishCurrent()
}

// PrintSummary prints a summary line after the pipeline
func (p *Pipeline) PrintSummary(message string) {
	if !p.disabled {
		fmt.Fprintln(p.output, message)
	}
}
