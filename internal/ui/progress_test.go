package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestPipelinePhases(t *testing.T) {
	var out bytes.Buffer
	p := NewPipelineWithOutput(GenerationPhases, &out)

	if p.Current() != "" {
		t.Errorf("Current() before start = %q, expected empty", p.Current())
	}

	bar := p.Enter(PhaseLoading, 2)
	if bar == nil || bar.Phase() != PhaseLoading {
		t.Fatalf("Enter(Loading) returned %v", bar)
	}
	bar.Increment()

	// Skipping a phase is allowed
	if bar := p.Enter(PhaseWriting, 1); bar == nil {
		t.Fatal("Enter(Writing) returned nil")
	}
	if p.Current() != PhaseWriting {
		t.Errorf("Current() = %q, expected %q", p.Current(), PhaseWriting)
	}

	// Going back is not
	if bar := p.Enter(PhaseResolving, 1); bar != nil {
		t.Error("Enter(Resolving) after Writing should return nil")
	}
	if bar := p.Enter(Phase("Unknown"), 1); bar != nil {
		t.Error("Enter(Unknown) should return nil")
	}

	p.Finish()
	p.PrintSummary("✓ done")

	if !strings.Contains(out.String(), "✓ done") {
		t.Errorf("Summary missing from output: %q", out.String())
	}
}

func TestPipelineDisabled(t *testing.T) {
	var out bytes.Buffer
	p := NewPipelineWithOutput(GenerationPhases, &out)
	p.Disable()

	for _, phase := range GenerationPhases {
		bar := p.Enter(phase, 1)
		if bar == nil {
			t.Fatalf("Enter(%s) returned nil", phase)
		}
		bar.Describe("step")
		bar.Increment()
	}
	p.Finish()
	p.PrintSummary("hidden")

	if out.Len() != 0 {
		t.Errorf("Disabled pipeline wrote output: %q", out.String())
	}
}
