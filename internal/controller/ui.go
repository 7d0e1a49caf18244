// Package controller provides output adapters for reporting copy and inspection results.
package controller

import (
	m "github.com/mouse-blink/classpick/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeCopy StartMode = iota
	ModeInspect
)

// Phase identifies a stage of the copy pipeline.
type Phase int

// Copy phases in the order they run.
const (
	PhaseResources Phase = iota
	PhaseArtifacts
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode   StartMode
	dryRun bool
}

// WithCopyMode sets the UI to copy mode.
func WithCopyMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeCopy
	}
}

// WithInspectMode sets the UI to header inspection mode.
func WithInspectMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeInspect
	}
}

// WithDryRun marks the run as a preview where nothing is written.
func WithDryRun(dryRun bool) StartOption {
	return func(c *StartConfig) {
		c.dryRun = dryRun
	}
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{}
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI defines the interface for reporting a run.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	DisplayScan(root m.Path, units int, others int)
	DisplayPhase(phase Phase)
	DisplayResource(record m.CopyRecord)
	DisplayUnit(unit m.SourceUnit)
	DisplayArtifact(record m.CopyRecord)
	DisplaySummary(summary m.Summary) error
	DisplayInspection(inspections []m.Inspection, tally m.VersionTally) error
}
