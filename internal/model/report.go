package model

import "time"

// RecordKind distinguishes copied class files from copied auxiliary files.
type RecordKind string

const (
	// KindArtifact marks a compiled class file resolved from a source unit.
	KindArtifact RecordKind = "artifact"
	// KindResource marks a non-source file copied from the source tree.
	KindResource RecordKind = "resource"
)

// CopyRecord describes one file placed into the output root.
type CopyRecord struct {
	Kind     RecordKind `yaml:"kind"`
	Unit     Path       `yaml:"unit,omitempty"` // owning source unit, artifacts only
	Rel      Path       `yaml:"path"`           // relative to the output root
	Size     int64      `yaml:"size"`
	Label    string     `yaml:"jdk,omitempty"`
	Checksum string     `yaml:"blake3,omitempty"`
}

// Summary holds the totals of one run.
type Summary struct {
	Units     int          `yaml:"units"`
	Artifacts int          `yaml:"artifacts"`
	Resources int          `yaml:"resources"`
	Total     int          `yaml:"total"`
	Tally     VersionTally `yaml:"versions,omitempty"`
}

// Manifest is the persisted record of a run.
type Manifest struct {
	Tool       string       `yaml:"tool"`
	Version    string       `yaml:"version"`
	CreatedAt  time.Time    `yaml:"created_at"`
	SourceRoot Path         `yaml:"source_root"`
	ClassRoot  Path         `yaml:"class_root"`
	OutputRoot Path         `yaml:"output_root"`
	DryRun     bool         `yaml:"dry_run,omitempty"`
	Records    []CopyRecord `yaml:"records"`
	Summary    Summary      `yaml:"summary"`
}
