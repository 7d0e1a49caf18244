package controller

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	m "github.com/mouse-blink/classpick/internal/model"
)

const separatorLine = "----------------------------------------"

func formatSize(size int64) string {
	if size < 0 {
		size = 0
	}

	return fmt.Sprintf("%d bytes (%s)", size, humanize.IBytes(uint64(size)))
}

func resourceLine(record m.CopyRecord) string {
	return fmt.Sprintf("resource: %s, size: %s", record.Rel, formatSize(record.Size))
}

func artifactLine(record m.CopyRecord) string {
	return fmt.Sprintf("source: %s, class: %s, size: %s, JDK: %s",
		record.Unit, record.Rel, formatSize(record.Size), record.Label)
}

func phaseTitle(phase Phase, dryRun bool) string {
	var title string

	switch phase {
	case PhaseResources:
		title = "Copying non-source files"
	case PhaseArtifacts:
		title = "Copying class files and checking JDK versions"
	default:
		title = "Working"
	}

	if dryRun {
		title += " (dry run, nothing is written)"
	}

	return title + "..."
}

// versionLines lists "<label>: <n> file(s)" for each label in sorted order.
func versionLines(tally m.VersionTally) []string {
	counts := tally.Counts()
	lines := make([]string, 0, len(counts))

	for _, label := range tally.Labels() {
		lines = append(lines, fmt.Sprintf("%s: %d file(s)", label, counts[label]))
	}

	return lines
}

func summaryRows(summary m.Summary) [][]string {
	return [][]string{
		{"Source units", fmt.Sprintf("%d", summary.Units)},
		{"Class files", fmt.Sprintf("%d", summary.Artifacts)},
		{"Non-source files", fmt.Sprintf("%d", summary.Resources)},
		{"Total copied", fmt.Sprintf("%d", summary.Total)},
	}
}

func singleVersionLine(tally m.VersionTally) string {
	labels := tally.Labels()
	if len(labels) != 1 {
		return ""
	}

	return "All class files built by " + labels[0]
}

const mixedVersionWarning = "WARNING: multiple JDK versions detected!"

func inspectionErrorLines(inspections []m.Inspection) []string {
	var lines []string

	for _, inspection := range inspections {
		if inspection.Err != nil {
			lines = append(lines, fmt.Sprintf("cannot read JDK version: %v", inspection.Err))
		}
	}

	return lines
}

func indent(lines []string) string {
	var b strings.Builder

	for _, line := range lines {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
