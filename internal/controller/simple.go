package controller

import (
	"bytes"
	"fmt"

	m "github.com/mouse-blink/classpick/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output streams.
type SimpleUI struct {
	cmd *cobra.Command
	cfg StartConfig
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(options ...StartOption) error {
	s.cfg = newStartConfig(options)
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {

}

// DisplayScan prints how many files the scan found.
func (s *SimpleUI) DisplayScan(root m.Path, units int, others int) {
	s.printf("Found %d source units and %d non-source files in %s\n", units, others, root)
}

// DisplayPhase prints the heading of a copy phase.
func (s *SimpleUI) DisplayPhase(phase Phase) {
	if phase == PhaseArtifacts {
		s.printf("%s\n", separatorLine)
	}

	s.printf("%s\n", phaseTitle(phase, s.cfg.dryRun))
}

// DisplayResource prints one copied non-source file.
func (s *SimpleUI) DisplayResource(record m.CopyRecord) {
	s.printf("%s\n", resourceLine(record))
}

// DisplayUnit prints the separator preceding a source unit's class files.
func (s *SimpleUI) DisplayUnit(_ m.SourceUnit) {
	s.printf("%s\n", separatorLine)
}

// DisplayArtifact prints one copied class file.
func (s *SimpleUI) DisplayArtifact(record m.CopyRecord) {
	s.printf("%s\n", artifactLine(record))
}

// DisplaySummary prints the totals table and the JDK version breakdown.
func (s *SimpleUI) DisplaySummary(summary m.Summary) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Summary", "Count"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	table.AppendBulk(summaryRows(summary))
	table.Render()

	s.printf("%s\n\n%s", separatorLine, tableBuffer.String())
	s.printVersions(summary.Tally)

	return nil
}

// DisplayInspection prints a table of decoded class file headers.
func (s *SimpleUI) DisplayInspection(inspections []m.Inspection, tally m.VersionTally) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Class file", "Minor", "Major", "JDK"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
	})

	for _, inspection := range inspections {
		minor, major := "-", "-"
		if inspection.Err == nil {
			minor = fmt.Sprintf("%d", inspection.Record.Minor)
			major = fmt.Sprintf("%d", inspection.Record.Major)
		}

		table.Append([]string{string(inspection.Path), minor, major, inspection.Label()})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(inspections)), "", "", ""})
	table.Render()

	s.printf("\n%s", tableBuffer.String())

	for _, line := range inspectionErrorLines(inspections) {
		_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "warning: %s\n", line)
	}

	s.printVersions(tally)

	return nil
}

func (s *SimpleUI) printVersions(tally m.VersionTally) {
	if tally.Mixed() {
		s.printf("\nJDK versions:\n%s%s\n", indent(versionLines(tally)), mixedVersionWarning)
		return
	}

	if line := singleVersionLine(tally); line != "" {
		s.printf("%s\n", line)
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
