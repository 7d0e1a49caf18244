package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/classpick/internal/model"
	"golang.org/x/term"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	boxStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 1)
)

// TUI implements UI with lipgloss styling. The report is buffered and shown
// on Close, inside a scrollable pager when it does not fit the terminal.
type TUI struct {
	output io.Writer
	cfg    StartConfig
	lines  []string
	runner func(model tea.Model) error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	t := &TUI{output: output}
	t.runner = t.runProgram

	return t
}

// Start initializes the UI.
func (t *TUI) Start(options ...StartOption) error {
	t.cfg = newStartConfig(options)
	t.lines = t.lines[:0]

	title := "classpick"
	if t.cfg.mode == ModeInspect {
		title += " · class file inspection"
	}

	if t.cfg.dryRun {
		title += " · dry run"
	}

	t.add(titleStyle.Render(title))

	return nil
}

// Close renders the buffered report.
func (t *TUI) Close() {
	content := strings.Join(t.lines, "\n") + "\n"
	t.lines = t.lines[:0]

	height := terminalHeight(t.output)
	if height == 0 || strings.Count(content, "\n") < height {
		_, _ = fmt.Fprint(t.output, content)
		return
	}

	if err := t.runner(newReportModel(content)); err != nil {
		_, _ = fmt.Fprint(t.output, content)
	}
}

// DisplayScan records how many files the scan found.
func (t *TUI) DisplayScan(root m.Path, units int, others int) {
	t.add(dimStyle.Render(fmt.Sprintf("%d source units, %d non-source files in %s", units, others, root)))
}

// DisplayPhase records a phase heading.
func (t *TUI) DisplayPhase(phase Phase) {
	t.add("")
	t.add(headingStyle.Render(phaseTitle(phase, t.cfg.dryRun)))
}

// DisplayResource records one copied non-source file.
func (t *TUI) DisplayResource(record m.CopyRecord) {
	t.add(fmt.Sprintf("  %s %s", pathStyle.Render(string(record.Rel)), dimStyle.Render(formatSize(record.Size))))
}

// DisplayUnit records the heading for a source unit.
func (t *TUI) DisplayUnit(unit m.SourceUnit) {
	t.add(fmt.Sprintf("  %s", labelStyle.Render(string(unit.Rel))))
}

// DisplayArtifact records one copied class file.
func (t *TUI) DisplayArtifact(record m.CopyRecord) {
	label := okStyle.Render(record.Label)
	if record.Label == m.UnknownVersion {
		label = warningStyle.Render(record.Label)
	}

	t.add(fmt.Sprintf("    %s %s %s", pathStyle.Render(string(record.Rel)), dimStyle.Render(formatSize(record.Size)), label))
}

// DisplaySummary records the totals box and version breakdown.
func (t *TUI) DisplaySummary(summary m.Summary) error {
	rows := summaryRows(summary)
	body := make([]string, 0, len(rows))

	for _, row := range rows {
		body = append(body, fmt.Sprintf("%-18s %s", row[0], labelStyle.Render(row[1])))
	}

	t.add("")
	t.add(boxStyle.Render(strings.Join(body, "\n")))
	t.addVersions(summary.Tally)

	return nil
}

// DisplayInspection records the decoded class file headers.
func (t *TUI) DisplayInspection(inspections []m.Inspection, tally m.VersionTally) error {
	for _, inspection := range inspections {
		label := okStyle.Render(inspection.Label())
		if inspection.Err != nil {
			label = warningStyle.Render(inspection.Err.Error())
		}

		t.add(fmt.Sprintf("  %s %s", pathStyle.Render(string(inspection.Path)), label))
	}

	t.addVersions(tally)

	return nil
}

func (t *TUI) addVersions(tally m.VersionTally) {
	if tally.Mixed() {
		t.add("")
		t.add(headingStyle.Render("JDK versions"))

		for _, line := range versionLines(tally) {
			t.add("  " + line)
		}

		t.add(warningStyle.Render(mixedVersionWarning))

		return
	}

	if line := singleVersionLine(tally); line != "" {
		t.add(okStyle.Render(line))
	}
}

func (t *TUI) add(line string) {
	t.lines = append(t.lines, line)
}

func (t *TUI) runProgram(model tea.Model) error {
	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	_, err := program.Run()

	return err
}

func terminalHeight(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}

	_, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}

	return height
}
