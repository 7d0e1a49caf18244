package controller

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const footerHeight = 1

// reportModel pages a rendered report that is taller than the terminal.
type reportModel struct {
	content  string
	viewport viewport.Model
	ready    bool
	width    int
}

func newReportModel(content string) reportModel {
	return reportModel{content: content}
}

func (r reportModel) Init() tea.Cmd {
	return nil
}

func (r reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return r, tea.Quit
		}
	case tea.WindowSizeMsg:
		height := msg.Height - footerHeight
		if height < 1 {
			height = 1
		}

		r.width = msg.Width

		if !r.ready {
			r.viewport = viewport.New(msg.Width, height)
			r.viewport.SetContent(r.content)
			r.ready = true
		} else {
			r.viewport.Width = msg.Width
			r.viewport.Height = height
		}

		return r, nil
	}

	if !r.ready {
		return r, nil
	}

	var cmd tea.Cmd
	r.viewport, cmd = r.viewport.Update(msg)

	return r, cmd
}

func (r reportModel) View() string {
	if !r.ready {
		return "Loading report…\n"
	}

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Width(r.width).
		Align(lipgloss.Center).
		Render("↑/k up • ↓/j down • pgup/pgdn page • q quit")

	return lipgloss.JoinVertical(lipgloss.Left, r.viewport.View(), footer)
}
