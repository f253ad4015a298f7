package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javajack/xlquick"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)

	successBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("42")).
			Padding(0, 1)

	failureBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("196")).
			Padding(0, 1)

	dimText = lipgloss.NewStyle().Faint(true)
)

// renderResult formats an action result as a titled status box.
func renderResult(res xlquick.Result) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(res.Title))
	b.WriteString("\n")
	b.WriteString(res.Message)
	if res.UndoAvailable {
		b.WriteString("\n")
		b.WriteString(dimText.Render("undo available"))
	}
	if res.Success {
		return successBox.Render(b.String())
	}
	return failureBox.Render(b.String())
}
