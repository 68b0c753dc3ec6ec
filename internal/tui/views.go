package tui

import (
	"strings"

	"github.com/Veraticus/verdict/internal/tui/viewmodel"
	"github.com/charmbracelet/lipgloss"
)

// render draws the whole screen.
func (m Model) render() string {
	sections := []string{
		m.theme.Title.Render("verdict"),
		m.theme.Subtitle.Render("Text eingeben und mit Ctrl+S klassifizieren."),
		"",
		m.pane.input.View(),
		"",
	}

	if card := m.renderCard(); card != "" {
		sections = append(sections, card, "")
	}

	sections = append(sections, m.renderStatusBar())

	return lipgloss.NewStyle().Padding(1, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...),
	)
}

// renderCard draws the result area, or nothing while it is hidden.
func (m Model) renderCard() string {
	p := m.pane
	if !p.visible {
		return ""
	}

	header := lipgloss.JoinHorizontal(
		lipgloss.Center,
		m.theme.Badge(p.badge).Render(p.label),
		" ",
		p.emoji,
	)

	lines := []string{header}

	if p.explanationVisible {
		lines = append(lines, "", m.theme.Italic.Render(p.explanation))
	}

	if p.meta != "" {
		lines = append(lines, "", m.theme.Meta.Render(p.meta))
	}

	if p.confidenceText != "" {
		lines = append(lines,
			"",
			m.theme.Normal.Render("Confidence: "+p.confidenceText),
			m.bar.ViewAs(float64(p.percent)/100),
		)
	}

	if p.probabilities != "" {
		probs := strings.Split(p.probabilities, "\n")
		for i, line := range probs {
			probs[i] = m.theme.Code.Render(line)
		}
		lines = append(lines, "", lipgloss.JoinVertical(lipgloss.Left, probs...))
	}

	width := max(m.width-6, 20)
	return m.theme.RoundedBox.
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderStatusBar draws the pending indicator and key help.
func (m Model) renderStatusBar() string {
	var status string
	if m.state == viewmodel.StateSubmitting {
		status = m.spinner.View() + " " + m.theme.StatusPending.Render("Klassifiziere...")
	}

	helpView := m.help.View(m.keymap)
	if status == "" {
		return helpView
	}
	return lipgloss.JoinVertical(lipgloss.Left, status, helpView)
}
