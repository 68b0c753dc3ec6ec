package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/verdict/internal/presenter"
	"github.com/Veraticus/verdict/internal/tui/themes"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Card is a static result card for one-shot output. It has no input field,
// so ClearInput does nothing.
type Card struct {
	theme          themes.Theme
	bar            progress.Model
	emoji          string
	label          string
	explanation    string
	meta           string
	confidenceText string
	probabilities  string
	badge          presenter.Badge
	percent        int
	visible        bool
}

var _ presenter.Target = (*Card)(nil)

// NewCard creates a hidden card whose confidence bar is barWidth cells wide.
func NewCard(theme themes.Theme, barWidth int) *Card {
	from, to := theme.BarColors()
	return &Card{
		theme: theme,
		bar: progress.New(
			progress.WithGradient(from, to),
			progress.WithoutPercentage(),
			progress.WithWidth(barWidth),
		),
	}
}

// ShowResult makes the card visible.
func (c *Card) ShowResult() { c.visible = true }

// HideResult hides the card.
func (c *Card) HideResult() { c.visible = false }

// SetBadge sets the badge variant.
func (c *Card) SetBadge(b presenter.Badge) { c.badge = b }

// SetEmoji sets the glyph next to the badge.
func (c *Card) SetEmoji(emoji string) { c.emoji = emoji }

// SetLabel sets the badge text.
func (c *Card) SetLabel(label string) { c.label = label }

// ShowExplanation shows the gating explanation.
func (c *Card) ShowExplanation(text string) { c.explanation = text }

// HideExplanation removes the gating explanation.
func (c *Card) HideExplanation() { c.explanation = "" }

// SetMeta sets the meta line.
func (c *Card) SetMeta(meta string) { c.meta = meta }

// SetConfidence sets the confidence text and bar fill.
func (c *Card) SetConfidence(text string, percent int) {
	c.confidenceText = text
	c.percent = percent
}

// SetProbabilities sets the probability block.
func (c *Card) SetProbabilities(text string) { c.probabilities = text }

// ClearInput implements presenter.Target.
func (c *Card) ClearInput() {}

// Visible reports whether the card would print anything.
func (c *Card) Visible() bool { return c.visible }

// String renders the card, or "" while it is hidden.
func (c *Card) String() string {
	if !c.visible {
		return ""
	}

	lines := []string{
		c.theme.Badge(c.badge).Render(c.label) + " " + c.emoji,
	}
	if c.explanation != "" {
		lines = append(lines, c.theme.Italic.Render(c.explanation))
	}
	if c.meta != "" {
		lines = append(lines, c.theme.Meta.Render(c.meta))
	}
	if c.confidenceText != "" {
		lines = append(lines, fmt.Sprintf("Confidence: %s %s",
			c.confidenceText, c.bar.ViewAs(float64(c.percent)/100)))
	}
	if c.probabilities != "" {
		lines = append(lines, strings.Split(c.probabilities, "\n")...)
	}

	return BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// WriteTo writes the rendered card followed by a newline. Nothing is written
// while the card is hidden.
func (c *Card) WriteTo(w io.Writer) (int64, error) {
	out := c.String()
	if out == "" {
		return 0, nil
	}
	n, err := io.WriteString(w, out+"\n")
	return int64(n), err
}
