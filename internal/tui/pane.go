package tui

import (
	"github.com/Veraticus/verdict/internal/presenter"
	"github.com/charmbracelet/bubbles/textarea"
)

// resultPane is the presenter's view of the screen: the text input plus
// every field of the result card.
type resultPane struct {
	input              textarea.Model
	emoji              string
	label              string
	explanation        string
	meta               string
	confidenceText     string
	probabilities      string
	badge              presenter.Badge
	percent            int
	visible            bool
	explanationVisible bool
}

var _ presenter.Target = (*resultPane)(nil)

func newResultPane(charLimit int) *resultPane {
	input := textarea.New()
	input.Placeholder = "Text eingeben..."
	input.ShowLineNumbers = false
	input.CharLimit = charLimit
	input.SetHeight(4)

	return &resultPane{input: input}
}

func (p *resultPane) ShowResult() { p.visible = true }
func (p *resultPane) HideResult() { p.visible = false }

func (p *resultPane) SetBadge(b presenter.Badge) { p.badge = b }
func (p *resultPane) SetEmoji(emoji string)      { p.emoji = emoji }
func (p *resultPane) SetLabel(label string)      { p.label = label }

func (p *resultPane) ShowExplanation(text string) {
	p.explanation = text
	p.explanationVisible = true
}

func (p *resultPane) HideExplanation() {
	p.explanation = ""
	p.explanationVisible = false
}

func (p *resultPane) SetMeta(meta string) { p.meta = meta }

func (p *resultPane) SetConfidence(text string, percent int) {
	p.confidenceText = text
	p.percent = percent
}

func (p *resultPane) SetProbabilities(text string) { p.probabilities = text }

func (p *resultPane) ClearInput() { p.input.Reset() }
