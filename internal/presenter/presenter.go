// Package presenter applies interpreted results to a display surface.
package presenter

import (
	"fmt"

	"github.com/Veraticus/verdict/internal/model"
	"github.com/Veraticus/verdict/internal/tui/viewmodel"
)

// Target is the display surface a Presenter drives.
type Target interface {
	ShowResult()
	HideResult()
	SetBadge(badge Badge)
	SetEmoji(emoji string)
	SetLabel(label string)
	ShowExplanation(text string)
	HideExplanation()
	SetMeta(meta string)
	SetConfidence(text string, percent int)
	SetProbabilities(text string)
	ClearInput()
}

// State is the visible state of the result area.
type State int

// Result area states.
const (
	StateHidden State = iota
	StateShowingOK
	StateShowingReview
	StateShowingBlock
	StateShowingError
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateHidden:
		return "Hidden"
	case StateShowingOK:
		return "ShowingOK"
	case StateShowingReview:
		return "ShowingREVIEW"
	case StateShowingBlock:
		return "ShowingBLOCK"
	case StateShowingError:
		return "ShowingERROR"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// Presenter renders results onto a Target. It holds no result data, only
// which state the result area is in.
type Presenter struct {
	target Target
	state  State
}

// New creates a Presenter for target. The result area starts hidden.
func New(target Target) *Presenter {
	return &Presenter{
		target: target,
		state:  StateHidden,
	}
}

// State returns the current state of the result area.
func (p *Presenter) State() State {
	return p.state
}

// Render replaces whatever is displayed with result.
func (p *Presenter) Render(result viewmodel.Result) {
	t := p.target

	t.ShowResult()
	t.SetBadge(BadgeFor(result.Status))
	t.SetEmoji(result.Emoji)
	t.SetLabel(result.Label)

	if result.HasExplanation() {
		t.ShowExplanation(result.Explanation)
	} else {
		t.HideExplanation()
	}

	t.SetMeta(result.Meta)
	t.SetConfidence(result.ConfidenceText, result.ConfidencePercent)
	t.SetProbabilities(result.ProbabilityText())

	p.state = stateFor(result.Status)
}

// Fail renders the ERROR result for message.
func (p *Presenter) Fail(message string) {
	p.Render(viewmodel.InterpretFailure(message))
}

// Clear empties the input and hides the result area.
func (p *Presenter) Clear() {
	p.target.ClearInput()
	p.target.HideResult()
	p.state = StateHidden
}

func stateFor(status model.Status) State {
	switch BadgeFor(status) {
	case BadgeOK:
		return StateShowingOK
	case BadgeReview:
		return StateShowingReview
	case BadgeBlock:
		return StateShowingBlock
	default:
		return StateShowingError
	}
}
