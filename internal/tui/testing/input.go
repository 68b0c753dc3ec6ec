package testing

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyPress creates a key press message for testing.
func KeyPress(key string) tea.KeyMsg {
	return tea.KeyMsg{
		Type:  tea.KeyRunes,
		Runes: []rune(key),
	}
}

// KeyEsc creates an escape key message.
func KeyEsc() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEsc}
}

// KeyCtrl creates a ctrl key combination message for a letter a-z.
func KeyCtrl(letter rune) tea.KeyMsg {
	if letter < 'a' || letter > 'z' {
		panic("KeyCtrl requires a lowercase letter")
	}
	return tea.KeyMsg{Type: tea.KeyCtrlA + tea.KeyType(letter-'a')}
}

// WindowSize creates a window size message for testing responsive layouts.
func WindowSize(width, height int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{
		Width:  width,
		Height: height,
	}
}

// InputSequence represents a sequence of inputs for testing.
type InputSequence struct {
	inputs []tea.Msg
}

// NewInputSequence creates a new input sequence.
func NewInputSequence(inputs ...tea.Msg) *InputSequence {
	return &InputSequence{inputs: inputs}
}

// Add adds an input to the sequence.
func (s *InputSequence) Add(input tea.Msg) *InputSequence {
	s.inputs = append(s.inputs, input)
	return s
}

// Type adds a string of characters to the sequence, one key press per rune.
func (s *InputSequence) Type(text string) *InputSequence {
	for _, r := range text {
		s.inputs = append(s.inputs, tea.KeyMsg{
			Type:  tea.KeyRunes,
			Runes: []rune{r},
		})
	}
	return s
}

// Apply applies all inputs in the sequence to a model using a renderer.
func (s *InputSequence) Apply(model tea.Model, renderer *TestRenderer) tea.Model {
	result := model
	for _, input := range s.inputs {
		result, _ = renderer.Update(result, input)
	}
	return result
}
