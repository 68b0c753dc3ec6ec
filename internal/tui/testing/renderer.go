// Package testing provides test utilities for TUI components.
package testing

import (
	tea "github.com/charmbracelet/bubbletea"
)

// TestRenderer drives a Bubble Tea model without a terminal and records
// what it saw.
type TestRenderer struct {
	// Output contains the last rendered view
	Output string

	// Messages contains all messages sent to the component
	Messages []tea.Msg

	// UpdateCount tracks how many times Update was called
	UpdateCount int
}

// NewTestRenderer creates a new test renderer.
func NewTestRenderer() *TestRenderer {
	return &TestRenderer{}
}

// Update sends a message to the component and captures the result.
func (r *TestRenderer) Update(model tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	r.Messages = append(r.Messages, msg)
	r.UpdateCount++

	newModel, cmd := model.Update(msg)
	r.Output = newModel.View()

	return newModel, cmd
}

// StripANSI returns the last output without escape codes.
func (r *TestRenderer) StripANSI() string {
	return StripANSI(r.Output)
}

// Exec runs cmd synchronously and returns the messages it produced,
// flattening batches. Nested commands are run once; commands returned by
// Update are not.
func Exec(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	}

	var msgs []tea.Msg
	for _, c := range batch {
		msgs = append(msgs, Exec(c)...)
	}
	return msgs
}
