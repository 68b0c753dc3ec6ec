package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/stretchr/testify/assert"
)

func TestKeyMap_HelpViews(t *testing.T) {
	km := DefaultKeyMap()

	var full int
	for _, group := range km.FullHelp() {
		full += len(group)
	}
	assert.Equal(t, len(km.ShortHelp()), full)

	h := help.New()
	assert.Contains(t, h.View(km), "Ctrl+S")

	h.ShowAll = true
	out := h.View(km)
	assert.Contains(t, out, "Ctrl+L")
	assert.Contains(t, out, "Esc/Ctrl+C")
}
