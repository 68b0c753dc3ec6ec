package tui

import (
	"github.com/Veraticus/verdict/internal/classifier"
	"github.com/Veraticus/verdict/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme      themes.Theme
	Classifier classifier.Classifier
	Width      int
	Height     int
	CharLimit  int
	Record     bool
	AltScreen  bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:     themes.Default,
		Width:     80,
		Height:    24,
		CharLimit: 4000,
		AltScreen: true,
	}
}

// WithClassifier sets the classifier the TUI submits text to.
func WithClassifier(c classifier.Classifier) Option {
	return func(cfg *Config) {
		cfg.Classifier = c
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(cfg *Config) {
		cfg.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(cfg *Config) {
		cfg.Width = width
		cfg.Height = height
	}
}

// WithCharLimit caps the length of the text input. Zero means unlimited.
func WithCharLimit(limit int) Option {
	return func(cfg *Config) {
		cfg.CharLimit = limit
	}
}

// WithRecording enables frame recording for debugging.
func WithRecording(enabled bool) Option {
	return func(cfg *Config) {
		cfg.Record = enabled
	}
}

// WithAltScreen controls whether the program takes over the whole terminal.
func WithAltScreen(enabled bool) Option {
	return func(cfg *Config) {
		cfg.AltScreen = enabled
	}
}
