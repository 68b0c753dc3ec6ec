package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/Veraticus/verdict/internal/common"
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive classifier and blocks until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Classifier == nil {
		return fmt.Errorf("classifier is required: %w", common.ErrMissingConfig)
	}

	m := newModel(ctx, cfg)
	defer m.recorder.Close()

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	if _, err := tea.NewProgram(m, programOpts...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	if dir := m.recorder.Dir(); dir != "" {
		common.LogInfo("TUI session recorded", common.Fields{"dir": dir})
	}
	return nil
}
