package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/Veraticus/verdict/internal/classifier"
	"github.com/Veraticus/verdict/internal/common"
	"github.com/Veraticus/verdict/internal/presenter"
	"github.com/Veraticus/verdict/internal/tui/themes"
	"github.com/Veraticus/verdict/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// Model holds the main TUI state. Only one request may be outstanding: while
// it is, Submit is ignored. Clear does not cancel it.
type Model struct {
	ctx        context.Context
	classifier classifier.Classifier
	pane       *resultPane
	presenter  *presenter.Presenter
	recorder   *Recorder
	theme      themes.Theme
	keymap     KeyMap
	help       help.Model
	spinner    spinner.Model
	bar        progress.Model
	pendingID  string
	state      viewmodel.AppState
	width      int
	height     int
	quitting   bool
}

// newModel creates a new model with the given configuration.
func newModel(ctx context.Context, cfg Config) Model {
	pane := newResultPane(cfg.CharLimit)
	pane.input.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(cfg.Theme.Primary)

	from, to := cfg.Theme.BarColors()
	bar := progress.New(progress.WithGradient(from, to), progress.WithoutPercentage())

	m := Model{
		ctx:        ctx,
		classifier: cfg.Classifier,
		pane:       pane,
		presenter:  presenter.New(pane),
		recorder:   NewRecorder(cfg.Record),
		theme:      cfg.Theme,
		keymap:     DefaultKeyMap(),
		help:       help.New(),
		spinner:    s,
		bar:        bar,
		state:      viewmodel.StateIdle,
	}
	m.resize(cfg.Width, cfg.Height)

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, tea.SetWindowTitle("verdict"))
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case classifiedMsg:
		m.handleClassified(msg)

	case spinner.TickMsg:
		if m.state == viewmodel.StateSubmitting {
			m.spinner, cmd = m.spinner.Update(msg)
		}

	default:
		m.pane.input, cmd = m.pane.input.Update(msg)
	}

	m.recorder.RecordState(m, msg)
	return m, cmd
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.render()
}

// State returns the visible state of the result area.
func (m Model) State() presenter.State {
	return m.presenter.State()
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		m.recorder.Close()
		return tea.Quit

	case key.Matches(msg, m.keymap.Submit):
		return m.submit()

	case key.Matches(msg, m.keymap.Clear):
		m.presenter.Clear()
		return nil
	}

	var cmd tea.Cmd
	m.pane.input, cmd = m.pane.input.Update(msg)
	return cmd
}

// submit validates the input locally and dispatches it to the classifier.
func (m *Model) submit() tea.Cmd {
	if !m.state.AcceptsSubmit() {
		common.LogDebug("Ignoring submit while a request is outstanding", common.Fields{
			"request_id": m.pendingID,
		})
		return nil
	}

	text := strings.TrimSpace(m.pane.input.Value())
	if text == "" {
		m.presenter.Render(viewmodel.InterpretError(common.ErrEmptyInput))
		return nil
	}

	m.pendingID = uuid.NewString()
	m.state = viewmodel.StateSubmitting
	common.LogDebug("Submitting text", common.Fields{
		"request_id": m.pendingID,
		"preview":    viewmodel.TruncateString(text, 40),
	})

	return tea.Batch(m.classify(m.pendingID, text), m.spinner.Tick)
}

func (m *Model) handleClassified(msg classifiedMsg) {
	if msg.requestID != m.pendingID {
		common.LogDebug("Dropping response for superseded request", common.Fields{
			"request_id": msg.requestID,
		})
		return
	}

	m.pendingID = ""
	m.state = viewmodel.StateIdle

	if msg.err != nil {
		if !errors.Is(msg.err, common.ErrEmptyInput) {
			common.LogError(msg.err, "Classification failed", common.Fields{
				"request_id": msg.requestID,
			})
		}
		m.presenter.Render(viewmodel.InterpretError(msg.err))
		return
	}

	common.LogInfo("Classification received", common.Fields{
		"request_id":  msg.requestID,
		"final_label": string(msg.response.FinalLabel),
		"gated":       msg.response.GatedToReview,
	})
	m.presenter.Render(viewmodel.InterpretSuccess(msg.response))
}

// resize adjusts component sizes when the terminal resizes.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	inner := max(width-6, 20)
	m.pane.input.SetWidth(inner)
	m.bar.Width = min(max(inner-12, 10), 60)
	m.help.Width = width
}
