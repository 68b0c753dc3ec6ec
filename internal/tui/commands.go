package tui

import (
	"github.com/Veraticus/verdict/internal/classifier"
	"github.com/Veraticus/verdict/internal/common"
	tea "github.com/charmbracelet/bubbletea"
)

// classify performs the exchange off the event loop and reports back with a
// classifiedMsg.
func (m Model) classify(requestID, text string) tea.Cmd {
	ctx := classifier.WithRequestID(m.ctx, requestID)
	c := m.classifier

	return func() tea.Msg {
		if c == nil {
			return classifiedMsg{
				requestID: requestID,
				err:       common.NewUserError(common.MessageUnknownError, common.ErrMissingConfig),
			}
		}

		resp, err := c.Classify(ctx, text)
		return classifiedMsg{
			requestID: requestID,
			response:  resp,
			err:       err,
		}
	}
}
