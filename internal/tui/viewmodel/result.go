// Package viewmodel defines the data structures for TUI rendering and the
// pure interpretation of classifier responses into them.
package viewmodel

import (
	"strings"

	"github.com/Veraticus/verdict/internal/model"
)

// ErrorEmoji is displayed for every failed result.
const ErrorEmoji = "⚠️"

// Result is everything needed to draw one classification outcome. It is
// derived fresh for every response or failure and never persisted.
type Result struct {
	Status            model.Status
	Emoji             string
	Label             string
	Explanation       string // empty unless the verdict was gated to REVIEW
	Meta              string
	ConfidenceText    string
	ProbabilityLines  []string
	ConfidencePercent int
}

// HasExplanation returns true if the gating explanation should be shown.
func (r Result) HasExplanation() bool {
	return r.Explanation != ""
}

// IsError returns true if the result represents a failure.
func (r Result) IsError() bool {
	return r.Status == model.StatusError
}

// ProbabilityText returns the probability lines, one per line.
func (r Result) ProbabilityText() string {
	return strings.Join(r.ProbabilityLines, "\n")
}
