package tui

import "github.com/Veraticus/verdict/internal/model"

// classifiedMsg carries the outcome of one exchange with the classifier.
type classifiedMsg struct {
	err       error
	requestID string
	response  model.ClassificationResponse
}
