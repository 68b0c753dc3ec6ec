// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Messages shown to the user when a result cannot be displayed.
const (
	MessageEmptyInput   = "Bitte Text eingeben."
	MessageUnknownError = "Unbekannter Fehler."
)

// Common application errors.
var (
	// ErrEmptyInput is returned when the submitted text is empty after trimming.
	ErrEmptyInput = errors.New("empty input")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// TransportError indicates the exchange with the classifier service could
// not be completed or its response could not be understood.
type TransportError struct {
	Err error
	Op  string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServiceError is a structured failure reported by the classifier service.
type ServiceError struct {
	Message    string
	StatusCode int
}

func (e *ServiceError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("classifier service error (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("classifier service error (status %d): %s", e.StatusCode, e.Message)
}

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// UserMessage returns the text to display for err. Local validation failures
// and service errors carry their own message; everything else is reported
// with the generic fallback.
func UserMessage(err error) string {
	if err == nil {
		return MessageUnknownError
	}

	if errors.Is(err, ErrEmptyInput) {
		return MessageEmptyInput
	}

	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) && serviceErr.Message != "" {
		return serviceErr.Message
	}

	var userErr *UserError
	if errors.As(err, &userErr) && userErr.UserMessage != "" {
		return userErr.UserMessage
	}

	return MessageUnknownError
}
