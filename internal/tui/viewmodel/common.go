package viewmodel

import "fmt"

// AppState represents the overall application state.
type AppState int

const (
	// StateIdle indicates the application is waiting for user input.
	StateIdle AppState = iota
	// StateSubmitting indicates a request to the classifier is outstanding.
	StateSubmitting
)

// String returns a string representation of the app state.
func (s AppState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateSubmitting:
		return "Submitting"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// AcceptsSubmit returns true if a new submission may be dispatched.
func (s AppState) AcceptsSubmit() bool {
	return s == StateIdle
}
