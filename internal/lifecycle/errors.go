package lifecycle

import (
	"errors"
	"net/http"
)

// ErrInvalidTransition is the sentinel every rejected transition unwraps to.
var ErrInvalidTransition = errors.New("invalid status transition")

// TransitionError carries the user-facing message for a rejected transition.
type TransitionError struct {
	Message string
}

func (e *TransitionError) Error() string {
	return e.Message
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// StatusCode lets the HTTP error middleware map the error without importing this package.
func (e *TransitionError) StatusCode() int {
	return http.StatusBadRequest
}

func reject(message string) error {
	return &TransitionError{Message: message}
}
