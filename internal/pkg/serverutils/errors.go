package serverutils

import (
	"errors"
	"net/http"
)

// AppError is an expected failure with the HTTP status it maps to.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) StatusCode() int {
	return e.Code
}

func NewAppError(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message)
}

func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, message)
}

func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, message)
}

// Internal hides the cause from the client but keeps it for logging.
func Internal(err error) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: MsgInternalError, Err: err}
}

const (
	MsgInternalError = "Internal server error"
	MsgForbidden     = "You do not have permission to perform this action"
)

// StatusCoder is implemented by domain errors that know their HTTP status.
type StatusCoder interface {
	StatusCode() int
}

// StatusOf resolves the HTTP status for an error, 500 when unknown.
func StatusOf(err error) int {
	var coder StatusCoder
	if errors.As(err, &coder) {
		return coder.StatusCode()
	}
	return http.StatusInternalServerError
}
