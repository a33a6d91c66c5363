package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code
type ErrorCode int

// Common error codes
const (
	ErrNotFound ErrorCode = iota + 1000
	ErrBadRequest
	ErrConflict
	ErrMethodNotAllowed
	ErrInternal
)

// AppError represents an application error
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Error constructors
func NotFound(message string) *AppError {
	return &AppError{Code: ErrNotFound, Message: message}
}

func BadRequest(message string) *AppError {
	return &AppError{Code: ErrBadRequest, Message: message}
}

func Conflict(message string) *AppError {
	return &AppError{Code: ErrConflict, Message: message}
}

func MethodNotAllowed(message string) *AppError {
	return &AppError{Code: ErrMethodNotAllowed, Message: message}
}

// Internal wraps an unexpected store or infrastructure failure. The
// wrapped error surfaces as sanitized details, the caller sees a 500.
func Internal(err error) *AppError {
	e := &AppError{Code: ErrInternal, Message: "Error interno del servidor", Err: err}
	if err != nil {
		e.Details = err.Error()
	}
	return e
}

// AsAppError extracts an *AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsNotFound reports whether err is a not-found application error.
func IsNotFound(err error) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == ErrNotFound
}

// IsConflict reports whether err is a conflict application error.
func IsConflict(err error) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == ErrConflict
}
