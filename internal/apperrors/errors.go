package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the acting user lacks the capability required
// for the operation (e.g. the approver capability on a document type).
var ErrForbidden = errors.New("operation not permitted for user")

// ErrInvalidTransition indicates that a workflow operation was attempted from
// a document status that does not permit it.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrPosting indicates that the ledger rejected a journal posting
// (unbalanced lines, unknown or inactive account, closed period).
var ErrPosting = errors.New("ledger posting failed")

// ErrSequenceUnavailable indicates that the reference sequence could not be
// advanced. Callers recover from this locally with a timestamp-derived
// reference; it is never surfaced as an operation failure.
var ErrSequenceUnavailable = errors.New("reference sequence unavailable")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// AppError wraps an underlying error with a status code and a message safe to
// show to API clients.
type AppError struct {
	Code    int
	Message string
	Err     error
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

// NewAppError creates an AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
