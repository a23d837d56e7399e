package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the resource changed in a way that conflicts with the request.
var ErrConflict = errors.New("resource conflict")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInternal indicates an unexpected failure.
var ErrInternal = errors.New("internal error")

// Lifecycle errors. The HTTP layer renders each one with its own message, so
// they must stay distinguishable with errors.Is.
var (
	// ErrInvalidTransition is returned when the requested status is not a
	// forward edge from the current status.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrMissingCompletionProof is returned when a transfer is marked completed
	// without a payout proof on the record or in the request.
	ErrMissingCompletionProof = errors.New("completion proof required")

	// ErrNotAuthorized is returned when the actor lacks the capability for the operation.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrConcurrentModification is returned when the record's status changed
	// between read and write.
	ErrConcurrentModification = fmt.Errorf("%w: transaction was modified concurrently", ErrConflict)

	// ErrRateChanged is returned when the customer's quoted rate no longer
	// matches the rate computed from the current configuration.
	ErrRateChanged = fmt.Errorf("%w: exchange rate has changed", ErrConflict)
)

// AppError carries an HTTP-ish status code and a message alongside the wrapped cause.
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

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError wrapping ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

// NewValidationError creates an AppError wrapping ErrValidation.
func NewValidationError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrValidation)
}

// NewConflictError creates an AppError wrapping ErrConflict.
func NewConflictError(message string) *AppError {
	return NewAppError(http.StatusConflict, message, ErrConflict)
}
