package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Failure taxonomy for one ingestion run. Every stage failure is wrapped
// in exactly one of these before it reaches the caller.
var (
	// ErrInvalidInput: missing owner or unresolvable image. Caller's
	// fault; not retryable without fixing the input.
	ErrInvalidInput = errors.New("invalid input")
	// ErrProvider: the inference call failed, timed out, or returned
	// unparseable text. Transient; the caller may retry the whole run.
	ErrProvider = errors.New("provider error")
	// ErrValidation: the response parsed but violated the extraction
	// schema. Signals provider drift, not user error.
	ErrValidation = errors.New("validation failed")
	// ErrPersistence: the batch commit failed. Transient; no partial
	// write occurred.
	ErrPersistence = errors.New("persistence error")

	ErrNotFound = errors.New("resource not found")
	ErrInternal = errors.New("internal error")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}
