package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Environment errors
	ErrWorkdirResolve ErrorCode = "WORKDIR_RESOLVE"
	ErrEnvApply       ErrorCode = "ENV_APPLY"
	ErrExecFailed     ErrorCode = "EXEC_FAILED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
)

// AmpenvError represents a structured error with code and details
type AmpenvError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *AmpenvError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *AmpenvError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *AmpenvError) Is(target error) bool {
	var targetErr *AmpenvError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new AmpenvError with the given code and message
func New(code ErrorCode, message string) *AmpenvError {
	return &AmpenvError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new AmpenvError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AmpenvError {
	return &AmpenvError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an AmpenvError
func Wrap(err error, code ErrorCode, message string) *AmpenvError {
	if err == nil {
		return nil
	}
	return &AmpenvError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *AmpenvError {
	if err == nil {
		return nil
	}
	return &AmpenvError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *AmpenvError) WithDetail(key string, value interface{}) *AmpenvError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var ampenvErr *AmpenvError
	if errors.As(err, &ampenvErr) {
		return ampenvErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an AmpenvError
func GetErrorCode(err error) ErrorCode {
	var ampenvErr *AmpenvError
	if errors.As(err, &ampenvErr) {
		return ampenvErr.Code
	}
	return ErrUnknown
}
