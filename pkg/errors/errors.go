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

	// Configuration errors (fatal for the whole run)
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
	ErrNoRecords   ErrorCode = "NO_RECORDS"

	// Extension record errors (one entry or field is dropped)
	ErrRecordInvalid ErrorCode = "RECORD_INVALID"

	// Template errors
	ErrTemplateRead        ErrorCode = "TEMPLATE_READ"
	ErrTemplatePlaceholder ErrorCode = "TEMPLATE_PLACEHOLDER"
	ErrNoTemplates         ErrorCode = "NO_TEMPLATES"

	// Duplicate check
	ErrLabelConflict ErrorCode = "LABEL_CONFLICT"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// ExticonsError represents a structured error with code and details
type ExticonsError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ExticonsError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ExticonsError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ExticonsError) Is(target error) bool {
	var targetErr *ExticonsError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ExticonsError with the given code and message
func New(code ErrorCode, message string) *ExticonsError {
	return &ExticonsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ExticonsError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ExticonsError {
	return &ExticonsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an ExticonsError
func Wrap(err error, code ErrorCode, message string) *ExticonsError {
	if err == nil {
		return nil
	}
	return &ExticonsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ExticonsError {
	if err == nil {
		return nil
	}
	return &ExticonsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ExticonsError) WithDetail(key string, value interface{}) *ExticonsError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *ExticonsError) WithDetails(details map[string]interface{}) *ExticonsError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var exErr *ExticonsError
	if errors.As(err, &exErr) {
		return exErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an ExticonsError
func GetErrorCode(err error) ErrorCode {
	var exErr *ExticonsError
	if errors.As(err, &exErr) {
		return exErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an ExticonsError
func GetErrorDetails(err error) map[string]interface{} {
	var exErr *ExticonsError
	if errors.As(err, &exErr) {
		return exErr.Details
	}
	return nil
}
