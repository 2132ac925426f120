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
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Pattern catalog errors
	ErrInvalidRegex     ErrorCode = "INVALID_REGEX"
	ErrDuplicatePattern ErrorCode = "DUPLICATE_PATTERN"
	ErrPatternNotFound  ErrorCode = "PATTERN_NOT_FOUND"
	ErrPatternProtected ErrorCode = "PATTERN_PROTECTED"

	// Scan errors
	ErrPathNotFound  ErrorCode = "PATH_NOT_FOUND"
	ErrNotADirectory ErrorCode = "NOT_A_DIRECTORY"
	ErrScanFailed    ErrorCode = "SCAN_FAILED"

	// Execution errors
	ErrMoveFailed   ErrorCode = "MOVE_FAILED"
	ErrDeleteFailed ErrorCode = "DELETE_FAILED"
	ErrRenameFailed ErrorCode = "RENAME_FAILED"

	// Config store errors
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"
	ErrConfigSave ErrorCode = "CONFIG_SAVE"

	// Input errors
	ErrClipboardRead ErrorCode = "CLIPBOARD_READ"
)

// MergefError represents a structured error with code and details
type MergefError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *MergefError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *MergefError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *MergefError) Is(target error) bool {
	var targetErr *MergefError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new MergefError with the given code and message
func New(code ErrorCode, message string) *MergefError {
	return &MergefError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new MergefError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *MergefError {
	return &MergefError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a MergefError
func Wrap(err error, code ErrorCode, message string) *MergefError {
	if err == nil {
		return nil
	}
	return &MergefError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *MergefError {
	if err == nil {
		return nil
	}
	return &MergefError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *MergefError) WithDetail(key string, value interface{}) *MergefError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var mergefErr *MergefError
	if errors.As(err, &mergefErr) {
		return mergefErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a MergefError
func GetErrorCode(err error) ErrorCode {
	var mergefErr *MergefError
	if errors.As(err, &mergefErr) {
		return mergefErr.Code
	}
	return ErrUnknown
}
