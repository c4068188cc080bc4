package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigNotFound       ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid        ErrorCode = "CONFIG_INVALID"
	ErrCodeDuplicateDestination ErrorCode = "DUPLICATE_DESTINATION"

	// Prerequisite errors
	ErrCodePrereqInstallFailed ErrorCode = "PREREQ_INSTALL_FAILED"
	ErrCodeCommandNotFound     ErrorCode = "COMMAND_NOT_FOUND"

	// Command execution errors
	ErrCodeCommandFailed  ErrorCode = "COMMAND_FAILED"
	ErrCodeCommandTimeout ErrorCode = "COMMAND_TIMEOUT"

	// Git errors
	ErrCodeGitCloneFailed ErrorCode = "GIT_CLONE_FAILED"

	// Install hook errors
	ErrCodeHookFailed ErrorCode = "HOOK_FAILED"

	// General errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	ErrCodeRunFailed    ErrorCode = "RUN_FAILED"
)

// BootstrapError represents a structured error with context
type BootstrapError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *BootstrapError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *BootstrapError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *BootstrapError) WithDetail(key string, value interface{}) *BootstrapError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *BootstrapError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new BootstrapError
func New(code ErrorCode, message string) *BootstrapError {
	return &BootstrapError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a BootstrapError
func Wrap(err error, code ErrorCode, message string) *BootstrapError {
	return &BootstrapError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is checks if an error is a specific BootstrapError code
func Is(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}

	bootErr, ok := err.(*BootstrapError)
	if !ok {
		// Try to unwrap
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return Is(unwrapper.Unwrap(), code)
		}
		return false
	}

	return bootErr.Code == code
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}

	bootErr, ok := err.(*BootstrapError)
	if !ok {
		// Try to unwrap
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return GetCode(unwrapper.Unwrap())
		}
		return ""
	}

	return bootErr.Code
}
