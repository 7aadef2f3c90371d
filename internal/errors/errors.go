package errors

import (
	"errors"
	"fmt"
)

// Exit codes for sshconf
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitParseError   = 2
	ExitHostNotFound = 3
	ExitConfigError  = 4
	ExitIOError      = 5
)

// ExitError is the base error type for sshconf
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

func (e *ExitError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *ExitError) ExitCode() int {
	return e.Code
}

// New creates a new ExitError
func New(code int, message string) *ExitError {
	return &ExitError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with an ExitError
func Wrap(code int, message string, cause error) *ExitError {
	return &ExitError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// ParseFailed returns an error for a config file that could not be parsed
func ParseFailed(path string, cause error) *ExitError {
	return Wrap(ExitParseError, fmt.Sprintf("failed to parse %s", path), cause)
}

// HostNotFound returns an error for a missing Host block
func HostNotFound(name string) *ExitError {
	return New(ExitHostNotFound, fmt.Sprintf("host not found: %s", name))
}

// ConfigError returns an error for invalid options or settings
func ConfigError(message string, cause error) *ExitError {
	return Wrap(ExitConfigError, message, cause)
}

// IOError returns an error for a failed file operation
func IOError(op, path string, cause error) *ExitError {
	return Wrap(ExitIOError, fmt.Sprintf("failed to %s %s", op, path), cause)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return ExitGeneralError
}
