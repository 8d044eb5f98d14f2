// Package errors provides a typed error hierarchy for echo operations.
// Errors carry a category so the command layer can pick the exit code
// and decide whether to print the usage synopsis.
package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error for classification and handling.
type ErrorType string

// Error type constants define the categories of errors an invocation can fail with.
const (
	ErrTypeUsage     ErrorType = "usage"
	ErrTypeConfig    ErrorType = "config"
	ErrTypeTransform ErrorType = "transform"
	ErrTypeOutput    ErrorType = "output"
)

// EchoError is the base error type that provides structured error information.
// Specific error kinds embed it, so errors.Is matches on Type alone.
type EchoError struct {
	Type    ErrorType
	Subject string
	Message string
	Cause   error
}

func (e *EchoError) Error() string {
	if e.Subject != "" {
		return fmt.Sprintf("%s error for %s: %s", e.Type, e.Subject, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

func (e *EchoError) Unwrap() error {
	return e.Cause
}

func (e *EchoError) base() *EchoError {
	return e
}

// Is implements error identity checking by category.
func (e *EchoError) Is(target error) bool {
	t, ok := target.(*EchoError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// UsageError reports a malformed or incomplete invocation such as missing
// text or an unknown flag. The command answers it with the usage synopsis
// on stdout and exit code 2.
type UsageError struct {
	*EchoError
}

// NewUsageError creates a usage error. The message is shown to the user
// verbatim after the usage synopsis.
func NewUsageError(message string, cause error) *UsageError {
	return &UsageError{
		EchoError: &EchoError{
			Type:    ErrTypeUsage,
			Message: message,
			Cause:   cause,
		},
	}
}

// ConfigError represents option values that parse as flags but cannot be
// used, such as an ill-formed --lang tag. It is reported like a usage error.
type ConfigError struct {
	*EchoError
}

// NewConfigError creates a configuration error without subject context.
// Use NewConfigErrorWithSubject when a single option is at fault.
func NewConfigError(message string, cause error) *ConfigError {
	return &ConfigError{
		EchoError: &EchoError{
			Type:    ErrTypeConfig,
			Message: message,
			Cause:   cause,
		},
	}
}

// NewConfigErrorWithSubject creates a configuration error naming the
// offending option or value.
func NewConfigErrorWithSubject(subject, message string, cause error) *ConfigError {
	return &ConfigError{
		EchoError: &EchoError{
			Type:    ErrTypeConfig,
			Subject: subject,
			Message: message,
			Cause:   cause,
		},
	}
}

// TransformError represents a failure to resolve or run a named
// transformation. Subject carries the transformation name.
type TransformError struct {
	*EchoError
}

// NewTransformError creates a transformation error for the named step.
func NewTransformError(name, message string, cause error) *TransformError {
	return &TransformError{
		EchoError: &EchoError{
			Type:    ErrTypeTransform,
			Subject: name,
			Message: message,
			Cause:   cause,
		},
	}
}

// OutputError represents a failure writing the result line, e.g. a closed
// pipe. It is reported on stderr with exit code 1.
type OutputError struct {
	*EchoError
}

// NewOutputError creates an output error.
func NewOutputError(message string, cause error) *OutputError {
	return &OutputError{
		EchoError: &EchoError{
			Type:    ErrTypeOutput,
			Message: message,
			Cause:   cause,
		},
	}
}

// IsUsage reports whether err should be answered with the usage synopsis.
// Configuration errors count: both come from what the user typed.
func IsUsage(err error) bool {
	return errors.Is(err, &EchoError{Type: ErrTypeUsage}) ||
		errors.Is(err, &EchoError{Type: ErrTypeConfig})
}

// Message returns the user-facing message of a typed error, or err.Error()
// for anything else.
func Message(err error) string {
	var typed interface{ base() *EchoError }
	if errors.As(err, &typed) {
		return typed.base().Message
	}
	return err.Error()
}
