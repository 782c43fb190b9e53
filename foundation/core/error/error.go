// File: error.go
// Title: Core Error Implementation
// Description: Implements the main Error type with classification codes,
//              severity, cause chains, and detail fields. Provides a rich
//              error handling system that maintains compatibility with Go's
//              standard error interface.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial implementation with contextual errors

package error

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"
)

// Error represents a structured error with code, severity, and metadata
type Error struct {
	message   string
	cause     error
	code      Code
	severity  Severity
	timestamp time.Time
	operation string
	details   map[string]interface{}
}

// MaxErrorChainDepth limits the depth of error wrapping
const MaxErrorChainDepth = 15

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message:   message,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap creates a new Error wrapping an existing error. If the cause is
// itself an *Error, its code and severity are inherited.
func Wrap(err error, message string) *Error {
	if err == nil {
		return New(message)
	}

	wrapped := New(message)
	if getErrorChainDepth(err) < MaxErrorChainDepth {
		wrapped.cause = err
	}

	var structured *Error
	if stderrors.As(err, &structured) {
		wrapped.code = structured.code
		wrapped.severity = structured.severity
	}

	return wrapped
}

// getErrorChainDepth counts the length of the cause chain
func getErrorChainDepth(err error) int {
	depth := 0
	for err != nil && depth < MaxErrorChainDepth {
		depth++
		err = stderrors.Unwrap(err)
	}
	return depth
}

// Error implements the standard error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the wrapped cause for errors.Is/errors.As support
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the error code and adjusts the default severity
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	e.severity = GetSeverityFromCode(code)
	return e
}

// WithSeverity sets the severity explicitly
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithOperation records the logical operation that produced the error
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// WithDetail adds a single detail field
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// WithDetails adds multiple detail fields
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	for k, v := range details {
		e.details[k] = v
	}
	return e
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the error severity
func (e *Error) Severity() Severity {
	return e.severity
}

// Timestamp returns the creation time of the error
func (e *Error) Timestamp() time.Time {
	return e.timestamp
}

// Operation returns the logical operation that produced the error
func (e *Error) Operation() string {
	return e.operation
}

// Details returns a copy of the detail fields
func (e *Error) Details() map[string]interface{} {
	copied := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		copied[k] = v
	}
	return copied
}

// RootCause returns the innermost error in the cause chain
func (e *Error) RootCause() error {
	var current error = e
	for i := 0; i < MaxErrorChainDepth; i++ {
		next := stderrors.Unwrap(current)
		if next == nil {
			return current
		}
		current = next
	}
	return current
}

// String returns a detailed representation for diagnostics
func (e *Error) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s/%s] %s", e.code, e.severity, e.message)
	if e.operation != "" {
		fmt.Fprintf(&b, " (operation: %s)", e.operation)
	}
	for k, v := range e.details {
		fmt.Fprintf(&b, " %s=%v", k, v)
	}
	if e.cause != nil {
		fmt.Fprintf(&b, " caused by: %v", e.cause)
	}
	return b.String()
}

// HasCode checks whether err or any error in its chain carries the code
func HasCode(err error, code Code) bool {
	return GetCode(err) == code
}

// GetCode extracts the code from an error chain, CodeUnknown if none
func GetCode(err error) Code {
	var structured *Error
	if stderrors.As(err, &structured) {
		return structured.code
	}
	return CodeUnknown
}

// GetSeverity extracts the severity from an error chain
func GetSeverity(err error) Severity {
	var structured *Error
	if stderrors.As(err, &structured) {
		return structured.severity
	}
	return SeverityMedium
}
