// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across chronos. Codes enable structured error
//              handling and stable exit-path decisions in the CLI layer.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for chronos
const (
	// Generic codes
	CodeUnknown          Code = "UNKNOWN"
	CodeInternal         Code = "INTERNAL"
	CodeValidationFailed Code = "VALIDATION_FAILED"

	// Input and resolution
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeTruncation   Code = "TRUNCATION"

	// Configuration
	CodeConfigInvalid  Code = "CONFIG_INVALID"
	CodeConfigNotFound Code = "CONFIG_NOT_FOUND"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// IsValid checks whether the code is one of the defined chronos codes
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeValidationFailed,
		CodeInvalidInput, CodeTruncation,
		CodeConfigInvalid, CodeConfigNotFound:
		return true
	default:
		return false
	}
}
