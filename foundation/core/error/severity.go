// File: severity.go
// Title: Error Severity Definitions
// Description: Defines severity levels for error classification. Severity
//              expresses how urgently an error needs attention, independent
//              of its error code.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the urgency of an error
type Severity int

const (
	// SeverityLow indicates a minor issue, usually recoverable by the user
	SeverityLow Severity = iota

	// SeverityMedium indicates a standard error condition
	SeverityMedium

	// SeverityHigh indicates a serious error that aborts the operation
	SeverityHigh

	// SeverityCritical indicates an invariant violation; the program state
	// cannot be trusted beyond reporting the error
	SeverityCritical
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode returns the default severity for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInvalidInput, CodeValidationFailed, CodeConfigInvalid, CodeConfigNotFound:
		return SeverityLow
	case CodeTruncation, CodeInternal:
		return SeverityCritical
	default:
		return SeverityMedium
	}
}
