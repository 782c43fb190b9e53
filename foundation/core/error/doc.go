// File: doc.go
// Title: Error Package Documentation
// Description: Package documentation for the chronos structured error system.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial documentation

// Package error implements structured error handling for the chronos
// foundation library.
//
// Errors carry a classification Code, a Severity, an optional cause, and
// free-form detail fields. The type remains fully compatible with Go's
// standard error interface, including errors.Is/errors.As unwrapping.
//
// Typical usage:
//
//	err := cerror.New("unable to parse time expression").
//		WithCode(cerror.CodeInvalidInput).
//		WithOperation("resolve").
//		WithDetail("input", raw)
//
// Downstream code inspects classification without string matching:
//
//	if cerror.HasCode(err, cerror.CodeInvalidInput) {
//		// user supplied bad input, exit with usage message
//	}
package error
