// File: doc.go
// Title: Log Package Documentation
// Description: Package documentation for the chronos structured logger.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial documentation

// Package log implements structured, leveled logging for chronos.
//
// The logger writes to stderr by default: in chronos, stdout is reserved
// for the single result line, and diagnostics must never mix with it.
//
// Entries carry a level, message, optional fields, and an optional
// correlation ID that ties all log lines of one invocation together:
//
//	logger := log.New().WithName("resolver").WithCorrelationID(id)
//	logger.Debug("relative expression matched", log.Field("qualifier", "ago"))
//
// Text and JSON output formats are available; text is the default for
// interactive use.
package log
