// File: doc.go
// Title: Timex Package Documentation
// Description: Package documentation for extended time utilities.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial documentation

// Package timex implements extended time utilities for chronos.
//
// The package covers the time handling the standard library leaves out:
//
//   - ParseDuration accepts Go duration syntax ("2h30m") as well as
//     spelled-out business units ("2 hours", "1 day", "3 weeks"),
//     with overflow detection.
//   - TruncateToNearest rounds an instant down to a duration boundary
//     measured from the Unix epoch.
//
// Format constants for the layouts used across chronos are provided so
// callers do not repeat layout strings.
package timex
