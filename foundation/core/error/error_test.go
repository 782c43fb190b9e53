// File: error_test.go
// Title: Core Error Tests
// Description: Test suite for the structured Error type covering creation,
//              wrapping, code classification, and chain inspection.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial test implementation

package error

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("something failed")

	if err.Error() != "something failed" {
		t.Errorf("Error() = %q, want %q", err.Error(), "something failed")
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
}

func TestWithCode(t *testing.T) {
	testCases := []struct {
		name         string
		code         Code
		wantSeverity Severity
	}{
		{"invalid input", CodeInvalidInput, SeverityLow},
		{"config invalid", CodeConfigInvalid, SeverityLow},
		{"truncation", CodeTruncation, SeverityCritical},
		{"internal", CodeInternal, SeverityCritical},
		{"unknown", CodeUnknown, SeverityMedium},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := New("test").WithCode(tc.code)
			if err.Code() != tc.code {
				t.Errorf("Code() = %v, want %v", err.Code(), tc.code)
			}
			if err.Severity() != tc.wantSeverity {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tc.wantSeverity)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	cause := New("root problem").WithCode(CodeInvalidInput)
	wrapped := Wrap(cause, "operation failed")

	if !strings.Contains(wrapped.Error(), "root problem") {
		t.Errorf("Error() = %q, should contain cause message", wrapped.Error())
	}
	if wrapped.Code() != CodeInvalidInput {
		t.Errorf("wrapped error should inherit code, got %v", wrapped.Code())
	}
	if !stderrors.Is(wrapped, cause) {
		t.Error("errors.Is should find the cause in the chain")
	}
}

func TestWrapNil(t *testing.T) {
	err := Wrap(nil, "no cause")
	if err.Unwrap() != nil {
		t.Error("wrapping nil should produce an error without cause")
	}
	if err.Error() != "no cause" {
		t.Errorf("Error() = %q, want %q", err.Error(), "no cause")
	}
}

func TestWrapStandardError(t *testing.T) {
	cause := fmt.Errorf("plain failure")
	wrapped := Wrap(cause, "context")

	if wrapped.Code() != CodeUnknown {
		t.Errorf("wrapping a plain error should keep CodeUnknown, got %v", wrapped.Code())
	}
	if !stderrors.Is(wrapped, cause) {
		t.Error("errors.Is should find the plain cause")
	}
}

func TestHasCode(t *testing.T) {
	inner := New("bad value").WithCode(CodeInvalidInput)
	outer := fmt.Errorf("while resolving: %w", inner)

	if !HasCode(outer, CodeInvalidInput) {
		t.Error("HasCode should see through fmt.Errorf wrapping")
	}
	if HasCode(outer, CodeTruncation) {
		t.Error("HasCode should not match a different code")
	}
	if HasCode(nil, CodeInvalidInput) {
		t.Error("HasCode(nil) should be false")
	}
}

func TestRootCause(t *testing.T) {
	root := fmt.Errorf("disk on fire")
	middle := Wrap(root, "read failed")
	top := Wrap(middle, "load failed")

	if top.RootCause() != root {
		t.Errorf("RootCause() = %v, want %v", top.RootCause(), root)
	}
}

func TestDetails(t *testing.T) {
	err := New("parse failed").
		WithDetail("input", "not a date").
		WithDetails(map[string]interface{}{"stage": "absolute"})

	details := err.Details()
	if details["input"] != "not a date" {
		t.Errorf("details[input] = %v, want %q", details["input"], "not a date")
	}
	if details["stage"] != "absolute" {
		t.Errorf("details[stage] = %v, want %q", details["stage"], "absolute")
	}

	// Returned map must be a copy
	details["input"] = "mutated"
	if err.Details()["input"] != "not a date" {
		t.Error("Details() must return a copy")
	}
}

func TestString(t *testing.T) {
	err := New("boom").WithCode(CodeInternal).WithOperation("format")
	s := err.String()

	for _, want := range []string{"INTERNAL", "critical", "boom", "format"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, should contain %q", s, want)
		}
	}
}
