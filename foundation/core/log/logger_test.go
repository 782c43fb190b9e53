// File: logger_test.go
// Title: Core Logger Tests
// Description: Test suite for the structured logger covering level
//              filtering, field handling, and output formatting.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial test implementation

package log

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
)

func newTestLogger(buf *bytes.Buffer, level Level, format Format) *Logger {
	return NewWithConfig(Config{
		Level:  level,
		Format: format,
		Output: buf,
		Name:   "test",
	})
}

func TestLevelFiltering(t *testing.T) {
	testCases := []struct {
		name      string
		minLevel  Level
		logLevel  Level
		wantWrite bool
	}{
		{"debug suppressed at info", LevelInfo, LevelDebug, false},
		{"info passes at info", LevelInfo, LevelInfo, true},
		{"error passes at info", LevelInfo, LevelError, true},
		{"trace passes at trace", LevelTrace, LevelTrace, true},
		{"info suppressed at error", LevelError, LevelInfo, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newTestLogger(&buf, tc.minLevel, FormatText)
			logger.log(tc.logLevel, "message", nil)

			if got := buf.Len() > 0; got != tc.wantWrite {
				t.Errorf("wrote = %v, want %v (output: %q)", got, tc.wantWrite, buf.String())
			}
		})
	}
}

func TestTextOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelDebug, FormatText).
		WithCorrelationID("abc-123").
		WithField("stage", "relative")

	logger.Debug("expression matched", Field("qualifier", "ago"))

	line := buf.String()
	for _, want := range []string{"DBG", "[test]", "expression matched", "qualifier=ago", "stage=relative", "correlation_id=abc-123"} {
		if !strings.Contains(line, want) {
			t.Errorf("output %q should contain %q", line, want)
		}
	}
	if !strings.HasSuffix(line, "\n") {
		t.Error("output should end with newline")
	}
}

func TestTextFieldOrderDeterministic(t *testing.T) {
	fields := Fields{"zeta": 1, "alpha": 2, "mid": 3}

	var first string
	for i := 0; i < 5; i++ {
		var buf bytes.Buffer
		logger := newTestLogger(&buf, LevelInfo, FormatText)
		logger.Info("ordering", fields)
		if i == 0 {
			first = buf.String()
			continue
		}
		if buf.String() != first {
			t.Fatalf("field order not deterministic: %q vs %q", buf.String(), first)
		}
	}
	if strings.Index(first, "alpha=") > strings.Index(first, "zeta=") {
		t.Errorf("fields should be sorted alphabetically: %q", first)
	}
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelInfo, FormatJSON)
	logger.ErrorWithErr("resolution failed", fmt.Errorf("bad input"), Field("input", "not a date"))

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v (output: %q)", err, buf.String())
	}
	if decoded["level"] != "error" {
		t.Errorf("level = %v, want error", decoded["level"])
	}
	if decoded["message"] != "resolution failed" {
		t.Errorf("message = %v", decoded["message"])
	}
	if decoded["error"] != "bad input" {
		t.Errorf("error = %v, want %q", decoded["error"], "bad input")
	}
}

func TestWithDerivationDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := newTestLogger(&buf, LevelInfo, FormatText)
	child := parent.WithField("child", true).WithLevel(LevelDebug)

	if parent.GetLevel() != LevelInfo {
		t.Error("parent level must not change")
	}
	if child.GetLevel() != LevelDebug {
		t.Error("child level must be debug")
	}

	parent.Info("from parent")
	if strings.Contains(buf.String(), "child=true") {
		t.Error("parent must not carry child fields")
	}
}

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"warning", LevelWarn, false},
		{" error ", LevelError, false},
		{"verbose", LevelInfo, true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseLevel(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}
