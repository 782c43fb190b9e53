// File: format.go
// Title: Log Output Formatters
// Description: Implements the text and JSON formatters that render log
//              entries into bytes for the configured output writer.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial implementation with text and JSON formats

package log

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Format represents the log output format
type Format int

const (
	// FormatText renders human-readable single-line entries (default)
	FormatText Format = iota

	// FormatJSON renders one JSON object per entry
	FormatJSON
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name into a Format
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text", "console":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("unknown log format: %s", name)
	}
}

// Formatter renders an entry into bytes including the trailing newline
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// textTimestamp is the timestamp layout for text output
const textTimestamp = "2006-01-02 15:04:05.000"

// TextFormatter renders entries as single human-readable lines
type TextFormatter struct{}

// NewTextFormatter creates a text formatter
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format implements the Formatter interface
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder

	b.WriteString(entry.Timestamp.Format(textTimestamp))
	b.WriteByte(' ')
	b.WriteString(entry.Level.ShortString())
	if entry.Logger != "" {
		fmt.Fprintf(&b, " [%s]", entry.Logger)
	}
	b.WriteByte(' ')
	b.WriteString(entry.Message)

	// Deterministic field order for readable and testable output
	keys := make([]string, 0, len(entry.Fields))
	for k := range entry.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, entry.Fields[k])
	}

	if entry.Error != "" {
		fmt.Fprintf(&b, " error=%q", entry.Error)
	}
	if entry.CorrelationID != "" {
		fmt.Fprintf(&b, " correlation_id=%s", entry.CorrelationID)
	}

	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// JSONFormatter renders entries as one JSON object per line
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format implements the Formatter interface
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal log entry: %w", err)
	}
	return append(data, '\n'), nil
}

// GetFormatter returns the formatter for the given format
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter()
	default:
		return NewTextFormatter()
	}
}
