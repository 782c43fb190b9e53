// File: entry.go
// Title: Log Entry and Field Helpers
// Description: Defines the Entry type that represents a single log event and
//              the Fields helpers used to attach structured data to entries.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial implementation

package log

import (
	"time"
)

// Fields represents structured key/value data attached to a log entry
type Fields map[string]interface{}

// Entry represents a single log event
type Entry struct {
	Timestamp     time.Time `json:"timestamp"`
	Level         Level     `json:"-"`
	LevelName     string    `json:"level"`
	Message       string    `json:"message"`
	Logger        string    `json:"logger,omitempty"`
	CorrelationID string    `json:"correlation_id,omitempty"`
	Error         string    `json:"error,omitempty"`
	Fields        Fields    `json:"fields,omitempty"`
}

// NewEntry creates a new entry with the current timestamp
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		LevelName: level.String(),
		Message:   message,
		Fields:    make(Fields),
	}
}

// Field creates a Fields value with a single key/value pair
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Err creates a Fields value carrying an error
func Err(err error) Fields {
	if err == nil {
		return Fields{}
	}
	return Fields{"error": err.Error()}
}

// Duration creates a Fields value with a duration rendered as string
func Duration(key string, d time.Duration) Fields {
	return Fields{key: d.String()}
}

// Merge combines two Fields values; keys in other win on conflict
func (f Fields) Merge(other Fields) Fields {
	merged := make(Fields, len(f)+len(other))
	for k, v := range f {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

// Clone returns a shallow copy of the fields
func (f Fields) Clone() Fields {
	cloned := make(Fields, len(f))
	for k, v := range f {
		cloned[k] = v
	}
	return cloned
}
