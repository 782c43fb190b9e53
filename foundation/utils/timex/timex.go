// File: timex.go
// Title: Extended Time Utilities
// Description: Implements time utility functions including duration parsing
//              with business-friendly units, epoch-based truncation, and
//              shared format constants.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial implementation

package timex

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Common time formats used across chronos
const (
	// ISO formats
	ISO8601         = "2006-01-02T15:04:05Z07:00"
	ISO8601Date     = "2006-01-02"
	ISO8601DateTime = "2006-01-02T15:04:05"

	// Local naive datetime, no offset, no fractional seconds
	LocalDateTime = "2006-01-02 15:04:05"

	// RFC3339 with optional fractional seconds, trailing zeros trimmed
	RFC3339Fraction = "2006-01-02T15:04:05.999999999Z07:00"

	// Log formats
	LogTimestamp = "2006-01-02 15:04:05.000"
)

// ErrOverflow reports a duration magnitude that exceeds the representable
// range. Wrapped into parse errors; detect with errors.Is.
var ErrOverflow = errors.New("duration value out of range")

// ===============================
// Parsing Functions
// ===============================

// durationUnits maps spelled-out unit names to their base duration.
// Plural forms are normalized before lookup.
var durationUnits = map[string]time.Duration{
	"second": time.Second,
	"sec":    time.Second,
	"minute": time.Minute,
	"min":    time.Minute,
	"hour":   time.Hour,
	"hr":     time.Hour,
	"day":    24 * time.Hour,
	"week":   7 * 24 * time.Hour,
}

// ParseDuration parses duration strings with extended formats.
//
// Standard Go syntax is tried first ("90s", "2h30m"). If that fails, the
// business-friendly form "<number> <unit>" is accepted with units
// second/sec, minute/min, hour/hr, day, and week, including plural forms
// ("2 hours", "1 day", "3 weeks"). Negative durations are rejected.
func ParseDuration(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty duration string")
	}

	if strings.HasPrefix(value, "-") {
		return 0, fmt.Errorf("negative durations are not supported: %s", value)
	}

	// Try standard Go duration parsing first
	if d, err := time.ParseDuration(value); err == nil {
		return d, nil
	}

	// Handle formats like "2 hours", "1 day", "3 weeks"
	parts := strings.Fields(strings.ToLower(value))
	if len(parts) == 2 {
		num, err := strconv.ParseFloat(parts[0], 64)
		if err == nil && num >= 0 {
			unitName := strings.TrimSuffix(parts[1], "s")
			if unit, ok := durationUnits[unitName]; ok {
				if num > float64(math.MaxInt64)/float64(unit) {
					return 0, fmt.Errorf("duration %q: %w", value, ErrOverflow)
				}
				return time.Duration(num * float64(unit)), nil
			}
		}
	}

	return 0, fmt.Errorf("unable to parse duration string: %s", value)
}

// ===============================
// Truncation Functions
// ===============================

// TruncateToNearest truncates a time down to the given duration boundary,
// measured from the Unix epoch. The unit must be positive.
func TruncateToNearest(t time.Time, d time.Duration) (time.Time, error) {
	if d <= 0 {
		return time.Time{}, fmt.Errorf("truncation unit must be positive, got %v", d)
	}

	since := t.Sub(time.Unix(0, 0))
	truncated := since / d * d
	// Integer division rounds toward zero; truncation goes toward
	// negative infinity for pre-epoch instants
	if since < 0 && since%d != 0 {
		truncated -= d
	}

	return time.Unix(0, 0).Add(truncated).In(t.Location()), nil
}

// RoundToNearest rounds a time to the nearest duration boundary, measured
// from the Unix epoch. The unit must be positive.
func RoundToNearest(t time.Time, d time.Duration) (time.Time, error) {
	if d <= 0 {
		return time.Time{}, fmt.Errorf("rounding unit must be positive, got %v", d)
	}

	truncated, err := TruncateToNearest(t, d)
	if err != nil {
		return time.Time{}, err
	}
	if t.Sub(truncated) >= d/2 {
		truncated = truncated.Add(d)
	}
	return truncated, nil
}
