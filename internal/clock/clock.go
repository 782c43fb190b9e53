// Package clock provides the time source capability for chronos.
//
// Resolution and formatting both depend on "now"; injecting the clock keeps
// those stages deterministic under test.
package clock

import "time"

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock.
type System struct{}

// Now implements the Clock interface.
func (System) Now() time.Time {
	return time.Now()
}

// Fixed always returns the same instant. Test use only.
type Fixed struct {
	Instant time.Time
}

// Now implements the Clock interface.
func (f Fixed) Now() time.Time {
	return f.Instant
}
