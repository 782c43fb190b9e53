package resolver

import (
	"time"

	cerror "github.com/msto63/chronos/foundation/core/error"
	"github.com/msto63/chronos/foundation/utils/timex"
)

// tryAbsolute parses the input as an absolute timestamp: strict RFC3339
// first, then the naive pattern "YYYY-MM-DD HH:MM:SS" interpreted in the
// resolver's local zone.
//
// An input matching neither layout reports no match. A naive datetime that
// is ambiguous or nonexistent in the local zone matched the grammar but is
// invalid, which is a hard failure.
func (r *Resolver) tryAbsolute(input string, now time.Time) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339, input); err == nil {
		return r.normalizeOffset(t, now), true, nil
	}

	wall, err := time.Parse(timex.LocalDateTime, input)
	if err != nil {
		return time.Time{}, false, nil
	}

	t, err := r.localInstant(wall)
	if err != nil {
		return time.Time{}, false, err
	}

	return r.normalizeOffset(t, now), true, nil
}

// localInstant maps naive wall-clock fields into the local zone. Instead of
// letting the civil-time library pick a branch silently, every UTC offset
// in effect around the date is tried: exactly one offset must reproduce the
// wall clock. Zero matches means the time falls into a DST gap, two mean
// it lies in a fold.
func (r *Resolver) localInstant(wall time.Time) (time.Time, error) {
	base := time.Date(wall.Year(), wall.Month(), wall.Day(),
		wall.Hour(), wall.Minute(), wall.Second(), wall.Nanosecond(), r.loc)

	var matches []time.Time
	for _, offset := range candidateOffsets(base, r.loc) {
		cand := time.Date(wall.Year(), wall.Month(), wall.Day(),
			wall.Hour(), wall.Minute(), wall.Second(), wall.Nanosecond(),
			time.FixedZone("", offset))
		if sameWallClock(cand.In(r.loc), wall) {
			matches = append(matches, cand)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return time.Time{}, cerror.Newf("local time %q does not exist in zone %s (DST gap)", wall.Format(timex.LocalDateTime), r.loc).
			WithCode(cerror.CodeInvalidInput).
			WithOperation("resolve/absolute")
	default:
		return time.Time{}, cerror.Newf("local time %q is ambiguous in zone %s (DST fold)", wall.Format(timex.LocalDateTime), r.loc).
			WithCode(cerror.CodeInvalidInput).
			WithOperation("resolve/absolute")
	}
}

// candidateOffsets returns the distinct UTC offsets the zone uses within a
// day of the reference instant. A zone transitions at most once in that
// window, so the set covers both sides of any nearby DST change.
func candidateOffsets(ref time.Time, loc *time.Location) []int {
	var offsets []int
	for _, probe := range []time.Time{ref.Add(-24 * time.Hour), ref, ref.Add(24 * time.Hour)} {
		_, offset := probe.In(loc).Zone()
		if !containsInt(offsets, offset) {
			offsets = append(offsets, offset)
		}
	}
	return offsets
}

func containsInt(values []int, v int) bool {
	for _, existing := range values {
		if existing == v {
			return true
		}
	}
	return false
}

func sameWallClock(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day() &&
		a.Hour() == b.Hour() && a.Minute() == b.Minute() && a.Second() == b.Second()
}
