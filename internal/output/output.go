// Package output renders a resolved instant in one of the supported
// output modes: epoch seconds, epoch milliseconds, or a readable RFC3339
// string truncated to 100 milliseconds.
package output

import (
	"strconv"
	"strings"
	"time"

	cerror "github.com/msto63/chronos/foundation/core/error"
	"github.com/msto63/chronos/foundation/core/log"
	"github.com/msto63/chronos/foundation/utils/timex"

	"github.com/msto63/chronos/internal/clock"
)

// Kind selects the output representation.
type Kind int

const (
	// KindEpoch prints integer seconds since the Unix epoch
	KindEpoch Kind = iota

	// KindMillis prints integer milliseconds since the Unix epoch
	KindMillis

	// KindReadable prints an RFC3339 string, truncated to 100 ms
	KindReadable
)

// String returns the flag-level name of the kind.
func (k Kind) String() string {
	switch k {
	case KindEpoch:
		return "epoch"
	case KindMillis:
		return "millis"
	case KindReadable:
		return "readable"
	default:
		return "unknown"
	}
}

// Zone names the requested display zone for readable output.
type Zone int

const (
	// ZoneUTC requests UTC display
	ZoneUTC Zone = iota

	// ZoneLocal requests local-time display
	ZoneLocal
)

// String returns the flag-level name of the zone.
func (z Zone) String() string {
	switch z {
	case ZoneUTC:
		return "UTC"
	case ZoneLocal:
		return "Local"
	default:
		return "unknown"
	}
}

// ParseZone parses the --output flag value. Matching is case-insensitive.
func ParseZone(value string) (Zone, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "utc":
		return ZoneUTC, nil
	case "local":
		return ZoneLocal, nil
	default:
		return ZoneUTC, cerror.Newf("invalid output zone %q: expected UTC or Local", value).
			WithCode(cerror.CodeConfigInvalid)
	}
}

// Mode is the tagged output variant: exactly one Kind per invocation, Zone
// meaningful only for KindReadable.
type Mode struct {
	Kind Kind
	Zone Zone
}

// ReadableTruncation is the fixed truncation unit for readable output.
const ReadableTruncation = 100 * time.Millisecond

// Formatter renders instants according to a Mode.
type Formatter struct {
	clock  clock.Clock
	loc    *time.Location
	logger *log.Logger
}

// NewFormatter creates a formatter. A nil location defaults to the process
// local zone; a nil logger defaults to the package default logger.
func NewFormatter(clk clock.Clock, loc *time.Location, logger *log.Logger) *Formatter {
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = log.GetDefault()
	}
	return &Formatter{
		clock:  clk,
		loc:    loc,
		logger: logger.WithName("output"),
	}
}

// Format renders the instant. Epoch and millis values truncate toward
// negative infinity, following Unix epoch semantics.
func (f *Formatter) Format(instant time.Time, mode Mode) (string, error) {
	switch mode.Kind {
	case KindEpoch:
		return strconv.FormatInt(instant.Unix(), 10), nil
	case KindMillis:
		return strconv.FormatInt(instant.UnixMilli(), 10), nil
	case KindReadable:
		return f.formatReadable(instant, mode.Zone)
	default:
		return "", cerror.Newf("unknown output kind %d", int(mode.Kind)).
			WithCode(cerror.CodeInternal).
			WithOperation("format")
	}
}

// formatReadable renders RFC3339 text truncated to 100 ms.
//
// Both zone choices render with the local UTC offset captured at
// formatting time: the UTC label does not switch to a zero offset, and the
// offset comes from now rather than from the instant itself. Both are
// deliberate reproductions of long-standing behavior; see DESIGN.md.
func (f *Formatter) formatReadable(instant time.Time, zone Zone) (string, error) {
	truncated, err := timex.TruncateToNearest(instant, ReadableTruncation)
	if err != nil {
		// Unreachable for the fixed positive unit; an error here means a
		// broken invariant, not bad user input.
		return "", cerror.Wrap(err, "failed to truncate instant").
			WithCode(cerror.CodeTruncation).
			WithOperation("format/readable")
	}

	name, offset := f.clock.Now().In(f.loc).Zone()
	fixed := time.FixedZone(name, offset)

	f.logger.Debug("rendering readable output",
		log.Field("zone", zone.String()),
		log.Field("offset_seconds", offset))

	return truncated.In(fixed).Format(timex.RFC3339Fraction), nil
}
