// Package resolver turns a time expression into an instant.
//
// Resolution is a linear pipeline: relative expressions ("2 hours ago") are
// tried first, then absolute ones (RFC3339 or a naive local datetime). An
// empty input resolves to the current instant.
package resolver

import (
	"strings"
	"time"

	cerror "github.com/msto63/chronos/foundation/core/error"
	"github.com/msto63/chronos/foundation/core/log"

	"github.com/msto63/chronos/internal/clock"
)

// acceptedFormats names the input grammars for error messages.
const acceptedFormats = `RFC3339 (2022-02-02T01:00:00Z), "YYYY-MM-DD HH:MM:SS" (local time), or "<duration> ago|later"`

// Resolver resolves time expressions against an injected clock and local
// time zone.
type Resolver struct {
	clock  clock.Clock
	loc    *time.Location
	logger *log.Logger
}

// New creates a resolver. A nil location defaults to the process local
// zone; a nil logger defaults to the package default logger.
func New(clk clock.Clock, loc *time.Location, logger *log.Logger) *Resolver {
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = log.GetDefault()
	}
	return &Resolver{
		clock:  clk,
		loc:    loc,
		logger: logger.WithName("resolver"),
	}
}

// Resolve turns the input expression into an instant. An empty or blank
// input resolves to now. The returned instant is represented in a fixed
// zone carrying the local UTC offset in effect at resolution time.
func (r *Resolver) Resolve(input string) (time.Time, error) {
	now := r.clock.Now()

	if strings.TrimSpace(input) == "" {
		r.logger.Debug("no input, resolving to now")
		return now, nil
	}

	instant, matched, err := r.tryRelative(input, now)
	if err != nil {
		return time.Time{}, err
	}
	if matched {
		r.logger.Debug("relative expression resolved", log.Field("input", input))
		return instant, nil
	}

	instant, matched, err = r.tryAbsolute(input, now)
	if err != nil {
		return time.Time{}, err
	}
	if matched {
		r.logger.Debug("absolute expression resolved", log.Field("input", input))
		return instant, nil
	}

	return time.Time{}, cerror.Newf("unable to parse time expression %q: expected %s", input, acceptedFormats).
		WithCode(cerror.CodeInvalidInput).
		WithOperation("resolve").
		WithDetail("input", input)
}

// normalizeOffset rebases an instant into a fixed zone with the local UTC
// offset valid at "now". The offset is taken from now, not from the
// instant itself, so instants across a DST boundary keep today's offset in
// their rendering. Known quirk, kept on purpose.
func (r *Resolver) normalizeOffset(t, now time.Time) time.Time {
	name, offset := now.In(r.loc).Zone()
	return t.In(time.FixedZone(name, offset))
}
