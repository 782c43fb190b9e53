package resolver

import (
	"errors"
	"strings"
	"time"

	cerror "github.com/msto63/chronos/foundation/core/error"
	"github.com/msto63/chronos/foundation/core/log"
	"github.com/msto63/chronos/foundation/utils/timex"
)

// Relative expression qualifiers. The qualifier must be the trailing word
// of the input, separated from the duration text by whitespace.
const (
	qualifierAgo   = "ago"
	qualifierLater = "later"
)

// tryRelative checks the input against the pattern "<duration> ago|later".
//
// A missing qualifier or an unparsable duration is not an error: the
// return value reports no match and the dispatcher falls through to the
// absolute parser. A duration that overflows, on its own or when applied
// to now, is a hard failure.
func (r *Resolver) tryRelative(input string, now time.Time) (time.Time, bool, error) {
	durText, qualifier, ok := splitQualifier(input)
	if !ok {
		return time.Time{}, false, nil
	}

	d, err := timex.ParseDuration(durText)
	if err != nil {
		if errors.Is(err, timex.ErrOverflow) {
			return time.Time{}, false, cerror.Wrap(err, "relative expression out of range").
				WithCode(cerror.CodeInvalidInput).
				WithOperation("resolve/relative").
				WithDetail("input", input)
		}
		r.logger.Debug("qualifier found but duration did not parse",
			log.Field("duration_text", durText), log.Err(err))
		return time.Time{}, false, nil
	}

	var instant time.Time
	if qualifier == qualifierAgo {
		instant = now.Add(-d)
	} else {
		instant = now.Add(d)
	}

	// Overflow of now±d shows up as the result landing on the wrong side
	// of now.
	if d > 0 {
		overflowed := (qualifier == qualifierAgo && !instant.Before(now)) ||
			(qualifier == qualifierLater && !instant.After(now))
		if overflowed {
			return time.Time{}, false, cerror.Newf("relative expression %q overflows the representable time range", input).
				WithCode(cerror.CodeInvalidInput).
				WithOperation("resolve/relative").
				WithDetail("duration", d.String())
		}
	}

	return instant, true, nil
}

// splitQualifier extracts the trailing ago/later word. It reports no match
// unless the qualifier is preceded by whitespace and non-empty duration
// text.
func splitQualifier(input string) (durText, qualifier string, ok bool) {
	trimmed := strings.TrimRight(input, " \t")

	for _, q := range []string{qualifierAgo, qualifierLater} {
		if !strings.HasSuffix(trimmed, q) {
			continue
		}
		head := trimmed[:len(trimmed)-len(q)]
		if head == "" || !endsWithSpace(head) {
			// "ago" alone, or glued to the duration ("2hago")
			continue
		}
		return strings.TrimSpace(head), q, true
	}

	return "", "", false
}

func endsWithSpace(s string) bool {
	last := s[len(s)-1]
	return last == ' ' || last == '\t'
}
