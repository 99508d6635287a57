// Package datetime implements the "createSafeDate" contract: a single
// helper that decides whether a catalog-supplied date string yields a
// valid instant, so producers branch on that decision rather than on
// string truthiness.
package datetime

import (
	"math"
	"time"
)

// layouts tried in order. The catalog emits ISO-8601/RFC3339-ish
// strings; time.RFC3339Nano covers the fractional-second form, plain
// RFC3339 the rest, and the date-only form is accepted defensively.
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02T15:04:05Z",
	"2006-01-02",
}

// TryParse parses s as an ISO-8601 instant. It returns a finite time
// and true only if s is non-empty and matches one of the accepted
// layouts; otherwise the zero time and false ("absent"), per the
// contract: createSafeDate("") / createSafeDate(nil) / a malformed
// string must all yield "absent".
func TryParse(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// EpochSeconds converts t to floating seconds-since-epoch, the unit
// POSIX stat times are emitted in (epoch_ms / 1000 in floating form).
func EpochSeconds(t time.Time) float64 {
	ms := t.UnixMilli()
	return math.Round(float64(ms)) / 1000
}

// Now returns the current wall-clock time, used whenever no record
// date parses and a timestamp must still be produced.
func Now() time.Time {
	return time.Now().UTC()
}
