// Package datefmt parses the date cells of the spreadsheet datasets.
// The sheets are maintained by hand and mix formats freely (ISO dates,
// day-first Indonesian notation, datetimes with stray whitespace), so
// parsing is lenient: a cell either yields a date or is skipped by the
// caller. Unparsable dates are a per-row condition, never an error.
package datefmt

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Parse attempts to read a date from a raw cell value.
// Ambiguous numeric dates are read day-first (02/01/2024 is 2 January),
// matching how the source sheets are filled in.
func Parse(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	t, err := dateparse.ParseAny(raw,
		dateparse.PreferMonthFirst(false),
		dateparse.RetryAmbiguousDateWithSwap(true),
	)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DayFloor normalizes a timestamp to midnight UTC of its calendar day.
// Response-time deltas are computed on day floors so that time-of-day
// differences never shift a whole-day count.
func DayFloor(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
