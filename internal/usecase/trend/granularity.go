package trend

import (
	"fmt"
	"time"

	"github.com/iboet2004/db-rilis/internal/pkg/datefmt"
)

// Granularity selects the calendar bucket size for trend aggregation.
type Granularity string

// Supported granularities.
const (
	Weekly  Granularity = "week"
	Monthly Granularity = "month"
)

// ParseGranularity validates a user-supplied granularity string.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case Weekly:
		return Weekly, nil
	case Monthly:
		return Monthly, nil
	default:
		return "", fmt.Errorf("unknown granularity %q (must be %q or %q)", s, Weekly, Monthly)
	}
}

// BucketOf floors a timestamp to the start of its containing bucket:
// Monday 00:00 UTC for weeks, the first of the month for months.
func (g Granularity) BucketOf(t time.Time) time.Time {
	day := datefmt.DayFloor(t)
	switch g {
	case Monthly:
		return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		// Weekday() counts from Sunday; shift so Monday is day zero.
		back := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -back)
	}
}

// Next returns the start of the bucket following b.
func (g Granularity) Next(b time.Time) time.Time {
	if g == Monthly {
		return b.AddDate(0, 1, 0)
	}
	return b.AddDate(0, 0, 7)
}

// Range enumerates every bucket start from min to max inclusive.
// A single valid date collapses the range to one bucket.
func (g Granularity) Range(min, max time.Time) []time.Time {
	var out []time.Time
	for b := min; !b.After(max); b = g.Next(b) {
		out = append(out, b)
	}
	return out
}
