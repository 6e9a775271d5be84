// metrics/dates.go
package metrics

import (
	"strings"
	"time"
)

// Day is the length of one grid day. Spans are counted in calendar days, so a
// 30 day "month" is an approximation.
const Day = 24 * time.Hour

// AddDays returns t moved by n calendar days, keeping the wall clock time.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// Earliest returns the earlier of a and b. A zero time counts as absent.
func Earliest(a, b time.Time) time.Time {
	if a.IsZero() {
		return b
	}
	if b.IsZero() || a.Before(b) {
		return a
	}
	return b
}

// Latest returns the later of a and b. A zero time counts as absent.
func Latest(a, b time.Time) time.Time {
	if a.IsZero() {
		return b
	}
	if b.IsZero() || a.After(b) {
		return a
	}
	return b
}

// StartOfDay truncates t to 00:00:00.000 in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// NextDayStart returns 24:00:00.000 of t's day, i.e. the start of the following day.
// A time already at midnight still moves forward one day.
func NextDayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location())
}

// Units returns how many whole or partial units of length unit lie between from
// and to. Both ends are counted in calendar days of their own location, so a
// daylight saving change never adds or removes an hour from the span. Unit is
// expected to be a multiple of Day.
func Units(from, to time.Time, unit time.Duration) float64 {
	if unit <= 0 {
		return 0
	}
	days := float64(civilDate(to).Sub(civilDate(from))) / float64(Day)
	days += dayFraction(to) - dayFraction(from)
	return days / (float64(unit) / float64(Day))
}

// civilDate is t's calendar date at 00:00 UTC.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// dayFraction is how far t is into its own day, in [0, 1). Days of 23 or 25
// hours are scaled to one unit.
func dayFraction(t time.Time) float64 {
	start := StartOfDay(t)
	length := NextDayStart(t).Sub(start)
	if length <= 0 {
		return 0
	}
	return float64(t.Sub(start)) / float64(length)
}

var patternReplacer = strings.NewReplacer(
	"YYYY", "2006",
	"MM", "01",
	"dd", "02",
	"HH", "15",
	"mm", "04",
	"ss", "05",
)

// FormatDate formats t with a token pattern such as "YYYY-MM" or "MM-dd".
// Supported tokens: YYYY, MM, dd, HH, mm, ss. Everything else is copied verbatim
// after Go layout translation, so avoid literal digits in patterns.
func FormatDate(t time.Time, pattern string) string {
	return t.Format(patternReplacer.Replace(pattern))
}
