package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const day = 24 * time.Hour

// Date builds a calendar date at UTC midnight.
func Date(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// Truncate drops the clock part, keeping the calendar date as seen in t's location.
func Truncate(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// Valid reports whether year-month-day names a real calendar date.
func Valid(year, month, d int) bool {
	if month < 1 || month > 12 || d < 1 {
		return false
	}
	t := Date(year, time.Month(month), d)
	return t.Year() == year && int(t.Month()) == month && t.Day() == d
}

// AddDays shifts a calendar date by n days.
func AddDays(t time.Time, n int) time.Time {
	return Truncate(t).AddDate(0, 0, n)
}

// DiffDays returns the number of days from a to b (b - a).
func DiffDays(a, b time.Time) int {
	return int(Truncate(b).Sub(Truncate(a)) / day)
}

// RangeInclusive enumerates every date from start to end, both included.
// It returns nil when end is before start.
func RangeInclusive(start, end time.Time) []time.Time {
	n := DiffDays(start, end)
	if n < 0 {
		return nil
	}
	out := make([]time.Time, 0, n+1)
	for i := 0; i <= n; i++ {
		out = append(out, AddDays(start, i))
	}
	return out
}

// StartOfMonth returns the first day of the given month.
func StartOfMonth(year, month int) time.Time {
	return Date(year, time.Month(month), 1)
}

// ParseISO parses a YYYY-MM-DD date.
func ParseISO(s string) (time.Time, error) {
	t, err := time.Parse(ISOLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid ISO date %q: %w", s, err)
	}
	return t, nil
}

// FormatISO renders a calendar date as YYYY-MM-DD.
func FormatISO(t time.Time) string {
	return t.Format(ISOLayout)
}

var dottedPattern = regexp.MustCompile(`^(\d{1,2})\.\s?(\d{1,2})\.\s?(\d{4})\.?$`)

// ParseDotted parses the Croatian D.M.YYYY form.
func ParseDotted(s string) (time.Time, error) {
	m := dottedPattern.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, fmt.Errorf("invalid dotted date %q", s)
	}
	d, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if !Valid(year, month, d) {
		return time.Time{}, fmt.Errorf("invalid dotted date %q", s)
	}
	return Date(year, time.Month(month), d), nil
}
