package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser resolves relative Croatian date phrases against a base instant in
// a fixed timezone. Results are calendar dates at UTC midnight.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Zagreb"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Today returns the calendar date of baseTime in the parser's timezone.
func (p *Parser) Today(baseTime time.Time) time.Time {
	t := baseTime.In(p.location)
	return Date(t.Year(), t.Month(), t.Day())
}

// DefaultYear is the year used for spoken dates that omit one.
func (p *Parser) DefaultYear(baseTime time.Time) int {
	return baseTime.In(p.location).Year()
}

// maxDurationAmount bounds "za N ..." so date arithmetic stays in range.
const maxDurationAmount = 100000

var inDurationPattern = regexp.MustCompile(`^za (\d+) (dan|dana|tjedan|tjedna|tjedana|mjesec|mjeseca|mjeseci)$`)

// Parse converts a relative date phrase ("danas", "sutra", "za 3 dana",
// "sljedeci ponedjeljak") to a calendar date.
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	return Relative(relative, p.Today(baseTime))
}

// Relative resolves a relative date phrase against an already known calendar date.
func Relative(relative string, today time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))
	today = Truncate(today)

	switch relative {
	case "danas":
		return today, nil
	case "sutra":
		return AddDays(today, 1), nil
	case "prekosutra":
		return AddDays(today, 2), nil
	case "jucer":
		return AddDays(today, -1), nil
	}

	if strings.HasPrefix(relative, "za ") {
		return parseInDuration(relative, today)
	}

	if strings.HasPrefix(relative, "sljedeci ") || strings.HasPrefix(relative, "iduci ") {
		return parseNextWeekday(relative, today)
	}

	return time.Time{}, fmt.Errorf("unknown relative date: %q", relative)
}

// parseInDuration handles "za 3 dana", "za 2 tjedna", "za 1 mjesec".
func parseInDuration(relative string, today time.Time) (time.Time, error) {
	matches := inDurationPattern.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid duration amount %q: %w", matches[1], err)
	}
	if amount > maxDurationAmount {
		return time.Time{}, fmt.Errorf("duration amount %d exceeds %d", amount, maxDurationAmount)
	}
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "dan"):
		return AddDays(today, amount), nil
	case strings.HasPrefix(unit, "tjed"):
		return AddDays(today, amount*7), nil
	case strings.HasPrefix(unit, "mjesec"):
		return today.AddDate(0, amount, 0), nil
	}

	return time.Time{}, fmt.Errorf("unknown time unit: %q", unit)
}

// parseNextWeekday handles "sljedeci ponedjeljak", "iduci petak".
func parseNextWeekday(relative string, today time.Time) (time.Time, error) {
	_, dayName, _ := strings.Cut(relative, " ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown weekday: %q", dayName)
	}

	daysUntil := int(targetWeekday - today.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return AddDays(today, daysUntil), nil
}
