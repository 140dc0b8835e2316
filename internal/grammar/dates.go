package grammar

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"schedule-interpreter/pkg/datemath"
	"schedule-interpreter/pkg/lexicon"
)

var (
	isoDatePattern     = regexp.MustCompile(`^` + isoDateExpr + `$`)
	dottedDatePattern  = regexp.MustCompile(`^` + dottedExpr + `$`)
	dottedShortPattern = regexp.MustCompile(`^(\d{1,2})\.\s?(\d{1,2})\.?$`)
	monthStartPattern  = regexp.MustCompile(`^(?:pocetak|pocetku|prvi dan) (.+?)(?: (\d{4})\.?)?$`)
	dayMonthPattern    = regexp.MustCompile(`^(.+?)\.? ([a-z]+)(?: (\d{4})\.?)?$`)
)

// resolveDate turns a spoken date target into a calendar date. Accepted
// forms: YYYY-MM-DD, D.M.YYYY, D.M., "pocetak MONTH [YYYY]",
// "D. MONTH [YYYY]" and, when pc.Today is set, relative phrases.
func resolveDate(target string, pc Context) (time.Time, error) {
	target = strings.TrimSpace(target)

	if isoDatePattern.MatchString(target) {
		t, err := datemath.ParseISO(target)
		if err != nil {
			return time.Time{}, ErrInvalidDate
		}
		return t, nil
	}

	if dottedDatePattern.MatchString(target) {
		t, err := datemath.ParseDotted(target)
		if err != nil {
			return time.Time{}, ErrInvalidDate
		}
		return t, nil
	}

	if m := dottedShortPattern.FindStringSubmatch(target); m != nil {
		d, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		return calendarDate(yearOf("", pc), month, d)
	}

	if m := monthStartPattern.FindStringSubmatch(target); m != nil {
		month, ok := lexicon.Month(m[1])
		if !ok {
			return time.Time{}, ErrUnresolvedMonth
		}
		year := yearOf(m[2], pc)
		if year == 0 {
			return time.Time{}, ErrInvalidDate
		}
		return datemath.StartOfMonth(year, month), nil
	}

	if !pc.Today.IsZero() {
		if t, err := datemath.Relative(target, pc.Today); err == nil {
			return t, nil
		}
	}

	if m := dayMonthPattern.FindStringSubmatch(target); m != nil {
		month, ok := lexicon.Month(m[2])
		if !ok {
			return time.Time{}, ErrUnresolvedMonth
		}
		d, ok := lexicon.Number(m[1])
		if !ok {
			return time.Time{}, ErrUnresolvedNumeral
		}
		return calendarDate(yearOf(m[3], pc), month, d)
	}

	return time.Time{}, ErrInvalidDate
}

// yearOf returns the spoken year, falling back to the context default.
func yearOf(spoken string, pc Context) int {
	if y, err := strconv.Atoi(spoken); err == nil {
		return y
	}
	if pc.DefaultYear != 0 {
		return pc.DefaultYear
	}
	if !pc.Today.IsZero() {
		return pc.Today.Year()
	}
	return 0
}

func calendarDate(year, month, d int) (time.Time, error) {
	if year == 0 || !datemath.Valid(year, month, d) {
		return time.Time{}, ErrInvalidDate
	}
	return datemath.Date(year, time.Month(month), d), nil
}
