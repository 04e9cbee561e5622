package civil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseDate parses the ISO form produced by Date.String, for example
// "2008-06-30", "-0001-12-31" or "+10000-01-01".
func ParseDate(s string) (Date, error) {
	year, month, day, err := parseDateFields(s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	d, err := NewDate(year, month, day)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return d, nil
}

func parseDateFields(s string) (int, time.Month, int, error) {
	sign := 1
	rest := s
	switch {
	case strings.HasPrefix(rest, "+"):
		rest = rest[1:]
	case strings.HasPrefix(rest, "-"):
		sign = -1
		rest = rest[1:]
	}
	parts := strings.Split(rest, "-")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("expected year-month-day")
	}
	if len(parts[0]) < 4 {
		return 0, 0, 0, fmt.Errorf("year must have at least 4 digits")
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("year: %v", err)
	}
	month, err := parseTwoDigits(parts[1], "month")
	if err != nil {
		return 0, 0, 0, err
	}
	day, err := parseTwoDigits(parts[2], "day")
	if err != nil {
		return 0, 0, 0, err
	}
	return sign * year, time.Month(month), day, nil
}

// ParseTime parses the ISO form produced by Time.String, for example
// "11:30", "11:30:59" or "11:30:59.123456789".
func ParseTime(s string) (Time, error) {
	hour, minute, second, nano, err := parseTimeFields(s)
	if err != nil {
		return Time{}, fmt.Errorf("parse time %q: %w", s, err)
	}
	t, err := NewTime(hour, minute, second, nano)
	if err != nil {
		return Time{}, fmt.Errorf("parse time %q: %w", s, err)
	}
	return t, nil
}

func parseTimeFields(s string) (hour, minute, second, nano int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, 0, 0, 0, fmt.Errorf("expected hour:minute or hour:minute:second")
	}
	if hour, err = parseTwoDigits(parts[0], "hour"); err != nil {
		return 0, 0, 0, 0, err
	}
	if minute, err = parseTwoDigits(parts[1], "minute"); err != nil {
		return 0, 0, 0, 0, err
	}
	if len(parts) == 3 {
		secondStr, fraction, hasFraction := strings.Cut(parts[2], ".")
		if second, err = parseTwoDigits(secondStr, "second"); err != nil {
			return 0, 0, 0, 0, err
		}
		if hasFraction {
			if nano, err = parseFraction(fraction); err != nil {
				return 0, 0, 0, 0, err
			}
		}
	}
	return hour, minute, second, nano, nil
}

// parseFraction converts a fractional-second string of 1 to 9 digits to
// nanoseconds.
func parseFraction(s string) (int, error) {
	if len(s) == 0 || len(s) > 9 {
		return 0, fmt.Errorf("fraction must have 1 to 9 digits")
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("fraction: invalid digits %q", s)
	}
	for i := len(s); i < 9; i++ {
		n *= 10
	}
	return n, nil
}

func parseTwoDigits(s, name string) (int, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("%s must have 2 digits, got %q", name, s)
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s: invalid digits %q", name, s)
	}
	return n, nil
}

// ParseDateTime parses the ISO form produced by DateTime.String, for example
// "2008-06-30T11:30:59.123".
func ParseDateTime(s string) (DateTime, error) {
	datePart, timePart, ok := strings.Cut(s, "T")
	if !ok {
		return DateTime{}, fmt.Errorf("parse date-time %q: expected 'T' separator", s)
	}
	d, err := ParseDate(datePart)
	if err != nil {
		return DateTime{}, fmt.Errorf("parse date-time %q: %w", s, err)
	}
	t, err := ParseTime(timePart)
	if err != nil {
		return DateTime{}, fmt.Errorf("parse date-time %q: %w", s, err)
	}
	return NewDateTime(d, t), nil
}
