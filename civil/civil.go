// Package civil provides immutable calendar date and wall-clock time values
// on the proleptic ISO calendar, without any time zone or UTC offset
// attached. Every mutating operation returns a new value.
package civil

import (
	"fmt"
	"time"
)

// Year bounds of the supported calendar range. Operations that would produce
// a year outside this range fail with a RangeError.
const (
	MinYear = -999_999_999
	MaxYear = 999_999_999
)

// RangeError reports a field value outside its fixed valid range,
// for example month 13 or hour 24.
type RangeError struct {
	Field    string
	Value    int64
	Min, Max int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %d out of range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

// DateError reports a day-of-month that is inside its fixed range but invalid
// in combination with the other date fields, for example February 30.
type DateError struct {
	Year  int
	Month time.Month
	Day   int
}

func (e *DateError) Error() string {
	return fmt.Sprintf("day-of-month %d is invalid for %v %d", e.Day, e.Month, e.Year)
}

// DayResolver selects how an invalid day-of-month produced by replacing or
// adding year and month fields is repaired.
type DayResolver int

const (
	// PreviousValid clamps the day down to the last valid day of the
	// month. This is the default.
	PreviousValid DayResolver = iota
	// NextValid rolls forward to the first day of the following month.
	NextValid
	// Strict rejects the date with a DateError.
	Strict
)

func (r DayResolver) String() string {
	switch r {
	case PreviousValid:
		return "PreviousValid"
	case NextValid:
		return "NextValid"
	case Strict:
		return "Strict"
	default:
		return "<UNDEFINED>"
	}
}

// chooseResolver returns the single explicit resolver or the default.
func chooseResolver(rs []DayResolver) (DayResolver, error) {
	switch len(rs) {
	case 0:
		return PreviousValid, nil
	case 1:
		return rs[0], nil
	default:
		return 0, fmt.Errorf("at most one DayResolver may be given, got %d", len(rs))
	}
}
