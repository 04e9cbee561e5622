// Package field defines the closed set of ISO calendar field rules. A rule
// names one calendrical quantity, carries its valid range and period unit
// metadata, and can extract its value from any calendrical value.
//
// The rule set is fixed. There is no runtime registration; each rule is a
// constant and switches over rules are exhaustive.
package field

import (
	"time"

	"github.com/ngrash/go-chrono/internal/daycount"
)

// Calendrical is any value calendar fields can be read from. FieldValue
// returns the value of the given rule, or false if the value does not carry
// that field. Absence is not an error: a pure time value simply has no
// month-of-year.
type Calendrical interface {
	FieldValue(Rule) (int64, bool)
}

// Unit is a period unit associated with a field rule.
type Unit int

const (
	Nanos Unit = iota
	Seconds
	Minutes
	Hours
	Days
	Weeks
	Months
	Years
	Forever
)

func (u Unit) String() string {
	switch u {
	case Nanos:
		return "Nanos"
	case Seconds:
		return "Seconds"
	case Minutes:
		return "Minutes"
	case Hours:
		return "Hours"
	case Days:
		return "Days"
	case Weeks:
		return "Weeks"
	case Months:
		return "Months"
	case Years:
		return "Years"
	case Forever:
		return "Forever"
	default:
		return "<UNDEFINED>"
	}
}

// Rule identifies one ISO calendar field.
type Rule int

const (
	Year Rule = iota
	MonthOfYear
	DayOfMonth
	DayOfYear
	DayOfWeek
	HourOfDay
	MinuteOfHour
	SecondOfMinute
	NanoOfSecond
)

// rules holds the static metadata of every rule, indexed by Rule.
var rules = [...]struct {
	name      string
	min, max  int64
	fixed     bool // min/max never vary by context
	unit      Unit
	rangeUnit Unit
	hasRange  bool
}{
	Year:           {"Year", MinYearValue, MaxYearValue, true, Years, Forever, false},
	MonthOfYear:    {"MonthOfYear", 1, 12, true, Months, Years, true},
	DayOfMonth:     {"DayOfMonth", 1, 31, false, Days, Months, true},
	DayOfYear:      {"DayOfYear", 1, 366, false, Days, Years, true},
	DayOfWeek:      {"DayOfWeek", 1, 7, true, Days, Weeks, true},
	HourOfDay:      {"HourOfDay", 0, 23, true, Hours, Days, true},
	MinuteOfHour:   {"MinuteOfHour", 0, 59, true, Minutes, Hours, true},
	SecondOfMinute: {"SecondOfMinute", 0, 59, true, Seconds, Minutes, true},
	NanoOfSecond:   {"NanoOfSecond", 0, 999_999_999, true, Nanos, Seconds, true},
}

// Year bounds mirrored here to keep this package free of a dependency on the
// value-type packages.
const (
	MinYearValue = -999_999_999
	MaxYearValue = 999_999_999
)

// Name returns the rule's name, for example "MonthOfYear".
func (r Rule) Name() string { return rules[r].name }

// Min returns the smallest value the field can take in any context.
func (r Rule) Min() int64 { return rules[r].min }

// Max returns the largest value the field can take in any context.
// For context-dependent fields this is the outer maximum, for example 31 for
// DayOfMonth.
func (r Rule) Max() int64 { return rules[r].max }

// IsFixedRange reports whether Min and Max never vary by context.
func (r Rule) IsFixedRange() bool { return rules[r].fixed }

// Unit returns the period unit the field counts.
func (r Rule) Unit() Unit { return rules[r].unit }

// RangeUnit returns the unit that bounds the field's periodicity and false
// for fields without one (Year).
func (r Rule) RangeUnit() (Unit, bool) { return rules[r].rangeUnit, rules[r].hasRange }

// ValueOf extracts the rule's value from c. It returns false if c is nil or
// does not carry the field.
func (r Rule) ValueOf(c Calendrical) (int64, bool) {
	if c == nil {
		return 0, false
	}
	return c.FieldValue(r)
}

// MaxFor returns the largest value the field can take in the context of c.
// The context narrows the range only for DayOfMonth and DayOfYear; for other
// fields MaxFor equals Max. Where the context lacks the fields needed to
// narrow the range, the widest applicable maximum is returned: DayOfMonth
// with a known month but unknown year assumes a leap year.
func (r Rule) MaxFor(c Calendrical) int64 {
	switch r {
	case DayOfMonth:
		month, ok := MonthOfYear.ValueOf(c)
		if !ok {
			return r.Max()
		}
		year, ok := Year.ValueOf(c)
		if !ok {
			// Without a year, assume a leap year for February.
			return int64(daycount.DaysInMonth(2000, time.Month(month)))
		}
		return int64(daycount.DaysInMonth(int(year), time.Month(month)))
	case DayOfYear:
		year, ok := Year.ValueOf(c)
		if !ok {
			return r.Max()
		}
		return int64(daycount.DaysInYear(int(year)))
	default:
		return r.Max()
	}
}
