package civil

import (
	"fmt"
	"time"

	"github.com/ngrash/go-chrono/field"
	"github.com/ngrash/go-chrono/internal/daycount"
)

// Date is a calendar date on the proleptic ISO calendar, such as 2008-06-30.
// The zero value is 0000-01-01. Dates are immutable and compare by
// (year, month, day).
type Date struct {
	year  int
	month time.Month // 0 means January, so the zero Date is valid
	day   int        // 0 means the 1st
}

func makeDate(year int, month time.Month, day int) Date {
	return Date{year: year, month: month - 1, day: day - 1}
}

// NewDate returns the date with the given fields. It fails with a RangeError
// if a field is outside its fixed range and with a DateError if the day does
// not exist in the given month and year.
func NewDate(year int, month time.Month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, &RangeError{Field: "year", Value: int64(year), Min: MinYear, Max: MaxYear}
	}
	if month < time.January || month > time.December {
		return Date{}, &RangeError{Field: "month", Value: int64(month), Min: 1, Max: 12}
	}
	if day < 1 || day > 31 {
		return Date{}, &RangeError{Field: "day", Value: int64(day), Min: 1, Max: 31}
	}
	if day > daycount.DaysInMonth(year, month) {
		return Date{}, &DateError{Year: year, Month: month, Day: day}
	}
	return makeDate(year, month, day), nil
}

// MustDate is like NewDate but panics on error. It is intended for
// constants and tests.
func MustDate(year int, month time.Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOfEpochDay returns the date the given number of days after 1970-01-01,
// negative values giving earlier dates. It fails with a RangeError if the
// resulting year is out of range.
func DateOfEpochDay(epochDay int64) (Date, error) {
	year, month, day := daycount.FromEpochDay(epochDay)
	if year < MinYear || year > MaxYear {
		return Date{}, &RangeError{Field: "year", Value: int64(year), Min: MinYear, Max: MaxYear}
	}
	return makeDate(year, month, day), nil
}

// DateOfModifiedJulianDay returns the date the given number of days after
// 1858-11-17, the Modified Julian Day epoch.
func DateOfModifiedJulianDay(mjd int64) (Date, error) {
	return DateOfEpochDay(daycount.FromModifiedJulianDay(mjd))
}

// Year returns the proleptic year.
func (d Date) Year() int { return d.year }

// Month returns the month of the year.
func (d Date) Month() time.Month { return d.month + 1 }

// Day returns the day of the month.
func (d Date) Day() int { return d.day + 1 }

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday {
	return daycount.Weekday(d.EpochDay())
}

// DayOfYear returns the one-based ordinal of the date within its year.
func (d Date) DayOfYear() int {
	return daycount.DayOfYear(d.Year(), d.Month(), d.Day())
}

// IsLeapYear reports whether the date's year is a leap year.
func (d Date) IsLeapYear() bool { return daycount.IsLeapYear(d.year) }

// LengthOfMonth returns the number of days in the date's month.
func (d Date) LengthOfMonth() int { return daycount.DaysInMonth(d.Year(), d.Month()) }

// EpochDay returns the number of days since 1970-01-01.
func (d Date) EpochDay() int64 {
	return daycount.ToEpochDay(d.Year(), d.Month(), d.Day())
}

// ModifiedJulianDay returns the number of days since 1858-11-17.
func (d Date) ModifiedJulianDay() int64 {
	return daycount.ToModifiedJulianDay(d.EpochDay())
}

// resolveDate applies the resolver to a candidate (year, month, day) whose
// year and month are already known to be in range.
func resolveDate(year int, month time.Month, day int, r DayResolver) (Date, error) {
	length := daycount.DaysInMonth(year, month)
	if day <= length {
		return makeDate(year, month, day), nil
	}
	switch r {
	case Strict:
		return Date{}, &DateError{Year: year, Month: month, Day: day}
	case PreviousValid:
		return makeDate(year, month, length), nil
	case NextValid:
		if month == time.December {
			if year+1 > MaxYear {
				return Date{}, &RangeError{Field: "year", Value: int64(year + 1), Min: MinYear, Max: MaxYear}
			}
			return makeDate(year+1, time.January, 1), nil
		}
		return makeDate(year, month+1, 1), nil
	default:
		return Date{}, fmt.Errorf("unknown DayResolver %d", r)
	}
}

// WithYear returns a copy of the date with the year replaced. If the day does
// not exist in the new year, it is repaired by the resolver, which defaults
// to PreviousValid.
func (d Date) WithYear(year int, resolver ...DayResolver) (Date, error) {
	r, err := chooseResolver(resolver)
	if err != nil {
		return Date{}, err
	}
	if year == d.Year() {
		return d, nil
	}
	if year < MinYear || year > MaxYear {
		return Date{}, &RangeError{Field: "year", Value: int64(year), Min: MinYear, Max: MaxYear}
	}
	return resolveDate(year, d.Month(), d.Day(), r)
}

// WithMonth returns a copy of the date with the month replaced, repairing the
// day via the resolver.
func (d Date) WithMonth(month time.Month, resolver ...DayResolver) (Date, error) {
	r, err := chooseResolver(resolver)
	if err != nil {
		return Date{}, err
	}
	if month == d.Month() {
		return d, nil
	}
	if month < time.January || month > time.December {
		return Date{}, &RangeError{Field: "month", Value: int64(month), Min: 1, Max: 12}
	}
	return resolveDate(d.Year(), month, d.Day(), r)
}

// WithDay returns a copy of the date with the day of month replaced,
// repairing an invalid day via the resolver.
func (d Date) WithDay(day int, resolver ...DayResolver) (Date, error) {
	r, err := chooseResolver(resolver)
	if err != nil {
		return Date{}, err
	}
	if day == d.Day() {
		return d, nil
	}
	if day < 1 || day > 31 {
		return Date{}, &RangeError{Field: "day", Value: int64(day), Min: 1, Max: 31}
	}
	return resolveDate(d.Year(), d.Month(), day, r)
}

// PlusYears returns the date the given number of years later, negative for
// earlier. A leap day landing in a non-leap year is repaired by the resolver.
func (d Date) PlusYears(years int, resolver ...DayResolver) (Date, error) {
	r, err := chooseResolver(resolver)
	if err != nil {
		return Date{}, err
	}
	if years == 0 {
		return d, nil
	}
	year := d.year + years
	if year < MinYear || year > MaxYear {
		return Date{}, &RangeError{Field: "year", Value: int64(year), Min: MinYear, Max: MaxYear}
	}
	return resolveDate(year, d.Month(), d.Day(), r)
}

// PlusMonths returns the date the given number of months later, repairing the
// day via the resolver.
func (d Date) PlusMonths(months int, resolver ...DayResolver) (Date, error) {
	r, err := chooseResolver(resolver)
	if err != nil {
		return Date{}, err
	}
	if months == 0 {
		return d, nil
	}
	monthCount := int64(d.year)*12 + int64(d.month) + int64(months)
	year := daycount.FloorDiv(monthCount, 12)
	month := time.Month(daycount.FloorMod(monthCount, 12) + 1)
	if year < MinYear || year > MaxYear {
		return Date{}, &RangeError{Field: "year", Value: year, Min: MinYear, Max: MaxYear}
	}
	return resolveDate(int(year), month, d.Day(), r)
}

// PlusWeeks returns the date the given number of weeks later. Week and day
// arithmetic is exact and needs no resolver.
func (d Date) PlusWeeks(weeks int64) (Date, error) {
	return d.PlusDays(weeks * 7)
}

// PlusDays returns the date the given number of days later.
func (d Date) PlusDays(days int64) (Date, error) {
	if days == 0 {
		return d, nil
	}
	return DateOfEpochDay(d.EpochDay() + days)
}

// MinusYears returns the date the given number of years earlier.
func (d Date) MinusYears(years int, resolver ...DayResolver) (Date, error) {
	return d.PlusYears(-years, resolver...)
}

// MinusMonths returns the date the given number of months earlier.
func (d Date) MinusMonths(months int, resolver ...DayResolver) (Date, error) {
	return d.PlusMonths(-months, resolver...)
}

// MinusWeeks returns the date the given number of weeks earlier.
func (d Date) MinusWeeks(weeks int64) (Date, error) {
	return d.PlusDays(-weeks * 7)
}

// MinusDays returns the date the given number of days earlier.
func (d Date) MinusDays(days int64) (Date, error) {
	return d.PlusDays(-days)
}

// Compare orders dates by (year, month, day). It returns a negative value if
// d is before o, zero if equal and a positive value otherwise.
func (d Date) Compare(o Date) int {
	if d.year != o.year {
		if d.year < o.year {
			return -1
		}
		return 1
	}
	if d.month != o.month {
		if d.month < o.month {
			return -1
		}
		return 1
	}
	if d.day != o.day {
		if d.day < o.day {
			return -1
		}
		return 1
	}
	return 0
}

// Before reports whether d is before o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// After reports whether d is after o.
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

// FieldValue implements field.Calendrical. Time-of-day fields are absent.
func (d Date) FieldValue(r field.Rule) (int64, bool) {
	switch r {
	case field.Year:
		return int64(d.Year()), true
	case field.MonthOfYear:
		return int64(d.Month()), true
	case field.DayOfMonth:
		return int64(d.Day()), true
	case field.DayOfYear:
		return int64(d.DayOfYear()), true
	case field.DayOfWeek:
		return isoDayOfWeek(d.Weekday()), true
	default:
		return 0, false
	}
}

// isoDayOfWeek maps time.Weekday (Sunday = 0) to the ISO numbering
// (Monday = 1 .. Sunday = 7).
func isoDayOfWeek(w time.Weekday) int64 {
	return daycount.FloorMod(int64(w)-1, 7) + 1
}

// String returns the ISO form of the date, for example "2008-06-30".
// Negative years keep their sign and years beyond 9999 gain a plus sign.
func (d Date) String() string {
	return fmt.Sprintf("%s-%02d-%02d", formatYear(d.Year()), d.Month(), d.Day())
}

func formatYear(year int) string {
	sign := ""
	if year < 0 {
		sign = "-"
		year = -year
	} else if year > 9999 {
		sign = "+"
	}
	return fmt.Sprintf("%s%04d", sign, year)
}
