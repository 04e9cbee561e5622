// Package daycount implements day arithmetic on the proleptic Gregorian
// calendar. Dates are identified either by (year, month, day) fields or by an
// epoch day, the number of days since 1970-01-01 with earlier days negative.
// The conversions are exact two-sided inverses for every representable date,
// including dates in years before year 0.
package daycount

import "time"

const (
	// Days from 0000-01-01 to 1970-01-01 (the epoch day zero point).
	days0000To1970 = 719528

	// Days from 1858-11-17, the Modified Julian Day epoch, to 1970-01-01.
	mjdToEpochDay = 40587

	// Days in a full 400-year Gregorian cycle.
	daysPerCycle = 146097
)

// daysBeforeMonth[m-1] is the number of days in a non-leap year before
// month m begins.
var daysBeforeMonth = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// IsLeapYear reports whether year is a leap year: divisible by 4 and either
// not divisible by 100 or divisible by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month of the given year.
func DaysInMonth(year int, month time.Month) int {
	if month == time.February {
		if IsLeapYear(year) {
			return 29
		}
		return 28
	}
	switch month {
	case time.April, time.June, time.September, time.November:
		return 30
	}
	return 31
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DayOfYear returns the one-based ordinal of the given date within its year.
func DayOfYear(year int, month time.Month, day int) int {
	doy := daysBeforeMonth[month-1] + day
	if month > time.February && IsLeapYear(year) {
		doy++
	}
	return doy
}

// ToEpochDay converts calendar fields to an epoch day. The fields must
// describe a valid date.
func ToEpochDay(year int, month time.Month, day int) int64 {
	y := int64(year)
	m := int64(month)
	total := 365 * y
	if y >= 0 {
		total += (y+3)/4 - (y+99)/100 + (y+399)/400
	} else {
		total -= y/-4 - y/-100 + y/-400
	}
	total += (367*m - 362) / 12
	total += int64(day) - 1
	if m > 2 {
		total--
		if !IsLeapYear(year) {
			total--
		}
	}
	return total - days0000To1970
}

// FromEpochDay converts an epoch day back to calendar fields.
func FromEpochDay(epochDay int64) (year int, month time.Month, day int) {
	zeroDay := epochDay + days0000To1970
	// Shift to a cycle that starts in March so the leap day is the last
	// day of the cycle year.
	zeroDay -= 60
	var adjust int64
	if zeroDay < 0 {
		adjustCycles := (zeroDay+1)/daysPerCycle - 1
		adjust = adjustCycles * 400
		zeroDay += -adjustCycles * daysPerCycle
	}
	yearEst := (400*zeroDay + 591) / daysPerCycle
	doyEst := zeroDay - (365*yearEst + yearEst/4 - yearEst/100 + yearEst/400)
	if doyEst < 0 {
		yearEst--
		doyEst = zeroDay - (365*yearEst + yearEst/4 - yearEst/100 + yearEst/400)
	}
	yearEst += adjust
	marchDoy0 := int(doyEst)

	// Convert from the March-based year back to January-based fields.
	marchMonth0 := (marchDoy0*5 + 2) / 153
	month = time.Month((marchMonth0+2)%12 + 1)
	day = marchDoy0 - (marchMonth0*306+5)/10 + 1
	year = int(yearEst + int64(marchMonth0)/10)
	return year, month, day
}

// ToModifiedJulianDay converts an epoch day to a Modified Julian Day,
// the day count with epoch 1858-11-17.
func ToModifiedJulianDay(epochDay int64) int64 {
	return epochDay + mjdToEpochDay
}

// FromModifiedJulianDay converts a Modified Julian Day to an epoch day.
func FromModifiedJulianDay(mjd int64) int64 {
	return mjd - mjdToEpochDay
}

// Weekday returns the day of the week of the given epoch day.
// 1970-01-01 was a Thursday.
func Weekday(epochDay int64) time.Weekday {
	return time.Weekday(FloorMod(epochDay+4, 7))
}

// LastInMonth returns the day of the month of the last occurrence of the
// given weekday in the given month and year.
func LastInMonth(year int, month time.Month, weekday time.Weekday) int {
	last := DaysInMonth(year, month)
	lastWeekday := Weekday(ToEpochDay(year, month, last))
	return last - int(FloorMod(int64(lastWeekday-weekday), 7))
}

// NextOrSame returns the date of the first occurrence of the given weekday on
// or after the given date, which may roll into the following month or year.
func NextOrSame(year int, month time.Month, day int, weekday time.Weekday) (int, time.Month, int) {
	epochDay := ToEpochDay(year, month, day)
	diff := FloorMod(int64(weekday-Weekday(epochDay)), 7)
	return FromEpochDay(epochDay + diff)
}

// PrevOrSame returns the date of the last occurrence of the given weekday on
// or before the given date, which may roll into the preceding month or year.
func PrevOrSame(year int, month time.Month, day int, weekday time.Weekday) (int, time.Month, int) {
	epochDay := ToEpochDay(year, month, day)
	diff := FloorMod(int64(Weekday(epochDay)-weekday), 7)
	return FromEpochDay(epochDay - diff)
}

// FloorDiv returns the floored quotient of a and b, rounding towards
// negative infinity.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FloorMod returns the floored remainder of a and b. The result has the same
// sign as b.
func FloorMod(a, b int64) int64 {
	return a - FloorDiv(a, b)*b
}
