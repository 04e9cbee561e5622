package civil

import (
	"time"

	"github.com/ngrash/go-chrono/field"
	"github.com/ngrash/go-chrono/internal/daycount"
)

// DateTime is a Date combined with a Time, such as 2008-06-30T11:30:59.
// Every (valid date, valid time) pair is a valid DateTime; there is no
// cross-field invariant. Time arithmetic that crosses midnight folds the day
// overflow into the date part.
type DateTime struct {
	date Date
	time Time
}

// NewDateTime combines a date and a time.
func NewDateTime(date Date, tod Time) DateTime {
	return DateTime{date: date, time: tod}
}

// DateTimeOf returns the date-time with the given fields, validating each
// component.
func DateTimeOf(year int, month time.Month, day, hour, minute, second, nano int) (DateTime, error) {
	d, err := NewDate(year, month, day)
	if err != nil {
		return DateTime{}, err
	}
	t, err := NewTime(hour, minute, second, nano)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{date: d, time: t}, nil
}

// MustDateTime is like DateTimeOf but panics on error. It is intended for
// constants and tests.
func MustDateTime(year int, month time.Month, day, hour, minute, second, nano int) DateTime {
	dt, err := DateTimeOf(year, month, day, hour, minute, second, nano)
	if err != nil {
		panic(err)
	}
	return dt
}

// DateTimeOfEpochSecond returns the date-time the given number of seconds
// after 1970-01-01T00:00:00 at the given UTC offset, with the given
// nanosecond of second.
func DateTimeOfEpochSecond(epochSecond int64, nano int, offsetSeconds int) (DateTime, error) {
	if nano < 0 || nano > 999_999_999 {
		return DateTime{}, &RangeError{Field: "nano", Value: int64(nano), Min: 0, Max: 999_999_999}
	}
	local := epochSecond + int64(offsetSeconds)
	epochDay := daycount.FloorDiv(local, SecondsPerDay)
	secOfDay := daycount.FloorMod(local, SecondsPerDay)
	d, err := DateOfEpochDay(epochDay)
	if err != nil {
		return DateTime{}, err
	}
	t := timeOfNanoOfDay(secOfDay * NanosPerSecond)
	t.nano = int32(nano)
	return DateTime{date: d, time: t}, nil
}

// Date returns the date part.
func (dt DateTime) Date() Date { return dt.date }

// Time returns the time-of-day part.
func (dt DateTime) Time() Time { return dt.time }

// Year returns the proleptic year.
func (dt DateTime) Year() int { return dt.date.Year() }

// Month returns the month of the year.
func (dt DateTime) Month() time.Month { return dt.date.Month() }

// Day returns the day of the month.
func (dt DateTime) Day() int { return dt.date.Day() }

// Weekday returns the day of the week.
func (dt DateTime) Weekday() time.Weekday { return dt.date.Weekday() }

// Hour returns the hour of the day.
func (dt DateTime) Hour() int { return dt.time.Hour() }

// Minute returns the minute of the hour.
func (dt DateTime) Minute() int { return dt.time.Minute() }

// Second returns the second of the minute.
func (dt DateTime) Second() int { return dt.time.Second() }

// Nano returns the nanosecond of the second.
func (dt DateTime) Nano() int { return dt.time.Nano() }

// EpochSecond returns the number of seconds since 1970-01-01T00:00:00 at the
// given UTC offset, discarding the nanosecond of second.
func (dt DateTime) EpochSecond(offsetSeconds int) int64 {
	return dt.date.EpochDay()*SecondsPerDay + int64(dt.time.SecondOfDay()) - int64(offsetSeconds)
}

// WithDate returns a copy with the date part replaced.
func (dt DateTime) WithDate(d Date) DateTime { return DateTime{date: d, time: dt.time} }

// WithTime returns a copy with the time part replaced.
func (dt DateTime) WithTime(t Time) DateTime { return DateTime{date: dt.date, time: t} }

// WithYear returns a copy with the year replaced, repairing the day via the
// resolver.
func (dt DateTime) WithYear(year int, resolver ...DayResolver) (DateTime, error) {
	d, err := dt.date.WithYear(year, resolver...)
	if err != nil {
		return DateTime{}, err
	}
	return dt.WithDate(d), nil
}

// WithMonth returns a copy with the month replaced, repairing the day via
// the resolver.
func (dt DateTime) WithMonth(month time.Month, resolver ...DayResolver) (DateTime, error) {
	d, err := dt.date.WithMonth(month, resolver...)
	if err != nil {
		return DateTime{}, err
	}
	return dt.WithDate(d), nil
}

// WithDay returns a copy with the day of month replaced.
func (dt DateTime) WithDay(day int, resolver ...DayResolver) (DateTime, error) {
	d, err := dt.date.WithDay(day, resolver...)
	if err != nil {
		return DateTime{}, err
	}
	return dt.WithDate(d), nil
}

// WithHour returns a copy with the hour replaced.
func (dt DateTime) WithHour(hour int) (DateTime, error) {
	t, err := dt.time.WithHour(hour)
	if err != nil {
		return DateTime{}, err
	}
	return dt.WithTime(t), nil
}

// WithMinute returns a copy with the minute replaced.
func (dt DateTime) WithMinute(minute int) (DateTime, error) {
	t, err := dt.time.WithMinute(minute)
	if err != nil {
		return DateTime{}, err
	}
	return dt.WithTime(t), nil
}

// WithSecond returns a copy with the second replaced.
func (dt DateTime) WithSecond(second int) (DateTime, error) {
	t, err := dt.time.WithSecond(second)
	if err != nil {
		return DateTime{}, err
	}
	return dt.WithTime(t), nil
}

// WithNano returns a copy with the nanosecond replaced.
func (dt DateTime) WithNano(nano int) (DateTime, error) {
	t, err := dt.time.WithNano(nano)
	if err != nil {
		return DateTime{}, err
	}
	return dt.WithTime(t), nil
}

// PlusYears returns the date-time the given number of years later.
func (dt DateTime) PlusYears(years int, resolver ...DayResolver) (DateTime, error) {
	d, err := dt.date.PlusYears(years, resolver...)
	if err != nil {
		return DateTime{}, err
	}
	return dt.WithDate(d), nil
}

// PlusMonths returns the date-time the given number of months later.
func (dt DateTime) PlusMonths(months int, resolver ...DayResolver) (DateTime, error) {
	d, err := dt.date.PlusMonths(months, resolver...)
	if err != nil {
		return DateTime{}, err
	}
	return dt.WithDate(d), nil
}

// PlusWeeks returns the date-time the given number of weeks later.
func (dt DateTime) PlusWeeks(weeks int64) (DateTime, error) {
	d, err := dt.date.PlusWeeks(weeks)
	if err != nil {
		return DateTime{}, err
	}
	return dt.WithDate(d), nil
}

// PlusDays returns the date-time the given number of days later.
func (dt DateTime) PlusDays(days int64) (DateTime, error) {
	d, err := dt.date.PlusDays(days)
	if err != nil {
		return DateTime{}, err
	}
	return dt.WithDate(d), nil
}

// plusTime folds a wrapped time and its day overflow into a new date-time.
func (dt DateTime) plusTime(t Time, days int64) (DateTime, error) {
	d, err := dt.date.PlusDays(days)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{date: d, time: t}, nil
}

// PlusHours returns the date-time the given number of hours later, crossing
// midnight into neighboring days as needed.
func (dt DateTime) PlusHours(hours int64) (DateTime, error) {
	t, days := dt.time.PlusHours(hours)
	return dt.plusTime(t, days)
}

// PlusMinutes returns the date-time the given number of minutes later.
func (dt DateTime) PlusMinutes(minutes int64) (DateTime, error) {
	t, days := dt.time.PlusMinutes(minutes)
	return dt.plusTime(t, days)
}

// PlusSeconds returns the date-time the given number of seconds later.
func (dt DateTime) PlusSeconds(seconds int64) (DateTime, error) {
	t, days := dt.time.PlusSeconds(seconds)
	return dt.plusTime(t, days)
}

// PlusNanos returns the date-time the given number of nanoseconds later.
func (dt DateTime) PlusNanos(nanos int64) (DateTime, error) {
	t, days := dt.time.PlusNanos(nanos)
	return dt.plusTime(t, days)
}

// MinusYears returns the date-time the given number of years earlier.
func (dt DateTime) MinusYears(years int, resolver ...DayResolver) (DateTime, error) {
	return dt.PlusYears(-years, resolver...)
}

// MinusMonths returns the date-time the given number of months earlier.
func (dt DateTime) MinusMonths(months int, resolver ...DayResolver) (DateTime, error) {
	return dt.PlusMonths(-months, resolver...)
}

// MinusWeeks returns the date-time the given number of weeks earlier.
func (dt DateTime) MinusWeeks(weeks int64) (DateTime, error) { return dt.PlusWeeks(-weeks) }

// MinusDays returns the date-time the given number of days earlier.
func (dt DateTime) MinusDays(days int64) (DateTime, error) { return dt.PlusDays(-days) }

// MinusHours returns the date-time the given number of hours earlier.
func (dt DateTime) MinusHours(hours int64) (DateTime, error) { return dt.PlusHours(-hours) }

// MinusMinutes returns the date-time the given number of minutes earlier.
func (dt DateTime) MinusMinutes(minutes int64) (DateTime, error) { return dt.PlusMinutes(-minutes) }

// MinusSeconds returns the date-time the given number of seconds earlier.
func (dt DateTime) MinusSeconds(seconds int64) (DateTime, error) { return dt.PlusSeconds(-seconds) }

// MinusNanos returns the date-time the given number of nanoseconds earlier.
func (dt DateTime) MinusNanos(nanos int64) (DateTime, error) { return dt.PlusNanos(-nanos) }

// Compare orders date-times by date, then time of day.
func (dt DateTime) Compare(o DateTime) int {
	if c := dt.date.Compare(o.date); c != 0 {
		return c
	}
	return dt.time.Compare(o.time)
}

// Before reports whether dt is before o.
func (dt DateTime) Before(o DateTime) bool { return dt.Compare(o) < 0 }

// After reports whether dt is after o.
func (dt DateTime) After(o DateTime) bool { return dt.Compare(o) > 0 }

// FieldValue implements field.Calendrical, delegating to both parts.
func (dt DateTime) FieldValue(r field.Rule) (int64, bool) {
	if v, ok := dt.date.FieldValue(r); ok {
		return v, true
	}
	return dt.time.FieldValue(r)
}

// String returns the ISO form, for example "2008-06-30T11:30:59".
func (dt DateTime) String() string {
	return dt.date.String() + "T" + dt.time.String()
}
