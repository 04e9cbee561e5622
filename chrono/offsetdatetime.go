package chrono

import (
	"fmt"
	"time"

	"github.com/ngrash/go-chrono/civil"
	"github.com/ngrash/go-chrono/field"
	"github.com/ngrash/go-chrono/zone"
)

// OffsetDateTime is a date-time with a fixed UTC offset, such as
// 2008-06-30T11:30+01:00. It pins an exact instant without reference to any
// zone rules. Ordering is by instant, not by local date-time: two values with
// different offsets compare equal when they denote the same instant.
type OffsetDateTime struct {
	dt     civil.DateTime
	offset zone.Offset
}

// NewOffsetDateTime combines a local date-time with an offset.
func NewOffsetDateTime(dt civil.DateTime, offset zone.Offset) OffsetDateTime {
	return OffsetDateTime{dt: dt, offset: offset}
}

// OffsetDateTimeOf returns the offset date-time with the given fields,
// validating each component.
func OffsetDateTimeOf(year int, month time.Month, day, hour, minute, second, nano int, offset zone.Offset) (OffsetDateTime, error) {
	dt, err := civil.DateTimeOf(year, month, day, hour, minute, second, nano)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return OffsetDateTime{dt: dt, offset: offset}, nil
}

// OffsetDateTimeOfEpochSecond returns the offset date-time denoting the given
// instant, expressed at the given offset.
func OffsetDateTimeOfEpochSecond(epochSecond int64, nano int, offset zone.Offset) (OffsetDateTime, error) {
	dt, err := civil.DateTimeOfEpochSecond(epochSecond, nano, offset.TotalSeconds())
	if err != nil {
		return OffsetDateTime{}, err
	}
	return OffsetDateTime{dt: dt, offset: offset}, nil
}

// DateTime returns the local date-time part.
func (o OffsetDateTime) DateTime() civil.DateTime { return o.dt }

// Date returns the local date part.
func (o OffsetDateTime) Date() civil.Date { return o.dt.Date() }

// Time returns the local time-of-day part.
func (o OffsetDateTime) Time() civil.Time { return o.dt.Time() }

// Offset returns the UTC offset.
func (o OffsetDateTime) Offset() zone.Offset { return o.offset }

// Year returns the proleptic year.
func (o OffsetDateTime) Year() int { return o.dt.Year() }

// Month returns the month of the year.
func (o OffsetDateTime) Month() time.Month { return o.dt.Month() }

// Day returns the day of the month.
func (o OffsetDateTime) Day() int { return o.dt.Day() }

// Weekday returns the day of the week.
func (o OffsetDateTime) Weekday() time.Weekday { return o.dt.Weekday() }

// Hour returns the hour of the day.
func (o OffsetDateTime) Hour() int { return o.dt.Hour() }

// Minute returns the minute of the hour.
func (o OffsetDateTime) Minute() int { return o.dt.Minute() }

// Second returns the second of the minute.
func (o OffsetDateTime) Second() int { return o.dt.Second() }

// Nano returns the nanosecond of the second.
func (o OffsetDateTime) Nano() int { return o.dt.Nano() }

// EpochSecond returns the instant as seconds since 1970-01-01T00:00:00Z,
// discarding the nanosecond of second.
func (o OffsetDateTime) EpochSecond() int64 {
	return o.dt.EpochSecond(o.offset.TotalSeconds())
}

// WithOffsetSameLocal returns a copy at the given offset keeping the local
// date-time, thereby denoting a different instant.
func (o OffsetDateTime) WithOffsetSameLocal(offset zone.Offset) OffsetDateTime {
	return OffsetDateTime{dt: o.dt, offset: offset}
}

// WithOffsetSameInstant returns a copy at the given offset denoting the same
// instant, adjusting the local date-time by the offset difference.
func (o OffsetDateTime) WithOffsetSameInstant(offset zone.Offset) (OffsetDateTime, error) {
	if offset == o.offset {
		return o, nil
	}
	dt, err := o.dt.PlusSeconds(int64(offset.TotalSeconds() - o.offset.TotalSeconds()))
	if err != nil {
		return OffsetDateTime{}, fmt.Errorf("with offset %v: %w", offset, err)
	}
	return OffsetDateTime{dt: dt, offset: offset}, nil
}

// withDateTime wraps a civil result at the unchanged offset.
func (o OffsetDateTime) withDateTime(dt civil.DateTime, err error) (OffsetDateTime, error) {
	if err != nil {
		return OffsetDateTime{}, err
	}
	return OffsetDateTime{dt: dt, offset: o.offset}, nil
}

// WithYear returns a copy with the year replaced, repairing the day via the
// resolver.
func (o OffsetDateTime) WithYear(year int, resolver ...civil.DayResolver) (OffsetDateTime, error) {
	return o.withDateTime(o.dt.WithYear(year, resolver...))
}

// WithMonth returns a copy with the month replaced.
func (o OffsetDateTime) WithMonth(month time.Month, resolver ...civil.DayResolver) (OffsetDateTime, error) {
	return o.withDateTime(o.dt.WithMonth(month, resolver...))
}

// WithDay returns a copy with the day of month replaced.
func (o OffsetDateTime) WithDay(day int, resolver ...civil.DayResolver) (OffsetDateTime, error) {
	return o.withDateTime(o.dt.WithDay(day, resolver...))
}

// WithHour returns a copy with the hour replaced.
func (o OffsetDateTime) WithHour(hour int) (OffsetDateTime, error) {
	return o.withDateTime(o.dt.WithHour(hour))
}

// WithMinute returns a copy with the minute replaced.
func (o OffsetDateTime) WithMinute(minute int) (OffsetDateTime, error) {
	return o.withDateTime(o.dt.WithMinute(minute))
}

// WithSecond returns a copy with the second replaced.
func (o OffsetDateTime) WithSecond(second int) (OffsetDateTime, error) {
	return o.withDateTime(o.dt.WithSecond(second))
}

// WithNano returns a copy with the nanosecond replaced.
func (o OffsetDateTime) WithNano(nano int) (OffsetDateTime, error) {
	return o.withDateTime(o.dt.WithNano(nano))
}

// PlusYears returns the offset date-time the given number of years later.
func (o OffsetDateTime) PlusYears(years int, resolver ...civil.DayResolver) (OffsetDateTime, error) {
	return o.withDateTime(o.dt.PlusYears(years, resolver...))
}

// PlusMonths returns the offset date-time the given number of months later.
func (o OffsetDateTime) PlusMonths(months int, resolver ...civil.DayResolver) (OffsetDateTime, error) {
	return o.withDateTime(o.dt.PlusMonths(months, resolver...))
}

// PlusWeeks returns the offset date-time the given number of weeks later.
func (o OffsetDateTime) PlusWeeks(weeks int64) (OffsetDateTime, error) {
	return o.withDateTime(o.dt.PlusWeeks(weeks))
}

// PlusDays returns the offset date-time the given number of days later.
func (o OffsetDateTime) PlusDays(days int64) (OffsetDateTime, error) {
	return o.withDateTime(o.dt.PlusDays(days))
}

// PlusHours returns the offset date-time the given number of hours later.
func (o OffsetDateTime) PlusHours(hours int64) (OffsetDateTime, error) {
	return o.withDateTime(o.dt.PlusHours(hours))
}

// PlusMinutes returns the offset date-time the given number of minutes later.
func (o OffsetDateTime) PlusMinutes(minutes int64) (OffsetDateTime, error) {
	return o.withDateTime(o.dt.PlusMinutes(minutes))
}

// PlusSeconds returns the offset date-time the given number of seconds later.
func (o OffsetDateTime) PlusSeconds(seconds int64) (OffsetDateTime, error) {
	return o.withDateTime(o.dt.PlusSeconds(seconds))
}

// PlusNanos returns the offset date-time the given number of nanoseconds
// later.
func (o OffsetDateTime) PlusNanos(nanos int64) (OffsetDateTime, error) {
	return o.withDateTime(o.dt.PlusNanos(nanos))
}

// MinusYears returns the offset date-time the given number of years earlier.
func (o OffsetDateTime) MinusYears(years int, resolver ...civil.DayResolver) (OffsetDateTime, error) {
	return o.PlusYears(-years, resolver...)
}

// MinusMonths returns the offset date-time the given number of months
// earlier.
func (o OffsetDateTime) MinusMonths(months int, resolver ...civil.DayResolver) (OffsetDateTime, error) {
	return o.PlusMonths(-months, resolver...)
}

// MinusWeeks returns the offset date-time the given number of weeks earlier.
func (o OffsetDateTime) MinusWeeks(weeks int64) (OffsetDateTime, error) { return o.PlusWeeks(-weeks) }

// MinusDays returns the offset date-time the given number of days earlier.
func (o OffsetDateTime) MinusDays(days int64) (OffsetDateTime, error) { return o.PlusDays(-days) }

// MinusHours returns the offset date-time the given number of hours earlier.
func (o OffsetDateTime) MinusHours(hours int64) (OffsetDateTime, error) { return o.PlusHours(-hours) }

// MinusMinutes returns the offset date-time the given number of minutes
// earlier.
func (o OffsetDateTime) MinusMinutes(minutes int64) (OffsetDateTime, error) {
	return o.PlusMinutes(-minutes)
}

// MinusSeconds returns the offset date-time the given number of seconds
// earlier.
func (o OffsetDateTime) MinusSeconds(seconds int64) (OffsetDateTime, error) {
	return o.PlusSeconds(-seconds)
}

// MinusNanos returns the offset date-time the given number of nanoseconds
// earlier.
func (o OffsetDateTime) MinusNanos(nanos int64) (OffsetDateTime, error) { return o.PlusNanos(-nanos) }

// Compare orders offset date-times by instant. 2008-06-30T11:30+01:00 and
// 2008-06-30T12:30+02:00 compare equal.
func (o OffsetDateTime) Compare(p OffsetDateTime) int {
	a, b := o.EpochSecond(), p.EpochSecond()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	switch {
	case o.Nano() < p.Nano():
		return -1
	case o.Nano() > p.Nano():
		return 1
	default:
		return 0
	}
}

// Before reports whether o denotes an earlier instant than p.
func (o OffsetDateTime) Before(p OffsetDateTime) bool { return o.Compare(p) < 0 }

// After reports whether o denotes a later instant than p.
func (o OffsetDateTime) After(p OffsetDateTime) bool { return o.Compare(p) > 0 }

// FieldValue implements field.Calendrical.
func (o OffsetDateTime) FieldValue(r field.Rule) (int64, bool) {
	return o.dt.FieldValue(r)
}

// String returns the ISO form, for example "2008-06-30T11:30+01:00".
func (o OffsetDateTime) String() string {
	return o.dt.String() + o.offset.String()
}
