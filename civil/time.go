package civil

import (
	"fmt"

	"github.com/ngrash/go-chrono/field"
	"github.com/ngrash/go-chrono/internal/daycount"
)

// Nanosecond counts used by time-of-day arithmetic.
const (
	NanosPerSecond = int64(1_000_000_000)
	NanosPerMinute = 60 * NanosPerSecond
	NanosPerHour   = 60 * NanosPerMinute
	NanosPerDay    = 24 * NanosPerHour

	SecondsPerDay = 24 * 60 * 60
)

// Time is a wall-clock time of day with nanosecond resolution, such as
// 11:30:59.123456789. It has no date component. The zero value is midnight.
//
// Arithmetic on Time wraps around the 24-hour clock and reports the number
// of days it wrapped, which callers holding a date must fold into it.
type Time struct {
	hour, minute, second int8
	nano                 int32
}

// NewTime returns the time with the given fields. Each field is validated
// independently against its fixed range.
func NewTime(hour, minute, second, nano int) (Time, error) {
	if hour < 0 || hour > 23 {
		return Time{}, &RangeError{Field: "hour", Value: int64(hour), Min: 0, Max: 23}
	}
	if minute < 0 || minute > 59 {
		return Time{}, &RangeError{Field: "minute", Value: int64(minute), Min: 0, Max: 59}
	}
	if second < 0 || second > 59 {
		return Time{}, &RangeError{Field: "second", Value: int64(second), Min: 0, Max: 59}
	}
	if nano < 0 || nano > 999_999_999 {
		return Time{}, &RangeError{Field: "nano", Value: int64(nano), Min: 0, Max: 999_999_999}
	}
	return Time{int8(hour), int8(minute), int8(second), int32(nano)}, nil
}

// MustTime is like NewTime but panics on error. It is intended for
// constants and tests.
func MustTime(hour, minute, second, nano int) Time {
	t, err := NewTime(hour, minute, second, nano)
	if err != nil {
		panic(err)
	}
	return t
}

// TimeOfNanoOfDay returns the time at the given nanosecond of the day.
func TimeOfNanoOfDay(nod int64) (Time, error) {
	if nod < 0 || nod >= NanosPerDay {
		return Time{}, &RangeError{Field: "nano-of-day", Value: nod, Min: 0, Max: NanosPerDay - 1}
	}
	return timeOfNanoOfDay(nod), nil
}

// timeOfNanoOfDay converts without validation. nod must be in [0, NanosPerDay).
func timeOfNanoOfDay(nod int64) Time {
	hour := nod / NanosPerHour
	nod -= hour * NanosPerHour
	minute := nod / NanosPerMinute
	nod -= minute * NanosPerMinute
	second := nod / NanosPerSecond
	nod -= second * NanosPerSecond
	return Time{int8(hour), int8(minute), int8(second), int32(nod)}
}

// Hour returns the hour of the day.
func (t Time) Hour() int { return int(t.hour) }

// Minute returns the minute of the hour.
func (t Time) Minute() int { return int(t.minute) }

// Second returns the second of the minute.
func (t Time) Second() int { return int(t.second) }

// Nano returns the nanosecond of the second.
func (t Time) Nano() int { return int(t.nano) }

// SecondOfDay returns the number of whole seconds since midnight.
func (t Time) SecondOfDay() int {
	return int(t.hour)*3600 + int(t.minute)*60 + int(t.second)
}

// NanoOfDay returns the number of nanoseconds since midnight.
func (t Time) NanoOfDay() int64 {
	return int64(t.SecondOfDay())*NanosPerSecond + int64(t.nano)
}

// WithHour returns a copy of the time with the hour replaced.
func (t Time) WithHour(hour int) (Time, error) {
	return NewTime(hour, t.Minute(), t.Second(), t.Nano())
}

// WithMinute returns a copy of the time with the minute replaced.
func (t Time) WithMinute(minute int) (Time, error) {
	return NewTime(t.Hour(), minute, t.Second(), t.Nano())
}

// WithSecond returns a copy of the time with the second replaced.
func (t Time) WithSecond(second int) (Time, error) {
	return NewTime(t.Hour(), t.Minute(), second, t.Nano())
}

// WithNano returns a copy of the time with the nanosecond replaced.
func (t Time) WithNano(nano int) (Time, error) {
	return NewTime(t.Hour(), t.Minute(), t.Second(), nano)
}

// PlusHours returns the time the given number of hours later, wrapped around
// the 24-hour clock, and the number of whole days the addition crossed.
// Negative additions yield negative day counts.
func (t Time) PlusHours(hours int64) (Time, int64) {
	total := int64(t.hour) + hours
	days := daycount.FloorDiv(total, 24)
	wrapped := t
	wrapped.hour = int8(daycount.FloorMod(total, 24))
	return wrapped, days
}

// PlusMinutes returns the time the given number of minutes later and the day
// overflow.
func (t Time) PlusMinutes(minutes int64) (Time, int64) {
	total := int64(t.hour)*60 + int64(t.minute) + minutes
	days := daycount.FloorDiv(total, 24*60)
	mod := daycount.FloorMod(total, 24*60)
	wrapped := t
	wrapped.hour = int8(mod / 60)
	wrapped.minute = int8(mod % 60)
	return wrapped, days
}

// PlusSeconds returns the time the given number of seconds later and the day
// overflow.
func (t Time) PlusSeconds(seconds int64) (Time, int64) {
	total := int64(t.SecondOfDay()) + seconds
	days := daycount.FloorDiv(total, SecondsPerDay)
	mod := daycount.FloorMod(total, SecondsPerDay)
	wrapped := timeOfNanoOfDay(mod * NanosPerSecond)
	wrapped.nano = t.nano
	return wrapped, days
}

// PlusNanos returns the time the given number of nanoseconds later and the
// day overflow.
func (t Time) PlusNanos(nanos int64) (Time, int64) {
	total := t.NanoOfDay() + nanos
	days := daycount.FloorDiv(total, NanosPerDay)
	return timeOfNanoOfDay(daycount.FloorMod(total, NanosPerDay)), days
}

// MinusHours returns the time the given number of hours earlier and the day
// underflow as a negative count.
func (t Time) MinusHours(hours int64) (Time, int64) { return t.PlusHours(-hours) }

// MinusMinutes returns the time the given number of minutes earlier.
func (t Time) MinusMinutes(minutes int64) (Time, int64) { return t.PlusMinutes(-minutes) }

// MinusSeconds returns the time the given number of seconds earlier.
func (t Time) MinusSeconds(seconds int64) (Time, int64) { return t.PlusSeconds(-seconds) }

// MinusNanos returns the time the given number of nanoseconds earlier.
func (t Time) MinusNanos(nanos int64) (Time, int64) { return t.PlusNanos(-nanos) }

// Compare orders times within the day. It returns a negative value if t is
// before o, zero if equal and a positive value otherwise.
func (t Time) Compare(o Time) int {
	a, b := t.NanoOfDay(), o.NanoOfDay()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Before reports whether t is before o.
func (t Time) Before(o Time) bool { return t.Compare(o) < 0 }

// After reports whether t is after o.
func (t Time) After(o Time) bool { return t.Compare(o) > 0 }

// FieldValue implements field.Calendrical. Date fields are absent.
func (t Time) FieldValue(r field.Rule) (int64, bool) {
	switch r {
	case field.HourOfDay:
		return int64(t.hour), true
	case field.MinuteOfHour:
		return int64(t.minute), true
	case field.SecondOfMinute:
		return int64(t.second), true
	case field.NanoOfSecond:
		return int64(t.nano), true
	default:
		return 0, false
	}
}

// String returns the ISO form of the time. Seconds are omitted when zero
// along with the fraction, and the fraction is rendered with three, six or
// nine digits depending on its precision: "11:30", "11:30:59",
// "11:30:59.123", "11:30:59.123456789".
func (t Time) String() string {
	s := fmt.Sprintf("%02d:%02d", t.hour, t.minute)
	if t.second == 0 && t.nano == 0 {
		return s
	}
	s += fmt.Sprintf(":%02d", t.second)
	switch {
	case t.nano == 0:
	case t.nano%1_000_000 == 0:
		s += fmt.Sprintf(".%03d", t.nano/1_000_000)
	case t.nano%1_000 == 0:
		s += fmt.Sprintf(".%06d", t.nano/1_000)
	default:
		s += fmt.Sprintf(".%09d", t.nano)
	}
	return s
}
