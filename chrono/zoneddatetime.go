package chrono

import (
	"fmt"
	"time"

	"github.com/ngrash/go-chrono/civil"
	"github.com/ngrash/go-chrono/field"
	"github.com/ngrash/go-chrono/zone"
)

// ZonedDateTime is a date-time in a time zone, such as
// 2008-06-30T11:30+02:00[Europe/Paris]. It holds the local date-time, the
// offset the zone's rules resolved it to and the zone itself. Every
// construction and mutation re-resolves the local date-time against the
// rules, so the offset is always valid for the local date-time, except under
// the PreTransition policy inside a gap.
type ZonedDateTime struct {
	dt     civil.DateTime
	offset zone.Offset
	zone   Zone
}

// ZonedDateTimeOf resolves a local date-time in a zone. Without an explicit
// policy, gaps move the local time forward by the gap duration and overlaps
// take the offset after the transition.
func ZonedDateTimeOf(dt civil.DateTime, z Zone, policy ...zone.Policy) (ZonedDateTime, error) {
	p := zone.PostTransition
	if len(policy) > 0 {
		p = policy[0]
	}
	local, off, err := zone.Resolve(dt, z.Rules(), p, nil)
	if err != nil {
		return ZonedDateTime{}, err
	}
	return ZonedDateTime{dt: local, offset: off, zone: z}, nil
}

// ZonedDateTimeOfEpochSecond returns the zoned date-time denoting the given
// instant, expressed in the given zone.
func ZonedDateTimeOfEpochSecond(epochSecond int64, nano int, z Zone) (ZonedDateTime, error) {
	if z.Rules() == nil {
		return ZonedDateTime{}, fmt.Errorf("zoned date-time: zone %q has nil rules", z.ID())
	}
	off := z.Rules().OffsetAt(epochSecond)
	dt, err := civil.DateTimeOfEpochSecond(epochSecond, nano, off.TotalSeconds())
	if err != nil {
		return ZonedDateTime{}, err
	}
	return ZonedDateTime{dt: dt, offset: off, zone: z}, nil
}

// DateTime returns the local date-time part.
func (z ZonedDateTime) DateTime() civil.DateTime { return z.dt }

// Date returns the local date part.
func (z ZonedDateTime) Date() civil.Date { return z.dt.Date() }

// Time returns the local time-of-day part.
func (z ZonedDateTime) Time() civil.Time { return z.dt.Time() }

// Offset returns the resolved UTC offset.
func (z ZonedDateTime) Offset() zone.Offset { return z.offset }

// Zone returns the zone.
func (z ZonedDateTime) Zone() Zone { return z.zone }

// Year returns the proleptic year.
func (z ZonedDateTime) Year() int { return z.dt.Year() }

// Month returns the month of the year.
func (z ZonedDateTime) Month() time.Month { return z.dt.Month() }

// Day returns the day of the month.
func (z ZonedDateTime) Day() int { return z.dt.Day() }

// Weekday returns the day of the week.
func (z ZonedDateTime) Weekday() time.Weekday { return z.dt.Weekday() }

// Hour returns the hour of the day.
func (z ZonedDateTime) Hour() int { return z.dt.Hour() }

// Minute returns the minute of the hour.
func (z ZonedDateTime) Minute() int { return z.dt.Minute() }

// Second returns the second of the minute.
func (z ZonedDateTime) Second() int { return z.dt.Second() }

// Nano returns the nanosecond of the second.
func (z ZonedDateTime) Nano() int { return z.dt.Nano() }

// EpochSecond returns the instant as seconds since 1970-01-01T00:00:00Z,
// discarding the nanosecond of second.
func (z ZonedDateTime) EpochSecond() int64 {
	return z.dt.EpochSecond(z.offset.TotalSeconds())
}

// OffsetDateTime returns the local date-time with its resolved offset,
// dropping the zone.
func (z ZonedDateTime) OffsetDateTime() OffsetDateTime {
	return OffsetDateTime{dt: z.dt, offset: z.offset}
}

// resolveLocal re-resolves an edited local date-time, keeping the current
// offset across an overlap when it remains valid.
func (z ZonedDateTime) resolveLocal(dt civil.DateTime, err error) (ZonedDateTime, error) {
	if err != nil {
		return ZonedDateTime{}, err
	}
	local, off, err := zone.Resolve(dt, z.zone.Rules(), zone.RetainOffset, &z.offset)
	if err != nil {
		return ZonedDateTime{}, err
	}
	return ZonedDateTime{dt: local, offset: off, zone: z.zone}, nil
}

// WithYear returns a copy with the year replaced, repairing the day via the
// resolver and re-resolving against the zone rules.
func (z ZonedDateTime) WithYear(year int, resolver ...civil.DayResolver) (ZonedDateTime, error) {
	return z.resolveLocal(z.dt.WithYear(year, resolver...))
}

// WithMonth returns a copy with the month replaced.
func (z ZonedDateTime) WithMonth(month time.Month, resolver ...civil.DayResolver) (ZonedDateTime, error) {
	return z.resolveLocal(z.dt.WithMonth(month, resolver...))
}

// WithDay returns a copy with the day of month replaced.
func (z ZonedDateTime) WithDay(day int, resolver ...civil.DayResolver) (ZonedDateTime, error) {
	return z.resolveLocal(z.dt.WithDay(day, resolver...))
}

// WithHour returns a copy with the hour replaced.
func (z ZonedDateTime) WithHour(hour int) (ZonedDateTime, error) {
	return z.resolveLocal(z.dt.WithHour(hour))
}

// WithMinute returns a copy with the minute replaced.
func (z ZonedDateTime) WithMinute(minute int) (ZonedDateTime, error) {
	return z.resolveLocal(z.dt.WithMinute(minute))
}

// WithSecond returns a copy with the second replaced.
func (z ZonedDateTime) WithSecond(second int) (ZonedDateTime, error) {
	return z.resolveLocal(z.dt.WithSecond(second))
}

// WithNano returns a copy with the nanosecond replaced.
func (z ZonedDateTime) WithNano(nano int) (ZonedDateTime, error) {
	return z.resolveLocal(z.dt.WithNano(nano))
}

// PlusYears returns the zoned date-time the given number of years later.
func (z ZonedDateTime) PlusYears(years int, resolver ...civil.DayResolver) (ZonedDateTime, error) {
	return z.resolveLocal(z.dt.PlusYears(years, resolver...))
}

// PlusMonths returns the zoned date-time the given number of months later.
func (z ZonedDateTime) PlusMonths(months int, resolver ...civil.DayResolver) (ZonedDateTime, error) {
	return z.resolveLocal(z.dt.PlusMonths(months, resolver...))
}

// PlusWeeks returns the zoned date-time the given number of weeks later.
func (z ZonedDateTime) PlusWeeks(weeks int64) (ZonedDateTime, error) {
	return z.resolveLocal(z.dt.PlusWeeks(weeks))
}

// PlusDays returns the zoned date-time the given number of days later. The
// addition is calendrical: adding one day across a daylight saving change
// keeps the local time of day, so the elapsed physical time may be 23 or 25
// hours.
func (z ZonedDateTime) PlusDays(days int64) (ZonedDateTime, error) {
	return z.resolveLocal(z.dt.PlusDays(days))
}

// PlusHours returns the zoned date-time the given number of hours later.
func (z ZonedDateTime) PlusHours(hours int64) (ZonedDateTime, error) {
	return z.resolveLocal(z.dt.PlusHours(hours))
}

// PlusMinutes returns the zoned date-time the given number of minutes later.
func (z ZonedDateTime) PlusMinutes(minutes int64) (ZonedDateTime, error) {
	return z.resolveLocal(z.dt.PlusMinutes(minutes))
}

// PlusSeconds returns the zoned date-time the given number of seconds later.
func (z ZonedDateTime) PlusSeconds(seconds int64) (ZonedDateTime, error) {
	return z.resolveLocal(z.dt.PlusSeconds(seconds))
}

// PlusNanos returns the zoned date-time the given number of nanoseconds
// later.
func (z ZonedDateTime) PlusNanos(nanos int64) (ZonedDateTime, error) {
	return z.resolveLocal(z.dt.PlusNanos(nanos))
}

// MinusYears returns the zoned date-time the given number of years earlier.
func (z ZonedDateTime) MinusYears(years int, resolver ...civil.DayResolver) (ZonedDateTime, error) {
	return z.PlusYears(-years, resolver...)
}

// MinusMonths returns the zoned date-time the given number of months earlier.
func (z ZonedDateTime) MinusMonths(months int, resolver ...civil.DayResolver) (ZonedDateTime, error) {
	return z.PlusMonths(-months, resolver...)
}

// MinusWeeks returns the zoned date-time the given number of weeks earlier.
func (z ZonedDateTime) MinusWeeks(weeks int64) (ZonedDateTime, error) { return z.PlusWeeks(-weeks) }

// MinusDays returns the zoned date-time the given number of days earlier.
func (z ZonedDateTime) MinusDays(days int64) (ZonedDateTime, error) { return z.PlusDays(-days) }

// MinusHours returns the zoned date-time the given number of hours earlier.
func (z ZonedDateTime) MinusHours(hours int64) (ZonedDateTime, error) { return z.PlusHours(-hours) }

// MinusMinutes returns the zoned date-time the given number of minutes
// earlier.
func (z ZonedDateTime) MinusMinutes(minutes int64) (ZonedDateTime, error) {
	return z.PlusMinutes(-minutes)
}

// MinusSeconds returns the zoned date-time the given number of seconds
// earlier.
func (z ZonedDateTime) MinusSeconds(seconds int64) (ZonedDateTime, error) {
	return z.PlusSeconds(-seconds)
}

// MinusNanos returns the zoned date-time the given number of nanoseconds
// earlier.
func (z ZonedDateTime) MinusNanos(nanos int64) (ZonedDateTime, error) { return z.PlusNanos(-nanos) }

// WithZoneSameLocal returns a copy in the given zone keeping the local
// date-time, re-resolving the offset. The current offset is retained across
// an overlap when the new zone also uses it.
func (z ZonedDateTime) WithZoneSameLocal(nz Zone) (ZonedDateTime, error) {
	if nz == z.zone {
		return z, nil
	}
	local, off, err := zone.Resolve(z.dt, nz.Rules(), zone.RetainOffset, &z.offset)
	if err != nil {
		return ZonedDateTime{}, err
	}
	return ZonedDateTime{dt: local, offset: off, zone: nz}, nil
}

// WithZoneSameInstant returns a copy in the given zone denoting the same
// instant, adjusting the local date-time.
func (z ZonedDateTime) WithZoneSameInstant(nz Zone) (ZonedDateTime, error) {
	if nz == z.zone {
		return z, nil
	}
	return ZonedDateTimeOfEpochSecond(z.EpochSecond(), z.Nano(), nz)
}

// WithEarlierOffsetAtOverlap returns a copy using the earlier of the two
// valid offsets when the local date-time falls into an overlap. Outside an
// overlap it returns the receiver unchanged.
func (z ZonedDateTime) WithEarlierOffsetAtOverlap() ZonedDateTime {
	return z.withOverlapOffset(true)
}

// WithLaterOffsetAtOverlap returns a copy using the later of the two valid
// offsets when the local date-time falls into an overlap. Outside an overlap
// it returns the receiver unchanged.
func (z ZonedDateTime) WithLaterOffsetAtOverlap() ZonedDateTime {
	return z.withOverlapOffset(false)
}

func (z ZonedDateTime) withOverlapOffset(earlier bool) ZonedDateTime {
	rules := z.zone.Rules()
	if rules == nil || rules.IsFixed() {
		return z
	}
	info := rules.OffsetInfoAt(z.dt)
	if info.Kind() != zone.Overlap {
		return z
	}
	// The earlier instant of the repeated window carries the pre-transition
	// offset.
	off := info.OffsetAfter()
	if earlier {
		off = info.OffsetBefore()
	}
	if off == z.offset {
		return z
	}
	return ZonedDateTime{dt: z.dt, offset: off, zone: z.zone}
}

// Compare orders zoned date-times by instant, regardless of zone.
func (z ZonedDateTime) Compare(o ZonedDateTime) int {
	return z.OffsetDateTime().Compare(o.OffsetDateTime())
}

// Before reports whether z denotes an earlier instant than o.
func (z ZonedDateTime) Before(o ZonedDateTime) bool { return z.Compare(o) < 0 }

// After reports whether z denotes a later instant than o.
func (z ZonedDateTime) After(o ZonedDateTime) bool { return z.Compare(o) > 0 }

// FieldValue implements field.Calendrical.
func (z ZonedDateTime) FieldValue(r field.Rule) (int64, bool) {
	return z.dt.FieldValue(r)
}

// String returns the canonical zoned form, for example
// "2008-06-30T11:30+02:00[Europe/Paris]".
func (z ZonedDateTime) String() string {
	return z.dt.String() + z.offset.String() + "[" + z.zone.id + "]"
}
