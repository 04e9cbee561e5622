package zone

import (
	"fmt"
	"time"

	"github.com/ngrash/go-chrono/civil"
	"github.com/ngrash/go-chrono/internal/daycount"
)

// Transition is a change of the wall-clock offset of a zone at a single
// instant, given as seconds since the Unix epoch. If the offset increases the
// transition is a gap (clocks jump forward, local times are skipped); if it
// decreases it is an overlap (clocks fall back, local times repeat).
type Transition struct {
	at     int64
	before Offset
	after  Offset
}

// NewTransition returns the transition at the given Unix instant from one
// offset to another.
func NewTransition(at int64, before, after Offset) Transition {
	return Transition{at: at, before: before, after: after}
}

// Instant returns the Unix second the transition occurs at.
func (t Transition) Instant() int64 { return t.at }

// OffsetBefore returns the offset in force just before the transition.
func (t Transition) OffsetBefore() Offset { return t.before }

// OffsetAfter returns the offset in force at and after the transition.
func (t Transition) OffsetAfter() Offset { return t.after }

// IsGap reports whether the transition skips local times.
func (t Transition) IsGap() bool {
	return t.after.totalSeconds > t.before.totalSeconds
}

// Duration returns the size of the discontinuity in seconds, positive for
// gaps and negative for overlaps.
func (t Transition) Duration() int {
	return t.after.totalSeconds - t.before.totalSeconds
}

// LocalBefore returns the local date-time expression of the transition
// instant using the offset before the transition. For a gap this is the first
// skipped local time; for an overlap it is the end of the repeated window.
func (t Transition) LocalBefore() civil.DateTime {
	return localAt(t.at, t.before)
}

// LocalAfter returns the local date-time expression of the transition
// instant using the offset after the transition. For a gap this is the first
// valid local time after the skipped window.
func (t Transition) LocalAfter() civil.DateTime {
	return localAt(t.at, t.after)
}

// IsValidOffset reports whether the given offset is valid for local
// date-times inside the transition window: never for a gap, and only the two
// surrounding offsets for an overlap.
func (t Transition) IsValidOffset(o Offset) bool {
	if t.IsGap() {
		return false
	}
	return o == t.before || o == t.after
}

func (t Transition) String() string {
	kind := "overlap"
	if t.IsGap() {
		kind = "gap"
	}
	return fmt.Sprintf("transition at %d from %v to %v (%s)", t.at, t.before, t.after, kind)
}

// localAt converts a Unix instant to the local date-time at the given offset.
// Transition instants are minuscule compared to the supported year range, so
// the conversion cannot fail.
func localAt(instant int64, offset Offset) civil.DateTime {
	dt, err := civil.DateTimeOfEpochSecond(instant, 0, offset.TotalSeconds())
	if err != nil {
		panic(fmt.Errorf("transition instant %d out of range: %w", instant, err))
	}
	return dt
}

// TimeForm says how the time-of-day of a transition rule is to be
// interpreted.
type TimeForm int

const (
	// WallClock means local time including any daylight saving.
	WallClock TimeForm = iota
	// StandardTime means local time without daylight saving.
	StandardTime
	// UniversalTime means UTC.
	UniversalTime
)

func (f TimeForm) String() string {
	switch f {
	case WallClock:
		return "WallClock"
	case StandardTime:
		return "StandardTime"
	case UniversalTime:
		return "UniversalTime"
	default:
		return "<UNDEFINED>"
	}
}

// DayForm is the form of the day specification of a transition rule.
type DayForm int

const (
	// DayFormNum is a fixed day of the month.
	DayFormNum DayForm = iota
	// DayFormLast is the last occurrence of a weekday in the month.
	DayFormLast
	// DayFormAfter is the first occurrence of a weekday on or after a
	// day of the month.
	DayFormAfter
	// DayFormBefore is the last occurrence of a weekday on or before a
	// day of the month.
	DayFormBefore
)

func (f DayForm) String() string {
	switch f {
	case DayFormNum:
		return "Num"
	case DayFormLast:
		return "Last"
	case DayFormAfter:
		return "After"
	case DayFormBefore:
		return "Before"
	default:
		return "<UNDEFINED>"
	}
}

// Day specifies the day of the month a transition rule takes effect on.
type Day struct {
	Form    DayForm
	Num     int
	Weekday time.Weekday
}

// NewDayNum returns a fixed day of the month.
func NewDayNum(n int) Day { return Day{Form: DayFormNum, Num: n} }

// NewDayLast returns the last occurrence of the weekday in the month.
func NewDayLast(w time.Weekday) Day { return Day{Form: DayFormLast, Weekday: w} }

// NewDayAfter returns the first occurrence of the weekday on or after the
// given day of the month, which may fall into the following month.
func NewDayAfter(n int, w time.Weekday) Day { return Day{Form: DayFormAfter, Num: n, Weekday: w} }

// NewDayBefore returns the last occurrence of the weekday on or before the
// given day of the month, which may fall into the preceding month.
func NewDayBefore(n int, w time.Weekday) Day { return Day{Form: DayFormBefore, Num: n, Weekday: w} }

// resolve returns the concrete date the day specification selects in the
// given month and year.
func (d Day) resolve(year int, month time.Month) (int, time.Month, int) {
	switch d.Form {
	case DayFormNum:
		return year, month, d.Num
	case DayFormLast:
		return year, month, daycount.LastInMonth(year, month, d.Weekday)
	case DayFormAfter:
		return daycount.NextOrSame(year, month, d.Num, d.Weekday)
	case DayFormBefore:
		return daycount.PrevOrSame(year, month, d.Num, d.Weekday)
	}
	panic(fmt.Errorf("invalid DayForm: %d", d.Form))
}

// TransitionRule describes a transition that recurs once a year, used to
// extend a zone's transition table beyond its last recorded transition.
type TransitionRule struct {
	// Month and Day select the date of the transition within a year.
	Month time.Month
	Day   Day
	// At is the time of day the transition occurs, as seconds after
	// midnight, interpreted according to AtForm.
	At     int
	AtForm TimeForm
	// Standard is the standard offset in force when the rule applies,
	// used to interpret At in StandardTime form.
	Standard Offset
	// Before and After are the wall offsets surrounding the transition.
	Before Offset
	After  Offset
}

// TransitionForYear materializes the rule's transition in the given year.
func (r TransitionRule) TransitionForYear(year int) Transition {
	y, m, d := r.Day.resolve(year, r.Month)
	instant := daycount.ToEpochDay(y, m, d)*int64(civil.SecondsPerDay) + int64(r.At)
	switch r.AtForm {
	case StandardTime:
		instant -= int64(r.Standard.TotalSeconds())
	case WallClock:
		instant -= int64(r.Before.TotalSeconds())
	case UniversalTime:
		// Already UTC.
	}
	return Transition{at: instant, before: r.Before, after: r.After}
}
