package civil_test

import (
	"errors"
	"testing"

	"github.com/ngrash/go-chrono/civil"
)

func TestNewTime(t *testing.T) {
	tests := []struct {
		name                       string
		hour, minute, second, nano int
		wantField                  string
	}{
		{name: "midnight"},
		{name: "last nanosecond", hour: 23, minute: 59, second: 59, nano: 999_999_999},
		{name: "hour 24", hour: 24, wantField: "hour"},
		{name: "hour -1", hour: -1, wantField: "hour"},
		{name: "minute 60", minute: 60, wantField: "minute"},
		{name: "second 60", second: 60, wantField: "second"},
		{name: "nano overflow", nano: 1_000_000_000, wantField: "nano"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm, err := civil.NewTime(tt.hour, tt.minute, tt.second, tt.nano)
			if tt.wantField != "" {
				var rerr *civil.RangeError
				if !errors.As(err, &rerr) || rerr.Field != tt.wantField {
					t.Fatalf("NewTime error = %v, want RangeError on %q", err, tt.wantField)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewTime: %v", err)
			}
			if tm.Hour() != tt.hour || tm.Minute() != tt.minute || tm.Second() != tt.second || tm.Nano() != tt.nano {
				t.Errorf("NewTime = %v", tm)
			}
		})
	}
}

func TestTimeOfNanoOfDay(t *testing.T) {
	tm := civil.MustTime(11, 30, 59, 123_456_789)
	nod := tm.NanoOfDay()
	if want := int64(11*3600+30*60+59)*1_000_000_000 + 123_456_789; nod != want {
		t.Fatalf("NanoOfDay() = %d, want %d", nod, want)
	}
	back, err := civil.TimeOfNanoOfDay(nod)
	if err != nil {
		t.Fatalf("TimeOfNanoOfDay(%d): %v", nod, err)
	}
	if back != tm {
		t.Errorf("TimeOfNanoOfDay(%d) = %v, want %v", nod, back, tm)
	}
	if _, err := civil.TimeOfNanoOfDay(civil.NanosPerDay); err == nil {
		t.Error("TimeOfNanoOfDay(NanosPerDay) succeeded")
	}
	if _, err := civil.TimeOfNanoOfDay(-1); err == nil {
		t.Error("TimeOfNanoOfDay(-1) succeeded")
	}
}

func TestTimePlusHours(t *testing.T) {
	tests := []struct {
		name     string
		time     civil.Time
		hours    int64
		want     civil.Time
		wantDays int64
	}{
		{name: "no wrap", time: civil.MustTime(11, 30, 0, 0), hours: 2, want: civil.MustTime(13, 30, 0, 0)},
		{name: "wrap forward", time: civil.MustTime(23, 0, 0, 0), hours: 2, want: civil.MustTime(1, 0, 0, 0), wantDays: 1},
		{name: "wrap two days", time: civil.MustTime(23, 0, 0, 0), hours: 26, want: civil.MustTime(1, 0, 0, 0), wantDays: 2},
		{name: "wrap backward", time: civil.MustTime(1, 0, 0, 0), hours: -2, want: civil.MustTime(23, 0, 0, 0), wantDays: -1},
		{name: "zero", time: civil.MustTime(11, 30, 0, 0), hours: 0, want: civil.MustTime(11, 30, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, days := tt.time.PlusHours(tt.hours)
			if got != tt.want || days != tt.wantDays {
				t.Errorf("%v.PlusHours(%d) = %v, %d, want %v, %d", tt.time, tt.hours, got, days, tt.want, tt.wantDays)
			}
		})
	}
}

func TestTimePlusMinutesSecondsNanos(t *testing.T) {
	tm := civil.MustTime(23, 59, 59, 999_999_999)

	got, days := tm.PlusMinutes(1)
	if want := civil.MustTime(0, 0, 59, 999_999_999); got != want || days != 1 {
		t.Errorf("PlusMinutes(1) = %v, %d, want %v, 1", got, days, want)
	}

	got, days = tm.PlusSeconds(1)
	if want := civil.MustTime(0, 0, 0, 999_999_999); got != want || days != 1 {
		t.Errorf("PlusSeconds(1) = %v, %d, want %v, 1", got, days, want)
	}

	got, days = tm.PlusNanos(1)
	if want := civil.MustTime(0, 0, 0, 0); got != want || days != 1 {
		t.Errorf("PlusNanos(1) = %v, %d, want %v, 1", got, days, want)
	}

	got, days = civil.MustTime(0, 0, 0, 0).MinusNanos(1)
	if want := civil.MustTime(23, 59, 59, 999_999_999); got != want || days != -1 {
		t.Errorf("MinusNanos(1) = %v, %d, want %v, -1", got, days, want)
	}
}

func TestTimeWith(t *testing.T) {
	tm := civil.MustTime(11, 30, 59, 0)
	got, err := tm.WithHour(23)
	if err != nil || got != civil.MustTime(23, 30, 59, 0) {
		t.Errorf("WithHour(23) = %v, %v", got, err)
	}
	if _, err := tm.WithMinute(60); err == nil {
		t.Error("WithMinute(60) succeeded")
	}
	got, err = tm.WithNano(500)
	if err != nil || got.Nano() != 500 {
		t.Errorf("WithNano(500) = %v, %v", got, err)
	}
}

func TestTimeCompare(t *testing.T) {
	a := civil.MustTime(11, 30, 0, 0)
	b := civil.MustTime(11, 30, 0, 1)
	if !a.Before(b) || !b.After(a) || a.Compare(a) != 0 {
		t.Errorf("ordering of %v and %v", a, b)
	}
}

func TestTimeString(t *testing.T) {
	tests := []struct {
		time civil.Time
		want string
	}{
		{time: civil.Time{}, want: "00:00"},
		{time: civil.MustTime(11, 30, 0, 0), want: "11:30"},
		{time: civil.MustTime(11, 30, 59, 0), want: "11:30:59"},
		{time: civil.MustTime(11, 30, 59, 123_000_000), want: "11:30:59.123"},
		{time: civil.MustTime(11, 30, 59, 123_456_000), want: "11:30:59.123456"},
		{time: civil.MustTime(11, 30, 59, 123_456_789), want: "11:30:59.123456789"},
		{time: civil.MustTime(11, 30, 0, 1), want: "11:30:00.000000001"},
	}
	for _, tt := range tests {
		if got := tt.time.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
