package civil_test

import (
	"errors"
	"testing"
	"time"

	"github.com/ngrash/go-chrono/civil"
)

func TestNewDate(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		day       int
		wantRange bool
		wantDate  bool
	}{
		{name: "valid", year: 2008, month: time.June, day: 30},
		{name: "leap day", year: 2008, month: time.February, day: 29},
		{name: "negative year", year: -42, month: time.January, day: 1},
		{name: "min year", year: civil.MinYear, month: time.January, day: 1},
		{name: "max year", year: civil.MaxYear, month: time.December, day: 31},
		{name: "year too small", year: civil.MinYear - 1, month: time.January, day: 1, wantRange: true},
		{name: "year too large", year: civil.MaxYear + 1, month: time.January, day: 1, wantRange: true},
		{name: "month zero", year: 2008, month: 0, day: 1, wantRange: true},
		{name: "month thirteen", year: 2008, month: 13, day: 1, wantRange: true},
		{name: "day zero", year: 2008, month: time.June, day: 0, wantRange: true},
		{name: "day thirty-two", year: 2008, month: time.June, day: 32, wantRange: true},
		{name: "june 31", year: 2008, month: time.June, day: 31, wantDate: true},
		{name: "leap day in non-leap year", year: 2007, month: time.February, day: 29, wantDate: true},
		{name: "century non-leap", year: 1900, month: time.February, day: 29, wantDate: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := civil.NewDate(tt.year, tt.month, tt.day)
			if tt.wantRange {
				var rerr *civil.RangeError
				if !errors.As(err, &rerr) {
					t.Fatalf("NewDate(%d, %v, %d) = %v, %v, want RangeError", tt.year, tt.month, tt.day, d, err)
				}
				return
			}
			if tt.wantDate {
				var derr *civil.DateError
				if !errors.As(err, &derr) {
					t.Fatalf("NewDate(%d, %v, %d) = %v, %v, want DateError", tt.year, tt.month, tt.day, d, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewDate(%d, %v, %d): %v", tt.year, tt.month, tt.day, err)
			}
			if d.Year() != tt.year || d.Month() != tt.month || d.Day() != tt.day {
				t.Errorf("NewDate(%d, %v, %d) = %v-%v-%v", tt.year, tt.month, tt.day, d.Year(), d.Month(), d.Day())
			}
		})
	}
}

func TestDateZeroValue(t *testing.T) {
	var d civil.Date
	if d.Year() != 0 || d.Month() != time.January || d.Day() != 1 {
		t.Errorf("zero Date = %v-%v-%v, want 0000-January-1", d.Year(), d.Month(), d.Day())
	}
}

func TestDateEpochDay(t *testing.T) {
	tests := []struct {
		date civil.Date
		want int64
	}{
		{date: civil.MustDate(1970, time.January, 1), want: 0},
		{date: civil.MustDate(1970, time.January, 2), want: 1},
		{date: civil.MustDate(1969, time.December, 31), want: -1},
		{date: civil.MustDate(2008, time.June, 30), want: 14060},
		{date: civil.MustDate(1858, time.November, 17), want: -40587},
		{date: civil.MustDate(0, time.January, 1), want: -719528},
	}
	for _, tt := range tests {
		t.Run(tt.date.String(), func(t *testing.T) {
			if got := tt.date.EpochDay(); got != tt.want {
				t.Errorf("EpochDay() = %d, want %d", got, tt.want)
			}
			back, err := civil.DateOfEpochDay(tt.want)
			if err != nil {
				t.Fatalf("DateOfEpochDay(%d): %v", tt.want, err)
			}
			if back != tt.date {
				t.Errorf("DateOfEpochDay(%d) = %v, want %v", tt.want, back, tt.date)
			}
		})
	}
}

func TestDateModifiedJulianDay(t *testing.T) {
	epoch := civil.MustDate(1858, time.November, 17)
	if got := epoch.ModifiedJulianDay(); got != 0 {
		t.Errorf("ModifiedJulianDay() = %d, want 0", got)
	}
	d, err := civil.DateOfModifiedJulianDay(40587)
	if err != nil {
		t.Fatalf("DateOfModifiedJulianDay(40587): %v", err)
	}
	if want := civil.MustDate(1970, time.January, 1); d != want {
		t.Errorf("DateOfModifiedJulianDay(40587) = %v, want %v", d, want)
	}
}

func TestDatePlusYearsLeapDay(t *testing.T) {
	leap := civil.MustDate(2008, time.February, 29)

	t.Run("default clamps to previous valid", func(t *testing.T) {
		got, err := leap.PlusYears(1)
		if err != nil {
			t.Fatalf("PlusYears(1): %v", err)
		}
		if want := civil.MustDate(2009, time.February, 28); got != want {
			t.Errorf("PlusYears(1) = %v, want %v", got, want)
		}
	})

	t.Run("next valid rolls forward", func(t *testing.T) {
		got, err := leap.PlusYears(1, civil.NextValid)
		if err != nil {
			t.Fatalf("PlusYears(1, NextValid): %v", err)
		}
		if want := civil.MustDate(2009, time.March, 1); got != want {
			t.Errorf("PlusYears(1, NextValid) = %v, want %v", got, want)
		}
	})

	t.Run("strict rejects", func(t *testing.T) {
		_, err := leap.PlusYears(1, civil.Strict)
		var derr *civil.DateError
		if !errors.As(err, &derr) {
			t.Fatalf("PlusYears(1, Strict) error = %v, want DateError", err)
		}
	})

	t.Run("leap to leap needs no repair", func(t *testing.T) {
		got, err := leap.PlusYears(4, civil.Strict)
		if err != nil {
			t.Fatalf("PlusYears(4, Strict): %v", err)
		}
		if want := civil.MustDate(2012, time.February, 29); got != want {
			t.Errorf("PlusYears(4, Strict) = %v, want %v", got, want)
		}
	})
}

func TestDatePlusMonths(t *testing.T) {
	tests := []struct {
		name     string
		date     civil.Date
		months   int
		resolver []civil.DayResolver
		want     civil.Date
	}{
		{name: "simple", date: civil.MustDate(2008, time.June, 30), months: 1, want: civil.MustDate(2008, time.July, 30)},
		{name: "clamp to february", date: civil.MustDate(2008, time.January, 31), months: 1, want: civil.MustDate(2008, time.February, 29)},
		{name: "clamp to non-leap february", date: civil.MustDate(2007, time.January, 31), months: 1, want: civil.MustDate(2007, time.February, 28)},
		{name: "next valid rolls into march", date: civil.MustDate(2007, time.January, 31), months: 1, resolver: []civil.DayResolver{civil.NextValid}, want: civil.MustDate(2007, time.March, 1)},
		{name: "across year end", date: civil.MustDate(2008, time.November, 15), months: 3, want: civil.MustDate(2009, time.February, 15)},
		{name: "negative across year start", date: civil.MustDate(2008, time.February, 15), months: -3, want: civil.MustDate(2007, time.November, 15)},
		{name: "minus twelve", date: civil.MustDate(2008, time.June, 30), months: -12, want: civil.MustDate(2007, time.June, 30)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.date.PlusMonths(tt.months, tt.resolver...)
			if err != nil {
				t.Fatalf("PlusMonths(%d): %v", tt.months, err)
			}
			if got != tt.want {
				t.Errorf("%v.PlusMonths(%d) = %v, want %v", tt.date, tt.months, got, tt.want)
			}
		})
	}
}

func TestDatePlusDaysInverse(t *testing.T) {
	d := civil.MustDate(2008, time.June, 30)
	for _, days := range []int64{0, 1, 30, 365, 366, 10000, -1, -365, -10000} {
		moved, err := d.PlusDays(days)
		if err != nil {
			t.Fatalf("PlusDays(%d): %v", days, err)
		}
		back, err := moved.MinusDays(days)
		if err != nil {
			t.Fatalf("MinusDays(%d): %v", days, err)
		}
		if back != d {
			t.Errorf("PlusDays(%d) then MinusDays(%d) = %v, want %v", days, days, back, d)
		}
	}
}

func TestDatePlusDaysRange(t *testing.T) {
	d := civil.MustDate(civil.MaxYear, time.December, 31)
	if _, err := d.PlusDays(1); err == nil {
		t.Error("PlusDays(1) beyond the maximum year succeeded")
	}
	if got, err := d.PlusDays(0); err != nil || got != d {
		t.Errorf("PlusDays(0) = %v, %v, want identity", got, err)
	}
}

func TestDateWith(t *testing.T) {
	d := civil.MustDate(2008, time.January, 31)

	got, err := d.WithMonth(time.February)
	if err != nil {
		t.Fatalf("WithMonth: %v", err)
	}
	if want := civil.MustDate(2008, time.February, 29); got != want {
		t.Errorf("WithMonth(February) = %v, want %v", got, want)
	}

	got, err = d.WithDay(15)
	if err != nil {
		t.Fatalf("WithDay: %v", err)
	}
	if want := civil.MustDate(2008, time.January, 15); got != want {
		t.Errorf("WithDay(15) = %v, want %v", got, want)
	}

	if _, err := d.WithDay(32); err == nil {
		t.Error("WithDay(32) succeeded")
	}

	leap := civil.MustDate(2008, time.February, 29)
	got, err = leap.WithYear(2009)
	if err != nil {
		t.Fatalf("WithYear: %v", err)
	}
	if want := civil.MustDate(2009, time.February, 28); got != want {
		t.Errorf("WithYear(2009) = %v, want %v", got, want)
	}

	// Replacing a field with its current value is an identity.
	if got, err := leap.WithYear(2008, civil.Strict); err != nil || got != leap {
		t.Errorf("WithYear(2008, Strict) = %v, %v, want identity", got, err)
	}
}

func TestDateWeekday(t *testing.T) {
	tests := []struct {
		date civil.Date
		want time.Weekday
	}{
		{date: civil.MustDate(1970, time.January, 1), want: time.Thursday},
		{date: civil.MustDate(2008, time.March, 30), want: time.Sunday},
		{date: civil.MustDate(2008, time.October, 26), want: time.Sunday},
		{date: civil.MustDate(2008, time.June, 30), want: time.Monday},
		{date: civil.MustDate(1858, time.November, 17), want: time.Wednesday},
	}
	for _, tt := range tests {
		if got := tt.date.Weekday(); got != tt.want {
			t.Errorf("%v.Weekday() = %v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestDateCompare(t *testing.T) {
	a := civil.MustDate(2008, time.June, 30)
	b := civil.MustDate(2008, time.July, 1)
	if !a.Before(b) || b.Before(a) {
		t.Errorf("Before: %v vs %v", a, b)
	}
	if !b.After(a) || a.After(b) {
		t.Errorf("After: %v vs %v", a, b)
	}
	if a.Compare(a) != 0 {
		t.Errorf("Compare(self) = %d", a.Compare(a))
	}
	neg := civil.MustDate(-1, time.December, 31)
	if !neg.Before(a) {
		t.Errorf("%v should be before %v", neg, a)
	}
}

func TestDateString(t *testing.T) {
	tests := []struct {
		date civil.Date
		want string
	}{
		{date: civil.MustDate(2008, time.June, 30), want: "2008-06-30"},
		{date: civil.MustDate(42, time.January, 2), want: "0042-01-02"},
		{date: civil.MustDate(-42, time.January, 2), want: "-0042-01-02"},
		{date: civil.MustDate(12008, time.June, 30), want: "+12008-06-30"},
	}
	for _, tt := range tests {
		if got := tt.date.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestDateLengthOfMonth(t *testing.T) {
	if got := civil.MustDate(2008, time.February, 1).LengthOfMonth(); got != 29 {
		t.Errorf("leap February LengthOfMonth() = %d, want 29", got)
	}
	if got := civil.MustDate(2007, time.February, 1).LengthOfMonth(); got != 28 {
		t.Errorf("February LengthOfMonth() = %d, want 28", got)
	}
	if !civil.MustDate(2008, time.June, 30).IsLeapYear() {
		t.Error("2008 IsLeapYear() = false")
	}
	if got := civil.MustDate(2008, time.December, 31).DayOfYear(); got != 366 {
		t.Errorf("DayOfYear() = %d, want 366", got)
	}
}
