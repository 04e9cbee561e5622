package daycount

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestToEpochDay(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		day   int
		want  int64
	}{
		{1970, time.January, 1, 0},
		{1970, time.January, 2, 1},
		{1969, time.December, 31, -1},
		{1970, time.December, 31, 364},
		{1971, time.January, 1, 365},
		{2000, time.January, 1, 10957},
		{2008, time.June, 30, 14060},
		{1858, time.November, 17, -40587}, // MJD epoch
		{0, time.January, 1, -719528},
		{-1, time.December, 31, -719529},
		{-400, time.January, 1, -865625},
	}
	for _, c := range cases {
		if got := ToEpochDay(c.year, c.month, c.day); got != c.want {
			t.Errorf("ToEpochDay(%d, %v, %d) = %d, want %d", c.year, c.month, c.day, got, c.want)
		}
	}
}

func TestFromEpochDayInverse(t *testing.T) {
	// Scan a contiguous range of epoch days crossing year 0 and the
	// epoch itself and check the round trip both ways.
	for _, start := range []int64{-719700, -40600, -400, 0, 10900, 14000} {
		for d := start; d < start+900; d++ {
			y, m, day := FromEpochDay(d)
			if got := ToEpochDay(y, m, day); got != d {
				t.Fatalf("ToEpochDay(FromEpochDay(%d)) = %d (date %d-%v-%d)", d, got, y, m, day)
			}
		}
	}
}

func TestModifiedJulianDay(t *testing.T) {
	if got := ToModifiedJulianDay(ToEpochDay(1858, time.November, 17)); got != 0 {
		t.Errorf("MJD of 1858-11-17 = %d, want 0", got)
	}
	if got := ToModifiedJulianDay(0); got != 40587 {
		t.Errorf("MJD of epoch day 0 = %d, want 40587", got)
	}
	for _, mjd := range []int64{-100000, -1, 0, 1, 40587, 2400000} {
		if got := ToModifiedJulianDay(FromModifiedJulianDay(mjd)); got != mjd {
			t.Errorf("MJD round trip of %d = %d", mjd, got)
		}
	}
}

func TestIsLeapYear(t *testing.T) {
	cases := []struct {
		year int
		want bool
	}{
		{2000, true},
		{1900, false},
		{2008, true},
		{2009, false},
		{0, true},
		{-4, true},
		{-100, false},
		{-400, true},
	}
	for _, c := range cases {
		if got := IsLeapYear(c.year); got != c.want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", c.year, got, c.want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	if got := DaysInMonth(2008, time.February); got != 29 {
		t.Errorf("DaysInMonth(2008, February) = %d, want 29", got)
	}
	if got := DaysInMonth(2009, time.February); got != 28 {
		t.Errorf("DaysInMonth(2009, February) = %d, want 28", got)
	}
	if got := DaysInMonth(2008, time.April); got != 30 {
		t.Errorf("DaysInMonth(2008, April) = %d, want 30", got)
	}
	if got := DaysInMonth(2008, time.December); got != 31 {
		t.Errorf("DaysInMonth(2008, December) = %d, want 31", got)
	}
}

func TestWeekday(t *testing.T) {
	cases := []struct {
		epochDay int64
		want     time.Weekday
	}{
		{0, time.Thursday},  // 1970-01-01
		{1, time.Friday},    // 1970-01-02
		{-1, time.Wednesday},
		{ToEpochDay(2008, time.June, 30), time.Monday},
		{ToEpochDay(2008, time.March, 30), time.Sunday},
		{ToEpochDay(2008, time.October, 26), time.Sunday},
	}
	for _, c := range cases {
		if got := Weekday(c.epochDay); got != c.want {
			t.Errorf("Weekday(%d) = %v, want %v", c.epochDay, got, c.want)
		}
	}
}

func TestWeekdaySearches(t *testing.T) {
	type date struct {
		Year  int
		Month time.Month
		Day   int
	}

	if got := LastInMonth(2008, time.March, time.Sunday); got != 30 {
		t.Errorf("LastInMonth(2008, March, Sunday) = %d, want 30", got)
	}
	if got := LastInMonth(2008, time.October, time.Sunday); got != 26 {
		t.Errorf("LastInMonth(2008, October, Sunday) = %d, want 26", got)
	}
	if got := LastInMonth(2020, time.February, time.Saturday); got != 29 {
		t.Errorf("LastInMonth(2020, February, Saturday) = %d, want 29", got)
	}

	nextCases := []struct {
		in   date
		wd   time.Weekday
		want date
	}{
		// Exact day already matches.
		{date{2021, time.March, 28}, time.Sunday, date{2021, time.March, 28}},
		// Later the same month.
		{date{2021, time.March, 15}, time.Sunday, date{2021, time.March, 21}},
		// Rolls into the next month.
		{date{2021, time.March, 30}, time.Sunday, date{2021, time.April, 4}},
		// Rolls into the next year.
		{date{2021, time.December, 30}, time.Sunday, date{2022, time.January, 2}},
	}
	for _, c := range nextCases {
		y, m, d := NextOrSame(c.in.Year, c.in.Month, c.in.Day, c.wd)
		got := date{y, m, d}
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("NextOrSame(%+v, %v) mismatch (-want +got):\n%s", c.in, c.wd, diff)
		}
	}

	prevCases := []struct {
		in   date
		wd   time.Weekday
		want date
	}{
		{date{2021, time.March, 28}, time.Sunday, date{2021, time.March, 28}},
		{date{2021, time.March, 15}, time.Sunday, date{2021, time.March, 14}},
		{date{2021, time.March, 5}, time.Sunday, date{2021, time.February, 28}},
		{date{2021, time.January, 2}, time.Sunday, date{2020, time.December, 27}},
	}
	for _, c := range prevCases {
		y, m, d := PrevOrSame(c.in.Year, c.in.Month, c.in.Day, c.wd)
		got := date{y, m, d}
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("PrevOrSame(%+v, %v) mismatch (-want +got):\n%s", c.in, c.wd, diff)
		}
	}
}

func TestFloorDivMod(t *testing.T) {
	cases := []struct {
		a, b     int64
		div, mod int64
	}{
		{7, 3, 2, 1},
		{-7, 3, -3, 2},
		{7, -3, -3, -2},
		{-7, -3, 2, -1},
		{6, 3, 2, 0},
		{-6, 3, -2, 0},
	}
	for _, c := range cases {
		if got := FloorDiv(c.a, c.b); got != c.div {
			t.Errorf("FloorDiv(%d, %d) = %d, want %d", c.a, c.b, got, c.div)
		}
		if got := FloorMod(c.a, c.b); got != c.mod {
			t.Errorf("FloorMod(%d, %d) = %d, want %d", c.a, c.b, got, c.mod)
		}
	}
}
