// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package julian_test

import (
	"slices"
	"testing"

	"github.com/PowerStat/DateClass/datetime"
	"github.com/PowerStat/DateClass/datetime/daycount"
	"github.com/PowerStat/DateClass/datetime/julian"
)

func TestNewDate(t *testing.T) {
	d := newDate(t, 12, 12, 12)
	if got, want := d.String(), "JulianDate(JulianYear(12), JulianMonth(12), JulianDay(12))"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := d.Format(), "0012-12-12"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	newDate(t, 12, 2, 29)

	for _, tc := range []struct {
		y    int64
		m, d uint8
		msg  string
	}{
		{13, 2, 29, "day is > 28"},
		{12, 4, 31, "day is > 30"},
		{7, 1, 1, "year is < 8 or > 32767"},
		{32768, 1, 1, "year is < 8 or > 32767"},
		{12, 13, 1, "month is < 1 or > 12"},
		{12, 1, 0, "day is < 1 or > 31"},
	} {
		_, err := julian.NewDateYMD(tc.y, tc.m, tc.d)
		assertOutOfRange(t, err, tc.msg)
	}
}

func TestDateFacts(t *testing.T) {
	for _, tc := range []struct {
		y       int64
		m, d    uint8
		weekday datetime.Weekday
		doy     datetime.Days
		week    uint8
	}{
		{8, 1, 1, datetime.Sunday, 1, 52},
		{8, 1, 2, datetime.Monday, 2, 1},
		{8, 1, 7, datetime.Saturday, 7, 1},
		{8, 12, 30, datetime.Sunday, 365, 52},
		{8, 12, 31, datetime.Monday, 366, 1},
		{9, 1, 1, datetime.Tuesday, 1, 1},
		{12, 12, 1, datetime.Thursday, 336, 48},
		{12, 12, 31, datetime.Saturday, 366, 52},
		{13, 3, 1, datetime.Wednesday, 60, 9},
		{1582, 10, 4, datetime.Thursday, 277, 40},
		{32767, 12, 31, datetime.Saturday, 365, 52},
	} {
		d := newDate(t, tc.y, tc.m, tc.d)
		if got, want := d.Weekday(), tc.weekday; got != want {
			t.Errorf("%v: weekday: got %v, want %v", d.Format(), got, want)
		}
		if got, want := d.DayOfYear(), tc.doy; got != want {
			t.Errorf("%v: day of year: got %v, want %v", d.Format(), got, want)
		}
		if got, want := d.Week().Number(), tc.week; got != want {
			t.Errorf("%v: week: got %v, want %v", d.Format(), got, want)
		}
	}
}

func TestDateJD(t *testing.T) {
	for _, tc := range []struct {
		y    int64
		m, d uint8
		jd   daycount.JD
	}{
		{8, 1, 1, 1723980},
		{12, 12, 12, 1725787},
		{1582, 10, 4, 2299160},
	} {
		d := newDate(t, tc.y, tc.m, tc.d)
		jd, err := d.JD()
		if err != nil || jd != tc.jd {
			t.Errorf("%v: got %v, %v, want %v", d.Format(), jd, err, tc.jd)
		}
		fd, err := julian.DateFromJD(tc.jd)
		if err != nil || fd != d {
			t.Errorf("%v: got %v, %v", tc.jd, fd, err)
		}
	}
	_, err := newDate(t, 1583, 1, 1).JD()
	assertOutOfRange(t, err, "year is < 4707 or > 6295")
	// Every date with a JD precedes the MJD epoch.
	_, err = newDate(t, 1582, 12, 31).MJD()
	assertOutOfRange(t, err, "JD must be >= 2400001")

	d, err := julian.DateFromJD(julian.MaxJD)
	if err != nil {
		t.Fatal(err)
	}
	assertDate(t, d, 32767, 12, 31)
	for _, jd := range []daycount.JD{julian.MinJD - 1, julian.MaxJD + 1, 0} {
		_, err := julian.DateFromJD(jd)
		assertOutOfRange(t, err, "jd is < 1723980 or > 13689569")
	}
	d, err = julian.DateFromMJD(0)
	if err != nil {
		t.Fatal(err)
	}
	assertDate(t, d, 1858, 11, 5)
}

func TestDateCompare(t *testing.T) {
	a, b, c := newDate(t, 12, 12, 12), newDate(t, 12, 12, 13), newDate(t, 13, 1, 1)
	if !a.Before(b) || !c.After(b) || a.After(a) || a.Before(a) {
		t.Errorf("Before/After are incorrect")
	}
	dates := []julian.Date{c, a, b}
	slices.SortFunc(dates, julian.Date.Compare)
	if !slices.Equal(dates, []julian.Date{a, b, c}) {
		t.Errorf("got %v", dates)
	}
	if got, want := julian.DayDiff(a, c), datetime.Days(20); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := julian.DayDiff(c, a), datetime.Days(20); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := julian.DayDiff(a, a), datetime.Days(0); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEaster(t *testing.T) {
	for _, tc := range []struct {
		year julian.Year
		m, d uint8
	}{
		{8, 4, 8},
		{1582, 4, 15},
		{2024, 4, 22},
	} {
		e, err := julian.Easter(tc.year)
		if err != nil {
			t.Fatal(err)
		}
		assertDate(t, e, int64(tc.year), tc.m, tc.d)
	}
	for y := julian.Year(julian.MinYear); y <= julian.MaxYear; y += 7 {
		e, err := julian.Easter(y)
		if err != nil {
			t.Fatal(err)
		}
		if got, want := e.Weekday(), datetime.Sunday; got != want {
			t.Errorf("%v: got %v, want %v", e.Format(), got, want)
		}
	}
}

func TestFromISOWeek(t *testing.T) {
	for _, tc := range []struct {
		year julian.Year
		week uint8
		wd   datetime.Weekday
		m, d uint8
	}{
		{8, 1, datetime.Monday, 1, 2},
		{8, 2, datetime.Monday, 1, 9},
		{8, 52, datetime.Sunday, 12, 30},
	} {
		w, _ := julian.NewWeek(tc.week)
		d, err := julian.FromISOWeek(tc.year, w, tc.wd)
		if err != nil {
			t.Fatal(err)
		}
		assertDate(t, d, int64(tc.year), tc.m, tc.d)
	}

	w53, _ := julian.NewWeek(53)
	_, err := julian.FromISOWeek(8, w53, datetime.Monday)
	assertOutOfRange(t, err, "week is < 1 or > 52")
	w1, _ := julian.NewWeek(1)
	_, err = julian.FromISOWeek(8, w1, datetime.Weekday(0))
	assertOutOfRange(t, err, "weekday is < 1 or > 7")

	for y := julian.Year(julian.MinYear); y < 400; y++ {
		for wn := uint8(1); wn <= uint8(y.WeeksInYear()); wn++ {
			w, _ := julian.NewWeekInYear(y, wn)
			for wd := datetime.Monday; wd <= datetime.Sunday; wd++ {
				d, err := julian.FromISOWeek(y, w, wd)
				if err != nil {
					t.Fatalf("%v %v %v: %v", y, wn, wd, err)
				}
				if got, want := d.Week().Number(), wn; got != want {
					t.Errorf("%v: week: got %v, want %v", d.Format(), got, want)
				}
				if got, want := d.Weekday(), wd; got != want {
					t.Errorf("%v: weekday: got %v, want %v", d.Format(), got, want)
				}
			}
		}
	}
}

func TestParseDate(t *testing.T) {
	for _, tc := range []struct {
		in   string
		y    int64
		m, d uint8
	}{
		{"12-12-12", 12, 12, 12},
		{"0012-02-29", 12, 2, 29},
		{"32767-12-31", 32767, 12, 31},
	} {
		d, err := julian.ParseDate(tc.in)
		if err != nil {
			t.Errorf("%v: %v", tc.in, err)
			continue
		}
		assertDate(t, d, tc.y, tc.m, tc.d)
		if got, err := julian.ParseDate(d.Format()); err != nil || got != d {
			t.Errorf("%v: got %v, %v", d.Format(), got, err)
		}
	}
	for _, in := range []string{"", "12", "12-1", "12-1-1-1", "x-1-1", "12-x-1", "12-1-x", "12-1-300"} {
		if _, err := julian.ParseDate(in); err == nil {
			t.Errorf("%q: expected an error", in)
		}
	}
	_, err := julian.ParseDate("13-02-29")
	assertOutOfRange(t, err, "day is > 28")
}

func TestValidate(t *testing.T) {
	if err := julian.Validate(12, 2, 29); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	err := julian.Validate(7, 13, 0)
	for _, msg := range []string{"year is < 8 or > 32767", "month is < 1 or > 12", "day is < 1 or > 31"} {
		assertOutOfRange(t, err, msg)
	}
	err = julian.Validate(13, 2, 29)
	assertOutOfRange(t, err, "day is > 28")
}
