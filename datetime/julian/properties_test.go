// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package julian_test

import (
	"testing"

	"github.com/PowerStat/DateClass/datetime"
	"github.com/PowerStat/DateClass/datetime/daycount"
	"github.com/PowerStat/DateClass/datetime/julian"
)

func jdWeekday(jd daycount.JD) datetime.Weekday {
	return datetime.Weekday(jd%7 + 1)
}

func TestJDRoundTrip(t *testing.T) {
	d := newDate(t, julian.MinYear, 1, 1)
	last := newDate(t, 1582, 12, 31)
	want := daycount.JD(julian.MinJD)
	for {
		jd, err := d.JD()
		if err != nil || jd != want {
			t.Fatalf("%v: got %v, %v, want %v", d.Format(), jd, err, want)
		}
		if got, err := julian.DateFromJD(jd); err != nil || got != d {
			t.Fatalf("%v: got %v, %v, want %v", jd, got, err, d)
		}
		if got, want := d.Weekday(), jdWeekday(jd); got != want {
			t.Fatalf("%v: got %v, want %v", d.Format(), got, want)
		}
		if w, ok := isoWeek(d); ok {
			if got := d.Week().Number(); got != w {
				t.Fatalf("%v: got %v, want %v", d.Format(), got, w)
			}
		}
		if d == last {
			break
		}
		if d, err = d.AddDays(1); err != nil {
			t.Fatal(err)
		}
		want++
	}
}

func TestFromJDFullRange(t *testing.T) {
	const stride = 101
	first := newDate(t, julian.MinYear, 1, 1)
	for jd := daycount.JD(julian.MinJD); jd <= julian.MaxJD; jd += stride {
		d, err := julian.DateFromJD(jd)
		if err != nil {
			t.Fatal(err)
		}
		if got, want := julian.DayDiff(first, d), datetime.Days(jd-julian.MinJD); got != want {
			t.Fatalf("%v: got %v, want %v", d.Format(), got, want)
		}
		if got, want := d.Weekday(), jdWeekday(jd); got != want {
			t.Fatalf("%v: got %v, want %v", d.Format(), got, want)
		}
		if jd+stride > julian.MaxJD {
			break
		}
		next, err := julian.DateFromJD(jd + stride)
		if err != nil {
			t.Fatal(err)
		}
		if got, err := d.AddDays(stride); err != nil || got != next {
			t.Fatalf("%v + %v: got %v, %v, want %v", d.Format(), stride, got, err, next)
		}
		if got, err := next.SubDays(stride); err != nil || got != d {
			t.Fatalf("%v - %v: got %v, %v, want %v", next.Format(), stride, got, err, d)
		}
	}
}

func TestWeekBoundaries(t *testing.T) {
	for y := int64(julian.MinYear); y <= julian.MaxYear; y++ {
		for _, md := range [][2]uint8{{12, 28}, {12, 29}, {12, 30}, {12, 31}, {1, 1}, {1, 2}, {1, 3}, {1, 4}} {
			d := newDate(t, y, md[0], md[1])
			w, ok := isoWeek(d)
			if !ok {
				continue
			}
			if got := d.Week().Number(); got != w {
				t.Errorf("%v: got %v, want %v", d.Format(), got, w)
			}
		}
	}
	if got, want := newDate(t, julian.MinYear, 1, 1).Week().Number(), uint8(52); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSinceAddDuration(t *testing.T) {
	const stride = 37
	for ja := daycount.JD(julian.MinJD); ja < julian.MinJD+3000; ja += stride {
		a, _ := julian.DateFromJD(ja)
		if a.Day() > 28 {
			continue
		}
		for jb := ja; jb < ja+1500; jb += 11 {
			b, _ := julian.DateFromJD(jb)
			dur := a.Since(b)
			if dur.Days() >= 31 {
				t.Fatalf("%v - %v: %v", b.Format(), a.Format(), dur)
			}
			if got, err := a.AddDuration(dur); err != nil || got != b {
				t.Fatalf("%v + %v: got %v, %v, want %v", a.Format(), dur, got, err, b.Format())
			}
			if got := b.Since(a); got != dur {
				t.Fatalf("%v - %v: got %v, want %v", b.Format(), a.Format(), got, dur)
			}
		}
	}
}
