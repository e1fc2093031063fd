// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"cloudeng.io/cmdutil/registry"
	"github.com/PowerStat/DateClass/datetime"
	"github.com/PowerStat/DateClass/datetime/calendars"
	"github.com/PowerStat/DateClass/datetime/daycount"
	_ "github.com/PowerStat/DateClass/datetime/julian"
)

func TestSystems(t *testing.T) {
	if got, want := calendars.Julian.String(), "Julian"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendars.System(99).String(), "System(99)"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, s := range calendars.Systems() {
		p, err := calendars.ParseSystem(s.String())
		if err != nil || p != s {
			t.Errorf("got %v, %v, want %v", p, err, s)
		}
	}
	if s, err := calendars.ParseSystem("gregorian"); err != nil || s != calendars.Gregorian {
		t.Errorf("got %v, %v", s, err)
	}
	if _, err := calendars.ParseSystem("mayan"); !errors.Is(err, registry.ErrUnknownKey) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLookup(t *testing.T) {
	ctx := context.Background()
	if got, want := calendars.Registered(), []calendars.System{calendars.Julian}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	_, err := calendars.Lookup(ctx, calendars.Gregorian)
	if !errors.Is(err, registry.ErrUnknownKey) {
		t.Errorf("unexpected error: %v", err)
	}

	cal, err := calendars.Lookup(ctx, calendars.Julian)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cal.System(), calendars.Julian; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !cal.IsLeapYear(12) || cal.IsLeapYear(13) {
		t.Errorf("IsLeapYear is incorrect")
	}
	if n, err := cal.DaysInYear(12); err != nil || n != 366 {
		t.Errorf("got %v, %v", n, err)
	}
	if n, err := cal.DaysInMonth(13, 2); err != nil || n != 28 {
		t.Errorf("got %v, %v", n, err)
	}
	if _, err := cal.DaysInMonth(13, 13); !errors.Is(err, datetime.ErrOutOfRange) {
		t.Errorf("unexpected error: %v", err)
	}
	if wd, err := cal.Weekday(1582, 10, 4); err != nil || wd != datetime.Thursday {
		t.Errorf("got %v, %v", wd, err)
	}
	jd, err := cal.ToJD(8, 1, 1)
	if err != nil || jd != 1723980 {
		t.Errorf("got %v, %v", jd, err)
	}
	y, m, d, err := cal.FromJD(daycount.JD(2299160))
	if err != nil || y != 1582 || m != 10 || d != 4 {
		t.Errorf("got %v-%v-%v, %v", y, m, d, err)
	}
	if _, _, _, err := cal.FromJD(0); !errors.Is(err, datetime.ErrOutOfRange) {
		t.Errorf("unexpected error: %v", err)
	}
}
