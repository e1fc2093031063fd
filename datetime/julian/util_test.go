// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package julian_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/PowerStat/DateClass/datetime"
	"github.com/PowerStat/DateClass/datetime/julian"
)

func newDate(t *testing.T, y int64, m, d uint8) julian.Date {
	t.Helper()
	date, err := julian.NewDateYMD(y, m, d)
	if err != nil {
		t.Fatalf("NewDateYMD(%v, %v, %v): %v", y, m, d, err)
	}
	return date
}

func assertDate(t *testing.T, got julian.Date, y int64, m, d uint8) {
	t.Helper()
	if int64(got.Year()) != y || got.Month().Number() != m || got.Day().Number() != d {
		t.Errorf("got %v, want %04d-%02d-%02d", got.Format(), y, m, d)
	}
}

func assertOutOfRange(t *testing.T, err error, msg string) {
	t.Helper()
	if !errors.Is(err, datetime.ErrOutOfRange) {
		t.Errorf("expected an out of range error, got: %v", err)
		return
	}
	if !strings.Contains(err.Error(), msg) {
		t.Errorf("error %q does not contain %q", err, msg)
	}
}

func newDuration(t *testing.T, y, m, d uint64) datetime.Duration {
	t.Helper()
	dur, err := datetime.NewDuration(datetime.Years(y), datetime.Months(m), datetime.Days(d))
	if err != nil {
		t.Fatal(err)
	}
	return dur
}

// isoWeek computes the ISO week of d from the Thursday of its week
// without using Date.Week. ok is false if that Thursday is not
// representable.
func isoWeek(d julian.Date) (week uint8, ok bool) {
	var (
		thu julian.Date
		err error
	)
	wd := d.Weekday()
	if wd <= datetime.Thursday {
		thu, err = d.AddDays(datetime.Days(datetime.Thursday - wd))
	} else {
		thu, err = d.SubDays(datetime.Days(wd - datetime.Thursday))
	}
	if err != nil {
		return 0, false
	}
	return uint8((thu.DayOfYear()-1)/7 + 1), true
}
