// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package julian

import (
	"context"

	"github.com/PowerStat/DateClass/datetime"
	"github.com/PowerStat/DateClass/datetime/calendars"
	"github.com/PowerStat/DateClass/datetime/daycount"
)

func init() {
	calendars.Register(calendars.Julian, func(context.Context, ...any) (calendars.Calendar, error) {
		return Calendar{}, nil
	})
}

// Calendar implements calendars.Calendar for the proleptic Julian
// calendar.
type Calendar struct{}

// System implements calendars.Calendar.
func (Calendar) System() calendars.System { return calendars.Julian }

// IsLeapYear implements calendars.Calendar.
func (Calendar) IsLeapYear(year int64) bool { return Year(year).IsLeap() }

// DaysInYear implements calendars.Calendar.
func (Calendar) DaysInYear(year int64) (datetime.Days, error) {
	y, err := NewYear(year)
	if err != nil {
		return 0, err
	}
	return y.DaysInYear(), nil
}

// DaysInMonth implements calendars.Calendar.
func (Calendar) DaysInMonth(year int64, month uint8) (datetime.Days, error) {
	y, err := NewYear(year)
	if err != nil {
		return 0, err
	}
	m, err := NewMonthInYear(y, month)
	if err != nil {
		return 0, err
	}
	return m.DaysInMonth(), nil
}

// Weekday implements calendars.Calendar.
func (Calendar) Weekday(year int64, month, day uint8) (datetime.Weekday, error) {
	d, err := NewDateYMD(year, month, day)
	if err != nil {
		return 0, err
	}
	return d.Weekday(), nil
}

// ToJD implements calendars.Calendar.
func (Calendar) ToJD(year int64, month, day uint8) (daycount.JD, error) {
	d, err := NewDateYMD(year, month, day)
	if err != nil {
		return 0, err
	}
	return d.JD()
}

// FromJD implements calendars.Calendar.
func (Calendar) FromJD(jd daycount.JD) (int64, uint8, uint8, error) {
	d, err := DateFromJD(jd)
	if err != nil {
		return 0, 0, 0, err
	}
	return int64(d.year), d.month.Number(), d.day.Number(), nil
}
