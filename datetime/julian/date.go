// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package julian

import (
	"fmt"

	"github.com/PowerStat/DateClass/datetime"
	"github.com/PowerStat/DateClass/datetime/daycount"
)

const (
	// MinJD and MaxJD are the Julian Days of 8-01-01 and 32767-12-31.
	MinJD = 1723980
	MaxJD = 13689569
)

// Date represents a date in the proleptic Julian calendar between
// 8-01-01 and 32767-12-31.
type Date struct {
	year  Year
	month Month
	day   Day
}

// NewDate returns the Date for the supplied year, month and day. The day
// must not exceed the number of days in the month for that year.
func NewDate(year Year, month Month, day Day) (Date, error) {
	if _, err := NewYear(int64(year)); err != nil {
		return Date{}, err
	}
	m, err := NewMonthInYear(year, month.Number())
	if err != nil {
		return Date{}, err
	}
	if n := m.DaysInMonth(); datetime.Days(day) > n {
		return Date{}, datetime.OutOfRange("day is > %d", uint64(n))
	}
	if _, err := NewDay(uint8(day)); err != nil {
		return Date{}, err
	}
	return Date{year: year, month: m, day: day}, nil
}

// NewDateYMD is like NewDate but accepts plain integers.
func NewDateYMD(year int64, month, day uint8) (Date, error) {
	y, err := NewYear(year)
	if err != nil {
		return Date{}, err
	}
	m, err := NewMonthInYear(y, month)
	if err != nil {
		return Date{}, err
	}
	d, err := NewDay(day)
	if err != nil {
		return Date{}, err
	}
	return NewDate(y, m, d)
}

// DateFromJD returns the Date for jd, which must be in the range
// MinJD..MaxJD.
func DateFromJD(jd daycount.JD) (Date, error) {
	if jd < MinJD || jd > MaxJD {
		return Date{}, datetime.OutOfRange("jd is < %d or > %d", MinJD, MaxJD)
	}
	a := uint64(jd) + 1524
	b := uint16((float64(a) - 122.1) / 365.25)
	c := uint16(a - uint64(365.25*float64(b)))
	d := uint16(float64(c) / 30.6001)
	month := d - 13
	if d < 14 {
		month = d - 1
	}
	year := int64(b) - 4715
	if month > 2 {
		year = int64(b) - 4716
	}
	day := c - uint16(30.6001*float64(d))
	return NewDateYMD(year, uint8(month), uint8(day))
}

// DateFromMJD returns the Date for mjd.
func DateFromMJD(mjd daycount.MJD) (Date, error) {
	jd, err := mjd.JD()
	if err != nil {
		return Date{}, err
	}
	return DateFromJD(jd)
}

// Year returns the year of d.
func (d Date) Year() Year { return d.year }

// Month returns the month of d.
func (d Date) Month() Month { return d.month }

// Day returns the day of the month of d.
func (d Date) Day() Day { return d.day }

func (d Date) ymd() (int64, uint8, uint8) {
	return int64(d.year), d.month.Number(), uint8(d.day)
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() datetime.Weekday {
	y, m, day := d.ymd()
	return datetime.Weekday(zeller(y, int64(m), int64(day)))
}

// DayOfYear returns the day within the year of d, 1-366.
func (d Date) DayOfYear() datetime.Days {
	return datetime.Days(daysBeforeMonth(d.month.Number(), d.year.IsLeap())) + datetime.Days(d.day)
}

// Week returns the ISO 8601 week number of d. Days at the start of
// January may belong to the last week of the previous year and days at
// the end of December to week 1 of the following year.
func (d Date) Week() Week {
	first := d.year.FirstWeekday()
	week := (uint64(d.DayOfYear()) - 1 + uint64(first) - 1) / 7
	if first > datetime.Thursday {
		switch {
		case week == 0:
			if d.year == MinYear {
				// 7-12-31 is in week 52 and is not representable.
				return Week{week: 52, max: 53}
			}
			return Date{year: d.year - 1, month: Month{month: 12}, day: 31}.Week()
		case first == datetime.Sunday && d.year.IsLeap() && d.month.Number() == 12 && d.day == 31:
			week = 1
		}
		return Week{week: uint8(week), max: 53}
	}
	if d.month.Number() == 12 && d.day >= 29 {
		if wd := d.Weekday(); uint8(wd) <= uint8(d.day)-28 {
			week = 0
		}
	}
	return Week{week: uint8(week + 1), max: 53}
}

// JD returns the Julian Day of d. Only dates up to the end of 1582 have a
// JD since the ScaligerYear range ends there.
func (d Date) JD() (daycount.JD, error) {
	sy, err := d.year.ScaligerYear()
	if err != nil {
		return 0, err
	}
	return sy.JD() + daycount.JD(d.DayOfYear()-1), nil
}

// MJD returns the Modified Julian Day of d.
func (d Date) MJD() (daycount.MJD, error) {
	jd, err := d.JD()
	if err != nil {
		return 0, err
	}
	return jd.MJD()
}

// Compare returns -1, 0 or +1 as d is before, the same as or after o.
func (d Date) Compare(o Date) int {
	if c := d.year.Compare(o.year); c != 0 {
		return c
	}
	if c := d.month.Compare(o.month); c != 0 {
		return c
	}
	return d.day.Compare(o.day)
}

// Before returns true if d is before o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// After returns true if d is after o.
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

// Format returns d as YYYY-MM-DD.
func (d Date) Format() string {
	y, m, day := d.ymd()
	return fmt.Sprintf("%04d-%02d-%02d", y, m, day)
}

func (d Date) String() string {
	return fmt.Sprintf("JulianDate(%v, %v, %v)", d.year, d.month, d.day)
}

// ordinal returns the number of days from 1-01-01 to d, counting
// 1-01-01 as day 1.
func (d Date) ordinal() int64 {
	y := int64(d.year)
	return 365*(y-1) + (y-1)/4 + int64(d.DayOfYear())
}

// DayDiff returns the number of days between a and b, ignoring order.
func DayDiff(a, b Date) datetime.Days {
	oa, ob := a.ordinal(), b.ordinal()
	if oa > ob {
		return datetime.Days(oa - ob)
	}
	return datetime.Days(ob - oa)
}

// Easter returns the date of Easter Sunday in year y, computed with the
// Julian calendar computus.
func Easter(y Year) (Date, error) {
	yr := int64(y)
	a := (19*(yr%19) + 15) % 30
	b := (2*(yr%4) + 4*(yr%7) - a + 34) % 7
	c := a + b + 114
	return NewDateYMD(yr, uint8(c/31), uint8(c%31+1))
}

// FromISOWeek returns the date of the given weekday in ISO week w of
// year y.
func FromISOWeek(y Year, w Week, wd datetime.Weekday) (Date, error) {
	if !wd.Valid() {
		return Date{}, datetime.OutOfRange("weekday is < 1 or > 7")
	}
	if _, err := NewWeekInYear(y, w.Number()); err != nil {
		return Date{}, err
	}
	first, err := NewDateYMD(int64(y), 1, 1)
	if err != nil {
		return Date{}, err
	}
	var start Date
	if first.Week().Number() > 1 {
		// 1 January belongs to the last week of the previous year.
		if start, err = first.NextWeekday(datetime.Monday); err != nil {
			return Date{}, err
		}
	} else if start, err = first.PrevWeekday(datetime.Monday); err != nil {
		return Date{}, err
	}
	start, err = start.AddDays(datetime.Days(w.Number()-1) * 7)
	if err != nil {
		return Date{}, err
	}
	return start.NextWeekday(wd)
}
