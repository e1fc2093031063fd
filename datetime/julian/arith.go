// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package julian

import (
	"github.com/PowerStat/DateClass/datetime"
)

// maxDaySpan is the number of days between MinJD and MaxJD.
const maxDaySpan = MaxJD - MinJD

func date(y Year, m, d uint8) Date {
	return Date{year: y, month: Month{month: m, leap: y.IsLeap()}, day: Day(d)}
}

// AddDays returns d + n days.
func (d Date) AddDays(n datetime.Days) (Date, error) {
	if n > maxDaySpan {
		return Date{}, datetime.OutOfRange("year will be > %d", MaxYear)
	}
	days := uint64(n)
	y, m, day := d.year, d.month.Number(), d.day.Number()
	left := uint64(y.DaysInYear()) - uint64(d.DayOfYear()) + 1
	for days >= left {
		days -= left
		if y++; y > MaxYear {
			return Date{}, datetime.OutOfRange("year will be > %d", MaxYear)
		}
		m, day = 1, 1
		left = uint64(y.DaysInYear())
	}
	left = uint64(monthDays(m, y.IsLeap())) - uint64(day) + 1
	for days >= left {
		days -= left
		m++
		day = 1
		left = uint64(monthDays(m, y.IsLeap()))
	}
	return date(y, m, day+uint8(days)), nil
}

// SubDays returns d - n days.
func (d Date) SubDays(n datetime.Days) (Date, error) {
	if n > maxDaySpan {
		return Date{}, datetime.OutOfRange("year will be < %d", MinYear)
	}
	days := uint64(n)
	y, m, day := d.year, d.month.Number(), d.day.Number()
	for doy := uint64(date(y, m, day).DayOfYear()); days >= doy; doy = uint64(y.DaysInYear()) {
		days -= doy
		if y--; y < MinYear {
			return Date{}, datetime.OutOfRange("year will be < %d", MinYear)
		}
		m, day = 12, 31
	}
	for m > 1 && days >= uint64(day) {
		days -= uint64(day)
		m--
		day = monthDays(m, y.IsLeap())
	}
	return date(y, m, day-uint8(days)), nil
}

// AddWeeks returns d + n weeks.
func (d Date) AddWeeks(n datetime.Weeks) (Date, error) {
	days, err := n.Days()
	if err != nil {
		return Date{}, err
	}
	return d.AddDays(days)
}

// SubWeeks returns d - n weeks.
func (d Date) SubWeeks(n datetime.Weeks) (Date, error) {
	days, err := n.Days()
	if err != nil {
		return Date{}, err
	}
	return d.SubDays(days)
}

// AddMonths returns d + n months. The day of the month is unchanged and
// an error is returned if it does not exist in the resulting month.
func (d Date) AddMonths(n datetime.Months) (Date, error) {
	years := datetime.Years(n / 12)
	m := d.month.Number() + uint8(n%12)
	if m > 12 {
		m -= 12
		years++
	}
	y, err := d.year.AddYears(years)
	if err != nil {
		return Date{}, err
	}
	return NewDateYMD(int64(y), m, d.day.Number())
}

// SubMonths returns d - n months. The day of the month is unchanged and
// an error is returned if it does not exist in the resulting month.
func (d Date) SubMonths(n datetime.Months) (Date, error) {
	years := datetime.Years(n / 12)
	m, rem := d.month.Number(), uint8(n%12)
	if m > rem {
		m -= rem
	} else {
		m += 12 - rem
		years++
	}
	y, err := d.year.SubYears(years)
	if err != nil {
		return Date{}, err
	}
	return NewDateYMD(int64(y), m, d.day.Number())
}

// AddYears returns d + n years. An error is returned for 29 February if
// the resulting year is not a leap year.
func (d Date) AddYears(n datetime.Years) (Date, error) {
	y, err := d.year.AddYears(n)
	if err != nil {
		return Date{}, err
	}
	return NewDateYMD(int64(y), d.month.Number(), d.day.Number())
}

// SubYears returns d - n years. An error is returned for 29 February if
// the resulting year is not a leap year.
func (d Date) SubYears(n datetime.Years) (Date, error) {
	y, err := d.year.SubYears(n)
	if err != nil {
		return Date{}, err
	}
	return NewDateYMD(int64(y), d.month.Number(), d.day.Number())
}

// AddDuration adds the years and months of dur followed by its days.
// A day that does not exist in the intermediate month rolls over to the
// first of the following month.
func (d Date) AddDuration(dur datetime.Duration) (Date, error) {
	y, err := d.year.AddYears(dur.Years())
	if err != nil {
		return Date{}, err
	}
	m := d.month.Number() + uint8(dur.Months())
	if m > 12 {
		m -= 12
		if y, err = y.AddYears(1); err != nil {
			return Date{}, err
		}
	}
	day := d.day.Number()
	if day > monthDays(m, y.IsLeap()) {
		// December has 31 days so m is at most 11 here.
		day = 1
		m++
	}
	return date(y, m, day).AddDays(dur.Days())
}

// SubDuration subtracts the years and months of dur followed by its days.
// A day that does not exist in the intermediate month is clamped to the
// last day of that month.
func (d Date) SubDuration(dur datetime.Duration) (Date, error) {
	y, err := d.year.SubYears(dur.Years())
	if err != nil {
		return Date{}, err
	}
	m, months := d.month.Number(), uint8(dur.Months())
	if m > months {
		m -= months
	} else {
		m += 12 - months
		if y, err = y.SubYears(1); err != nil {
			return Date{}, err
		}
	}
	day := min(d.day.Number(), monthDays(m, y.IsLeap()))
	return date(y, m, day).SubDays(dur.Days())
}

// NextWeekday returns the first date after d that falls on wd, or d
// itself if it already falls on wd.
func (d Date) NextWeekday(wd datetime.Weekday) (Date, error) {
	if !wd.Valid() {
		return Date{}, datetime.OutOfRange("weekday is < 1 or > 7")
	}
	return d.AddDays(d.Weekday().DaysUntil(wd))
}

// PrevWeekday returns the last date before d that falls on wd, or d
// itself if it already falls on wd.
func (d Date) PrevWeekday(wd datetime.Weekday) (Date, error) {
	if !wd.Valid() {
		return Date{}, datetime.OutOfRange("weekday is < 1 or > 7")
	}
	return d.SubDays(d.Weekday().DaysSince(wd))
}

// clamped returns the date y-m-day with day reduced to the last day of
// the month if needed.
func clamped(y Year, m, day uint8) Date {
	return date(y, m, min(day, monthDays(m, y.IsLeap())))
}

// Since returns the Duration between d and o, ignoring order. Whole
// years are counted first, then whole months and finally the remaining
// days, clamping the day of the month of the earlier date when it does
// not exist in an intermediate month.
func (d Date) Since(o Date) datetime.Duration {
	from, to := d, o
	if from.After(to) {
		from, to = to, from
	}
	y, m, day := from.year, from.month.Number(), from.day.Number()

	years := int64(to.year - y)
	if years > 0 && clamped(y+Year(years), m, day).After(to) {
		years--
	}
	y += Year(years)

	var months uint64
	for {
		ny, nm := y, m+1
		if nm > 12 {
			ny, nm = y+1, 1
		}
		if ny > MaxYear || clamped(ny, nm, day).After(to) {
			break
		}
		y, m = ny, nm
		months++
	}
	days := DayDiff(clamped(y, m, day), to)
	dur, _ := datetime.NewDuration(datetime.Years(years), datetime.Months(months), days)
	return dur
}
