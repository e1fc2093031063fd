// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/PowerStat/DateClass/datetime"
	"github.com/PowerStat/DateClass/datetime/daycount"
	"github.com/PowerStat/DateClass/datetime/julian"
)

type dateInfo struct {
	Date        string  `yaml:"date"`
	Weekday     string  `yaml:"weekday"`
	Week        uint8   `yaml:"iso_week"`
	DayOfYear   uint64  `yaml:"day_of_year"`
	DaysInYear  uint64  `yaml:"days_in_year"`
	DaysInMonth uint64  `yaml:"days_in_month"`
	LeapYear    bool    `yaml:"leap_year"`
	JD          *uint64 `yaml:"jd,omitempty"`
	Easter      string  `yaml:"easter"`
}

func (i dateInfo) text() string {
	out := &strings.Builder{}
	fmt.Fprintf(out, "%v weekday=%v week=%v day=%v/%v month-days=%v leap=%v",
		i.Date, i.Weekday, i.Week, i.DayOfYear, i.DaysInYear, i.DaysInMonth, i.LeapYear)
	if i.JD != nil {
		fmt.Fprintf(out, " jd=%v", *i.JD)
	}
	fmt.Fprintf(out, " easter=%v", i.Easter)
	return out.String()
}

type dateResult struct {
	Input   string `yaml:"input,omitempty"`
	Date    string `yaml:"date"`
	Weekday string `yaml:"weekday"`
}

func (r dateResult) text() string {
	if len(r.Input) == 0 {
		return fmt.Sprintf("%v %v", r.Date, r.Weekday)
	}
	return fmt.Sprintf("%v: %v %v", r.Input, r.Date, r.Weekday)
}

func newDateResult(input string, d julian.Date) dateResult {
	return dateResult{Input: input, Date: d.Format(), Weekday: d.Weekday().String()}
}

type diffResult struct {
	From      string `yaml:"from"`
	To        string `yaml:"to"`
	Years     uint64 `yaml:"years"`
	Months    uint64 `yaml:"months"`
	Days      uint64 `yaml:"days"`
	TotalDays uint64 `yaml:"total_days"`
}

func (r diffResult) text() string {
	return fmt.Sprintf("%v %v: %v years %v months %v days (%v days)",
		r.From, r.To, r.Years, r.Months, r.Days, r.TotalDays)
}

func dateInfoFor(d julian.Date) (dateInfo, error) {
	easter, err := julian.Easter(d.Year())
	if err != nil {
		return dateInfo{}, err
	}
	info := dateInfo{
		Date:        d.Format(),
		Weekday:     d.Weekday().String(),
		Week:        d.Week().Number(),
		DayOfYear:   uint64(d.DayOfYear()),
		DaysInYear:  uint64(d.Year().DaysInYear()),
		DaysInMonth: uint64(d.Month().DaysInMonth()),
		LeapYear:    d.Year().IsLeap(),
		Easter:      easter.Format(),
	}
	// Only dates up to the end of 1582 have a JD.
	if jd, err := d.JD(); err == nil {
		v := uint64(jd)
		info.JD = &v
	}
	return info, nil
}

func dateFromJD(jd uint64) (dateResult, error) {
	d, err := julian.DateFromJD(daycount.JD(jd))
	if err != nil {
		return dateResult{}, err
	}
	return newDateResult(fmt.Sprintf("jd %v", jd), d), nil
}

func dateFromMJD(mjd uint64) (dateResult, error) {
	d, err := julian.DateFromMJD(daycount.MJD(mjd))
	if err != nil {
		return dateResult{}, err
	}
	return newDateResult(fmt.Sprintf("mjd %v", mjd), d), nil
}

func easterFor(year int64) (dateResult, error) {
	y, err := julian.NewYear(year)
	if err != nil {
		return dateResult{}, err
	}
	d, err := julian.Easter(y)
	if err != nil {
		return dateResult{}, err
	}
	return newDateResult(fmt.Sprint(year), d), nil
}

func isoWeekDate(year int64, week uint8, weekday string) (dateResult, error) {
	y, err := julian.NewYear(year)
	if err != nil {
		return dateResult{}, err
	}
	w, err := julian.NewWeekInYear(y, week)
	if err != nil {
		return dateResult{}, err
	}
	wd, err := datetime.ParseWeekday(weekday)
	if err != nil {
		return dateResult{}, err
	}
	d, err := julian.FromISOWeek(y, w, wd)
	if err != nil {
		return dateResult{}, err
	}
	return newDateResult(fmt.Sprintf("%v-W%02d-%d", year, week, wd), d), nil
}

// offset represents the amounts added to or subtracted from a date.
type offset struct {
	Years, Months, Weeks, Days uint64
}

// apply adds or subtracts o from d. A single non-zero component is applied
// with the corresponding calendar operation, eg. AddMonths. Weeks and days
// alone are applied as a number of days. Otherwise, o is applied as a
// Duration whose days are the weeks and days combined.
func (o offset) apply(d julian.Date, add bool) (julian.Date, error) {
	switch {
	case o.Months == 0 && o.Weeks == 0 && o.Days == 0:
		if add {
			return d.AddYears(datetime.Years(o.Years))
		}
		return d.SubYears(datetime.Years(o.Years))
	case o.Years == 0 && o.Weeks == 0 && o.Days == 0:
		if add {
			return d.AddMonths(datetime.Months(o.Months))
		}
		return d.SubMonths(datetime.Months(o.Months))
	case o.Years == 0 && o.Months == 0 && o.Days == 0:
		if add {
			return d.AddWeeks(datetime.Weeks(o.Weeks))
		}
		return d.SubWeeks(datetime.Weeks(o.Weeks))
	}
	days, err := datetime.Weeks(o.Weeks).Days()
	if err != nil {
		return julian.Date{}, err
	}
	if days, err = days.Add(datetime.Days(o.Days)); err != nil {
		return julian.Date{}, err
	}
	if o.Years == 0 && o.Months == 0 {
		if add {
			return d.AddDays(days)
		}
		return d.SubDays(days)
	}
	dur, err := datetime.NewDuration(datetime.Years(o.Years), datetime.Months(o.Months), days)
	if err != nil {
		return julian.Date{}, err
	}
	if add {
		return d.AddDuration(dur)
	}
	return d.SubDuration(dur)
}

func applyOffset(date string, o offset, add bool) (dateResult, error) {
	d, err := julian.ParseDate(date)
	if err != nil {
		return dateResult{}, err
	}
	n, err := o.apply(d, add)
	if err != nil {
		return dateResult{}, err
	}
	return newDateResult(d.Format(), n), nil
}

func diffDates(from, to string) (diffResult, error) {
	a, err := julian.ParseDate(from)
	if err != nil {
		return diffResult{}, err
	}
	b, err := julian.ParseDate(to)
	if err != nil {
		return diffResult{}, err
	}
	dur := a.Since(b)
	return diffResult{
		From:      a.Format(),
		To:        b.Format(),
		Years:     uint64(dur.Years()),
		Months:    uint64(dur.Months()),
		Days:      uint64(dur.Days()),
		TotalDays: uint64(julian.DayDiff(a, b)),
	}, nil
}
