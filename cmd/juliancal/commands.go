// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"cloudeng.io/algo/container/heap"
	"cloudeng.io/logging/ctxlog"
	"github.com/PowerStat/DateClass/datetime"
	"github.com/PowerStat/DateClass/datetime/calendars"
	"github.com/PowerStat/DateClass/datetime/julian"
)

// each runs fn for every argument and prints the results once all of
// them have succeeded.
func each[T result](ctx context.Context, p *printer, args []string, fn func(string) (T, error)) error {
	results := make([]result, 0, len(args))
	for _, arg := range args {
		r, err := fn(arg)
		if err != nil {
			ctxlog.Logger(ctx).Error("failed", "arg", arg, "error", err)
			return fmt.Errorf("%v: %w", arg, err)
		}
		ctxlog.Logger(ctx).Debug("result", "arg", arg, "result", r)
		results = append(results, r)
	}
	return p.print(results...)
}

func (a *app) info(ctx context.Context, values interface{}, args []string) error {
	ctx, p, done, err := a.setup(ctx, values.(*CommonFlags))
	if err != nil {
		return err
	}
	defer done()
	return each(ctx, p, args, func(arg string) (dateInfo, error) {
		d, err := julian.ParseDate(arg)
		if err != nil {
			return dateInfo{}, err
		}
		return dateInfoFor(d)
	})
}

func (a *app) fromJD(ctx context.Context, values interface{}, args []string) error {
	ctx, p, done, err := a.setup(ctx, values.(*CommonFlags))
	if err != nil {
		return err
	}
	defer done()
	return each(ctx, p, args, func(arg string) (dateResult, error) {
		jd, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return dateResult{}, err
		}
		return dateFromJD(jd)
	})
}

func (a *app) fromMJD(ctx context.Context, values interface{}, args []string) error {
	ctx, p, done, err := a.setup(ctx, values.(*CommonFlags))
	if err != nil {
		return err
	}
	defer done()
	return each(ctx, p, args, func(arg string) (dateResult, error) {
		mjd, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return dateResult{}, err
		}
		return dateFromMJD(mjd)
	})
}

func (a *app) easter(ctx context.Context, values interface{}, args []string) error {
	ctx, p, done, err := a.setup(ctx, values.(*CommonFlags))
	if err != nil {
		return err
	}
	defer done()
	return each(ctx, p, args, func(arg string) (dateResult, error) {
		year, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return dateResult{}, err
		}
		return easterFor(year)
	})
}

func (a *app) isoWeek(ctx context.Context, values interface{}, args []string) error {
	ctx, p, done, err := a.setup(ctx, values.(*CommonFlags))
	if err != nil {
		return err
	}
	defer done()
	year, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid year %q: %w", args[0], err)
	}
	week, err := strconv.ParseUint(args[1], 10, 8)
	if err != nil {
		return fmt.Errorf("invalid week %q: %w", args[1], err)
	}
	r, err := isoWeekDate(year, uint8(week), args[2])
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("isoweek", "year", year, "week", week, "weekday", args[2], "date", r.Date)
	return p.print(r)
}

func (a *app) add(ctx context.Context, values interface{}, args []string) error {
	return a.offset(ctx, values.(*offsetFlags), args, true)
}

func (a *app) sub(ctx context.Context, values interface{}, args []string) error {
	return a.offset(ctx, values.(*offsetFlags), args, false)
}

func (a *app) offset(ctx context.Context, fv *offsetFlags, args []string, add bool) error {
	ctx, p, done, err := a.setup(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer done()
	o := offset{Years: fv.Years, Months: fv.Months, Weeks: fv.Weeks, Days: fv.Days}
	ctx = ctxlog.ContextWith(ctx, "years", o.Years, "months", o.Months, "weeks", o.Weeks, "days", o.Days, "add", add)
	return each(ctx, p, args, func(arg string) (dateResult, error) {
		return applyOffset(arg, o, add)
	})
}

func (a *app) diff(ctx context.Context, values interface{}, args []string) error {
	ctx, p, done, err := a.setup(ctx, values.(*CommonFlags))
	if err != nil {
		return err
	}
	defer done()
	r, err := diffDates(args[0], args[1])
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("diff", "from", r.From, "to", r.To, "days", r.TotalDays)
	return p.print(r)
}

type spanResult struct {
	Earliest  string   `yaml:"earliest"`
	Latest    string   `yaml:"latest"`
	Years     uint64   `yaml:"years"`
	Months    uint64   `yaml:"months"`
	Days      uint64   `yaml:"days"`
	TotalDays uint64   `yaml:"total_days"`
	Sorted    []string `yaml:"sorted,omitempty"`
}

func (r spanResult) text() string {
	s := fmt.Sprintf("earliest=%v latest=%v duration=%vy%vm%vd days=%v",
		r.Earliest, r.Latest, r.Years, r.Months, r.Days, r.TotalDays)
	for _, d := range r.Sorted {
		s += "\n" + d
	}
	return s
}

// spanOf returns the earliest and latest of dates using a min-max heap
// keyed by the number of days since the first supported date.
func spanOf(dates []julian.Date, sorted bool) (spanResult, error) {
	origin, err := julian.NewDateYMD(julian.MinYear, 1, 1)
	if err != nil {
		return spanResult{}, err
	}
	h := heap.NewMinMax(heap.WithSliceCap[datetime.Days, julian.Date](len(dates) + 1))
	for _, d := range dates {
		h.Push(julian.DayDiff(origin, d), d)
	}
	_, earliest := h.PopMin()
	latest := earliest
	if h.Len() > 0 {
		_, latest = h.PopMax()
	}
	dur := earliest.Since(latest)
	r := spanResult{
		Earliest:  earliest.Format(),
		Latest:    latest.Format(),
		Years:     uint64(dur.Years()),
		Months:    uint64(dur.Months()),
		Days:      uint64(dur.Days()),
		TotalDays: uint64(julian.DayDiff(earliest, latest)),
	}
	if sorted {
		r.Sorted = append(r.Sorted, earliest.Format())
		for h.Len() > 0 {
			_, d := h.PopMin()
			r.Sorted = append(r.Sorted, d.Format())
		}
		if len(dates) > 1 {
			r.Sorted = append(r.Sorted, latest.Format())
		}
	}
	return r, nil
}

func (a *app) span(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*spanFlags)
	ctx, p, done, err := a.setup(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer done()
	dates := make([]julian.Date, 0, len(args))
	for _, arg := range args {
		d, err := julian.ParseDate(arg)
		if err != nil {
			return err
		}
		dates = append(dates, d)
	}
	r, err := spanOf(dates, fv.Sorted)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("span", "dates", len(dates), "earliest", r.Earliest, "latest", r.Latest)
	return p.print(r)
}

type calendarInfo struct {
	Name        string `yaml:"name"`
	ID          uint16 `yaml:"id"`
	Implemented bool   `yaml:"implemented"`
}

func (c calendarInfo) text() string {
	status := "not implemented"
	if c.Implemented {
		status = "implemented"
	}
	return fmt.Sprintf("%v (%v): %v", c.Name, c.ID, status)
}

func (a *app) calendars(ctx context.Context, values interface{}, _ []string) error {
	ctx, p, done, err := a.setup(ctx, values.(*CommonFlags))
	if err != nil {
		return err
	}
	defer done()
	registered := calendars.Registered()
	var results []result
	for _, s := range calendars.Systems() {
		implemented := slices.Contains(registered, s)
		if implemented {
			if _, err := calendars.Lookup(ctx, s); err != nil {
				return err
			}
		}
		results = append(results, calendarInfo{Name: s.String(), ID: uint16(s), Implemented: implemented})
	}
	return p.print(results...)
}
