// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command juliancal performs conversions and arithmetic on dates in the
// proleptic Julian calendar. Dates are written as YYYY-MM-DD.
package main

import (
	"context"
	"io"
	"os"

	"cloudeng.io/cmdutil/subcmd"
)

const spec = `name: juliancal
summary: conversions and arithmetic for dates in the proleptic Julian calendar
commands:
  - name: info
    summary: display the weekday, ISO week, day of year, JD and Easter for each date
    arguments:
      - <date>
      - ...
  - name: fromjd
    summary: display the date for each Julian Day number
    arguments:
      - <jd>
      - ...
  - name: frommjd
    summary: display the date for each Modified Julian Day number
    arguments:
      - <mjd>
      - ...
  - name: easter
    summary: display the date of Easter Sunday for each year
    arguments:
      - <year>
      - ...
  - name: isoweek
    summary: display the date of a weekday within an ISO week of a year
    arguments:
      - <year>
      - <week>
      - <weekday>
  - name: add
    summary: add years, months, weeks and days to each date
    arguments:
      - <date>
      - ...
  - name: sub
    summary: subtract years, months, weeks and days from each date
    arguments:
      - <date>
      - ...
  - name: diff
    summary: display the duration and number of days between two dates
    arguments:
      - <from>
      - <to>
  - name: span
    summary: display the earliest and latest of a set of dates and the duration between them
    arguments:
      - <date>
      - ...
  - name: batch
    summary: run the operations listed in a YAML file
    arguments:
      - <file>
  - name: calendars
    summary: list the calendar systems and whether each is implemented
`

func newCommandSet(out io.Writer) *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(spec)
	a := &app{out: out}

	cmdSet.Set("info").MustRunnerAndFlags(a.info,
		subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("fromjd").MustRunnerAndFlags(a.fromJD,
		subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("frommjd").MustRunnerAndFlags(a.fromMJD,
		subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("easter").MustRunnerAndFlags(a.easter,
		subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("isoweek").MustRunnerAndFlags(a.isoWeek,
		subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("add").MustRunnerAndFlags(a.add,
		subcmd.MustRegisteredFlagSet(&offsetFlags{}))
	cmdSet.Set("sub").MustRunnerAndFlags(a.sub,
		subcmd.MustRegisteredFlagSet(&offsetFlags{}))
	cmdSet.Set("diff").MustRunnerAndFlags(a.diff,
		subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("span").MustRunnerAndFlags(a.span,
		subcmd.MustRegisteredFlagSet(&spanFlags{}))
	cmdSet.Set("batch").MustRunnerAndFlags(a.batch,
		subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("calendars").MustRunnerAndFlags(a.calendars,
		subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	return cmdSet
}

func main() {
	subcmd.Dispatch(context.Background(), newCommandSet(os.Stdout))
}
