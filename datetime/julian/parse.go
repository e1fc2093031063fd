// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package julian

import (
	"fmt"
	"strconv"

	"cloudeng.io/errors"
	"cloudeng.io/text/textutil"
	"github.com/PowerStat/DateClass/datetime"
)

// ParseDate parses a date of the form YYYY-MM-DD, as returned by
// Date.Format. Leading zeros are optional.
func ParseDate(s string) (Date, error) {
	var fields [3]string
	n := 0
	for i, f := range textutil.SplitString(s, '-') {
		if i >= len(fields) {
			n = i + 1
			break
		}
		fields[i] = f
		n = i + 1
	}
	if n != 3 {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	year, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return Date{}, fmt.Errorf("invalid year in %q: %w", s, err)
	}
	month, err := strconv.ParseUint(fields[1], 10, 8)
	if err != nil {
		return Date{}, fmt.Errorf("invalid month in %q: %w", s, err)
	}
	day, err := strconv.ParseUint(fields[2], 10, 8)
	if err != nil {
		return Date{}, fmt.Errorf("invalid day in %q: %w", s, err)
	}
	if err := Validate(year, uint8(month), uint8(day)); err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return NewDateYMD(year, uint8(month), uint8(day))
}

// Validate reports every problem with the supplied year, month and day
// rather than just the first.
func Validate(year int64, month, day uint8) error {
	var errs errors.M
	y, yerr := NewYear(year)
	errs.Append(yerr)
	m, merr := NewMonth(month)
	errs.Append(merr)
	if _, err := NewDay(day); err != nil {
		errs.Append(err)
	} else if yerr == nil && merr == nil {
		m.leap = y.IsLeap()
		if datetime.Days(day) > m.DaysInMonth() {
			errs.Append(datetime.OutOfRange("day is > %d", uint64(m.DaysInMonth())))
		}
	}
	return errs.Err()
}
