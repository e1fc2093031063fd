// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime

import "strings"

// Weekday represents a day of the week using ISO 8601 numbering,
// ie. Monday is 1 and Sunday is 7.
type Weekday uint8

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// Valid returns true if wd is one of Monday through Sunday.
func (wd Weekday) Valid() bool {
	return wd >= Monday && wd <= Sunday
}

func (wd Weekday) String() string {
	if !wd.Valid() {
		return "Weekday(invalid)"
	}
	return weekdayNames[wd-1]
}

// ParseWeekday returns the Weekday for the supplied name, ignoring case,
// or for its number 1-7.
func ParseWeekday(s string) (Weekday, error) {
	for i, n := range weekdayNames {
		if strings.EqualFold(s, n) || strings.EqualFold(s, n[:3]) {
			return Weekday(i + 1), nil
		}
	}
	if len(s) == 1 && s[0] >= '1' && s[0] <= '7' {
		return Weekday(s[0] - '0'), nil
	}
	return 0, OutOfRange("weekday %q is not one of Monday..Sunday or 1..7", s)
}

// Sub returns the number of days between wd and o, ignoring order.
func (wd Weekday) Sub(o Weekday) Days {
	return absDiff(Days(wd), Days(o))
}

// AddDays returns the weekday that falls the supplied number of days
// after wd.
func (wd Weekday) AddDays(d Days) Weekday {
	n := wd + Weekday(d%7)
	if n > Sunday {
		n -= 7
	}
	return n
}

// SubDays returns the weekday that falls the supplied number of days
// before wd.
func (wd Weekday) SubDays(d Days) Weekday {
	n := int(wd) - int(d%7)
	if n <= 0 {
		n += 7
	}
	return Weekday(n)
}

// DaysUntil returns the number of days from wd forward to the next
// occurrence of target, which is zero if they are the same.
func (wd Weekday) DaysUntil(target Weekday) Days {
	if target >= wd {
		return Days(target - wd)
	}
	return Days(7 - wd + target)
}

// DaysSince returns the number of days from the most recent occurrence
// of target back to wd, which is zero if they are the same.
func (wd Weekday) DaysSince(target Weekday) Days {
	if wd >= target {
		return Days(wd - target)
	}
	return Days(7 - target + wd)
}
