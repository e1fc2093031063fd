// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package julian

import (
	"cmp"
	"fmt"
	"math"

	"github.com/PowerStat/DateClass/datetime"
	"github.com/PowerStat/DateClass/datetime/daycount"
)

const (
	// MinYear and MaxYear bound the years supported.
	MinYear = 8
	MaxYear = 32767

	// ScaligerOffset is the difference between a ScaligerYear and the
	// corresponding Julian Year.
	ScaligerOffset = 4713
)

// Year represents a year in the proleptic Julian calendar.
type Year int64

// NewYear returns the Year for y.
func NewYear(y int64) (Year, error) {
	if y < MinYear || y > MaxYear {
		return 0, datetime.OutOfRange("year is < %d or > %d", MinYear, MaxYear)
	}
	return Year(y), nil
}

// YearFromScaliger returns the Year corresponding to sy.
func YearFromScaliger(sy daycount.ScaligerYear) (Year, error) {
	if sy < MinYear+ScaligerOffset {
		return 0, datetime.OutOfRange("syear must be >= %d", MinYear+ScaligerOffset)
	}
	return NewYear(int64(sy) - ScaligerOffset)
}

// ScaligerYear returns the ScaligerYear for y. Only years up to 1582 have
// a ScaligerYear.
func (y Year) ScaligerYear() (daycount.ScaligerYear, error) {
	return daycount.NewScaligerYear(int64(y) + ScaligerOffset)
}

// IsLeap returns true if y is a leap year. Non-positive years use the
// astronomical offset where 1 BC, 5 BC etc. are leap years.
func (y Year) IsLeap() bool {
	if y <= 0 {
		return (-y)%4 == 1
	}
	return y%4 == 0
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func (y Year) DaysInYear() datetime.Days {
	if y.IsLeap() {
		return 366
	}
	return 365
}

// FirstWeekday returns the weekday of 1 January of y.
func (y Year) FirstWeekday() datetime.Weekday {
	return datetime.Weekday(zeller(int64(y), 1, 1))
}

// WeeksInYear returns the number of ISO weeks in y, which is 53 when the
// year starts on a Thursday, or on a Wednesday in a leap year, and 52
// otherwise.
func (y Year) WeeksInYear() datetime.Weeks {
	switch first := y.FirstWeekday(); {
	case first == datetime.Thursday, y.IsLeap() && first == datetime.Wednesday:
		return 53
	}
	return 52
}

// AddYears returns y + n, which must not exceed MaxYear.
func (y Year) AddYears(n datetime.Years) (Year, error) {
	if uint64(n) > uint64(math.MaxInt64-int64(y)) {
		return 0, datetime.OutOfRange("year will be > MaxInt64")
	}
	r := int64(y) + int64(n)
	if r > MaxYear {
		return 0, datetime.OutOfRange("year will be > %d", MaxYear)
	}
	return Year(r), nil
}

// SubYears returns y - n, which must not be less than MinYear.
func (y Year) SubYears(n datetime.Years) (Year, error) {
	if y < 0 || uint64(n) > uint64(y) {
		return 0, datetime.OutOfRange("year will be < 0")
	}
	r := int64(y) - int64(n)
	if r < MinYear {
		return 0, datetime.OutOfRange("year will be < %d", MinYear)
	}
	return Year(r), nil
}

// Sub returns the number of years between y and o, ignoring order.
func (y Year) Sub(o Year) datetime.Years {
	if y > o {
		return datetime.Years(y - o)
	}
	return datetime.Years(o - y)
}

// Compare returns -1, 0 or +1 as y is less than, equal to or greater than o.
func (y Year) Compare(o Year) int { return cmp.Compare(y, o) }

func (y Year) String() string { return fmt.Sprintf("JulianYear(%d)", int64(y)) }

// Month represents a month, 1-12. A Month created with NewMonthInYear
// records whether its year is a leap year, which determines the length
// of February.
type Month struct {
	month uint8
	leap  bool
}

// NewMonth returns the Month m, assuming a common year.
func NewMonth(m uint8) (Month, error) {
	if m < 1 || m > 12 {
		return Month{}, datetime.OutOfRange("month is < 1 or > 12")
	}
	return Month{month: m}, nil
}

// NewMonthInYear returns the Month m of year y.
func NewMonthInYear(y Year, m uint8) (Month, error) {
	mo, err := NewMonth(m)
	if err != nil {
		return Month{}, err
	}
	mo.leap = y.IsLeap()
	return mo, nil
}

// Number returns the month number, 1-12.
func (m Month) Number() uint8 { return m.month }

// LeapYear returns true if m belongs to a leap year.
func (m Month) LeapYear() bool { return m.leap }

// DaysInMonth returns the number of days in m.
func (m Month) DaysInMonth() datetime.Days {
	if m.month < 1 || m.month > 12 {
		return 0
	}
	return datetime.Days(monthDays(m.month, m.leap))
}

// AddMonths returns m + n, which must not exceed 12.
func (m Month) AddMonths(n datetime.Months) (Month, error) {
	if uint64(n) > uint64(12-m.month) {
		return Month{}, datetime.OutOfRange("month will be > 12")
	}
	return Month{month: m.month + uint8(n), leap: m.leap}, nil
}

// SubMonths returns m - n, which must not be less than 1.
func (m Month) SubMonths(n datetime.Months) (Month, error) {
	if uint64(n) >= uint64(m.month) {
		return Month{}, datetime.OutOfRange("month will be < 1")
	}
	return Month{month: m.month - uint8(n), leap: m.leap}, nil
}

// Sub returns the number of months between m and o, ignoring order.
func (m Month) Sub(o Month) datetime.Months {
	return datetime.Months(m.month).Sub(datetime.Months(o.month))
}

// Compare compares the month numbers of m and o.
func (m Month) Compare(o Month) int { return cmp.Compare(m.month, o.month) }

func (m Month) String() string { return fmt.Sprintf("JulianMonth(%d)", m.month) }

// Day represents a day of a month, 1-31.
type Day uint8

// NewDay returns the Day d.
func NewDay(d uint8) (Day, error) {
	if d < 1 || d > 31 {
		return 0, datetime.OutOfRange("day is < 1 or > 31")
	}
	return Day(d), nil
}

// NewDayInMonth returns the Day d of month m.
func NewDayInMonth(m Month, d uint8) (Day, error) {
	n := m.DaysInMonth()
	if d < 1 || datetime.Days(d) > n {
		return 0, datetime.OutOfRange("day is < 1 or > %d", uint64(n))
	}
	return Day(d), nil
}

// Number returns the day number, 1-31.
func (d Day) Number() uint8 { return uint8(d) }

// AddDays returns d + n. At most 30 days may be added and the result must
// not exceed 31; the length of any particular month is not considered.
func (d Day) AddDays(n datetime.Days) (Day, error) {
	if n > 30 {
		return 0, datetime.OutOfRange("days is > 30")
	}
	if uint64(d)+uint64(n) > 31 {
		return 0, datetime.OutOfRange("day will be > 31")
	}
	return d + Day(n), nil
}

// SubDays returns d - n, which must not be less than 1.
func (d Day) SubDays(n datetime.Days) (Day, error) {
	if uint64(n) >= uint64(d) {
		return 0, datetime.OutOfRange("day will be < 1")
	}
	return d - Day(n), nil
}

// Sub returns the number of days between d and o, ignoring order.
func (d Day) Sub(o Day) datetime.Days {
	return datetime.Days(d).Sub(datetime.Days(o))
}

// Compare returns -1, 0 or +1 as d is less than, equal to or greater than o.
func (d Day) Compare(o Day) int { return cmp.Compare(d, o) }

func (d Day) String() string { return fmt.Sprintf("JulianDay(%d)", uint8(d)) }

// Week represents an ISO week number together with the maximum week
// number allowed, 53 unless created for a specific year.
type Week struct {
	week uint8
	max  uint8
}

// NewWeek returns the Week w.
func NewWeek(w uint8) (Week, error) {
	if w < 1 || w > 53 {
		return Week{}, datetime.OutOfRange("week is < 1 or > 53")
	}
	return Week{week: w, max: 53}, nil
}

// NewWeekInYear returns the Week w of year y, which must not exceed the
// number of weeks in y.
func NewWeekInYear(y Year, w uint8) (Week, error) {
	limit := uint8(y.WeeksInYear())
	if w < 1 || w > limit {
		return Week{}, datetime.OutOfRange("week is < 1 or > %d", limit)
	}
	return Week{week: w, max: limit}, nil
}

// Number returns the week number.
func (w Week) Number() uint8 { return w.week }

// MaxWeeks returns the largest week number allowed for w.
func (w Week) MaxWeeks() datetime.Weeks { return datetime.Weeks(w.max) }

// AddWeeks returns w + n, which must not exceed MaxWeeks.
func (w Week) AddWeeks(n datetime.Weeks) (Week, error) {
	if uint64(n) > uint64(w.max-w.week) {
		return Week{}, datetime.OutOfRange("week will be > %d", w.max)
	}
	return Week{week: w.week + uint8(n), max: w.max}, nil
}

// SubWeeks returns w - n, which must not be less than 1.
func (w Week) SubWeeks(n datetime.Weeks) (Week, error) {
	if uint64(n) >= uint64(w.week) {
		return Week{}, datetime.OutOfRange("week will be < 1")
	}
	return Week{week: w.week - uint8(n), max: w.max}, nil
}

// Sub returns the number of weeks between w and o, ignoring order.
func (w Week) Sub(o Week) datetime.Weeks {
	return datetime.Weeks(w.week).Sub(datetime.Weeks(o.week))
}

// Compare compares the week numbers of w and o.
func (w Week) Compare(o Week) int { return cmp.Compare(w.week, o.week) }

func (w Week) String() string { return fmt.Sprintf("JulianWeek(%d)", w.week) }
