// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime

import (
	"cmp"
	"fmt"
	"math"
)

// Duration represents a calendar interval of years, months and days. The
// months are always in the range 0-11 and the days in the range 0-30.
type Duration struct {
	years  Years
	months Months
	days   Days
}

// NewDuration returns a Duration for the supplied years, months and days.
// Months of 12 or more are carried into years. Days are validated, not
// normalized, and must be less than 31.
func NewDuration(years Years, months Months, days Days) (Duration, error) {
	if carry := uint64(months / 12); carry > 0 {
		if carry > math.MaxUint64-uint64(years) {
			return Duration{}, OutOfRange("years must be <= MaxUint64")
		}
		years += Years(carry)
		months %= 12
	}
	if days >= 31 {
		return Duration{}, OutOfRange("days must be < 31")
	}
	return Duration{years: years, months: months, days: days}, nil
}

// Years returns the years component of d.
func (d Duration) Years() Years { return d.years }

// Months returns the months component of d.
func (d Duration) Months() Months { return d.months }

// Days returns the days component of d.
func (d Duration) Days() Days { return d.days }

// IsZero returns true if all components of d are zero.
func (d Duration) IsZero() bool {
	return d == Duration{}
}

// Compare orders durations by years, then months, then days.
func (d Duration) Compare(o Duration) int {
	if c := cmp.Compare(d.years, o.years); c != 0 {
		return c
	}
	if c := cmp.Compare(d.months, o.months); c != 0 {
		return c
	}
	return cmp.Compare(d.days, o.days)
}

// Add adds each component of o to the corresponding component of d.
func (d Duration) Add(o Duration) (Duration, error) {
	y, err := d.years.Add(o.years)
	if err != nil {
		return Duration{}, err
	}
	m, err := d.months.Add(o.months)
	if err != nil {
		return Duration{}, err
	}
	days, err := d.days.Add(o.days)
	if err != nil {
		return Duration{}, err
	}
	return NewDuration(y, m, days)
}

// Sub returns the component-wise absolute difference of d and o.
func (d Duration) Sub(o Duration) Duration {
	return Duration{
		years:  d.years.Sub(o.years),
		months: d.months.Sub(o.months),
		days:   d.days.Sub(o.days),
	}
}

// Mul multiplies each component of d by n.
func (d Duration) Mul(n uint64) (Duration, error) {
	y, err := d.years.Mul(n)
	if err != nil {
		return Duration{}, err
	}
	m, err := d.months.Mul(n)
	if err != nil {
		return Duration{}, err
	}
	days, err := d.days.Mul(n)
	if err != nil {
		return Duration{}, err
	}
	return NewDuration(y, m, days)
}

// Div divides each component of d by n.
func (d Duration) Div(n uint64) (Duration, error) {
	if n == 0 {
		return Duration{}, ErrDivisionByZero
	}
	return Duration{years: d.years / Years(n), months: d.months / Months(n), days: d.days / Days(n)}, nil
}

// Mod returns the remainder of each component of d divided by n.
func (d Duration) Mod(n uint64) (Duration, error) {
	if n == 0 {
		return Duration{}, ErrDivisionByZero
	}
	return Duration{years: d.years % Years(n), months: d.months % Months(n), days: d.days % Days(n)}, nil
}

// AddDays adds days to the days component of d.
func (d Duration) AddDays(days Days) (Duration, error) {
	sum, err := d.days.Add(days)
	if err != nil {
		return Duration{}, err
	}
	return NewDuration(d.years, d.months, sum)
}

// SubDays replaces the days component of d with its absolute difference
// from days.
func (d Duration) SubDays(days Days) (Duration, error) {
	return NewDuration(d.years, d.months, d.days.Sub(days))
}

// AddMonths adds months to d, carrying into years as needed.
func (d Duration) AddMonths(months Months) (Duration, error) {
	sum, err := d.months.Add(months)
	if err != nil {
		return Duration{}, err
	}
	return NewDuration(d.years, sum, d.days)
}

// SubMonths subtracts months from d. When months exceeds the months
// component, the shortfall is borrowed from the years component. If there
// are not enough years to borrow from, the result is the distance from
// zero in the opposite direction.
func (d Duration) SubMonths(months Months) (Duration, error) {
	if d.months >= months {
		return NewDuration(d.years, d.months-months, d.days)
	}
	short := uint64(months - d.months)
	borrow := (short - 1) / 12
	short -= 12 * borrow
	borrow++
	years := uint64(d.years)
	if years < borrow {
		years = borrow - years - 1
	} else {
		years -= borrow
		short = 12 - short
	}
	return NewDuration(Years(years), Months(short), d.days)
}

// AddYears adds years to the years component of d.
func (d Duration) AddYears(years Years) (Duration, error) {
	sum, err := d.years.Add(years)
	if err != nil {
		return Duration{}, err
	}
	return NewDuration(sum, d.months, d.days)
}

// SubYears subtracts years from the years component of d.
func (d Duration) SubYears(years Years) (Duration, error) {
	if d.years < years {
		return Duration{}, OutOfRange("years will be < 0")
	}
	return NewDuration(d.years-years, d.months, d.days)
}

func (d Duration) String() string {
	return fmt.Sprintf("Duration(%v, %v, %v)", d.years, d.months, d.days)
}
