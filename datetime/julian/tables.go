// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package julian

var (
	daysInMonth     [12]uint8
	daysInMonthLeap [12]uint8
	dayOfYear       [12]uint16 // days in the year before the first of each month
	dayOfYearLeap   [12]uint16
)

func monthLength(month int, leap bool) uint8 {
	switch month {
	case 2:
		if leap {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func init() {
	for i := 0; i < 12; i++ {
		daysInMonth[i] = monthLength(i+1, false)
		daysInMonthLeap[i] = monthLength(i+1, true)
	}
	for i := 0; i < 11; i++ {
		dayOfYear[i+1] = dayOfYear[i] + uint16(daysInMonth[i])
		dayOfYearLeap[i+1] = dayOfYearLeap[i] + uint16(daysInMonthLeap[i])
	}
}

func monthDays(month uint8, leap bool) uint8 {
	if leap {
		return daysInMonthLeap[month-1]
	}
	return daysInMonth[month-1]
}

func daysBeforeMonth(month uint8, leap bool) uint16 {
	if leap {
		return dayOfYearLeap[month-1]
	}
	return dayOfYear[month-1]
}

// floorMod returns a mod m in the range 0..m-1 for any sign of a.
func floorMod(a, m int64) int64 {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// zeller returns the weekday of the given date using Zeller's
// congruence, with January and February counted as months 13 and 14 of
// the previous year. The raw result (0 is Saturday) is converted to ISO
// numbering.
func zeller(year int64, month, day int64) uint8 {
	if month < 3 {
		month += 12
		year--
	}
	century := year / 100
	yoc := year - century*100
	h := floorMod(day+((month+1)*26)/10+yoc+yoc/4+5-century, 7)
	switch h {
	case 0:
		return 6
	case 1:
		return 7
	default:
		return uint8(h - 1)
	}
}
