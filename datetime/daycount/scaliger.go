// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package daycount

import (
	"cmp"
	"fmt"
	"math"

	"github.com/PowerStat/DateClass/datetime"
)

const (
	// MinScaligerYear and MaxScaligerYear bound the Scaliger years
	// supported, ie. the Julian years 6 BC to AD 1582.
	MinScaligerYear = 4707
	MaxScaligerYear = 6295

	// MinScaligerJD and MaxScaligerJD are the JDs of 1 January of
	// MinScaligerYear and MaxScaligerYear.
	MinScaligerJD = 1718867
	MaxScaligerJD = 2298884
)

// ScaligerYear represents a year in the continuous year count underlying
// the Julian Day epoch. Scaliger year 1 begins at JD 0.
type ScaligerYear int64

// NewScaligerYear returns the ScaligerYear for y.
func NewScaligerYear(y int64) (ScaligerYear, error) {
	if y < MinScaligerYear || y > MaxScaligerYear {
		return 0, datetime.OutOfRange("year is < %d or > %d", MinScaligerYear, MaxScaligerYear)
	}
	return ScaligerYear(y), nil
}

// ScaligerYearFromJD returns the ScaligerYear containing jd. It is the
// inverse of ScaligerYear.JD for every JD in the range
// MinScaligerJD..MaxScaligerJD.
func ScaligerYearFromJD(jd JD) (ScaligerYear, error) {
	if jd < MinScaligerJD || jd > MaxScaligerJD {
		return 0, datetime.OutOfRange("jd is < %d or > %d", MinScaligerJD, MaxScaligerJD)
	}
	sy := int64(jd)/365 - 2
	if sy > 5837 {
		sy--
	}
	if int64(jd) < int64(ScaligerYear(sy).JD()) {
		sy--
	}
	return ScaligerYear(sy), nil
}

// JD returns the Julian Day of 1 January of sy.
func (sy ScaligerYear) JD() JD {
	y := int64(sy)
	return JD((y-1)*365 + (y+2)/4)
}

// AddYears returns sy + y, or an error if the result exceeds
// MaxScaligerYear.
func (sy ScaligerYear) AddYears(y datetime.Years) (ScaligerYear, error) {
	if uint64(y) > uint64(math.MaxInt64-int64(sy)) {
		return 0, datetime.OutOfRange("year will be > MaxInt64")
	}
	n := int64(sy) + int64(y)
	if n > MaxScaligerYear {
		return 0, datetime.OutOfRange("year will be > %d", MaxScaligerYear)
	}
	return ScaligerYear(n), nil
}

// SubYears returns sy - y, or an error if the result is less than
// MinScaligerYear.
func (sy ScaligerYear) SubYears(y datetime.Years) (ScaligerYear, error) {
	if uint64(y) > uint64(sy) {
		return 0, datetime.OutOfRange("year will be < 0")
	}
	n := int64(sy) - int64(y)
	if n < MinScaligerYear {
		return 0, datetime.OutOfRange("year will be < %d", MinScaligerYear)
	}
	return ScaligerYear(n), nil
}

// Sub returns the number of years between sy and o, ignoring order.
func (sy ScaligerYear) Sub(o ScaligerYear) datetime.Years {
	if sy > o {
		return datetime.Years(sy - o)
	}
	return datetime.Years(o - sy)
}

// Compare returns -1, 0 or +1 as sy is less than, equal to or greater than o.
func (sy ScaligerYear) Compare(o ScaligerYear) int { return cmp.Compare(sy, o) }

func (sy ScaligerYear) String() string { return fmt.Sprintf("ScaligerYear(%d)", int64(sy)) }
