// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package daycount provides continuous day and year counts: the Julian Day
// (JD), the Modified Julian Day (MJD) and the Scaliger year that underlies
// the JD epoch of noon, 1 January 4713 BC in the proleptic Julian calendar.
package daycount

import (
	"cmp"
	"fmt"
	"math"

	"github.com/PowerStat/DateClass/datetime"
)

// MJDOffset is the number of days between the JD and MJD epochs.
const MJDOffset = 2400001

// JD represents a Julian Day number.
type JD uint64

// AddDays returns jd + d, or an error if the result overflows.
func (jd JD) AddDays(d datetime.Days) (JD, error) {
	if uint64(d) > math.MaxUint64-uint64(jd) {
		return 0, datetime.OutOfRange("JD will be > MaxUint64")
	}
	return jd + JD(d), nil
}

// SubDays returns jd - d, or an error if the result would be negative.
func (jd JD) SubDays(d datetime.Days) (JD, error) {
	if uint64(d) > uint64(jd) {
		return 0, datetime.OutOfRange("JD will be < 0")
	}
	return jd - JD(d), nil
}

// Sub returns the number of days between jd and o, ignoring order.
func (jd JD) Sub(o JD) datetime.Days {
	return datetime.Days(jd).Sub(datetime.Days(o))
}

// Compare returns -1, 0 or +1 as jd is less than, equal to or greater than o.
func (jd JD) Compare(o JD) int { return cmp.Compare(jd, o) }

// MJD returns the Modified Julian Day for jd, which must be at least
// MJDOffset.
func (jd JD) MJD() (MJD, error) {
	if jd < MJDOffset {
		return 0, datetime.OutOfRange("JD must be >= %d", MJDOffset)
	}
	return MJD(jd - MJDOffset), nil
}

func (jd JD) String() string { return fmt.Sprintf("JD(%d)", uint64(jd)) }

// MJD represents a Modified Julian Day number, ie. JD - 2400001.
type MJD uint64

// JD returns the Julian Day for mjd.
func (mjd MJD) JD() (JD, error) {
	if mjd > math.MaxUint64-MJDOffset {
		return 0, datetime.OutOfRange("MJD must be < MaxUint64 - %d", MJDOffset)
	}
	return JD(mjd + MJDOffset), nil
}

// AddDays returns mjd + d, or an error if the result overflows.
func (mjd MJD) AddDays(d datetime.Days) (MJD, error) {
	if uint64(d) > math.MaxUint64-uint64(mjd) {
		return 0, datetime.OutOfRange("MJD will be > MaxUint64")
	}
	return mjd + MJD(d), nil
}

// SubDays returns mjd - d, or an error if the result would be negative.
func (mjd MJD) SubDays(d datetime.Days) (MJD, error) {
	if uint64(d) > uint64(mjd) {
		return 0, datetime.OutOfRange("MJD will be < 0")
	}
	return mjd - MJD(d), nil
}

// Sub returns the number of days between mjd and o, ignoring order.
func (mjd MJD) Sub(o MJD) datetime.Days {
	return datetime.Days(mjd).Sub(datetime.Days(o))
}

// Compare returns -1, 0 or +1 as mjd is less than, equal to or greater than o.
func (mjd MJD) Compare(o MJD) int { return cmp.Compare(mjd, o) }

func (mjd MJD) String() string { return fmt.Sprintf("MJD(%d)", uint64(mjd)) }
