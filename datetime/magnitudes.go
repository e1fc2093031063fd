// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime

import (
	"cmp"
	"fmt"
	"math"
)

// Days represents a number of days.
type Days uint64

// Weeks represents a number of weeks.
type Weeks uint64

// Months represents a number of months.
type Months uint64

// Years represents a number of years.
type Years uint64

type magnitude interface {
	~uint64
}

func checkedAdd[T magnitude](a, b T, unit string) (T, error) {
	if uint64(b) > math.MaxUint64-uint64(a) {
		return 0, OutOfRange("%s will be > MaxUint64", unit)
	}
	return a + b, nil
}

func absDiff[T magnitude](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}

func checkedMul[T magnitude](a T, n uint64, unit string) (T, error) {
	if n != 0 && uint64(a) > math.MaxUint64/n {
		return 0, OutOfRange("%s will be > MaxUint64", unit)
	}
	return a * T(n), nil
}

func checkedDiv[T magnitude](a T, n uint64) (T, error) {
	if n == 0 {
		return 0, ErrDivisionByZero
	}
	return a / T(n), nil
}

func checkedMod[T magnitude](a T, n uint64) (T, error) {
	if n == 0 {
		return 0, ErrDivisionByZero
	}
	return a % T(n), nil
}

// Add returns d + o, or an error if the sum overflows.
func (d Days) Add(o Days) (Days, error) { return checkedAdd(d, o, "days") }

// Sub returns the absolute difference between d and o. It never fails
// and the order of the operands does not matter.
func (d Days) Sub(o Days) Days { return absDiff(d, o) }

// Mul returns d * n, or an error if the product overflows.
func (d Days) Mul(n uint64) (Days, error) { return checkedMul(d, n, "days") }

// Div returns d / n, or ErrDivisionByZero.
func (d Days) Div(n uint64) (Days, error) { return checkedDiv(d, n) }

// Mod returns d % n, or ErrDivisionByZero.
func (d Days) Mod(n uint64) (Days, error) { return checkedMod(d, n) }

// Compare returns -1, 0 or +1 as d is less than, equal to or greater than o.
func (d Days) Compare(o Days) int { return cmp.Compare(d, o) }

func (d Days) String() string { return fmt.Sprintf("Days(%d)", uint64(d)) }

// Add returns w + o, or an error if the sum overflows.
func (w Weeks) Add(o Weeks) (Weeks, error) { return checkedAdd(w, o, "weeks") }

// Sub returns the absolute difference between w and o.
func (w Weeks) Sub(o Weeks) Weeks { return absDiff(w, o) }

// Mul returns w * n, or an error if the product overflows.
func (w Weeks) Mul(n uint64) (Weeks, error) { return checkedMul(w, n, "weeks") }

// Div returns w / n, or ErrDivisionByZero.
func (w Weeks) Div(n uint64) (Weeks, error) { return checkedDiv(w, n) }

// Mod returns w % n, or ErrDivisionByZero.
func (w Weeks) Mod(n uint64) (Weeks, error) { return checkedMod(w, n) }

// Compare returns -1, 0 or +1 as w is less than, equal to or greater than o.
func (w Weeks) Compare(o Weeks) int { return cmp.Compare(w, o) }

// Days returns the number of days in w weeks.
func (w Weeks) Days() (Days, error) {
	d, err := checkedMul(Days(w), 7, "days")
	return d, err
}

func (w Weeks) String() string { return fmt.Sprintf("Weeks(%d)", uint64(w)) }

// Add returns m + o, or an error if the sum overflows.
func (m Months) Add(o Months) (Months, error) { return checkedAdd(m, o, "months") }

// Sub returns the absolute difference between m and o.
func (m Months) Sub(o Months) Months { return absDiff(m, o) }

// Mul returns m * n, or an error if the product overflows.
func (m Months) Mul(n uint64) (Months, error) { return checkedMul(m, n, "months") }

// Div returns m / n, or ErrDivisionByZero.
func (m Months) Div(n uint64) (Months, error) { return checkedDiv(m, n) }

// Mod returns m % n, or ErrDivisionByZero.
func (m Months) Mod(n uint64) (Months, error) { return checkedMod(m, n) }

// Compare returns -1, 0 or +1 as m is less than, equal to or greater than o.
func (m Months) Compare(o Months) int { return cmp.Compare(m, o) }

func (m Months) String() string { return fmt.Sprintf("Months(%d)", uint64(m)) }

// Add returns y + o, or an error if the sum overflows.
func (y Years) Add(o Years) (Years, error) { return checkedAdd(y, o, "years") }

// Sub returns the absolute difference between y and o.
func (y Years) Sub(o Years) Years { return absDiff(y, o) }

// Mul returns y * n, or an error if the product overflows.
func (y Years) Mul(n uint64) (Years, error) { return checkedMul(y, n, "years") }

// Div returns y / n, or ErrDivisionByZero.
func (y Years) Div(n uint64) (Years, error) { return checkedDiv(y, n) }

// Mod returns y % n, or ErrDivisionByZero.
func (y Years) Mod(n uint64) (Years, error) { return checkedMod(y, n) }

// Compare returns -1, 0 or +1 as y is less than, equal to or greater than o.
func (y Years) Compare(o Years) int { return cmp.Compare(y, o) }

func (y Years) String() string { return fmt.Sprintf("Years(%d)", uint64(y)) }
