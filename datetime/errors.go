// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime

import (
	"fmt"

	"cloudeng.io/errors"
)

var (
	// ErrOutOfRange is returned, wrapped with a description of the
	// violated bound, whenever a value or the result of an arithmetic
	// operation falls outside of the valid domain of its type.
	ErrOutOfRange = errors.New("out of range")

	// ErrDivisionByZero is returned for division or modulo by zero. It
	// wraps ErrOutOfRange so that errors.Is matches either.
	ErrDivisionByZero = fmt.Errorf("division by zero: %w", ErrOutOfRange)
)

// OutOfRange returns an error that wraps ErrOutOfRange with the supplied
// description of the violated bound.
func OutOfRange(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrOutOfRange)
}
