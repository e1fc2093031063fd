// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package datetime provides the calendar independent magnitude types used
// for calendar arithmetic: Days, Weeks, Months and Years, the composite
// Duration and the ISO 8601 Weekday.
//
// All types are immutable values. Operations that can overflow, underflow
// or divide by zero return an error that wraps ErrOutOfRange. Subtraction
// of two magnitudes returns their absolute difference and never fails.
//
// The sub-packages daycount and julian build continuous day counts and the
// Julian calendar on top of these types, and calendars provides a registry
// of calendar systems.
package datetime
