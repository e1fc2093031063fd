// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendars provides a registry of calendar system
// implementations. Implementations register themselves, typically from an
// init function, and are obtained by System.
package calendars

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"cloudeng.io/cmdutil/registry"
	"github.com/PowerStat/DateClass/datetime"
	"github.com/PowerStat/DateClass/datetime/daycount"
)

// System identifies a calendar system.
type System uint16

const (
	Julian System = iota + 1
	Gregorian
)

var systemNames = map[System]string{
	Julian:    "Julian",
	Gregorian: "Gregorian",
}

// Systems returns all of the declared calendar systems whether or not an
// implementation is registered for them.
func Systems() []System {
	return []System{Julian, Gregorian}
}

func (s System) String() string {
	if n, ok := systemNames[s]; ok {
		return n
	}
	return fmt.Sprintf("System(%d)", uint16(s))
}

// ParseSystem returns the System with the supplied name, ignoring case.
func ParseSystem(name string) (System, error) {
	for s, n := range systemNames {
		if strings.EqualFold(n, name) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, registry.ErrUnknownKey)
}

// Calendar is implemented by each calendar system.
type Calendar interface {
	System() System
	IsLeapYear(year int64) bool
	DaysInYear(year int64) (datetime.Days, error)
	DaysInMonth(year int64, month uint8) (datetime.Days, error)
	Weekday(year int64, month, day uint8) (datetime.Weekday, error)
	ToJD(year int64, month, day uint8) (daycount.JD, error)
	FromJD(jd daycount.JD) (year int64, month, day uint8, err error)
}

var (
	calendars registry.T[Calendar]

	mu         sync.Mutex
	registered []System
)

// Register registers the factory for system s.
func Register(s System, factory registry.New[Calendar]) {
	mu.Lock()
	defer mu.Unlock()
	calendars.Register(s.String(), factory)
	if !slices.Contains(registered, s) {
		registered = append(registered, s)
		slices.Sort(registered)
	}
}

// Registered returns the systems that have a registered implementation.
func Registered() []System {
	mu.Lock()
	defer mu.Unlock()
	return slices.Clone(registered)
}

// Lookup returns a new Calendar for system s. The error wraps
// registry.ErrUnknownKey if no implementation is registered for s.
func Lookup(ctx context.Context, s System, args ...any) (Calendar, error) {
	factory := calendars.Get(s.String())
	if factory == nil {
		return nil, fmt.Errorf("calendar system %v: %w", s, registry.ErrUnknownKey)
	}
	return factory(ctx, args...)
}
