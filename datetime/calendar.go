// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CalendarDate represents a civil date with a year, month and day in the
// proleptic Gregorian calendar.
type CalendarDate struct {
	Year  int
	Month Month
	Day   int
}

// NewCalendarDate returns a CalendarDate for the specified year, month and day.
func NewCalendarDate(year int, month Month, day int) CalendarDate {
	return CalendarDate{Year: year, Month: month, Day: day}
}

// CalendarDateFromTime returns the CalendarDate for t in t's location.
func CalendarDateFromTime(t time.Time) CalendarDate {
	return CalendarDate{Year: t.Year(), Month: Month(t.Month()), Day: t.Day()}
}

// String returns the date in ISO 8601 format, ie. 2024-06-21.
func (cd CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", cd.Year, cd.Month, cd.Day)
}

// IsValid returns true if the month and day are in range for the year.
func (cd CalendarDate) IsValid() bool {
	if cd.Month < 1 || cd.Month > 12 {
		return false
	}
	return cd.Day >= 1 && cd.Day <= DaysInMonth(cd.Year, cd.Month)
}

const expectedCalendarFormats = "2006-01-02, 01/02/2006 or Jan-02-2006"

// Parse parses a date in one of the formats 2006-01-02, 01/02/2006 or
// Jan-02-2006 with error checking for a valid month and day.
func (cd *CalendarDate) Parse(val string) error {
	if len(val) == 0 {
		return fmt.Errorf("empty value, expected %s", expectedCalendarFormats)
	}
	var year, month, day string
	if parts := strings.Split(val, "/"); len(parts) == 3 {
		month, day, year = parts[0], parts[1], parts[2]
	} else if parts := strings.Split(val, "-"); len(parts) == 3 {
		if len(parts[0]) == 4 {
			year, month, day = parts[0], parts[1], parts[2]
		} else {
			month, day, year = parts[0], parts[1], parts[2]
		}
	} else {
		return fmt.Errorf("invalid date %q, expected %s", val, expectedCalendarFormats)
	}
	var m Month
	if err := m.Parse(month); err != nil {
		return fmt.Errorf("invalid date %q: %v", val, err)
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return fmt.Errorf("invalid year in %q: %v", val, err)
	}
	d, err := strconv.Atoi(day)
	if err != nil {
		return fmt.Errorf("invalid day in %q: %v", val, err)
	}
	ncd := NewCalendarDate(y, m, d)
	if !ncd.IsValid() {
		return fmt.Errorf("invalid day for %v %v: %d", time.Month(m), y, d)
	}
	*cd = ncd
	return nil
}

// ParseCalendarDate is a convenience wrapper around CalendarDate.Parse.
func ParseCalendarDate(val string) (CalendarDate, error) {
	var cd CalendarDate
	err := cd.Parse(val)
	return cd, err
}

// noon is used for all day arithmetic so that no DST or leap second
// adjustment can move a date across midnight.
func (cd CalendarDate) noon() time.Time {
	return time.Date(cd.Year, time.Month(cd.Month), cd.Day, 12, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days after cd, n may be negative.
func (cd CalendarDate) AddDays(n int) CalendarDate {
	return CalendarDateFromTime(time.Date(cd.Year, time.Month(cd.Month), cd.Day+n, 12, 0, 0, 0, time.UTC))
}

// DaysUntil returns the number of days from cd to other, negative if other
// is earlier than cd.
func (cd CalendarDate) DaysUntil(other CalendarDate) int {
	return int(other.noon().Sub(cd.noon()).Round(time.Hour).Hours() / 24)
}

// Before returns true if cd is earlier than other.
func (cd CalendarDate) Before(other CalendarDate) bool {
	if cd.Year != other.Year {
		return cd.Year < other.Year
	}
	if cd.Month != other.Month {
		return cd.Month < other.Month
	}
	return cd.Day < other.Day
}
