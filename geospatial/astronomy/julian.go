// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package astronomy provides low precision solar position calculations:
// Julian day numbers, solar declination, the equation of time and the
// hour angle at which the Sun crosses a given altitude.
package astronomy

import (
	"cloudeng.io/sunlight/datetime"
	"github.com/mooncaker816/learnmeeus/v3/julian"
)

// J2000 is the Julian day of 2000-01-01 12:00 TT.
const J2000 = 2451545.0

// JulianDay returns the Julian day number for the specified civil date
// using the Fliegel-Van Flandern algorithm. The result is an integral value
// that refers to noon on that date, eg. 2000-01-01 is 2451545. The time of
// day is ignored.
func JulianDay(cd datetime.CalendarDate) float64 {
	a := (14 - int(cd.Month)) / 12
	y := cd.Year + 4800 - a
	m := int(cd.Month) + 12*a - 3
	return float64(cd.Day + (153*m+2)/5 + 365*y + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400) - 32045)
}

// floorDiv is integer division rounding towards negative infinity
// which is required for years before -4800.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// JulianDayToCalendar returns the civil date containing the Julian day jd.
func JulianDayToCalendar(jd float64) datetime.CalendarDate {
	y, m, d := julian.JDToCalendar(jd)
	return datetime.NewCalendarDate(y, datetime.Month(m), int(d))
}

// DaysSinceJ2000 returns the number of days between jd and J2000.
func DaysSinceJ2000(jd float64) float64 {
	return jd - J2000
}

// CenturiesSinceJ2000 returns the number of Julian centuries between
// jd and J2000.
func CenturiesSinceJ2000(jd float64) float64 {
	return (jd - J2000) / 36525
}
