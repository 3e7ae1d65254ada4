// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import (
	"time"

	"cloudeng.io/sunlight/datetime"
	"github.com/nathan-osman/go-sunrise"
)

// ReferenceSunRise returns the time of sunrise and sunset for the specified
// date, latitude and longitude as computed by github.com/nathan-osman/go-sunrise.
// It is an independent implementation used to cross check the results of this
// package. The returned times are in UTC and are zero when the
// Sun does not rise or set on that day.
func ReferenceSunRise(date datetime.CalendarDate, lat, long float64) (rise, set time.Time) {
	rise, set = sunrise.SunriseSunset(
		lat, long,
		date.Year, time.Month(date.Month), date.Day)
	return
}

// ReferenceSolarNoon returns the midpoint between the reference sunrise and
// sunset, in UTC, or the zero time if there is no sunrise on that date.
func ReferenceSolarNoon(date datetime.CalendarDate, lat, long float64) time.Time {
	rise, set := ReferenceSunRise(date, lat, long)
	if rise.IsZero() || set.IsZero() {
		return time.Time{}
	}
	return rise.Add(set.Sub(rise) / 2)
}
