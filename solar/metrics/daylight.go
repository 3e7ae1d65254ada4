// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package metrics provides metrics derived from the solar events for one
// or more days: changes in day length, seasonal progress, azimuths,
// photography heuristics and physical quantities such as the distance
// to the Sun. All of the functions are pure.
package metrics

import (
	"fmt"
	"math"
	"strconv"

	"cloudeng.io/sunlight/datetime"
	"cloudeng.io/sunlight/geospatial/astronomy"
	"cloudeng.io/sunlight/solar"
)

// SecondsPerDay is the length of a civil day, leap seconds are ignored.
const SecondsPerDay = 86400

// DaylightSeconds returns the number of seconds that the Sun is above
// the horizon on the specified date at latitude lat.
func DaylightSeconds(cd datetime.CalendarDate, lat float64) int {
	decl := astronomy.Declination(astronomy.JulianDay(cd))
	ha, ok := astronomy.HourAngle(lat, decl, solar.SunriseAltitude)
	if !ok {
		if astronomy.NoonAltitude(lat, decl) > solar.SunriseAltitude {
			return SecondsPerDay
		}
		return 0
	}
	return int(math.Round(2 * ha * 3600))
}

// DeltaDayLength returns the difference, in seconds, between the length
// of the day on cd and offsetDays later (or earlier if negative).
func DeltaDayLength(cd datetime.CalendarDate, lat float64, offsetDays int) int {
	return DaylightSeconds(cd, lat) - DaylightSeconds(cd.AddDays(offsetDays), lat)
}

// DeltaWeek returns the change in day length, in seconds, over the
// seven days preceding cd.
func DeltaWeek(cd datetime.CalendarDate, lat float64) int {
	return DeltaDayLength(cd, lat, -7)
}

// ClockSeconds returns the time of the event key as the number of seconds
// since midnight, as displayed, ie. rounded to the minute. ok is false if
// the event does not occur.
func ClockSeconds(ev solar.DailyEvents, key solar.Key) (int, bool) {
	v, ok := ev.Get(key)
	if !ok || v.Kind() != solar.ClockValue {
		return 0, false
	}
	return solar.ParseClock(v.String())
}

// DeltaRiseSet returns the difference, in seconds, between the time of the
// event key on cd and offsetDays later (or earlier if negative). ok is
// false if the event does not occur on either day.
func DeltaRiseSet(cd datetime.CalendarDate, lat, long float64, offsetDays int, key solar.Key, opts ...solar.Option) (int, bool) {
	a, aok := ClockSeconds(solar.Compute(cd, lat, long, opts...), key)
	b, bok := ClockSeconds(solar.Compute(cd.AddDays(offsetDays), lat, long, opts...), key)
	if !aok || !bok {
		return 0, false
	}
	return a - b, true
}

// DeltaLabel formats a delta in seconds as minutes with a directional
// glyph, eg. "↑ 3 m" or "↓ 0.5 m". Changes of less than three seconds
// are displayed as "0 m" and a missing value as "—".
func DeltaLabel(seconds float64, ok bool) string {
	if !ok || math.IsNaN(seconds) {
		return string(solar.Placeholder)
	}
	mins := seconds / 60
	abs := math.Abs(mins)
	if abs < 0.05 {
		return "0 m"
	}
	var v string
	if abs < 1 {
		v = strconv.FormatFloat(abs, 'f', 1, 64)
	} else {
		v = fmt.Sprintf("%d", int(math.Floor(abs+0.5)))
	}
	if mins > 0 {
		return "↑ " + v + " m"
	}
	return "↓ " + v + " m"
}

// Trend is the direction in which the day length is changing.
type Trend int

const (
	Steady Trend = iota
	Increasing
	Shortening
)

func (t Trend) String() string {
	switch t {
	case Increasing:
		return "↑ increasing"
	case Shortening:
		return "↓ shortening"
	}
	return "• steady"
}

// TrendOf returns the Trend for a change in day length.
func TrendOf(seconds float64) Trend {
	switch {
	case seconds > 0:
		return Increasing
	case seconds < 0:
		return Shortening
	}
	return Steady
}

// PeakWindow is the number of days either side of a date that
// PeakChangeDate examines.
const PeakWindow = 183

// PeakChangeDate returns the date within PeakWindow days of cd on which
// the day length changes most rapidly, using the central difference of
// the day lengths of the preceding and following days. The earliest such
// date is returned and cd itself if the day length never changes.
func PeakChangeDate(cd datetime.CalendarDate, lat float64) datetime.CalendarDate {
	// samples[i] is the day length at offset i-PeakWindow-1.
	samples := make([]int, 2*PeakWindow+3)
	for i := range samples {
		samples[i] = DaylightSeconds(cd.AddDays(i-PeakWindow-1), lat)
	}
	best, when := 0.0, 0
	for d := -PeakWindow; d <= PeakWindow; d++ {
		i := d + PeakWindow + 1
		slope := math.Abs(float64(samples[i+1]-samples[i-1])) / 2
		if slope > best {
			best, when = slope, d
		}
	}
	return cd.AddDays(when)
}
