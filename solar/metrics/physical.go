// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package metrics

import (
	"fmt"
	"math"

	"cloudeng.io/sunlight/datetime"
	"cloudeng.io/sunlight/geospatial/astronomy"
)

const (
	// AstronomicalUnit in kilometres.
	AstronomicalUnit = 149_597_870.7
	// SolarConstant is the mean solar irradiance at 1 AU in W/m².
	SolarConstant = 1361.0
	minutesPerDay = 24 * 60
)

// TrueSolarTime returns the apparent solar time, in minutes after
// midnight, at longitude long (degrees east) corresponding to the local
// clock time for a UTC offset of tz hours on cd.
func TrueSolarTime(cd datetime.CalendarDate, clock datetime.TimeOfDay, long, tz float64) float64 {
	mins := clock.Minutes()
	offset := astronomy.EquationOfTime(astronomy.JulianDay(cd)) + 4*long - 60*tz
	m := math.Mod(mins+offset, minutesPerDay)
	if m < 0 {
		m += minutesPerDay
	}
	return m
}

// FormatMinutes formats minutes after midnight as HH:MM, rounding to
// the nearest minute.
func FormatMinutes(m float64) string {
	if math.IsNaN(m) || math.IsInf(m, 0) {
		return "--:--"
	}
	total := int(math.Floor(m+0.5)) % minutesPerDay
	if total < 0 {
		total += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// SunDistanceAU returns the distance between the Earth and the Sun on cd
// in astronomical units, using the equation of the centre truncated to
// second order in the eccentricity.
func SunDistanceAU(cd datetime.CalendarDate) float64 {
	orb := astronomy.Orbit(astronomy.JulianDay(cd))
	m, e := orb.MeanAnomaly.Rad(), orb.Eccentricity
	nu := m + 2*e*math.Sin(m) + 1.25*e*e*math.Sin(2*m)
	return (1 - e*e) / (1 + e*math.Cos(nu))
}

// SunDistanceKm returns the distance between the Earth and the Sun on cd
// in kilometres.
func SunDistanceKm(cd datetime.CalendarDate) float64 {
	return SunDistanceAU(cd) * AstronomicalUnit
}

// SolarIntensity returns the solar irradiance, in W/m², at the top of the
// atmosphere on cd.
func SolarIntensity(cd datetime.CalendarDate) float64 {
	r := SunDistanceAU(cd)
	return SolarConstant / (r * r)
}
