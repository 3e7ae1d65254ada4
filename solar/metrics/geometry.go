// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package metrics

import (
	"math"

	"cloudeng.io/sunlight/datetime"
	"cloudeng.io/sunlight/geospatial/astronomy"
	"cloudeng.io/sunlight/solar"
	"github.com/soniakeys/unit"
)

// SolarNoonAltitude returns the altitude in degrees of the Sun at solar
// noon on cd at latitude lat.
func SolarNoonAltitude(cd datetime.CalendarDate, lat float64) float64 {
	return astronomy.NoonAltitude(lat, DeclinationOn(cd))
}

// DeclinationOn returns the solar declination on cd.
func DeclinationOn(cd datetime.CalendarDate) unit.Angle {
	return astronomy.Declination(astronomy.JulianDay(cd))
}

// DeclinationDegrees returns the solar declination on cd in degrees.
func DeclinationDegrees(cd datetime.CalendarDate) float64 {
	return DeclinationOn(cd).Deg()
}

// EquationOfTimeMinutes returns the equation of time on cd in minutes.
func EquationOfTimeMinutes(cd datetime.CalendarDate) float64 {
	return astronomy.EquationOfTime(astronomy.JulianDay(cd))
}

// SunriseAzimuth returns the compass bearing, in degrees clockwise from
// north, of the rising Sun. ok is false if the Sun does not rise.
func SunriseAzimuth(lat float64, decl unit.Angle) (float64, bool) {
	ha, ok := astronomy.HourAngle(lat, decl, solar.SunriseAltitude)
	if !ok {
		return 0, false
	}
	return azimuth(lat, decl, unit.HourAngleFromHour(-ha)), true
}

// SunsetAzimuth returns the compass bearing, in degrees clockwise from
// north, of the setting Sun. ok is false if the Sun does not set.
func SunsetAzimuth(lat float64, decl unit.Angle) (float64, bool) {
	ha, ok := astronomy.HourAngle(lat, decl, solar.SunriseAltitude)
	if !ok {
		return 0, false
	}
	return azimuth(lat, decl, unit.HourAngleFromHour(ha)), true
}

// azimuth is measured from south and then rotated to a bearing in [0, 360).
func azimuth(lat float64, decl unit.Angle, h unit.HourAngle) float64 {
	phi := unit.AngleFromDeg(lat)
	az := unit.Angle(math.Atan2(h.Sin(), h.Cos()*phi.Sin()-decl.Tan()*phi.Cos()))
	return math.Mod(az.Deg()+540, 360)
}

// AltitudeAt returns the altitude, in degrees, of the Sun at the local
// clock time for the location and day of ev.
func AltitudeAt(ev solar.DailyEvents, clock datetime.TimeOfDay) float64 {
	tst := TrueSolarTime(ev.Date, clock, ev.Longitude, ev.UTCOffset)
	h := unit.HourAngleFromHour(tst/60 - 12)
	return astronomy.Altitude(ev.Latitude, ev.Position.Declination, h).Deg()
}

// ShadowLength returns the length of the shadow cast by an object of
// the given height when the Sun is at altitude (degrees). ok is false
// when the Sun is on or below the horizon.
func ShadowLength(altitude, height float64) (float64, bool) {
	if altitude <= 0 || math.IsNaN(altitude) {
		return 0, false
	}
	return height / unit.AngleFromDeg(altitude).Tan(), true
}
