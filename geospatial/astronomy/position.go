// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import (
	"math"

	"cloudeng.io/sunlight/datetime"
	"github.com/soniakeys/unit"
)

// Obliquity is the fixed mean obliquity of the ecliptic used for the
// declination series, it is adequate until about 2100.
var Obliquity = unit.AngleFromDeg(23.439)

// Position represents the position of the Sun for a given Julian day.
type Position struct {
	JulianDay float64
	// Declination is positive when the Sun is north of the celestial
	// equator, ie. during the northern hemisphere summer.
	Declination unit.Angle
	// EquationOfTime is in minutes, positive values mean that the true sun
	// is ahead of the mean sun.
	EquationOfTime float64
}

// NewPosition returns the Position of the Sun for the Julian day jd.
func NewPosition(jd float64) Position {
	return Position{
		JulianDay:      jd,
		Declination:    Declination(jd),
		EquationOfTime: EquationOfTime(jd),
	}
}

// PositionOn returns the Position of the Sun for the specified date.
func PositionOn(cd datetime.CalendarDate) Position {
	return NewPosition(JulianDay(cd))
}

// Declination returns the solar declination for jd using the low
// precision ecliptic longitude series of the Astronomical Almanac: the
// mean anomaly plus two correction terms. Accuracy degrades outside
// of 1900-2100.
func Declination(jd float64) unit.Angle {
	n := DaysSinceJ2000(jd)
	g := unit.AngleFromDeg(math.Mod(357.528+0.9856003*n, 360))
	l := unit.AngleFromDeg(math.Mod(280.46+0.9856474*n+1.915*g.Sin()+0.02*math.Sin(2*g.Rad()), 360))
	return unit.Angle(math.Asin(Obliquity.Sin() * l.Sin()))
}

// OrbitalElements are the mean anomaly and eccentricity of the Earth's
// orbit for a given Julian day.
type OrbitalElements struct {
	MeanLongitude unit.Angle // geometric mean longitude of the Sun, mod 360°
	MeanAnomaly   unit.Angle
	Eccentricity  float64
}

// Orbit returns the OrbitalElements for jd as per Meeus, chapter 25.
func Orbit(jd float64) OrbitalElements {
	t := CenturiesSinceJ2000(jd)
	return OrbitalElements{
		MeanLongitude: unit.AngleFromDeg(math.Mod(280.46646+36000.76983*t+0.0003032*t*t, 360)),
		MeanAnomaly:   unit.AngleFromDeg(357.52911 + 35999.05029*t - 0.0001537*t*t),
		Eccentricity:  0.016708634 - 0.000042037*t - 0.0000001267*t*t,
	}
}

// MeanObliquity returns the mean obliquity of the ecliptic for jd using
// the polynomial in arc seconds from Meeus, chapter 22.
func MeanObliquity(jd float64) unit.Angle {
	t := CenturiesSinceJ2000(jd)
	return unit.AngleFromSec(84381.448 - 46.8150*t - 0.00059*t*t + 0.001813*t*t*t)
}

// EquationOfTime returns the equation of time in minutes for jd using
// Meeus 28.3, the maximum error is about ±9 seconds between 1900 and 2100.
// A positive value means that solar noon occurs before 12:00 mean time.
func EquationOfTime(jd float64) float64 {
	orb := Orbit(jd)
	e := orb.Eccentricity
	y := math.Pow(math.Tan(MeanObliquity(jd).Rad()/2), 2)
	l0, m := orb.MeanLongitude.Rad(), orb.MeanAnomaly.Rad()
	eq := y*math.Sin(2*l0) -
		2*e*math.Sin(m) +
		4*e*y*math.Sin(m)*math.Cos(2*l0) -
		0.5*y*y*math.Sin(4*l0) -
		1.25*e*e*math.Sin(2*m)
	return 4 * unit.Angle(eq).Deg()
}

// Altitude returns the altitude of the Sun for an observer at latitude
// lat (degrees) when the Sun has declination decl and is at hour angle h
// from the meridian.
func Altitude(lat float64, decl unit.Angle, h unit.HourAngle) unit.Angle {
	phi := unit.AngleFromDeg(lat)
	return unit.Angle(math.Asin(phi.Sin()*decl.Sin() + phi.Cos()*decl.Cos()*h.Cos()))
}

// NoonAltitude returns the altitude, in degrees, of the Sun at solar noon,
// ie. 90 - |lat - decl|.
func NoonAltitude(lat float64, decl unit.Angle) float64 {
	return 90 - math.Abs(lat-decl.Deg())
}
