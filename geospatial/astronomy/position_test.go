// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy_test

import (
	"math"
	"testing"

	"cloudeng.io/sunlight/datetime"
	"cloudeng.io/sunlight/geospatial/astronomy"
	"github.com/soniakeys/unit"
)

func TestPosition(t *testing.T) {
	ncd := datetime.NewCalendarDate
	for _, tc := range []struct {
		cd   datetime.CalendarDate
		decl float64 // degrees
		eot  float64 // minutes
	}{
		{ncd(2000, 1, 1), -23.033, -3.302},
		{ncd(2024, 2, 11), -14.095, -14.227},
		{ncd(2024, 4, 15), 10.046, 0.091},
		{ncd(2024, 6, 21), 23.438, -1.925},
		{ncd(2024, 11, 3), -15.301, 16.486},
		{ncd(2024, 12, 21), -23.439, 1.678},
	} {
		pos := astronomy.PositionOn(tc.cd)
		if got, want := pos.Declination.Deg(), tc.decl; math.Abs(got-want) > 0.001 {
			t.Errorf("%v: declination: got %.4f, want %.4f", tc.cd, got, want)
		}
		if got, want := pos.EquationOfTime, tc.eot; math.Abs(got-want) > 0.001 {
			t.Errorf("%v: equation of time: got %.4f, want %.4f", tc.cd, got, want)
		}
		if got, want := pos.JulianDay, astronomy.JulianDay(tc.cd); got != want {
			t.Errorf("%v: got %v, want %v", tc.cd, got, want)
		}
	}
}

func TestDeclinationRange(t *testing.T) {
	cd := datetime.NewCalendarDate(2024, 1, 1)
	for i := 0; i < 366*4; i++ {
		decl := astronomy.Declination(astronomy.JulianDay(cd.AddDays(i))).Deg()
		if decl < -23.45 || decl > 23.45 {
			t.Errorf("%v: declination out of range: %v", cd.AddDays(i), decl)
		}
		eot := astronomy.EquationOfTime(astronomy.JulianDay(cd.AddDays(i)))
		if eot < -14.7 || eot > 16.6 {
			t.Errorf("%v: equation of time out of range: %v", cd.AddDays(i), eot)
		}
	}
}

func TestAltitude(t *testing.T) {
	decl := unit.AngleFromDeg(23.44)
	noon := astronomy.Altitude(51.5, decl, unit.HourAngleFromHour(0))
	if got, want := noon.Deg(), astronomy.NoonAltitude(51.5, decl); math.Abs(got-want) > 1e-9 {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := astronomy.NoonAltitude(0, unit.AngleFromDeg(0)), 90.0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	midnight := astronomy.Altitude(51.5, decl, unit.HourAngleFromHour(12))
	if got, want := midnight.Deg(), -(90 - 51.5 - 23.44); math.Abs(got-want) > 1e-9 {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestOrbit(t *testing.T) {
	orb := astronomy.Orbit(astronomy.J2000)
	if got, want := orb.MeanAnomaly.Deg(), 357.52911; math.Abs(got-want) > 1e-9 {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := orb.Eccentricity, 0.016708634; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := astronomy.MeanObliquity(astronomy.J2000).Deg(), 23.4392911; math.Abs(got-want) > 1e-6 {
		t.Errorf("got %v, want %v", got, want)
	}
}
