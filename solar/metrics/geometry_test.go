// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package metrics_test

import (
	"math"
	"testing"

	"cloudeng.io/sunlight/datetime"
	"cloudeng.io/sunlight/solar"
	"cloudeng.io/sunlight/solar/metrics"
)

func TestAzimuth(t *testing.T) {
	for _, tc := range []struct {
		cd        datetime.CalendarDate
		lat       float64
		rise, set float64
	}{
		{date(2024, 6, 21), londonLat, 48.898, 311.102},
		{date(2024, 12, 21), londonLat, 128.379, 231.621},
		{date(2024, 3, 20), 0, 89.852, 270.148},
	} {
		decl := metrics.DeclinationOn(tc.cd)
		rise, rok := metrics.SunriseAzimuth(tc.lat, decl)
		set, sok := metrics.SunsetAzimuth(tc.lat, decl)
		if !rok || !sok {
			t.Errorf("%v: no azimuth", tc.cd)
			continue
		}
		if got, want := rise, tc.rise; math.Abs(got-want) > 0.01 {
			t.Errorf("%v: rise: got %v, want %v", tc.cd, got, want)
		}
		if got, want := set, tc.set; math.Abs(got-want) > 0.01 {
			t.Errorf("%v: set: got %v, want %v", tc.cd, got, want)
		}
	}
	if _, ok := metrics.SunriseAzimuth(78, metrics.DeclinationOn(date(2024, 6, 21))); ok {
		t.Errorf("expected no azimuth")
	}
	for i := 0; i < 365; i += 7 {
		decl := metrics.DeclinationOn(date(2024, 1, 1).AddDays(i))
		for lat := -60.0; lat <= 60; lat += 10 {
			rise, rok := metrics.SunriseAzimuth(lat, decl)
			set, sok := metrics.SunsetAzimuth(lat, decl)
			if !rok || !sok {
				t.Errorf("%v: no azimuth", lat)
				continue
			}
			if rise < 0 || rise >= 180 || set < 180 || set >= 360 {
				t.Errorf("%v: out of range %v %v", lat, rise, set)
			}
		}
	}
}

func TestGeometry(t *testing.T) {
	cd := date(2024, 6, 21)
	if got, want := metrics.DeclinationDegrees(cd), 23.438; math.Abs(got-want) > 0.001 {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := metrics.EquationOfTimeMinutes(cd), -1.925; math.Abs(got-want) > 0.001 {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := metrics.SolarNoonAltitude(cd, londonLat), 61.930; math.Abs(got-want) > 0.001 {
		t.Errorf("got %v, want %v", got, want)
	}
	ev := solar.Compute(cd, londonLat, londonLong)
	if got, want := metrics.AltitudeAt(ev, datetime.NewTimeOfDay(13, 2, 0)), ev.NoonAltitude; math.Abs(got-want) > 0.1 {
		t.Errorf("got %v, want %v", got, want)
	}
	if got := metrics.AltitudeAt(ev, datetime.NewTimeOfDay(1, 2, 0)); got > -10 {
		t.Errorf("got %v, expected the Sun to be well below the horizon", got)
	}
}

func TestShadowLength(t *testing.T) {
	for _, tc := range []struct {
		alt, height float64
		want        float64
		ok          bool
	}{
		{45, 1, 1, true},
		{45, 2, 2, true},
		{30, 1, math.Sqrt(3), true},
		{90, 1, 0, true},
		{0, 1, 0, false},
		{-5, 1, 0, false},
		{math.NaN(), 1, 0, false},
	} {
		got, ok := metrics.ShadowLength(tc.alt, tc.height)
		if ok != tc.ok {
			t.Errorf("%v: got %v, want %v", tc.alt, ok, tc.ok)
			continue
		}
		if ok && math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("%v: got %v, want %v", tc.alt, got, tc.want)
		}
	}
}
