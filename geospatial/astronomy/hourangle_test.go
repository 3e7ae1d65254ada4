// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy_test

import (
	"math"
	"testing"

	"cloudeng.io/sunlight/geospatial/astronomy"
	"github.com/soniakeys/unit"
)

func TestHourAngleRoundTrip(t *testing.T) {
	for lat := -89.0; lat <= 89; lat += 7 {
		for decl := -23.44; decl <= 23.44; decl += 3.3 {
			for _, alt := range []float64{-18, -12, -6, -2, -0.833, 0, 6} {
				d := unit.AngleFromDeg(decl)
				h, ok := astronomy.HourAngle(lat, d, alt)
				if !ok {
					continue
				}
				if h < 0 || h > 12 {
					t.Errorf("lat %v, decl %v, alt %v: hour angle out of range: %v", lat, decl, alt, h)
				}
				for _, ha := range []float64{-h, h} {
					got := astronomy.Altitude(lat, d, unit.HourAngleFromHour(ha)).Deg()
					if math.Abs(got-alt) > 1e-3 {
						t.Errorf("lat %v, decl %v, alt %v: got %v", lat, decl, alt, got)
					}
				}
			}
		}
	}
}

func TestHourAngleNoCrossing(t *testing.T) {
	summer, winter := unit.AngleFromDeg(23.44), unit.AngleFromDeg(-23.44)
	for _, tc := range []struct {
		lat   float64
		decl  unit.Angle
		alt   float64
		above bool
	}{
		{78, summer, -0.833, true},   // midnight sun
		{78, winter, -0.833, false},  // polar night
		{-78, winter, -0.833, true},  // southern midnight sun
		{60, summer, -18, true},      // never astronomically dark
		{0, summer, 89, false},       // never that high
		{90, summer, -0.833, true},   // pole
		{-90, summer, -0.833, false}, // pole
	} {
		if _, ok := astronomy.HourAngle(tc.lat, tc.decl, tc.alt); ok {
			t.Errorf("lat %v, alt %v: expected no crossing", tc.lat, tc.alt)
		}
		if got, want := astronomy.NoonAltitude(tc.lat, tc.decl) > tc.alt, tc.above; got != want {
			t.Errorf("lat %v, alt %v: got %v, want %v", tc.lat, tc.alt, got, want)
		}
	}

	if _, ok := astronomy.HourAngle(45, unit.AngleFromDeg(90), 0); ok {
		t.Errorf("expected no crossing for a declination of 90 degrees")
	}
	if _, ok := astronomy.HourAngle(math.NaN(), summer, 0); ok {
		t.Errorf("expected no crossing for NaN")
	}
}

func TestHourAngleEquinox(t *testing.T) {
	h, ok := astronomy.HourAngle(0, 0, 0)
	if !ok {
		t.Fatalf("expected a crossing")
	}
	if got, want := h, 6.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("got %v, want %v", got, want)
	}
}
