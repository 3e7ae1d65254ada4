// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy_test

import (
	"testing"

	"cloudeng.io/sunlight/datetime"
	"cloudeng.io/sunlight/geospatial/astronomy"
	"github.com/mooncaker816/learnmeeus/v3/julian"
)

func TestJulianDay(t *testing.T) {
	ncd := datetime.NewCalendarDate
	for _, tc := range []struct {
		cd datetime.CalendarDate
		jd float64
	}{
		{ncd(2000, 1, 1), 2451545},
		{ncd(2024, 6, 21), 2460483},
		{ncd(2024, 12, 21), 2460666},
		{ncd(1858, 11, 17), 2400001},
		{ncd(1582, 10, 15), 2299161},
	} {
		if got, want := astronomy.JulianDay(tc.cd), tc.jd; got != want {
			t.Errorf("%v: got %v, want %v", tc.cd, got, want)
		}
		if got, want := astronomy.JulianDayToCalendar(tc.jd), tc.cd; got != want {
			t.Errorf("%v: got %v, want %v", tc.jd, got, want)
		}
	}
}

func TestJulianDayAgainstMeeus(t *testing.T) {
	cd := datetime.NewCalendarDate(1900, 1, 1)
	prev := astronomy.JulianDay(cd.AddDays(-1))
	for i := 0; i < 365*250; i += 17 {
		d := cd.AddDays(i)
		jd := astronomy.JulianDay(d)
		// Meeus' julian days start at midnight, add half a day for noon.
		if got, want := jd, julian.CalendarGregorianToJD(d.Year, int(d.Month), float64(d.Day)+0.5); got != want {
			t.Fatalf("%v: got %v, want %v", d, got, want)
		}
		if jd <= prev {
			t.Fatalf("%v: julian day %v is not increasing (previous %v)", d, jd, prev)
		}
		prev = jd
	}
}
