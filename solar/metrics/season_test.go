// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package metrics_test

import (
	"testing"

	"cloudeng.io/sunlight/datetime"
	"cloudeng.io/sunlight/geospatial/astronomy"
	"cloudeng.io/sunlight/solar/metrics"
)

func TestSolstice(t *testing.T) {
	for _, tc := range []struct {
		cd       datetime.CalendarDate
		next     datetime.CalendarDate
		days     int
		progress float64
	}{
		{date(2024, 1, 1), date(2024, 6, 21), 172, 5.8},
		{date(2024, 6, 20), date(2024, 6, 21), 1, 99.5},
		{date(2024, 6, 21), date(2024, 12, 21), 183, 0},
		{date(2024, 12, 20), date(2024, 12, 21), 1, 99.5},
		{date(2024, 12, 21), date(2025, 6, 21), 182, 0.3},
		{date(2024, 12, 31), date(2025, 6, 21), 172, 5.8},
	} {
		if got, want := metrics.NextSolstice(tc.cd), tc.next; got != want {
			t.Errorf("%v: got %v, want %v", tc.cd, got, want)
		}
		if got, want := metrics.DaysToSolstice(tc.cd), tc.days; got != want {
			t.Errorf("%v: got %v, want %v", tc.cd, got, want)
		}
		if got, want := metrics.SeasonProgress(tc.cd), tc.progress; got != want {
			t.Errorf("%v: got %v, want %v", tc.cd, got, want)
		}
	}
}

func TestSeasonProgressMonotonic(t *testing.T) {
	cd := date(2024, 1, 1)
	prev := metrics.SeasonProgress(cd)
	resets := 0
	for i := 1; i < 366; i++ {
		day := cd.AddDays(i)
		p := metrics.SeasonProgress(day)
		if p < 0 || p > 100 {
			t.Errorf("%v: out of range: %v", day, p)
		}
		if p < prev {
			resets++
			if got, want := metrics.DaysToSolstice(day.AddDays(-1)), 1; got != want {
				t.Errorf("%v: reset away from a solstice: %v", day, p)
			}
		}
		prev = p
	}
	if got, want := resets, 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAstronomicalSeason(t *testing.T) {
	for _, tc := range []struct {
		cd   datetime.CalendarDate
		lat  float64
		want astronomy.Season
	}{
		{date(2024, 1, 1), 51, astronomy.Winter},
		{date(2024, 4, 1), 51, astronomy.Spring},
		{date(2024, 7, 1), 51, astronomy.Summer},
		{date(2024, 7, 1), -33, astronomy.Winter},
		{date(2024, 10, 1), -33, astronomy.Spring},
	} {
		if got, want := metrics.AstronomicalSeason(tc.cd, tc.lat), tc.want; got != want {
			t.Errorf("%v %v: got %v, want %v", tc.cd, tc.lat, got, want)
		}
	}
}
